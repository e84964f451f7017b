package dialogue

import "strings"

// Challenge categories assigned from the first therapy message.
const (
	ChallengeMoodDisorders = "Mood Disorders"
	ChallengeTrauma        = "Trauma"
	ChallengeRelationship  = "Relationship Conflict"
	ChallengeMotivation    = "Motivation Issues"
	ChallengeNarrative     = "Narrative Issues"
	ChallengeSelfDoubt     = "Self-Doubt/Imposter Syndrome"
	ChallengePerformance   = "Performance Blocks"
	ChallengeGeneral       = "General Challenge"
)

// Matching is substring based, checked in a fixed priority order. The
// first category with any hit wins.
var challengeKeywords = []struct {
	challenge string
	keywords  []string
}{
	{ChallengeMoodDisorders, []string{"depressed", "anxious", "mood", "panic", "sad", "hopeless", "anxiety", "depression"}},
	{ChallengeTrauma, []string{"trauma", "abuse", "ptsd", "flashback", "triggered", "traumatic"}},
	{ChallengeRelationship, []string{"relationship", "conflict", "argument", "partner", "friend", "family"}},
	{ChallengeMotivation, []string{"motivation", "motivate", "procrastination", "lazy", "unmotivated", "procrastinate"}},
	{ChallengeNarrative, []string{"story", "narrative", "identity", "who am i", "sense of self"}},
	{ChallengeSelfDoubt, []string{"imposter", "fraud", "not good enough", "self-doubt", "doubt myself"}},
	{ChallengePerformance, []string{"performance", "block", "stuck", "can't perform", "blocked"}},
}

// ClassifyChallenge tags the first message of a therapy session. The
// tag is stored once and never re-evaluated.
func ClassifyChallenge(message string) string {
	lower := strings.ToLower(message)
	for _, group := range challengeKeywords {
		for _, keyword := range group.keywords {
			if strings.Contains(lower, keyword) {
				return group.challenge
			}
		}
	}
	return ChallengeGeneral
}

// Minimal acknowledgements that carry no answerable content.
var minimalResponses = map[string]bool{
	"start": true, "next": true, "go": true, "ok": true, "okay": true,
	"yes": true, "no": true, "y": true, "n": true,
}

// IsMinimalResponse reports whether the input is too thin to validate,
// so the previous question should simply be repeated.
func IsMinimalResponse(input string) bool {
	lower := strings.ToLower(strings.TrimSpace(input))
	if minimalResponses[lower] {
		return true
	}
	return len(strings.Fields(lower)) < 2
}
