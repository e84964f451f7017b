package dialogue

import "strings"

// Keyword sets that mark input as within the life-coaching domain.
var coachingKeywords = []string{
	"personal", "self", "growth", "improvement", "habits", "mindset", "confidence",
	"identity", "values", "change", "development",
	"work", "career", "job", "professional", "workplace", "colleague", "boss",
	"promotion", "skills", "interview", "resume",
	"feel", "emotion", "stress", "anxiety", "happy", "sad", "frustrated",
	"overwhelmed", "excited", "worried", "depression", "mood",
	"friend", "family", "partner", "relationship", "social", "communication",
	"conflict", "support", "marriage", "dating", "children",
	"goal", "dream", "vision", "future", "plan", "achieve", "success",
	"challenge", "obstacle", "progress", "motivation", "ambition",
	"problem", "difficulty", "struggle", "issue", "decision", "choice",
	"crisis", "setback", "failure",
}

var coachingQuestionWords = []string{"how", "what", "why", "when", "where", "should", "could", "would"}

var personalIndicators = []string{"i", "me", "my", "myself", "i'm", "i've", "i'll"}

// IsCoachingRelated accepts input carrying a domain keyword, or a
// question framed in personal terms.
func IsCoachingRelated(text string) bool {
	lower := strings.ToLower(text)

	for _, keyword := range coachingKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}

	questionMatch := false
	for _, word := range coachingQuestionWords {
		if strings.Contains(lower, word) {
			questionMatch = true
			break
		}
	}
	if !questionMatch {
		return false
	}

	for _, word := range personalIndicators {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}
