package dialogue

import "strings"

// Journaling walks five layers of reflection. Layers 1-3 want two
// answers each, layers 4-5 one. Entry points select the opening frame.
const (
	JournalLayerFacts       = 1
	JournalLayerEmotions    = 2
	JournalLayerMeaning     = 3
	JournalLayerPerspective = 4
	JournalLayerValues      = 5
)

var journalLayerFocus = map[int]string{
	JournalLayerFacts:       "Facts and details",
	JournalLayerEmotions:    "Emotions and feelings",
	JournalLayerMeaning:     "Meaning and interpretation",
	JournalLayerPerspective: "Perspective expansion",
	JournalLayerValues:      "Values and identity connection",
}

// JournalEntryPoints maps menu choices to entry categories.
var JournalEntryPoints = map[string]string{
	"1": "personal_win",
	"2": "personal_challenge",
	"3": "professional_win",
	"4": "professional_challenge",
}

// JournalOpenings are the first prompts per entry category.
var JournalOpenings = map[string]string{
	"personal_challenge":     "What has been going on in your personal life that I can help you explore? Take your time to share as much detail as you'd like about the situation.",
	"personal_win":           "Wins are easy to overlook. Let's dive into your success. Tell me about a recent personal achievement or positive experience you'd like to explore deeper.",
	"professional_challenge": "What has been going on in your professional life that I can help you explore? Share the details of what you're facing at work.",
	"professional_win":       "Wins are easy to overlook. Let's dive into your success. Tell me about a professional achievement or positive moment you'd like to explore further.",
}

// JournalState tracks one journaling session.
type JournalState struct {
	EntryPoint    string
	Layer         int
	Responses     map[int][]string
	Sentiment     string
	FutureFocused bool
	Complete      bool
}

func NewJournalState(entryPoint string) *JournalState {
	return &JournalState{
		EntryPoint: entryPoint,
		Layer:      JournalLayerFacts,
		Responses:  make(map[int][]string),
		Sentiment:  "neutral",
	}
}

// LayerFocus names what the current layer explores.
func (j *JournalState) LayerFocus() string {
	return journalLayerFocus[j.Layer]
}

// ResponsesNeeded is the advancement threshold for a layer.
func ResponsesNeeded(layer int) int {
	if layer <= JournalLayerMeaning {
		return 2
	}
	return 1
}

// AddResponse records a validated answer and advances the layer when
// its threshold is met. Returns true when the whole session completed.
func (j *JournalState) AddResponse(input string) bool {
	if j.Complete {
		return true
	}
	if j.Responses == nil {
		j.Responses = make(map[int][]string)
	}

	j.Responses[j.Layer] = append(j.Responses[j.Layer], input)

	if len(j.Responses[j.Layer]) >= ResponsesNeeded(j.Layer) {
		j.Layer++
		if j.Layer > JournalLayerValues {
			j.Complete = true
		}
	}
	return j.Complete
}

var genericJournalResponses = map[string]bool{
	"yes": true, "no": true, "ok": true, "sure": true, "maybe": true,
	"i don't know": true, "nothing": true, "fine": true, "good": true,
}

// IsValidJournalResponse rejects answers too short or too generic to
// explore.
func IsValidJournalResponse(input string) bool {
	trimmed := strings.TrimSpace(input)
	if len(trimmed) < 15 {
		return false
	}
	return !genericJournalResponses[strings.ToLower(trimmed)]
}
