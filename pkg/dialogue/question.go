// Package dialogue implements the phase/question state machine driving
// the structured personas. The machine is pure: it validates input,
// records answers, and advances indexes, leaving prompting and
// persistence to the caller.
package dialogue

// Kind declares how a question's answer is validated and stored.
type Kind int

const (
	KindScale Kind = iota
	KindFreeText
	KindList
)

// Question is one prompt within a phase. Min/Max bound scale answers,
// MinLength applies to free text, MinItems to lists.
type Question struct {
	Prompt    string
	Key       string
	Kind      Kind
	Min       int
	Max       int
	MinLength int
	MinItems  int
}

// Phase is an ordered group of questions with a stated goal.
type Phase struct {
	Name      string
	Goal      string
	Questions []Question
}

// PersonaConfig defines a structured persona: its name, knowledge
// domain, and ordered phases. The same machine runs every persona.
type PersonaConfig struct {
	Name   string
	Domain string
	Phases []Phase
}

// Answer is a validated, coerced response keyed by Question.Key. Only
// the field matching Kind is meaningful.
type Answer struct {
	Kind  Kind
	Scale int
	Text  string
	Items []string
}
