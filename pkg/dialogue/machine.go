package dialogue

import "fmt"

// Turn statuses returned by Submit.
const (
	StatusContinue      = "continue"
	StatusInvalid       = "invalid_response"
	StatusPhaseComplete = "phase_complete"
	StatusFinalSummary  = "final_summary"
)

// State is the mutable progress of one structured session. It holds
// only validated data: invalid answers never touch it.
type State struct {
	PhaseIndex    int
	QuestionIndex int
	Answers       map[string]Answer
	Complete      bool
}

func NewState() *State {
	return &State{Answers: make(map[string]Answer)}
}

// CheckBounds verifies a persisted state against the persona's shape.
// Guards against corrupted or stale session payloads.
func (s *State) CheckBounds(cfg PersonaConfig) error {
	if s.PhaseIndex < 0 || s.PhaseIndex >= len(cfg.Phases) {
		return fmt.Errorf("dialogue: phase index %d out of range for %s", s.PhaseIndex, cfg.Name)
	}
	questions := cfg.Phases[s.PhaseIndex].Questions
	if s.QuestionIndex < 0 || s.QuestionIndex > len(questions) {
		return fmt.Errorf("dialogue: question index %d out of range for %s phase %d", s.QuestionIndex, cfg.Name, s.PhaseIndex)
	}
	if s.Answers == nil {
		s.Answers = make(map[string]Answer)
	}
	return nil
}

// CurrentPhase returns the active phase.
func (s *State) CurrentPhase(cfg PersonaConfig) Phase {
	return cfg.Phases[s.PhaseIndex]
}

// CurrentQuestion returns the active question, or false when the phase
// has no unanswered questions left.
func (s *State) CurrentQuestion(cfg PersonaConfig) (Question, bool) {
	questions := cfg.Phases[s.PhaseIndex].Questions
	if s.QuestionIndex < len(questions) {
		return questions[s.QuestionIndex], true
	}
	return Question{}, false
}

// Result reports the outcome of one submitted answer.
type Result struct {
	Status   string
	Error    string
	Question string
}

// Submit validates input against the active question. Invalid input
// leaves the state untouched and re-presents the same question. Valid
// input stores the coerced answer and advances by exactly one question.
func (s *State) Submit(cfg PersonaConfig, input string) Result {
	question, ok := s.CurrentQuestion(cfg)
	if !ok {
		return Result{Status: StatusPhaseComplete}
	}

	valid, reason := question.Validate(input)
	if !valid {
		return Result{
			Status:   StatusInvalid,
			Error:    reason,
			Question: question.Prompt,
		}
	}

	s.Answers[question.Key] = question.Coerce(input)
	s.QuestionIndex++

	if s.QuestionIndex >= len(cfg.Phases[s.PhaseIndex].Questions) {
		return Result{Status: StatusPhaseComplete}
	}

	next, _ := s.CurrentQuestion(cfg)
	return Result{Status: StatusContinue, Question: next.Prompt}
}

// AdvancePhase moves to the next phase, resetting the question index.
// Returns false when already at the terminal phase.
func (s *State) AdvancePhase(cfg PersonaConfig) bool {
	if s.PhaseIndex < len(cfg.Phases)-1 {
		s.PhaseIndex++
		s.QuestionIndex = 0
		return true
	}
	return false
}
