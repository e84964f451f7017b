package dto

type TherapyChatRequest struct {
	Message   string `json:"message" validate:"required"`
	SessionId string `json:"session_id"`
}

// TherapyChatResponse mirrors the phase machine: response_type is one of
// "continue", "invalid_response", "phase_complete" or "final_summary".
type TherapyChatResponse struct {
	SessionId         string  `json:"session_id"`
	IsSessionComplete bool    `json:"is_session_complete"`
	ResponseType      string  `json:"response_type"`
	Question          *string `json:"question"`
	Phase             string  `json:"phase"`
	PhaseGoal         string  `json:"phase_goal"`
	ErrorMessage      *string `json:"error_message"`
	Summary           *string `json:"summary"`
}
