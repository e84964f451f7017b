package dto

type MindsetChatRequest struct {
	Message   string `json:"message" validate:"required"`
	SessionId string `json:"session_id"`
}

type MindsetChatResponse struct {
	Reply       string `json:"reply"`
	SessionId   string `json:"session_id"`
	CurrentStep int    `json:"current_step"`
	IsComplete  bool   `json:"is_complete"`
}
