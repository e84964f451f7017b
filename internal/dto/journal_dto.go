package dto

type JournalChatRequest struct {
	Message   string `json:"message" validate:"required"`
	SessionId string `json:"session_id"`
}

type JournalChatResponse struct {
	Reply        string `json:"reply"`
	SessionId    string `json:"session_id"`
	EntryPoint   string `json:"entry_point"`
	CurrentLayer int    `json:"current_layer"`
	IsComplete   bool   `json:"is_complete"`
}
