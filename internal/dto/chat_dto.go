package dto

import "time"

type SendChatRequest struct {
	Message   string `json:"message" validate:"required"`
	SessionId string `json:"session_id"`
	AgeGroup  string `json:"age_group" validate:"omitempty,oneof=youth adult masters"`
}

type SendChatResponse struct {
	Reply     string `json:"reply"`
	SessionId string `json:"session_id"`
}

type ChatTurnResponse struct {
	Timestamp   time.Time `json:"timestamp"`
	UserMessage string    `json:"user_message"`
	BotResponse string    `json:"bot_response"`
}

type ChatHistoryResponse struct {
	SessionId string             `json:"session_id"`
	Turns     []ChatTurnResponse `json:"turns"`
}
