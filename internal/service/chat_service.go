package service

import (
	"context"
	"time"

	"op-mental-be/internal/constant"
	"op-mental-be/internal/dto"
	"op-mental-be/internal/pkg/logger"
	repository "op-mental-be/internal/repository/memory"
	"op-mental-be/pkg/embedding"
	"op-mental-be/pkg/knowledge"
	"op-mental-be/pkg/rag/memory"
	"op-mental-be/pkg/rag/prompt"
	"op-mental-be/pkg/rag/response"
	"op-mental-be/pkg/store"

	"github.com/google/uuid"
)

type IChatService interface {
	Send(ctx context.Context, userId string, req *dto.SendChatRequest) (*dto.SendChatResponse, error)
	History(ctx context.Context, userId, sessionId string) (*dto.ChatHistoryResponse, error)
	Delete(ctx context.Context, userId, sessionId string) error
}

type chatService struct {
	sessions          *repository.SessionRepository[store.ChatSession]
	embeddingProvider embedding.EmbeddingProvider
	retriever         *knowledge.Retriever
	composer          *response.Composer
	logger            logger.ILogger
}

func NewChatService(
	sessions *repository.SessionRepository[store.ChatSession],
	embeddingProvider embedding.EmbeddingProvider,
	retriever *knowledge.Retriever,
	composer *response.Composer,
	log logger.ILogger,
) IChatService {
	return &chatService{
		sessions:          sessions,
		embeddingProvider: embeddingProvider,
		retriever:         retriever,
		composer:          composer,
		logger:            log,
	}
}

func (s *chatService) Send(ctx context.Context, userId string, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	var session *store.ChatSession
	if req.SessionId == "" {
		session = &store.ChatSession{
			ID:       uuid.NewString(),
			UserID:   userId,
			AgeGroup: req.AgeGroup,
		}
	} else {
		found, ok := s.sessions.Get(req.SessionId)
		if !ok || found.UserID != userId {
			return nil, ErrSessionNotFound
		}
		session = found
		if req.AgeGroup != "" {
			session.AgeGroup = req.AgeGroup
		}
	}

	// Conversation memory lives only in the flat history; the embedding
	// index is rebuilt on every turn.
	conversation := memory.NewFromHistory(s.embeddingProvider, session.History)
	recalled := conversation.Recall(req.Message, 3, memory.DefaultRecallThreshold)

	insights, err := s.retriever.Retrieve(req.Message, "general", knowledge.DefaultTopK)
	if err != nil {
		s.logger.Warn("chat", "knowledge retrieval failed", map[string]interface{}{"error": err.Error()})
	}

	chatPrompt := prompt.NewChatBuilder(
		constant.GeneralChatSystemPrompt,
		constant.AgeGuidanceFor(session.AgeGroup),
		recalled,
		insights,
		req.Message,
		constant.ChatStyleReminder,
	).Build()

	reply := s.composer.Reply(ctx, chatPrompt)

	session.History = append(session.History, memory.Turn{
		Timestamp:   time.Now(),
		UserMessage: req.Message,
		BotResponse: reply,
	})
	s.sessions.Save(session.ID, session)

	return &dto.SendChatResponse{
		Reply:     reply,
		SessionId: session.ID,
	}, nil
}

func (s *chatService) History(ctx context.Context, userId, sessionId string) (*dto.ChatHistoryResponse, error) {
	session, ok := s.sessions.Get(sessionId)
	if !ok || session.UserID != userId {
		return nil, ErrSessionNotFound
	}
	return historyResponse(session.ID, session.History), nil
}

func (s *chatService) Delete(ctx context.Context, userId, sessionId string) error {
	session, ok := s.sessions.Get(sessionId)
	if !ok || session.UserID != userId {
		return ErrSessionNotFound
	}
	s.sessions.Delete(sessionId)
	return nil
}

// historyResponse maps stored turns oldest-first into the shared
// history envelope.
func historyResponse(sessionId string, turns []memory.Turn) *dto.ChatHistoryResponse {
	res := &dto.ChatHistoryResponse{
		SessionId: sessionId,
		Turns:     make([]dto.ChatTurnResponse, 0, len(turns)),
	}
	for _, turn := range turns {
		res.Turns = append(res.Turns, dto.ChatTurnResponse{
			Timestamp:   turn.Timestamp,
			UserMessage: turn.UserMessage,
			BotResponse: turn.BotResponse,
		})
	}
	return res
}
