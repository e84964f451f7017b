package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"op-mental-be/internal/dto"
	"op-mental-be/internal/pkg/logger"
	"op-mental-be/internal/pkg/serverutils"
	repository "op-mental-be/internal/repository/memory"
	"op-mental-be/pkg/dialogue"
	"op-mental-be/pkg/knowledge"
	"op-mental-be/pkg/rag/affect"
	"op-mental-be/pkg/rag/memory"
	"op-mental-be/pkg/rag/response"
	"op-mental-be/pkg/store"

	"github.com/google/uuid"
)

type IJournalService interface {
	Send(ctx context.Context, userId string, req *dto.JournalChatRequest) (*dto.JournalChatResponse, error)
	History(ctx context.Context, userId, sessionId string) (*dto.ChatHistoryResponse, error)
}

type journalService struct {
	sessions  *repository.SessionRepository[store.JournalSession]
	retriever *knowledge.Retriever
	composer  *response.Composer
	analyzer  *affect.Analyzer
	logger    logger.ILogger
}

func NewJournalService(
	sessions *repository.SessionRepository[store.JournalSession],
	retriever *knowledge.Retriever,
	composer *response.Composer,
	analyzer *affect.Analyzer,
	log logger.ILogger,
) IJournalService {
	return &journalService{
		sessions:  sessions,
		retriever: retriever,
		composer:  composer,
		analyzer:  analyzer,
		logger:    log,
	}
}

func (s *journalService) Send(ctx context.Context, userId string, req *dto.JournalChatRequest) (*dto.JournalChatResponse, error) {
	if req.SessionId == "" {
		return s.start(userId, req.Message)
	}

	session, ok := s.sessions.Get(req.SessionId)
	if !ok || session.UserID != userId {
		return nil, ErrSessionNotFound
	}
	if session.State.Complete {
		return nil, ErrSessionComplete
	}

	state := session.State
	focusArea := strings.ReplaceAll(state.EntryPoint, "_", " ")

	var reply string
	switch {
	case !dialogue.IsCoachingRelated(req.Message):
		reply = response.JournalOffTopic()

	case !dialogue.IsValidJournalResponse(req.Message):
		reply = s.composer.JournalValidation(ctx, focusArea, req.Message)

	default:
		sentiment, futureFocused := s.analyzer.Analyze(req.Message)
		state.Sentiment = sentiment
		state.FutureFocused = futureFocused

		if state.AddResponse(req.Message) {
			reply = s.summarize(ctx, state)
		} else {
			reply = s.explore(ctx, session, req.Message, focusArea)
		}
	}

	session.History = append(session.History, memory.Turn{
		Timestamp:   time.Now(),
		UserMessage: req.Message,
		BotResponse: reply,
	})
	s.sessions.Save(session.ID, session)

	return &dto.JournalChatResponse{
		Reply:        reply,
		SessionId:    session.ID,
		EntryPoint:   state.EntryPoint,
		CurrentLayer: state.Layer,
		IsComplete:   state.Complete,
	}, nil
}

// start expects a menu choice 1-4 selecting the entry point.
func (s *journalService) start(userId, message string) (*dto.JournalChatResponse, error) {
	choice := strings.TrimSpace(message)
	entryPoint, ok := dialogue.JournalEntryPoints[choice]
	if !ok {
		return nil, serverutils.NewApiError(400, "Invalid choice. Please select 1, 2, 3, or 4.")
	}

	session := &store.JournalSession{
		ID:     uuid.NewString(),
		UserID: userId,
		State:  dialogue.NewJournalState(entryPoint),
	}

	opening := dialogue.JournalOpenings[entryPoint]
	session.History = append(session.History, memory.Turn{
		Timestamp:   time.Now(),
		UserMessage: choice,
		BotResponse: opening,
	})
	s.sessions.Save(session.ID, session)

	return &dto.JournalChatResponse{
		Reply:        opening,
		SessionId:    session.ID,
		EntryPoint:   entryPoint,
		CurrentLayer: session.State.Layer,
	}, nil
}

func (s *journalService) explore(ctx context.Context, session *store.JournalSession, message, focusArea string) string {
	state := session.State

	evidenceQuery := fmt.Sprintf("%s %s exploration - Layer %d", message, focusArea, state.Layer)
	evidence, err := s.retriever.Retrieve(evidenceQuery, "journal", 2)
	if err != nil {
		s.logger.Warn("journal", "evidence retrieval failed", map[string]interface{}{"error": err.Error()})
	}

	recent := session.History
	if len(recent) > 2 {
		recent = recent[len(recent)-2:]
	}

	return s.composer.JournalExploration(ctx, state, message, recent, evidence)
}

func (s *journalService) summarize(ctx context.Context, state *dialogue.JournalState) string {
	var all []string
	for layer := dialogue.JournalLayerFacts; layer <= dialogue.JournalLayerValues; layer++ {
		all = append(all, state.Responses[layer]...)
	}
	combined := strings.Join(all, " ")
	if len(combined) > 300 {
		combined = combined[:300]
	}

	evidenceQuery := fmt.Sprintf("%s %s %s", state.EntryPoint, state.Sentiment, combined)
	evidence, err := s.retriever.Retrieve(evidenceQuery, "journal", knowledge.DefaultTopK)
	if err != nil {
		s.logger.Warn("journal", "evidence retrieval failed", map[string]interface{}{"error": err.Error()})
	}

	return s.composer.JournalSummary(ctx, state, evidence)
}

func (s *journalService) History(ctx context.Context, userId, sessionId string) (*dto.ChatHistoryResponse, error) {
	session, ok := s.sessions.Get(sessionId)
	if !ok || session.UserID != userId {
		return nil, ErrSessionNotFound
	}
	return historyResponse(session.ID, session.History), nil
}
