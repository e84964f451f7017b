package service

import (
	"context"
	"fmt"
	"time"

	"op-mental-be/internal/dto"
	"op-mental-be/internal/pkg/logger"
	repository "op-mental-be/internal/repository/memory"
	"op-mental-be/pkg/dialogue"
	"op-mental-be/pkg/rag/memory"
	"op-mental-be/pkg/rag/response"
	"op-mental-be/pkg/store"

	"github.com/google/uuid"
)

const mindsetWelcome = "Welcome to Your Mindset Transformation!\n"

type IMindsetService interface {
	Send(ctx context.Context, userId string, req *dto.MindsetChatRequest) (*dto.MindsetChatResponse, error)
	History(ctx context.Context, userId, sessionId string) (*dto.ChatHistoryResponse, error)
}

type mindsetService struct {
	sessions *repository.SessionRepository[store.MindsetSession]
	composer *response.Composer
	persona  dialogue.PersonaConfig
	logger   logger.ILogger
}

func NewMindsetService(
	sessions *repository.SessionRepository[store.MindsetSession],
	composer *response.Composer,
	log logger.ILogger,
) IMindsetService {
	return &mindsetService{
		sessions: sessions,
		composer: composer,
		persona:  dialogue.MindsetPersona(),
		logger:   log,
	}
}

func (s *mindsetService) Send(ctx context.Context, userId string, req *dto.MindsetChatRequest) (*dto.MindsetChatResponse, error) {
	if req.SessionId == "" {
		return s.start(userId), nil
	}

	session, ok := s.sessions.Get(req.SessionId)
	if !ok || session.UserID != userId {
		return nil, ErrSessionNotFound
	}
	if session.State.Complete {
		return nil, ErrSessionComplete
	}
	if err := session.State.CheckBounds(s.persona); err != nil {
		s.logger.Error("mindset", "corrupted session state", map[string]interface{}{
			"session_id": session.ID,
			"error":      err.Error(),
		})
		return nil, err
	}

	// Bare acknowledgments repeat the open question instead of counting
	// as an answer.
	if dialogue.IsMinimalResponse(req.Message) {
		return &dto.MindsetChatResponse{
			Reply:       "Please provide a more detailed response. Even a few words will help. " + session.LastQuestion,
			SessionId:   session.ID,
			CurrentStep: session.State.PhaseIndex + 1,
		}, nil
	}

	result := session.State.Submit(s.persona, req.Message)

	var reply string
	isComplete := false
	switch result.Status {
	case dialogue.StatusPhaseComplete:
		if session.State.AdvancePhase(s.persona) {
			next := session.State.CurrentPhase(s.persona)
			question, _ := session.State.CurrentQuestion(s.persona)
			reply = fmt.Sprintf("Thank you for sharing. Let's move to the next step.\n\n%s\n\n%s", next.Name, question.Prompt)
			session.LastQuestion = question.Prompt
		} else {
			session.State.Complete = true
			reply = s.composer.MindsetSummary(s.persona, session.State)
			isComplete = true
		}

	default:
		reply = result.Question
		session.LastQuestion = result.Question
	}

	session.History = append(session.History, memory.Turn{
		Timestamp:   time.Now(),
		UserMessage: req.Message,
		BotResponse: reply,
	})
	s.sessions.Save(session.ID, session)

	currentStep := session.State.PhaseIndex + 1
	if isComplete {
		currentStep = len(s.persona.Phases) + 1
	}

	return &dto.MindsetChatResponse{
		Reply:       reply,
		SessionId:   session.ID,
		CurrentStep: currentStep,
		IsComplete:  isComplete,
	}, nil
}

func (s *mindsetService) start(userId string) *dto.MindsetChatResponse {
	question := s.persona.Phases[0].Questions[0]

	session := &store.MindsetSession{
		ID:           uuid.NewString(),
		UserID:       userId,
		State:        dialogue.NewState(),
		LastQuestion: question.Prompt,
	}

	opening := fmt.Sprintf("%s\n\nLet's start by understanding what you're facing. %s", mindsetWelcome, question.Prompt)
	session.History = append(session.History, memory.Turn{
		Timestamp:   time.Now(),
		UserMessage: "<start>",
		BotResponse: opening,
	})
	s.sessions.Save(session.ID, session)

	return &dto.MindsetChatResponse{
		Reply:       opening,
		SessionId:   session.ID,
		CurrentStep: 1,
	}
}

func (s *mindsetService) History(ctx context.Context, userId, sessionId string) (*dto.ChatHistoryResponse, error) {
	session, ok := s.sessions.Get(sessionId)
	if !ok || session.UserID != userId {
		return nil, ErrSessionNotFound
	}
	return historyResponse(session.ID, session.History), nil
}
