package service

import (
	"context"
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

const therapyWelcome = `Welcome to Internal Challenge Therapy - 5-Phase Framework

I'm here to guide you through a therapeutic journey to understand and overcome your internal challenges.

We'll work through 5 phases together:
  Phase 1: Identification
  Phase 2: Exploration
  Phase 3: Reframing & Strengths
  Phase 4: Action Planning
  Phase 5: Reflection & Adaptation

Remember: This is a safe space. All experiences are welcomed and explored.`

type ITherapyService interface {
	Send(ctx context.Context, userId string, req *dto.TherapyChatRequest) (*dto.TherapyChatResponse, error)
	History(ctx context.Context, userId, sessionId string) (*dto.ChatHistoryResponse, error)
}

type therapyService struct {
	sessions *repository.SessionRepository[store.TherapySession]
	composer *response.Composer
	persona  dialogue.PersonaConfig
	logger   logger.ILogger
}

func NewTherapyService(
	sessions *repository.SessionRepository[store.TherapySession],
	composer *response.Composer,
	log logger.ILogger,
) ITherapyService {
	return &therapyService{
		sessions: sessions,
		composer: composer,
		persona:  dialogue.TherapyPersona(),
		logger:   log,
	}
}

func (s *therapyService) Send(ctx context.Context, userId string, req *dto.TherapyChatRequest) (*dto.TherapyChatResponse, error) {
	if req.SessionId == "" {
		return s.start(userId, req.Message), nil
	}

	session, ok := s.sessions.Get(req.SessionId)
	if !ok || session.UserID != userId {
		return nil, ErrSessionNotFound
	}
	if session.State.Complete {
		return nil, ErrSessionComplete
	}
	if err := session.State.CheckBounds(s.persona); err != nil {
		s.logger.Error("therapy", "corrupted session state", map[string]interface{}{
			"session_id": session.ID,
			"error":      err.Error(),
		})
		return nil, err
	}

	result := session.State.Submit(s.persona, req.Message)
	phase := session.State.CurrentPhase(s.persona)

	res := &dto.TherapyChatResponse{
		SessionId:    session.ID,
		ResponseType: result.Status,
		Phase:        phase.Name,
		PhaseGoal:    phase.Goal,
	}

	var botText string
	switch result.Status {
	case dialogue.StatusInvalid:
		res.ErrorMessage = &result.Error
		res.Question = &result.Question
		botText = result.Error + "\n\n" + result.Question

	case dialogue.StatusPhaseComplete:
		summary := s.composer.PhaseSummary(phase, session.State)
		if session.State.AdvancePhase(s.persona) {
			next := session.State.CurrentPhase(s.persona)
			question, _ := session.State.CurrentQuestion(s.persona)
			res.Phase = next.Name
			res.PhaseGoal = next.Goal
			res.Summary = &summary
			res.Question = &question.Prompt
			session.LastQuestion = question.Prompt
			botText = summary + "\n\n" + question.Prompt
		} else {
			session.State.Complete = true
			final := s.composer.FinalTherapySummary(ctx, session.ChallengeType, session.State, session.History)
			res.ResponseType = dialogue.StatusFinalSummary
			res.Summary = &final
			res.IsSessionComplete = true
			botText = final
		}

	default:
		res.Question = &result.Question
		session.LastQuestion = result.Question
		botText = result.Question
	}

	session.History = append(session.History, memory.Turn{
		Timestamp:   time.Now(),
		UserMessage: req.Message,
		BotResponse: botText,
	})
	s.sessions.Save(session.ID, session)

	return res, nil
}

// start creates a session from the first message. The message names
// the challenge and is classified, not consumed as an answer.
func (s *therapyService) start(userId, message string) *dto.TherapyChatResponse {
	phase := s.persona.Phases[0]
	question := phase.Questions[0]

	session := &store.TherapySession{
		ID:            uuid.NewString(),
		UserID:        userId,
		ChallengeType: dialogue.ClassifyChallenge(message),
		State:         dialogue.NewState(),
		LastQuestion:  question.Prompt,
	}

	opening := therapyWelcome + "\n\n" + question.Prompt
	session.History = append(session.History, memory.Turn{
		Timestamp:   time.Now(),
		UserMessage: message,
		BotResponse: opening,
	})
	s.sessions.Save(session.ID, session)

	return &dto.TherapyChatResponse{
		SessionId:    session.ID,
		ResponseType: dialogue.StatusContinue,
		Question:     &opening,
		Phase:        phase.Name,
		PhaseGoal:    phase.Goal,
	}
}

func (s *therapyService) History(ctx context.Context, userId, sessionId string) (*dto.ChatHistoryResponse, error) {
	session, ok := s.sessions.Get(sessionId)
	if !ok || session.UserID != userId {
		return nil, ErrSessionNotFound
	}
	return historyResponse(session.ID, session.History), nil
}
