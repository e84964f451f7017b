package service

import (
	"context"
	"testing"

	"op-mental-be/internal/dto"
	"op-mental-be/pkg/dialogue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTherapyStartClassifiesAndAsksFirstQuestion(t *testing.T) {
	repo := newTherapyRepo()
	svc := NewTherapyService(repo, testComposer("generated"), nopLogger{})

	res, err := svc.Send(context.Background(), "user-1", &dto.TherapyChatRequest{
		Message: "I feel stuck at work and can't motivate myself",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.SessionId)
	assert.Equal(t, dialogue.StatusContinue, res.ResponseType)
	assert.False(t, res.IsSessionComplete)
	require.NotNil(t, res.Question)
	assert.Contains(t, *res.Question, "scale of 1-10")

	session, ok := repo.Get(res.SessionId)
	require.True(t, ok)
	assert.Equal(t, dialogue.ChallengeMotivation, session.ChallengeType)
	assert.Equal(t, 0, session.State.PhaseIndex)
	assert.Equal(t, 0, session.State.QuestionIndex)
}

func TestTherapyValidAnswerAdvances(t *testing.T) {
	repo := newTherapyRepo()
	svc := NewTherapyService(repo, testComposer("generated"), nopLogger{})

	start, err := svc.Send(context.Background(), "user-1", &dto.TherapyChatRequest{Message: "I can't motivate myself"})
	require.NoError(t, err)

	res, err := svc.Send(context.Background(), "user-1", &dto.TherapyChatRequest{
		Message:   "3",
		SessionId: start.SessionId,
	})
	require.NoError(t, err)

	assert.Equal(t, dialogue.StatusContinue, res.ResponseType)

	session, _ := repo.Get(start.SessionId)
	assert.Equal(t, 3, session.State.Answers["intensity"].Scale)
	assert.Equal(t, 1, session.State.QuestionIndex)
}

func TestTherapyInvalidAnswerRepeatsQuestion(t *testing.T) {
	repo := newTherapyRepo()
	svc := NewTherapyService(repo, testComposer("generated"), nopLogger{})

	start, err := svc.Send(context.Background(), "user-1", &dto.TherapyChatRequest{Message: "I can't motivate myself"})
	require.NoError(t, err)

	res, err := svc.Send(context.Background(), "user-1", &dto.TherapyChatRequest{
		Message:   "",
		SessionId: start.SessionId,
	})
	require.NoError(t, err)

	assert.Equal(t, dialogue.StatusInvalid, res.ResponseType)
	require.NotNil(t, res.ErrorMessage)
	require.NotNil(t, res.Question)

	session, _ := repo.Get(start.SessionId)
	assert.Equal(t, 0, session.State.QuestionIndex)
	assert.Empty(t, session.State.Answers)
}

func TestTherapyPhaseCompletionReturnsSummaryAndNextQuestion(t *testing.T) {
	repo := newTherapyRepo()
	svc := NewTherapyService(repo, testComposer("generated"), nopLogger{})

	start, err := svc.Send(context.Background(), "user-1", &dto.TherapyChatRequest{Message: "I can't motivate myself"})
	require.NoError(t, err)

	answers := []string{
		"3",
		"It has been going on for about six months now",
		"It affects my work performance and my relationships at home",
		"Lack of sleep and constant deadlines",
	}

	var res *dto.TherapyChatResponse
	for _, answer := range answers {
		res, err = svc.Send(context.Background(), "user-1", &dto.TherapyChatRequest{
			Message:   answer,
			SessionId: start.SessionId,
		})
		require.NoError(t, err)
	}

	assert.Equal(t, dialogue.StatusPhaseComplete, res.ResponseType)
	require.NotNil(t, res.Summary)
	assert.Contains(t, *res.Summary, "Phase Goal")
	require.NotNil(t, res.Question)
	assert.False(t, res.IsSessionComplete)

	session, _ := repo.Get(start.SessionId)
	assert.Equal(t, 1, session.State.PhaseIndex)
	assert.Equal(t, 0, session.State.QuestionIndex)
}

func TestTherapyUnknownSessionRejected(t *testing.T) {
	svc := NewTherapyService(newTherapyRepo(), testComposer("generated"), nopLogger{})

	_, err := svc.Send(context.Background(), "user-1", &dto.TherapyChatRequest{
		Message:   "3",
		SessionId: "missing",
	})

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestTherapyForeignSessionHidden(t *testing.T) {
	repo := newTherapyRepo()
	svc := NewTherapyService(repo, testComposer("generated"), nopLogger{})

	start, err := svc.Send(context.Background(), "user-1", &dto.TherapyChatRequest{Message: "I can't motivate myself"})
	require.NoError(t, err)

	_, err = svc.Send(context.Background(), "user-2", &dto.TherapyChatRequest{
		Message:   "3",
		SessionId: start.SessionId,
	})

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestTherapyCompletedSessionImmutable(t *testing.T) {
	repo := newTherapyRepo()
	svc := NewTherapyService(repo, testComposer("generated"), nopLogger{})

	start, err := svc.Send(context.Background(), "user-1", &dto.TherapyChatRequest{Message: "I can't motivate myself"})
	require.NoError(t, err)

	session, _ := repo.Get(start.SessionId)
	session.State.Complete = true
	repo.Save(session.ID, session)

	_, err = svc.Send(context.Background(), "user-1", &dto.TherapyChatRequest{
		Message:   "3",
		SessionId: start.SessionId,
	})

	assert.ErrorIs(t, err, ErrSessionComplete)
}

func TestTherapyHistoryOldestFirst(t *testing.T) {
	repo := newTherapyRepo()
	svc := NewTherapyService(repo, testComposer("generated"), nopLogger{})

	start, err := svc.Send(context.Background(), "user-1", &dto.TherapyChatRequest{Message: "I can't motivate myself"})
	require.NoError(t, err)

	_, err = svc.Send(context.Background(), "user-1", &dto.TherapyChatRequest{
		Message:   "3",
		SessionId: start.SessionId,
	})
	require.NoError(t, err)

	history, err := svc.History(context.Background(), "user-1", start.SessionId)
	require.NoError(t, err)

	require.Len(t, history.Turns, 2)
	assert.Equal(t, "I can't motivate myself", history.Turns[0].UserMessage)
	assert.Equal(t, "3", history.Turns[1].UserMessage)
}
