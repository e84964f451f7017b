package service

import (
	"context"
	"testing"

	"op-mental-be/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMindsetStartReturnsWelcomeAndFirstQuestion(t *testing.T) {
	svc := NewMindsetService(newMindsetRepo(), testComposer("generated"), nopLogger{})

	res, err := svc.Send(context.Background(), "user-1", &dto.MindsetChatRequest{Message: "start"})
	require.NoError(t, err)

	assert.NotEmpty(t, res.SessionId)
	assert.Equal(t, 1, res.CurrentStep)
	assert.False(t, res.IsComplete)
	assert.Contains(t, res.Reply, "Welcome to Your Mindset Transformation!")
	assert.Contains(t, res.Reply, "What challenging circumstances are you currently facing")
}

func TestMindsetMinimalResponseRepeatsLastQuestion(t *testing.T) {
	repo := newMindsetRepo()
	svc := NewMindsetService(repo, testComposer("generated"), nopLogger{})

	start, err := svc.Send(context.Background(), "user-1", &dto.MindsetChatRequest{Message: "start"})
	require.NoError(t, err)

	res, err := svc.Send(context.Background(), "user-1", &dto.MindsetChatRequest{
		Message:   "ok",
		SessionId: start.SessionId,
	})
	require.NoError(t, err)

	assert.Contains(t, res.Reply, "Please provide a more detailed response. Even a few words will help.")
	assert.Contains(t, res.Reply, "What challenging circumstances are you currently facing")

	session, _ := repo.Get(start.SessionId)
	assert.Equal(t, 0, session.State.QuestionIndex)
	assert.Empty(t, session.State.Answers)
}

func TestMindsetSubstantiveAnswerAdvances(t *testing.T) {
	repo := newMindsetRepo()
	svc := NewMindsetService(repo, testComposer("generated"), nopLogger{})

	start, err := svc.Send(context.Background(), "user-1", &dto.MindsetChatRequest{Message: "start"})
	require.NoError(t, err)

	res, err := svc.Send(context.Background(), "user-1", &dto.MindsetChatRequest{
		Message:   "I lost my job last month and my savings are running out",
		SessionId: start.SessionId,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, res.CurrentStep)
	assert.Contains(t, res.Reply, "within your control")

	session, _ := repo.Get(start.SessionId)
	assert.Equal(t, 1, session.State.QuestionIndex)
	assert.Equal(t, "I lost my job last month and my savings are running out", session.State.Answers["circumstances"].Text)
}

func TestMindsetStepTransitionAnnouncesNextStep(t *testing.T) {
	repo := newMindsetRepo()
	svc := NewMindsetService(repo, testComposer("generated"), nopLogger{})

	start, err := svc.Send(context.Background(), "user-1", &dto.MindsetChatRequest{Message: "start"})
	require.NoError(t, err)

	answers := []string{
		"I lost my job last month and my savings are running out",
		"I control my applications, not the hiring decisions",
		"I keep imagining never finding work again",
	}

	var res *dto.MindsetChatResponse
	for _, answer := range answers {
		res, err = svc.Send(context.Background(), "user-1", &dto.MindsetChatRequest{
			Message:   answer,
			SessionId: start.SessionId,
		})
		require.NoError(t, err)
	}

	assert.Equal(t, 2, res.CurrentStep)
	assert.Contains(t, res.Reply, "Let's move to the next step.")
	assert.Contains(t, res.Reply, "Step 2")
}

func TestMindsetCompletionYieldsMantraSummary(t *testing.T) {
	repo := newMindsetRepo()
	svc := NewMindsetService(repo, testComposer("generated"), nopLogger{})

	start, err := svc.Send(context.Background(), "user-1", &dto.MindsetChatRequest{Message: "start"})
	require.NoError(t, err)

	answers := []string{
		"I lost my job last month and my savings are running out",
		"I control my applications, not the hiring decisions",
		"I keep imagining never finding work again",
		"This could be the push toward a career I actually want",
		"I finally have time to learn new skills",
		"My family has been supportive through all of it",
		"I used to believe one failure defined me",
		"Catastrophizing every setback into a disaster",
		"I rebuilt after my business failed in 2019",
		"I am resilient and resourceful",
		"I commit to repeating my mantra every morning before job hunting",
	}

	var res *dto.MindsetChatResponse
	for _, answer := range answers {
		res, err = svc.Send(context.Background(), "user-1", &dto.MindsetChatRequest{
			Message:   answer,
			SessionId: start.SessionId,
		})
		require.NoError(t, err)
	}

	assert.True(t, res.IsComplete)
	assert.Contains(t, res.Reply, "CONGRATULATIONS!")
	assert.Contains(t, res.Reply, "I am resilient and resourceful")

	// Terminal sessions reject further messages.
	_, err = svc.Send(context.Background(), "user-1", &dto.MindsetChatRequest{
		Message:   "one more thing",
		SessionId: start.SessionId,
	})
	assert.ErrorIs(t, err, ErrSessionComplete)
}
