package service

import (
	"context"
	"testing"

	"op-mental-be/internal/dto"
	"op-mental-be/internal/pkg/serverutils"
	"op-mental-be/pkg/knowledge"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func journalDocs() []knowledge.Document {
	return []knowledge.Document{
		{Title: "Mayo Clinic - Journaling", Text: "Gratitude journaling improves sleep quality and wellbeing over time", Domain: "journal"},
		{Title: "APA - Reflection", Text: "Expressive writing about stressful events reduces intrusive thoughts", Domain: "journal"},
	}
}

func newJournalService() (IJournalService, *dto.JournalChatResponse, error) {
	svc := NewJournalService(newJournalRepo(), testRetriever(journalDocs()), testComposer("coach reply"), testAnalyzer(), nopLogger{})
	start, err := svc.Send(context.Background(), "user-1", &dto.JournalChatRequest{Message: "2"})
	return svc, start, err
}

func TestJournalStartSelectsEntryPoint(t *testing.T) {
	_, start, err := newJournalService()
	require.NoError(t, err)

	assert.Equal(t, "personal_challenge", start.EntryPoint)
	assert.Equal(t, 1, start.CurrentLayer)
	assert.Contains(t, start.Reply, "What has been going on in your personal life")
}

func TestJournalStartRejectsInvalidChoice(t *testing.T) {
	svc := NewJournalService(newJournalRepo(), testRetriever(journalDocs()), testComposer("coach reply"), testAnalyzer(), nopLogger{})

	_, err := svc.Send(context.Background(), "user-1", &dto.JournalChatRequest{Message: "7"})

	var apiErr *serverutils.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Code)
}

func TestJournalShortResponseDoesNotAdvance(t *testing.T) {
	svc, start, err := newJournalService()
	require.NoError(t, err)

	res, err := svc.Send(context.Background(), "user-1", &dto.JournalChatRequest{
		Message:   "work is fine",
		SessionId: start.SessionId,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, res.CurrentLayer)
	assert.False(t, res.IsComplete)
}

func TestJournalOffTopicRedirects(t *testing.T) {
	svc, start, err := newJournalService()
	require.NoError(t, err)

	res, err := svc.Send(context.Background(), "user-1", &dto.JournalChatRequest{
		Message:   "17 plus 25 equals 42 and penguins live in antarctica together",
		SessionId: start.SessionId,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, res.CurrentLayer)
	assert.NotEmpty(t, res.Reply)
	assert.NotEqual(t, "coach reply", res.Reply)
}

func TestJournalLayersAdvanceToSummary(t *testing.T) {
	svc, start, err := newJournalService()
	require.NoError(t, err)

	answers := []string{
		"My boss criticized my project in front of the whole team at work last week",
		"The feedback focused on missed deadlines and scope problems in my work",
		"I felt humiliated and frustrated because I worked overtime on that project",
		"Underneath the anger I noticed real worry and stress about my job security",
		"It makes me question whether my work is valued at this company anymore",
		"Maybe this challenge means I care deeply about doing quality work here",
		"A colleague said the criticism was about process, not my personal worth",
		"I value craftsmanship and honest feedback even when it stings my confidence",
	}

	var res *dto.JournalChatResponse
	for _, answer := range answers {
		res, err = svc.Send(context.Background(), "user-1", &dto.JournalChatRequest{
			Message:   answer,
			SessionId: start.SessionId,
		})
		require.NoError(t, err)
	}

	assert.True(t, res.IsComplete)
	assert.Contains(t, res.Reply, "AI LIFE COACH SESSION SUMMARY")
	assert.Contains(t, res.Reply, "Focus Area: Personal Challenge")

	// Completed sessions reject further messages.
	_, err = svc.Send(context.Background(), "user-1", &dto.JournalChatRequest{
		Message:   "can I add something else about my week at work",
		SessionId: start.SessionId,
	})
	assert.ErrorIs(t, err, ErrSessionComplete)
}
