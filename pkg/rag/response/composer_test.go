package response_test

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"op-mental-be/pkg/dialogue"
	"op-mental-be/pkg/knowledge"
	"op-mental-be/pkg/llm/llmtest"
	"op-mental-be/pkg/rag/response"
)

func newComposer(stub *llmtest.StubProvider) *response.Composer {
	return response.NewComposer(stub, log.New(io.Discard, "", 0))
}

func TestReplyUsesModelOutput(t *testing.T) {
	c := newComposer(&llmtest.StubProvider{Response: "warm supportive reply"})

	reply := c.Reply(context.Background(), "some prompt")
	assert.Equal(t, "warm supportive reply", reply)
}

func TestReplyFallbackNamesError(t *testing.T) {
	c := newComposer(&llmtest.StubProvider{Err: errors.New("quota exceeded")})

	reply := c.Reply(context.Background(), "some prompt")
	assert.Contains(t, reply, "trouble connecting")
	assert.Contains(t, reply, "quota exceeded")
	assert.Contains(t, reply, "mental health professional")
}

func TestPhaseSummaryListsAccomplishments(t *testing.T) {
	cfg := dialogue.TherapyPersona()
	state := dialogue.NewState()
	state.Answers["intensity"] = dialogue.Answer{Kind: dialogue.KindScale, Scale: 7}
	state.Answers["duration"] = dialogue.Answer{Kind: dialogue.KindFreeText, Text: "since last spring"}

	c := newComposer(&llmtest.StubProvider{})
	summary := c.PhaseSummary(cfg.Phases[0], state)

	assert.Contains(t, summary, "Phase 1: Identification")
	assert.Contains(t, summary, "Identified challenge intensity: 7/10")
	assert.Contains(t, summary, "Mapped timeline and duration")
	assert.NotContains(t, summary, "impact on life areas")
}

func TestPhaseSummaryWithNoAnswers(t *testing.T) {
	cfg := dialogue.TherapyPersona()
	c := newComposer(&llmtest.StubProvider{})

	summary := c.PhaseSummary(cfg.Phases[1], dialogue.NewState())
	assert.Contains(t, summary, "Building awareness and insight step by step")
}

func TestMindsetSummaryUsesMantra(t *testing.T) {
	cfg := dialogue.MindsetPersona()
	state := dialogue.NewState()
	state.Answers["mantra"] = dialogue.Answer{Kind: dialogue.KindFreeText, Text: "I control my response"}
	state.Answers["circumstances"] = dialogue.Answer{Kind: dialogue.KindFreeText, Text: "a stressful job change"}

	c := newComposer(&llmtest.StubProvider{})
	summary := c.MindsetSummary(cfg, state)

	assert.Contains(t, summary, `"I control my response"`)
	assert.Contains(t, summary, "a stressful job change")
	assert.Contains(t, summary, "CONGRATULATIONS")
}

func TestMindsetSummaryDefaultMantra(t *testing.T) {
	cfg := dialogue.MindsetPersona()
	c := newComposer(&llmtest.StubProvider{})

	summary := c.MindsetSummary(cfg, dialogue.NewState())
	assert.Contains(t, summary, `"I am resilient"`)
}

func TestFinalTherapySummaryFallback(t *testing.T) {
	state := dialogue.NewState()
	state.Answers["intensity"] = dialogue.Answer{Kind: dialogue.KindScale, Scale: 5}

	c := newComposer(&llmtest.StubProvider{Err: errors.New("model offline")})
	summary := c.FinalTherapySummary(context.Background(), dialogue.ChallengeMotivation, state, nil)

	assert.Contains(t, summary, "AI Therapeutic Analysis")
	assert.Contains(t, summary, "motivation issues")
	assert.Contains(t, summary, "Distress Tolerance")
}

func TestFinalTherapySummaryUsesModel(t *testing.T) {
	state := dialogue.NewState()
	stub := &llmtest.StubProvider{Response: "clinical assessment text"}
	c := newComposer(stub)

	summary := c.FinalTherapySummary(context.Background(), dialogue.ChallengeGeneral, state, nil)
	assert.Equal(t, "clinical assessment text", summary)
}

func TestJournalSummaryFallbacks(t *testing.T) {
	state := dialogue.NewJournalState("personal_challenge")
	state.Sentiment = "negative"
	state.Responses[1] = []string{"a hard week at home"}

	c := newComposer(&llmtest.StubProvider{Err: errors.New("offline")})
	summary := c.JournalSummary(context.Background(), state, nil)

	assert.Contains(t, summary, "AI LIFE COACH SESSION SUMMARY")
	assert.Contains(t, summary, "Personal Challenge")
	assert.Contains(t, summary, "Present-Focused")
	assert.Contains(t, summary, "Continue regular self-reflection")
	assert.Contains(t, summary, "curated database")
}

func TestJournalSummarySources(t *testing.T) {
	state := dialogue.NewJournalState("professional_win")
	state.FutureFocused = true
	state.Sentiment = "positive"

	evidence := []knowledge.Result{
		{Title: "Mayo Clinic", Text: "structured reflection reduces stress"},
		{Title: "Mayo Clinic", Text: "positive visualization"},
		{Title: "APA", Text: "goal steps increase success"},
	}

	c := newComposer(&llmtest.StubProvider{Response: "insightful text"})
	summary := c.JournalSummary(context.Background(), state, evidence)

	require.Contains(t, summary, "Future-Focused")
	assert.Contains(t, summary, "• Mayo Clinic")
	assert.Contains(t, summary, "• APA")
}
