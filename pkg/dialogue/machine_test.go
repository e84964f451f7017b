package dialogue_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"op-mental-be/pkg/dialogue"
)

func TestScaleValidatorBoundaries(t *testing.T) {
	q := dialogue.Question{Kind: dialogue.KindScale, Min: 1, Max: 10}

	for _, input := range []string{"1", "10", " 5 "} {
		ok, _ := q.Validate(input)
		assert.True(t, ok, "expected %q to validate", input)
	}
	for _, input := range []string{"0", "11", "abc", ""} {
		ok, reason := q.Validate(input)
		assert.False(t, ok, "expected %q to fail", input)
		assert.NotEmpty(t, reason)
	}
}

func TestFreeTextValidatorLength(t *testing.T) {
	q := dialogue.Question{Kind: dialogue.KindFreeText, MinLength: 10}

	ok, _ := q.Validate("a long enough answer")
	assert.True(t, ok)

	ok, reason := q.Validate("short")
	assert.False(t, ok)
	assert.Contains(t, reason, "10")
}

func TestListValidatorAndParsing(t *testing.T) {
	q := dialogue.Question{Kind: dialogue.KindList, MinItems: 2}

	ok, _ := q.Validate("a, b, c")
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b", "c"}, dialogue.ParseList("a, b, c"))

	ok, _ = q.Validate("just one phrase")
	assert.False(t, ok)

	ok, _ = q.Validate("patience; persistence")
	assert.True(t, ok)

	// A single item without separators still needs substance
	single := dialogue.Question{Kind: dialogue.KindList, MinItems: 1}
	ok, _ = single.Validate("hope")
	assert.False(t, ok)
	ok, _ = single.Validate("my faith in my own persistence")
	assert.True(t, ok)
}

func TestParseListBulletFallback(t *testing.T) {
	items := dialogue.ParseList("- 1. resilience")
	assert.Equal(t, []string{"resilience"}, items)

	items = dialogue.ParseList("whole answer as one item")
	assert.Equal(t, []string{"whole answer as one item"}, items)
}

func TestSubmitAdvancesByOnePerValidAnswer(t *testing.T) {
	cfg := dialogue.TherapyPersona()
	state := dialogue.NewState()

	result := state.Submit(cfg, "3")
	assert.Equal(t, dialogue.StatusContinue, result.Status)
	assert.Equal(t, 1, state.QuestionIndex)
	assert.Equal(t, 3, state.Answers["intensity"].Scale)

	result = state.Submit(cfg, "It started about two months ago and has been getting worse")
	assert.Equal(t, dialogue.StatusContinue, result.Status)
	assert.Equal(t, 2, state.QuestionIndex)
}

func TestInvalidAnswerDoesNotMutateState(t *testing.T) {
	cfg := dialogue.TherapyPersona()
	state := dialogue.NewState()

	result := state.Submit(cfg, "not a number")
	assert.Equal(t, dialogue.StatusInvalid, result.Status)
	assert.NotEmpty(t, result.Error)
	assert.Equal(t, 0, state.PhaseIndex)
	assert.Equal(t, 0, state.QuestionIndex)
	assert.Empty(t, state.Answers)

	// Same question stays active
	q, ok := state.CurrentQuestion(cfg)
	require.True(t, ok)
	assert.Equal(t, result.Question, q.Prompt)
}

func TestPhaseCompleteAndAdvance(t *testing.T) {
	cfg := dialogue.TherapyPersona()
	state := dialogue.NewState()

	answers := []string{
		"5",
		"It began around the start of the year and slowly escalated",
		"Mostly my work performance and my closest relationships",
		"Deadlines make it worse, rest makes it better",
	}
	var last dialogue.Result
	for _, a := range answers {
		last = state.Submit(cfg, a)
	}
	assert.Equal(t, dialogue.StatusPhaseComplete, last.Status)

	require.True(t, state.AdvancePhase(cfg))
	assert.Equal(t, 1, state.PhaseIndex)
	assert.Equal(t, 0, state.QuestionIndex)
}

func TestAdvancePhaseStopsAtTerminal(t *testing.T) {
	cfg := dialogue.MindsetPersona()
	state := dialogue.NewState()
	state.PhaseIndex = len(cfg.Phases) - 1

	assert.False(t, state.AdvancePhase(cfg))
	assert.Equal(t, len(cfg.Phases)-1, state.PhaseIndex)
}

func TestCheckBoundsRejectsCorruptState(t *testing.T) {
	cfg := dialogue.MindsetPersona()

	state := &dialogue.State{PhaseIndex: 99}
	assert.Error(t, state.CheckBounds(cfg))

	state = &dialogue.State{PhaseIndex: 0, QuestionIndex: 42}
	assert.Error(t, state.CheckBounds(cfg))

	state = &dialogue.State{PhaseIndex: 1, QuestionIndex: 1}
	require.NoError(t, state.CheckBounds(cfg))
	assert.NotNil(t, state.Answers)
}

func TestClassifyChallengePriority(t *testing.T) {
	cases := map[string]string{
		"I feel stuck at work and can't motivate myself": dialogue.ChallengeMotivation,
		"I've been so anxious and sad lately":             dialogue.ChallengeMoodDisorders,
		"flashbacks from a traumatic event":               dialogue.ChallengeTrauma,
		"constant arguments with my partner":              dialogue.ChallengeRelationship,
		"I feel like a fraud at my job":                   dialogue.ChallengeSelfDoubt,
		"creatively blocked for weeks":                    dialogue.ChallengePerformance,
		"nothing in particular, just heavy":               dialogue.ChallengeGeneral,
	}
	for message, want := range cases {
		assert.Equal(t, want, dialogue.ClassifyChallenge(message), "message %q", message)
	}
}

func TestMinimalResponseGate(t *testing.T) {
	for _, input := range []string{"ok", "OK", " start ", "y", "one"} {
		assert.True(t, dialogue.IsMinimalResponse(input), "expected %q minimal", input)
	}
	assert.False(t, dialogue.IsMinimalResponse("I'm dealing with burnout at my job and feeling exhausted every day"))
	assert.False(t, dialogue.IsMinimalResponse("two words"))
}

func TestMindsetPersonaShape(t *testing.T) {
	cfg := dialogue.MindsetPersona()
	require.Len(t, cfg.Phases, 4)
	assert.Len(t, cfg.Phases[0].Questions, 3)
	assert.Len(t, cfg.Phases[3].Questions, 2)
	assert.Equal(t, "mantra", cfg.Phases[3].Questions[0].Key)
}

func TestTherapyPersonaShape(t *testing.T) {
	cfg := dialogue.TherapyPersona()
	require.Len(t, cfg.Phases, 5)
	for _, phase := range cfg.Phases {
		assert.Len(t, phase.Questions, 4)
		assert.NotEmpty(t, phase.Goal)
		for _, q := range phase.Questions {
			assert.NotEmpty(t, q.Key)
			assert.False(t, strings.HasSuffix(q.Prompt, " "))
		}
	}
	assert.Equal(t, "intensity", cfg.Phases[0].Questions[0].Key)
}

func TestJournalLayerAdvancement(t *testing.T) {
	j := dialogue.NewJournalState("personal_win")

	assert.False(t, j.AddResponse("I finally finished the marathon I trained for"))
	assert.Equal(t, dialogue.JournalLayerFacts, j.Layer)
	assert.False(t, j.AddResponse("It took six months of early mornings to get there"))
	assert.Equal(t, dialogue.JournalLayerEmotions, j.Layer)

	j.AddResponse("I felt proud and a little stunned at the finish line")
	j.AddResponse("There was also relief that the training paid off")
	assert.Equal(t, dialogue.JournalLayerMeaning, j.Layer)

	j.AddResponse("It means I can follow through on hard things")
	j.AddResponse("I tell myself a story of persistence now")
	assert.Equal(t, dialogue.JournalLayerPerspective, j.Layer)

	// Layers 4 and 5 need one answer each
	assert.False(t, j.AddResponse("A mentor would say this proves my discipline"))
	assert.Equal(t, dialogue.JournalLayerValues, j.Layer)
	assert.True(t, j.AddResponse("It connects to my value of steady commitment"))
	assert.True(t, j.Complete)
}

func TestJournalResponseValidity(t *testing.T) {
	assert.False(t, dialogue.IsValidJournalResponse("fine"))
	assert.False(t, dialogue.IsValidJournalResponse("short one"))
	assert.True(t, dialogue.IsValidJournalResponse("I had a difficult conversation with my manager today"))
}
