// Package response turns state machine results and session data into
// outbound text. Every LLM-backed path has a deterministic fallback so
// a failed generation never fails the turn.
package response

import (
	"context"
	"fmt"
	"log"
	"strings"

	"op-mental-be/pkg/dialogue"
	"op-mental-be/pkg/knowledge"
	"op-mental-be/pkg/llm"
	"op-mental-be/pkg/rag/memory"
)

// Composer creates user-facing replies and summaries.
type Composer struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

func NewComposer(llmProvider llm.LLMProvider, logger *log.Logger) *Composer {
	return &Composer{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

// Reply sends a fully built prompt to the model. On failure it returns
// an apology that names the error and points to professional help.
func (c *Composer) Reply(ctx context.Context, prompt string) string {
	reply, err := c.llmProvider.Generate(ctx, prompt)
	if err != nil {
		c.logger.Printf("[ERROR] Chat generation failed: %v", err)
		return fmt.Sprintf("I'm sorry, I'm having trouble connecting right now. Please try again or contact a mental health professional if this is urgent. Error: %v", err)
	}
	return reply
}

// PhaseSummary celebrates a completed phase by listing what the
// collected answers accomplished.
func (c *Composer) PhaseSummary(phase dialogue.Phase, state *dialogue.State) string {
	return fmt.Sprintf(`**%s**

**Phase Goal:** %s

**What we've accomplished in this phase:**
%s

**Moving forward with strength and clarity.**`,
		phase.Name,
		phase.Goal,
		c.phaseAccomplishments(phase, state),
	)
}

// Bullet templates for answer keys worth calling out individually.
var accomplishmentNotes = map[string]string{
	"intensity":               "Identified challenge intensity: %d/10",
	"duration":                "Mapped timeline and duration of the challenge",
	"impact":                  "Assessed impact on life areas",
	"interfering_factors":     "Identified key interfering factors",
	"body_experiences":        "Explored somatic experiences and body awareness",
	"personal_narrative":      "Examined personal narratives and belief systems",
	"core_beliefs":            "Identified core beliefs about overcoming challenges",
	"friend_advice":           "Practiced self-compassion through a friend's perspective",
	"strengths":               "Identified personal strengths: %s",
	"growth_opportunities":    "Reframed challenge as growth opportunity",
	"values":                  "Clarified core values: %s",
	"resilient_self":          "Connected with your most resilient self",
	"action_items":            "Developed %d specific action items",
	"interference_management": "Created interference management plan",
	"daily_practices":         "Committed to daily emotion regulation practices",
	"support_network":         "Mapped your support network",
	"self_learning":           "Consolidated learning and insights from therapeutic process",
	"maintenance_plan":        "Developed maintenance and growth strategies",
}

func (c *Composer) phaseAccomplishments(phase dialogue.Phase, state *dialogue.State) string {
	var bullets []string
	for _, q := range phase.Questions {
		answer, ok := state.Answers[q.Key]
		if !ok {
			continue
		}
		template, ok := accomplishmentNotes[q.Key]
		if !ok {
			continue
		}

		switch answer.Kind {
		case dialogue.KindScale:
			bullets = append(bullets, "• "+fmt.Sprintf(template, answer.Scale))
		case dialogue.KindList:
			if strings.Contains(template, "%d") {
				bullets = append(bullets, "• "+fmt.Sprintf(template, len(answer.Items)))
			} else if strings.Contains(template, "%s") {
				preview := answer.Items
				if len(preview) > 3 {
					preview = preview[:3]
				}
				bullets = append(bullets, "• "+fmt.Sprintf(template, strings.Join(preview, ", ")))
			} else {
				bullets = append(bullets, "• "+template)
			}
		default:
			bullets = append(bullets, "• "+template)
		}
	}

	if len(bullets) == 0 {
		return "• Building awareness and insight step by step"
	}
	return strings.Join(bullets, "\n")
}

// MindsetSummary is the deterministic closing message for a completed
// mindset session, centered on the user's own mantra.
func (c *Composer) MindsetSummary(cfg dialogue.PersonaConfig, state *dialogue.State) string {
	mantra := "I am resilient"
	if answer, ok := state.Answers["mantra"]; ok && answer.Text != "" {
		mantra = answer.Text
	}

	var summary strings.Builder
	summary.WriteString("CONGRATULATIONS! You have completed your mindset transformation.\n\n")
	summary.WriteString(fmt.Sprintf("Your personal mantra is: %q\n\n", mantra))
	summary.WriteString("Remember to use this mantra daily to reinforce your new mindset.\n\n")
	summary.WriteString("Here are some of the insights you gathered during your session:\n")

	for _, phase := range cfg.Phases[:len(cfg.Phases)-1] {
		var reflections []string
		for _, q := range phase.Questions {
			if answer, ok := state.Answers[q.Key]; ok && answer.Text != "" {
				reflections = append(reflections, answer.Text)
			}
		}
		if len(reflections) == 0 {
			continue
		}
		summary.WriteString(fmt.Sprintf("\nIn %s, you reflected on:\n", phase.Name))
		for _, r := range reflections {
			summary.WriteString(fmt.Sprintf("- %s\n", r))
		}
	}

	return summary.String()
}

// MemoryHistory converts recorded turns into chat messages for models
// that want conversational context.
func MemoryHistory(turns []memory.Turn) []llm.Message {
	var messages []llm.Message
	for _, turn := range turns {
		messages = append(messages,
			llm.Message{Role: "user", Content: turn.UserMessage},
			llm.Message{Role: "assistant", Content: turn.BotResponse},
		)
	}
	return messages
}

func formatEvidence(results []knowledge.Result) string {
	if len(results) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\nRelevant research insights from our evidence base:\n")
	for _, r := range results {
		text := r.Text
		if len(text) > 120 {
			text = text[:120] + "..."
		}
		b.WriteString(fmt.Sprintf("• %s: %s\n", r.Title, text))
	}
	return b.String()
}
