package response

import (
	"context"
	"fmt"
	"strings"
	"time"

	"op-mental-be/pkg/dialogue"
	"op-mental-be/pkg/knowledge"
	"op-mental-be/pkg/llm"
	"op-mental-be/pkg/rag/memory"
)

// FinalTherapySummary asks the model for a clinical-style assessment of
// the finished session. The deterministic fallback never fails.
func (c *Composer) FinalTherapySummary(
	ctx context.Context,
	challengeType string,
	state *dialogue.State,
	history []memory.Turn,
) string {
	var transcript strings.Builder
	for _, turn := range history {
		transcript.WriteString(turn.FullText())
		transcript.WriteString("\n\n")
	}

	prompt := fmt.Sprintf(`As an expert therapeutic supervisor, analyze this complete 5-Phase Internal Challenge Therapy session and provide a comprehensive clinical assessment.

**Session Data:**
Challenge Type: %s
Initial Intensity: %d/10

**Complete Therapeutic Conversation:**
%s

**Session Summary Data:**
- Strengths Identified: %s
- Core Values: %s
- Action Items: %s
- Daily Practices: %s

**Please provide a clinical analysis focusing on:**

1. **Therapeutic Progress Assessment:** engagement per phase, key breakthroughs, evidence of emotional regulation development
2. **Core Capacities Development:** distress tolerance, cognitive flexibility, emotional literacy, self-compassion
3. **Clinical Strengths Observed:** resilience factors, values alignment, social support
4. **Treatment Recommendations:** areas for continued focus, relapse prevention, maintenance of gains
5. **Prognosis and Next Steps:** expected trajectory, between-session activities, long-term growth

Use evidence-based therapeutic language while remaining compassionate and strengths-focused.`,
		challengeType,
		state.Answers["intensity"].Scale,
		transcript.String(),
		strings.Join(state.Answers["strengths"].Items, ", "),
		strings.Join(state.Answers["values"].Items, ", "),
		strings.Join(state.Answers["action_items"].Items, ", "),
		state.Answers["daily_practices"].Text,
	)

	summary, err := c.llmProvider.Chat(ctx, []llm.Message{
		{Role: "system", Content: "You are an expert therapeutic supervisor specializing in internal challenge therapy, trauma-informed care, and resilience building. Provide clinical assessments that are both professionally rigorous and deeply compassionate."},
		{Role: "user", Content: prompt},
	}, llm.WithTemperature(0.6))
	if err != nil {
		c.logger.Printf("[WARN] Therapy summary generation failed, using fallback: %v", err)
		return fallbackTherapySummary(challengeType)
	}
	return summary
}

func fallbackTherapySummary(challengeType string) string {
	return fmt.Sprintf(`**AI Therapeutic Analysis:**

**Therapeutic Progress Assessment:**
• You successfully engaged with all 5 phases of the therapeutic process
• Your responses demonstrate growing self-awareness and emotional intelligence
• You've developed concrete tools for managing your %s
• Your commitment to daily practices shows strong therapeutic engagement

**Core Capacities Development:**
✓ **Distress Tolerance:** You've shown ability to stay present with difficult emotions without immediately avoiding or escaping them
✓ **Cognitive Flexibility:** Evidence of considering multiple perspectives on your challenge rather than rigid thinking patterns
✓ **Emotional Literacy:** Growth in naming and understanding your emotional experiences with greater nuance and accuracy
✓ **Self-Compassion:** Movement toward more supportive self-talk patterns, replacing harsh self-criticism

**Clinical Strengths Observed:**
• Strong engagement with the therapeutic process
• Willingness to explore difficult emotions and beliefs
• Identification of personal strengths and values
• Development of concrete action plans
• Recognition of support systems and resources

**Treatment Recommendations:**
• Continue daily emotion regulation practices consistently
• Use your developed action plan during challenging moments
• Practice the core capacities regularly to strengthen these skills
• Maintain connection with your support network
• Monitor progress and adjust strategies as needed

**Prognosis and Next Steps:**
Your therapeutic engagement and insight development indicate strong potential for continued growth. The tools and awareness you've gained provide a solid foundation for managing future challenges. Focus on maintaining your daily practices and applying your new skills consistently.

**Continued Growth Recommendation:**
Practice your daily emotion regulation techniques and use your action plan consistently. Your therapeutic insights are real and will continue supporting your growth.`,
		strings.ToLower(challengeType))
}

// JournalSummary closes a journaling session with AI insights and
// evidence-backed recommendations drawn only from the curated corpus.
func (c *Composer) JournalSummary(
	ctx context.Context,
	state *dialogue.JournalState,
	evidence []knowledge.Result,
) string {
	var responses strings.Builder
	for layer := dialogue.JournalLayerFacts; layer <= dialogue.JournalLayerValues; layer++ {
		if answers, ok := state.Responses[layer]; ok {
			responses.WriteString(fmt.Sprintf("layer_%d: %s\n", layer, strings.Join(answers, " | ")))
		}
	}

	focusArea := strings.ReplaceAll(state.EntryPoint, "_", " ")
	insights := c.journalInsights(ctx, focusArea, responses.String(), evidence)
	recommendations := c.journalRecommendations(ctx, state, evidence)

	orientation := "Present-Focused"
	if state.FutureFocused {
		orientation = "Future-Focused"
	}

	return strings.TrimSpace(fmt.Sprintf(`AI LIFE COACH SESSION SUMMARY

SESSION OVERVIEW:
Focus Area: %s
Emotional Tone: %s
Orientation: %s

PERSONALIZED AI INSIGHTS:
%s

EVIDENCE-BASED RECOMMENDATIONS:
%s

RESEARCH SOURCES USED:
%s

Your responses demonstrated genuine engagement and thoughtful self-reflection throughout this session. The AI analysis indicates strong readiness for positive change and growth.

Session completed at: %s`,
		titleCase(focusArea),
		titleCase(state.Sentiment),
		orientation,
		insights,
		recommendations,
		formatSources(evidence),
		time.Now().Format("2006-01-02 15:04:05"),
	))
}

func (c *Composer) journalInsights(ctx context.Context, focusArea, responses string, evidence []knowledge.Result) string {
	prompt := fmt.Sprintf(`Based on this coaching session about complete %s coaching session, create personalized insights using ONLY the provided evidence:
%s
%s
Generate 2-3 specific, actionable insights that are encouraging and personalized, based solely on the evidence sources provided.`,
		focusArea, responses, formatEvidence(evidence))

	insights, err := c.llmProvider.Chat(ctx, []llm.Message{
		{Role: "system", Content: "You are an AI life coach creating personalized insights based ONLY on the evidence-based sources provided. Be specific, actionable, and encouraging. Only reference the provided research sources."},
		{Role: "user", Content: prompt},
	})
	if err != nil {
		c.logger.Printf("[WARN] Journal insights generation failed, using fallback: %v", err)
		return "Your responses demonstrate thoughtful self-reflection and genuine engagement with the coaching process."
	}
	return insights
}

func (c *Composer) journalRecommendations(ctx context.Context, state *dialogue.JournalState, evidence []knowledge.Result) string {
	var themes []string
	if strings.Contains(state.EntryPoint, "win") {
		themes = append(themes, "building on success")
	}
	if strings.Contains(state.EntryPoint, "challenge") {
		themes = append(themes, "overcoming obstacles")
	}
	if state.FutureFocused {
		themes = append(themes, "goal achievement")
	}
	if state.Sentiment == "negative" {
		themes = append(themes, "stress management")
	}

	prompt := fmt.Sprintf(`Based on session themes (%s) and ONLY the research evidence from our trusted sources:
%s
Create specific, actionable recommendations. Be practical and encouraging. Base recommendations ONLY on the evidence provided from these trusted sources.`,
		strings.Join(themes, ", "), formatEvidence(evidence))

	recommendations, err := c.llmProvider.Chat(ctx, []llm.Message{
		{Role: "system", Content: "Generate specific, actionable recommendations based ONLY on the evidence provided from our trusted research sources. Do not reference any external information."},
		{Role: "user", Content: prompt},
	})
	if err != nil {
		c.logger.Printf("[WARN] Journal recommendations generation failed, using fallback: %v", err)
		return strings.Join([]string{
			"• Continue regular self-reflection to maintain awareness and growth",
			"• Apply insights from this session to similar situations you encounter",
			"• Consider sharing your learnings with trusted friends or mentors",
			"• Schedule regular check-ins with yourself to track progress",
		}, "\n")
	}
	return recommendations
}

func formatSources(evidence []knowledge.Result) string {
	if len(evidence) == 0 {
		return "• General psychological and wellness research principles from our curated database"
	}
	seen := make(map[string]bool)
	var sources []string
	for _, ev := range evidence {
		if seen[ev.Title] {
			continue
		}
		seen[ev.Title] = true
		sources = append(sources, "• "+ev.Title)
		if len(sources) == 4 {
			break
		}
	}
	return strings.Join(sources, "\n")
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
