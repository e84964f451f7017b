package response

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"op-mental-be/pkg/dialogue"
	"op-mental-be/pkg/knowledge"
	"op-mental-be/pkg/llm"
	"op-mental-be/pkg/rag/memory"
)

const journalExplorationSystemPrompt = `You are an AI life coach with expertise in personal development, professional growth, emotional wellbeing, and goal achievement. You MUST stay within your coaching domain and only reference the evidence-based sources provided.

STRICT GUIDELINES:
- ONLY provide advice based on the evidence from these trusted sources: NIMH, Mayo Clinic, APA, ACLM, HHS, and SAMHSA
- Stay focused on life coaching topics: personal/professional challenges, emotional wellbeing, goals, relationships, and personal growth
- If asked about topics outside your domain, politely redirect to coaching-related discussions
- Use only the research insights provided in the evidence context

Current layer: %d
- Layer 1: Focus on facts and concrete details
- Layer 2: Explore emotions and feelings
- Layer 3: Examine meaning and interpretation
- Layer 4: Expand perspectives
- Layer 5: Connect to values and identity

Response Guidelines:
- Ask ONE insightful follow-up question that goes deeper
- Acknowledge their sharing with genuine empathy
- Use evidence-based insights naturally when relevant (ONLY from provided sources)
- Keep responses warm, professional, and encouraging
- Be concise but meaningful (2-3 sentences maximum)
- Avoid repeating similar questions from the conversation`

// JournalExploration acknowledges the user's entry and asks one
// follow-up question scoped to the active layer.
func (c *Composer) JournalExploration(
	ctx context.Context,
	state *dialogue.JournalState,
	userInput string,
	recent []memory.Turn,
	evidence []knowledge.Result,
) string {
	focusArea := strings.ReplaceAll(state.EntryPoint, "_", " ")

	var historyContext strings.Builder
	if len(recent) > 0 {
		historyContext.WriteString("\nRecent context:\n")
		for _, turn := range recent {
			historyContext.WriteString(fmt.Sprintf("User: %s...\nCoach: %s...\n",
				truncate(turn.UserMessage, 80), truncate(turn.BotResponse, 80)))
		}
	}

	userPrompt := fmt.Sprintf(`Session context: %s exploration - Layer %d
%s
%s

User shared: %q

Current layer %d focus: %s

Provide empathetic acknowledgment and ask ONE specific follow-up question for this layer. Base your response ONLY on the evidence sources provided.`,
		focusArea, state.Layer,
		historyContext.String(),
		formatEvidence(evidence),
		userInput,
		state.Layer, state.LayerFocus(),
	)

	reply, err := c.llmProvider.Chat(ctx, []llm.Message{
		{Role: "system", Content: fmt.Sprintf(journalExplorationSystemPrompt, state.Layer)},
		{Role: "user", Content: userPrompt},
	})
	if err != nil {
		c.logger.Printf("[WARN] Journal exploration generation failed, using fallback: %v", err)
		return "Thank you for sharing that. Can you tell me more about how this experience has affected you personally?"
	}
	return reply
}

// JournalValidation nudges the user toward a more substantial answer.
func (c *Composer) JournalValidation(ctx context.Context, focusArea, userInput string) string {
	prompt := fmt.Sprintf(`The user's response seems brief or off-topic for our %s session.
User said: %q

Provide encouraging, specific guidance for a more detailed response about life coaching topics. Be supportive and redirect to personal/professional growth topics.`,
		focusArea, userInput)

	reply, err := c.llmProvider.Chat(ctx, []llm.Message{
		{Role: "system", Content: "You are a supportive AI life coach helping someone provide more meaningful responses. Stay focused on life coaching topics only. Be encouraging and specific about life coaching topics."},
		{Role: "user", Content: prompt},
	})
	if err != nil {
		c.logger.Printf("[WARN] Journal validation generation failed, using fallback: %v", err)
		return "I'd appreciate hearing more details about your experience. Could you elaborate on what you're going through in your personal or professional life?"
	}
	return reply
}

var journalRedirects = []string{
	"I'm here to help you explore personal and professional growth. Let's focus on what matters most to you right now - what aspect of your life would you like to work on together?",
	"As your AI life coach, I'm designed to help you with personal development, career challenges, relationships, and achieving your goals. What would you like to explore about yourself today?",
	"I specialize in helping people navigate life's challenges and celebrate their wins. What's been on your mind lately that we could explore together?",
	"My expertise is in life coaching - helping you gain clarity, overcome obstacles, and achieve your goals. What area of your life could use some attention right now?",
	"Let's redirect our conversation to focus on your personal growth. What's something you've been thinking about - a challenge you're facing or a success you'd like to build on?",
	"I'm focused on helping with personal and professional development. What's happening in your life that you'd like to reflect on or work through together?",
}

// JournalOffTopic redirects input that falls outside the coaching
// domain.
func JournalOffTopic() string {
	return journalRedirects[rand.Intn(len(journalRedirects))]
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
