package prompt

import (
	"fmt"
	"strings"

	"op-mental-be/pkg/knowledge"
	"op-mental-be/pkg/rag/memory"
)

// ChatBuilder assembles the free-form support-chat prompt: persona
// instructions, age guidance, recalled conversation turns, retrieved
// knowledge, the raw message, and a closing style reminder.
type ChatBuilder struct {
	system      string
	ageGuidance string
	recalled    []memory.Turn
	insights    []knowledge.Result
	message     string
	style       string
}

func NewChatBuilder(system, ageGuidance string, recalled []memory.Turn, insights []knowledge.Result, message, style string) *ChatBuilder {
	return &ChatBuilder{
		system:      system,
		ageGuidance: ageGuidance,
		recalled:    recalled,
		insights:    insights,
		message:     message,
		style:       style,
	}
}

func (b *ChatBuilder) Build() string {
	var prompt strings.Builder

	prompt.WriteString(b.system)
	prompt.WriteString("\n\n")

	b.writeAgeGuidance(&prompt)
	b.writeRecalledContext(&prompt)
	b.writeRetrievedInsights(&prompt)
	b.writeMessage(&prompt)
	b.writeStyleReminder(&prompt)

	return prompt.String()
}

func (b *ChatBuilder) writeAgeGuidance(prompt *strings.Builder) {
	if b.ageGuidance == "" {
		return
	}
	prompt.WriteString("Age Group Guidance: ")
	prompt.WriteString(b.ageGuidance)
	prompt.WriteString("\n\n")
}

func (b *ChatBuilder) writeRecalledContext(prompt *strings.Builder) {
	prompt.WriteString("Previous conversation context (if any):\n")
	for _, turn := range b.recalled {
		prompt.WriteString(turn.FullText())
		prompt.WriteString("\n")
	}
	prompt.WriteString("\n")
}

func (b *ChatBuilder) writeRetrievedInsights(prompt *strings.Builder) {
	if len(b.insights) == 0 {
		return
	}
	prompt.WriteString("Retrieved knowledge (from your knowledge base):\n")
	for _, insight := range b.insights {
		text := insight.Text
		if len(text) > 120 {
			text = text[:120] + "..."
		}
		prompt.WriteString(fmt.Sprintf("- %s: %s\n", insight.Title, text))
	}
	prompt.WriteString("\n")
}

func (b *ChatBuilder) writeMessage(prompt *strings.Builder) {
	prompt.WriteString("Current message: ")
	prompt.WriteString(b.message)
	prompt.WriteString("\n\n")
}

func (b *ChatBuilder) writeStyleReminder(prompt *strings.Builder) {
	if b.style == "" {
		return
	}
	prompt.WriteString(b.style)
}
