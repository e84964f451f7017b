package dialogue

// MindsetPersona is the four-step mindset transformation: accept the
// circumstances, find the positive frame, learn from past patterns,
// and lock in a personal mantra. Answers are free form; the minimal
// response gate does the filtering instead of length validators.
func MindsetPersona() PersonaConfig {
	return PersonaConfig{
		Name:   "mindset",
		Domain: "mindset",
		Phases: []Phase{
			{
				Name: "Step 1: Accept the Circumstances",
				Goal: "Name the situation honestly and separate what is within your control from what is not.",
				Questions: []Question{
					{
						Prompt: "What challenging circumstances are you currently facing that you need to accept?",
						Key:    "circumstances",
						Kind:   KindFreeText,
					},
					{
						Prompt: "What aspects of this situation are within your control vs. outside your control?",
						Key:    "control",
						Kind:   KindFreeText,
					},
					{
						Prompt: "What worst-case scenarios do you replay in your mind that prevent you from taking action?",
						Key:    "worst_case",
						Kind:   KindFreeText,
					},
				},
			},
			{
				Name: "Step 2: Work to Find Positivity in the Situation",
				Goal: "Reframe the circumstances to surface opportunities and things already going well.",
				Questions: []Question{
					{
						Prompt: "What is the most positive way you can view your current circumstances?",
						Key:    "positive_view",
						Kind:   KindFreeText,
					},
					{
						Prompt: "What opportunities for emotional growth can you find in this challenge?",
						Key:    "growth_opportunities",
						Kind:   KindFreeText,
					},
					{
						Prompt: "What silver linings or things that are going well can you identify, no matter how small?",
						Key:    "silver_linings",
						Kind:   KindFreeText,
					},
				},
			},
			{
				Name: "Step 3: Evaluate Your Past Ineffective Mindsets",
				Goal: "Identify mental patterns that held you back before and the wins that prove they can be beaten.",
				Questions: []Question{
					{
						Prompt: "What thoughts and attitudes have created challenges for you in the past?",
						Key:    "past_thoughts",
						Kind:   KindFreeText,
					},
					{
						Prompt: "What mental patterns from the past should you avoid?",
						Key:    "patterns_to_avoid",
						Kind:   KindFreeText,
					},
					{
						Prompt: "Describe a challenging situation from your past that you successfully overcame.",
						Key:    "past_success",
						Kind:   KindFreeText,
					},
				},
			},
			{
				Name: "Step 4: Locking In Your Mindset Mantra",
				Goal: "Condense the work into a mantra and a commitment you can return to daily.",
				Questions: []Question{
					{
						Prompt: "What is a powerful personal mantra that resonates with you? (Examples: 'I am resilient', 'I control my response, not my circumstances', 'I will find joy in every day')",
						Key:    "mantra",
						Kind:   KindFreeText,
					},
					{
						Prompt: "Write out a final statement that integrates your mantra and your mindset commitment based on all our work together.",
						Key:    "commitment",
						Kind:   KindFreeText,
					},
				},
			},
		},
	}
}
