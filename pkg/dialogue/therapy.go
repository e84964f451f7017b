package dialogue

// TherapyPersona is the five-phase internal challenge framework:
// identify the challenge, explore what drives it, reframe it around
// strengths, plan actions, and consolidate what was learned.
func TherapyPersona() PersonaConfig {
	return PersonaConfig{
		Name:   "internal_challenge",
		Domain: "therapy",
		Phases: []Phase{
			{
				Name: "Phase 1: Identification",
				Goal: "Understand the challenge clearly and completely by assessing its intensity, duration, impact, and interfering factors.",
				Questions: []Question{
					{
						Prompt: "How would you rate the intensity of this challenge on a scale of 1-10, where 1 is barely noticeable and 10 is completely overwhelming?",
						Key:    "intensity",
						Kind:   KindScale,
						Min:    1,
						Max:    10,
					},
					{
						Prompt:    "When did you first notice this challenge beginning? Please describe the timeline and any changes over time.",
						Key:       "duration",
						Kind:      KindFreeText,
						MinLength: 10,
					},
					{
						Prompt:    "Which areas of your life are most affected by this challenge? (Consider: work, relationships, health, self-esteem, daily activities)",
						Key:       "impact",
						Kind:      KindFreeText,
						MinLength: 15,
					},
					{
						Prompt:    "What internal or external factors seem to make this challenge stronger or weaker?",
						Key:       "interfering_factors",
						Kind:      KindFreeText,
						MinLength: 10,
					},
				},
			},
			{
				Name: "Phase 2: Exploration",
				Goal: "Create safe, deep exploration to identify core beliefs, body experiences, and personal narratives driving the emotional response.",
				Questions: []Question{
					{
						Prompt:    "Where do you feel this emotion or challenge in your body? Describe any physical sensations, tension, or changes you notice.",
						Key:       "body_experiences",
						Kind:      KindFreeText,
						MinLength: 15,
					},
					{
						Prompt:    "What story are you telling yourself about this situation? What beliefs about yourself or the world might be contributing to this challenge?",
						Key:       "personal_narrative",
						Kind:      KindFreeText,
						MinLength: 20,
					},
					{
						Prompt:   "What core beliefs do you hold about your ability to overcome difficult moments like this?",
						Key:      "core_beliefs",
						Kind:     KindList,
						MinItems: 1,
					},
					{
						Prompt:    "What would you say to a dear friend experiencing this same challenge?",
						Key:       "friend_advice",
						Kind:      KindFreeText,
						MinLength: 15,
					},
				},
			},
			{
				Name: "Phase 3: Reframing & Strengths",
				Goal: "Shift perspective from problem-focused to growth-oriented by identifying strengths and aligning responses with core values.",
				Questions: []Question{
					{
						Prompt:   "What personal strengths have helped you get through difficult times in the past?",
						Key:      "strengths",
						Kind:     KindList,
						MinItems: 2,
					},
					{
						Prompt:    "How might this challenge be an opportunity for growth that you can overcome?",
						Key:       "growth_opportunities",
						Kind:      KindFreeText,
						MinLength: 20,
					},
					{
						Prompt:   "What values are most important to you in this situation? What really matters to you here?",
						Key:      "values",
						Kind:     KindList,
						MinItems: 2,
					},
					{
						Prompt:    "Imagine your most resilient self - what would they do in this moment? How would they approach this challenge?",
						Key:       "resilient_self",
						Kind:      KindFreeText,
						MinLength: 20,
					},
				},
			},
			{
				Name: "Phase 4: Action Planning",
				Goal: "Translate insights into concrete, repeatable behaviors with specific performance actions and interference management plans.",
				Questions: []Question{
					{
						Prompt:   "What specific actions could you take this week to address this challenge? List concrete, repeatable behaviors.",
						Key:      "action_items",
						Kind:     KindList,
						MinItems: 2,
					},
					{
						Prompt:    "What obstacles might interfere with these actions, and how can you prepare for them? Create your Interference Management Plan.",
						Key:       "interference_management",
						Kind:      KindFreeText,
						MinLength: 25,
					},
					{
						Prompt:    "What daily emotion regulation practices will you commit to? (Examples: journaling, breathwork, reframing practice, acceptance exercises)",
						Key:       "daily_practices",
						Kind:      KindFreeText,
						MinLength: 15,
					},
					{
						Prompt:    "Who in your support network could help you with this challenge?",
						Key:       "support_network",
						Kind:      KindFreeText,
						MinLength: 10,
					},
				},
			},
			{
				Name: "Phase 5: Reflection & Adaptation",
				Goal: "Build confidence in your ability to engage effectively during difficult times and reinforce that this moment will pass.",
				Questions: []Question{
					{
						Prompt:    "What have you learned about yourself through this therapeutic process?",
						Key:       "self_learning",
						Kind:      KindFreeText,
						MinLength: 20,
					},
					{
						Prompt:    "How has your understanding of this challenge evolved from when we started?",
						Key:       "understanding_evolution",
						Kind:      KindFreeText,
						MinLength: 20,
					},
					{
						Prompt:    "What strategies from our work together have been most helpful so far?",
						Key:       "helpful_strategies",
						Kind:      KindFreeText,
						MinLength: 15,
					},
					{
						Prompt:    "How will you maintain your progress and continue growing as you move forward?",
						Key:       "maintenance_plan",
						Kind:      KindFreeText,
						MinLength: 20,
					},
				},
			},
		},
	}
}
