package tutor

import "github.com/abhisek/flashlingo/internal/llm"

// ExplanationSchema defines the JSON schema for answer explanations.
var ExplanationSchema = &llm.Schema{
	Name:        "answer-explanation",
	Description: "Why the correct option answers the exam question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"explanation": map[string]any{
				"type":        "string",
				"description": "Why the correct option is right (2-4 sentences)",
				"minLength":   1,
			},
			"mistake": map[string]any{
				"type":        "string",
				"description": "What is wrong with the learner's choice; empty if they chose correctly",
			},
			"example": map[string]any{
				"type":        "string",
				"description": "One short example sentence using the correct form",
			},
		},
		"required":             []any{"explanation", "mistake", "example"},
		"additionalProperties": false,
	},
}
