package examgen

import "github.com/abhisek/tutorloop/internal/llm"

// GenerationSchema defines the JSON schema for exam generation responses.
// In the required list, explanation precedes correct_answer so the model
// writes out its worked solution before committing to a letter.
var GenerationSchema = &llm.Schema{
	Name:        "exam-generation",
	Description: "A batch of multiple-choice math exam questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question_text": map[string]any{
							"type":        "string",
							"description": "The question stem, Markdown with LaTeX math in $...$",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "One linear worked solution, each step on its own line, ending with the answer",
						},
						"choices": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"A": map[string]any{"type": "string"},
								"B": map[string]any{"type": "string"},
								"C": map[string]any{"type": "string"},
								"D": map[string]any{"type": "string"},
							},
							"required":             []any{"A", "B", "C", "D"},
							"additionalProperties": false,
						},
						"correct_answer": map[string]any{
							"type":        "string",
							"enum":        []any{"A", "B", "C", "D"},
							"description": "The letter whose value matches the explanation's answer",
						},
					},
					"required":             []any{"question_text", "explanation", "choices", "correct_answer"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

// ValidationSchema defines the JSON schema for exam validation responses.
var ValidationSchema = &llm.Schema{
	Name:        "exam-validation",
	Description: "Independent solve results for a batch of exam questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"results": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"index": map[string]any{
							"type":        "integer",
							"description": "1-based question index, matching the input order",
						},
						"reasoning": map[string]any{
							"type":        "string",
							"description": "The fresh solution used to determine correctness",
						},
						"correct_choices": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
								"enum": []any{"A", "B", "C", "D"},
							},
							"description": "Every letter that is actually correct; empty if none",
						},
					},
					"required":             []any{"index", "reasoning", "correct_choices"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"results"},
		"additionalProperties": false,
	},
}
