package remediation

import "github.com/abhisek/tutorloop/internal/llm"

// ResponseSchema defines the JSON schema for a tutor turn in a
// remediation dialogue.
var ResponseSchema = &llm.Schema{
	Name:        "remediation-response",
	Description: "One tutor reply in a Socratic remediation dialogue",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"message": map[string]any{
				"type":        "string",
				"description": "The tutor's reply to the student (2-4 sentences, LaTeX math in $...$)",
			},
			"is_resolved": map[string]any{
				"type":        "boolean",
				"description": "True once the student has demonstrated understanding of the concept",
			},
		},
		"required":             []any{"message", "is_resolved"},
		"additionalProperties": false,
	},
}
