package lessons

import "github.com/abhisek/tutorloop/internal/llm"

// InsightCompressionSchema defines the JSON schema for remediation
// transcript summaries.
var InsightCompressionSchema = &llm.Schema{
	Name:        "remediation-insights",
	Description: "Compressed summary of a student's remediation conversations",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "3-5 sentence summary of the misconceptions discussed and how they were resolved",
			},
		},
		"required":             []any{"summary"},
		"additionalProperties": false,
	},
}
