package prep

import "github.com/abhisek/interviewsprint/internal/llm"

// RoadmapSchema is the response shape for GenerateRoadmap.
var RoadmapSchema = &llm.Schema{
	Name:        "study-roadmap",
	Description: "A 48-hour interview preparation plan as an ordered list of time blocks",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"day": map[string]any{
					"type":        "integer",
					"description": "1 or 2",
				},
				"timeRange": map[string]any{
					"type":        "string",
					"description": "e.g., '08:00 - 10:00'",
				},
				"activity": map[string]any{
					"type":        "string",
					"description": "Short title of the activity",
				},
				"focusArea": map[string]any{
					"type":        "string",
					"description": "e.g., 'SQL Joins' or 'Binary Trees'",
				},
				"details": map[string]any{
					"type":        "string",
					"description": "Specific topics to cover in this block",
				},
			},
			"required":             []any{"day", "timeRange", "activity", "focusArea", "details"},
			"additionalProperties": false,
		},
	},
}

// QuestionsSchema is the response shape for GenerateQuestions.
var QuestionsSchema = &llm.Schema{
	Name:        "interview-questions",
	Description: "A list of interview questions with concise model answers",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{
					"type": "string",
				},
				"answer": map[string]any{
					"type":        "string",
					"description": "Detailed answer with code/query if applicable. Markdown allowed.",
				},
				"difficulty": map[string]any{
					"type": "string",
					"enum": []any{"Easy", "Medium", "Hard"},
				},
			},
			"required":             []any{"question", "answer", "difficulty"},
			"additionalProperties": false,
		},
	},
}
