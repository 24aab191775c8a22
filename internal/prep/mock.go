package prep

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/interviewsprint/internal/llm"
)

// StarterResponder answers generation requests offline with starter kit
// content. It backs the "mock" provider setting.
func StarterResponder(req llm.Request) llm.MockResponse {
	kit := StarterKit()

	var payload any
	switch {
	case req.Schema == nil:
		return llm.ErrorResponse(fmt.Errorf("starter responder: request has no schema"))
	case req.Schema.Name == RoadmapSchema.Name:
		payload = kit.Roadmap
	case req.Schema.Name == QuestionsSchema.Name:
		qs := kit.DSA
		if requestedCategory(req) == CategorySQL {
			qs = kit.SQL
		}
		raw := make([]rawQuestion, len(qs))
		for i, q := range qs {
			raw[i] = rawQuestion{Question: q.Question, Answer: q.Answer, Difficulty: string(q.Difficulty)}
		}
		payload = raw
	default:
		return llm.ErrorResponse(fmt.Errorf("starter responder: unknown schema %q", req.Schema.Name))
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return llm.ErrorResponse(err)
	}
	return llm.JSONResponse(string(data))
}

// requestedCategory reads the category back out of a question prompt.
func requestedCategory(req llm.Request) Category {
	for _, m := range req.Messages {
		for _, c := range Categories {
			if strings.Contains(m.Content, fmt.Sprintf("questions for %s.", c)) {
				return c
			}
		}
	}
	return CategoryDSA
}
