package prep

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/interviewsprint/internal/llm"
)

// rawProvider returns fixed text without any schema checks, standing in for
// a boundary that ignores the declared shape.
type rawProvider struct {
	content string
	calls   int
}

func (p *rawProvider) Generate(context.Context, llm.Request) (*llm.Response, error) {
	p.calls++
	return &llm.Response{Content: json.RawMessage(p.content)}, nil
}

func (p *rawProvider) ModelID() string { return "raw" }

func questionsJSON(n int, prefix string) string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf(`{"question":"%s question %d","answer":"%s answer %d","difficulty":"Medium"}`, prefix, i+1, prefix, i+1)
	}
	return "[" + strings.Join(items, ",") + "]"
}

const roadmapJSON = `[
	{"day":1,"timeRange":"08:00 - 10:00","activity":"SQL warm-up","focusArea":"SQL Joins","details":"Inner vs left joins"},
	{"day":1,"timeRange":"10:00 - 10:15","activity":"Break","focusArea":"Rest","details":"Walk"},
	{"day":2,"timeRange":"09:00 - 11:00","activity":"Mock","focusArea":"Binary Trees","details":"Traversals"}
]`

func TestGenerateRoadmap_CopiesItemsVerbatim(t *testing.T) {
	mock := llm.NewMockProvider(llm.JSONResponse(roadmapJSON))
	gen := New(mock, DefaultConfig(), nil)

	items, err := gen.GenerateRoadmap(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	want := RoadmapItem{Day: 1, TimeRange: "08:00 - 10:00", Activity: "SQL warm-up", FocusArea: "SQL Joins", Details: "Inner vs left joins"}
	if items[0] != want {
		t.Errorf("item 0 = %+v, want %+v", items[0], want)
	}
	if items[2].Day != 2 || items[2].FocusArea != "Binary Trees" {
		t.Errorf("order not preserved: %+v", items[2])
	}
}

func TestGenerateRoadmap_Request(t *testing.T) {
	mock := llm.NewMockProvider(llm.JSONResponse(`[]`))
	gen := New(mock, DefaultConfig(), nil)

	if _, err := gen.GenerateRoadmap(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req, _ := mock.LastCall()
	if req.System != "You are a senior technical interviewer creating a survival guide for a student." {
		t.Errorf("unexpected system instruction: %q", req.System)
	}
	if req.Schema != RoadmapSchema {
		t.Error("expected roadmap schema")
	}
	if len(req.Messages) != 1 || !strings.Contains(req.Messages[0].Content, "48-hour") {
		t.Errorf("unexpected prompt: %+v", req.Messages)
	}
	if !strings.Contains(req.Messages[0].Content, "Include breaks.") {
		t.Error("prompt should ask for breaks")
	}
}

func TestGenerateRoadmap_EmptyArray(t *testing.T) {
	mock := llm.NewMockProvider(llm.JSONResponse(`[]`))
	gen := New(mock, DefaultConfig(), nil)

	items, err := gen.GenerateRoadmap(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", items)
	}
}

func TestGenerateRoadmap_EmptyText(t *testing.T) {
	mock := llm.NewMockProvider(llm.JSONResponse(""))
	gen := New(mock, DefaultConfig(), nil)

	items, err := gen.GenerateRoadmap(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no items, got %d", len(items))
	}
}

func TestGenerateRoadmap_ProviderErrorPropagates(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	mock := llm.NewMockProvider(llm.ErrorResponse(&llm.ErrProviderUnavailable{Err: errors.New("401 unauthorized")}))
	gen := New(mock, DefaultConfig(), zap.New(core))

	_, err := gen.GenerateRoadmap(context.Background())
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
	if errors.Is(err, ErrMalformedResponse) {
		t.Fatal("transport failure should not be malformed")
	}
	if logs.FilterMessage("failed to generate roadmap").Len() != 1 {
		t.Fatalf("expected one error log, got %v", logs.All())
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected exactly one call, got %d", mock.CallCount())
	}
}

func TestGenerateRoadmap_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", `here is your plan`},
		{"object root", `{"day":1}`},
		{"wrong field type", `[{"day":"one","timeRange":"a","activity":"b","focusArea":"c","details":"d"}]`},
		{"day out of range", `[{"day":3,"timeRange":"a","activity":"b","focusArea":"c","details":"d"}]`},
		{"blank required field", `[{"day":1,"timeRange":"","activity":"b","focusArea":"c","details":"d"}]`},
		{"trailing data", `[] []`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := New(&rawProvider{content: tt.content}, DefaultConfig(), nil)
			_, err := gen.GenerateRoadmap(context.Background())
			if !errors.Is(err, ErrMalformedResponse) {
				t.Fatalf("expected malformed response, got %v", err)
			}
			var mre *MalformedResponseError
			if !errors.As(err, &mre) || mre.Op != "roadmap" {
				t.Fatalf("expected MalformedResponseError for roadmap, got %T", err)
			}
		})
	}
}

func TestGenerateRoadmap_LenientKeepsOutOfRangeDay(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StrictValidation = false
	gen := New(&rawProvider{content: `[{"day":3,"timeRange":"a","activity":"b","focusArea":"c","details":"d"}]`}, cfg, nil)

	items, err := gen.GenerateRoadmap(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Day != 3 {
		t.Fatalf("expected the record untouched, got %+v", items)
	}
}

func TestGenerateRoadmap_SchemaRejectionIsMalformed(t *testing.T) {
	mock := llm.NewMockProvider(llm.JSONResponse(`[{"day":1}]`))
	gen := New(mock, DefaultConfig(), nil)

	_, err := gen.GenerateRoadmap(context.Background())
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected malformed response, got %v", err)
	}
	var inv *llm.ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("cause should stay reachable, got %v", err)
	}
}

func TestGenerateQuestions_TagsFromCaller(t *testing.T) {
	// The model tries to supply its own metadata; it must be ignored.
	content := `[
		{"question":"q1","answer":"a1","difficulty":"Hard","category":"SQL","topic":"Other","level":"MAANG","id":"x"},
		{"question":"q2","answer":"a2","difficulty":"Easy","category":"SQL","topic":"Other","level":"MAANG","id":"x"}
	]`
	gen := New(&rawProvider{content: content}, DefaultConfig(), nil)

	qs, err := gen.GenerateQuestions(context.Background(), CategoryDSA, "Trees & BST", LevelBasic, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(qs))
	}

	seen := map[string]bool{}
	for i, q := range qs {
		if q.Category != CategoryDSA || q.Topic != "Trees & BST" || q.Level != LevelBasic {
			t.Errorf("question %d tagged %s/%s/%s", i, q.Category, q.Topic, q.Level)
		}
		if q.ID == "" || q.ID == "x" || seen[q.ID] {
			t.Errorf("question %d has bad ID %q", i, q.ID)
		}
		seen[q.ID] = true
	}
	if qs[0].Difficulty != DifficultyHard || qs[1].Difficulty != DifficultyEasy {
		t.Errorf("difficulty should come from the model: %s, %s", qs[0].Difficulty, qs[1].Difficulty)
	}
	if qs[0].Question != "q1" || qs[0].Answer != "a1" {
		t.Errorf("unexpected content: %+v", qs[0])
	}
}

func TestGenerateQuestions_Prompt(t *testing.T) {
	tests := []struct {
		category Category
		level    Level
		want     string
	}{
		{CategorySQL, LevelBasic, "Difficulty: Easy to Medium."},
		{CategorySQL, LevelAdvanced, "Difficulty: Medium to Hard."},
		{CategoryDSA, LevelMAANG, "Difficulty: Hard/Expert."},
	}
	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			mock := llm.NewMockProvider(llm.JSONResponse(`[]`))
			gen := New(mock, DefaultConfig(), nil)

			if _, err := gen.GenerateQuestions(context.Background(), tt.category, "Window Functions", tt.level, 3); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			req, _ := mock.LastCall()
			prompt := req.Messages[0].Content
			for _, s := range []string{
				fmt.Sprintf("Generate 3 distinct, practical interview questions for %s.", tt.category),
				"Topic: Window Functions.",
				fmt.Sprintf("Level: %s (", tt.level),
				tt.want,
				"For SQL, include the query.",
			} {
				if !strings.Contains(prompt, s) {
					t.Errorf("prompt missing %q:\n%s", s, prompt)
				}
			}
			if req.Schema != QuestionsSchema {
				t.Error("expected questions schema")
			}
			if req.System != "" {
				t.Errorf("question calls carry no system instruction, got %q", req.System)
			}
		})
	}
}

func TestGenerateQuestions_DefaultCount(t *testing.T) {
	mock := llm.NewMockProvider(llm.JSONResponse(`[]`), llm.JSONResponse(`[]`))
	gen := New(mock, DefaultConfig(), nil)

	for _, count := range []int{0, -3} {
		if _, err := gen.GenerateQuestions(context.Background(), CategorySQL, "Joins", LevelBasic, count); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	for _, req := range mock.Calls() {
		if !strings.Contains(req.Messages[0].Content, "Generate 5 distinct") {
			t.Errorf("expected default count 5 in prompt:\n%s", req.Messages[0].Content)
		}
	}
}

func TestGenerateQuestions_EmptyText(t *testing.T) {
	mock := llm.NewMockProvider(llm.JSONResponse("  "))
	gen := New(mock, DefaultConfig(), nil)

	qs, err := gen.GenerateQuestions(context.Background(), CategorySQL, "Joins", LevelBasic, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if qs == nil || len(qs) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", qs)
	}
}

func TestGenerateQuestions_InvalidRequest(t *testing.T) {
	mock := llm.NewMockProvider()
	gen := New(mock, DefaultConfig(), nil)

	if _, err := gen.GenerateQuestions(context.Background(), "Go", "Joins", LevelBasic, 5); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("expected ErrInvalidRequest for category, got %v", err)
	}
	if _, err := gen.GenerateQuestions(context.Background(), CategorySQL, "Joins", "Expert", 5); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("expected ErrInvalidRequest for level, got %v", err)
	}
	if mock.CallCount() != 0 {
		t.Fatalf("invalid requests must not reach the model, got %d calls", mock.CallCount())
	}
}

func TestGenerateQuestions_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", `Sure! Here are your questions`},
		{"missing answer", `[{"question":"q","difficulty":"Easy"}]`},
		{"unknown difficulty", `[{"question":"q","answer":"a","difficulty":"Expert"}]`},
		{"truncated", `[{"question":"q","answer":"a"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.ErrorLevel)
			gen := New(&rawProvider{content: tt.content}, DefaultConfig(), zap.New(core))

			_, err := gen.GenerateQuestions(context.Background(), CategorySQL, "Joins", LevelAdvanced, 5)
			if !errors.Is(err, ErrMalformedResponse) {
				t.Fatalf("expected malformed response, got %v", err)
			}
			entries := logs.FilterMessage("failed to generate questions").All()
			if len(entries) != 1 {
				t.Fatalf("expected one error log, got %d", len(entries))
			}
			if entries[0].ContextMap()["topic"] != "Joins" {
				t.Errorf("log should carry the topic, got %v", entries[0].ContextMap())
			}
		})
	}
}

func TestGenerateQuestions_RateLimitPropagates(t *testing.T) {
	mock := llm.NewMockProvider(llm.ErrorResponse(&llm.ErrRateLimit{Err: errors.New("429")}))
	gen := New(mock, DefaultConfig(), nil)

	_, err := gen.GenerateQuestions(context.Background(), CategoryDSA, "Graphs (BFS/DFS)", LevelMAANG, 5)
	var rl *llm.ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got %v", err)
	}
}

func TestGenerateQuestions_PurposeLabel(t *testing.T) {
	var purposes []string
	p := purposeRecorder{seen: &purposes}
	gen := New(p, DefaultConfig(), nil)

	_, _ = gen.GenerateRoadmap(context.Background())
	_, _ = gen.GenerateQuestions(context.Background(), CategorySQL, "Joins", LevelBasic, 1)

	if len(purposes) != 2 || purposes[0] != "roadmap" || purposes[1] != "question-gen" {
		t.Fatalf("unexpected purposes: %v", purposes)
	}
}

type purposeRecorder struct {
	seen *[]string
}

func (p purposeRecorder) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	*p.seen = append(*p.seen, llm.PurposeFrom(ctx))
	return &llm.Response{}, nil
}

func (p purposeRecorder) ModelID() string { return "purpose" }
