package prep

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/interviewsprint/internal/llm"
)

func batchConfig(perTopic int) Config {
	cfg := DefaultConfig()
	cfg.BatchCount = perTopic
	return cfg
}

func TestGenerateQuestionBatch_ConcatenatesInOrder(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.JSONResponse(questionsJSON(2, "arrays")),
		llm.JSONResponse(questionsJSON(2, "lists")),
	)
	gen := New(mock, DefaultConfig(), nil)

	qs, err := gen.GenerateQuestionBatch(context.Background(), CategoryDSA, []string{"Arrays", "Linked Lists"}, LevelBasic)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 4 {
		t.Fatalf("expected 4 questions, got %d", len(qs))
	}

	wantTopics := []string{"Arrays", "Arrays", "Linked Lists", "Linked Lists"}
	for i, q := range qs {
		if q.Topic != wantTopics[i] {
			t.Errorf("question %d topic = %q, want %q", i, q.Topic, wantTopics[i])
		}
		if q.Level != LevelBasic || q.Category != CategoryDSA {
			t.Errorf("question %d tagged %s/%s", i, q.Category, q.Level)
		}
	}
	if qs[0].Question != "arrays question 1" || qs[3].Question != "lists question 2" {
		t.Errorf("unexpected order: %q ... %q", qs[0].Question, qs[3].Question)
	}

	calls := mock.Calls()
	if len(calls) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(calls))
	}
	if !strings.Contains(calls[0].Messages[0].Content, "Topic: Arrays.") ||
		!strings.Contains(calls[1].Messages[0].Content, "Topic: Linked Lists.") {
		t.Error("calls not issued in topic order")
	}
	for _, c := range calls {
		if !strings.Contains(c.Messages[0].Content, "Generate 5 distinct") {
			t.Errorf("batch calls ask for 5 per topic:\n%s", c.Messages[0].Content)
		}
	}
}

func TestGenerateQuestionBatch_UniqueIDs(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.JSONResponse(questionsJSON(5, "a")),
		llm.JSONResponse(questionsJSON(5, "b")),
		llm.JSONResponse(questionsJSON(5, "c")),
	)
	gen := New(mock, DefaultConfig(), nil)

	qs, err := gen.GenerateQuestionBatch(context.Background(), CategorySQL, []string{"x", "y", "z"}, LevelAdvanced)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seen := make(map[string]bool, len(qs))
	for _, q := range qs {
		if q.ID == "" || seen[q.ID] {
			t.Fatalf("duplicate or empty ID %q", q.ID)
		}
		seen[q.ID] = true
	}
	if len(seen) != 15 {
		t.Fatalf("expected 15 questions, got %d", len(seen))
	}
}

func TestGenerateQuestionBatch_FailureDiscardsEverything(t *testing.T) {
	cause := &llm.ErrProviderUnavailable{Err: errors.New("connection reset")}
	mock := llm.NewMockProvider(
		llm.JSONResponse(questionsJSON(2, "a")),
		llm.JSONResponse(questionsJSON(2, "b")),
		llm.ErrorResponse(cause),
		llm.JSONResponse(questionsJSON(2, "d")),
	)
	gen := New(mock, batchConfig(2), nil)

	topics := []string{"t1", "t2", "t3", "t4"}
	qs, err := gen.GenerateQuestionBatch(context.Background(), CategorySQL, topics, LevelBasic)
	if qs != nil {
		t.Fatalf("expected no questions, got %d", len(qs))
	}

	var be *BatchError
	if !errors.As(err, &be) {
		t.Fatalf("expected BatchError, got %v", err)
	}
	if be.Topic != "t3" || be.Index != 2 || be.Category != CategorySQL {
		t.Fatalf("unexpected batch error: %+v", be)
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatal("cause should be reachable through the batch error")
	}
	if mock.CallCount() != 3 {
		t.Fatalf("later topics must not be requested, got %d calls", mock.CallCount())
	}
}

func TestGenerateQuestionBatch_MalformedTopicFailsBatch(t *testing.T) {
	gen := New(&rawProvider{content: `not json`}, DefaultConfig(), nil)

	_, err := gen.GenerateQuestionBatch(context.Background(), CategoryDSA, []string{"Arrays"}, LevelBasic)
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected malformed response inside batch error, got %v", err)
	}
}

func TestGenerateQuestionBatch_EmptyTopics(t *testing.T) {
	mock := llm.NewMockProvider()
	gen := New(mock, DefaultConfig(), nil)

	qs, err := gen.GenerateQuestionBatch(context.Background(), CategoryDSA, nil, LevelBasic)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if qs == nil || len(qs) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", qs)
	}
	if mock.CallCount() != 0 {
		t.Fatalf("expected no calls, got %d", mock.CallCount())
	}
}

func TestGenerateQuestionBatch_EmptyTopicResult(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.JSONResponse(""),
		llm.JSONResponse(questionsJSON(1, "b")),
	)
	gen := New(mock, DefaultConfig(), nil)

	qs, err := gen.GenerateQuestionBatch(context.Background(), CategorySQL, []string{"a", "b"}, LevelBasic)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 1 || qs[0].Topic != "b" {
		t.Fatalf("expected only topic b's question, got %+v", qs)
	}
}

func TestGenerateQuestionBatch_CancelledBetweenTopics(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := &cancelAfterFirst{cancel: cancel}
	gen := New(p, DefaultConfig(), nil)

	_, err := gen.GenerateQuestionBatch(ctx, CategorySQL, []string{"a", "b", "c"}, LevelBasic)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if p.calls != 1 {
		t.Fatalf("expected the loop to stop after one call, got %d", p.calls)
	}
}

type cancelAfterFirst struct {
	cancel context.CancelFunc
	calls  int
}

func (p *cancelAfterFirst) Generate(context.Context, llm.Request) (*llm.Response, error) {
	p.calls++
	p.cancel()
	return &llm.Response{Content: []byte(questionsJSON(1, "x"))}, nil
}

func (p *cancelAfterFirst) ModelID() string { return "cancel" }

func TestGenerateQuestionBatch_InvalidLevel(t *testing.T) {
	mock := llm.NewMockProvider()
	gen := New(mock, DefaultConfig(), nil)

	_, err := gen.GenerateQuestionBatch(context.Background(), CategorySQL, []string{"a"}, "Senior")
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}
