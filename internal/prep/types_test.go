package prep

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestParseCategory(t *testing.T) {
	for in, want := range map[string]Category{"sql": CategorySQL, "SQL": CategorySQL, "Dsa": CategoryDSA} {
		got, err := ParseCategory(in)
		if err != nil || got != want {
			t.Errorf("ParseCategory(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseCategory("golang"); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]Level{"basic": LevelBasic, "ADVANCED": LevelAdvanced, "maang": LevelMAANG} {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseLevel("staff"); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestQuestionJSONFieldNames(t *testing.T) {
	b, err := json.Marshal(Question{ID: "1", Category: CategorySQL, Topic: "Joins", Question: "q", Answer: "a", Difficulty: DifficultyEasy})
	if err != nil {
		t.Fatal(err)
	}
	got := string(b)
	if !strings.Contains(got, `"difficulty":"Easy"`) || strings.Contains(got, `"level"`) {
		t.Errorf("unexpected encoding: %s", got)
	}

	b, _ = json.Marshal(RoadmapItem{Day: 1, TimeRange: "t", FocusArea: "f"})
	if !strings.Contains(string(b), `"timeRange":"t"`) || !strings.Contains(string(b), `"focusArea":"f"`) {
		t.Errorf("unexpected roadmap encoding: %s", b)
	}
}

func TestNewID(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewID()
		if len(id) != 36 || seen[id] {
			t.Fatalf("bad or repeated ID %q", id)
		}
		seen[id] = true
	}
}

func TestTopics(t *testing.T) {
	if len(Topics(CategorySQL)) != 6 || len(Topics(CategoryDSA)) != 6 {
		t.Fatal("each category has six topics")
	}
	if Topics(CategoryDSA)[0] != "Arrays & Strings" {
		t.Errorf("unexpected first DSA topic %q", Topics(CategoryDSA)[0])
	}
	list := Topics(CategorySQL)
	list[0] = "mutated"
	if Topics(CategorySQL)[0] == "mutated" {
		t.Error("Topics must return a copy")
	}
	if Topics("Go") != nil {
		t.Error("unknown category has no topics")
	}
}

func TestStarterKit(t *testing.T) {
	kit := StarterKit()
	if len(kit.Roadmap) != 6 || len(kit.SQL) != 4 || len(kit.DSA) != 4 {
		t.Fatalf("unexpected kit sizes: %d/%d/%d", len(kit.Roadmap), len(kit.SQL), len(kit.DSA))
	}
	if err := checkRoadmap(kit.Roadmap); err != nil {
		t.Errorf("kit roadmap should pass record checks: %v", err)
	}
	for _, q := range append(kit.SQL, kit.DSA...) {
		if q.ID == "" || !q.Level.Valid() {
			t.Errorf("kit question missing ID or level: %+v", q)
		}
	}
	for _, q := range kit.SQL {
		if q.Category != CategorySQL {
			t.Errorf("SQL kit question in %s", q.Category)
		}
	}

	again := StarterKit()
	if again.SQL[0].ID == kit.SQL[0].ID {
		t.Error("each kit gets fresh IDs")
	}
}

func TestLevelInstruction(t *testing.T) {
	for _, l := range Levels {
		if LevelInstruction(l) == "" {
			t.Errorf("level %s has no instruction", l)
		}
	}
}
