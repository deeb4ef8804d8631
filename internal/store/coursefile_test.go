package store

import (
	"context"
	"errors"
	"testing"

	"github.com/tutorkit/tutorkit/internal/mastery"
)

const validCourseJSON = `{
  "id": "go-basics",
  "name": "Go Basics",
  "defaults": {"difficulty": 0.4, "bloom_target": "apply"},
  "units": [
    {
      "id": "u1",
      "name": "Foundations",
      "concepts": [
        {"id": "vars", "name": "Variables"},
        {"id": "funcs", "name": "Functions", "prerequisites": ["vars"], "difficulty": 0.6},
        {"id": "closures", "name": "Closures", "prerequisites": ["funcs"], "bloom_target": "analyze"}
      ]
    }
  ]
}`

func TestParseCourseFile(t *testing.T) {
	cf, err := ParseCourseFile([]byte(validCourseJSON))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cf.ID != "go-basics" || len(cf.Units) != 1 {
		t.Fatalf("unexpected course file: %+v", cf)
	}

	concepts, err := cf.Concepts()
	if err != nil {
		t.Fatalf("concepts: %v", err)
	}
	if len(concepts) != 3 {
		t.Fatalf("got %d concepts, want 3", len(concepts))
	}
	byID := map[string]Concept{}
	for _, c := range concepts {
		byID[c.ID] = c
	}
	if byID["vars"].Difficulty != 0.4 {
		t.Errorf("vars difficulty = %v, want default 0.4", byID["vars"].Difficulty)
	}
	if byID["funcs"].Difficulty != 0.6 {
		t.Errorf("funcs difficulty = %v, want explicit 0.6", byID["funcs"].Difficulty)
	}
	if byID["vars"].BloomTarget != mastery.Apply {
		t.Errorf("vars bloom target = %v, want default apply", byID["vars"].BloomTarget)
	}
	if byID["closures"].BloomTarget != mastery.Analyze {
		t.Errorf("closures bloom target = %v, want analyze", byID["closures"].BloomTarget)
	}
	if byID["vars"].Status != mastery.StatusNew || byID["vars"].Bloom != mastery.Remember {
		t.Errorf("fresh concept state: %+v", byID["vars"])
	}
}

func TestParseCourseFileRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"not json", `{`},
		{"missing name", `{"id": "c", "units": [{"id": "u", "concepts": [{"id": "a", "name": "A"}]}]}`},
		{"empty units", `{"id": "c", "name": "C", "units": []}`},
		{"bad id", `{"id": "Go Basics!", "name": "C", "units": [{"id": "u", "concepts": [{"id": "a", "name": "A"}]}]}`},
		{"bad bloom target", `{"id": "c", "name": "C", "units": [{"id": "u", "concepts": [{"id": "a", "name": "A", "bloom_target": "memorize"}]}]}`},
		{"difficulty out of range", `{"id": "c", "name": "C", "units": [{"id": "u", "concepts": [{"id": "a", "name": "A", "difficulty": 1.5}]}]}`},
		{"unknown field", `{"id": "c", "name": "C", "color": "red", "units": [{"id": "u", "concepts": [{"id": "a", "name": "A"}]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseCourseFile([]byte(tt.json)); !errors.Is(err, ErrInvalidPatch) {
				t.Errorf("got %v, want ErrInvalidPatch", err)
			}
		})
	}
}

func TestCourseFileGraphRejectsCycle(t *testing.T) {
	cyclic := `{
  "id": "c",
  "name": "C",
  "units": [
    {
      "id": "u",
      "concepts": [
        {"id": "a", "name": "A", "prerequisites": ["b"]},
        {"id": "b", "name": "B", "prerequisites": ["a"]}
      ]
    }
  ]
}`
	cf, err := ParseCourseFile([]byte(cyclic))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := cf.Graph(); !errors.Is(err, ErrInvalidPatch) {
		t.Fatalf("got %v, want ErrInvalidPatch for a cycle", err)
	}
}

func TestImportCourse(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	cf, err := ParseCourseFile([]byte(validCourseJSON))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := s.ImportCourse(ctx, cf); err != nil {
		t.Fatalf("import: %v", err)
	}

	course, err := s.Courses().Get(ctx, "go-basics")
	if err != nil {
		t.Fatalf("get course: %v", err)
	}
	if len(course.Units) != 1 || course.Units[0] != "u1" {
		t.Errorf("units = %v, want [u1]", course.Units)
	}
	concepts, err := s.Courses().Concepts(ctx, "go-basics")
	if err != nil {
		t.Fatalf("concepts: %v", err)
	}
	if len(concepts) != 3 {
		t.Errorf("got %d concepts, want 3", len(concepts))
	}

	// Re-import of the same course id must fail without touching state.
	if err := s.ImportCourse(ctx, cf); !errors.Is(err, ErrCourseExists) {
		t.Fatalf("re-import: got %v, want ErrCourseExists", err)
	}
}
