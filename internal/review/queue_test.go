package review

import (
	"testing"
	"time"

	"github.com/tutorkit/tutorkit/internal/fsrs"
	"github.com/tutorkit/tutorkit/internal/mastery"
	"github.com/tutorkit/tutorkit/internal/store"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func concept(id string, status mastery.Status) store.Concept {
	return store.Concept{
		ID:     id,
		Name:   id,
		Unit:   "u1",
		Bloom:  mastery.Understand,
		Status: status,
	}
}

func recordDue(due time.Time) store.ProgressRecord {
	rec := store.NewProgressRecord("")
	rec.FSRS = fsrs.Memory{
		Stability:  2.0,
		Difficulty: 5.0,
		State:      fsrs.StateReview,
		Due:        due,
	}
	return rec
}

func TestDueConceptsOrdering(t *testing.T) {
	concepts := []store.Concept{
		concept("closures", mastery.StatusActive),
		concept("vars", mastery.StatusActive),
		concept("funcs", mastery.StatusLearning),
	}
	records := map[string]store.ProgressRecord{
		"vars":     recordDue(testNow.AddDate(0, 0, -3)),
		"funcs":    recordDue(testNow.AddDate(0, 0, -1)),
		"closures": recordDue(testNow.AddDate(0, 0, -3)),
	}

	due := DueConcepts(concepts, records, testNow)
	if len(due) != 3 {
		t.Fatalf("got %d due, want 3", len(due))
	}
	// Most overdue first, ties broken by id.
	want := []string{"closures", "vars", "funcs"}
	for i, id := range want {
		if due[i].ConceptID != id {
			t.Errorf("position %d = %s, want %s", i, due[i].ConceptID, id)
		}
	}
	if due[0].OverdueDays != 3 {
		t.Errorf("overdue days = %v, want 3", due[0].OverdueDays)
	}
}

func TestDueConceptsExclusions(t *testing.T) {
	concepts := []store.Concept{
		concept("dropped", mastery.StatusDropped),
		concept("future", mastery.StatusActive),
		concept("unpracticed", mastery.StatusNew),
		concept("mastered", mastery.StatusMastered),
	}
	records := map[string]store.ProgressRecord{
		"dropped":  recordDue(testNow.AddDate(0, 0, -5)),
		"future":   recordDue(testNow.AddDate(0, 0, 2)),
		"mastered": recordDue(testNow.AddDate(0, 0, -1)),
	}

	due := DueConcepts(concepts, records, testNow)
	if len(due) != 1 || due[0].ConceptID != "mastered" {
		t.Fatalf("due = %+v, want only the overdue mastered concept", due)
	}
}

func TestDueConceptsBoundary(t *testing.T) {
	concepts := []store.Concept{concept("vars", mastery.StatusActive)}
	records := map[string]store.ProgressRecord{"vars": recordDue(testNow)}

	// Due exactly now counts as due.
	due := DueConcepts(concepts, records, testNow)
	if len(due) != 1 {
		t.Fatalf("concept due exactly now was excluded")
	}
	// One second earlier it is not.
	due = DueConcepts(concepts, records, testNow.Add(-time.Second))
	if len(due) != 0 {
		t.Fatalf("future concept included: %+v", due)
	}
}

func TestDueConceptsRecomputesFresh(t *testing.T) {
	concepts := []store.Concept{concept("vars", mastery.StatusActive)}
	records := map[string]store.ProgressRecord{
		"vars": recordDue(testNow.AddDate(0, 0, -1)),
	}

	if n := len(DueConcepts(concepts, records, testNow)); n != 1 {
		t.Fatalf("got %d due, want 1", n)
	}

	// Reviewing pushes the due date out; the next call must see it.
	records["vars"] = recordDue(testNow.AddDate(0, 0, 4))
	if n := len(DueConcepts(concepts, records, testNow)); n != 0 {
		t.Fatalf("queue kept a concept that is no longer due")
	}
}

func TestNextDue(t *testing.T) {
	concepts := []store.Concept{
		concept("vars", mastery.StatusActive),
		concept("funcs", mastery.StatusActive),
		concept("dropped", mastery.StatusDropped),
	}
	records := map[string]store.ProgressRecord{
		"vars":    recordDue(testNow.AddDate(0, 0, 5)),
		"funcs":   recordDue(testNow.AddDate(0, 0, 2)),
		"dropped": recordDue(testNow.AddDate(0, 0, 1)),
	}

	next, ok := NextDue(concepts, records, testNow)
	if !ok {
		t.Fatal("expected an upcoming due time")
	}
	if !next.Equal(testNow.AddDate(0, 0, 2)) {
		t.Errorf("next = %v, want funcs' due date", next)
	}

	if _, ok := NextDue(concepts, nil, testNow); ok {
		t.Error("empty records should have no upcoming due time")
	}
}
