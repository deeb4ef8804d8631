package session

import (
	"testing"
	"time"

	"github.com/tutorkit/tutorkit/internal/fsrs"
	"github.com/tutorkit/tutorkit/internal/mastery"
	"github.com/tutorkit/tutorkit/internal/store"
)

func planConcept(id string, status mastery.Status, difficulty float64, prereqs ...string) store.Concept {
	return store.Concept{
		ID:            id,
		Name:          id,
		Unit:          "u1",
		Bloom:         mastery.Remember,
		Status:        status,
		Prerequisites: prereqs,
		Difficulty:    difficulty,
		BloomTarget:   mastery.Apply,
	}
}

func dueRecord(id string, due time.Time) store.ProgressRecord {
	rec := store.NewProgressRecord(id)
	rec.PracticeCount = 3
	rec.CorrectCount = 2
	rec.FSRS = fsrs.Memory{
		Stability:  2,
		Difficulty: 5,
		State:      fsrs.StateReview,
		Due:        due,
	}
	return rec
}

func categoryCounts(p *Plan) (frontier, review int) {
	for _, s := range p.Slots {
		switch s.Category {
		case CategoryFrontier:
			frontier++
		case CategoryReview:
			review++
		}
	}
	return
}

func TestPlanSessionMix(t *testing.T) {
	concepts := []store.Concept{
		planConcept("vars", mastery.StatusMastered, 0.2),
		planConcept("funcs", mastery.StatusActive, 0.4, "vars"),
		planConcept("closures", mastery.StatusNew, 0.6, "vars"),
		planConcept("slices", mastery.StatusNew, 0.3, "vars"),
		planConcept("maps", mastery.StatusNew, 0.5, "vars"),
	}
	// vars is mastered but overdue for a maintenance review; funcs is due
	// too, so it fills a review slot rather than a frontier slot.
	records := map[string]store.ProgressRecord{
		"funcs": dueRecord("funcs", testNow.AddDate(0, 0, -1)),
		"vars":  dueRecord("vars", testNow.AddDate(0, 0, -2)),
	}

	plan, err := PlanSession(concepts, records, testNow, 5)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if len(plan.Slots) != 5 {
		t.Fatalf("got %d slots, want 5", len(plan.Slots))
	}
	frontier, review := categoryCounts(plan)
	if frontier != 3 || review != 2 {
		t.Errorf("mix = %d frontier / %d review, want 3/2", frontier, review)
	}
	// Most overdue review first among reviews.
	for _, s := range plan.Slots {
		if s.Category == CategoryReview {
			if s.ConceptID != "vars" {
				t.Errorf("first review slot = %s, want the most overdue (vars)", s.ConceptID)
			}
			break
		}
	}
	// Frontier ordered by practice count then difficulty.
	var firstFrontier string
	for _, s := range plan.Slots {
		if s.Category == CategoryFrontier {
			firstFrontier = s.ConceptID
			break
		}
	}
	if firstFrontier != "slices" {
		t.Errorf("first frontier slot = %s, want the easiest unpracticed (slices)", firstFrontier)
	}
}

func TestPlanSessionNoDueReviews(t *testing.T) {
	concepts := []store.Concept{
		planConcept("vars", mastery.StatusNew, 0.2),
		planConcept("funcs", mastery.StatusNew, 0.4, "vars"),
		planConcept("closures", mastery.StatusNew, 0.6, "funcs"),
	}

	plan, err := PlanSession(concepts, nil, testNow, 5)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	frontier, review := categoryCounts(plan)
	if review != 0 {
		t.Errorf("got %d review slots with nothing due", review)
	}
	// Only vars is on the frontier; its prerequisites gate the rest.
	if frontier != 1 || plan.Slots[0].ConceptID != "vars" {
		t.Errorf("slots = %+v, want a single frontier slot for vars", plan.Slots)
	}
}

func TestPlanSessionNoFrontier(t *testing.T) {
	// Everything mastered: only reviews remain.
	concepts := []store.Concept{
		planConcept("vars", mastery.StatusMastered, 0.2),
		planConcept("funcs", mastery.StatusMastered, 0.4, "vars"),
	}
	records := map[string]store.ProgressRecord{
		"vars":  dueRecord("vars", testNow.AddDate(0, 0, -1)),
		"funcs": dueRecord("funcs", testNow.AddDate(0, 0, -2)),
	}

	plan, err := PlanSession(concepts, records, testNow, 5)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	frontier, review := categoryCounts(plan)
	if frontier != 0 || review != 2 {
		t.Errorf("mix = %d/%d, want 0 frontier and both due reviews", frontier, review)
	}
}

func TestPlanSessionExcludesDroppedAndDue(t *testing.T) {
	concepts := []store.Concept{
		planConcept("vars", mastery.StatusDropped, 0.2),
		planConcept("funcs", mastery.StatusLearning, 0.4, "vars"),
	}
	// funcs is due, so it must fill a review slot, not a frontier slot.
	records := map[string]store.ProgressRecord{
		"vars":  dueRecord("vars", testNow.AddDate(0, 0, -1)),
		"funcs": dueRecord("funcs", testNow.AddDate(0, 0, -1)),
	}

	plan, err := PlanSession(concepts, records, testNow, 5)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if len(plan.Slots) != 1 {
		t.Fatalf("slots = %+v, want exactly one", plan.Slots)
	}
	if plan.Slots[0].ConceptID != "funcs" || plan.Slots[0].Category != CategoryReview {
		t.Errorf("slot = %+v, want funcs as review", plan.Slots[0])
	}
}

func TestPlanSessionBadGraph(t *testing.T) {
	concepts := []store.Concept{
		planConcept("a", mastery.StatusNew, 0.5, "b"),
		planConcept("b", mastery.StatusNew, 0.5, "a"),
	}
	if _, err := PlanSession(concepts, nil, testNow, 5); err == nil {
		t.Fatal("expected an error for a cyclic prerequisite graph")
	}
}
