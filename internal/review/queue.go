// Package review computes the due-review queue from persisted progress.
// The queue is derived state: it is recomputed from records on every call
// and never stored, so it can not drift from the progress that feeds it.
package review

import (
	"sort"
	"time"

	"github.com/tutorkit/tutorkit/internal/mastery"
	"github.com/tutorkit/tutorkit/internal/store"
)

// Item is one due concept with the context a caller needs to order and
// present it.
type Item struct {
	ConceptID   string
	Due         time.Time
	OverdueDays float64
	Stability   float64
	Status      mastery.Status
	Bloom       mastery.BloomLevel
}

// DueConcepts returns the concepts whose next review is due at or before
// now, ordered most overdue first with ties broken by concept id. Dropped
// concepts never appear regardless of their schedule; concepts without a
// progress record have nothing scheduled yet.
func DueConcepts(concepts []store.Concept, records map[string]store.ProgressRecord, now time.Time) []Item {
	var due []Item
	for _, c := range concepts {
		if c.Status == mastery.StatusDropped {
			continue
		}
		rec, ok := records[c.ID]
		if !ok || rec.FSRS.Due.IsZero() {
			continue
		}
		if rec.FSRS.Due.After(now) {
			continue
		}
		due = append(due, Item{
			ConceptID:   c.ID,
			Due:         rec.FSRS.Due,
			OverdueDays: now.Sub(rec.FSRS.Due).Hours() / 24,
			Stability:   rec.FSRS.Stability,
			Status:      c.Status,
			Bloom:       c.Bloom,
		})
	}
	sort.Slice(due, func(i, j int) bool {
		if !due[i].Due.Equal(due[j].Due) {
			return due[i].Due.Before(due[j].Due)
		}
		return due[i].ConceptID < due[j].ConceptID
	})
	return due
}

// NextDue returns the earliest upcoming due time among non-dropped
// concepts that are not yet due, and false when nothing is scheduled.
func NextDue(concepts []store.Concept, records map[string]store.ProgressRecord, now time.Time) (time.Time, bool) {
	var next time.Time
	found := false
	for _, c := range concepts {
		if c.Status == mastery.StatusDropped {
			continue
		}
		rec, ok := records[c.ID]
		if !ok || rec.FSRS.Due.IsZero() || !rec.FSRS.Due.After(now) {
			continue
		}
		if !found || rec.FSRS.Due.Before(next) {
			next = rec.FSRS.Due
			found = true
		}
	}
	return next, found
}
