package store

import (
	"fmt"

	"time"

	"github.com/tutorkit/tutorkit/internal/fsrs"
	"github.com/tutorkit/tutorkit/internal/mastery"
)

// ConceptPatch is a partial update to a concept's progress. Only set
// fields change; nil fields retain their prior value. PushResult and
// PushError append rather than replace, preserving ring-buffer and
// append-only semantics. Status and Bloom update the concept row in the
// same transaction.
type ConceptPatch struct {
	PracticeCount *int
	CorrectCount  *int
	PushResult    *bool
	MasteryScore  *float64
	FSRS          *fsrs.Memory
	LastPracticed *time.Time
	PushError     *ErrorClass
	Status        *mastery.Status
	Bloom         *mastery.BloomLevel

	// ExpectedVersion, when set, asserts the version the caller read.
	// A mismatch fails with ErrStaleWrite before anything is written.
	ExpectedVersion *int64
}

// validate rejects out-of-range values before any mutation occurs.
func (p ConceptPatch) validate() error {
	fail := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidPatch, fmt.Sprintf(format, args...))
	}
	if p.PracticeCount != nil && *p.PracticeCount < 0 {
		return fail("practice_count %d is negative", *p.PracticeCount)
	}
	if p.CorrectCount != nil && *p.CorrectCount < 0 {
		return fail("correct_count %d is negative", *p.CorrectCount)
	}
	if p.MasteryScore != nil && (*p.MasteryScore < 0 || *p.MasteryScore > 1) {
		return fail("mastery_score %v outside [0,1]", *p.MasteryScore)
	}
	if p.PushError != nil && !p.PushError.Valid() {
		return fail("unknown error class %q", *p.PushError)
	}
	if p.Status != nil && !p.Status.Valid() {
		return fail("unknown status %q", *p.Status)
	}
	if p.Bloom != nil && !p.Bloom.Valid() {
		return fail("unknown bloom level %d", *p.Bloom)
	}
	if p.FSRS != nil {
		m := *p.FSRS
		switch m.State {
		case fsrs.StateNew:
		case fsrs.StateLearning, fsrs.StateReview, fsrs.StateRelearning:
			if m.Stability <= 0 {
				return fail("fsrs stability %v must be positive", m.Stability)
			}
			if m.Difficulty < 1 || m.Difficulty > 10 {
				return fail("fsrs difficulty %v outside [1,10]", m.Difficulty)
			}
		default:
			return fail("unknown fsrs state %q", m.State)
		}
		if m.ScheduledDays < 0 || m.Reps < 0 || m.Lapses < 0 {
			return fail("negative fsrs counters")
		}
	}
	return nil
}

// apply merges the patch into cur and returns the resulting record. The
// ring buffer evicts its oldest entry at capacity.
func (p ConceptPatch) apply(cur ProgressRecord) ProgressRecord {
	next := cur
	next.RecentResults = append([]bool(nil), cur.RecentResults...)
	next.ErrorHistory = append([]ErrorClass(nil), cur.ErrorHistory...)

	if p.PracticeCount != nil {
		next.PracticeCount = *p.PracticeCount
	}
	if p.CorrectCount != nil {
		next.CorrectCount = *p.CorrectCount
	}
	if p.PushResult != nil {
		next.RecentResults = append(next.RecentResults, *p.PushResult)
		if len(next.RecentResults) > RecentResultsCap {
			next.RecentResults = next.RecentResults[len(next.RecentResults)-RecentResultsCap:]
		}
	}
	if p.MasteryScore != nil {
		next.MasteryScore = *p.MasteryScore
	}
	if p.FSRS != nil {
		next.FSRS = *p.FSRS
	}
	if p.LastPracticed != nil {
		t := *p.LastPracticed
		next.LastPracticed = &t
	}
	if p.PushError != nil {
		next.ErrorHistory = append(next.ErrorHistory, *p.PushError)
	}
	return next
}
