// Package fsrs implements the FSRS v4 spaced-repetition scheduler: a pure
// DSR (Difficulty, Stability, Retrievability) memory model. Review is a
// pure function of (state, rating, clock) with no hidden randomness, so
// schedules are reproducible.
package fsrs

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Rating is the graded quality of recall for a single review.
type Rating int

const (
	Again Rating = iota + 1
	Hard
	Good
	Easy
)

// Valid reports whether r is one of the four defined ratings.
func (r Rating) Valid() bool { return r >= Again && r <= Easy }

func (r Rating) String() string {
	switch r {
	case Again:
		return "again"
	case Hard:
		return "hard"
	case Good:
		return "good"
	case Easy:
		return "easy"
	default:
		return fmt.Sprintf("rating(%d)", int(r))
	}
}

// State is the card lifecycle position within the scheduler.
type State string

const (
	StateNew        State = "new"
	StateLearning   State = "learning"
	StateReview     State = "review"
	StateRelearning State = "relearning"
)

// Memory is the scheduler state tracked per concept.
type Memory struct {
	Stability     float64   // memory stability in days, > 0 once reviewed
	Difficulty    float64   // clamped to [1, 10] once reviewed
	ElapsedDays   float64   // days past due at the most recent review, >= 0
	ScheduledDays int       // interval chosen at the most recent review
	Reps          int       // total reviews completed
	Lapses        int       // AGAIN ratings on previously learned material
	State         State
	Due           time.Time // when the concept next becomes reviewable
}

// NewMemory returns the zero-state for an unpracticed concept.
func NewMemory() Memory {
	return Memory{State: StateNew}
}

var (
	errRetentionRange = errors.New("fsrs: desired retention must be in (0, 1)")
	errIntervalRange  = errors.New("fsrs: interval clamp must satisfy 1 <= min <= max")
	errBadRating      = errors.New("fsrs: rating must be 1-4")
	errBadStability   = errors.New("fsrs: stability must be positive for a reviewed state")
	errBadDifficulty  = errors.New("fsrs: difficulty must be in [1, 10] for a reviewed state")
)

// Review processes a single graded review and returns the updated memory
// state. It never mutates m. Malformed input (unknown rating, non-positive
// stability on a reviewed card) is rejected rather than producing undefined
// numbers.
//
// Post-conditions: Stability > 0, ScheduledDays >= p.MinIntervalDays,
// Reps incremented by exactly one, Lapses incremented by exactly one iff
// the rating was AGAIN on a review/relearning card.
func Review(m Memory, rating Rating, now time.Time, p Params) (Memory, error) {
	if err := p.validate(); err != nil {
		return Memory{}, err
	}
	if !rating.Valid() {
		return Memory{}, errBadRating
	}
	if m.State != StateNew {
		if m.Stability <= 0 {
			return Memory{}, errBadStability
		}
		if m.Difficulty < 1 || m.Difficulty > 10 {
			return Memory{}, errBadDifficulty
		}
	}

	w := p.Weights
	next := m

	if m.State == StateNew {
		next.Stability = initialStability(rating, w)
		next.Difficulty = initialDifficulty(rating, w)
		next.ElapsedDays = 0
		if rating == Again {
			// A failed first exposure is not a lapse; the material was
			// never learned. The card stays in the learning state.
			next.State = StateLearning
		} else {
			next.State = StateReview
		}
	} else {
		// Retrievability uses time since the previous review, recovered
		// from due - scheduled so that an on-time review sits at the
		// retention target rather than at R=1.
		lastReview := m.Due.AddDate(0, 0, -m.ScheduledDays)
		sinceReview := math.Max(now.Sub(lastReview).Hours()/24, 0)
		r := Retrievability(m.Stability, sinceReview)

		next.Difficulty = updateDifficulty(m.Difficulty, rating, w)
		next.ElapsedDays = math.Max(now.Sub(m.Due).Hours()/24, 0)

		switch {
		case rating == Again && (m.State == StateReview || m.State == StateRelearning):
			// Lapse: shrink stability, never below the floor and never
			// above the pre-lapse value.
			s := lapseStability(m.Difficulty, m.Stability, r, w)
			next.Stability = math.Min(s, m.Stability)
			next.Lapses++
			next.State = StateRelearning
		case rating == Again:
			// Still learning; re-seed stability from the AGAIN base.
			next.Stability = initialStability(Again, w)
			next.State = StateLearning
		default:
			next.Stability = recallStability(m.Difficulty, m.Stability, r, rating, w)
			next.State = StateReview
		}
	}

	next.ScheduledDays = scheduleDays(next.Stability, p)
	next.Due = now.AddDate(0, 0, next.ScheduledDays)
	next.Reps++
	return next, nil
}

// Retrievability returns the predicted recall probability after
// elapsedDays given the current stability: R = (1 + t/(9S))^-1.
func Retrievability(stability, elapsedDays float64) float64 {
	if stability <= 0 {
		return 0
	}
	if elapsedDays <= 0 {
		return 1
	}
	return 1 / (1 + elapsedDays/(9*stability))
}

// Interval returns the number of days after which retrievability decays to
// the desired retention: t = 9S(1/R - 1).
func Interval(stability, desiredRetention float64) float64 {
	if stability <= 0 {
		return 0
	}
	return math.Max(9*stability*(1/desiredRetention-1), 0)
}

func scheduleDays(stability float64, p Params) int {
	days := int(math.Round(Interval(stability, p.DesiredRetention)))
	if days < p.MinIntervalDays {
		return p.MinIntervalDays
	}
	if days > p.MaxIntervalDays {
		return p.MaxIntervalDays
	}
	return days
}

// initialStability returns S_0 = w[rating-1].
func initialStability(rating Rating, w [19]float64) float64 {
	return math.Max(w[rating-1], 0.01)
}

// initialDifficulty returns D_0 = w[4] - e^(w[5]*(rating-1)) + 1, clamped.
func initialDifficulty(rating Rating, w [19]float64) float64 {
	d := w[4] - math.Exp(w[5]*float64(rating-1)) + 1
	return clamp(d, 1, 10)
}

// updateDifficulty applies the mean-reverting difficulty update:
// D' = w[7]*D_0(EASY) + (1-w[7])*(D - w[6]*(rating-3)). AGAIN pushes
// difficulty up, EASY pulls it down.
func updateDifficulty(d float64, rating Rating, w [19]float64) float64 {
	next := w[7]*initialDifficulty(Easy, w) + (1-w[7])*(d-w[6]*float64(rating-3))
	return clamp(next, 1, 10)
}

// recallStability grows stability after a successful recall:
// S' = S * (1 + e^w[8] * (11-D) * S^-w[9] * (e^(w[10]*(1-R)) - 1) * hard * easy)
func recallStability(d, s, r float64, rating Rating, w [19]float64) float64 {
	hardPenalty := 1.0
	if rating == Hard {
		hardPenalty = w[15]
	}
	easyBonus := 1.0
	if rating == Easy {
		easyBonus = w[16]
	}
	grown := s * (1 +
		math.Exp(w[8])*
			(11-d)*
			math.Pow(s, -w[9])*
			(math.Exp(w[10]*(1-r))-1)*
			hardPenalty*
			easyBonus)
	return math.Max(grown, 0.01)
}

// lapseStability shrinks stability after a forgotten review:
// S' = w[11] * D^-w[12] * ((S+1)^w[13] - 1) * e^(w[14]*(1-R))
func lapseStability(d, s, r float64, w [19]float64) float64 {
	shrunk := w[11] *
		math.Pow(d, -w[12]) *
		(math.Pow(s+1, w[13]) - 1) *
		math.Exp(w[14]*(1-r))
	return math.Max(shrunk, 0.01)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
