package fsrs

import (
	"math"
	"testing"
	"time"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestReviewFirstRating(t *testing.T) {
	p := DefaultParams()

	tests := []struct {
		name      string
		rating    Rating
		wantState State
		wantS     float64
	}{
		{"again enters learning", Again, StateLearning, 0.4},
		{"hard enters review", Hard, StateReview, 0.6},
		{"good enters review", Good, StateReview, 2.4},
		{"easy enters review", Easy, StateReview, 5.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Review(NewMemory(), tt.rating, testNow, p)
			if err != nil {
				t.Fatalf("review: %v", err)
			}
			if m.State != tt.wantState {
				t.Errorf("state = %s, want %s", m.State, tt.wantState)
			}
			if m.Stability != tt.wantS {
				t.Errorf("stability = %v, want %v", m.Stability, tt.wantS)
			}
			if m.Reps != 1 {
				t.Errorf("reps = %d, want 1", m.Reps)
			}
			if m.Lapses != 0 {
				t.Errorf("lapses = %d, want 0 on first review", m.Lapses)
			}
			if m.Difficulty < 1 || m.Difficulty > 10 {
				t.Errorf("difficulty = %v outside [1,10]", m.Difficulty)
			}
		})
	}
}

func TestReviewFirstGoodSchedulesBaseInterval(t *testing.T) {
	p := DefaultParams()
	m, err := Review(NewMemory(), Good, testNow, p)
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	// At 90% retention the interval equals stability; GOOD base stability
	// is 2.4 days, rounded to 2.
	if m.ScheduledDays != 2 {
		t.Errorf("scheduled_days = %d, want 2", m.ScheduledDays)
	}
	wantDue := testNow.AddDate(0, 0, 2)
	if !m.Due.Equal(wantDue) {
		t.Errorf("due = %v, want %v", m.Due, wantDue)
	}
}

func TestReviewPostConditions(t *testing.T) {
	p := DefaultParams()

	// Exercise every rating from every reachable state and assert the
	// universal guarantees hold.
	seeds := []Memory{}
	for r := Again; r <= Easy; r++ {
		m, err := Review(NewMemory(), r, testNow, p)
		if err != nil {
			t.Fatalf("seed review: %v", err)
		}
		seeds = append(seeds, m)
	}

	for _, seed := range seeds {
		for r := Again; r <= Easy; r++ {
			when := seed.Due.AddDate(0, 0, 3)
			m, err := Review(seed, r, when, p)
			if err != nil {
				t.Fatalf("review from %s with %s: %v", seed.State, r, err)
			}
			if m.Stability <= 0 {
				t.Errorf("%s/%s: stability = %v, want > 0", seed.State, r, m.Stability)
			}
			if m.ScheduledDays < p.MinIntervalDays {
				t.Errorf("%s/%s: scheduled_days = %d below min", seed.State, r, m.ScheduledDays)
			}
			if m.Reps != seed.Reps+1 {
				t.Errorf("%s/%s: reps = %d, want %d", seed.State, r, m.Reps, seed.Reps+1)
			}
			if m.Lapses < seed.Lapses {
				t.Errorf("%s/%s: lapses decreased", seed.State, r)
			}
		}
	}
}

func TestReviewEasyMonotonicGrowth(t *testing.T) {
	p := DefaultParams()
	m, err := Review(NewMemory(), Easy, testNow, p)
	if err != nil {
		t.Fatalf("first review: %v", err)
	}

	prev := m.Stability
	for i := 0; i < 8; i++ {
		m, err = Review(m, Easy, m.Due, p)
		if err != nil {
			t.Fatalf("review %d: %v", i, err)
		}
		if m.Stability < prev {
			t.Fatalf("review %d: stability %v < previous %v", i, m.Stability, prev)
		}
		prev = m.Stability
	}
}

func TestReviewLapse(t *testing.T) {
	p := DefaultParams()
	m := Memory{
		Stability:     10,
		Difficulty:    5,
		ScheduledDays: 10,
		Reps:          4,
		Lapses:        0,
		State:         StateReview,
		Due:           testNow,
	}

	// Rated AGAIN 12 days past the last review (2 days overdue).
	when := testNow.AddDate(0, 0, 2)
	got, err := Review(m, Again, when, p)
	if err != nil {
		t.Fatalf("review: %v", err)
	}

	if got.Stability >= 10 {
		t.Errorf("stability = %v, want < 10 after lapse", got.Stability)
	}
	if got.Stability <= 0 {
		t.Errorf("stability = %v, want > 0 (never reset to zero)", got.Stability)
	}
	if got.Lapses != 1 {
		t.Errorf("lapses = %d, want 1", got.Lapses)
	}
	if got.State != StateRelearning {
		t.Errorf("state = %s, want relearning", got.State)
	}
	if got.Reps != 5 {
		t.Errorf("reps = %d, want 5", got.Reps)
	}
	if got.ElapsedDays != 2 {
		t.Errorf("elapsed_days = %v, want 2", got.ElapsedDays)
	}
}

func TestReviewDeterministic(t *testing.T) {
	p := DefaultParams()
	m := Memory{
		Stability:     3.2,
		Difficulty:    6.1,
		ScheduledDays: 3,
		Reps:          2,
		State:         StateReview,
		Due:           testNow,
	}
	a, err := Review(m, Hard, testNow, p)
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	b, err := Review(m, Hard, testNow, p)
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	if a != b {
		t.Errorf("identical inputs produced different outputs:\n%+v\n%+v", a, b)
	}
}

func TestReviewRejectsMalformedInput(t *testing.T) {
	p := DefaultParams()

	if _, err := Review(NewMemory(), Rating(0), testNow, p); err == nil {
		t.Error("expected error for rating 0")
	}
	if _, err := Review(NewMemory(), Rating(5), testNow, p); err == nil {
		t.Error("expected error for rating 5")
	}

	bad := Memory{State: StateReview, Stability: 0, Difficulty: 5, Due: testNow}
	if _, err := Review(bad, Good, testNow, p); err == nil {
		t.Error("expected error for non-positive stability")
	}

	badD := Memory{State: StateReview, Stability: 2, Difficulty: 11, Due: testNow}
	if _, err := Review(badD, Good, testNow, p); err == nil {
		t.Error("expected error for out-of-range difficulty")
	}

	badP := DefaultParams()
	badP.DesiredRetention = 1.2
	if _, err := Review(NewMemory(), Good, testNow, badP); err == nil {
		t.Error("expected error for retention outside (0,1)")
	}
}

func TestRetrievability(t *testing.T) {
	tests := []struct {
		name      string
		stability float64
		elapsed   float64
		want      float64
	}{
		{"zero elapsed is certain", 5, 0, 1},
		{"zero stability is forgotten", 0, 3, 0},
		{"on-time review near target", 10, 10, 0.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Retrievability(tt.stability, tt.elapsed)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("retrievability = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRetrievabilityDecays(t *testing.T) {
	prev := 1.0
	for d := 1.0; d <= 60; d++ {
		r := Retrievability(5, d)
		if r >= prev {
			t.Fatalf("day %v: retrievability %v did not decay from %v", d, r, prev)
		}
		prev = r
	}
}

func TestIntervalRoundTrip(t *testing.T) {
	// The interval is defined so that retrievability at the interval
	// equals the desired retention.
	for _, s := range []float64{0.4, 2.4, 10, 100} {
		days := Interval(s, 0.9)
		r := Retrievability(s, days)
		if math.Abs(r-0.9) > 1e-9 {
			t.Errorf("stability %v: R(interval) = %v, want 0.9", s, r)
		}
	}
}
