package mastery

import "testing"

func allCorrect(n int) []bool {
	r := make([]bool, n)
	for i := range r {
		r[i] = true
	}
	return r
}

func TestScoreBounds(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name string
		view ProgressView
	}{
		{"unpracticed", ProgressView{}},
		{"all wrong", ProgressView{PracticeCount: 10, CorrectCount: 0, RecentResults: make([]bool, 10)}},
		{"all right high stability", ProgressView{PracticeCount: 50, CorrectCount: 50, RecentResults: allCorrect(10), Stability: 120}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cfg.Score(tt.view)
			if got < 0 || got > 1 {
				t.Errorf("score = %v outside [0,1]", got)
			}
		})
	}

	if cfg.Score(ProgressView{}) != 0 {
		t.Error("unpracticed concept should score 0")
	}
}

func TestScoreMonotoneInStability(t *testing.T) {
	cfg := DefaultConfig()
	base := ProgressView{PracticeCount: 8, CorrectCount: 6, RecentResults: []bool{true, false, true, true}}

	prev := -1.0
	for s := 0.0; s <= 60; s += 5 {
		v := base
		v.Stability = s
		got := cfg.Score(v)
		if got < prev {
			t.Fatalf("stability %v: score %v < previous %v", s, got, prev)
		}
		prev = got
	}
}

func TestScoreMonotoneInRecentCorrectness(t *testing.T) {
	cfg := DefaultConfig()

	// Flipping any failure to a success never lowers the score.
	results := []bool{true, false, true, false, true, false, true, false, true, false}
	base := ProgressView{PracticeCount: 10, CorrectCount: 5, RecentResults: results, Stability: 4}
	baseScore := cfg.Score(base)

	for i, ok := range results {
		if ok {
			continue
		}
		flipped := append([]bool(nil), results...)
		flipped[i] = true
		v := base
		v.RecentResults = flipped
		if got := cfg.Score(v); got < baseScore {
			t.Errorf("flipping result %d to correct lowered score: %v < %v", i, got, baseScore)
		}
	}
}

func TestScoreRecencyWeighting(t *testing.T) {
	cfg := DefaultConfig()

	// Same multiset of results, failure at opposite ends: a recent
	// failure must hurt more than an old one.
	oldFailure := ProgressView{PracticeCount: 10, CorrectCount: 9, Stability: 4,
		RecentResults: []bool{false, true, true, true, true, true, true, true, true, true}}
	newFailure := oldFailure
	newFailure.RecentResults = []bool{true, true, true, true, true, true, true, true, true, false}

	if cfg.Score(newFailure) >= cfg.Score(oldFailure) {
		t.Errorf("recent failure (%v) should score below old failure (%v)",
			cfg.Score(newFailure), cfg.Score(oldFailure))
	}
}

func TestShouldAdvance(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name string
		view ProgressView
		want bool
	}{
		{
			"clean streak advances",
			ProgressView{PracticeCount: 8, CorrectCount: 8, RecentResults: allCorrect(8), Stability: 20, Bloom: Understand},
			true,
		},
		{
			"below sample floor never advances",
			ProgressView{PracticeCount: 2, CorrectCount: 2, RecentResults: allCorrect(2), Stability: 20},
			false,
		},
		{
			"recent failure blocks advancement",
			ProgressView{PracticeCount: 10, CorrectCount: 9, Stability: 25,
				RecentResults: []bool{true, true, true, true, true, true, true, true, false, true}},
			false,
		},
		{
			"low score blocks advancement",
			ProgressView{PracticeCount: 10, CorrectCount: 4, Stability: 1,
				RecentResults: []bool{false, false, false, false, false, true, true, true, true, true}},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.ShouldAdvance(tt.view); got != tt.want {
				t.Errorf("ShouldAdvance = %v, want %v (score %v)", got, tt.want, cfg.Score(tt.view))
			}
		})
	}
}

func TestShouldAdvanceShortWindow(t *testing.T) {
	cfg := DefaultConfig()

	// With fewer results than CleanWindow, the clean check covers what
	// exists; the MinPracticeCount floor is the sample-size gate.
	clean := ProgressView{
		PracticeCount: 3,
		CorrectCount:  3,
		RecentResults: []bool{true, true, true},
		Stability:     40,
		Bloom:         Understand,
	}
	if !cfg.ShouldAdvance(clean) {
		t.Error("three clean results at the practice floor should advance")
	}

	// A failure anywhere inside the short window still blocks.
	dirty := ProgressView{
		PracticeCount: 4,
		CorrectCount:  3,
		RecentResults: []bool{true, false, true, true},
		Stability:     40,
		Bloom:         Understand,
	}
	if cfg.ShouldAdvance(dirty) {
		t.Error("a failure within the available window must block advancement")
	}
}

func TestIsMastered(t *testing.T) {
	cfg := DefaultConfig()

	strong := ProgressView{PracticeCount: 30, CorrectCount: 29, RecentResults: allCorrect(10), Stability: 45, Bloom: Create}
	if !cfg.IsMastered(strong) {
		t.Errorf("expected mastered at bloom ceiling with score %v", cfg.Score(strong))
	}

	belowCeiling := strong
	belowCeiling.Bloom = Evaluate
	if cfg.IsMastered(belowCeiling) {
		t.Error("mastery requires the bloom ceiling")
	}

	weak := ProgressView{PracticeCount: 10, CorrectCount: 5, RecentResults: []bool{false, true, false, true, false}, Stability: 2, Bloom: Create}
	if cfg.IsMastered(weak) {
		t.Errorf("score %v should not be mastered", cfg.Score(weak))
	}
}

func TestShouldRemediate(t *testing.T) {
	cfg := DefaultConfig()

	struggling := ProgressView{PracticeCount: 6, CorrectCount: 1, RecentResults: []bool{false, false, true, false, false}}
	if !cfg.ShouldRemediate(struggling) {
		t.Error("expected remediation for low recent accuracy")
	}

	fine := ProgressView{PracticeCount: 6, CorrectCount: 5, RecentResults: []bool{true, true, false, true, true}, Stability: 10}
	if cfg.ShouldRemediate(fine) {
		t.Error("unexpected remediation for a healthy concept")
	}

	if cfg.ShouldRemediate(ProgressView{}) {
		t.Error("unpracticed concept never needs remediation")
	}
}

func TestDifficultyAdjustment(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name string
		view ProgressView
		want Adjustment
	}{
		{"too few samples", ProgressView{PracticeCount: 2, CorrectCount: 0, RecentResults: []bool{false, false}}, AdjustMaintain},
		{"cruising", ProgressView{PracticeCount: 10, CorrectCount: 10, RecentResults: allCorrect(10)}, AdjustHarder},
		{"drowning", ProgressView{PracticeCount: 10, CorrectCount: 2, RecentResults: []bool{false, false, true, false, false}}, AdjustEasier},
		{"steady", ProgressView{PracticeCount: 10, CorrectCount: 8, RecentResults: []bool{true, true, false, true, true, true, true, false, true, true}}, AdjustMaintain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.DifficultyAdjustment(tt.view); got != tt.want {
				t.Errorf("adjustment = %s, want %s", got, tt.want)
			}
		})
	}
}
