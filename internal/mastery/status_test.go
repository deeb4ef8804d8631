package mastery

import "testing"

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to Status
		want     bool
	}{
		{StatusNew, StatusLearning, true},
		{StatusLearning, StatusActive, true},
		{StatusActive, StatusMastered, true},
		{StatusNew, StatusMastered, false}, // no shortcut
		{StatusLearning, StatusMastered, false},
		{StatusMastered, StatusActive, false}, // no regression
		{StatusNew, StatusDropped, true},
		{StatusLearning, StatusDropped, true},
		{StatusActive, StatusDropped, true},
		{StatusMastered, StatusDropped, true},
		{StatusDropped, StatusLearning, false}, // dropped is terminal
		{StatusDropped, StatusNew, false},
		{StatusLearning, StatusLearning, true}, // self transition
	}

	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestNextStatusLifecycle(t *testing.T) {
	cfg := DefaultConfig()

	// First practice moves new to learning regardless of performance.
	if got := cfg.NextStatus(StatusNew, ProgressView{PracticeCount: 1}); got != StatusLearning {
		t.Errorf("new after practice = %s, want learning", got)
	}

	// Learning holds until Bloom reaches apply.
	low := ProgressView{PracticeCount: 5, CorrectCount: 5, Bloom: Understand}
	if got := cfg.NextStatus(StatusLearning, low); got != StatusLearning {
		t.Errorf("learning at %s = %s, want learning", low.Bloom, got)
	}
	mid := low
	mid.Bloom = Apply
	if got := cfg.NextStatus(StatusLearning, mid); got != StatusActive {
		t.Errorf("learning at apply = %s, want active", got)
	}

	// Active holds until mastered.
	strong := ProgressView{PracticeCount: 30, CorrectCount: 29, RecentResults: allCorrect(10), Stability: 45, Bloom: Create}
	if got := cfg.NextStatus(StatusActive, strong); got != StatusMastered {
		t.Errorf("active with mastered view = %s, want mastered", got)
	}
	weakCeiling := ProgressView{PracticeCount: 10, CorrectCount: 6, RecentResults: []bool{true, false, true, false, true}, Bloom: Create}
	if got := cfg.NextStatus(StatusActive, weakCeiling); got != StatusActive {
		t.Errorf("active below threshold = %s, want active", got)
	}

	// Every transition the lifecycle emits is legal per the table.
	for _, pair := range [][2]Status{
		{StatusNew, cfg.NextStatus(StatusNew, ProgressView{PracticeCount: 1})},
		{StatusLearning, cfg.NextStatus(StatusLearning, mid)},
		{StatusActive, cfg.NextStatus(StatusActive, strong)},
	} {
		if !CanTransition(pair[0], pair[1]) {
			t.Errorf("lifecycle emitted illegal transition %s -> %s", pair[0], pair[1])
		}
	}
}

func TestBloomOrder(t *testing.T) {
	order := []BloomLevel{Remember, Understand, Apply, Analyze, Evaluate, Create}

	for i := 0; i < len(order)-1; i++ {
		next, ok := order[i].Next()
		if !ok {
			t.Fatalf("%s unexpectedly has no successor", order[i])
		}
		if next != order[i+1] {
			t.Errorf("%s.Next() = %s, want %s", order[i], next, order[i+1])
		}
	}

	if _, ok := Create.Next(); ok {
		t.Error("create must have no successor")
	}
}

func TestBloomRoundTrip(t *testing.T) {
	for l := Remember; l <= Create; l++ {
		got, err := ParseBloom(l.String())
		if err != nil {
			t.Fatalf("parse %q: %v", l.String(), err)
		}
		if got != l {
			t.Errorf("round trip %s -> %s", l, got)
		}
	}
	if _, err := ParseBloom("transcend"); err == nil {
		t.Error("expected error for unknown level")
	}
}
