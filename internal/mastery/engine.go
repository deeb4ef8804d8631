// Package mastery derives mastery scores and drives the Bloom-level and
// status progression for a concept. Everything here is pure policy over a
// progress snapshot; persistence and scheduling live elsewhere.
package mastery

// ProgressView is the slice of a progress record the engine reads. Callers
// build it from current persisted state on every call; the engine never
// caches across calls.
type ProgressView struct {
	PracticeCount int
	CorrectCount  int
	RecentResults []bool // bounded window, oldest first
	Stability     float64
	Bloom         BloomLevel
}

// Config holds the scoring weights and progression thresholds. The
// monotonicity properties (score non-decreasing in recent correctness and
// in stability) are the contract; the literals are tuning.
type Config struct {
	// Score weights. Recent accuracy is weighted heavier than lifetime
	// accuracy so the score tracks current ability, not history.
	RecentWeight    float64
	LifetimeWeight  float64
	StabilityWeight float64

	// RecencyDecay is the per-step geometric decay applied across the
	// recent-results window, newest first.
	RecencyDecay float64

	// StabilitySaturationDays normalizes FSRS stability: a memory this
	// stable counts as fully consolidated.
	StabilitySaturationDays float64

	// AdvanceThreshold gates Bloom-level advancement; MasteryThreshold
	// (higher) gates final mastery at the Bloom ceiling.
	AdvanceThreshold float64
	MasteryThreshold float64

	// MinPracticeCount is the sample floor before any advancement: a
	// single lucky answer never advances a level.
	MinPracticeCount int

	// CleanWindow is how many of the most recent results must be
	// failure-free for advancement.
	CleanWindow int
}

// DefaultConfig returns the standard progression policy.
func DefaultConfig() Config {
	return Config{
		RecentWeight:            0.5,
		LifetimeWeight:          0.2,
		StabilityWeight:         0.3,
		RecencyDecay:            0.8,
		StabilitySaturationDays: 30,
		AdvanceThreshold:        0.80,
		MasteryThreshold:        0.90,
		MinPracticeCount:        3,
		CleanWindow:             5,
	}
}

// Score computes the composite mastery score in [0, 1]: recency-weighted
// recent accuracy, lifetime accuracy, and normalized stability. An
// unpracticed concept scores 0.
func (c Config) Score(v ProgressView) float64 {
	if v.PracticeCount <= 0 {
		return 0
	}

	lifetime := float64(v.CorrectCount) / float64(v.PracticeCount)
	recent := c.recentAccuracy(v)

	stab := 0.0
	if c.StabilitySaturationDays > 0 {
		stab = v.Stability / c.StabilitySaturationDays
		if stab > 1 {
			stab = 1
		}
	}

	score := c.RecentWeight*recent + c.LifetimeWeight*lifetime + c.StabilityWeight*stab
	return clamp(score, 0, 1)
}

// recentAccuracy weights the window newest-first with geometric decay, so
// the latest answers dominate. Falls back to lifetime accuracy when the
// window is empty.
func (c Config) recentAccuracy(v ProgressView) float64 {
	if len(v.RecentResults) == 0 {
		return float64(v.CorrectCount) / float64(v.PracticeCount)
	}
	weight := 1.0
	num, den := 0.0, 0.0
	for i := len(v.RecentResults) - 1; i >= 0; i-- {
		if v.RecentResults[i] {
			num += weight
		}
		den += weight
		weight *= c.RecencyDecay
	}
	return num / den
}

// ShouldAdvance reports whether the learner is ready for the next Bloom
// level: score above the advancement threshold, enough practice, and no
// failure in the most recent window.
func (c Config) ShouldAdvance(v ProgressView) bool {
	if v.PracticeCount < c.MinPracticeCount {
		return false
	}
	if c.Score(v) <= c.AdvanceThreshold {
		return false
	}
	window := c.CleanWindow
	if window > len(v.RecentResults) {
		window = len(v.RecentResults)
	}
	for i := len(v.RecentResults) - window; i < len(v.RecentResults); i++ {
		if !v.RecentResults[i] {
			return false
		}
	}
	return true
}

// IsMastered reports whether the concept is done: Bloom ceiling reached
// and the score clears the (higher) mastery threshold.
func (c Config) IsMastered(v ProgressView) bool {
	return v.Bloom == Create && c.Score(v) >= c.MasteryThreshold
}

// ShouldRemediate reports whether the learner is struggling badly enough
// to warrant stepping back: recent accuracy below half, or sustained low
// mastery despite practice.
func (c Config) ShouldRemediate(v ProgressView) bool {
	if v.PracticeCount == 0 {
		return false
	}
	if c.recentAccuracy(v) < 0.50 {
		return true
	}
	return v.PracticeCount >= 5 && c.Score(v) < 0.40
}

// Adjustment is the recommended change to exercise difficulty.
type Adjustment string

const (
	AdjustEasier   Adjustment = "easier"
	AdjustHarder   Adjustment = "harder"
	AdjustMaintain Adjustment = "maintain"
)

// DifficultyAdjustment recommends easier/harder/maintain from the recent
// success rate. With fewer than three data points it always maintains.
func (c Config) DifficultyAdjustment(v ProgressView) Adjustment {
	if v.PracticeCount < 3 {
		return AdjustMaintain
	}
	acc := c.recentAccuracy(v)
	switch {
	case acc > 0.90:
		return AdjustHarder
	case acc < 0.65:
		return AdjustEasier
	default:
		return AdjustMaintain
	}
}

// NextStatus returns the status after a practice outcome, following the
// transition table: new concepts enter learning on first practice,
// learning concepts become active once Bloom advancement reaches apply,
// active concepts become mastered when IsMastered holds. Dropped is
// terminal and never changes here.
func (c Config) NextStatus(cur Status, v ProgressView) Status {
	switch cur {
	case StatusNew:
		return StatusLearning
	case StatusLearning:
		if v.Bloom >= Apply {
			return StatusActive
		}
	case StatusActive:
		if c.IsMastered(v) {
			return StatusMastered
		}
	}
	return cur
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
