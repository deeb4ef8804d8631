package fsrs

// Params holds the tunable scheduling constants. The defaults are the
// published FSRS v4 population-level weights; the qualitative behavior
// (growth under success, shrink under lapse, longer intervals for higher
// stability) is the contract, not the literal numbers.
type Params struct {
	// Weights is the 19-element FSRS weight vector:
	//   0-3   initial stability per rating (AGAIN..EASY)
	//   4     initial difficulty intercept
	//   5     initial difficulty slope
	//   6     difficulty update delta
	//   7     difficulty mean-reversion weight
	//   8-10  stability growth (recall) parameters
	//   11-14 stability shrink (lapse) parameters
	//   15    hard penalty multiplier
	//   16    easy bonus multiplier
	//   17-18 reserved
	Weights [19]float64

	// DesiredRetention is the target recall probability when the next
	// review comes due. Must be in (0, 1).
	DesiredRetention float64

	// MinIntervalDays and MaxIntervalDays clamp the scheduled interval.
	MinIntervalDays int
	MaxIntervalDays int
}

// DefaultParams returns the population-level FSRS v4 defaults with a
// 90% retention target and intervals clamped to [1 day, 10 years].
func DefaultParams() Params {
	return Params{
		Weights: [19]float64{
			0.4, 0.6, 2.4, 5.8,
			4.93, 0.94, 0.86, 0.01,
			1.49, 0.14, 0.94,
			2.18, 0.05, 0.34, 1.26,
			0.29, 2.61,
			0, 0,
		},
		DesiredRetention: 0.9,
		MinIntervalDays:  1,
		MaxIntervalDays:  3650,
	}
}

func (p Params) validate() error {
	if p.DesiredRetention <= 0 || p.DesiredRetention >= 1 {
		return errRetentionRange
	}
	if p.MinIntervalDays < 1 || p.MaxIntervalDays < p.MinIntervalDays {
		return errIntervalRange
	}
	return nil
}
