package model

// Beta domain of the Security Market Line. The interactive slider caps
// at the same maximum, but the evaluator itself accepts any real beta.
const (
	SMLBetaMin = 0.0
	SMLBetaMax = 3.0
)

// DefaultCurveSamples is the sample count used when a caller does not
// ask for a specific resolution. 100 points render a visually smooth
// line over [0, 3].
const DefaultCurveSamples = 100

// SMLPoint is one sample of the Security Market Line.
type SMLPoint struct {
	Beta           float64 `json:"beta"`
	ExpectedReturn float64 `json:"expected_return"`
}

// Curve samples the Security Market Line for fixed rf and rm: n evenly
// spaced betas spanning [SMLBetaMin, SMLBetaMax], both endpoints
// included, in ascending order, each paired with ExpectedReturn at that
// beta. The result is deterministic for fixed (rf, rm, n) and cheap to
// recompute; nothing is memoized.
//
// n == 1 yields the single point at SMLBetaMin. n <= 0 yields nil.
func Curve(rf, rm float64, n int) []SMLPoint {
	if n <= 0 {
		return nil
	}
	points := make([]SMLPoint, n)
	if n == 1 {
		points[0] = SMLPoint{Beta: SMLBetaMin, ExpectedReturn: ExpectedReturn(rf, rm, SMLBetaMin)}
		return points
	}
	step := (SMLBetaMax - SMLBetaMin) / float64(n-1)
	for i := 0; i < n; i++ {
		beta := SMLBetaMin + float64(i)*step
		if i == n-1 {
			// Land exactly on the upper endpoint instead of accumulating
			// float steps.
			beta = SMLBetaMax
		}
		points[i] = SMLPoint{Beta: beta, ExpectedReturn: ExpectedReturn(rf, rm, beta)}
	}
	return points
}
