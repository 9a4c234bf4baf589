package model

// BetaClass is a human-friendly risk classification for a beta value.
// Keep these values stable; they appear in API responses and CSV output.
type BetaClass string

const (
	BetaDefensive  BetaClass = "DEFENSIVE"
	BetaNeutral    BetaClass = "NEUTRAL"
	BetaAggressive BetaClass = "AGGRESSIVE"
)

// ClassifyBeta buckets an asset by its sensitivity to the market:
// beta < 1 dampens market moves, beta > 1 amplifies them.
func ClassifyBeta(beta float64) BetaClass {
	switch {
	case beta < 1:
		return BetaDefensive
	case beta > 1:
		return BetaAggressive
	default:
		return BetaNeutral
	}
}
