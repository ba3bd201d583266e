// Package scoring holds the pure calculation rules of the engine:
// handicap stroke allocation, Stableford points, and the season
// points-for-position table. Nothing in here touches storage.
package scoring

import "math"

// StrokesForHole returns the handicap strokes a player receives on one
// hole. Every hole gets floor(handicap/18) strokes; the remainder is
// spread over the hardest holes, one extra stroke per hole whose
// stroke index is within the remainder. A hole without a stroke index
// never receives a remainder stroke. The fractional part of the
// handicap has no effect on allocation.
func StrokesForHole(handicap float64, strokeIndex *int) int {
	if handicap < 0 {
		handicap = 0
	}

	base := int(math.Floor(handicap / 18))
	if strokeIndex == nil {
		return base
	}

	remainder := math.Mod(handicap, 18)
	if float64(*strokeIndex) <= remainder {
		return base + 1
	}

	return base
}
