package scoring

import "math"

// StablefordPoints scores one hole from the net result against par.
// Net double bogey or worse earns nothing; net albatross or better
// caps at five.
func StablefordPoints(strokes, par, handicapStrokes int) int {
	netStrokes := strokes - handicapStrokes
	scoreToPar := netStrokes - par

	switch {
	case scoreToPar <= -3:
		return 5
	case scoreToPar == -2:
		return 4
	case scoreToPar == -1:
		return 3
	case scoreToPar == 0:
		return 2
	case scoreToPar == 1:
		return 1
	default:
		return 0
	}
}

// NetScore rounds the gross score adjusted by the handicap held at
// submission time.
func NetScore(gross int, handicap float64) int {
	return int(math.Round(float64(gross) - handicap))
}
