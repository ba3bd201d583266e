package scoring

var positionPoints = map[int]int{
	1:  50,
	2:  45,
	3:  40,
	4:  37,
	5:  35,
	6:  33,
	7:  31,
	8:  30,
	9:  29,
	10: 28,
}

// PositionPoints converts a finishing position into season standings
// points. Positions past tenth decay by one point per place, floored
// at ten so a finish always counts for something.
func PositionPoints(position int) int {
	if pts, ok := positionPoints[position]; ok {
		return pts
	}

	pts := 28 - (position - 10)
	if pts < 10 {
		return 10
	}

	return pts
}
