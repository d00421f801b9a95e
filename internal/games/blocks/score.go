package blocks

// Score tracks points, cleared lines and how many pieces of each shape have
// been locked. All totals only grow.
type Score struct {
	Points int
	Lines  int
	counts [ShapeCount]int
}

// PointsFor returns the award for clearing n lines in a single lock.
// Anything outside 1-4 scores nothing.
func PointsFor(n int) int {
	switch n {
	case 1:
		return 100
	case 2:
		return 200
	case 3:
		return 500
	case 4:
		return 1000
	default:
		return 0
	}
}

// RecordLock counts one locked piece of the given shape.
func (s *Score) RecordLock(shape Shape) {
	s.counts[shape]++
}

// RecordClear adds n cleared lines and their points.
func (s *Score) RecordClear(n int) {
	if n <= 0 {
		return
	}
	s.Lines += n
	s.Points += PointsFor(n)
}

// Count returns how many pieces of shape have been locked.
func (s Score) Count(shape Shape) int {
	return s.counts[shape]
}

// Pieces returns the total number of locked pieces.
func (s Score) Pieces() int {
	total := 0
	for _, n := range s.counts {
		total += n
	}
	return total
}
