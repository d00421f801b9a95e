package blocks

import "testing"

func TestPointsFor(t *testing.T) {
	tests := []struct {
		lines    int
		expected int
	}{
		{-1, 0},
		{0, 0},
		{1, 100},
		{2, 200},
		{3, 500},
		{4, 1000},
		{5, 0},
	}

	for _, tt := range tests {
		if got := PointsFor(tt.lines); got != tt.expected {
			t.Errorf("PointsFor(%d) = %d, expected %d", tt.lines, got, tt.expected)
		}
	}
}

func TestScoreRecordClear(t *testing.T) {
	var s Score
	s.RecordClear(1)
	s.RecordClear(0)
	s.RecordClear(4)

	if s.Points != 1100 {
		t.Errorf("Points = %d, expected 1100", s.Points)
	}
	if s.Lines != 5 {
		t.Errorf("Lines = %d, expected 5", s.Lines)
	}
}

func TestScoreRecordLock(t *testing.T) {
	var s Score
	s.RecordLock(ShapeT)
	s.RecordLock(ShapeT)
	s.RecordLock(ShapeI)

	if s.Count(ShapeT) != 2 {
		t.Errorf("Count(T) = %d, expected 2", s.Count(ShapeT))
	}
	if s.Count(ShapeO) != 0 {
		t.Errorf("Count(O) = %d, expected 0", s.Count(ShapeO))
	}
	if s.Pieces() != 3 {
		t.Errorf("Pieces() = %d, expected 3", s.Pieces())
	}
	if s.Points != 0 {
		t.Errorf("Points = %d, expected 0", s.Points)
	}
}
