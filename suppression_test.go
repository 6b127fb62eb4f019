package clusterest

import (
	"math"
	"testing"
)

func TestBias_NoAcceptedCenters(t *testing.T) {
	if b := Bias(Point{1, 2, 3}, nil, 0.2); b != 0 {
		t.Errorf("expected 0, got %v", b)
	}
	if b := Bias(Point{1, 2, 3}, []Center{}, 0.2); b != 0 {
		t.Errorf("expected 0 for empty slice, got %v", b)
	}
}

func TestBias_AtCenterEqualsPotential(t *testing.T) {
	accepted := []Center{{Potential: 2.5, Location: Point{4, 4}}}
	if b := Bias(Point{4, 4}, accepted, 0.2); b != 2.5 {
		t.Errorf("expected 2.5, got %v", b)
	}
}

func TestBias_HandComputed(t *testing.T) {
	accepted := []Center{
		{Potential: 2, Location: Point{0, 0}},
		{Potential: 1, Location: Point{6, 8}},
	}
	beta := 0.3
	// d((3,4),(0,0)) = 5, d((3,4),(6,8)) = 5
	want := 2*math.Exp(-beta*5) + 1*math.Exp(-beta*5)
	if b := Bias(Point{3, 4}, accepted, beta); !almostEqual(b, want, floatTol) {
		t.Errorf("expected %v, got %v", want, b)
	}
}

func TestBias_LargerBetaNarrowsSuppression(t *testing.T) {
	accepted := []Center{{Potential: 3, Location: Point{0}}}
	wide := Bias(Point{5}, accepted, 0.1)
	narrow := Bias(Point{5}, accepted, 1)
	if !(narrow < wide) {
		t.Errorf("expected bias to shrink with beta: beta=0.1 -> %v, beta=1 -> %v", wide, narrow)
	}
}

func TestBias_OtherMetric(t *testing.T) {
	accepted := []Center{{Potential: 1, Location: Point{0, 0}}}
	// Manhattan distance from (0,0) to (1,1) is 2.
	got := bias(Point{1, 1}, accepted, 1, ManhattanMetric{})
	if want := math.Exp(-2); !almostEqual(got, want, floatTol) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
