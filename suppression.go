package clusterest

import "math"

// Center is an accepted cluster center together with the net potential it
// had when it was selected.
type Center struct {
	Potential float64
	Location  Point
}

// Bias returns the suppression that the accepted centers exert on x: the sum
// of p * exp(-beta * d(loc, x)) over accepted centers in selection order.
// It is 0 when nothing has been accepted. Larger beta narrows the
// suppression radius.
func Bias(x Point, accepted []Center, beta float64) float64 {
	return bias(x, accepted, beta, EuclideanMetric{})
}

func bias(x Point, accepted []Center, beta float64, metric Metric) float64 {
	var sum float64
	for _, c := range accepted {
		// The conversion keeps the product rounded before the add (no FMA),
		// so sums are identical on every architecture.
		sum += float64(c.Potential * math.Exp(-beta*metric.Distance(c.Location, x)))
	}
	return sum
}
