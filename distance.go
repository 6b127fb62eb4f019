package clusterest

import "math"

// Metric measures the distance between two points of equal dimension.
type Metric interface {
	Distance(p, q Point) float64
}

// MetricFunc adapts a plain function into a Metric.
type MetricFunc func(p, q Point) float64

func (f MetricFunc) Distance(p, q Point) float64 { return f(p, q) }

// Distance returns the Euclidean distance between p and q. Coordinates are
// widened to float64 before subtracting, so values at opposite ends of the
// int16 range do not overflow. Panics if the dimensions differ.
func Distance(p, q Point) float64 {
	return math.Sqrt(euclideanSumOfSquares(p, q))
}

// EuclideanMetric computes the Euclidean (L2) distance. It is the default.
type EuclideanMetric struct{}

func (EuclideanMetric) Distance(p, q Point) float64 { return Distance(p, q) }

func euclideanSumOfSquares(p, q Point) float64 {
	mustSameDim(p, q)
	var sum float64
	for i := range p {
		d := float64(p[i]) - float64(q[i])
		sum += d * d
	}
	return sum
}

// ManhattanMetric computes the Manhattan (L1 / city-block) distance.
type ManhattanMetric struct{}

func (ManhattanMetric) Distance(p, q Point) float64 {
	mustSameDim(p, q)
	var sum float64
	for i := range p {
		sum += math.Abs(float64(p[i]) - float64(q[i]))
	}
	return sum
}

// ChebyshevMetric computes the Chebyshev (L-infinity) distance.
type ChebyshevMetric struct{}

func (ChebyshevMetric) Distance(p, q Point) float64 {
	mustSameDim(p, q)
	var maxVal float64
	for i := range p {
		if v := math.Abs(float64(p[i]) - float64(q[i])); v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

func mustSameDim(p, q Point) {
	if len(p) != len(q) {
		panic("clusterest: distance between points of different dimension")
	}
}
