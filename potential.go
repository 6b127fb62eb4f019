package clusterest

import (
	"math"

	"golang.org/x/sync/errgroup"
)

// Potential returns the density potential of x over the candidate set:
// the sum of exp(-alpha * d(x, y)) for every candidate y, x included when it
// is a candidate. Larger alpha makes the potential more local.
func Potential(x Point, candidates Matrix, alpha float64) float64 {
	return potential(x, candidates, alpha, EuclideanMetric{})
}

func potential(x Point, candidates Matrix, alpha float64, metric Metric) float64 {
	var sum float64
	for i := 0; i < candidates.Rows(); i++ {
		sum += math.Exp(-alpha * metric.Distance(x, candidates.Row(i)))
	}
	return sum
}

// ComputePotentials returns the potential of every candidate, indexed by row.
// The potential of a candidate does not depend on the accepted centers, so an
// estimation run computes it once instead of once per round.
func ComputePotentials(candidates Matrix, alpha float64, metric Metric) []float64 {
	n := candidates.Rows()
	result := make([]float64, n)
	for i := 0; i < n; i++ {
		result[i] = potential(candidates.Row(i), candidates, alpha, metric)
	}
	return result
}

// ComputePotentialsParallel computes the same values as ComputePotentials
// using numWorkers goroutines. Falls back to the sequential version if
// numWorkers <= 1.
//
// Each candidate's sum is accumulated in row order by a single goroutine, so
// the result is bitwise identical to ComputePotentials.
func ComputePotentialsParallel(candidates Matrix, alpha float64, metric Metric, numWorkers int) []float64 {
	n := candidates.Rows()
	if numWorkers <= 1 || n <= 1 {
		return ComputePotentials(candidates, alpha, metric)
	}

	result := make([]float64, n)

	// Row ranges don't overlap, so writes need no synchronization.
	var g errgroup.Group
	rowsPerWorker := (n + numWorkers - 1) / numWorkers

	for w := 0; w < numWorkers; w++ {
		start := w * rowsPerWorker
		end := min(start+rowsPerWorker, n)
		if start >= n {
			break
		}

		g.Go(func() error {
			for i := start; i < end; i++ {
				result[i] = potential(candidates.Row(i), candidates, alpha, metric)
			}
			return nil
		})
	}

	_ = g.Wait()
	return result
}
