// Package clusterest estimates cluster centers with mountain (subtractive)
// clustering.
//
// Every candidate point is scored by a density potential: the sum of
// exp(-alpha * d) over all candidates, where d is the Euclidean distance. The
// highest scoring candidate becomes the first center and fixes an edge
// threshold of potential/edgeDivisor. Each later round subtracts a
// suppression term (p * exp(-beta * d)) for every center accepted so far and
// accepts the new best candidate while its net potential stays at or above
// the threshold. The number of centers is never given up front.
//
// Basic usage:
//
//	candidates, err := clusterest.NewMatrix([][]int16{{1, 3, 4}, {2, 5, 6}, {75, 34, 12}})
//	centers, err := clusterest.Estimate(candidates, 2, 0.19, 0.2)
//	// centers.Row(0) is the densest candidate
//
// For more control (metric, round cap, parallel potentials, logging, the
// per-center potentials):
//
//	cfg := clusterest.DefaultConfig()
//	cfg.Workers = 4
//	result, err := clusterest.EstimateWithConfig(candidates, cfg)
//	// result.Centers, result.Potentials, result.Threshold, result.StopReason
//
// # Termination
//
// The first peak is always accepted. At most Config.MaxRounds further centers
// are accepted (100 by default), so Estimate returns between 1 and 101 rows.
// An edgeDivisor of 0 gives an infinite threshold and exactly one center.
package clusterest
