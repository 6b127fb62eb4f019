package clusterest

import (
	"fmt"
	"io"
	"log/slog"
)

// DefaultMaxRounds is the number of centers that may be accepted after the
// unconditional first one.
const DefaultMaxRounds = 100

// StopReason records why the peak extraction loop ended.
type StopReason string

const (
	// StopThreshold means the best remaining net potential fell below the
	// edge threshold.
	StopThreshold StopReason = "threshold"
	// StopMaxRounds means Config.MaxRounds centers were accepted after the
	// first one.
	StopMaxRounds StopReason = "max_rounds"
	// StopNoPeak means no candidate had a positive net potential left.
	StopNoPeak StopReason = "no_peak"
)

// Config controls a mountain clustering run.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// EdgeDivisor sets the edge threshold to firstPeak/EdgeDivisor. Larger
	// values keep accepting weaker peaks and so return more centers. 0 gives
	// an infinite threshold: only the first peak is returned. Default: 2.
	EdgeDivisor uint8

	// Alpha is the decay rate of the potential field. Larger values make the
	// density estimate more local. Values <= 0 are accepted but stop the
	// potential from decaying with distance. Default: 0.19.
	Alpha float64

	// Beta is the decay rate of the suppression around accepted centers.
	// Larger values narrow the suppressed region. Values <= 0 are accepted.
	// Default: 0.2.
	Beta float64

	// Metric is the distance function. nil means EuclideanMetric.
	Metric Metric

	// MaxRounds caps how many centers are accepted after the first one.
	// Must be >= 0; 0 means DefaultMaxRounds (100).
	MaxRounds int

	// Workers controls the number of goroutines used to compute candidate
	// potentials. Results do not depend on it. Must be >= 0; 0 means 1.
	Workers int

	// Logger receives debug events for accepted centers and the stop
	// decision. nil discards them.
	Logger *slog.Logger
}

// Result contains the output of a mountain clustering run.
type Result struct {
	// Centers holds one row per accepted center, in selection order. The
	// first row is the candidate with the highest raw potential.
	Centers Matrix

	// Potentials[i] is the net potential Centers.Row(i) had when it was
	// accepted.
	Potentials []float64

	// Threshold is the edge threshold derived from the first peak.
	Threshold float64

	// Rounds is the number of centers accepted after the first one.
	Rounds int

	// StopReason tells why no further center was accepted.
	StopReason StopReason
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		EdgeDivisor: 2,
		Alpha:       0.19,
		Beta:        0.2,
		Metric:      EuclideanMetric{},
		MaxRounds:   DefaultMaxRounds,
		Workers:     1,
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
// Alpha and Beta are not checked.
func validateConfig(cfg *Config) error {
	if cfg.MaxRounds < 0 {
		return fmt.Errorf("clusterest: MaxRounds must be >= 0 (0 means default to %d), got %d", DefaultMaxRounds, cfg.MaxRounds)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("clusterest: Workers must be >= 0 (0 means 1), got %d", cfg.Workers)
	}
	return nil
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Metric == nil {
		cfg.Metric = EuclideanMetric{}
	}
	if cfg.MaxRounds == 0 {
		cfg.MaxRounds = DefaultMaxRounds
	}
	if cfg.Workers == 0 {
		cfg.Workers = 1
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
}

// Estimate returns the estimated cluster centers of candidates, one row per
// center in selection order. It runs single-threaded with the Euclidean
// metric and the default round cap.
//
// It returns ErrEmptyCandidates for a matrix without rows and ErrNoPeak if no
// candidate has a positive potential (NaN alpha, for example).
func Estimate(candidates Matrix, edgeDivisor uint8, alpha, beta float64) (Matrix, error) {
	result, err := EstimateWithConfig(candidates, Config{
		EdgeDivisor: edgeDivisor,
		Alpha:       alpha,
		Beta:        beta,
	})
	if err != nil {
		return Matrix{}, err
	}
	return result.Centers, nil
}

// EstimateWithConfig runs mountain clustering on candidates with cfg.
// candidates is only read. Returns an error if the config is invalid or no
// center can be selected.
func EstimateWithConfig(candidates Matrix, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	if candidates.Rows() == 0 {
		return nil, ErrEmptyCandidates
	}

	potentials := ComputePotentialsParallel(candidates, cfg.Alpha, cfg.Metric, cfg.Workers)
	log := cfg.Logger.With("candidates", candidates.Rows(), "dimension", candidates.Cols())

	first, ok := findPeak(candidates, potentials, nil, cfg.Beta, cfg.Metric)
	if !ok {
		return nil, ErrNoPeak
	}

	// The first peak calibrates the threshold and is accepted without
	// being compared against it.
	threshold := first.Potential / float64(cfg.EdgeDivisor)
	accepted := []Center{first}
	log.Debug("center accepted", "round", 0, "potential", first.Potential, "threshold", threshold)

	rounds := 0
	var reason StopReason
	for {
		if rounds >= cfg.MaxRounds {
			reason = StopMaxRounds
			break
		}
		peak, ok := findPeak(candidates, potentials, accepted, cfg.Beta, cfg.Metric)
		if !ok {
			reason = StopNoPeak
			break
		}
		if threshold > peak.Potential {
			reason = StopThreshold
			break
		}
		accepted = append(accepted, peak)
		rounds++
		log.Debug("center accepted", "round", rounds, "potential", peak.Potential, "threshold", threshold)
	}
	log.Debug("estimation stopped", "reason", reason, "centers", len(accepted))

	return assembleResult(accepted, candidates.Cols(), threshold, rounds, reason), nil
}

// findPeak scans the candidates in row order and returns the first one with
// the highest net potential (potential minus bias). Ties keep the earlier
// row. It reports false when no candidate's net potential exceeds 0.
func findPeak(candidates Matrix, potentials []float64, accepted []Center, beta float64, metric Metric) (Center, bool) {
	var best Center
	found := false
	maxNet := 0.0

	for i := 0; i < candidates.Rows(); i++ {
		x := candidates.Row(i)
		net := potentials[i] - bias(x, accepted, beta, metric)
		if net > maxNet {
			maxNet = net
			best = Center{Potential: net, Location: x}
			found = true
		}
	}

	return best, found
}

// assembleResult copies the accepted locations into the output matrix.
func assembleResult(accepted []Center, cols int, threshold float64, rounds int, reason StopReason) *Result {
	points := make([]Point, len(accepted))
	potentials := make([]float64, len(accepted))
	for i, c := range accepted {
		points[i] = c.Location
		potentials[i] = c.Potential
	}

	return &Result{
		Centers:    matrixFromPoints(points, cols),
		Potentials: potentials,
		Threshold:  threshold,
		Rounds:     rounds,
		StopReason: reason,
	}
}
