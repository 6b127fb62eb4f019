// Package params loads estimation parameters from a JSON file.
//
// Every field is optional. Omitted fields leave the corresponding
// clusterest.Config value untouched, so a file can override only alpha, say,
// and keep the command-line or default values for the rest.
package params

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/TrevorS/clusterest"
)

// maxFileSize bounds the parameter file read.
const maxFileSize = 1 * 1024 * 1024

// Params mirrors the tunable fields of clusterest.Config.
type Params struct {
	EdgeDivisor *int     `json:"edge_divisor,omitempty"`
	Alpha       *float64 `json:"alpha,omitempty"`
	Beta        *float64 `json:"beta,omitempty"`
	MaxRounds   *int     `json:"max_rounds,omitempty"`
	Workers     *int     `json:"workers,omitempty"`
	Metric      *string  `json:"metric,omitempty"`
}

// Load reads Params from a .json file and validates them.
func Load(path string) (*Params, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("params file must have .json extension, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat params file: %w", err)
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("params file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read params file: %w", err)
	}

	p := &Params{}
	if err := json.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("failed to parse params JSON: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid params: %w", err)
	}
	return p, nil
}

// Validate checks ranges. Alpha and Beta only have to be finite numbers.
func (p *Params) Validate() error {
	if p.EdgeDivisor != nil && (*p.EdgeDivisor < 0 || *p.EdgeDivisor > math.MaxUint8) {
		return fmt.Errorf("edge_divisor must be in [0, %d], got %d", math.MaxUint8, *p.EdgeDivisor)
	}
	if p.Alpha != nil && (math.IsNaN(*p.Alpha) || math.IsInf(*p.Alpha, 0)) {
		return fmt.Errorf("alpha must be finite, got %v", *p.Alpha)
	}
	if p.Beta != nil && (math.IsNaN(*p.Beta) || math.IsInf(*p.Beta, 0)) {
		return fmt.Errorf("beta must be finite, got %v", *p.Beta)
	}
	if p.MaxRounds != nil && *p.MaxRounds < 0 {
		return fmt.Errorf("max_rounds must be >= 0, got %d", *p.MaxRounds)
	}
	if p.Workers != nil && *p.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", *p.Workers)
	}
	if p.Metric != nil {
		if _, err := ParseMetric(*p.Metric); err != nil {
			return err
		}
	}
	return nil
}

// Apply copies every set field onto cfg. Call Validate first.
func (p *Params) Apply(cfg *clusterest.Config) {
	if p.EdgeDivisor != nil {
		cfg.EdgeDivisor = uint8(*p.EdgeDivisor)
	}
	if p.Alpha != nil {
		cfg.Alpha = *p.Alpha
	}
	if p.Beta != nil {
		cfg.Beta = *p.Beta
	}
	if p.MaxRounds != nil {
		cfg.MaxRounds = *p.MaxRounds
	}
	if p.Workers != nil {
		cfg.Workers = *p.Workers
	}
	if p.Metric != nil {
		cfg.Metric, _ = ParseMetric(*p.Metric)
	}
}

// ParseMetric maps a metric name to a clusterest.Metric.
func ParseMetric(name string) (clusterest.Metric, error) {
	switch name {
	case "", "euclidean":
		return clusterest.EuclideanMetric{}, nil
	case "manhattan":
		return clusterest.ManhattanMetric{}, nil
	case "chebyshev":
		return clusterest.ChebyshevMetric{}, nil
	default:
		return nil, fmt.Errorf("metric must be euclidean, manhattan or chebyshev, got %q", name)
	}
}
