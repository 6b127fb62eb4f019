// Command clusterest estimates cluster centers for a file of integer points.
//
// Candidates are read as CSV (one point per line) or JSON (array of arrays)
// and the centers are written in the same format unless -out-format says
// otherwise:
//
//	clusterest -in points.csv -edge-divisor 2 -alpha 0.19 -beta 0.2
//	clusterest -in points.json -format json -params params.json -plot centers.png
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/TrevorS/clusterest"
	"github.com/TrevorS/clusterest/internal/dataio"
	"github.com/TrevorS/clusterest/internal/params"
	"github.com/TrevorS/clusterest/internal/render"
)

// options holds the parsed command line.
type options struct {
	In        string
	Format    string
	Out       string
	OutFormat string
	Params    string
	Plot      string
	HTML      string
	Verbose   bool

	EdgeDivisor int
	Alpha       float64
	Beta        float64
	MaxRounds   int
	Workers     int
	Metric      string

	// set records which flags were given explicitly.
	set map[string]bool
}

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "clusterest:", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	def := clusterest.DefaultConfig()
	o := &options{set: make(map[string]bool)}

	fs := flag.NewFlagSet("clusterest", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.In, "in", "-", "candidate file (- for stdin)")
	fs.StringVar(&o.Format, "format", "csv", "input format: csv or json")
	fs.StringVar(&o.Out, "out", "-", "output file for the centers (- for stdout)")
	fs.StringVar(&o.OutFormat, "out-format", "", "output format: csv or json (default: same as -format)")
	fs.StringVar(&o.Params, "params", "", "JSON parameter file; explicit flags override it")
	fs.StringVar(&o.Plot, "plot", "", "write a scatter plot of the first two dimensions (png, svg, pdf)")
	fs.StringVar(&o.HTML, "html", "", "write an interactive HTML scatter plot")
	fs.BoolVar(&o.Verbose, "v", false, "log every accepted center")
	fs.IntVar(&o.EdgeDivisor, "edge-divisor", int(def.EdgeDivisor), "edge threshold divisor, 0-255 (0 returns only the first center)")
	fs.Float64Var(&o.Alpha, "alpha", def.Alpha, "potential decay rate")
	fs.Float64Var(&o.Beta, "beta", def.Beta, "suppression decay rate")
	fs.IntVar(&o.MaxRounds, "max-rounds", def.MaxRounds, "centers accepted after the first one, at most")
	fs.IntVar(&o.Workers, "workers", def.Workers, "goroutines computing potentials")
	fs.StringVar(&o.Metric, "metric", "euclidean", "distance metric: euclidean, manhattan or chebyshev")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	return o, nil
}

// config builds the estimator config: defaults, then the params file, then
// explicitly set flags.
func (o *options) config() (clusterest.Config, error) {
	cfg := clusterest.DefaultConfig()

	if o.Params != "" {
		p, err := params.Load(o.Params)
		if err != nil {
			return cfg, err
		}
		p.Apply(&cfg)
	}

	if o.set["edge-divisor"] {
		if o.EdgeDivisor < 0 || o.EdgeDivisor > math.MaxUint8 {
			return cfg, fmt.Errorf("-edge-divisor must be in [0, %d], got %d", math.MaxUint8, o.EdgeDivisor)
		}
		cfg.EdgeDivisor = uint8(o.EdgeDivisor)
	}
	if o.set["alpha"] {
		cfg.Alpha = o.Alpha
	}
	if o.set["beta"] {
		cfg.Beta = o.Beta
	}
	if o.set["max-rounds"] {
		cfg.MaxRounds = o.MaxRounds
	}
	if o.set["workers"] {
		cfg.Workers = o.Workers
	}
	if o.set["metric"] {
		m, err := params.ParseMetric(o.Metric)
		if err != nil {
			return cfg, err
		}
		cfg.Metric = m
	}
	return cfg, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if o.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	inFormat, err := dataio.ParseFormat(o.Format)
	if err != nil {
		return err
	}
	outFormat := inFormat
	if o.OutFormat != "" {
		if outFormat, err = dataio.ParseFormat(o.OutFormat); err != nil {
			return err
		}
	}

	cfg, err := o.config()
	if err != nil {
		return err
	}
	cfg.Logger = logger

	candidates, err := readCandidates(o.In, inFormat, stdin)
	if err != nil {
		return fmt.Errorf("read candidates: %w", err)
	}

	result, err := clusterest.EstimateWithConfig(candidates, cfg)
	if err != nil {
		return err
	}
	logger.Info("estimated centers",
		"candidates", candidates.Rows(),
		"centers", result.Centers.Rows(),
		"threshold", result.Threshold,
		"stop_reason", result.StopReason,
	)

	if err := writeCenters(o.Out, outFormat, stdout, result.Centers); err != nil {
		return fmt.Errorf("write centers: %w", err)
	}

	ro := render.DefaultOptions(candidates.Cols())
	if o.Plot != "" {
		if err := render.SavePlot(o.Plot, candidates, result.Centers, ro); err != nil {
			return err
		}
		logger.Info("plot written", "path", o.Plot)
	}
	if o.HTML != "" {
		if err := writeHTML(o.HTML, candidates, result.Centers, ro); err != nil {
			return err
		}
		logger.Info("html written", "path", o.HTML)
	}
	return nil
}

func readCandidates(path string, f dataio.Format, stdin io.Reader) (clusterest.Matrix, error) {
	if path == "-" {
		return dataio.Read(stdin, f)
	}
	file, err := os.Open(path)
	if err != nil {
		return clusterest.Matrix{}, err
	}
	defer file.Close()
	return dataio.Read(file, f)
}

func writeCenters(path string, f dataio.Format, stdout io.Writer, centers clusterest.Matrix) error {
	if path == "-" {
		return dataio.Write(stdout, centers, f)
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := dataio.Write(file, centers, f); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func writeHTML(path string, candidates, centers clusterest.Matrix, ro render.Options) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := render.WriteHTML(file, candidates, centers, ro); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
