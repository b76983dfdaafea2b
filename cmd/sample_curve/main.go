// Package main prints sampled values of an easing curve.
//
// Usage:
//
//	go run ./cmd/sample_curve [flags]
//
// Flags:
//
//	--curve <name>     Registered curve or preset name (default ElasticInOut)
//	--config <path>    Curve preset file (default data/curves.yaml, optional)
//	--steps <n>        Number of intervals; n+1 points are printed (default 20)
//	--format <fmt>     table | yaml | csv (default table)
//	--track <track>    Sample a keyframe track instead, e.g. "0,0 1,100 ElasticInOut"
//	--copy             Copy the CSV output to the clipboard
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/gonewx/easing/pkg/config"
	"github.com/gonewx/easing/pkg/interpolator"
	"gopkg.in/yaml.v3"
)

var (
	curveFlag   = flag.String("curve", "ElasticInOut", "Curve name or preset name")
	configFlag  = flag.String("config", "data/curves.yaml", "Curve preset file")
	stepsFlag   = flag.Int("steps", 20, "Number of sample intervals")
	formatFlag  = flag.String("format", "table", "Output format: table, yaml, csv")
	trackFlag   = flag.String("track", "", "Keyframe track to sample (overrides --curve)")
	copyFlag    = flag.Bool("copy", false, "Copy CSV output to the clipboard")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
)

// sampleReport is the yaml output document.
type sampleReport struct {
	Curve  string               `yaml:"curve"`
	Steps  int                  `yaml:"steps"`
	Stats  interpolator.Stats   `yaml:"stats"`
	Points []interpolator.Point `yaml:"points"`
}

func main() {
	flag.Parse()

	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	var result sampleResult
	var err error
	if *trackFlag != "" {
		result, err = sampleTrack(*trackFlag, *stepsFlag)
	} else {
		result, err = sampleCurve(*curveFlag, *configFlag, *stepsFlag)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		fmt.Fprintf(os.Stderr, "available curves: %s\n", strings.Join(interpolator.Names(), ", "))
		os.Exit(1)
	}
	points, stats := result.points, result.stats

	var out string
	switch *formatFlag {
	case "table":
		out = renderTable(result.label, points, stats, result.normalize)
	case "yaml":
		data, err := yaml.Marshal(sampleReport{Curve: result.label, Steps: *stepsFlag, Stats: stats, Points: points})
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: failed to marshal report: %v\n", err)
			os.Exit(1)
		}
		out = string(data)
	case "csv":
		out = renderCSV(points)
	default:
		fmt.Fprintf(os.Stderr, "error: unknown format %q\n", *formatFlag)
		os.Exit(1)
	}
	fmt.Println(out)

	if *copyFlag {
		if err := clipboard.WriteAll(renderCSV(points)); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to copy to clipboard: %v\n", err)
		} else {
			fmt.Fprintln(os.Stderr, "copied CSV to clipboard")
		}
	}
}

// sampleResult holds sampled points plus the mapping used to place them on the bar chart.
type sampleResult struct {
	label     string
	points    []interpolator.Point
	stats     interpolator.Stats
	normalize func(float32) float32
}

func sampleCurve(name, configPath string, steps int) (sampleResult, error) {
	curve, err := resolveCurve(name, configPath)
	if err != nil {
		return sampleResult{}, err
	}

	points, err := interpolator.Sample(curve, steps)
	if err != nil {
		return sampleResult{}, err
	}
	return sampleResult{label: name, points: points, stats: interpolator.Analyze(points)}, nil
}

// resolveCurve looks the name up in the registry first, then in the preset file.
func resolveCurve(name, configPath string) (interpolator.Interpolator, error) {
	if curve, err := interpolator.Lookup(name); err == nil {
		return curve, nil
	}

	cfg, err := config.LoadCurveConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("curve %q not registered and presets unavailable: %w", name, err)
	}
	return cfg.Build(name)
}

func renderCSV(points []interpolator.Point) string {
	var b strings.Builder
	b.WriteString("t,value\n")
	for _, p := range points {
		fmt.Fprintf(&b, "%.4f,%.6f\n", p.T, p.Value)
	}
	return b.String()
}
