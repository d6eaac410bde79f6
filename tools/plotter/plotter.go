package main

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"sort"

	"github.com/hwprobe/cacheprobe/pkg/metric"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Renders the diagnostic CSV trail of one or more probing runs into latency
// curves. When several runs are present, the minimum times are averaged per
// domain point.

type sweepSample struct {
	power int
	time  float64
}

func main() {
	var (
		inputDir   = flag.String("i", "data/out", "Path to the directory with diagnostic CSV files")
		outputDir  = flag.String("o", "figs", "Path to the directory for output figures")
		debugLevel = flag.String("d", "info", "Debug level: info, debug")
	)
	flag.Parse()
	log.SetOutput(os.Stdout)

	switch *debugLevel {
	case "debug":
		log.SetLevel(log.DebugLevel)
		log.Debug("Debug mode is enabled")
	default:
		log.SetLevel(log.InfoLevel)
	}

	lineSamples := parseLineFiles(*inputDir)
	log.Infof("Parsed %d line-sweep rows", len(lineSamples))
	if len(lineSamples) > 0 {
		plotCurve(*outputDir, "line.png", "Stride (log2 bytes)", aggregate(lineSamples))
	}

	capacitySamples := parseCapacityFiles(*inputDir)
	log.Infof("Parsed %d capacity-sweep rows", len(capacitySamples))
	if len(capacitySamples) > 0 {
		plotCurve(*outputDir, "caches.png", "Working set (log2 elements)", aggregate(capacitySamples))
	}
}

func parseLineFiles(inputDir string) []sweepSample {
	files, err := filepath.Glob(filepath.Join(inputDir, "line_run-*.csv"))
	if err != nil {
		log.Fatal("Cannot scan the input directory:", err)
	}

	var samples []sweepSample
	for _, file := range files {
		log.Debug("Open file ", file)

		var rows []metric.LineRecord
		readRows(file, &rows)
		for _, row := range rows {
			samples = append(samples, sweepSample{power: row.Power, time: row.MinNormalized})
		}
	}
	return samples
}

func parseCapacityFiles(inputDir string) []sweepSample {
	files, err := filepath.Glob(filepath.Join(inputDir, "caches_run-*.csv"))
	if err != nil {
		log.Fatal("Cannot scan the input directory:", err)
	}

	var samples []sweepSample
	for _, file := range files {
		log.Debug("Open file ", file)

		var rows []metric.CapacityRecord
		readRows(file, &rows)
		for _, row := range rows {
			samples = append(samples, sweepSample{power: row.Power, time: row.MinNormalized})
		}
	}
	return samples
}

func readRows(path string, out interface{}) {
	f, err := os.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	if err := gocsv.UnmarshalFile(f, out); err != nil {
		log.Fatal("Cannot parse ", path, ": ", err)
	}
}

// aggregate averages the times recorded for each domain point across runs
// and returns the points in ascending domain order.
func aggregate(samples []sweepSample) plotter.XYs {
	byPower := make(map[int][]float64)
	for _, s := range samples {
		byPower[s.power] = append(byPower[s.power], s.time)
	}

	powers := make([]int, 0, len(byPower))
	for power := range byPower {
		powers = append(powers, power)
	}
	sort.Ints(powers)

	pts := make(plotter.XYs, len(powers))
	for i, power := range powers {
		pts[i].X = float64(power)
		pts[i].Y = stat.Mean(byPower[power], nil)
	}
	return pts
}

func plotCurve(outputDir, name, xLabel string, pts plotter.XYs) {
	if _, err := os.Stat(outputDir); errors.Is(err, os.ErrNotExist) {
		log.Info("Creating the output directory")
		if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
			log.Fatal(err)
		}
	}

	p := plot.New()
	p.Title.Text = "Probed access latency"
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "Normalized time (ns/access)"
	p.Y.Min = 0

	if err := plotutil.AddLinePoints(p, "Minimum", pts); err != nil {
		log.Fatal(err)
	}

	if err := p.Save(4*vg.Inch, 4*vg.Inch, filepath.Join(outputDir, name)); err != nil {
		log.Fatal(err)
	}

	for _, pt := range pts {
		log.Debug("Plotting ", pt.X, " ", pt.Y)
	}
}
