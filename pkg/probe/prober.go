package probe

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/hwprobe/cacheprobe/pkg/config"
	"github.com/hwprobe/cacheprobe/pkg/curve"
	"github.com/hwprobe/cacheprobe/pkg/metric"
	"github.com/hwprobe/cacheprobe/pkg/workload"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// DefaultLineSize is the fallback assumed when line-size detection misses.
const DefaultLineSize = 64

// Result holds the outcome of one probing run. Sizes are in bytes; a stage
// whose step was not detected reports curve.NotFound. The value is built
// once per run and never mutated afterwards.
type Result struct {
	LineSize int
	L1Size   int
	L2Size   int
}

// LineSizeOrDefault resolves a missed line-size detection to DefaultLineSize.
func (r Result) LineSizeOrDefault() int {
	if r.LineSize == curve.NotFound {
		return DefaultLineSize
	}
	return r.LineSize
}

// Prober sequences the three detection stages: line size first, then L1 and
// L2 capacities using the resolved line size as the access stride.
type Prober struct {
	Configuration *config.ProbeConfiguration

	runID    string
	exporter *metric.Exporter
}

func NewProber(cfg *config.ProbeConfiguration) *Prober {
	return &Prober{
		Configuration: cfg,
		runID:         uuid.New().String()[:8],
		exporter:      metric.NewExporter(),
	}
}

// Run executes the full probing sequence on the calling goroutine, which is
// locked to its OS thread (and, best effort, to one CPU) for the duration:
// the timing signal is invalid under migration or interleaving.
func (p *Prober) Run() (Result, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if p.Configuration.PinCPU {
		if err := pinCurrentThread(); err != nil {
			log.Debugf("run %s: could not pin the probing thread: %v", p.runID, err)
		}
	}

	log.Infof("run %s: starting probe of cache line", p.runID)
	lineSize, err := p.ProbeLine()
	if err != nil {
		return Result{}, err
	}

	resolved := lineSize
	if resolved == curve.NotFound {
		log.Warnf("run %s: failed to detect cache line size, assuming %d bytes", p.runID, DefaultLineSize)
		resolved = DefaultLineSize
	}

	log.Infof("run %s: starting probe of level cache sizes with stride %d", p.runID, resolved)
	l1Size, l2Size, err := p.ProbeCaches(resolved)
	if err != nil {
		return Result{}, err
	}

	if p.Configuration.EnableDiagnostics {
		p.writeDiagnostics()
	}

	return Result{
		LineSize: lineSize,
		L1Size:   l1Size,
		L2Size:   l2Size,
	}, nil
}

// ProbeLine sweeps the access stride over a fixed byte buffer and returns
// the detected cache line size in bytes, or curve.NotFound.
func (p *Prober) ProbeLine() (int, error) {
	cfg := p.Configuration

	w, err := workload.NewByteStride(cfg.LineBufferBytes)
	if err != nil {
		return curve.NotFound, err
	}

	domain := curve.PowersOfTwo(cfg.LineMinShift, cfg.LineMaxShift)
	c, samples := curve.Build(domain, cfg.LineLoops, workload.LineIterations, func(stride int) {
		w.Touch(stride)
	})

	for i, s := range samples {
		p.exporter.ReportLine(metric.LineRecord{
			Power:            cfg.LineMinShift + i,
			Stride:           domain[i],
			MinNs:            s.Min.Nanoseconds(),
			MinNormalized:    float64(s.Min) / workload.LineIterations,
			MaxNormalized:    float64(s.Max) / workload.LineIterations,
			MeanNormalized:   s.Mean / workload.LineIterations,
			StdDevNormalized: s.StdDev / workload.LineIterations,
		})
	}

	// The jump at the true line size is gradual: the statistical peak lags
	// the edge, hence the SoftEdge reporting style.
	return curve.FindStep(c, 1, cfg.LineThreshold, curve.SoftEdge), nil
}

// ProbeCaches sweeps the working-set size over an int buffer, striding by
// the resolved line size, and returns the detected L1 and L2 capacities in
// bytes. A missed L1 detection skips the L2 stage: its search would
// otherwise start at a nonsensical point.
func (p *Prober) ProbeCaches(lineSize int) (int, int, error) {
	cfg := p.Configuration

	w, err := workload.NewIntStride(1 << cfg.MaxShift)
	if err != nil {
		return curve.NotFound, curve.NotFound, err
	}

	domain := curve.PowersOfTwo(cfg.LevelMinShift, cfg.MaxShift-1)
	c, samples := curve.Build(domain, cfg.LevelLoops, workload.CapacityIterations, func(size int) {
		w.Touch(size, lineSize)
	})

	for i, s := range samples {
		p.exporter.ReportCapacity(metric.CapacityRecord{
			Power:            cfg.LevelMinShift + i,
			MinNormalized:    float64(s.Min) / workload.CapacityIterations,
			MaxNormalized:    float64(s.Max) / workload.CapacityIterations,
			MeanNormalized:   s.Mean / workload.CapacityIterations,
			StdDevNormalized: s.StdDev / workload.CapacityIterations,
			SizeBytes:        domain[i] * workload.IntElementSize,
		})
	}

	l1Elements := curve.FindFirstStep(c, cfg.L1StartElements, cfg.L1Threshold)
	if l1Elements == curve.NotFound {
		log.Warnf("run %s: failed to detect the L1 boundary, skipping the L2 stage", p.runID)
		return curve.NotFound, curve.NotFound, nil
	}

	// Resume past the noisy region around the L1 transition.
	l2Elements := curve.FindFirstStep(c, l1Elements*2, cfg.L2Threshold)

	l1Size := l1Elements * workload.IntElementSize
	l2Size := curve.NotFound
	if l2Elements != curve.NotFound {
		l2Size = l2Elements * workload.IntElementSize
	}

	return l1Size, l2Size, nil
}

func (p *Prober) writeDiagnostics() {
	prefix := p.Configuration.OutputPathPrefix
	if err := os.MkdirAll(prefix, 0755); err != nil {
		log.Warnf("run %s: diagnostic directory not created: %v", p.runID, err)
		return
	}

	linePath := filepath.Join(prefix, fmt.Sprintf("line_run-%s.csv", p.runID))
	if err := p.exporter.WriteLineFile(linePath); err != nil {
		log.Warnf("run %s: line report [%s] not updated: %v", p.runID, linePath, err)
	}

	capacityPath := filepath.Join(prefix, fmt.Sprintf("caches_run-%s.csv", p.runID))
	if err := p.exporter.WriteCapacityFile(capacityPath); err != nil {
		log.Warnf("run %s: caches report [%s] not updated: %v", p.runID, capacityPath, err)
	}
}
