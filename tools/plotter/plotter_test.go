package main

import (
	"path/filepath"
	"testing"

	"github.com/hwprobe/cacheprobe/pkg/metric"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestPlotter(t *testing.T) {
	log.SetLevel(log.DebugLevel)

	inputDir := t.TempDir()

	first := metric.NewExporter()
	first.ReportLine(metric.LineRecord{Power: 2, Stride: 4, MinNormalized: 0.1})
	first.ReportLine(metric.LineRecord{Power: 3, Stride: 8, MinNormalized: 0.3})
	require.NoError(t, first.WriteLineFile(filepath.Join(inputDir, "line_run-aaaa.csv")))

	second := metric.NewExporter()
	second.ReportLine(metric.LineRecord{Power: 2, Stride: 4, MinNormalized: 0.3})
	require.NoError(t, second.WriteLineFile(filepath.Join(inputDir, "line_run-bbbb.csv")))

	samples := parseLineFiles(inputDir)
	require.Len(t, samples, 3)

	pts := aggregate(samples)
	require.Len(t, pts, 2)
	require.Equal(t, 2.0, pts[0].X)
	require.InDelta(t, 0.2, pts[0].Y, 1e-9)
	require.Equal(t, 3.0, pts[1].X)
	require.InDelta(t, 0.3, pts[1].Y, 1e-9)

	plotCurve(t.TempDir(), "line.png", "Stride (log2 bytes)", pts)
}
