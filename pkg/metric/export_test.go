package metric

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExporterRoundTrip(t *testing.T) {
	exporter := NewExporter()
	exporter.ReportLine(LineRecord{
		Power:            6,
		Stride:           64,
		MinNs:            116343,
		MinNormalized:    1.774983,
		MaxNormalized:    2.420774,
		MeanNormalized:   1.9,
		StdDevNormalized: 0.2,
	})
	exporter.ReportCapacity(CapacityRecord{
		Power:          16,
		MinNormalized:  5.359051,
		MaxNormalized:  5.41995,
		MeanNormalized: 5.38,
		SizeBytes:      65536 * 4,
	})
	assert.Equal(t, 1, exporter.LineCount())
	assert.Equal(t, 1, exporter.CapacityCount())

	dir := t.TempDir()
	linePath := filepath.Join(dir, "line.csv")
	capacityPath := filepath.Join(dir, "caches.csv")

	require.NoError(t, exporter.WriteLineFile(linePath))
	require.NoError(t, exporter.WriteCapacityFile(capacityPath))

	lineF, err := os.Open(linePath)
	require.NoError(t, err)
	defer lineF.Close()

	var lineRows []LineRecord
	require.NoError(t, gocsv.UnmarshalFile(lineF, &lineRows))
	assert.Equal(t, exporter.lineRecords, lineRows)

	capacityF, err := os.Open(capacityPath)
	require.NoError(t, err)
	defer capacityF.Close()

	var capacityRows []CapacityRecord
	require.NoError(t, gocsv.UnmarshalFile(capacityF, &capacityRows))
	assert.Equal(t, exporter.capacityRecords, capacityRows)
}

func TestExporterWriteFailureIsSurfaced(t *testing.T) {
	exporter := NewExporter()
	exporter.ReportLine(LineRecord{Power: 2, Stride: 4})

	err := exporter.WriteLineFile(filepath.Join(t.TempDir(), "no", "such", "dir.csv"))
	assert.Error(t, err)
}
