package metric

import (
	"os"

	"github.com/gocarina/gocsv"
)

// Exporter accumulates the per-sweep diagnostic rows and writes them out as
// CSV files. The trail is a pure side channel: callers log write failures as
// warnings and carry on, detection never depends on it.
type Exporter struct {
	lineRecords     []LineRecord
	capacityRecords []CapacityRecord
}

func NewExporter() *Exporter {
	return &Exporter{
		lineRecords:     []LineRecord{},
		capacityRecords: []CapacityRecord{},
	}
}

func (ep *Exporter) ReportLine(record LineRecord) {
	ep.lineRecords = append(ep.lineRecords, record)
}

func (ep *Exporter) ReportCapacity(record CapacityRecord) {
	ep.capacityRecords = append(ep.capacityRecords, record)
}

func (ep *Exporter) LineCount() int {
	return len(ep.lineRecords)
}

func (ep *Exporter) CapacityCount() int {
	return len(ep.capacityRecords)
}

// WriteLineFile writes the accumulated line-sweep rows to path. The file is
// closed on every path out.
func (ep *Exporter) WriteLineFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return gocsv.MarshalFile(&ep.lineRecords, f)
}

// WriteCapacityFile writes the accumulated capacity-sweep rows to path.
func (ep *Exporter) WriteCapacityFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return gocsv.MarshalFile(&ep.capacityRecords, f)
}
