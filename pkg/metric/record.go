package metric

// LineRecord is one row of the line-sweep diagnostic trail. Timings are
// normalized per access; the raw minimum is kept in nanoseconds.
type LineRecord struct {
	Power  int   `csv:"power"`
	Stride int   `csv:"stride"`
	MinNs  int64 `csv:"duration_min_ns"`

	MinNormalized    float64 `csv:"time_min"`
	MaxNormalized    float64 `csv:"time_max"`
	MeanNormalized   float64 `csv:"time_mean"`
	StdDevNormalized float64 `csv:"time_stddev"`
}

// CapacityRecord is one row of the capacity-sweep diagnostic trail.
type CapacityRecord struct {
	Power int `csv:"power"`

	MinNormalized    float64 `csv:"time_min"`
	MaxNormalized    float64 `csv:"time_max"`
	MeanNormalized   float64 `csv:"time_mean"`
	StdDevNormalized float64 `csv:"time_stddev"`

	SizeBytes int `csv:"size_bytes"`
}
