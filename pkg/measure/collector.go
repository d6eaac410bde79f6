package measure

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Sample is the reduced view of one batch of repeated timings of the same
// operation. Min is the robust lower-bound estimator the detector consumes:
// scheduling noise and interrupts only ever add delay, so the minimum over
// enough repetitions converges on the undisturbed execution time. Max, Mean
// and StdDev are kept for the diagnostic trail only.
type Sample struct {
	Min time.Duration
	Max time.Duration

	// Mean and StdDev are in nanoseconds.
	Mean   float64
	StdDev float64
}

// Collect runs op loops times on the calling goroutine, timing each run with
// the monotonic clock, and reduces the raw durations to a Sample. loops must
// be large enough that at least one run is expected to be unperturbed
// (10-20 in practice); values below 1 are clamped to 1.
//
// op is expected to mutate its own buffers; Collect neither inspects nor
// resets any state between runs.
func Collect(op func(), loops int) Sample {
	if loops < 1 {
		loops = 1
	}

	durations := make([]float64, loops)
	min, max := time.Duration(math.MaxInt64), time.Duration(0)

	for i := 0; i < loops; i++ {
		start := time.Now()
		op()
		elapsed := time.Since(start)

		durations[i] = float64(elapsed)
		if elapsed < min {
			min = elapsed
		}
		if elapsed > max {
			max = elapsed
		}
	}

	mean, stddev := stat.MeanStdDev(durations, nil)
	if loops < 2 {
		// The sample standard deviation is undefined for one observation;
		// record 0 rather than letting NaN reach the diagnostic trail.
		stddev = 0
	}

	return Sample{
		Min:    min,
		Max:    max,
		Mean:   mean,
		StdDev: stddev,
	}
}
