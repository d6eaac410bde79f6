package curve

import (
	"github.com/hwprobe/cacheprobe/pkg/measure"

	log "github.com/sirupsen/logrus"
)

// Point maps one swept domain value (a stride or a working-set size,
// conventionally a power of two) to its normalized time: the minimum observed
// run duration divided by the number of accesses in a run.
type Point struct {
	Param int
	Time  float64
}

// Curve is a timing curve ordered by strictly ascending Param. It is built
// once by Build and read-only afterwards; the detector relies on the
// ascending order as a precondition and does not re-check it.
type Curve []Point

// Build sweeps the domain in order, collecting one Sample per domain value
// with the given repetition count and recording min/iterations as the curve
// value. It always produces exactly one point per domain value, plus the raw
// Samples for the diagnostic trail.
func Build(domain []int, loops int, iterations int, run func(param int)) (Curve, []measure.Sample) {
	c := make(Curve, 0, len(domain))
	samples := make([]measure.Sample, 0, len(domain))

	for _, param := range domain {
		p := param
		s := measure.Collect(func() { run(p) }, loops)

		c = append(c, Point{
			Param: param,
			Time:  float64(s.Min) / float64(iterations),
		})
		samples = append(samples, s)

		log.Tracef("swept param %d: min %v max %v", param, s.Min, s.Max)
	}

	return c, samples
}

// PowersOfTwo returns the ascending domain [2^minShift, 2^maxShift],
// inclusive at both ends.
func PowersOfTwo(minShift, maxShift int) []int {
	domain := make([]int, 0, maxShift-minShift+1)
	for shift := minShift; shift <= maxShift; shift++ {
		domain = append(domain, 1<<shift)
	}
	return domain
}
