package curve

// DetectionStyle selects which domain value FindStep reports once a step is
// found. The discrete second difference peaks one or two points before the
// transition has fully settled, so each style applies a different reporting
// offset relative to that peak.
type DetectionStyle int

const (
	// SoftEdge reports the point one past the second-difference peak. Suited
	// to gradual transitions, such as the line-size curve, where a monotonic
	// component shifts the observed local maximum ahead of the true edge.
	SoftEdge DetectionStyle = iota

	// StepLike reports the current scan point, two past the peak. Suited to
	// sharp transitions such as a working set overflowing a cache level.
	StepLike
)

// NotFound is returned when no qualifying step exists in the curve.
const NotFound = -1

// FindStep scans the curve in ascending order for the first discontinuity
// and returns the domain value at which it is declared, or NotFound.
//
// The scan keeps a sliding window of the three most recent curve values and,
// once the window is full, computes the discrete second difference centered
// on the middle value (domain spacing treated as a unit step). A step is
// declared at the first position where the previous second difference lies
// past start, exceeds threshold, and the current one has started declining,
// i.e. the previous position was a local maximum in curvature.
//
// Window occupancy is tracked explicitly per slot, so a legitimate zero
// curve value participates in detection like any other measurement. Curves
// with fewer than four points can never satisfy the gate and always yield
// NotFound. Only the first qualifying position is reported; the curve is
// assumed to hold a single dominant transition.
func FindStep(c Curve, start int, threshold float64, style DetectionStyle) int {
	var yBack, yCenter, yFront float64
	var haveBack, haveCenter, haveFront bool

	var d2Curr, d2Prev float64
	var haveD2Curr, haveD2Prev bool

	paramBack := 0

	for _, p := range c {
		// Slide the value window and the second-difference history.
		yBack, haveBack = yCenter, haveCenter
		yCenter, haveCenter = yFront, haveFront
		d2Prev, haveD2Prev = d2Curr, haveD2Curr

		yFront, haveFront = p.Time, true

		if haveBack {
			// (y[k+1] - 2*y[k] + y[k-1]) / h^2 with the domain step h
			// normalised to 1.
			d2Curr = yFront - 2*yCenter + yBack
			haveD2Curr = true
		}

		if paramBack > start && haveD2Prev && d2Prev > threshold &&
			haveD2Curr && d2Curr < d2Prev {
			if style == SoftEdge {
				return paramBack
			}
			return p.Param
		}

		paramBack = p.Param
	}

	return NotFound
}

// FindFirstStep is the two-argument convenience form of FindStep with the
// style defaulted to StepLike, which fits the cache-capacity stages.
func FindFirstStep(c Curve, start int, threshold float64) int {
	return FindStep(c, start, threshold, StepLike)
}
