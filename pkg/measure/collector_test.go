package measure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func spin() {
	sink := 0
	for i := 0; i < 10000; i++ {
		sink += i
	}
	if sink < 0 {
		panic("unreachable")
	}
}

func TestCollectReduction(t *testing.T) {
	s := Collect(spin, 10)

	assert.True(t, s.Min > 0, "a non-empty operation must take measurable time")
	assert.True(t, s.Min <= s.Max)
	assert.True(t, s.Mean >= float64(s.Min))
	assert.True(t, s.Mean <= float64(s.Max))
	assert.True(t, s.StdDev >= 0)
}

func TestCollectClampsLoops(t *testing.T) {
	runs := 0
	s := Collect(func() {
		runs++
		time.Sleep(time.Millisecond)
	}, 0)

	assert.Equal(t, 1, runs)
	assert.Equal(t, s.Min, s.Max)
}

func TestCollectSingleLoopStdDev(t *testing.T) {
	s := Collect(spin, 1)

	assert.Equal(t, 0.0, s.StdDev)
	assert.Equal(t, float64(s.Min), s.Mean)
}

func TestCollectRunsExactly(t *testing.T) {
	runs := 0
	Collect(func() { runs++ }, 15)
	assert.Equal(t, 15, runs)
}
