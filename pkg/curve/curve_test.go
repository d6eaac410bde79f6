package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildProducesOnePointPerDomainValue(t *testing.T) {
	domain := PowersOfTwo(2, 6)

	var swept []int
	c, samples := Build(domain, 3, 1000, func(param int) {
		swept = append(swept, param)
		sink := 0
		for i := 0; i < param*100; i++ {
			sink += i
		}
		_ = sink
	})

	require.Len(t, c, len(domain))
	require.Len(t, samples, len(domain))

	// Each domain value is swept loops times, in ascending order.
	assert.Len(t, swept, 3*len(domain))
	for i, p := range c {
		assert.Equal(t, domain[i], p.Param)
		assert.True(t, p.Time >= 0)
		assert.Equal(t, float64(samples[i].Min)/1000, p.Time)
	}
}
