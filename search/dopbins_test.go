package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestDopplerBinsScenario(t *testing.T) {
	// T=1e-3 s, dop=0, max_dop=5000 Hz: step = 500 Hz, K = 21,
	// bins = {-5000, -4500, ..., 4500, 5000}.
	bins := DopplerBins(1e-3, 0, 5000)

	assert.Len(t, bins, 21)
	assert.InDelta(t, -5000, bins[0], 1e-3)
	assert.InDelta(t, 5000, bins[20], 1e-3)
	assert.InDelta(t, -4500, bins[1], 1e-3)
}

func TestDopplerBinsStrictlyIncreasing(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		period := rapid.Float64Range(1e-4, 1e-2).Draw(t, "T")
		dop := rapid.Float32Range(-1000, 1000).Draw(t, "dop")
		maxDop := rapid.Float32Range(100, 10000).Draw(t, "maxDop")

		bins := DopplerBins(period, dop, maxDop)

		step := float32(DopStep / period)
		wantLen := int(2*maxDop/step) + 1
		assert.Len(t, bins, wantLen)

		for i := 1; i < len(bins); i++ {
			assert.Greater(t, bins[i], bins[i-1])
		}
	})
}
