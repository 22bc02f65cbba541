package correlate

import (
	"testing"

	"github.com/pavelyazev/PocketSDR/cpx"
	"github.com/stretchr/testify/assert"
)

func TestDotSelfCorrelation(t *testing.T) {
	// code == iq (up to CSCALE normalization): Dot returns
	// (mean(I^2), mean(Q^2)) / CSCALE — the §8 self-correlation sanity
	// check, specialized to a ternary {-1,+1} sequence of length 1023.
	const n = 1023
	iq := make([]cpx.Cpx16, n)
	code := make([]cpx.Cpx16, n)
	for i := range iq {
		sign := int16(1)
		if i%3 == 0 {
			sign = -1
		}
		iq[i] = cpx.Cpx16{I: sign * cpx.CSCALE, Q: 0}
		code[i] = cpx.Cpx16{I: sign, Q: 0}
	}

	got := Dot(iq, code, n, 1.0/n)

	assert.InDelta(t, 1.0, got.Re, 1e-3)
	assert.InDelta(t, 0.0, got.Im, 1e-3)
}

func TestDotZeroCodeIsZero(t *testing.T) {
	iq := []cpx.Cpx16{{I: 5, Q: 5}, {I: -3, Q: 2}}
	code := []cpx.Cpx16{{I: 0, Q: 0}, {I: 0, Q: 0}}

	got := Dot(iq, code, 2, 1.0)

	assert.Equal(t, float32(0), got.Re)
	assert.Equal(t, float32(0), got.Im)
}
