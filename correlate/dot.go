// Package correlate implements the time-domain correlation primitives:
// the dot-product kernel over a ternary code replica, and the standard
// multi-tap correlator built on top of it.
package correlate

import (
	"github.com/pavelyazev/PocketSDR/cpx"
)

// Dot computes the complex inner product of a mixed-sample window iq
// against a ternary code replica code (both length n), scaled by s/CSCALE:
//
//	cr = (sum iq[i].I * code[i].I) * s / CSCALE
//	ci = (sum iq[i].Q * code[i].Q) * s / CSCALE
//
// Real and imaginary channels are accumulated independently: this is a
// cross-channel-free correlator, valid because the code is real-valued
// and the cross terms are zero. code.I and code.Q are assumed to be in
// {-1, 0, +1}; out-of-range values silently compute garbage per
// spec.md §7's InvalidArgument policy (callers are contract-bound).
func Dot(iq, code []cpx.Cpx16, n int, s float32) cpx.Cpx {
	var sumI, sumQ int64
	for i := 0; i < n; i++ {
		sumI += int64(iq[i].I) * int64(code[i].I)
		sumQ += int64(iq[i].Q) * int64(code[i].Q)
	}
	scale := s / cpx.CSCALE
	return cpx.Cpx{
		Re: float32(sumI) * scale,
		Im: float32(sumQ) * scale,
	}
}
