package correlate

import (
	"github.com/pavelyazev/PocketSDR/buff"
	"github.com/pavelyazev/PocketSDR/cpx"
	"github.com/pavelyazev/PocketSDR/mixer"
)

// Std evaluates Dot at each of the given code-offset taps against a
// length-n mixed-sample window iq and a length-n code replica:
//
//	pos > 0: correlate iq[pos:n]   against code[0:n-pos],   scale 1/(n-pos)
//	pos < 0: correlate iq[0:n+pos] against code[-pos:n],    scale 1/(n+pos)
//	pos = 0: correlate the full length,                      scale 1/n
//
// len(out) must be >= len(pos); callers are contract-bound per spec.md
// §7 (the core performs no bounds validation of its own).
func Std(iq, code []cpx.Cpx16, n int, pos []int, out []cpx.Cpx) {
	for i, p := range pos {
		switch {
		case p > 0:
			m := n - p
			out[i] = Dot(iq[p:], code, m, 1.0/float32(m))
		case p < 0:
			m := n + p
			out[i] = Dot(iq, code[-p:], m, 1.0/float32(m))
		default:
			out[i] = Dot(iq, code, n, 1.0/float32(n))
		}
	}
}

// SDRStd composes the Carrier Mixer and Std on a window of n samples
// from buffer b starting at ix: the mixed-sample scratch is allocated
// here and its lifetime is bounded by this call.
func SDRStd(l *mixer.LUT, b *buff.Buff, ix, n int, fs, fc, phi float64, code []cpx.Cpx16, pos []int, out []cpx.Cpx) {
	iq := make([]cpx.Cpx16, n)
	mixer.Mix(l, b, ix, n, fs, fc, phi, iq)
	Std(iq, code, n, pos, out)
}
