package mixer

import (
	"math"

	"github.com/pavelyazev/PocketSDR/buff"
	"github.com/pavelyazev/PocketSDR/cpx"
)

// phaseBits is the number of fractional bits in the fixed-point phase
// accumulator; the top 8 bits of the 32-bit accumulator select the LUT
// phase index.
const phaseBits = 24

// Mix fills out[0:n] with the carrier-mixed samples of buff starting at
// sample index ix, for n samples, sampling frequency fs, carrier
// frequency fc, and initial phase phi (cycles). When ix+n exceeds the
// buffer's capacity the window wraps: the mixer is the only component
// aware of this wrap, and it splits into two mixing passes that advance
// the phase accumulator continuously across the join so that the
// output is bit-identical to a hypothetical contiguous window carrying
// the same samples and the same phase progression.
func Mix(l *LUT, b *buff.Buff, ix, n int, fs, fc, phi float64, out []cpx.Cpx16) {
	step := fc / fs * NTBL
	p0 := math.Mod(phi, 1.0) * NTBL

	w := buff.Split(ix, n, b.Len())
	mixContiguous(l, b, w.Start1, w.Len1, p0, step, out[:w.Len1])
	if w.Len2 > 0 {
		const scale = 1 << phaseBits
		acc := uint32(int64(p0*scale)) + uint32(w.Len1)*uint32(int64(step*scale))
		p1 := float64(acc) / scale
		mixContiguous(l, b, w.Start2, w.Len2, p1, step, out[w.Len1:w.Len1+w.Len2])
	}
}

// mixContiguous mixes a span that does not itself wrap the buffer. p0
// and step are in LUT-phase units (cycles scaled by NTBL).
func mixContiguous(l *LUT, b *buff.Buff, ix, n int, p0, step float64, out []cpx.Cpx16) {
	const scale = 1 << phaseBits

	p := uint32(int64(p0 * scale))
	s := uint32(int64(step * scale))

	for i := 0; i < n; i++ {
		raw := byte(b.At(ix + i))
		idx := p >> phaseBits
		out[i] = l.At(raw, int(idx))
		p += s
	}
}
