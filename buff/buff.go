// Package buff implements the IF sample buffer: a fixed-capacity,
// circular container of packed 8-bit complex samples produced by an
// upstream front-end and consumed by the carrier mixer.
package buff

import (
	"github.com/pavelyazev/PocketSDR/cpx"
)

// IQ mode of a Buff.
const (
	ModeI  = 1 // I-only (real) sampling
	ModeIQ = 2 // interleaved I/Q sampling
)

// Buff is a fixed-capacity circular buffer of Cpx8 samples. Content is
// undefined until written. Indexing wraps modulo N so that windows may
// span the end of the backing array; callers treat it as a circular
// feed fed by the front-end's producer.
type Buff struct {
	data []cpx.Cpx8
	iq   int
}

// New allocates a Buff with room for N samples in the given IQ mode
// (ModeI or ModeIQ). Content is undefined until written.
func New(n int, iq int) *Buff {
	return &Buff{
		data: make([]cpx.Cpx8, n),
		iq:   iq,
	}
}

// Len returns N, the buffer's fixed capacity.
func (b *Buff) Len() int {
	return len(b.data)
}

// Mode returns the IQ mode (ModeI or ModeIQ).
func (b *Buff) Mode() int {
	return b.iq
}

// At returns the sample at index ix, taken modulo the buffer length.
func (b *Buff) At(ix int) cpx.Cpx8 {
	return b.data[b.wrap(ix)]
}

// Set stores v at index ix, taken modulo the buffer length.
func (b *Buff) Set(ix int, v cpx.Cpx8) {
	b.data[b.wrap(ix)] = v
}

// Push appends one sample to the buffer as a fixed-length circular
// push: the oldest sample is dropped and every other sample shifts
// down by one, with the new sample landing at the highest index. This
// is the Go equivalent of the C original's sdr_add_buff, which used
// void* pointer arithmetic to implement the same fixed-length shift
// register (spec.md's "Open questions").
func (b *Buff) Push(v cpx.Cpx8) {
	copy(b.data, b.data[1:])
	b.data[len(b.data)-1] = v
}

// wrap reduces ix into [0, N) honoring negative offsets.
func (b *Buff) wrap(ix int) int {
	n := len(b.data)
	ix %= n
	if ix < 0 {
		ix += n
	}
	return ix
}

// Window describes a possibly-wrapped view of M samples starting at
// index ix into a buffer of capacity N. If ix+M <= N the window is one
// contiguous span [ix, ix+M); otherwise it splits into two contiguous
// spans: [ix, N) followed by [0, ix+M-N).
type Window struct {
	Start1, Len1 int
	Start2, Len2 int
}

// Split computes the Window for a request of M samples starting at ix
// into a buffer of capacity n. The Carrier Mixer is the only component
// that itself performs this split; all other components see a single
// linear window produced by the mixer.
func Split(ix, m, n int) Window {
	ix = ((ix % n) + n) % n
	if ix+m <= n {
		return Window{Start1: ix, Len1: m}
	}
	first := n - ix
	return Window{Start1: ix, Len1: first, Start2: 0, Len2: m - first}
}
