package search

import (
	"time"

	"github.com/pavelyazev/PocketSDR/buff"
	"github.com/pavelyazev/PocketSDR/cpx"
	"github.com/pavelyazev/PocketSDR/fftcorr"
	"github.com/pavelyazev/PocketSDR/mixer"
)

// yieldEvery is how often (in Doppler bins) Code sleeps briefly to
// avoid monopolizing the CPU when many searches run concurrently on
// shared hardware. This is a quality-of-service concession, not a
// correctness requirement.
const yieldEvery = 22

// Code sweeps the Doppler bin grid fds, invoking the FFT Correlator
// against the buffer window [ix, ix+n) at IF frequency fi+fds[i] for
// each bin, and accumulates |C[j]|^2 into p[i][j]. p must already have
// len(fds) rows of length n; callers that want fresh accumulation
// should pre-zero it. Calling Code repeatedly with successive windows
// from the same buffer integrates power over multiple code periods: p
// grows monotonically.
func Code(cache *fftcorr.PlanCache, l *mixer.LUT, codeFFT []cpx.Cpx, b *buff.Buff, ix, n int, fs, fi float64, fds []float32, p [][]float32) {
	c := make([]cpx.Cpx, n)

	for i, fd := range fds {
		fftcorr.SDRCorrelate(cache, l, b, ix, n, fs, fi+float64(fd), 0.0, codeFFT, c)

		row := p[i]
		for j, v := range c {
			row[j] += v.AbsSq()
		}

		if i%yieldEvery == yieldEvery-1 {
			time.Sleep(time.Millisecond)
		}
	}
}

// NewPowerGrid allocates a zeroed Power Grid of shape (k x n).
func NewPowerGrid(k, n int) [][]float32 {
	p := make([][]float32, k)
	backing := make([]float32, k*n)
	for i := range p {
		p[i] = backing[i*n : (i+1)*n]
	}
	return p
}
