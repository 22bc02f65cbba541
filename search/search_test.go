package search

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pavelyazev/PocketSDR/buff"
	"github.com/pavelyazev/PocketSDR/cpx"
	"github.com/pavelyazev/PocketSDR/fftcorr"
	"github.com/pavelyazev/PocketSDR/mixer"
	"github.com/stretchr/testify/assert"
)

func naiveDFT(x []cpx.Cpx) []cpx.Cpx {
	n := len(x)
	out := make([]cpx.Cpx, n)
	for k := 0; k < n; k++ {
		var re, im float64
		for t := 0; t < n; t++ {
			angle := -2 * math.Pi * float64(k) * float64(t) / float64(n)
			c, s := math.Cos(angle), math.Sin(angle)
			re += float64(x[t].Re)*c - float64(x[t].Im)*s
			im += float64(x[t].Re)*s + float64(x[t].Im)*c
		}
		out[k] = cpx.Cpx{Re: float32(re), Im: float32(im)}
	}
	return out
}

func testCodeFFT(n int) []cpx.Cpx {
	rng := rand.New(rand.NewSource(9))
	code := make([]cpx.Cpx, n)
	for i := range code {
		sign := float32(1)
		if rng.Intn(2) == 0 {
			sign = -1
		}
		code[i] = cpx.Cpx{Re: sign, Im: 0}
	}
	return naiveDFT(code)
}

func randomBuffer(n int) *buff.Buff {
	b := buff.New(n, buff.ModeIQ)
	x := 42
	for i := 0; i < n; i++ {
		x = (1103515245*x + 12345) & 0x7fffffff
		b.Set(i, cpx.NewCpx8(int8(x%9-4), int8((x/7)%9-4)))
	}
	return b
}

func TestCodeGridIsNonNegative(t *testing.T) {
	const n = 32
	b := randomBuffer(n)
	codeFFT := testCodeFFT(n)
	fds := DopplerBins(1e-3, 0, 1000)

	cache := fftcorr.NewPlanCache()
	l := mixer.New()
	p := NewPowerGrid(len(fds), n)

	Code(cache, l, codeFFT, b, 0, n, 4e6, 1.023e6, fds, p)

	for _, row := range p {
		for _, v := range row {
			assert.GreaterOrEqual(t, v, float32(0))
		}
	}
}

func TestCodeAccumulatesMonotonically(t *testing.T) {
	const n = 32
	b := randomBuffer(n)
	codeFFT := testCodeFFT(n)
	fds := DopplerBins(1e-3, 0, 1000)

	cache := fftcorr.NewPlanCache()
	l := mixer.New()

	pOnce := NewPowerGrid(len(fds), n)
	Code(cache, l, codeFFT, b, 0, n, 4e6, 1.023e6, fds, pOnce)

	pTwice := NewPowerGrid(len(fds), n)
	Code(cache, l, codeFFT, b, 0, n, 4e6, 1.023e6, fds, pTwice)
	Code(cache, l, codeFFT, b, 0, n, 4e6, 1.023e6, fds, pTwice)

	for i := range pOnce {
		for j := range pOnce[i] {
			assert.InDelta(t, 2*pOnce[i][j], pTwice[i][j], 1e-3)
		}
	}
}
