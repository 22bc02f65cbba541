package fftcorr

import (
	"github.com/pavelyazev/PocketSDR/buff"
	"github.com/pavelyazev/PocketSDR/cpx"
	"github.com/pavelyazev/PocketSDR/mixer"
	"github.com/pavelyazev/PocketSDR/sdrlog"
)

// Correlate transforms a window of N mixed samples iq, multiplies by
// the caller-supplied code spectrum codeFFT, and inverse-transforms,
// writing the result to out (also length N):
//
//  1. x[i] = (iq[i].I / CSCALE, iq[i].Q / CSCALE)
//  2. X = DFT(x)
//  3. Y[k] = X[k] * conj(codeFFT[k]) * (1 / N^2)
//  4. out = IDFT(Y)
//
// gonum's CmplxFFT.Coefficients/Sequence pair is documented as
// unnormalized in both directions, i.e. Sequence(Coefficients(x)) scales
// x by N rather than returning it unchanged (the FFTW convention the C
// original assumes). Two unnormalized transforms in sequence — one
// forward on iq, one inverse on the product — therefore contribute a
// combined factor of N, not N^2; the explicit 1/N^2 in step 3 cancels
// that and the single surviving 1/N, leaving the same per-sample
// average correlation magnitude as correlate.Dot. codeFFT is the plain
// DFT of the code (as ForwardCode returns it); conjugating it in step 3
// makes the result a circular cross-correlation, peaking at the lag by
// which iq is delayed relative to the code.
// TestCorrelateSelfPeakAtZeroOffset runs both gonum transforms and
// checks out[0] against 1.0 for a +/-1 code correlated with itself, so
// a transform pair with a different scaling convention fails it.
//
// If the plan cache is full and holds no plan for N, Correlate is a
// no-op: out is left unmodified and the condition is logged once per
// offending length.
func Correlate(cache *PlanCache, iq []cpx.Cpx16, codeFFT []cpx.Cpx, n int, out []cpx.Cpx) {
	plan, ok := cache.Get(n)
	if !ok {
		warnPlanExhausted(n)
		return
	}

	x := make([]complex128, n)
	for i, s := range iq {
		x[i] = complex(float64(s.I)/cpx.CSCALE, float64(s.Q)/cpx.CSCALE)
	}

	big := plan.Coefficients(nil, x)

	scale := 1.0 / (float64(n) * float64(n))
	y := make([]complex128, n)
	for k := range y {
		cf := complex(float64(codeFFT[k].Re), -float64(codeFFT[k].Im))
		y[k] = big[k] * cf * complex(scale, 0)
	}

	result := plan.Sequence(nil, y)
	for i := 0; i < n; i++ {
		out[i] = cpx.Cpx{Re: float32(real(result[i])), Im: float32(imag(result[i]))}
	}
}

// ForwardCode transforms a real-valued code replica (typically the
// {-1, 0, +1} chip sequence produced by an external code generator
// and read by package codefile) into the spectrum Correlate expects
// as codeFFT, using the same cached plan Correlate will reuse.
func ForwardCode(cache *PlanCache, chips []int8, n int) ([]cpx.Cpx, bool) {
	plan, ok := cache.Get(n)
	if !ok {
		return nil, false
	}

	x := make([]complex128, n)
	for i := 0; i < n; i++ {
		x[i] = complex(float64(chips[i]), 0)
	}

	big := plan.Coefficients(nil, x)
	out := make([]cpx.Cpx, n)
	for i := 0; i < n; i++ {
		out[i] = cpx.Cpx{Re: float32(real(big[i])), Im: float32(imag(big[i]))}
	}
	return out, true
}

// SDRCorrelate composes the Carrier Mixer and Correlate on a window of
// n samples from buffer b starting at ix.
func SDRCorrelate(cache *PlanCache, l *mixer.LUT, b *buff.Buff, ix, n int, fs, fc, phi float64, codeFFT []cpx.Cpx, out []cpx.Cpx) {
	iq := make([]cpx.Cpx16, n)
	mixer.Mix(l, b, ix, n, fs, fc, phi, iq)
	Correlate(cache, iq, codeFFT, n, out)
}

var warnedLengths = newLengthSet()

func warnPlanExhausted(n int) {
	if warnedLengths.addIfAbsent(n) {
		sdrlog.Warn("fft plan cache full, skipping correlation", "length", n)
	}
}
