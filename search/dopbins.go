// Package search implements the two-dimensional acquisition sweep: the
// Doppler bin grid and the parallel code search that accumulates
// correlation power over it.
package search

// DopStep is the Doppler frequency search step, in units of 1/T where
// T is the code cycle period.
const DopStep = 0.5

// DopplerBins builds the Doppler grid centered on dop (Hz) spanning
// +/-maxDop, with step = DopStep/T. The grid has length
// floor(2*maxDop/step)+1 and is strictly increasing.
func DopplerBins(t float64, dop, maxDop float32) []float32 {
	step := float32(DopStep / t)
	k := int(2*maxDop/step) + 1
	fds := make([]float32, k)
	for i := range fds {
		fds[i] = dop - maxDop + float32(i)*step
	}
	return fds
}
