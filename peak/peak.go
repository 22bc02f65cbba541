// Package peak implements acquisition peak detection over a Power Grid
// and the quadratic-interpolation refinement of the Doppler estimate.
package peak

import "math"

// Max scans p over Doppler indices [0, m) and code offsets [0, nmax),
// returning the coarse carrier-to-noise-density estimate in dB-Hz
// together with the (doppler, code) index of the peak. Ties are
// broken by first occurrence in row-major order. T is the code cycle
// period in seconds.
func Max(p [][]float32, nmax, m int, t float64) (snrDB float32, ixDoppler, ixCode int) {
	var pMax, pAve float32
	var n int

	for i := 0; i < m; i++ {
		row := p[i]
		for j := 0; j < nmax; j++ {
			n++
			pAve += (row[j] - pAve) / float32(n)
			if row[j] <= pMax {
				continue
			}
			pMax = row[j]
			ixDoppler, ixCode = i, j
		}
	}

	if pAve > 0 {
		snrDB = float32(10 * math.Log10(float64((pMax-pAve)/pAve)/t))
	}
	return snrDB, ixDoppler, ixCode
}
