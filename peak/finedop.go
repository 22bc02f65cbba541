package peak

import (
	"gonum.org/v1/gonum/mat"

	"github.com/pavelyazev/PocketSDR/sdrlog"
)

// FineDoppler refines the Doppler estimate at ixDoppler by fitting a
// quadratic y = p0 + p1*x + p2*x^2 through the three grid points
// {(fds[ixDoppler+k], p[ixDoppler+k][ixCode]) : k in {-1,0,1}} and
// returning the vertex -p1/(2*p2). If ixDoppler sits at either
// endpoint of fds, or the fit is degenerate, it returns fds[ixDoppler]
// unchanged (spec.md §7's NumericDegeneracy fallback).
func FineDoppler(p [][]float32, fds []float32, ixDoppler, ixCode int) float64 {
	last := len(fds) - 1
	if ixDoppler == 0 || ixDoppler == last {
		return float64(fds[ixDoppler])
	}

	vander := mat.NewDense(3, 3, nil)
	y := mat.NewDense(3, 1, nil)
	for row, k := range []int{-1, 0, 1} {
		x := float64(fds[ixDoppler+k])
		vander.Set(row, 0, 1)
		vander.Set(row, 1, x)
		vander.Set(row, 2, x*x)
		y.Set(row, 0, float64(p[ixDoppler+k][ixCode]))
	}

	var coeffs mat.Dense
	if err := coeffs.Solve(vander, y); err != nil {
		sdrlog.Warn("fine doppler fit degenerate, falling back to bin value", "ix_doppler", ixDoppler, "err", err)
		return float64(fds[ixDoppler])
	}

	p1, p2 := coeffs.At(1, 0), coeffs.At(2, 0)
	if p2 == 0 {
		sdrlog.Warn("fine doppler fit degenerate (zero curvature), falling back to bin value", "ix_doppler", ixDoppler)
		return float64(fds[ixDoppler])
	}
	return -p1 / (2 * p2)
}
