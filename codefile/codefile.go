// Package codefile loads a precomputed ternary code replica from disk.
// Generating the PRN codes themselves (GPS C/A, GLONASS, etc.) is
// navigation-message territory, outside the correlation core; this
// only reads the {-1, 0, +1} sequence a generator already produced.
package codefile

import (
	"fmt"
	"os"

	"github.com/pavelyazev/PocketSDR/cpx"
)

// Load reads n ternary code chips from path, one signed byte per chip
// (-1, 0, or +1).
func Load(path string, n int) ([]int8, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("codefile: read %s: %w", path, err)
	}
	if len(raw) < n {
		return nil, fmt.Errorf("codefile: %s has %d chips, need %d", path, len(raw), n)
	}

	code := make([]int8, n)
	for i := 0; i < n; i++ {
		v := int8(raw[i])
		if v < -1 || v > 1 {
			return nil, fmt.Errorf("codefile: %s: chip %d out of range [-1,1]: %d", path, i, v)
		}
		code[i] = v
	}
	return code, nil
}

// ToCpx16 scales ternary chips by cpx.CSCALE into the I field of a
// cpx.Cpx16, with Q zero: the form the carrier mixer gives the same
// chips at zero carrier phase, usable as the iq argument of the
// time-domain correlators (correlate.Dot, correlate.Std). The result
// is not in the {-1, 0, +1} domain those correlators take for code.
func ToCpx16(chips []int8) []cpx.Cpx16 {
	out := make([]cpx.Cpx16, len(chips))
	for i, v := range chips {
		out[i] = cpx.Cpx16{I: int16(v) * int16(cpx.CSCALE), Q: 0}
	}
	return out
}
