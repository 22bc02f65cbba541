// Package glonass holds the GLONASS FDMA channel-frequency offset
// table: a trivial data lookup, not a signal-processing component.
package glonass

// Per-channel frequency spacing for GLONASS FDMA signals, in Hz.
const (
	g1caSpacing = 0.5625e6
	g2caSpacing = 0.4375e6
)

// ShiftFreq returns the IF frequency fi adjusted for GLONASS FDMA
// channel number fcn on the given signal. Signals other than G1CA and
// G2CA (including all CDMA signals) are returned unchanged.
func ShiftFreq(sig string, fcn int, fi float64) float64 {
	switch sig {
	case "G1CA":
		return fi + g1caSpacing*float64(fcn)
	case "G2CA":
		return fi + g2caSpacing*float64(fcn)
	default:
		return fi
	}
}
