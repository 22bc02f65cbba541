// Package mixer implements the carrier down-mixing stage: a 256x256
// lookup table of precomputed complex products, and a fixed-point
// phase accumulator that indexes it to produce a window of 16-bit
// mixed-carrier samples from raw IF bytes.
package mixer

import (
	"math"
	"sync"

	"github.com/pavelyazev/PocketSDR/cpx"
)

// NTBL is the number of carrier phase steps in one LUT cycle.
const NTBL = 256

// LUT is the 65,536-entry carrier-mixed-data table: LUT[(b<<8)|p] holds
// sample byte b mixed against carrier phase index p. It is built once
// and is safe for unlimited concurrent reads thereafter.
type LUT struct {
	table [256 * NTBL]cpx.Cpx16
}

var (
	global     *LUT
	globalOnce sync.Once
)

// Global returns the process-wide Mixer LUT, building it on first use.
// Building is idempotent: repeated calls never mutate an
// already-initialized table.
func Global() *LUT {
	globalOnce.Do(func() {
		global = New()
	})
	return global
}

// New builds a fresh Mixer LUT. Most callers should use Global instead;
// New exists so tests can verify idempotence and so multiple
// independent tables can be compared.
func New() *LUT {
	l := &LUT{}
	l.init()
	return l
}

func (l *LUT) init() {
	var carrI, carrQ [NTBL]int8
	for p := 0; p < NTBL; p++ {
		angle := -2.0 * math.Pi * float64(p) / NTBL
		carrI[p] = int8(roundHalfAwayFromZero(math.Cos(angle) * cpx.CSCALE))
		carrQ[p] = int8(roundHalfAwayFromZero(math.Sin(angle) * cpx.CSCALE))
	}

	for b := 0; b < 256; b++ {
		sample := cpx.Cpx8(byte(b))
		sI, sQ := int16(sample.I()), int16(sample.Q())
		for p := 0; p < NTBL; p++ {
			cI, cQ := int16(carrI[p]), int16(carrQ[p])
			l.table[(b<<8)|p] = cpx.Cpx16{
				I: sI*cI - sQ*cQ,
				Q: sI*cQ + sQ*cI,
			}
		}
	}
}

// At returns the mixed sample for raw byte b at carrier phase index p
// (p must be in [0, NTBL)).
func (l *LUT) At(b byte, p int) cpx.Cpx16 {
	return l.table[(int(b)<<8)|p]
}

func roundHalfAwayFromZero(x float64) float64 {
	if x >= 0 {
		return math.Floor(x + 0.5)
	}
	return math.Ceil(x - 0.5)
}
