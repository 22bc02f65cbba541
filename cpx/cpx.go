// Package cpx defines the complex sample representations shared by the
// GNSS SDR correlation core: single-precision float samples, packed
// 4-bit-nibble IF samples, and 16-bit mixed-carrier samples.
package cpx

// Cpx is a complex sample as a pair of single-precision reals, used for
// FFT-domain data and final correlator outputs.
type Cpx struct {
	Re float32
	Im float32
}

// Add returns c + o.
func (c Cpx) Add(o Cpx) Cpx {
	return Cpx{c.Re + o.Re, c.Im + o.Im}
}

// Mul returns c * o, the ordinary complex product.
func (c Cpx) Mul(o Cpx) Cpx {
	return Cpx{
		Re: c.Re*o.Re - c.Im*o.Im,
		Im: c.Re*o.Im + c.Im*o.Re,
	}
}

// Scale returns c * s for a real scale factor s.
func (c Cpx) Scale(s float32) Cpx {
	return Cpx{c.Re * s, c.Im * s}
}

// AbsSq returns |c|^2, the quantity accumulated into the power grid.
func (c Cpx) AbsSq() float32 {
	return c.Re*c.Re + c.Im*c.Im
}

// Cpx8 packs two signed 4-bit fields into one byte: I in the low
// nibble, Q in the high nibble, each in [-8, +7]. For I-only sampling Q
// is zero. This is the on-the-wire representation of raw IF bytes.
type Cpx8 byte

// NewCpx8 packs the given I/Q nibble values into a Cpx8, keeping only
// the low 4 bits of each: values outside [-8, +7] wrap rather than
// clamp, so the caller is responsible for supplying values in range.
func NewCpx8(i, q int8) Cpx8 {
	return Cpx8((byte(q) << 4 & 0xf0) | (byte(i) & 0x0f))
}

// I returns the signed 4-bit in-phase field.
func (b Cpx8) I() int8 {
	return signExtend4(byte(b) & 0x0f)
}

// Q returns the signed 4-bit quadrature field.
func (b Cpx8) Q() int8 {
	return signExtend4(byte(b) >> 4 & 0x0f)
}

func signExtend4(nibble byte) int8 {
	if nibble&0x8 != 0 {
		return int8(nibble) - 16
	}
	return int8(nibble)
}

// Cpx16 is the 16-bit complex mixed-carrier sample: a pair of signed
// 16-bit integers, scaled so that max(|I|,|Q|)*sqrt(2)*CSCALE < 127,
// leaving headroom for the subsequent signed 8-bit ternary code
// multiply in the dot-product kernel.
type Cpx16 struct {
	I int16
	Q int16
}

// CSCALE is the carrier lookup-table scale factor (see mixer.LUT).
const CSCALE = 10.0
