package cpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestCpx8RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		i := int8(rapid.IntRange(-8, 7).Draw(t, "i"))
		q := int8(rapid.IntRange(-8, 7).Draw(t, "q"))

		b := NewCpx8(i, q)

		assert.Equal(t, i, b.I())
		assert.Equal(t, q, b.Q())
	})
}

func TestCpx8IOnly(t *testing.T) {
	b := NewCpx8(5, 0)
	assert.Equal(t, int8(5), b.I())
	assert.Equal(t, int8(0), b.Q())
}

func TestCpxMul(t *testing.T) {
	a := Cpx{Re: 2, Im: 3}
	b := Cpx{Re: 4, Im: -1}

	got := a.Mul(b)

	assert.InDelta(t, 11.0, got.Re, 1e-6) // 2*4 - 3*-1
	assert.InDelta(t, 10.0, got.Im, 1e-6) // 2*-1 + 3*4
}

func TestCpxAbsSq(t *testing.T) {
	c := Cpx{Re: 3, Im: 4}
	assert.InDelta(t, 25.0, c.AbsSq(), 1e-6)
}
