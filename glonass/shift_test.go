package glonass

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShiftFreqG1CA(t *testing.T) {
	got := ShiftFreq("G1CA", 3, 1.602e9)
	assert.InDelta(t, 1.6036875e9, got, 1.0)
}

func TestShiftFreqUnknownSignalUnchanged(t *testing.T) {
	assert.Equal(t, 1.57542e9, ShiftFreq("E1", 3, 1.57542e9))
}

func TestShiftFreqG2CA(t *testing.T) {
	got := ShiftFreq("G2CA", -2, 1.246e9)
	assert.InDelta(t, 1.246e9-2*0.4375e6, got, 1.0)
}
