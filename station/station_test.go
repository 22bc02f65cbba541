package station

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToUTMBoston(t *testing.T) {
	l := Location{Name: "rooftop", LatDeg: 42.662139, LonDeg: -71.365553}

	utm, err := l.ToUTM()

	require.NoError(t, err)
	assert.Equal(t, 19, utm.Zone)
	assert.Equal(t, 'N', utm.Hemisphere)
}

func TestStringFallsBackWhenConversionFails(t *testing.T) {
	l := Location{Name: "pole", LatDeg: 90, LonDeg: 0}

	s := l.String()

	assert.True(t, strings.HasPrefix(s, "pole ("))
}

func TestStringIncludesUTMWhenValid(t *testing.T) {
	l := Location{Name: "rooftop", LatDeg: 42.662139, LonDeg: -71.365553}

	assert.Contains(t, l.String(), "UTM 19N")
}
