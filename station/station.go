// Package station attaches receiver-location metadata to acquisition
// reports: the antenna's geodetic position converted to UTM, for
// logging alongside a C/N0 search result. Grounded on the teacher's
// cmd/samoyed-ll2utm, which performs the same golang/geo -> coordconv
// conversion for its own lat/lon arguments.
package station

import (
	"fmt"
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/tzneal/coordconv"
)

// Location is a receiving antenna's geodetic position.
type Location struct {
	Name    string
	LatDeg  float64
	LonDeg  float64
	HeightM float64
}

// UTM is the location expressed in the Universal Transverse Mercator
// projection.
type UTM struct {
	Zone       int
	Hemisphere rune
	Easting    float64
	Northing   float64
}

func d2r(deg float64) float64 {
	return deg * math.Pi / 180
}

// hemisphereToRune mirrors the teacher's HemisphereToRune helper in
// src/coordconv.go.
func hemisphereToRune(h coordconv.Hemisphere) rune {
	switch h {
	case coordconv.HemisphereNorth:
		return 'N'
	case coordconv.HemisphereSouth:
		return 'S'
	case coordconv.HemisphereInvalid:
		return '!'
	default:
		return '?'
	}
}

// ToUTM converts l's geodetic position to UTM.
func (l Location) ToUTM() (UTM, error) {
	latlng := s2.LatLng{
		Lat: s1.Angle(d2r(l.LatDeg)),
		Lng: s1.Angle(d2r(l.LonDeg)),
	}
	coord, err := coordconv.DefaultUTMConverter.ConvertFromGeodetic(latlng, 0)
	if err != nil {
		return UTM{}, fmt.Errorf("station: convert %q to UTM: %w", l.Name, err)
	}
	return UTM{
		Zone:       coord.Zone,
		Hemisphere: hemisphereToRune(coord.Hemisphere),
		Easting:    coord.Easting,
		Northing:   coord.Northing,
	}, nil
}

// String renders a report line identifying the station by name and
// UTM coordinates, falling back to raw lat/lon if the UTM conversion
// is not defined at this location (e.g. near the poles).
func (l Location) String() string {
	utm, err := l.ToUTM()
	if err != nil {
		return fmt.Sprintf("%s (%.6f, %.6f)", l.Name, l.LatDeg, l.LonDeg)
	}
	return fmt.Sprintf("%s (UTM %d%c %.0fE %.0fN)", l.Name, utm.Zone, utm.Hemisphere, utm.Easting, utm.Northing)
}
