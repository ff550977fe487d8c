package solar

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Zenith angles, in degrees from the vertical, of the named solar events.
const (
	GeometricZenith    = 90.0
	CivilZenith        = 96.0
	NauticalZenith     = 102.0
	AstronomicalZenith = 108.0
)

const (
	Refraction  = 34.0 / 60 // standard atmospheric refraction at the horizon
	SolarRadius = 16.0 / 60
	EarthRadius = 6356.9 // km

	degreesPerHour = 360.0 / 24
)

// Coordinate is the subset of a location a Calculator needs.
// Longitude is negative west of Greenwich.
type Coordinate interface {
	Latitude() float64
	Longitude() float64
	Elevation() float64 // meters
}

// Calculator computes the UTC time of sunrise or sunset, as hours since
// midnight UTC, for the calendar date of date at the given zenith.
//
// The returned bool is false when the sun never crosses the zenith on
// that date, as happens during polar day or night. This is not an error.
type Calculator interface {
	Name() string
	UTCSunrise(date time.Time, c Coordinate, zenith float64, adjustForElevation bool) (float64, bool)
	UTCSunset(date time.Time, c Coordinate, zenith float64, adjustForElevation bool) (float64, bool)
}

// ElevationAdjustment returns the dip of the horizon, in degrees, for an
// observer elevation meters above sea level.
func ElevationAdjustment(elevation float64) float64 {
	return toDegrees(math.Acos(EarthRadius / (EarthRadius + elevation/1000)))
}

// AdjustZenith adds refraction, the solar radius and the elevation dip
// to the geometric zenith. Other zeniths describe a light level rather
// than the visible edge of the sun and are returned unchanged.
func AdjustZenith(zenith, elevation float64) float64 {
	if zenith != GeometricZenith {
		return zenith
	}
	return zenith + SolarRadius + Refraction + ElevationAdjustment(elevation)
}

// normalizeHours wraps t into [0, 24).
func normalizeHours(t float64) float64 {
	for t < 0 {
		t += 24
	}
	for t >= 24 {
		t -= 24
	}
	return t
}

func elevationOf(c Coordinate, adjustForElevation bool) float64 {
	if adjustForElevation {
		return c.Elevation()
	}
	return 0
}

// ByName returns the calculator registered under name. Names are
// matched case insensitively; an empty name selects NOAA.
func ByName(name string) (Calculator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "noaa":
		return NOAACalculator{}, nil
	case "suntimes", "usno":
		return SunTimesCalculator{}, nil
	case "reference", "go-sunrise":
		return ReferenceCalculator{}, nil
	default:
		return nil, fmt.Errorf("unknown calculator %q", name)
	}
}
