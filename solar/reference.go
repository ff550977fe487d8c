package solar

import (
	"time"

	"github.com/nathan-osman/go-sunrise"
)

// ReferenceCalculator delegates to github.com/nathan-osman/go-sunrise.
// That package models the sun's center crossing a fixed elevation and
// ignores observer height, so results only approximately match
// NOAACalculator. It is useful as an independent cross-check.
type ReferenceCalculator struct{}

func (ReferenceCalculator) Name() string {
	return "go-sunrise"
}

func (r ReferenceCalculator) UTCSunrise(date time.Time, c Coordinate, zenith float64, adjustForElevation bool) (float64, bool) {
	morning, _ := r.times(date, c, zenith, adjustForElevation)
	return hoursSinceMidnightUTC(date, morning)
}

func (r ReferenceCalculator) UTCSunset(date time.Time, c Coordinate, zenith float64, adjustForElevation bool) (float64, bool) {
	_, evening := r.times(date, c, zenith, adjustForElevation)
	return hoursSinceMidnightUTC(date, evening)
}

func (ReferenceCalculator) times(date time.Time, c Coordinate, zenith float64, adjustForElevation bool) (time.Time, time.Time) {
	elevation := GeometricZenith - AdjustZenith(zenith, elevationOf(c, adjustForElevation))
	return sunrise.TimeOfElevation(c.Latitude(), c.Longitude(), elevation, date.Year(), date.Month(), date.Day())
}

// go-sunrise reports events that never happen as the zero time. Anything
// more than a day away from the requested date is treated the same way.
func hoursSinceMidnightUTC(date, event time.Time) (float64, bool) {
	if event.IsZero() {
		return 0, false
	}
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	offset := event.Sub(midnight)
	if offset < -24*time.Hour || offset > 48*time.Hour {
		return 0, false
	}
	return normalizeHours(offset.Hours()), true
}
