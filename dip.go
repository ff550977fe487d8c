package zmanim

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/subtlepseudonym/zmanim/solar"
)

// MaxSolarDip bounds the solar dip searches to the physical range of
// zeniths, 0 to 180 degrees. An offset the sun does not reach within it
// is unreachable.
const MaxSolarDip = 90.0

var (
	sunriseDipStep = decimal.RequireFromString("0.0001")
	sunsetDipStep  = decimal.RequireFromString("0.001")
	maxSolarDip    = decimal.NewFromFloat(MaxSolarDip)
)

// SunriseSolarDipFromOffset returns how many degrees below the horizon
// the sun is the given number of minutes before sea level sunrise.
// Negative minutes are after sunrise and yield a negative dip.
//
// There is no closed form, so the zenith is stepped 0.0001 degrees at a
// time until the time for that zenith passes the target. The bool is
// false if sunrise does not happen or the sun never reaches the target.
func (c *AstronomicalCalendar) SunriseSolarDipFromOffset(minutes float64) (float64, bool) {
	seaLevel := c.SeaLevelSunrise()
	if seaLevel.IsZero() {
		return 0, false
	}
	target := c.TimeOffset(seaLevel, -minutesOffset(minutes))

	return c.searchDip(seaLevel, sunriseDipStep, minutes > 0,
		func(candidate time.Time) bool {
			return (minutes < 0 && candidate.Before(target)) || (minutes > 0 && candidate.After(target))
		},
		c.SunriseOffsetByDegrees,
	)
}

// SunsetSolarDipFromOffset returns how many degrees below the horizon
// the sun is the given number of minutes after sea level sunset, in
// steps of 0.001 degrees.
func (c *AstronomicalCalendar) SunsetSolarDipFromOffset(minutes float64) (float64, bool) {
	seaLevel := c.SeaLevelSunset()
	if seaLevel.IsZero() {
		return 0, false
	}
	target := c.TimeOffset(seaLevel, minutesOffset(minutes))

	return c.searchDip(seaLevel, sunsetDipStep, minutes > 0,
		func(candidate time.Time) bool {
			return (minutes > 0 && candidate.Before(target)) || (minutes < 0 && candidate.After(target))
		},
		c.SunsetOffsetByDegrees,
	)
}

// searchDip steps degrees away from zero until short reports that the
// candidate time has reached the target. A zero candidate, when the sun
// never gets that far, is always short.
func (c *AstronomicalCalendar) searchDip(
	candidate time.Time,
	step decimal.Decimal,
	increase bool,
	short func(time.Time) bool,
	offsetByDegrees func(zenith float64) time.Time,
) (float64, bool) {
	degrees := decimal.Zero
	for candidate.IsZero() || short(candidate) {
		if increase {
			degrees = degrees.Add(step)
		} else {
			degrees = degrees.Sub(step)
		}
		if degrees.Abs().GreaterThan(maxSolarDip) {
			return 0, false
		}
		candidate = offsetByDegrees(solar.GeometricZenith + degrees.InexactFloat64())
	}
	return degrees.InexactFloat64(), true
}

// minutesOffset truncates to the millisecond.
func minutesOffset(minutes float64) time.Duration {
	return time.Duration(int64(minutes*float64(time.Minute/time.Millisecond))) * time.Millisecond
}
