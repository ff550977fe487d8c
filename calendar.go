package zmanim

import (
	"math"
	"time"

	"github.com/subtlepseudonym/zmanim/geo"
	"github.com/subtlepseudonym/zmanim/solar"
)

// Location is the geographic information an AstronomicalCalendar needs.
// *geo.Location implements it.
type Location interface {
	solar.Coordinate
	Name() string
	TimeZone() *time.Location
	AntimeridianAdjustment(year int) int
}

// AstronomicalCalendar computes sunrise, sunset, twilight and related
// times for a date at a location.
//
// Times are returned in the location's time zone. An event that does not
// happen on the date, such as sunrise during polar night, is returned as
// the zero time.Time and every time derived from it is zero as well.
//
// The date, location and calculator may be changed at any time. An
// AstronomicalCalendar is not safe for concurrent use; use Clone to give
// each goroutine its own.
type AstronomicalCalendar struct {
	date       Date
	location   Location
	calculator solar.Calculator
}

// NewAstronomicalCalendar returns a calendar for today at location using
// the NOAA calculator. A nil location means Greenwich.
func NewAstronomicalCalendar(location Location) *AstronomicalCalendar {
	if location == nil {
		location = geo.Greenwich()
	}
	return &AstronomicalCalendar{
		date:       DateOf(time.Now().In(location.TimeZone())),
		location:   location,
		calculator: solar.NOAACalculator{},
	}
}

func (c *AstronomicalCalendar) Date() Date {
	return c.date
}

func (c *AstronomicalCalendar) Location() Location {
	return c.location
}

func (c *AstronomicalCalendar) Calculator() solar.Calculator {
	return c.calculator
}

func (c *AstronomicalCalendar) SetDate(date Date) {
	c.date = date
}

func (c *AstronomicalCalendar) SetLocation(location Location) {
	c.location = location
}

func (c *AstronomicalCalendar) SetCalculator(calculator solar.Calculator) {
	c.calculator = calculator
}

// Clone returns a copy of c that can be modified independently. The
// location is shared and must not be mutated while either copy is in use.
func (c *AstronomicalCalendar) Clone() *AstronomicalCalendar {
	clone := *c
	return &clone
}

// Sunrise is the elevation adjusted time the upper edge of the sun
// appears over the horizon.
func (c *AstronomicalCalendar) Sunrise() time.Time {
	hours, ok := c.UTCSunrise(solar.GeometricZenith)
	return c.instant(hours, ok, true)
}

// SeaLevelSunrise ignores elevation. Times that depend on the amount of
// light, such as dawn, are based on it.
func (c *AstronomicalCalendar) SeaLevelSunrise() time.Time {
	hours, ok := c.UTCSeaLevelSunrise(solar.GeometricZenith)
	return c.instant(hours, ok, true)
}

func (c *AstronomicalCalendar) Sunset() time.Time {
	hours, ok := c.UTCSunset(solar.GeometricZenith)
	return c.instant(hours, ok, false)
}

func (c *AstronomicalCalendar) SeaLevelSunset() time.Time {
	hours, ok := c.UTCSeaLevelSunset(solar.GeometricZenith)
	return c.instant(hours, ok, false)
}

// SunriseOffsetByDegrees returns the morning time the sun reaches
// zenith, an absolute angle from the vertical such as 96 for civil dawn.
func (c *AstronomicalCalendar) SunriseOffsetByDegrees(zenith float64) time.Time {
	hours, ok := c.UTCSunrise(zenith)
	return c.instant(hours, ok, true)
}

// SunsetOffsetByDegrees is the evening counterpart of SunriseOffsetByDegrees.
func (c *AstronomicalCalendar) SunsetOffsetByDegrees(zenith float64) time.Time {
	hours, ok := c.UTCSunset(zenith)
	return c.instant(hours, ok, false)
}

func (c *AstronomicalCalendar) BeginCivilTwilight() time.Time {
	return c.SunriseOffsetByDegrees(solar.CivilZenith)
}

func (c *AstronomicalCalendar) EndCivilTwilight() time.Time {
	return c.SunsetOffsetByDegrees(solar.CivilZenith)
}

func (c *AstronomicalCalendar) BeginNauticalTwilight() time.Time {
	return c.SunriseOffsetByDegrees(solar.NauticalZenith)
}

func (c *AstronomicalCalendar) EndNauticalTwilight() time.Time {
	return c.SunsetOffsetByDegrees(solar.NauticalZenith)
}

func (c *AstronomicalCalendar) BeginAstronomicalTwilight() time.Time {
	return c.SunriseOffsetByDegrees(solar.AstronomicalZenith)
}

func (c *AstronomicalCalendar) EndAstronomicalTwilight() time.Time {
	return c.SunsetOffsetByDegrees(solar.AstronomicalZenith)
}

// UTCSunrise returns elevation adjusted sunrise at zenith in hours after
// midnight UTC. The bool is false if the sun never reaches zenith.
func (c *AstronomicalCalendar) UTCSunrise(zenith float64) (float64, bool) {
	return c.calculator.UTCSunrise(c.adjustedDate(), c.location, zenith, true)
}

func (c *AstronomicalCalendar) UTCSeaLevelSunrise(zenith float64) (float64, bool) {
	return c.calculator.UTCSunrise(c.adjustedDate(), c.location, zenith, false)
}

func (c *AstronomicalCalendar) UTCSunset(zenith float64) (float64, bool) {
	return c.calculator.UTCSunset(c.adjustedDate(), c.location, zenith, true)
}

func (c *AstronomicalCalendar) UTCSeaLevelSunset(zenith float64) (float64, bool) {
	return c.calculator.UTCSunset(c.adjustedDate(), c.location, zenith, false)
}

// TemporalHour is a twelfth of the time between sea level sunrise and
// sea level sunset.
func (c *AstronomicalCalendar) TemporalHour() (time.Duration, bool) {
	return c.TemporalHourBetween(c.SeaLevelSunrise(), c.SeaLevelSunset())
}

// TemporalHourBetween returns a twelfth of the time from start to end,
// truncated to the millisecond. It returns false if either is zero.
func (c *AstronomicalCalendar) TemporalHourBetween(start, end time.Time) (time.Duration, bool) {
	if start.IsZero() || end.IsZero() {
		return 0, false
	}
	return time.Duration(end.Sub(start).Milliseconds()/12) * time.Millisecond, true
}

// SunTransit approximates the time the sun crosses the meridian as the
// midpoint of sea level sunrise and sunset.
func (c *AstronomicalCalendar) SunTransit() time.Time {
	return c.SunTransitBetween(c.SeaLevelSunrise(), c.SeaLevelSunset())
}

// SunTransitBetween returns six temporal hours after start.
func (c *AstronomicalCalendar) SunTransitBetween(start, end time.Time) time.Time {
	hour, ok := c.TemporalHourBetween(start, end)
	if !ok {
		return time.Time{}
	}
	return c.TimeOffset(start, 6*hour)
}

// SolarMidnight is the midpoint of tonight's sea level sunset and
// tomorrow's sea level sunrise.
func (c *AstronomicalCalendar) SolarMidnight() time.Time {
	tomorrow := c.Clone()
	tomorrow.SetDate(c.date.AddDays(1))
	return c.SunTransitBetween(c.SeaLevelSunset(), tomorrow.SeaLevelSunrise())
}

// TimeOffset adds offset to t. The zero time is returned unchanged.
func (c *AstronomicalCalendar) TimeOffset(t time.Time, offset time.Duration) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	return t.Add(offset)
}

// DateFromTime converts hours after midnight UTC on the adjusted date into
// a time in the location's zone. The hours are truncated, not rounded,
// to the millisecond.
//
// Near the international date line the UTC date of an event can differ
// from the local date it belongs to; a late UTC sunrise is moved back a
// day and an early UTC sunset forward a day.
func (c *AstronomicalCalendar) DateFromTime(hours float64, isSunrise bool) time.Time {
	if math.IsNaN(hours) || math.IsInf(hours, 0) {
		return time.Time{}
	}

	h := int(hours)
	hours -= float64(h)
	hours *= 60
	m := int(hours)
	hours -= float64(m)
	hours *= 60
	s := int(hours)
	hours -= float64(s)
	ms := int(hours * 1000)

	date := c.adjustedDate()
	localHours := int(math.Floor(c.location.Longitude() / 15))
	if isSunrise && localHours+h > 18 {
		date = date.AddDate(0, 0, -1)
	} else if !isSunrise && localHours+h < 6 {
		date = date.AddDate(0, 0, 1)
	}

	utc := time.Date(date.Year(), date.Month(), date.Day(), h, m, s, ms*int(time.Millisecond), time.UTC)
	return utc.In(c.location.TimeZone())
}

func (c *AstronomicalCalendar) instant(hours float64, ok, isSunrise bool) time.Time {
	if !ok {
		return time.Time{}
	}
	return c.DateFromTime(hours, isSunrise)
}

// adjustedDate is midnight UTC of the date solar calculations run for.
func (c *AstronomicalCalendar) adjustedDate() time.Time {
	return c.date.AddDays(c.location.AntimeridianAdjustment(c.date.Year)).Midnight(time.UTC)
}
