package zmanim

import (
	"time"

	"github.com/subtlepseudonym/zmanim/solar"
)

const (
	// Zenith16Point1 is the sun 16.1 degrees below the horizon, the depression
	// 72 minutes before sunrise in Jerusalem around the equinox.
	Zenith16Point1 = solar.GeometricZenith + 16.1
	// Zenith8Point5 is the sun 8.5 degrees below the horizon, when three
	// small stars are visible.
	Zenith8Point5 = solar.GeometricZenith + 8.5

	DefaultCandleLightingOffset = 18 * time.Minute
)

// ZmanimCalendar adds the halachic times of day used in Jewish law to
// an AstronomicalCalendar. Times based on the GRA's day run from sea
// level sunrise to sea level sunset; the MGA's day runs from 72 minutes
// before sunrise to 72 minutes after sunset.
type ZmanimCalendar struct {
	*AstronomicalCalendar

	CandleLightingOffset time.Duration
}

func NewZmanimCalendar(location Location) *ZmanimCalendar {
	return &ZmanimCalendar{
		AstronomicalCalendar: NewAstronomicalCalendar(location),
		CandleLightingOffset: DefaultCandleLightingOffset,
	}
}

func (z *ZmanimCalendar) Clone() *ZmanimCalendar {
	return &ZmanimCalendar{
		AstronomicalCalendar: z.AstronomicalCalendar.Clone(),
		CandleLightingOffset: z.CandleLightingOffset,
	}
}

// AlosHashachar is dawn, when the sun is 16.1 degrees below the horizon.
func (z *ZmanimCalendar) AlosHashachar() time.Time {
	return z.SunriseOffsetByDegrees(Zenith16Point1)
}

// Alos72 is dawn as a fixed 72 minutes before sea level sunrise. Like
// the other light based times it does not depend on elevation.
func (z *ZmanimCalendar) Alos72() time.Time {
	return z.TimeOffset(z.SeaLevelSunrise(), -72*time.Minute)
}

func (z *ZmanimCalendar) Chatzos() time.Time {
	return z.SunTransit()
}

// Tzais is nightfall, when the sun is 8.5 degrees below the horizon.
func (z *ZmanimCalendar) Tzais() time.Time {
	return z.SunsetOffsetByDegrees(Zenith8Point5)
}

// Tzais72 is nightfall as a fixed 72 minutes after sea level sunset.
func (z *ZmanimCalendar) Tzais72() time.Time {
	return z.TimeOffset(z.SeaLevelSunset(), 72*time.Minute)
}

func (z *ZmanimCalendar) CandleLighting() time.Time {
	return z.TimeOffset(z.SeaLevelSunset(), -z.CandleLightingOffset)
}

func (z *ZmanimCalendar) ShaahZmanisGRA() (time.Duration, bool) {
	return z.TemporalHourBetween(z.SeaLevelSunrise(), z.SeaLevelSunset())
}

func (z *ZmanimCalendar) ShaahZmanisMGA() (time.Duration, bool) {
	return z.TemporalHourBetween(z.Alos72(), z.Tzais72())
}

func (z *ZmanimCalendar) SofZmanShmaGRA() time.Time {
	return z.hoursIntoDay(z.SeaLevelSunrise(), z.SeaLevelSunset(), 3)
}

func (z *ZmanimCalendar) SofZmanShmaMGA() time.Time {
	return z.hoursIntoDay(z.Alos72(), z.Tzais72(), 3)
}

func (z *ZmanimCalendar) SofZmanTfilaGRA() time.Time {
	return z.hoursIntoDay(z.SeaLevelSunrise(), z.SeaLevelSunset(), 4)
}

func (z *ZmanimCalendar) SofZmanTfilaMGA() time.Time {
	return z.hoursIntoDay(z.Alos72(), z.Tzais72(), 4)
}

// MinchaGedola is six and a half temporal hours after sunrise.
func (z *ZmanimCalendar) MinchaGedola() time.Time {
	return z.hoursIntoDay(z.SeaLevelSunrise(), z.SeaLevelSunset(), 6.5)
}

func (z *ZmanimCalendar) MinchaKetana() time.Time {
	return z.hoursIntoDay(z.SeaLevelSunrise(), z.SeaLevelSunset(), 9.5)
}

func (z *ZmanimCalendar) PlagHamincha() time.Time {
	return z.hoursIntoDay(z.SeaLevelSunrise(), z.SeaLevelSunset(), 10.75)
}

// hoursIntoDay returns the time the given number of temporal hours after
// start, where the day runs from start to end.
func (z *ZmanimCalendar) hoursIntoDay(start, end time.Time, hours float64) time.Time {
	hour, ok := z.TemporalHourBetween(start, end)
	if !ok {
		return time.Time{}
	}
	offset := time.Duration(int64(float64(hour.Milliseconds())*hours)) * time.Millisecond
	return z.TimeOffset(start, offset)
}

// Zmanim returns the calendar's times of day in chronological order of a
// typical day. Events that do not happen have a zero Time.
func (z *ZmanimCalendar) Zmanim() Zmanim {
	zs := Zmanim{
		NewZman("Alos Hashachar", z.AlosHashachar()).WithDescription("Dawn, the sun 16.1 degrees below the horizon"),
		NewZman("Alos 72", z.Alos72()),
		NewZman("Begin Civil Twilight", z.BeginCivilTwilight()),
		NewZman("Sunrise", z.Sunrise()),
		NewZman("Sea Level Sunrise", z.SeaLevelSunrise()),
		NewZman("Sof Zman Shma MGA", z.SofZmanShmaMGA()),
		NewZman("Sof Zman Shma GRA", z.SofZmanShmaGRA()),
		NewZman("Sof Zman Tfila MGA", z.SofZmanTfilaMGA()),
		NewZman("Sof Zman Tfila GRA", z.SofZmanTfilaGRA()),
		NewZman("Chatzos", z.Chatzos()).WithDescription("Midday, halfway between sea level sunrise and sunset"),
		NewZman("Mincha Gedola", z.MinchaGedola()),
		NewZman("Mincha Ketana", z.MinchaKetana()),
		NewZman("Plag Hamincha", z.PlagHamincha()),
		NewZman("Candle Lighting", z.CandleLighting()),
		NewZman("Sea Level Sunset", z.SeaLevelSunset()),
		NewZman("Sunset", z.Sunset()),
		NewZman("End Civil Twilight", z.EndCivilTwilight()),
		NewZman("Tzais", z.Tzais()).WithDescription("Nightfall, the sun 8.5 degrees below the horizon"),
		NewZman("Tzais 72", z.Tzais72()),
		NewZman("Solar Midnight", z.SolarMidnight()),
	}

	gra, ok := z.ShaahZmanisGRA()
	if ok {
		zs = append(zs, NewDurationZman("Shaah Zmanis GRA", gra))
	}
	mga, ok := z.ShaahZmanisMGA()
	if ok {
		zs = append(zs, NewDurationZman("Shaah Zmanis MGA", mga))
	}
	return zs
}
