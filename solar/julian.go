package solar

import (
	"time"

	"github.com/mooncaker816/learnmeeus/v3/julian"
)

const (
	EpochJ2000       = 2451545.0 // Julian day of 2000-01-01 12:00 TT
	DaysPerCentury   = 36525.0
	MinutesPerDay    = 1440.0
	minutesPerDegree = 4.0 // minutes of time per degree of longitude
)

// JulianDay returns the Julian day at 0h UT of the calendar date of t.
// The clock time and location of t are ignored.
func JulianDay(t time.Time) float64 {
	return julian.CalendarGregorianToJD(t.Year(), int(t.Month()), float64(t.Day()))
}

// JulianCenturies converts a Julian day to centuries since J2000.0.
func JulianCenturies(julianDay float64) float64 {
	return (julianDay - EpochJ2000) / DaysPerCentury
}

// JulianDayFromCenturies is the inverse of JulianCenturies.
func JulianDayFromCenturies(centuries float64) float64 {
	return centuries*DaysPerCentury + EpochJ2000
}
