package solar

import (
	"time"
)

// SunTimesCalculator implements the sunrise/sunset algorithm published in
// the Almanac for Computers (Nautical Almanac Office, 1990). It is
// cheaper than NOAACalculator and agrees with it to within a few seconds
// away from the poles.
type SunTimesCalculator struct{}

func (SunTimesCalculator) Name() string {
	return "USNO Almanac"
}

func (s SunTimesCalculator) UTCSunrise(date time.Time, c Coordinate, zenith float64, adjustForElevation bool) (float64, bool) {
	zenith = AdjustZenith(zenith, elevationOf(c, adjustForElevation))
	return s.eventUTC(date.YearDay(), c.Latitude(), c.Longitude(), zenith, true)
}

func (s SunTimesCalculator) UTCSunset(date time.Time, c Coordinate, zenith float64, adjustForElevation bool) (float64, bool) {
	zenith = AdjustZenith(zenith, elevationOf(c, adjustForElevation))
	return s.eventUTC(date.YearDay(), c.Latitude(), c.Longitude(), zenith, false)
}

func (SunTimesCalculator) eventUTC(dayOfYear int, latitude, longitude, zenith float64, rising bool) (float64, bool) {
	approxTime := ApproximateTimeDays(dayOfYear, longitude, rising)
	trueLongitude := EclipticLongitude(SolarMeanAnomaly(approxTime))
	rightAscension := RightAscension(trueLongitude)

	cosH := CosLocalHourAngle(trueLongitude, latitude, zenith)
	if cosH < -1 || cosH > 1 {
		return 0, false
	}

	hourAngle := acosDeg(cosH)
	if rising {
		hourAngle = 360 - hourAngle
	}

	localMeanTime := hourAngle/degreesPerHour + rightAscension - 0.06571*approxTime - 6.622
	return normalizeHours(localMeanTime - longitude/degreesPerHour), true
}
