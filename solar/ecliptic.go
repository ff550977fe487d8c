package solar

import (
	"math"
)

// ApproximateTimeDays is the day of year plus the fraction of a day at
// which the event is expected: 06:00 local mean time for sunrise and
// 18:00 for sunset. longitude is negative west of Greenwich.
func ApproximateTimeDays(dayOfYear int, longitude float64, rising bool) float64 {
	localHour := 18.0
	if rising {
		localHour = 6.0
	}
	return float64(dayOfYear) + (localHour-longitude/degreesPerHour)/24
}

// SolarMeanAnomaly calculates the angle, in degrees, the mean sun has
// moved since perihelion at the given approximate time.
func SolarMeanAnomaly(approxTimeDays float64) float64 {
	return 0.9856*approxTimeDays - 3.289
}

// EclipticLongitude calculates the sun's distance along the ecliptic,
// in degrees normalized to [0, 360), from its mean anomaly. The
// equation of the center is folded into the first two sine terms.
//
// https://en.wikipedia.org/wiki/Equation_of_the_center
func EclipticLongitude(meanAnomaly float64) float64 {
	l := meanAnomaly + 1.916*sinDeg(meanAnomaly) + 0.020*sinDeg(2*meanAnomaly) + 282.634
	if l >= 360 {
		l -= 360
	}
	if l < 0 {
		l += 360
	}
	return l
}

// RightAscension returns the sun's right ascension in hours. The arctangent
// is moved into the same quadrant as the ecliptic longitude.
func RightAscension(eclipticLongitude float64) float64 {
	ra := toDegrees(math.Atan(0.91764 * tanDeg(eclipticLongitude)))

	lQuadrant := math.Floor(eclipticLongitude/90) * 90
	raQuadrant := math.Floor(ra/90) * 90
	ra += lQuadrant - raQuadrant

	return ra / degreesPerHour
}

// CosLocalHourAngle returns the cosine of the sun's local hour angle when
// it is at zenith. Values outside [-1, 1] mean the sun never gets there.
func CosLocalHourAngle(eclipticLongitude, latitude, zenith float64) float64 {
	sinDec := 0.39782 * sinDeg(eclipticLongitude)
	cosDec := cosDeg(asinDeg(sinDec))

	return (cosDeg(zenith) - sinDec*sinDeg(latitude)) / (cosDec * cosDeg(latitude))
}
