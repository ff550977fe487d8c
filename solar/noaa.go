package solar

import (
	"math"
	"time"
)

// NOAACalculator implements the NOAA solar calculator algorithm, based on
// Jean Meeus's Astronomical Algorithms. It is accurate to within a minute
// for latitudes between +/- 72 degrees.
//
// https://gml.noaa.gov/grad/solcalc/calcdetails.html
type NOAACalculator struct{}

func (NOAACalculator) Name() string {
	return "NOAA"
}

func (n NOAACalculator) UTCSunrise(date time.Time, c Coordinate, zenith float64, adjustForElevation bool) (float64, bool) {
	zenith = AdjustZenith(zenith, elevationOf(c, adjustForElevation))
	minutes, ok := n.eventUTC(JulianDay(date), c.Latitude(), -c.Longitude(), zenith, true)
	if !ok {
		return 0, false
	}
	return normalizeHours(minutes / 60), true
}

func (n NOAACalculator) UTCSunset(date time.Time, c Coordinate, zenith float64, adjustForElevation bool) (float64, bool) {
	zenith = AdjustZenith(zenith, elevationOf(c, adjustForElevation))
	minutes, ok := n.eventUTC(JulianDay(date), c.Latitude(), -c.Longitude(), zenith, false)
	if !ok {
		return 0, false
	}
	return normalizeHours(minutes / 60), true
}

// eventUTC returns sunrise or sunset in minutes after midnight UTC.
// longitudeWest is positive west of Greenwich.
func (NOAACalculator) eventUTC(julianDay, latitude, longitudeWest, zenith float64, rising bool) (float64, bool) {
	centuries := JulianCenturies(julianDay)

	// declination at solar noon is a better first guess than at the
	// start of the julian day
	noon := SolarNoonUTC(centuries, longitudeWest)
	t := JulianCenturies(julianDay + noon/MinutesPerDay)

	timeUTC, ok := eventFromCenturies(t, latitude, longitudeWest, zenith, rising)
	if !ok {
		return 0, false
	}

	// second pass includes the fractional day
	t = JulianCenturies(JulianDayFromCenturies(centuries) + timeUTC/MinutesPerDay)
	return eventFromCenturies(t, latitude, longitudeWest, zenith, rising)
}

func eventFromCenturies(t, latitude, longitudeWest, zenith float64, rising bool) (float64, bool) {
	eqTime := EquationOfTime(t)
	hourAngle, ok := HourAngle(latitude, SunDeclination(t), zenith)
	if !ok {
		return 0, false
	}
	if !rising {
		hourAngle = -hourAngle
	}

	delta := longitudeWest - toDegrees(hourAngle)
	return 720 + minutesPerDegree*delta - eqTime, true
}

// SolarNoonUTC returns solar noon in minutes after midnight UTC.
func SolarNoonUTC(centuries, longitudeWest float64) float64 {
	julianDay := JulianDayFromCenturies(centuries)

	// first pass uses approximate solar noon to find the equation of time
	t := JulianCenturies(julianDay + longitudeWest/360)
	noon := 720 + longitudeWest*minutesPerDegree - EquationOfTime(t)

	t = JulianCenturies(julianDay - 0.5 + noon/MinutesPerDay)
	return 720 + longitudeWest*minutesPerDegree - EquationOfTime(t)
}

// HourAngle returns the hour angle of the sun, in radians, when it is at
// zenith. It returns false when the sun never reaches zenith.
func HourAngle(latitude, declination, zenith float64) (float64, bool) {
	lat := toRadians(latitude)
	dec := toRadians(declination)

	cosH := math.Cos(toRadians(zenith))/(math.Cos(lat)*math.Cos(dec)) - math.Tan(lat)*math.Tan(dec)
	if cosH < -1 || cosH > 1 || math.IsNaN(cosH) {
		return 0, false
	}
	return math.Acos(cosH), true
}

// GeometricMeanLongitude of the sun in degrees, normalized to [0, 360].
func GeometricMeanLongitude(t float64) float64 {
	longitude := 280.46646 + t*(36000.76983+0.0003032*t)
	for longitude > 360 {
		longitude -= 360
	}
	for longitude < 0 {
		longitude += 360
	}
	return longitude
}

// GeometricMeanAnomaly of the sun in degrees.
func GeometricMeanAnomaly(t float64) float64 {
	return 357.52911 + t*(35999.05029-0.0001537*t)
}

// EarthOrbitEccentricity is unitless.
func EarthOrbitEccentricity(t float64) float64 {
	return 0.016708634 - t*(0.000042037+0.0000001267*t)
}

// EquationOfCenter of the sun in degrees.
func EquationOfCenter(t float64) float64 {
	m := toRadians(GeometricMeanAnomaly(t))

	return math.Sin(m)*(1.914602-t*(0.004817+0.000014*t)) +
		math.Sin(m+m)*(0.019993-0.000101*t) +
		math.Sin(m+m+m)*0.000289
}

// TrueLongitude of the sun in degrees.
func TrueLongitude(t float64) float64 {
	return GeometricMeanLongitude(t) + EquationOfCenter(t)
}

// ApparentLongitude of the sun in degrees, corrected for nutation and
// aberration.
func ApparentLongitude(t float64) float64 {
	omega := 125.04 - 1934.136*t
	return TrueLongitude(t) - 0.00569 - 0.00478*sinDeg(omega)
}

// MeanObliquityOfEcliptic in degrees.
func MeanObliquityOfEcliptic(t float64) float64 {
	seconds := 21.448 - t*(46.8150+t*(0.00059-t*0.001813))
	return 23 + (26+seconds/60)/60
}

// ObliquityCorrection in degrees.
func ObliquityCorrection(t float64) float64 {
	omega := 125.04 - 1934.136*t
	return MeanObliquityOfEcliptic(t) + 0.00256*cosDeg(omega)
}

// SunDeclination in degrees.
func SunDeclination(t float64) float64 {
	return asinDeg(sinDeg(ObliquityCorrection(t)) * sinDeg(ApparentLongitude(t)))
}

// EquationOfTime returns the difference between true and mean solar time
// in minutes.
func EquationOfTime(t float64) float64 {
	epsilon := ObliquityCorrection(t)
	l0 := toRadians(GeometricMeanLongitude(t))
	e := EarthOrbitEccentricity(t)
	m := toRadians(GeometricMeanAnomaly(t))

	y := math.Tan(toRadians(epsilon) / 2)
	y *= y

	sin2l0 := math.Sin(2 * l0)
	sinm := math.Sin(m)
	cos2l0 := math.Cos(2 * l0)
	sin4l0 := math.Sin(4 * l0)
	sin2m := math.Sin(2 * m)

	eq := y*sin2l0 - 2*e*sinm + 4*e*y*sinm*cos2l0 - 0.5*y*y*sin4l0 - 1.25*e*e*sin2m
	return toDegrees(eq) * minutesPerDegree
}
