package geo

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/bradfitz/latlong"
)

var (
	ErrLatitude  = errors.New("latitude must be between -90 and 90")
	ErrLongitude = errors.New("longitude must be between -180 and 180")
	ErrElevation = errors.New("elevation must be a non-negative number of meters")
)

// Location is a named point on the earth's surface together with the time
// zone its clocks follow. Longitude is negative west of Greenwich.
type Location struct {
	name      string
	latitude  float64
	longitude float64
	elevation float64
	timeZone  *time.Location
}

// NewLocation validates its arguments and returns a Location. A nil
// timeZone is looked up from the coordinates.
func NewLocation(name string, latitude, longitude, elevation float64, timeZone *time.Location) (*Location, error) {
	l := &Location{name: name}
	if err := l.SetLatitude(latitude); err != nil {
		return nil, err
	}
	if err := l.SetLongitude(longitude); err != nil {
		return nil, err
	}
	if err := l.SetElevation(elevation); err != nil {
		return nil, err
	}

	if timeZone == nil {
		tz, err := LookupTimeZone(latitude, longitude)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		timeZone = tz
	}
	l.timeZone = timeZone

	return l, nil
}

// Greenwich is the prime meridian at the Royal Observatory.
func Greenwich() *Location {
	return &Location{
		name:      "Greenwich, England",
		latitude:  51.4772,
		longitude: 0,
		timeZone:  time.UTC,
	}
}

func (l *Location) Name() string { return l.name }

func (l *Location) Latitude() float64 { return l.latitude }

func (l *Location) Longitude() float64 { return l.longitude }

// Elevation is in meters above sea level.
func (l *Location) Elevation() float64 { return l.elevation }

func (l *Location) TimeZone() *time.Location { return l.timeZone }

func (l *Location) SetName(name string) {
	l.name = name
}

func (l *Location) SetTimeZone(tz *time.Location) error {
	if tz == nil {
		return errors.New("time zone is nil")
	}
	l.timeZone = tz
	return nil
}

func (l *Location) SetLatitude(latitude float64) error {
	if math.IsNaN(latitude) || latitude < -90 || latitude > 90 {
		return fmt.Errorf("%v: %w", latitude, ErrLatitude)
	}
	l.latitude = latitude
	return nil
}

func (l *Location) SetLongitude(longitude float64) error {
	if math.IsNaN(longitude) || longitude < -180 || longitude > 180 {
		return fmt.Errorf("%v: %w", longitude, ErrLongitude)
	}
	l.longitude = longitude
	return nil
}

func (l *Location) SetElevation(elevation float64) error {
	if math.IsNaN(elevation) || elevation < 0 {
		return fmt.Errorf("%v: %w", elevation, ErrElevation)
	}
	l.elevation = elevation
	return nil
}

// StandardOffset returns the zone's offset from UTC outside of daylight
// saving time during the given year.
func (l *Location) StandardOffset(year int) time.Duration {
	_, jan := time.Date(year, time.January, 1, 0, 0, 0, 0, l.timeZone).Zone()
	_, jul := time.Date(year, time.July, 1, 0, 0, 0, 0, l.timeZone).Zone()
	return time.Duration(min(jan, jul)) * time.Second
}

// LocalMeanTimeOffset is the difference between local mean time at the
// location's longitude and the zone's standard time during year.
func (l *Location) LocalMeanTimeOffset(year int) time.Duration {
	meanTime := time.Duration(l.longitude * 4 * float64(time.Minute))
	return meanTime - l.StandardOffset(year)
}

// AntimeridianAdjustment returns the number of days, -1, 0 or 1, to add
// to a date in year so that solar calculations land on the locally
// intended day. It is non-zero only for places whose zone is on the far
// side of the antimeridian from their longitude, such as Samoa or
// Kiribati. Zones have moved across the line, so the year matters.
func (l *Location) AntimeridianAdjustment(year int) int {
	hours := l.LocalMeanTimeOffset(year).Hours()
	switch {
	case hours >= 20:
		return 1
	case hours <= -20:
		return -1
	default:
		return 0
	}
}

func (l *Location) String() string {
	return fmt.Sprintf("%s (%.5f, %.5f, %.0fm, %s)", l.name, l.latitude, l.longitude, l.elevation, l.timeZone)
}

// LookupTimeZone returns the IANA zone that contains the coordinates.
func LookupTimeZone(latitude, longitude float64) (*time.Location, error) {
	name := latlong.LookupZoneName(latitude, longitude)
	if name == "" {
		return nil, fmt.Errorf("no time zone for %.4f, %.4f", latitude, longitude)
	}

	tz, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load zone %q: %w", name, err)
	}
	return tz, nil
}
