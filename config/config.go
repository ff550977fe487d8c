package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/subtlepseudonym/zmanim"
	"github.com/subtlepseudonym/zmanim/geo"
	"github.com/subtlepseudonym/zmanim/solar"
)

// Environment variables that override the config file.
const (
	EnvName       = "ZMANIM_NAME"
	EnvLatitude   = "ZMANIM_LATITUDE"
	EnvLongitude  = "ZMANIM_LONGITUDE"
	EnvElevation  = "ZMANIM_ELEVATION"
	EnvTimeZone   = "ZMANIM_TIMEZONE"
	EnvCalculator = "ZMANIM_CALCULATOR"
)

type Location struct {
	Name      string  `yaml:"name"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"` // negative west of Greenwich
	Elevation float64 `yaml:"elevation"` // meters
	TimeZone  string  `yaml:"timezone"`  // IANA name, looked up from coordinates if empty
}

// Job logs a message whenever its schedule fires. Schedule is either a
// solar event such as "@sunset -18m" or a five field cron expression.
type Job struct {
	Name     string `yaml:"name"`
	Schedule string `yaml:"schedule"`
}

type Config struct {
	Location             Location      `yaml:"location"`
	Calculator           string        `yaml:"calculator"`
	CandleLightingOffset time.Duration `yaml:"candle_lighting_offset"`
	Jobs                 []Job         `yaml:"jobs"`
}

func Default() *Config {
	return &Config{
		Location: Location{
			Name:      "Greenwich, England",
			Latitude:  51.4772,
			TimeZone:  "Europe/London",
			Elevation: 0,
		},
		Calculator:           "noaa",
		CandleLightingOffset: zmanim.DefaultCandleLightingOffset,
	}
}

// Open reads a YAML config file. Fields missing from the file keep their
// default values.
func Open(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	config := Default()
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	return config, nil
}

// LoadEnv loads variables from dotenv files into the environment without
// overriding variables that are already set. Missing files are ignored.
func LoadEnv(filenames ...string) error {
	for _, filename := range filenames {
		err := godotenv.Load(filename)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load %s: %w", filename, err)
		}
	}
	return nil
}

// ApplyEnv overrides config values with any ZMANIM_* environment variables.
func (c *Config) ApplyEnv() error {
	if v, ok := os.LookupEnv(EnvName); ok {
		c.Location.Name = v
	}
	if v, ok := os.LookupEnv(EnvTimeZone); ok {
		c.Location.TimeZone = v
	}
	if v, ok := os.LookupEnv(EnvCalculator); ok {
		c.Calculator = v
	}

	for env, field := range map[string]*float64{
		EnvLatitude:  &c.Location.Latitude,
		EnvLongitude: &c.Location.Longitude,
		EnvElevation: &c.Location.Elevation,
	} {
		v, ok := os.LookupEnv(env)
		if !ok {
			continue
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("parse %s: %w", env, err)
		}
		*field = f
	}

	return nil
}

func (c *Config) Validate() error {
	if _, err := c.GeoLocation(); err != nil {
		return err
	}
	if _, err := solar.ByName(c.Calculator); err != nil {
		return err
	}
	if c.CandleLightingOffset < 0 {
		return fmt.Errorf("candle lighting offset must not be negative, got %s", c.CandleLightingOffset)
	}

	for i, job := range c.Jobs {
		if job.Schedule == "" {
			return fmt.Errorf("job %d %q has no schedule", i, job.Name)
		}
		if _, err := zmanim.ParseSchedule(job.Schedule, nil, nil); err != nil {
			return fmt.Errorf("job %d %q: %w", i, job.Name, err)
		}
	}

	return nil
}

// GeoLocation builds the configured location.
func (c *Config) GeoLocation() (*geo.Location, error) {
	var tz *time.Location
	if c.Location.TimeZone != "" {
		var err error
		tz, err = time.LoadLocation(c.Location.TimeZone)
		if err != nil {
			return nil, fmt.Errorf("load time zone: %w", err)
		}
	}

	loc, err := geo.NewLocation(c.Location.Name, c.Location.Latitude, c.Location.Longitude, c.Location.Elevation, tz)
	if err != nil {
		return nil, fmt.Errorf("location: %w", err)
	}
	return loc, nil
}

// Calendar returns a calendar for today at the configured location using
// the configured calculator.
func (c *Config) Calendar() (*zmanim.ZmanimCalendar, error) {
	loc, err := c.GeoLocation()
	if err != nil {
		return nil, err
	}
	calculator, err := solar.ByName(c.Calculator)
	if err != nil {
		return nil, err
	}

	cal := zmanim.NewZmanimCalendar(loc)
	cal.SetCalculator(calculator)
	cal.CandleLightingOffset = c.CandleLightingOffset
	return cal, nil
}
