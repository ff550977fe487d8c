package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subtlepseudonym/zmanim/config"
)

const denverYAML = `
location:
  name: Denver
  latitude: 39.73915
  longitude: -104.9847
  elevation: 1636
  timezone: America/Denver
calculator: suntimes
candle_lighting_offset: 20m
jobs:
  - name: candles
    schedule: "@candlelighting"
  - name: havdalah
    schedule: "@tzais72 5m"
  - name: nightly
    schedule: "0 3 * * *"
`

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(filename, []byte(contents), 0o600))
	return filename
}

func TestOpen(t *testing.T) {
	c, err := config.Open(writeFile(t, "zmanim.yaml", denverYAML))
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Equal(t, "Denver", c.Location.Name)
	assert.Equal(t, -104.9847, c.Location.Longitude)
	assert.Equal(t, 20*time.Minute, c.CandleLightingOffset)
	assert.Len(t, c.Jobs, 3)

	cal, err := c.Calendar()
	require.NoError(t, err)
	assert.Equal(t, "USNO Almanac", cal.Calculator().Name())
	assert.Equal(t, "America/Denver", cal.Location().TimeZone().String())
	assert.Equal(t, 20*time.Minute, cal.CandleLightingOffset)
}

func TestOpenDefaults(t *testing.T) {
	c, err := config.Open(writeFile(t, "empty.yaml", "calculator: noaa\n"))
	require.NoError(t, err)
	require.NoError(t, c.Validate())
	assert.Equal(t, config.Default().Location, c.Location)

	_, err = config.Open(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = config.Open(writeFile(t, "bad.yaml", "location: [\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	for name, mutate := range map[string]func(*config.Config){
		"latitude":   func(c *config.Config) { c.Location.Latitude = 95 },
		"elevation":  func(c *config.Config) { c.Location.Elevation = -3 },
		"time zone":  func(c *config.Config) { c.Location.TimeZone = "Mars/Olympus_Mons" },
		"calculator": func(c *config.Config) { c.Calculator = "sundial" },
		"offset":     func(c *config.Config) { c.CandleLightingOffset = -time.Minute },
		"no schedule": func(c *config.Config) {
			c.Jobs = []config.Job{{Name: "empty"}}
		},
		"bad schedule": func(c *config.Config) {
			c.Jobs = []config.Job{{Name: "bad", Schedule: "@sunset soon"}}
		},
	} {
		c := config.Default()
		mutate(c)
		assert.Error(t, c.Validate(), name)
	}
}

func TestMissingTimeZoneIsLookedUp(t *testing.T) {
	c := config.Default()
	c.Location = config.Location{Name: "Tokyo", Latitude: 35.6762, Longitude: 139.6503}

	loc, err := c.GeoLocation()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", loc.TimeZone().String())
}

func TestEnvOverrides(t *testing.T) {
	envFile := writeFile(t, ".env", "ZMANIM_NAME=Jerusalem\nZMANIM_LATITUDE=31.778\nZMANIM_LONGITUDE=35.2354\n")
	t.Setenv(config.EnvName, "")
	t.Setenv(config.EnvLatitude, "")
	t.Setenv(config.EnvLongitude, "")
	os.Unsetenv(config.EnvName)
	os.Unsetenv(config.EnvLatitude)
	os.Unsetenv(config.EnvLongitude)

	require.NoError(t, config.LoadEnv(envFile, filepath.Join(t.TempDir(), "missing.env")))
	t.Setenv(config.EnvElevation, "754")
	t.Setenv(config.EnvTimeZone, "Asia/Jerusalem")

	c := config.Default()
	require.NoError(t, c.ApplyEnv())
	require.NoError(t, c.Validate())
	assert.Equal(t, "Jerusalem", c.Location.Name)
	assert.Equal(t, 31.778, c.Location.Latitude)
	assert.Equal(t, 35.2354, c.Location.Longitude)
	assert.Equal(t, 754.0, c.Location.Elevation)
	assert.Equal(t, "Asia/Jerusalem", c.Location.TimeZone)

	t.Setenv(config.EnvLatitude, "north")
	assert.Error(t, c.ApplyEnv())
}
