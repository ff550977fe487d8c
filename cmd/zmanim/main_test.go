package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subtlepseudonym/zmanim"
	"github.com/subtlepseudonym/zmanim/config"
)

func TestPrintDays(t *testing.T) {
	cfg := config.Default()
	cfg.Location = config.Location{
		Name:      "Denver",
		Latitude:  39.73915,
		Longitude: -104.9847,
		Elevation: 1636,
		TimeZone:  "America/Denver",
	}
	cal, err := cfg.Calendar()
	require.NoError(t, err)

	dates, err := zmanim.Dates(zmanim.Date{Year: 2020, Month: time.June, Day: 5}, 2)
	require.NoError(t, err)

	var out strings.Builder
	require.NoError(t, printDays(&out, cal, dates))

	days := strings.Split(out.String(), "\n\n")
	require.Len(t, days, 2)
	assert.True(t, strings.HasPrefix(days[0], "Denver  2020-06-05  America/Denver  (NOAA)\n"), days[0])
	assert.True(t, strings.HasPrefix(days[1], "Denver  2020-06-06  America/Denver  (NOAA)\n"), days[1])
	assert.Contains(t, days[0], "05:24:30")
}
