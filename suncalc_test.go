package zmanim_test

import (
	"testing"
	"time"

	"github.com/sixdouglas/suncalc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// suncalc uses a lower precision model, so only agreement to within a
// couple of minutes is expected.
func TestNauticalTwilightMatchesSuncalc(t *testing.T) {
	cal := denverCalendar(t)
	noon := cal.Date().Midnight(cal.Location().TimeZone()).Add(12 * time.Hour)
	times := suncalc.GetTimes(noon, cal.Location().Latitude(), cal.Location().Longitude())

	for _, tc := range []struct {
		name string
		got  time.Time
		want time.Time
	}{
		{"nautical dawn", cal.BeginNauticalTwilight(), times[suncalc.NauticalDawn].Value},
		{"nautical dusk", cal.EndNauticalTwilight(), times[suncalc.NauticalDusk].Value},
	} {
		require.False(t, tc.got.IsZero(), tc.name)
		require.False(t, tc.want.IsZero(), tc.name)

		diff := tc.got.Sub(tc.want)
		if diff < 0 {
			diff = -diff
		}
		assert.Less(t, int64(diff), int64(2*time.Minute), tc.name)
	}
}
