package zmanim_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/subtlepseudonym/zmanim"
)

func TestScheduleNext(t *testing.T) {
	cal := denverZmanim(t)
	denver := cal.Location().TimeZone()

	schedule, err := zmanim.ParseSchedule("@sunset -18m", cal, zap.NewNop())
	require.NoError(t, err)
	require.IsType(t, zmanim.Schedule{}, schedule)

	noon := time.Date(2020, time.June, 5, 12, 0, 0, 0, denver)
	assert.Equal(t, "2020-06-05T20:14:57.848", schedule.Next(noon).Format(millis))

	// once today's event has passed, tomorrow's is next
	evening := time.Date(2020, time.June, 5, 21, 0, 0, 0, denver)
	tomorrow := cal.Clone()
	tomorrow.SetDate(zmanim.Date{Year: 2020, Month: time.June, Day: 6})
	want := tomorrow.Sunset().Add(-18 * time.Minute)
	assert.True(t, want.Equal(schedule.Next(evening)), "got %s", schedule.Next(evening))

	// the schedule works on a copy of the calendar
	assert.Equal(t, zmanim.Date{Year: 2020, Month: time.June, Day: 5}, cal.Date())
}

func TestScheduleSkipsPolarDays(t *testing.T) {
	cal := zmanim.NewZmanimCalendar(location(t, "Longyearbyen", 78.2232, 15.6267, 0, "Arctic/Longyearbyen"))
	schedule := zmanim.Schedule{
		Name:     "sunset",
		Event:    zmanim.Events["sunset"],
		Calendar: cal,
	}

	now := time.Date(2020, time.June, 1, 12, 0, 0, 0, time.UTC)
	next := schedule.Next(now)
	require.False(t, next.IsZero())
	assert.True(t, next.After(time.Date(2020, time.August, 1, 0, 0, 0, 0, time.UTC)), next)
	assert.True(t, next.Before(time.Date(2020, time.September, 15, 0, 0, 0, 0, time.UTC)), next)
}

func TestScheduleNeverFires(t *testing.T) {
	cal := denverZmanim(t)
	schedule := zmanim.Schedule{
		Name:     "never",
		Event:    func(*zmanim.ZmanimCalendar) time.Time { return time.Time{} },
		Calendar: cal,
	}
	assert.True(t, schedule.Next(time.Now()).IsZero())
}

func TestParseSchedule(t *testing.T) {
	cal := denverZmanim(t)

	for _, spec := range []string{"0 5 * * *", "@daily", "@every 1h"} {
		schedule, err := zmanim.ParseSchedule(spec, cal, nil)
		require.NoError(t, err, spec)
		_, isZman := schedule.(zmanim.Schedule)
		assert.False(t, isZman, spec)
	}

	schedule, err := zmanim.ParseSchedule("@Tzais72", cal, nil)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), schedule.(zmanim.Schedule).Offset)

	for _, spec := range []string{"", "@sunset later", "@sunset 1m 2m", "@unknown", "61 * * * *"} {
		_, err := zmanim.ParseSchedule(spec, cal, nil)
		assert.Error(t, err, spec)
	}
}

func TestEventNames(t *testing.T) {
	names := zmanim.EventNames()
	assert.Len(t, names, len(zmanim.Events))
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "candlelighting")
}
