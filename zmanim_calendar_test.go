package zmanim_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subtlepseudonym/zmanim"
)

func denverZmanim(t *testing.T) *zmanim.ZmanimCalendar {
	t.Helper()
	cal := zmanim.NewZmanimCalendar(location(t, "Denver", 39.73915, -104.9847, 1636, "America/Denver"))
	cal.SetDate(zmanim.Date{Year: 2020, Month: time.June, Day: 5})
	return cal
}

func TestZmanimCalendarDenver(t *testing.T) {
	cal := denverZmanim(t)

	for _, tc := range []struct {
		name string
		got  time.Time
		want string
	}{
		{"alos", cal.AlosHashachar(), "2020-06-05T03:48:37.581"},
		{"alos 72", cal.Alos72(), "2020-06-05T04:20:26.007"},
		{"sof zman shma gra", cal.SofZmanShmaGRA(), "2020-06-05T09:15:34.902"},
		{"chatzos", cal.Chatzos(), "2020-06-05T12:58:43.797"},
		{"candle lighting", cal.CandleLighting(), "2020-06-05T20:07:01.588"},
		{"tzais 72", cal.Tzais72(), "2020-06-05T21:37:01.588"},
	} {
		assert.Equal(t, tc.want, tc.got.Format(millis), tc.name)
	}

	gra, ok := cal.ShaahZmanisGRA()
	require.True(t, ok)
	assert.Equal(t, 4462965*time.Millisecond, gra)

	mga, ok := cal.ShaahZmanisMGA()
	require.True(t, ok)
	assert.Equal(t, 5182965*time.Millisecond, mga)

	cal.CandleLightingOffset = 40 * time.Minute
	assert.Equal(t, "2020-06-05T19:45:01.588", cal.CandleLighting().Format(millis))
}

func TestMGAIgnoresElevation(t *testing.T) {
	mountain := denverZmanim(t)
	sea := zmanim.NewZmanimCalendar(location(t, "Denver", 39.73915, -104.9847, 0, "America/Denver"))
	sea.SetDate(mountain.Date())

	assert.True(t, mountain.Sunrise().Before(sea.Sunrise()))

	for name, pair := range map[string][2]time.Time{
		"alos 72":   {mountain.Alos72(), sea.Alos72()},
		"tzais 72":  {mountain.Tzais72(), sea.Tzais72()},
		"shma mga":  {mountain.SofZmanShmaMGA(), sea.SofZmanShmaMGA()},
		"tfila mga": {mountain.SofZmanTfilaMGA(), sea.SofZmanTfilaMGA()},
		"shma gra":  {mountain.SofZmanShmaGRA(), sea.SofZmanShmaGRA()},
		"tfila gra": {mountain.SofZmanTfilaGRA(), sea.SofZmanTfilaGRA()},
		"plag":      {mountain.PlagHamincha(), sea.PlagHamincha()},
	} {
		require.False(t, pair[0].IsZero(), name)
		assert.True(t, pair[0].Equal(pair[1]), name)
	}

	mga, ok := mountain.ShaahZmanisMGA()
	require.True(t, ok)
	seaMGA, ok := sea.ShaahZmanisMGA()
	require.True(t, ok)
	assert.Equal(t, seaMGA, mga)
}

func TestZmanimOrder(t *testing.T) {
	cal := denverZmanim(t)
	order := []time.Time{
		cal.AlosHashachar(),
		cal.Alos72(),
		cal.SunriseOffsetByDegrees(96),
		cal.SofZmanShmaMGA(),
		cal.SofZmanShmaGRA(),
		cal.SofZmanTfilaMGA(),
		cal.SofZmanTfilaGRA(),
		cal.Chatzos(),
		cal.MinchaGedola(),
		cal.MinchaKetana(),
		cal.PlagHamincha(),
		cal.CandleLighting(),
		cal.Sunset(),
		cal.Tzais(),
		cal.Tzais72(),
	}
	for i := 1; i < len(order); i++ {
		require.False(t, order[i].IsZero(), "index %d", i)
		assert.True(t, order[i-1].Before(order[i]), "index %d", i)
	}
}

func TestZmanimList(t *testing.T) {
	cal := denverZmanim(t)
	zs := cal.Zmanim()

	var durations int
	for _, z := range zs {
		if z.IsDuration() {
			durations++
			continue
		}
		assert.False(t, z.Time().IsZero(), z.Label)
	}
	assert.Equal(t, 2, durations)

	sorted := append(zmanim.Zmanim(nil), zs...)
	sorted.SortByTime()
	assert.Equal(t, "Shaah Zmanis GRA", sorted[0].Label)
	assert.Equal(t, "Alos Hashachar", sorted[2].Label)
	assert.Equal(t, "Solar Midnight", sorted[len(sorted)-1].Label)
}

func TestZmanimPolar(t *testing.T) {
	cal := zmanim.NewZmanimCalendar(location(t, "Longyearbyen", 78.2232, 15.6267, 0, "Arctic/Longyearbyen"))
	cal.SetDate(zmanim.Date{Year: 2020, Month: time.June, Day: 21})

	assert.True(t, cal.Alos72().IsZero())
	assert.True(t, cal.SofZmanShmaGRA().IsZero())
	assert.True(t, cal.PlagHamincha().IsZero())
	_, ok := cal.ShaahZmanisMGA()
	assert.False(t, ok)

	for _, z := range cal.Zmanim() {
		assert.False(t, z.IsDuration(), z.Label)
	}
}
