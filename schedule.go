package zmanim

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// scheduleHorizon is how many days ahead Next looks for an event before
// giving up. A year covers the longest polar day or night.
const scheduleHorizon = 366

// Event selects a time of day from a calendar.
type Event func(*ZmanimCalendar) time.Time

// Events are the named events a schedule spec may refer to.
var Events = map[string]Event{
	"alos":           (*ZmanimCalendar).AlosHashachar,
	"alos72":         (*ZmanimCalendar).Alos72,
	"dawn":           (*ZmanimCalendar).BeginCivilTwilight,
	"sunrise":        (*ZmanimCalendar).Sunrise,
	"chatzos":        (*ZmanimCalendar).Chatzos,
	"transit":        (*ZmanimCalendar).SunTransit,
	"mincha":         (*ZmanimCalendar).MinchaGedola,
	"plag":           (*ZmanimCalendar).PlagHamincha,
	"candlelighting": (*ZmanimCalendar).CandleLighting,
	"sunset":         (*ZmanimCalendar).Sunset,
	"dusk":           (*ZmanimCalendar).EndCivilTwilight,
	"tzais":          (*ZmanimCalendar).Tzais,
	"tzais72":        (*ZmanimCalendar).Tzais72,
	"midnight":       (*ZmanimCalendar).SolarMidnight,
}

// EventNames returns the keys of Events in sorted order.
func EventNames() []string {
	names := make([]string, 0, len(Events))
	for name := range Events {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Schedule fires at a fixed offset from a daily solar event.
//
// This implements robfig/cron.Schedule
type Schedule struct {
	Name     string
	Event    Event
	Offset   time.Duration
	Calendar *ZmanimCalendar
	Logger   *zap.Logger
}

// Next returns the first occurrence of the event, plus offset, after now.
// Days on which the event does not happen are skipped. If it does not
// happen within a year, the zero time is returned and cron never runs
// the job.
func (s Schedule) Next(now time.Time) time.Time {
	logger := s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	cal := s.Calendar.Clone()
	today := DateOf(now.In(cal.Location().TimeZone()))

	// start a day early; an event can fall after local midnight
	for i := -1; i <= scheduleHorizon; i++ {
		cal.SetDate(today.AddDays(i))
		next := cal.TimeOffset(s.Event(cal), s.Offset)
		if next.IsZero() {
			logger.Debug("no event", zap.String("schedule", s.Name), zap.Stringer("date", cal.Date()))
			continue
		}
		if next.After(now) {
			logger.Info("next event",
				zap.String("schedule", s.Name),
				zap.Duration("offset", s.Offset),
				zap.Time("at", next),
			)
			return next
		}
	}

	logger.Warn("event does not occur within a year", zap.String("schedule", s.Name), zap.Time("after", now))
	return time.Time{}
}

// ParseSchedule parses spec as "@event [offset]", such as "@sunset -18m",
// into a Schedule on cal. Any other spec is parsed as a standard five
// field cron expression.
func ParseSchedule(spec string, cal *ZmanimCalendar, logger *zap.Logger) (cron.Schedule, error) {
	fields := strings.Fields(spec)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty schedule")
	}

	name := strings.ToLower(strings.TrimPrefix(fields[0], "@"))
	event, ok := Events[name]
	if !strings.HasPrefix(fields[0], "@") || !ok {
		schedule, err := cron.ParseStandard(spec)
		if err != nil {
			return nil, fmt.Errorf("parse schedule %q: %w", spec, err)
		}
		return schedule, nil
	}

	if len(fields) > 2 {
		return nil, fmt.Errorf("parse schedule %q: unexpected %q", spec, fields[2])
	}

	var offset time.Duration
	if len(fields) == 2 {
		var err error
		offset, err = time.ParseDuration(fields[1])
		if err != nil {
			return nil, fmt.Errorf("parse %s offset: %w", name, err)
		}
	}

	return Schedule{
		Name:     spec,
		Event:    event,
		Offset:   offset,
		Calendar: cal,
		Logger:   logger,
	}, nil
}
