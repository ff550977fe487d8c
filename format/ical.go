package format

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/subtlepseudonym/zmanim"
)

const productID = "-//subtlepseudonym//zmanim//EN"

// ICalendar returns a calendar with a zero length event for each zman
// that has a time. Durations and events that do not happen are left out.
// stamp is used as every event's DTSTAMP.
func ICalendar(name string, days []zmanim.Zmanim, stamp time.Time) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)
	cal.SetXWRCalName(name)

	for _, zs := range days {
		for _, z := range zs {
			if z.IsDuration() || z.Time().IsZero() {
				continue
			}

			event := cal.AddEvent(eventID(z))
			event.SetDtStampTime(stamp)
			event.SetStartAt(z.Time())
			event.SetEndAt(z.Time())
			event.SetSummary(z.Label)
			if z.Description != "" {
				event.SetDescription(z.Description)
			}
			if name != "" {
				event.SetLocation(name)
			}
		}
	}
	return cal
}

// WriteICalendar serializes cal to w.
func WriteICalendar(w io.Writer, cal *ics.Calendar) error {
	if err := cal.SerializeTo(w); err != nil {
		return fmt.Errorf("serialize calendar: %w", err)
	}
	return nil
}

// eventID is stable for a given zman and day so that re-exported feeds
// update events instead of duplicating them.
func eventID(z zmanim.Zman) string {
	slug := strings.ToLower(strings.Join(strings.Fields(z.Label), "-"))
	return fmt.Sprintf("%s-%s@zmanim", slug, z.Time().Format("20060102"))
}
