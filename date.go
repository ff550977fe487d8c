package zmanim

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

const dateString = "2006-01-02"

// Date is a calendar day with no time of day or zone attached.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the Date for year, month and day, rejecting days that
// do not exist such as February 30.
func NewDate(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, fmt.Errorf("invalid date %04d-%02d-%02d", year, int(month), day)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// ParseDate parses a date in YYYY-MM-DD form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateString, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date: %w", err)
	}
	return DateOf(t), nil
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// AddDays returns the date n days after d; n may be negative.
func (d Date) AddDays(n int) Date {
	return DateOf(d.Midnight(time.UTC).AddDate(0, 0, n))
}

// Midnight returns the start of d in loc.
func (d Date) Midnight(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) String() string {
	return d.Midnight(time.UTC).Format(dateString)
}

// Dates returns count consecutive dates starting at start.
func Dates(start Date, count int) ([]Date, error) {
	if count < 1 {
		return nil, fmt.Errorf("date count must be positive, got %d", count)
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.DAILY,
		Dtstart: start.Midnight(time.UTC),
		Count:   count,
	})
	if err != nil {
		return nil, fmt.Errorf("daily rule: %w", err)
	}

	occurrences := rule.All()
	dates := make([]Date, 0, len(occurrences))
	for _, t := range occurrences {
		dates = append(dates, DateOf(t))
	}
	return dates, nil
}
