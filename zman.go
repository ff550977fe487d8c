package zmanim

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Zman is a labeled time of day or a labeled length of time, such as a
// temporal hour. Exactly one of the two is set.
type Zman struct {
	Label       string
	Description string

	when       time.Time
	duration   time.Duration
	isDuration bool
}

// NewZman returns a Zman for an instant. t may be the zero time if the
// event does not happen.
func NewZman(label string, t time.Time) Zman {
	return Zman{Label: label, when: t}
}

// NewDurationZman returns a Zman for a length of time.
func NewDurationZman(label string, d time.Duration) Zman {
	return Zman{Label: label, duration: d, isDuration: true}
}

func (z Zman) WithDescription(description string) Zman {
	z.Description = description
	return z
}

// Time is zero for a duration Zman or an event that does not happen.
func (z Zman) Time() time.Time {
	return z.when
}

// Duration is zero for an instant Zman.
func (z Zman) Duration() time.Duration {
	return z.duration
}

func (z Zman) IsDuration() bool {
	return z.isDuration
}

func (z Zman) String() string {
	switch {
	case z.isDuration:
		return fmt.Sprintf("%s: %s", z.Label, z.duration)
	case z.when.IsZero():
		return fmt.Sprintf("%s: none", z.Label)
	default:
		return fmt.Sprintf("%s: %s", z.Label, z.when.Format(time.RFC3339))
	}
}

// CompareByTime orders by instant. Durations and missing times sort as
// the zero time, ahead of every real instant.
func CompareByTime(a, b Zman) int {
	return a.when.Compare(b.when)
}

// CompareByLabel orders by label; a missing label is the empty string.
func CompareByLabel(a, b Zman) int {
	return strings.Compare(a.Label, b.Label)
}

// CompareByDuration orders by duration. Instants sort as a zero duration.
func CompareByDuration(a, b Zman) int {
	return cmp.Compare(a.duration, b.duration)
}

// Zmanim is a list of Zman that can be sorted in place. Sorts are stable
// so equal keys keep their relative order.
type Zmanim []Zman

func (zs Zmanim) SortByTime() {
	slices.SortStableFunc(zs, CompareByTime)
}

func (zs Zmanim) SortByLabel() {
	slices.SortStableFunc(zs, CompareByLabel)
}

func (zs Zmanim) SortByDuration() {
	slices.SortStableFunc(zs, CompareByDuration)
}
