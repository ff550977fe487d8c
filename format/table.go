// Package format renders calendar results for people and other programs.
// It only reads from the zmanim package and is never imported by it.
package format

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/subtlepseudonym/zmanim"
)

const (
	timeFormat = "15:04:05"
	absent     = "-"
)

// Table writes one line per zman: label, local time or duration, and
// description.
func Table(w io.Writer, zs zmanim.Zmanim) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, z := range zs {
		_, err := fmt.Fprintf(tw, "%s\t%s\t%s\n", z.Label, Value(z), z.Description)
		if err != nil {
			return fmt.Errorf("write %s: %w", z.Label, err)
		}
	}
	return tw.Flush()
}

// Value formats a zman's time of day or duration. Events that do not
// happen are shown as "-".
func Value(z zmanim.Zman) string {
	if z.IsDuration() {
		return z.Duration().Round(time.Second).String()
	}
	if z.Time().IsZero() {
		return absent
	}
	return z.Time().Format(timeFormat)
}

// Header writes a title line for a day's table.
func Header(w io.Writer, name string, date zmanim.Date, tz *time.Location, calculator string) error {
	_, err := fmt.Fprintf(w, "%s  %s  %s  (%s)\n", name, date, tz, calculator)
	return err
}
