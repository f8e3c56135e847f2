package flags

import (
	"fmt"
	"time"
)

var dateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
	"02/01/2006",
}

// Date is a date flag
type Date struct {
	Time time.Time
}

// Type returns the date flag type
func (d Date) Type() string {
	return "Date"
}

func (d Date) String() string {
	if d.Time.IsZero() {
		return ""
	}
	return d.Time.Format(time.RFC3339)
}

// Set parses val with the first matching supported date format
func (d *Date) Set(val string) error {
	for _, format := range dateFormats {
		if t, err := time.Parse(format, val); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("unrecognized date string: %s", val)
}

// Ptr returns a pointer to the parsed time, or nil when no date was set
func (d Date) Ptr() *time.Time {
	if d.Time.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}
