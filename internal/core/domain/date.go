package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire and display format for entry dates.
const DateLayout = "02/01/2006"

// isoDateLayout is what an HTML date input submits.
const isoDateLayout = "2006-01-02"

// Date is a calendar date without a time component.
type Date struct {
	t time.Time
}

// NewDate builds a Date at midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate accepts DD/MM/YYYY, and YYYY-MM-DD as submitted by date inputs.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, ErrInvalidDate
	}
	for _, layout := range []string{DateLayout, isoDateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{t: t}, nil
		}
	}
	return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// String formats the date as DD/MM/YYYY. The zero Date formats as "".
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

// ISO formats the date as YYYY-MM-DD for date inputs.
func (d Date) ISO() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(isoDateLayout)
}

func (d Date) IsZero() bool { return d.t.IsZero() }
