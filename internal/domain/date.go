package domain

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used by forms, flags and documents.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string. Blank input yields (nil, nil).
func ParseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, &ValidationError{Field: "due date", Reason: fmt.Sprintf("%q is not a YYYY-MM-DD date", s)}
	}
	return &t, nil
}

// FormatDate renders t as YYYY-MM-DD, or "" when unset.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
