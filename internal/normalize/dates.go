package normalize

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the only calendar-date format accepted in data and in CLI bounds.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date after trimming whitespace.
// Returns nil if the input is empty or does not match the layout.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

// IsDate reports whether s is a well-formed YYYY-MM-DD calendar date.
func IsDate(s string) bool {
	return ParseDate(s) != nil
}

// ParseDateBound parses an optional range bound. An empty string is an
// unset bound (nil, nil); anything else must be YYYY-MM-DD.
func ParseDateBound(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t := ParseDate(s)
	if t == nil {
		return nil, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}
