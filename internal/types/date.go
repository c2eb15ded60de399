package types

import (
	"fmt"
	"strings"
	"time"
)

// FormatDate renders t as the 8-digit "YYYYMMDD" form used by the Date field.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses an 8-digit "YYYYMMDD" date string.
//
// Many files in the wild carry a blank or zero-filled date; those parse
// to the zero time without an error so callers can distinguish "unset"
// from "malformed".
func ParseDate(s string) (time.Time, error) {
	trimmed := strings.TrimRight(s, " \x00")
	if trimmed == "" || trimmed == strings.Repeat("0", len(trimmed)) {
		return time.Time{}, nil
	}

	t, err := time.Parse(DateLayout, trimmed)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}
