package types

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate parses an ISO date string; full RFC3339 timestamps are accepted
// and truncated to their date part. Nil or empty input yields nil.
func ParseDate(v *string) (*time.Time, error) {
	if v == nil {
		return nil, nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil, nil
	}
	if len(s) > len(dateLayout) {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			d := t.UTC().Truncate(24 * time.Hour)
			return &d, nil
		}
		s = s[:len(dateLayout)]
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatDate renders a date pointer back to its ISO form, nil-preserving.
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
