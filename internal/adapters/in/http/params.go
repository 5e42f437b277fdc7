package http

import (
	"fmt"
	"time"

	"boutique/internal/pkg/errs"
)

const dateLayout = "2006-01-02"

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// parseTimeParam accepts an RFC 3339 timestamp, a timestamp without zone
// (taken as UTC) or a bare date. dateOnly reports the last form.
func parseTimeParam(name, value string) (t time.Time, dateOnly bool, err error) {
	for _, layout := range timestampLayouts {
		if t, err = time.Parse(layout, value); err == nil {
			return t, false, nil
		}
	}
	if t, err = time.Parse(dateLayout, value); err == nil {
		return t, true, nil
	}
	return time.Time{}, false, errs.NewValueIsInvalidErrorWithCause(name,
		fmt.Errorf("%q is neither a date nor a timestamp", value))
}

func optionalTime(name string, value *string) (*time.Time, bool, error) {
	if value == nil || *value == "" {
		return nil, false, nil
	}
	t, dateOnly, err := parseTimeParam(name, *value)
	if err != nil {
		return nil, false, err
	}
	return &t, dateOnly, nil
}

// endOfDay returns the last instant of the calendar day of t.
func endOfDay(t time.Time) time.Time {
	return t.AddDate(0, 0, 1).Add(-time.Nanosecond)
}

func valueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
