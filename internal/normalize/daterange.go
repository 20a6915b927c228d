package normalize

import (
	"fmt"
	"time"
)

// Query windows for historical endpoints. When the caller supplies neither
// bound, the extended window is substituted up front instead of the default
// one; the originally implied 30-day window is not also tried.
const (
	DefaultWindow  = 30 * 24 * time.Hour
	ExtendedWindow = 90 * 24 * time.Hour
)

// DateRange is the effective query window forwarded upstream.
type DateRange struct {
	Start time.Time
	End   time.Time

	// Extended is set when the extended-window substitution was applied
	Extended bool
}

// ResolveDateRange derives the effective window from optional caller-supplied
// bounds. Supplied bounds are honored independently; a missing bound defaults
// to the trailing 30-day window edge. When both are missing the extended
// 90-day window ending at now is used instead.
func ResolveDateRange(startStr, endStr string, now time.Time) (DateRange, error) {
	if startStr == "" && endStr == "" {
		return DateRange{
			Start:    now.Add(-ExtendedWindow),
			End:      now,
			Extended: true,
		}, nil
	}

	r := DateRange{
		Start: now.Add(-DefaultWindow),
		End:   now,
	}

	if startStr != "" {
		t, err := parseDate(startStr)
		if err != nil {
			return DateRange{}, fmt.Errorf("invalid startDate %q: %w", startStr, err)
		}
		r.Start = t
	}
	if endStr != "" {
		t, err := parseDate(endStr)
		if err != nil {
			return DateRange{}, fmt.Errorf("invalid endDate %q: %w", endStr, err)
		}
		r.End = t
	}
	return r, nil
}

// parseDate accepts RFC3339 timestamps and bare calendar dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
