package playlist

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrMalformedDuration is returned when a display duration cannot be parsed.
var ErrMalformedDuration = errors.New("malformed duration")

// ParseDuration converts "m:ss" or "h:mm:ss" into whole seconds.
// Seconds (and minutes when hours are present) must be two digits below 60.
// Signed parts and totals that overflow an int are malformed.
func ParseDuration(text string) (int, error) {
	parts := strings.Split(strings.TrimSpace(text), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedDuration, text)
	}

	total := 0
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || strings.HasPrefix(p, "+") || strings.HasPrefix(p, "-") {
			return 0, fmt.Errorf("%w: %q", ErrMalformedDuration, text)
		}
		if i > 0 && (len(p) != 2 || n >= 60) {
			return 0, fmt.Errorf("%w: %q", ErrMalformedDuration, text)
		}
		if total > (math.MaxInt-n)/60 {
			return 0, fmt.Errorf("%w: %q out of range", ErrMalformedDuration, text)
		}
		total = total*60 + n
	}
	return total, nil
}

// FormatDuration renders whole seconds as "m:ss", or "h:mm:ss" past an hour.
func FormatDuration(seconds int) string {
	seconds = max(seconds, 0)
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
