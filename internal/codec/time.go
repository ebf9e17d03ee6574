package codec

import (
	"strings"
	"time"

	"github.com/listinterop/convertkit-go/internal/apierrors"
)

// TimestampLayout is RFC3339 with exactly three fractional digits and a
// numeric offset.
const TimestampLayout = "2006-01-02T15:04:05.000-07:00"

// ParseTimestamp parses a wire timestamp and returns it in UTC.
func ParseTimestamp(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, apierrors.Assertf("expected a non-empty timestamp")
	}

	normalized := value
	if strings.HasSuffix(value, "Z") || strings.HasSuffix(value, "z") {
		normalized = value[:len(value)-1] + "+00:00"
	}

	t, err := time.Parse(TimestampLayout, normalized)
	if err != nil {
		return time.Time{}, apierrors.Assertf("expected a timestamp in the form %s. Got: %q", TimestampLayout, value)
	}
	return t.UTC(), nil
}

// FormatTimestamp renders t in the wire format, always with a UTC offset.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
