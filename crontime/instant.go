package crontime

import (
	"fmt"
	"math"
	"time"
)

// maxMillis bounds numeric instants to ±100,000,000 days around the epoch.
const maxMillis = 8.64e15

// instantLayouts lists the string layouts accepted for start and end values,
// tried in order.
var instantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	time.DateOnly,
}

// toInstant converts a start or end value into a time.Time.
// Strings without an offset are read as UTC; numbers are Unix milliseconds.
func toInstant(value any) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		if v.IsZero() {
			return time.Time{}, dateConversionError("zero time")
		}
		return v, nil
	case *time.Time:
		if v == nil {
			return time.Time{}, dateConversionError("nil time")
		}
		return toInstant(*v)
	case string:
		for _, layout := range instantLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return t, nil
			}
		}
		return time.Time{}, dateConversionError(fmt.Sprintf("%q", v))
	case int:
		return time.UnixMilli(int64(v)).UTC(), nil
	case int64:
		return time.UnixMilli(v).UTC(), nil
	case float64:
		if math.IsNaN(v) || math.Abs(v) > maxMillis {
			return time.Time{}, dateConversionError(fmt.Sprintf("%v", v))
		}
		return time.UnixMilli(int64(v)).UTC(), nil
	default:
		return time.Time{}, dateConversionError(fmt.Sprintf("unsupported type %T", value))
	}
}
