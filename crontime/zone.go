package crontime

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseZone returns a fixed-offset location for a signed UTC offset in one
// of the forms "+04", "+0400", "-04:10" or "Z". An empty string yields UTC.
func ParseZone(zone string) (*time.Location, error) {
	if zone == "" || zone == "Z" || zone == "z" {
		return time.UTC, nil
	}

	var sign int
	switch zone[0] {
	case '+':
		sign = 1
	case '-':
		sign = -1
	default:
		return nil, inputTypeError(fmt.Sprintf("zone offset must be signed: %q", zone))
	}

	digits := strings.Replace(zone[1:], ":", "", 1)
	if !isDigits(digits) || (len(digits) != 2 && len(digits) != 4) {
		return nil, inputTypeError(fmt.Sprintf("malformed zone offset: %q", zone))
	}

	hours, _ := strconv.Atoi(digits[:2])
	var minutes int
	if len(digits) == 4 {
		minutes, _ = strconv.Atoi(digits[2:])
	}
	if hours > 23 || minutes > 59 {
		return nil, rangeError(fmt.Sprintf("zone offset: %q", zone))
	}

	offset := sign * (hours*3600 + minutes*60)
	return time.FixedZone(formatOffset(offset), offset), nil
}

// formatOffset formats an offset in seconds east of UTC as ±HHMM.
func formatOffset(offset int) string {
	sign := '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	return fmt.Sprintf("%c%02d%02d", sign, offset/3600, offset%3600/60)
}
