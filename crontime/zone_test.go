package crontime

import (
	"testing"
	"time"

	"github.com/reugn/go-crontime/internal/assert"
)

func TestParseZone(t *testing.T) {
	t.Parallel()
	tests := []struct {
		zone   string
		offset int
	}{
		{"", 0},
		{"Z", 0},
		{"+00", 0},
		{"+04", 4 * 3600},
		{"+0400", 4 * 3600},
		{"+04:00", 4 * 3600},
		{"-0410", -(4*3600 + 10*60)},
		{"+0530", 5*3600 + 30*60},
		{"-12", -12 * 3600},
		{"+2359", 23*3600 + 59*60},
	}

	for _, tt := range tests {
		test := tt
		t.Run(test.zone, func(t *testing.T) {
			t.Parallel()
			loc, err := ParseZone(test.zone)
			assert.IsNil(t, err)
			_, offset := time.Date(2000, 1, 1, 0, 0, 0, 0, loc).Zone()
			assert.Equal(t, offset, test.offset)
		})
	}
}

func TestParseZoneError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		zone     string
		expected error
	}{
		{"0400", ErrInputType},
		{"+4", ErrInputType},
		{"+040", ErrInputType},
		{"+04x0", ErrInputType},
		{"+04::00", ErrInputType},
		{"UTC", ErrInputType},
		{"Europe/Berlin", ErrInputType},
		{"+2500", ErrRange},
		{"-0460", ErrRange},
	}

	for _, tt := range tests {
		test := tt
		t.Run(test.zone, func(t *testing.T) {
			t.Parallel()
			_, err := ParseZone(test.zone)
			assert.ErrorIs(t, err, test.expected)
		})
	}
}

func TestFormatOffset(t *testing.T) {
	assert.Equal(t, formatOffset(0), "+0000")
	assert.Equal(t, formatOffset(4*3600), "+0400")
	assert.Equal(t, formatOffset(-(4*3600 + 10*60)), "-0410")
	assert.Equal(t, formatOffset(5*3600+45*60), "+0545")
}
