package crontime_test

import (
	"strings"
	"testing"
	"time"

	"github.com/adhocore/gronx"
	"github.com/google/go-cmp/cmp"
	"github.com/gorhill/cronexpr"
	"github.com/reugn/go-crontime/crontime"
	"github.com/reugn/go-crontime/internal/assert"
)

// The patterns below leave day-of-month or day-of-week unrestricted, where
// the AND semantics of CronTime coincide with the classic cron rules.
var referencePatterns = []string{
	"*/15 * * * * *",
	"0 */5 9-17 * * 1-5",
	"30 0 0 1,15 * *",
	"0 0 12 * 2,6,10 0",
	"5-10/2 59 23 * * *",
	"0 30 6 29 2 *",
	"0 0 0 31 * *",
	"0 15 10 * 1-3 6",
	"7 7 7 7 7 *",
	"@weekly",
	"@monthly",
}

func TestCronTimeMatchesCronexpr(t *testing.T) {
	t.Parallel()
	starts := []string{
		"1970-01-02T00:00:00Z",
		"2000-02-28T23:59:59Z",
		"2023-06-15T13:47:21Z",
	}
	zones := []string{"", "+0530", "-0800"}

	for _, pattern := range referencePatterns {
		for _, zone := range zones {
			for _, start := range starts {
				pattern, zone, start := pattern, zone, start
				t.Run(strings.Join([]string{pattern, zone, start}, "|"), func(t *testing.T) {
					t.Parallel()
					cronTime, err := crontime.New(pattern,
						crontime.WithStart(start),
						crontime.WithZone(zone),
					)
					assert.IsNil(t, err)

					loc, err := crontime.ParseZone(zone)
					assert.IsNil(t, err)
					expr, err := cronexpr.Parse(cronTime.Pattern() + " *")
					assert.IsNil(t, err)

					// cronexpr returns instants strictly after the given one
					from := utc(start).Add(-time.Second).In(loc)
					want := expr.NextN(from, 10)
					got := cronTime.NextPortion(10)
					if diff := cmp.Diff(want, got); diff != "" {
						t.Errorf("matches -cronexpr +crontime\n%s", diff)
					}
				})
			}
		}
	}
}

func TestCronTimeMatchesGronx(t *testing.T) {
	t.Parallel()
	tests := []struct {
		pattern string
		classic string
	}{
		{"0 */5 9-17 * * 1-5", "*/5 9-17 * * 1-5"},
		{"0 0 12 * 2,6,10 0", "0 12 * 2,6,10 0"},
		{"0 15 10 * 1-3 6", "15 10 * 1-3 6"},
		{"0 0 0 1,15 * *", "0 0 1,15 * *"},
		{"0 59 23 * * *", "59 23 * * *"},
	}

	for _, tt := range tests {
		test := tt
		t.Run(test.classic, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, gronx.IsValid(test.classic), true)

			cronTime, err := crontime.New(test.pattern,
				crontime.WithStart("2024-01-01T00:00:00Z"))
			assert.IsNil(t, err)

			ref := utc("2024-01-01T00:00:00Z")
			for i := 0; i < 5; i++ {
				want, err := gronx.NextTickAfter(test.classic, ref, true)
				assert.IsNil(t, err)
				got, ok := cronTime.Next()
				assert.Equal(t, ok, true)
				if !got.Equal(want) {
					t.Fatalf("tick %d: crontime %s, gronx %s", i, got, want)
				}
				ref = want.Add(time.Minute)
			}
		})
	}
}
