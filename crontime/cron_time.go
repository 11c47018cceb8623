package crontime

import (
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/reugn/go-crontime/logger"
)

// synonyms maps the supported pre-defined expressions to the six-field
// patterns they stand for.
var synonyms = map[string]string{
	"@yearly":   "0 0 0 1 1 *",
	"@annually": "0 0 0 1 1 *",
	"@monthly":  "0 0 0 1 * *",
	"@weekly":   "0 0 0 * * 0",
	"@daily":    "0 0 0 * * *",
	"@hourly":   "0 0 * * * *",
}

// CronTime produces the instants matching a cron pattern in chronological
// order, within optional start and end bounds and a fixed zone offset.
//
// The pattern consists of six fields separated by spaces:
//
//	┌──────────────── second (0 - 59)
//	│  ┌───────────── minute (0 - 59)
//	│  │  ┌────────── hour (0 - 23)
//	│  │  │  ┌─────── day of month (1 - 31)
//	│  │  │  │  ┌──── month (1 - 12)
//	│  │  │  │  │  ┌─ day of week (0 - 7) (0 and 7 represent Sunday)
//	│  │  │  │  │  │
//	*  *  *  *  *  *
//
// Each field is a comma-separated list of "*", single values and ranges,
// optionally followed by a "/step". The @yearly, @annually, @monthly,
// @weekly, @daily and @hourly synonyms may replace the whole pattern.
//
// A day matches only if its month, day of month and day of week all match.
//
// The search state is kept between calls, so successive calls to Next
// continue where the previous one stopped. Without an end bound a pattern
// that never matches makes Next loop forever.
//
// CronTime is not safe for concurrent use.
type CronTime struct {
	pattern  string
	sections [6]*section

	start    time.Time
	hasStart bool
	end      time.Time
	hasEnd   bool
	zone     string
	loc      *time.Location
	logger   logger.Logger

	position time.Time
	// matched is set when position holds a returned match
	matched bool
	search  *search
}

// search is the resumable state of an in-progress walk over calendar days.
// The hour, minute and second cursors live in the sections themselves.
type search struct {
	// day is the midnight of the current calendar day in UTC;
	// only its date is used.
	day time.Time
	// inDay is set while the cursors enumerate a candidate day
	inDay bool
}

// Option configures a CronTime on construction.
type Option func(*CronTime) error

// WithStart sets the instant to start searching from.
// The value must be convertible into a time.Time, see SetStart.
func WithStart(value any) Option {
	return func(ct *CronTime) error {
		return ct.SetStart(value)
	}
}

// WithEnd sets the last instant a match may have.
// The value must be convertible into a time.Time, see SetEnd.
func WithEnd(value any) Option {
	return func(ct *CronTime) error {
		return ct.SetEnd(value)
	}
}

// WithZone sets the fixed zone offset the pattern is evaluated in,
// e.g. "+0400" or "-04:10".
func WithZone(zone string) Option {
	return func(ct *CronTime) error {
		ct.zone = zone
		return nil
	}
}

// WithLogger sets the logger used by the CronTime.
func WithLogger(l logger.Logger) Option {
	return func(ct *CronTime) error {
		if l == nil {
			return inputTypeError("nil logger")
		}
		ct.logger = l
		return nil
	}
}

// New parses the pattern and returns a CronTime positioned at the start
// instant, or at the Unix epoch if no start is given.
func New(pattern string, opts ...Option) (*CronTime, error) {
	expanded := pattern
	if value, ok := synonyms[pattern]; ok {
		expanded = value
	}

	fields := strings.Fields(expanded)
	if len(fields) != len(fieldMax) {
		return nil, structureError(
			fmt.Sprintf("pattern must have 6 fields separated by spaces, got %q", pattern))
	}

	ct := &CronTime{
		pattern: expanded,
		loc:     time.UTC,
		logger:  logger.NoOpLogger{},
	}
	for i, field := range fields {
		s, err := newSection(field, fieldKind(i))
		if err != nil {
			return nil, err
		}
		ct.sections[i] = s
	}

	for _, opt := range opts {
		if err := opt(ct); err != nil {
			return nil, err
		}
	}
	ct.resolveZone()

	ct.logger.Debug("Parsed cron pattern", "pattern", ct.pattern, "zone", ct.zone)
	ct.Rewind()
	return ct, nil
}

// SetStart sets the instant to start searching from. It accepts a
// time.Time, a *time.Time, a string in RFC 3339 or "2006-01-02 15:04:05"
// form (UTC unless an offset is given), or a number of Unix milliseconds.
// It fails with ErrDateConversion otherwise, leaving the CronTime unchanged.
// The new start applies from the next call to Rewind.
func (ct *CronTime) SetStart(value any) error {
	t, err := toInstant(value)
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}
	ct.start, ct.hasStart = t, true
	return nil
}

// Start returns the start instant and whether it has been set.
func (ct *CronTime) Start() (time.Time, bool) {
	return ct.start, ct.hasStart
}

// SetEnd sets the last instant a match may have. It accepts the same values
// as SetStart and fails with ErrDateConversion otherwise, leaving the
// CronTime unchanged.
func (ct *CronTime) SetEnd(value any) error {
	t, err := toInstant(value)
	if err != nil {
		return fmt.Errorf("end: %w", err)
	}
	ct.end, ct.hasEnd = t, true
	return nil
}

// End returns the end instant and whether it has been set.
func (ct *CronTime) End() (time.Time, bool) {
	return ct.end, ct.hasEnd
}

// SetZone sets the fixed zone offset the pattern is evaluated in.
// The zone is not validated here: a zone ParseZone rejects is logged
// and evaluated as UTC.
func (ct *CronTime) SetZone(zone string) {
	ct.zone = zone
	ct.resolveZone()
}

// Zone returns the zone as it was set.
func (ct *CronTime) Zone() string {
	return ct.zone
}

func (ct *CronTime) resolveZone() {
	loc, err := ParseZone(ct.zone)
	if err != nil {
		ct.logger.Warn("Invalid zone, evaluating in UTC", "zone", ct.zone, "error", err)
		loc = time.UTC
	}
	ct.loc = loc
}

// Rewind moves the position back to the start instant (or the Unix epoch)
// and discards the search in progress.
func (ct *CronTime) Rewind() {
	ct.position = time.Unix(0, 0).In(ct.loc)
	if ct.hasStart {
		ct.position = ct.start.In(ct.loc)
	}
	ct.matched = false
	ct.search = nil
	for _, s := range ct.sections {
		s.rewind()
	}
}

// Position returns the last returned match, or the instant the search
// starts from if nothing has been returned since the last Rewind.
func (ct *CronTime) Position() time.Time {
	return ct.position
}

// Next returns the next matching instant. It returns false once no match
// remains before the end instant; later calls check the end again.
func (ct *CronTime) Next() (time.Time, bool) {
	if ct.search == nil {
		if ct.hasEnd && ct.position.After(ct.end) {
			ct.logger.Debug("Position is past the end",
				"position", ct.position, "end", ct.end)
			return time.Time{}, false
		}
		ct.search = ct.newSearch()
	}

	next, ok := ct.advance()
	if !ok {
		ct.logger.Trace("Search exhausted", "pattern", ct.pattern, "end", ct.end)
		ct.search = nil
		return time.Time{}, false
	}
	return next, true
}

// NextPortion returns up to size next matching instants. It returns fewer
// values if the matches run out.
func (ct *CronTime) NextPortion(size int) []time.Time {
	portion := make([]time.Time, 0, min(max(size, 0), 1024))
	for len(portion) < size {
		next, ok := ct.Next()
		if !ok {
			break
		}
		portion = append(portion, next)
	}
	return portion
}

// CountPortion advances over up to size next matching instants and
// returns how many there were.
func (ct *CronTime) CountPortion(size int) int {
	count := 0
	for count < size {
		if _, ok := ct.Next(); !ok {
			break
		}
		count++
	}
	return count
}

// All returns an iterator over the remaining matching instants.
// Each iteration step advances the CronTime like a call to Next.
func (ct *CronTime) All() iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for {
			next, ok := ct.Next()
			if !ok || !yield(next) {
				return
			}
		}
	}
}

// Pattern returns the pattern with synonyms expanded.
func (ct *CronTime) Pattern() string {
	return ct.pattern
}

// String returns the pattern, followed by the zone offset in ±HHMM form
// if a zone is set.
func (ct *CronTime) String() string {
	if ct.zone == "" {
		return ct.pattern
	}
	zone := ct.zone
	if loc, err := ParseZone(ct.zone); err == nil {
		_, offset := time.Unix(0, 0).In(loc).Zone()
		zone = formatOffset(offset)
	}
	return fmt.Sprintf("%s | %s", ct.pattern, zone)
}

func (ct *CronTime) newSearch() *search {
	year, month, day := ct.position.In(ct.loc).Date()
	return &search{day: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// isCandidate reports whether the month, day of month and day of week
// of the date are all allowed.
func (ct *CronTime) isCandidate(date time.Time) bool {
	return ct.sections[monthField].has(int(date.Month())-1) &&
		ct.sections[dayOfMonthField].has(date.Day()) &&
		ct.sections[dayOfWeekField].has(int(date.Weekday()))
}

// advance resumes the search and returns the next match.
func (ct *CronTime) advance() (time.Time, bool) {
	second := ct.sections[secondField]
	minute := ct.sections[minuteField]
	hour := ct.sections[hourField]
	s := ct.search

	for {
		year, month, day := s.day.Date()
		if !s.inDay {
			if ct.hasEnd && time.Date(year, month, day, 0, 0, 0, 0, ct.loc).After(ct.end) {
				return time.Time{}, false
			}
			if !ct.isCandidate(s.day) {
				s.day = s.day.AddDate(0, 0, 1)
				continue
			}
			s.inDay = true
			hour.rewind()
			minute.rewind()
			second.rewind()
		}

		for h, ok := hour.current(); ok; h, ok = hour.current() {
			for m, ok := minute.current(); ok; m, ok = minute.current() {
				for sec, ok := second.current(); ok; sec, ok = second.current() {
					second.advance()
					candidate := time.Date(year, month, day, h, m, sec, 0, ct.loc)
					if candidate.Before(ct.position) ||
						(ct.matched && candidate.Equal(ct.position)) {
						continue
					}
					if ct.hasEnd && candidate.After(ct.end) {
						return time.Time{}, false
					}
					ct.position = candidate
					ct.matched = true
					return candidate, true
				}
				second.rewind()
				minute.advance()
			}
			minute.rewind()
			hour.advance()
		}
		hour.rewind()

		s.inDay = false
		s.day = s.day.AddDate(0, 0, 1)
	}
}
