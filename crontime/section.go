package crontime

import (
	"fmt"
	"slices"
	"strings"
)

// fieldKind identifies one of the six cron fields.
//
//	<second> <minute> <hour> <day-of-month> <month> <day-of-week>
type fieldKind int

const (
	secondField fieldKind = iota
	minuteField
	hourField
	dayOfMonthField
	monthField
	dayOfWeekField
)

// fieldMax holds the maximum valid value of each field.
var fieldMax = [...]int{
	secondField:     59,
	minuteField:     59,
	hourField:       23,
	dayOfMonthField: 31,
	monthField:      12,
	dayOfWeekField:  7, // 0 and 7 are both Sunday
}

var fieldNames = [...]string{
	secondField:     "second",
	minuteField:     "minute",
	hourField:       "hour",
	dayOfMonthField: "day-of-month",
	monthField:      "month",
	dayOfWeekField:  "day-of-week",
}

func (k fieldKind) String() string {
	return fieldNames[k]
}

// section is the set of allowed values of a single cron field, together
// with a cursor used to step through the values in ascending order.
type section struct {
	kind     fieldKind
	set      []int
	position int
}

// newSection parses a whole field string, which may hold several
// comma-separated tokens.
func newSection(field string, kind fieldKind) (*section, error) {
	seen := make(map[int]struct{})
	for _, token := range strings.Split(field, ",") {
		values, err := parsePoint(token, fieldMax[kind])
		if err != nil {
			return nil, fmt.Errorf("%s field: %w", kind, err)
		}
		for _, value := range values {
			seen[value] = struct{}{}
		}
	}

	// align with time.Month and time.Weekday conventions
	switch kind {
	case monthField:
		normalized := make(map[int]struct{}, len(seen))
		for value := range seen {
			if value >= 1 {
				value--
			}
			normalized[value] = struct{}{}
		}
		seen = normalized
	case dayOfWeekField:
		if _, ok := seen[7]; ok {
			delete(seen, 7)
			seen[0] = struct{}{}
		}
	}

	if len(seen) == 0 {
		return nil, structureError(fmt.Sprintf("%s field is empty", kind))
	}

	set := make([]int, 0, len(seen))
	for value := range seen {
		set = append(set, value)
	}
	slices.Sort(set)

	return &section{kind: kind, set: set}, nil
}

// has reports whether the value is allowed by the section.
func (s *section) has(value int) bool {
	_, found := slices.BinarySearch(s.set, value)
	return found
}

// values returns a copy of the allowed values.
func (s *section) values() []int {
	return slices.Clone(s.set)
}

// current returns the value under the cursor and false when the cursor
// has passed the last value.
func (s *section) current() (int, bool) {
	if s.position >= len(s.set) {
		return 0, false
	}
	return s.set[s.position], true
}

// advance moves the cursor to the next value.
func (s *section) advance() {
	if s.position < len(s.set) {
		s.position++
	}
}

// rewind moves the cursor back to the first value.
func (s *section) rewind() {
	s.position = 0
}
