package crontime

import (
	"fmt"
	"strconv"
	"strings"
)

// parsePoint returns the ascending list of values denoted by a single
// comma-separated token of a cron field, e.g. "*", "5", "1-10" or "1-10/3".
func parsePoint(token string, max int) ([]int, error) {
	if max < 0 {
		return nil, inputTypeError(fmt.Sprintf("field max must be non-negative, got %d", max))
	}

	base, stepStr, stepped := strings.Cut(token, "/")
	if stepped && strings.Contains(stepStr, "/") {
		return nil, structureError(token)
	}

	from, to, err := parseInterval(base, max)
	if err != nil {
		return nil, err
	}

	if !stepped {
		return fillRange(from, to), nil
	}

	step, err := strconv.Atoi(stepStr)
	if err != nil || step < 1 {
		return nil, structureError(token)
	}
	return fillStep(from, to, step), nil
}

// parseInterval returns the inclusive bounds of the base part of a token.
func parseInterval(base string, max int) (int, int, error) {
	if base == "*" {
		return 0, max, nil
	}

	if isDigits(base) {
		value, err := strconv.Atoi(base)
		if err != nil || value > max {
			return 0, 0, rangeError(base)
		}
		return value, value, nil
	}

	fromStr, toStr, ok := strings.Cut(base, "-")
	if !ok || !isDigits(fromStr) || !isDigits(toStr) {
		return 0, 0, structureError(base)
	}

	// digits-only strings fail to convert only on overflow
	from, fromErr := strconv.Atoi(fromStr)
	to, toErr := strconv.Atoi(toStr)
	if fromErr != nil || toErr != nil {
		return 0, 0, rangeError(base)
	}
	if from > to {
		return 0, 0, inversedRangeError(base)
	}
	if to > max {
		return 0, 0, rangeError(base)
	}
	return from, to, nil
}

// fillRange returns every integer in [from, to].
func fillRange(from, to int) []int {
	values := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		values = append(values, i)
	}
	return values
}

// fillStep returns every from + k*step in [from, to].
func fillStep(from, to, step int) []int {
	values := make([]int, 0, (to-from)/step+1)
	for i := from; ; i += step {
		values = append(values, i)
		if to-i < step {
			return values
		}
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
