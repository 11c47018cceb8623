package crontime

import (
	"testing"

	"github.com/reugn/go-crontime/internal/assert"
)

func TestParsePoint(t *testing.T) {
	t.Parallel()
	tests := []struct {
		token    string
		max      int
		expected int
	}{
		{"*", 59, 60},
		{"*", 23, 24},
		{"*", 0, 1},
		{"*/2", 59, 30},
		{"2-8", 59, 7},
		{"2-8/2", 59, 4},
		{"1/2", 59, 1},
		{"11-50/2", 59, 20},
		{"0-59/59", 59, 2},
		{"5-5/3", 59, 1},
	}

	for _, tt := range tests {
		test := tt
		t.Run(test.token, func(t *testing.T) {
			t.Parallel()
			values, err := parsePoint(test.token, test.max)
			assert.IsNil(t, err)
			assert.Equal(t, len(values), test.expected)
		})
	}
}

func TestParsePointValues(t *testing.T) {
	values, err := parsePoint("*", 7)
	assert.IsNil(t, err)
	assert.Equal(t, values, []int{0, 1, 2, 3, 4, 5, 6, 7})

	values, err = parsePoint("2-8/2", 59)
	assert.IsNil(t, err)
	assert.Equal(t, values, []int{2, 4, 6, 8})

	values, err = parsePoint("11-50/13", 59)
	assert.IsNil(t, err)
	assert.Equal(t, values, []int{11, 24, 37, 50})

	values, err = parsePoint("42", 59)
	assert.IsNil(t, err)
	assert.Equal(t, values, []int{42})
}

func TestParsePointError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		token    string
		max      int
		expected error
	}{
		{"9-7", 59, ErrInversedRange},
		{"9-7/2", 59, ErrInversedRange},
		{"70", 59, ErrRange},
		{"1-70", 59, ErrRange},
		{"60", 59, ErrRange},
		{"99999999999999999999", 59, ErrRange},
		{"", 59, ErrStructure},
		{"1/1/1", 59, ErrStructure},
		{"*-1", 59, ErrStructure},
		{"1-Q", 59, ErrStructure},
		{"1-2/Q", 59, ErrStructure},
		{"1-2-3", 59, ErrStructure},
		{"-1", 59, ErrStructure},
		{"*/0", 59, ErrStructure},
		{"*/-2", 59, ErrStructure},
		{"*/", 59, ErrStructure},
		{" 1", 59, ErrStructure},
		{"MON", 7, ErrStructure},
		{"L", 31, ErrStructure},
		{"*", -1, ErrInputType},
	}

	for _, tt := range tests {
		test := tt
		t.Run(test.token, func(t *testing.T) {
			t.Parallel()
			_, err := parsePoint(test.token, test.max)
			assert.ErrorIs(t, err, test.expected)
		})
	}
}
