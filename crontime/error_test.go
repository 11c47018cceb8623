package crontime

import (
	"errors"
	"fmt"
	"testing"

	"github.com/reugn/go-crontime/internal/assert"
)

func TestErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		err      error
		sentinel error
	}{
		{inputTypeError("nil logger"), ErrInputType},
		{structureError("1/1/1"), ErrStructure},
		{rangeError("70"), ErrRange},
		{inversedRangeError("9-7"), ErrInversedRange},
		{dateConversionError("NaN"), ErrDateConversion},
	}

	for _, tt := range tests {
		test := tt
		t.Run(test.sentinel.Error(), func(t *testing.T) {
			t.Parallel()
			if !errors.Is(test.err, test.sentinel) {
				t.Fatalf("error must match %v", test.sentinel)
			}
			assert.Equal(t, errors.Unwrap(test.err), test.sentinel)
			assert.Contains(t, test.err.Error(), fmt.Sprintf("%s: ", test.sentinel))
		})
	}
}
