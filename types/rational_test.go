package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRationalFromString(t *testing.T) {
	tests := []struct {
		input          string
		expectedNum    int
		expectedDen    int
		expectingError bool
	}{
		{"16:9", 16, 9, false},
		{"16/9", 16, 9, false},
		{" 4:3 ", 4, 3, false},
		{"2", 2, 1, false},
		{"1.5", 3, 2, false},
		{"1.25", 5, 4, false},
		{"0.33333", 33333, 100000, false},
		{"0/1", 0, 1, false},
		{"1:0", 0, 0, true},
		{"", 0, 0, true},
		{"invalid", 0, 0, true},
		{"16:invalid", 0, 0, true},
		{"NaN", 0, 0, true},
		{"Inf", 0, 0, true},
		{"-inf", 0, 0, true},
		{"1e300", 0, 0, true},
	}

	for _, test := range tests {
		rational, err := RationalFromString(test.input)
		if test.expectingError {
			if err == nil {
				t.Errorf("Expected error for input %q, but got none", test.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("Unexpected error for input %q: %v", test.input, err)
			continue
		}
		if rational.Num != test.expectedNum || rational.Den != test.expectedDen {
			t.Errorf("For input %q, expected (%d/%d), but got (%d/%d)", test.input, test.expectedNum, test.expectedDen, rational.Num, rational.Den)
		}
	}
}

func TestRationalReduce(t *testing.T) {
	require.Equal(t, Rational{Num: 16, Den: 9}, Rational{Num: 1920, Den: 1080}.Reduce())
	require.Equal(t, Rational{Num: 4, Den: 3}, Rational{Num: 640, Den: 480}.Reduce())
	require.Equal(t, Rational{Num: 1, Den: 0}, Rational{Num: 7, Den: 0}.Reduce())
	require.Equal(t, Rational{}, Rational{}.Reduce())
}

func TestRationalJSON(t *testing.T) {
	b, err := Rational{Num: 16, Den: 9}.MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, `"16:9"`, string(b))

	var r Rational
	require.NoError(t, r.UnmarshalJSON([]byte(`"4/3"`)))
	require.Equal(t, Rational{Num: 4, Den: 3}, r)
	require.InDelta(t, 1.3333, r.Float64(), 0.001)
}
