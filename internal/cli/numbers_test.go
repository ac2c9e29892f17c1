package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumbers(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		ints   []int
		floats []float64
	}{
		{"integers", "3 1 2", []int{3, 1, 2}, nil},
		{"extra whitespace", "  5\t-2   7 ", []int{5, -2, 7}, nil},
		{"integral floats", "2.0 1 -3.0", []int{2, 1, -3}, nil},
		{"floats", "3.5 1 2", nil, []float64{3.5, 1, 2}},
		{"exponent", "1e2 0.5", nil, []float64{100, 0.5}},
		{"empty", "", []int{}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := ParseNumbers(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.ints, n.Ints)
			assert.Equal(t, tt.floats, n.Floats)
		})
	}
}

func TestParseNumbers_Errors(t *testing.T) {
	for _, line := range []string{"1 two 3", "NaN", "1 +Inf", "1,2"} {
		_, err := ParseNumbers(line)
		require.Error(t, err, line)
		var pe *ParseError
		require.True(t, errors.As(err, &pe), line)
		assert.NotEmpty(t, pe.Token)
	}

	_, err := ParseNumbers("1 two")
	assert.EqualError(t, err, `invalid number "two"`)
}

func TestNumbers(t *testing.T) {
	n, err := ParseNumbers("3 1 3 2")
	require.NoError(t, err)
	assert.Equal(t, 4, n.Len())
	assert.Equal(t, "[1 2 3 3]", n.Sorted().String())
	assert.Equal(t, "[1 2 3]", n.Sorted().Uniq().String())
	assert.Equal(t, "[3 1 3 2]", n.String(), "Sorted must not modify its receiver")

	f, err := ParseNumbers("2.5 -1 0.5")
	require.NoError(t, err)
	assert.Equal(t, "[-1 0.5 2.5]", f.Sorted().String())

	var empty Numbers
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, "[]", empty.Sorted().String())
}
