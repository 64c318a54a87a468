package grading

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToNumber(t *testing.T) {
	tests := []struct {
		name    string
		raw     interface{}
		want    float64
		wantErr error
	}{
		{"float", 12.5, 12.5, nil},
		{"int", 7, 7, nil},
		{"int64", int64(-3), -3, nil},
		{"text", "100", 100, nil},
		{"text with spaces", " 0.25 ", 0.25, nil},
		{"negative text", "-40", -40, nil},
		{"exponent", "1e3", 1000, nil},
		{"json number", json.Number("32"), 32, nil},
		{"zero", 0.0, 0, nil},
		{"nil", nil, 0, ErrMissingInput},
		{"empty", "", 0, ErrMissingInput},
		{"blank", "   ", 0, ErrMissingInput},
		{"words", "twelve", 0, ErrMalformedInput},
		{"trailing junk", "12abc", 0, ErrMalformedInput},
		{"nan text", "NaN", 0, ErrMalformedInput},
		{"inf text", "Inf", 0, ErrMalformedInput},
		{"nan float", math.NaN(), 0, ErrMalformedInput},
		{"bool", true, 0, ErrMalformedInput},
		{"object", map[string]interface{}{}, 0, ErrMalformedInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToNumber(tt.raw)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{212, 212},
		{373.15, 373.1}, // stored as 373.1499...
		{100 + 273.15, 373.1},
		{67.628, 67.6},
		{-279.67, -279.7},
		{0.25, 0.2}, // exact half, to even
		{0.75, 0.8},
		{1727.96, 1728},
		{0.04, 0},
		{-0.04, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Round(tt.in), "Round(%v)", tt.in)
	}
	assert.False(t, math.Signbit(Round(-0.01)))
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "212", FormatValue(212))
	assert.Equal(t, "373.1", FormatValue(373.1))
	assert.Equal(t, "0", FormatValue(0))
	assert.Equal(t, "-279.7", FormatValue(-279.7))
}
