package grading

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToResponse(t *testing.T) {
	v, err := Grade(Submission{100, "celsius", "fahrenheit", 212})
	require.NoError(t, err)
	assert.Equal(t, Response{Output: Correct, Conversion: "212"}, ToResponse(v))

	v, err = Grade(Submission{0, "celsius", "fahrenheit", 0})
	require.NoError(t, err)
	assert.Equal(t, Response{Output: Incorrect, Conversion: "32"}, ToResponse(v))
}

func TestToResponseInvalidHasNoConversion(t *testing.T) {
	v, err := Grade(Submission{100, "celsius", "fahrenheit", nil})
	require.NoError(t, err)

	r := ToResponse(v)
	assert.Equal(t, Invalid, r.Output)
	assert.Empty(t, r.Conversion)
	assert.NotEmpty(t, r.Message)

	b, err := json.Marshal(r)
	require.NoError(t, err)
	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &fields))
	assert.NotContains(t, fields, "conversion")
	assert.Equal(t, "invalid", fields["output"])
}

func TestToResponseZeroConversionKept(t *testing.T) {
	v, err := Grade(Submission{32, "fahrenheit", "celsius", 0})
	require.NoError(t, err)

	b, err := json.Marshal(ToResponse(v))
	require.NoError(t, err)
	assert.JSONEq(t, `{"output":"correct","conversion":"0"}`, string(b))
}
