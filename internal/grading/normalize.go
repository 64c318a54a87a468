package grading

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

//
// ToNumber turns a raw field, as text or as any numeric type, into a
// finite float64.
// nil and blank text give ErrMissingInput; text that is not a number,
// NaN, infinities and non-numeric types give ErrMalformedInput.
//
func ToNumber(raw interface{}) (float64, error) {
	var v float64
	switch n := raw.(type) {
	case nil:
		return 0, ErrMissingInput
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, ErrMissingInput
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, errors.Wrapf(ErrMalformedInput, "%q is not a number", n)
		}
		v = f
	case json.Number:
		return ToNumber(string(n))
	case float64:
		v = n
	case float32:
		v = float64(n)
	case int:
		v = float64(n)
	case int32:
		v = float64(n)
	case int64:
		v = float64(n)
	case uint:
		v = float64(n)
	case uint32:
		v = float64(n)
	case uint64:
		v = float64(n)
	default:
		return 0, errors.Wrapf(ErrMalformedInput, "%T is not a number", raw)
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Wrapf(ErrMalformedInput, "%v is not a finite number", v)
	}
	return v, nil
}

//
// Round rounds to one decimal place.
// The value is formatted with one fractional digit and parsed back, so
// the decision is made on the exact binary value: 373.15 is stored as
// 373.1499... and rounds to 373.1, while an exact half such as 0.25
// rounds to even (0.2).
//
func Round(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	if err != nil {
		// FormatFloat output always parses
		return v
	}
	if r == 0 {
		// drop the sign of -0.0
		return 0
	}
	return r
}

// FormatValue renders a rounded value as text for a verdict.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
