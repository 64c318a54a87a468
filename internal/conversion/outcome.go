//
// Package conversion maps a value between two units of the same family.
// Every function here is pure: no state, no I/O, safe for concurrent use.
//
package conversion

import "strconv"

//
// Outcome is the result of a conversion: either a value or Unsupported.
// The zero Outcome is Unsupported, so a computed 0 can never be
// mistaken for "no result".
//
type Outcome struct {
	value     float64
	supported bool
}

// Unsupported marks a unit pair for which no formula exists.
var Unsupported = Outcome{}

// Value wraps a computed result.
func Value(v float64) Outcome {
	return Outcome{value: v, supported: true}
}

// Float returns the converted value and whether the conversion was supported.
func (o Outcome) Float() (float64, bool) {
	return o.value, o.supported
}

func (o Outcome) Supported() bool {
	return o.supported
}

func (o Outcome) String() string {
	if !o.supported {
		return "unsupported"
	}
	return strconv.FormatFloat(o.value, 'g', -1, 64)
}
