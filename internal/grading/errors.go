package grading

import (
	"github.com/nsip/otf-convert/internal/units"
	"github.com/pkg/errors"
)

// Problems with the submission itself. Each becomes an invalid verdict.
var (
	ErrMissingInput    = errors.New("missing input")
	ErrMalformedInput  = errors.New("malformed input")
	ErrCrossFamily     = errors.New("units belong to different families")
	ErrUnsupportedPair = errors.New("conversion not supported")
)

// ErrUnexpected marks a computational fault. It is never turned into a verdict.
var ErrUnexpected = errors.New("unexpected conversion failure")

//
// IsInvalid reports whether err describes a bad submission
// (missing/malformed field, unknown unit, cross-family or unsupported pair)
// rather than a fault on our side.
//
func IsInvalid(err error) bool {
	if err == nil {
		return false
	}
	for _, target := range []error{
		ErrMissingInput,
		ErrMalformedInput,
		units.ErrUnknownUnit,
		ErrCrossFamily,
		ErrUnsupportedPair,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
