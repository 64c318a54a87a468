//
// Package grading checks a student's unit conversion against the
// computed answer.
//
// Raw fields are normalized to numbers, unit names are resolved against
// the unit registry, the value is converted, and both the converted value
// and the student's response are rounded to one decimal before they are
// compared. Everything here is pure and safe to call from any number of
// goroutines.
//
package grading

import (
	"math"
	"strings"

	"github.com/nsip/otf-convert/internal/conversion"
	"github.com/nsip/otf-convert/internal/units"
	"github.com/pkg/errors"
)

//
// Submission holds the four fields of a grading request as supplied by
// the caller: numbers may arrive as text or as numeric values.
// A nil field is treated as missing.
//
type Submission struct {
	Value           interface{}
	FromUnit        interface{}
	ToUnit          interface{}
	StudentResponse interface{}
}

// Evaluator grades submissions against a unit registry.
type Evaluator struct {
	registry *units.Registry
}

// NewEvaluator returns an Evaluator using r, or the default registry if r is nil.
func NewEvaluator(r *units.Registry) *Evaluator {
	if r == nil {
		r = units.Default()
	}
	return &Evaluator{registry: r}
}

var defaultEvaluator = NewEvaluator(nil)

// Grade grades s with the default registry.
func Grade(s Submission) (Verdict, error) {
	return defaultEvaluator.Grade(s)
}

// Convert converts with the default registry.
func Convert(value, fromUnit, toUnit interface{}) (float64, error) {
	return defaultEvaluator.Convert(value, fromUnit, toUnit)
}

//
// Grade returns the verdict for s.
//
// Problems with the submission give an Invalid verdict and a nil error.
// A non-nil error means the conversion itself failed unexpectedly; the
// verdict is then meaningless and the caller should report a server fault.
//
func (e *Evaluator) Grade(s Submission) (Verdict, error) {
	v, from, to, err := e.parse(s.Value, s.FromUnit, s.ToUnit)
	if err != nil {
		return invalid(err), nil
	}
	student, err := ToNumber(s.StudentResponse)
	if err != nil {
		return invalid(errors.Wrap(err, "studentResponse")), nil
	}

	converted, err := e.compute(v, from, to)
	if err != nil {
		if IsInvalid(err) {
			return invalid(err), nil
		}
		return Verdict{}, err
	}

	if converted == Round(student) {
		return correct(converted), nil
	}
	return incorrect(converted), nil
}

//
// Convert normalizes value, resolves both units and returns the
// converted value rounded to one decimal.
// A converted value of 0 is a result like any other.
//
func (e *Evaluator) Convert(value, fromUnit, toUnit interface{}) (float64, error) {
	v, from, to, err := e.parse(value, fromUnit, toUnit)
	if err != nil {
		return 0, err
	}
	return e.compute(v, from, to)
}

// parse validates the raw fields and resolves both units.
func (e *Evaluator) parse(value, fromUnit, toUnit interface{}) (float64, units.Unit, units.Unit, error) {
	v, err := ToNumber(value)
	if err != nil {
		return 0, nil, nil, errors.Wrap(err, "value")
	}
	fromName, err := unitName(fromUnit)
	if err != nil {
		return 0, nil, nil, errors.Wrap(err, "fromUnit")
	}
	toName, err := unitName(toUnit)
	if err != nil {
		return 0, nil, nil, errors.Wrap(err, "toUnit")
	}

	from, err := e.registry.Resolve(fromName)
	if err != nil {
		return 0, nil, nil, errors.Wrap(err, "fromUnit")
	}
	to, err := e.registry.Resolve(toName)
	if err != nil {
		return 0, nil, nil, errors.Wrap(err, "toUnit")
	}
	if from.Family() != to.Family() {
		return 0, nil, nil, errors.Wrapf(ErrCrossFamily, "%s is %s, %s is %s",
			from.Name(), from.Family(), to.Name(), to.Family())
	}
	return v, from, to, nil
}

func (e *Evaluator) compute(v float64, from, to units.Unit) (float64, error) {
	converted, ok := conversion.Convert(v, from, to).Float()
	if !ok {
		return 0, errors.Wrapf(ErrUnsupportedPair, "%s to %s", from.Name(), to.Name())
	}
	if math.IsNaN(converted) || math.IsInf(converted, 0) {
		return 0, errors.Wrapf(ErrUnexpected, "%v %s to %s gave %v", v, from.Name(), to.Name(), converted)
	}
	return Round(converted), nil
}

func unitName(raw interface{}) (string, error) {
	switch n := raw.(type) {
	case nil:
		return "", ErrMissingInput
	case string:
		if strings.TrimSpace(n) == "" {
			return "", ErrMissingInput
		}
		return n, nil
	default:
		return "", errors.Wrapf(ErrMalformedInput, "%T is not a unit name", raw)
	}
}
