package conversion

import (
	"github.com/nsip/otf-convert/internal/units"
)

//
// Convert maps value from one unit to another.
//
// Identity conversions return value unchanged. Units of different
// families, or a pair with no formula, give Unsupported.
//
func Convert(value float64, from, to units.Unit) Outcome {
	switch f := from.(type) {
	case units.TemperatureUnit:
		t, ok := to.(units.TemperatureUnit)
		if !ok {
			return Unsupported
		}
		return convertTemperature(value, f, t)
	case units.VolumeUnit:
		t, ok := to.(units.VolumeUnit)
		if !ok {
			return Unsupported
		}
		return convertVolume(value, f, t)
	}
	return Unsupported
}
