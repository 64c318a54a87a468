//
// Package units holds the fixed catalog of measurement units the
// grader understands, grouped into families of mutually convertible units.
//
package units

import (
	"strings"
)

// Family groups units that can be converted into one another.
type Family int

const (
	Temperature Family = iota + 1
	Volume
)

func (f Family) String() string {
	switch f {
	case Temperature:
		return "temperature"
	case Volume:
		return "volume"
	default:
		return "unknown"
	}
}

//
// Unit is a member of exactly one family.
// The set of implementations is closed: only TemperatureUnit and
// VolumeUnit satisfy it.
//
type Unit interface {
	// canonical lower-case identifier, e.g. celsius, cubic-feet
	Name() string
	// display symbol, never used for conversion
	Symbol() string
	Family() Family
	// human readable name, e.g. Cubic Feet
	Label() string

	sealed()
}

// TemperatureUnit is a unit of the temperature family.
type TemperatureUnit string

const (
	Celsius    TemperatureUnit = "celsius"
	Fahrenheit TemperatureUnit = "fahrenheit"
	Kelvin     TemperatureUnit = "kelvin"
	Rankine    TemperatureUnit = "rankine"
)

func (u TemperatureUnit) Name() string   { return string(u) }
func (u TemperatureUnit) Family() Family { return Temperature }
func (u TemperatureUnit) Label() string  { return label(string(u)) }
func (TemperatureUnit) sealed()          {}

func (u TemperatureUnit) Symbol() string {
	switch u {
	case Celsius:
		return "°C"
	case Fahrenheit:
		return "°F"
	case Kelvin:
		return "K"
	case Rankine:
		return "°R"
	}
	return ""
}

// VolumeUnit is a unit of the volume family.
type VolumeUnit string

const (
	CubicFeet   VolumeUnit = "cubic-feet"
	CubicInches VolumeUnit = "cubic-inches"
	Cups        VolumeUnit = "cups"
	Gallons     VolumeUnit = "gallons"
	Liters      VolumeUnit = "liters"
	Tablespoons VolumeUnit = "tablespoons"
)

func (u VolumeUnit) Name() string   { return string(u) }
func (u VolumeUnit) Family() Family { return Volume }
func (u VolumeUnit) Label() string  { return label(string(u)) }
func (VolumeUnit) sealed()          {}

func (u VolumeUnit) Symbol() string {
	switch u {
	case CubicFeet:
		return "ft³"
	case CubicInches:
		return "in³"
	case Cups:
		return "cups"
	case Gallons:
		return "gal"
	case Liters:
		return "L"
	case Tablespoons:
		return "tbsp"
	}
	return ""
}

// label turns a hyphenated name into capitalised words: cubic-feet -> Cubic Feet
func label(name string) string {
	words := strings.Split(name, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
