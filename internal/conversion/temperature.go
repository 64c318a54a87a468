package conversion

import "github.com/nsip/otf-convert/internal/units"

const (
	celsiusOffset    = 273.15
	fahrenheitOffset = 459.67
	// rankine value of 0 °C
	rankineFreezing = 491.67
)

type pair[T comparable] struct {
	from, to T
}

var temperatureFormulas = map[pair[units.TemperatureUnit]]func(float64) float64{
	{units.Celsius, units.Fahrenheit}: func(v float64) float64 { return v*9/5 + 32 },
	{units.Celsius, units.Kelvin}:     func(v float64) float64 { return v + celsiusOffset },
	{units.Celsius, units.Rankine}:    func(v float64) float64 { return (v + celsiusOffset) * 9 / 5 },

	{units.Fahrenheit, units.Celsius}: func(v float64) float64 { return (v - 32) * 5 / 9 },
	{units.Fahrenheit, units.Kelvin}:  func(v float64) float64 { return (v-32)*5/9 + celsiusOffset },
	{units.Fahrenheit, units.Rankine}: func(v float64) float64 { return v + fahrenheitOffset },

	{units.Kelvin, units.Celsius}:    func(v float64) float64 { return v - celsiusOffset },
	{units.Kelvin, units.Fahrenheit}: func(v float64) float64 { return (v-celsiusOffset)*9/5 + 32 },
	{units.Kelvin, units.Rankine}:    func(v float64) float64 { return v * 9 / 5 },

	{units.Rankine, units.Celsius}:    func(v float64) float64 { return (v - rankineFreezing) * 5 / 9 },
	{units.Rankine, units.Fahrenheit}: func(v float64) float64 { return v - fahrenheitOffset },
	{units.Rankine, units.Kelvin}:     func(v float64) float64 { return v * 5 / 9 },
}

func convertTemperature(v float64, from, to units.TemperatureUnit) Outcome {
	if from == to {
		if from.Symbol() == "" {
			return Unsupported
		}
		return Value(v)
	}
	formula, ok := temperatureFormulas[pair[units.TemperatureUnit]{from, to}]
	if !ok {
		return Unsupported
	}
	return Value(formula(v))
}
