package conversion

import "github.com/nsip/otf-convert/internal/units"

//
// One factor per unordered pair: from * factor = to, and the reverse
// direction divides by the same factor. The factors are rounded
// independently, so chains through different pairs do not agree
// exactly (cups -> liters -> tablespoons is not cups -> tablespoons).
//
var volumeFactors = map[pair[units.VolumeUnit]]float64{
	{units.CubicFeet, units.CubicInches}: 1728,
	{units.CubicFeet, units.Cups}:        119.688,
	{units.CubicFeet, units.Gallons}:     7.48052,
	{units.CubicFeet, units.Liters}:      28.3168,
	{units.CubicFeet, units.Tablespoons}: 1915.01,

	{units.Cups, units.CubicInches}:        14.4375,
	{units.Gallons, units.CubicInches}:     231,
	{units.Liters, units.CubicInches}:      61.0237,
	{units.CubicInches, units.Tablespoons}: 1.10823,

	{units.Gallons, units.Cups}:     16,
	{units.Liters, units.Cups}:      4.22675,
	{units.Cups, units.Tablespoons}: 16,

	{units.Gallons, units.Liters}:      3.78541,
	{units.Gallons, units.Tablespoons}: 256,
	{units.Liters, units.Tablespoons}:  67.628,
}

func convertVolume(v float64, from, to units.VolumeUnit) Outcome {
	if from == to {
		if from.Symbol() == "" {
			return Unsupported
		}
		return Value(v)
	}
	if factor, ok := volumeFactors[pair[units.VolumeUnit]{from, to}]; ok {
		return Value(v * factor)
	}
	if factor, ok := volumeFactors[pair[units.VolumeUnit]{to, from}]; ok {
		return Value(v / factor)
	}
	return Unsupported
}
