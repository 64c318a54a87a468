package units

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Unit
		wantErr bool
	}{
		{"lower case", "celsius", Celsius, false},
		{"mixed case", "Celsius", Celsius, false},
		{"upper case volume", "CUBIC-FEET", CubicFeet, false},
		{"hyphen kept", "cubic-inches", CubicInches, false},
		{"hyphen missing", "cubicinches", nil, true},
		{"space instead of hyphen", "cubic feet", nil, true},
		{"surrounding space", " liters", nil, true},
		{"empty", "", nil, true},
		{"not a unit", "furlongs", nil, true},
	}

	r := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownUnit))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFamiliesMatch(t *testing.T) {
	r := Default()

	assert.True(t, r.FamiliesMatch("celsius", "Kelvin"))
	assert.True(t, r.FamiliesMatch("cups", "tablespoons"))
	assert.True(t, r.FamiliesMatch("liters", "liters"))
	assert.False(t, r.FamiliesMatch("celsius", "liters"))
	assert.False(t, r.FamiliesMatch("celsius", "parsecs"))
	assert.False(t, r.FamiliesMatch("", ""))
}

func TestUnitsByFamily(t *testing.T) {
	r := Default()

	temps := r.Units(Temperature)
	assert.Equal(t, []Unit{Celsius, Fahrenheit, Kelvin, Rankine}, temps)

	vols := r.Units(Volume)
	require.Len(t, vols, 6)
	for _, u := range vols {
		assert.Equal(t, Volume, u.Family())
	}

	// callers cannot mutate the catalog through the returned slice
	temps[0] = Rankine
	assert.Equal(t, Celsius, r.Units(Temperature)[0])

	assert.Empty(t, r.Units(Family(99)))
	assert.Equal(t, []Family{Temperature, Volume}, r.Families())
}

func TestSymbolsAndLabels(t *testing.T) {
	tests := []struct {
		unit   Unit
		symbol string
		label  string
	}{
		{Celsius, "°C", "Celsius"},
		{Fahrenheit, "°F", "Fahrenheit"},
		{Kelvin, "K", "Kelvin"},
		{Rankine, "°R", "Rankine"},
		{CubicFeet, "ft³", "Cubic Feet"},
		{CubicInches, "in³", "Cubic Inches"},
		{Cups, "cups", "Cups"},
		{Gallons, "gal", "Gallons"},
		{Liters, "L", "Liters"},
		{Tablespoons, "tbsp", "Tablespoons"},
	}

	for _, tt := range tests {
		t.Run(tt.unit.Name(), func(t *testing.T) {
			assert.Equal(t, tt.symbol, tt.unit.Symbol())
			assert.Equal(t, tt.label, tt.unit.Label())
		})
	}
}

func TestParseFamily(t *testing.T) {
	r := Default()

	f, ok := r.ParseFamily("Temperature")
	require.True(t, ok)
	assert.Equal(t, Temperature, f)

	f, ok = r.ParseFamily("volume")
	require.True(t, ok)
	assert.Equal(t, Volume, f)

	_, ok = r.ParseFamily("length")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Family(0).String())
}
