package convert

import (
	"math"
	"testing"

	"github.com/msto63/mRW/foundation/core/errors"
)

func relErr(got, want float64) float64 {
	if want == 0 {
		return math.Abs(got)
	}
	return math.Abs(got-want) / math.Abs(want)
}

func TestLinearRoundTrip(t *testing.T) {
	values := []float64{0, 1, -3.5, 1234.5678, 1e-6}
	for _, cat := range Categories() {
		if cat == Temperature {
			continue
		}
		units, err := Units(cat)
		if err != nil {
			t.Fatalf("Units(%s) error = %v", cat, err)
		}
		for _, a := range units {
			for _, b := range units {
				for _, x := range values {
					there, err := Convert(x, a.Symbol, b.Symbol, cat)
					if err != nil {
						t.Fatalf("Convert(%v, %s, %s) error = %v", x, a.Symbol, b.Symbol, err)
					}
					back, err := Convert(there, b.Symbol, a.Symbol, cat)
					if err != nil {
						t.Fatalf("Convert back error = %v", err)
					}
					if relErr(back, x) > 1e-9 {
						t.Errorf("%s: %v %s -> %s -> %s = %v", cat, x, a.Symbol, b.Symbol, a.Symbol, back)
					}
				}
			}
		}
	}
}

func TestTemperatureFixedPoints(t *testing.T) {
	tests := []struct {
		value    float64
		from, to string
		want     float64
	}{
		{0, "C", "F", 32},
		{100, "C", "F", 212},
		{0, "C", "K", 273.15},
		{-40, "C", "F", -40},
		{32, "F", "C", 0},
		{0, "K", "C", -273.15},
		{491.67, "R", "C", 0},
		{373.15, "K", "F", 212},
	}
	for _, tt := range tests {
		got, err := Convert(tt.value, tt.from, tt.to, Temperature)
		if err != nil {
			t.Fatalf("Convert(%v, %s, %s) error = %v", tt.value, tt.from, tt.to, err)
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Convert(%v, %s, %s) = %v, want %v", tt.value, tt.from, tt.to, got, tt.want)
		}
	}
}

func TestTemperatureBelowAbsoluteZero(t *testing.T) {
	_, err := Convert(-300, "C", "K", Temperature)
	if !errors.IsInvalidArgument(err) {
		t.Errorf("Convert(-300C) error = %v, want invalid argument", err)
	}
	_, err = Convert(-1, "K", "C", Temperature)
	if !errors.IsInvalidArgument(err) {
		t.Errorf("Convert(-1K) error = %v, want invalid argument", err)
	}
}

func TestKnownValues(t *testing.T) {
	tests := []struct {
		value    float64
		from, to string
		cat      Category
		want     float64
	}{
		{1, "mi", "km", Length, 1.609344},
		{1, "kg", "lb", Weight, 2.2046226218487757},
		{1, "gal", "l", Volume, 3.785411784},
		{1, "kWh", "kJ", Energy, 3600},
		{100, "km/h", "m/s", Speed, 27.77777777777778},
		{1, "GiB", "MiB", Data, 1024},
		{1, "MB", "Mb", Data, 8},
		{120, "rpm", "Hz", Frequency, 2},
		{1, "ha", "m2", Area, 10000},
		{1, "d", "h", Time, 24},
		{1, "atm", "kPa", Pressure, 101.325},
	}
	for _, tt := range tests {
		got, err := Convert(tt.value, tt.from, tt.to, tt.cat)
		if err != nil {
			t.Fatalf("Convert(%v, %s, %s) error = %v", tt.value, tt.from, tt.to, err)
		}
		if relErr(got, tt.want) > 1e-12 {
			t.Errorf("Convert(%v, %s, %s) = %v, want %v", tt.value, tt.from, tt.to, got, tt.want)
		}
	}
}

func TestUnitResolution(t *testing.T) {
	tests := []struct {
		key  string
		cat  Category
		want string
	}{
		{"km", Length, "km"},
		{"KM", Length, "km"},
		{"kilometers", Length, "km"},
		{"Metre", Length, "m"},
		{"celsius", Temperature, "C"},
		{"°F", Temperature, "F"},
		{"Mb", Data, "Mb"},
		{"mb", Data, "MB"},
		{"torr", Pressure, "mmHg"},
	}
	for _, tt := range tests {
		u, err := resolve(tt.cat, tt.key)
		if err != nil {
			t.Errorf("resolve(%s, %q) error = %v", tt.cat, tt.key, err)
			continue
		}
		if u.Symbol != tt.want {
			t.Errorf("resolve(%s, %q) = %s, want %s", tt.cat, tt.key, u.Symbol, tt.want)
		}
	}
}

func TestInvalidUnits(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		cat      Category
	}{
		{"unknown source", "furlong", "m", Length},
		{"unknown target", "m", "parsec", Length},
		{"category mismatch", "m", "kg", Length},
		{"unknown category", "m", "km", Category("distance")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Convert(1, tt.from, tt.to, tt.cat)
			if !errors.IsInvalidUnit(err) {
				t.Errorf("Convert(1, %s, %s, %s) error = %v, want invalid unit", tt.from, tt.to, tt.cat, err)
			}
		})
	}
}

func TestInferredCategory(t *testing.T) {
	got, err := Convert(5, "km", "m", "")
	if err != nil || got != 5000 {
		t.Errorf("Convert(5, km, m, \"\") = %v, %v", got, err)
	}
	if _, err := Convert(1, "km", "kg", ""); !errors.IsInvalidUnit(err) {
		t.Errorf("inferred mismatch error = %v, want invalid unit", err)
	}
}

func TestNonFiniteInput(t *testing.T) {
	if _, err := Convert(math.NaN(), "m", "km", Length); !errors.IsInvalidArgument(err) {
		t.Errorf("Convert(NaN) error = %v", err)
	}
}

func TestLookupAndCategories(t *testing.T) {
	u, cat, ok := Lookup("lb")
	if !ok || cat != Weight || u.Name != "pound" {
		t.Errorf("Lookup(lb) = %v, %s, %v", u, cat, ok)
	}
	if _, _, ok := Lookup("zorkmid"); ok {
		t.Error("Lookup(zorkmid) should fail")
	}
	if c, err := ParseCategory(" Length "); err != nil || c != Length {
		t.Errorf("ParseCategory = %s, %v", c, err)
	}
	if _, err := ParseCategory("mass"); !errors.IsInvalidUnit(err) {
		t.Errorf("ParseCategory(mass) error = %v", err)
	}
	if BaseUnit(Length) != "m" {
		t.Errorf("BaseUnit(length) = %s", BaseUnit(Length))
	}
}
