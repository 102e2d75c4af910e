package convert

import (
	"math"
	"strings"

	"github.com/msto63/mRW/foundation/core/errors"
)

// absoluteZeroC is absolute zero in degrees Celsius
const absoluteZeroC = -273.15

// ConversionRequest is the input record of a conversion
type ConversionRequest struct {
	Value    float64  `json:"value"`
	FromUnit string   `json:"from_unit"`
	ToUnit   string   `json:"to_unit"`
	Category Category `json:"category"`
}

// Convert converts value from one unit to another within category.
// An empty category is inferred from the source unit.
func Convert(value float64, fromUnit, toUnit string, category Category) (float64, error) {
	return ConvertRequest(ConversionRequest{Value: value, FromUnit: fromUnit, ToUnit: toUnit, Category: category})
}

// ConvertRequest converts according to req
func ConvertRequest(req ConversionRequest) (float64, error) {
	if math.IsNaN(req.Value) || math.IsInf(req.Value, 0) {
		return 0, errors.InvalidArgument(errors.ModuleConvert, "convert", req.Value, "finite number")
	}

	category := req.Category
	if category == "" {
		_, cat, ok := Lookup(req.FromUnit)
		if !ok {
			return 0, errors.InvalidUnit(errors.ModuleConvert, req.FromUnit, "any")
		}
		category = cat
	}

	from, err := resolve(category, req.FromUnit)
	if err != nil {
		return 0, err
	}
	to, err := resolve(category, req.ToUnit)
	if err != nil {
		if _, other, ok := Lookup(req.ToUnit); ok && other != category {
			return 0, errors.UnitMismatch(errors.ModuleConvert, req.FromUnit, req.ToUnit, string(category))
		}
		return 0, err
	}

	if category == Temperature {
		return convertTemperature(req.Value, from.Symbol, to.Symbol)
	}
	if from.Symbol == to.Symbol {
		return req.Value, nil
	}
	return req.Value * from.Factor / to.Factor, nil
}

func convertTemperature(value float64, from, to string) (float64, error) {
	c := toCelsius(value, from)
	if c < absoluteZeroC-1e-9 {
		return 0, errors.InvalidArgument(errors.ModuleConvert, "convert_temperature", value, "temperature at or above absolute zero")
	}
	if from == to {
		return value, nil
	}
	return fromCelsius(c, to), nil
}

func toCelsius(v float64, unit string) float64 {
	switch unit {
	case "F":
		return (v - 32) * 5 / 9
	case "K":
		return v + absoluteZeroC
	case "R":
		return (v - 491.67) * 5 / 9
	default:
		return v
	}
}

func fromCelsius(c float64, unit string) float64 {
	switch unit {
	case "F":
		return c*9/5 + 32
	case "K":
		return c - absoluteZeroC
	case "R":
		return (c - absoluteZeroC) * 9 / 5
	default:
		return c
	}
}

// resolve finds a unit in category: exact symbol, case-insensitive symbol,
// then case-insensitive name or alias
func resolve(category Category, key string) (Unit, error) {
	t, ok := tables[category]
	if !ok {
		return Unit{}, errors.InvalidUnit(errors.ModuleConvert, key, string(category))
	}
	key = strings.TrimSpace(key)

	for _, u := range t.units {
		if u.Symbol == key {
			return u, nil
		}
	}
	for _, u := range t.units {
		if strings.EqualFold(u.Symbol, key) {
			return u, nil
		}
	}
	for _, u := range t.units {
		if matchesName(u, key) {
			return u, nil
		}
	}
	return Unit{}, errors.InvalidUnit(errors.ModuleConvert, key, string(category))
}

func matchesName(u Unit, key string) bool {
	k := strings.ToLower(key)
	if k == u.Name || k == u.Name+"s" {
		return true
	}
	for _, a := range u.Aliases {
		if strings.EqualFold(a, key) {
			return true
		}
	}
	return false
}

// Lookup finds a unit by symbol or name across all categories. Exact
// symbol matches in any category win over case-insensitive ones.
func Lookup(key string) (Unit, Category, bool) {
	key = strings.TrimSpace(key)
	for _, cat := range categoryOrder {
		for _, u := range tables[cat].units {
			if u.Symbol == key {
				return u, cat, true
			}
		}
	}
	for _, cat := range categoryOrder {
		if u, err := resolve(cat, key); err == nil {
			return u, cat, true
		}
	}
	return Unit{}, "", false
}

// Categories lists all supported categories
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// ParseCategory validates a category name
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := tables[c]; !ok {
		return "", errors.InvalidUnit(errors.ModuleConvert, s, "category")
	}
	return c, nil
}

// Units lists the units of a category
func Units(category Category) ([]Unit, error) {
	t, ok := tables[category]
	if !ok {
		return nil, errors.InvalidUnit(errors.ModuleConvert, string(category), "category")
	}
	out := make([]Unit, len(t.units))
	copy(out, t.units)
	return out, nil
}

// BaseUnit returns the symbol of the category's base unit
func BaseUnit(category Category) string {
	return tables[category].base
}
