package convert

// Category names a family of mutually convertible units
type Category string

const (
	Length      Category = "length"
	Weight      Category = "weight"
	Volume      Category = "volume"
	Energy      Category = "energy"
	Speed       Category = "speed"
	Data        Category = "data"
	Frequency   Category = "frequency"
	Temperature Category = "temperature"
	Area        Category = "area"
	Time        Category = "time"
	Pressure    Category = "pressure"
)

// Unit describes one unit of a category. Factor is the size of one unit
// in the category's base unit; it is zero for temperature units.
type Unit struct {
	Symbol  string   `json:"symbol"`
	Name    string   `json:"name"`
	Factor  float64  `json:"factor,omitempty"`
	Aliases []string `json:"aliases,omitempty"`
}

type table struct {
	base  string
	units []Unit
}

var tables = map[Category]table{
	Length: {base: "m", units: []Unit{
		{"nm", "nanometer", 1e-9, nil},
		{"um", "micrometer", 1e-6, []string{"µm", "micron"}},
		{"mm", "millimeter", 1e-3, []string{"millimetre"}},
		{"cm", "centimeter", 1e-2, []string{"centimetre"}},
		{"m", "meter", 1, []string{"metre"}},
		{"km", "kilometer", 1e3, []string{"kilometre"}},
		{"in", "inch", 0.0254, []string{"inches", "\""}},
		{"ft", "foot", 0.3048, []string{"feet", "'"}},
		{"yd", "yard", 0.9144, nil},
		{"mi", "mile", 1609.344, nil},
		{"nmi", "nautical mile", 1852, []string{"nautical miles"}},
	}},
	Weight: {base: "g", units: []Unit{
		{"mg", "milligram", 1e-3, nil},
		{"g", "gram", 1, []string{"gramme"}},
		{"kg", "kilogram", 1e3, []string{"kilo", "kilos"}},
		{"t", "tonne", 1e6, []string{"metric ton"}},
		{"oz", "ounce", 28.349523125, nil},
		{"lb", "pound", 453.59237, []string{"lbs"}},
		{"st", "stone", 6350.29318, nil},
	}},
	Volume: {base: "l", units: []Unit{
		{"ml", "milliliter", 1e-3, []string{"millilitre"}},
		{"cl", "centiliter", 1e-2, nil},
		{"l", "liter", 1, []string{"litre", "L"}},
		{"m3", "cubic meter", 1e3, []string{"m³"}},
		{"tsp", "teaspoon", 0.00492892159375, nil},
		{"tbsp", "tablespoon", 0.01478676478125, nil},
		{"floz", "fluid ounce", 0.0295735295625, []string{"fl oz"}},
		{"cup", "cup", 0.2365882365, []string{"cups"}},
		{"pt", "pint", 0.473176473, nil},
		{"qt", "quart", 0.946352946, nil},
		{"gal", "gallon", 3.785411784, []string{"us gallon"}},
	}},
	Energy: {base: "J", units: []Unit{
		{"J", "joule", 1, nil},
		{"kJ", "kilojoule", 1e3, nil},
		{"cal", "calorie", 4.184, nil},
		{"kcal", "kilocalorie", 4184, []string{"food calorie"}},
		{"Wh", "watt hour", 3600, []string{"watt-hour"}},
		{"kWh", "kilowatt hour", 3.6e6, []string{"kilowatt-hour"}},
		{"BTU", "british thermal unit", 1055.05585262, nil},
		{"eV", "electronvolt", 1.602176634e-19, []string{"electron volt"}},
	}},
	Speed: {base: "m/s", units: []Unit{
		{"m/s", "meter per second", 1, []string{"mps"}},
		{"km/h", "kilometer per hour", 1 / 3.6, []string{"kph", "kmh"}},
		{"mph", "mile per hour", 0.44704, []string{"miles per hour"}},
		{"kn", "knot", 1852.0 / 3600.0, []string{"knots", "kt"}},
		{"ft/s", "foot per second", 0.3048, []string{"fps"}},
	}},
	Data: {base: "B", units: []Unit{
		{"bit", "bit", 0.125, []string{"bits"}},
		{"B", "byte", 1, []string{"bytes"}},
		{"KB", "kilobyte", 1e3, nil},
		{"MB", "megabyte", 1e6, nil},
		{"GB", "gigabyte", 1e9, nil},
		{"TB", "terabyte", 1e12, nil},
		{"KiB", "kibibyte", 1024, nil},
		{"MiB", "mebibyte", 1 << 20, nil},
		{"GiB", "gibibyte", 1 << 30, nil},
		{"TiB", "tebibyte", 1 << 40, nil},
		{"Kb", "kilobit", 125, nil},
		{"Mb", "megabit", 125e3, nil},
		{"Gb", "gigabit", 125e6, nil},
	}},
	Frequency: {base: "Hz", units: []Unit{
		{"Hz", "hertz", 1, nil},
		{"kHz", "kilohertz", 1e3, nil},
		{"MHz", "megahertz", 1e6, nil},
		{"GHz", "gigahertz", 1e9, nil},
		{"rpm", "revolutions per minute", 1.0 / 60.0, nil},
	}},
	Area: {base: "m2", units: []Unit{
		{"mm2", "square millimeter", 1e-6, []string{"mm²"}},
		{"cm2", "square centimeter", 1e-4, []string{"cm²"}},
		{"m2", "square meter", 1, []string{"m²", "sqm"}},
		{"ha", "hectare", 1e4, nil},
		{"km2", "square kilometer", 1e6, []string{"km²"}},
		{"in2", "square inch", 0.00064516, nil},
		{"ft2", "square foot", 0.09290304, []string{"sqft"}},
		{"yd2", "square yard", 0.83612736, nil},
		{"ac", "acre", 4046.8564224, []string{"acres"}},
		{"mi2", "square mile", 2589988.110336, nil},
	}},
	Time: {base: "s", units: []Unit{
		{"ms", "millisecond", 1e-3, nil},
		{"s", "second", 1, []string{"sec"}},
		{"min", "minute", 60, nil},
		{"h", "hour", 3600, []string{"hr"}},
		{"d", "day", 86400, nil},
		{"wk", "week", 604800, nil},
		{"yr", "year", 31536000, []string{"a"}},
	}},
	Pressure: {base: "Pa", units: []Unit{
		{"Pa", "pascal", 1, nil},
		{"hPa", "hectopascal", 100, nil},
		{"kPa", "kilopascal", 1e3, nil},
		{"bar", "bar", 1e5, nil},
		{"psi", "pound per square inch", 6894.757293168, nil},
		{"atm", "atmosphere", 101325, nil},
		{"mmHg", "millimeter of mercury", 133.322387415, []string{"torr"}},
	}},
	Temperature: {base: "C", units: []Unit{
		{"C", "celsius", 0, []string{"°C", "centigrade"}},
		{"F", "fahrenheit", 0, []string{"°F"}},
		{"K", "kelvin", 0, nil},
		{"R", "rankine", 0, []string{"°R"}},
	}},
}

// categoryOrder fixes the listing order of Categories
var categoryOrder = []Category{
	Length, Weight, Volume, Area, Temperature, Energy,
	Speed, Time, Pressure, Data, Frequency,
}
