package tools

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/msto63/mRW/foundation/utils/mathx"
)

// FormatNumber renders v with German separators ("1.234,56") and the given
// number of decimals (0..6). Trailing fractional zeros are kept.
func FormatNumber(v float64, decimals int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return humanize.FormatFloat("", v)
	}
	if decimals < 0 {
		decimals = 0
	}
	if decimals > 6 {
		decimals = 6
	}
	v = mathx.Round(v, decimals)
	if decimals == 0 {
		return humanize.FormatInteger("#.###,", int(v))
	}
	return humanize.FormatFloat("#.###,"+strings.Repeat("#", decimals), v)
}

// FormatMoney renders an amount with two decimals
func FormatMoney(v float64) string {
	return FormatNumber(v, 2)
}

// FormatAuto renders v with up to 6 significant decimals and no trailing zeros
func FormatAuto(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return humanize.FormatFloat("", v)
	}
	s := FormatNumber(v, 6)
	if strings.Contains(s, ",") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ",")
	}
	return s
}

// FormatBytes renders a byte count as in "1.2 MB"
func FormatBytes(n float64) string {
	if n < 0 || n > math.MaxUint64 {
		return FormatAuto(n) + " B"
	}
	return humanize.Bytes(uint64(n))
}

// FormatValue renders a result field value for display
func FormatValue(v interface{}) string {
	switch x := Normalize(v).(type) {
	case nil:
		return "-"
	case float64:
		return FormatAuto(x)
	case bool:
		if x {
			return "ja"
		}
		return "nein"
	case string:
		return x
	case []interface{}:
		parts := make([]string, len(x))
		for i, e := range x {
			parts[i] = FormatValue(e)
		}
		return strings.Join(parts, ", ")
	case map[string]interface{}:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + " " + FormatValue(x[k])
		}
		return "(" + strings.Join(parts, "; ") + ")"
	default:
		return fmt.Sprint(x)
	}
}
