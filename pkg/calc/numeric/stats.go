package numeric

import (
	"math"
	"sort"

	"github.com/msto63/mRW/foundation/core/errors"
)

func requireValues(op string, values []float64) error {
	if len(values) == 0 {
		return errors.InvalidArgument(errors.ModuleNumeric, op, 0, "at least one value")
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.InvalidArgument(errors.ModuleNumeric, op, v, "finite values")
		}
	}
	return nil
}

// Mean returns the arithmetic mean
func Mean(values []float64) (float64, error) {
	if err := requireValues("mean", values); err != nil {
		return 0, err
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}

// Median sorts a copy and returns the middle value, or the mean of the
// two middle values for an even count
func Median(values []float64) (float64, error) {
	if err := requireValues("median", values); err != nil {
		return 0, err
	}
	s := sortedCopy(values)
	n := len(s)
	if n%2 == 1 {
		return s[n/2], nil
	}
	return (s[n/2-1] + s[n/2]) / 2, nil
}

// Mode returns every value tied for the highest frequency, ascending
func Mode(values []float64) ([]float64, error) {
	if err := requireValues("mode", values); err != nil {
		return nil, err
	}
	counts := make(map[float64]int, len(values))
	best := 0
	for _, v := range values {
		counts[v]++
		if counts[v] > best {
			best = counts[v]
		}
	}
	modes := make([]float64, 0, 1)
	for v, c := range counts {
		if c == best {
			modes = append(modes, v)
		}
	}
	sort.Float64s(modes)
	return modes, nil
}

// Stats bundles the descriptive statistics of a sample
type Stats struct {
	Count    int       `json:"count"`
	Sum      float64   `json:"sum"`
	Min      float64   `json:"min"`
	Max      float64   `json:"max"`
	Mean     float64   `json:"mean"`
	Median   float64   `json:"median"`
	Mode     []float64 `json:"mode"`
	Variance float64   `json:"variance"`
	StdDev   float64   `json:"std_dev"`
}

// Summary computes the Stats of a sample. Variance is the population variance.
func Summary(values []float64) (Stats, error) {
	if err := requireValues("summary", values); err != nil {
		return Stats{}, err
	}
	s := sortedCopy(values)
	mean, _ := Mean(values)
	median, _ := Median(values)
	mode, _ := Mode(values)

	sum, sq := 0.0, 0.0
	for _, v := range values {
		sum += v
		sq += (v - mean) * (v - mean)
	}
	variance := sq / float64(len(values))
	return Stats{
		Count:    len(values),
		Sum:      sum,
		Min:      s[0],
		Max:      s[len(s)-1],
		Mean:     mean,
		Median:   median,
		Mode:     mode,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
	}, nil
}

func sortedCopy(values []float64) []float64 {
	s := make([]float64, len(values))
	copy(s, values)
	sort.Float64s(s)
	return s
}
