package tools

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/msto63/mRW/foundation/utils/mathx"
	"github.com/msto63/mRW/pkg/calc/numeric"
)

// maxSummaryDigits bounds how many digits of a big result go into a summary
const maxSummaryDigits = 40

func mathRunners() map[string]Runner {
	return map[string]Runner{
		"gcd":         runIntegerList("gcd", "ggT", numeric.GCDList),
		"lcm":         runIntegerList("lcm", "kgV", numeric.LCMList),
		"factorial":   runFactorial,
		"permutation": runCounting("permutation", "P", numeric.Permutation),
		"combination": runCounting("combination", "C", numeric.Combination),
		"quadratic":   runQuadratic,
		"pythagorean": runPythagorean,
		"mean":        runSample("mean", "Mittelwert", numeric.Mean),
		"median":      runSample("median", "Median", numeric.Median),
		"mode":        runMode,
		"statistics":  runStatistics,
		"percentage":  runPercentage,
	}
}

func runIntegerList(key, label string, fn func([]int64) (int64, error)) Runner {
	return func(_ context.Context, _ *Env, p Params) (*Result, error) {
		values, err := p.IntegerList("values")
		if err != nil {
			return nil, err
		}
		v, err := fn(values)
		if err != nil {
			return nil, err
		}
		r := &Result{Summary: label + " = " + FormatNumber(float64(v), 0)}
		r.Add(key, label, v)
		return r, nil
	}
}

func bigSummary(prefix string, v *big.Int) string {
	s := v.String()
	if len(s) > maxSummaryDigits {
		return fmt.Sprintf("%s%s… (%d Stellen)", prefix, s[:maxSummaryDigits], len(s))
	}
	return prefix + s
}

func runFactorial(_ context.Context, _ *Env, p Params) (*Result, error) {
	n, err := p.Integer("n")
	if err != nil {
		return nil, err
	}
	v, err := numeric.Factorial(int64(n))
	if err != nil {
		return nil, err
	}
	r := &Result{Summary: bigSummary(fmt.Sprintf("%d! = ", n), v)}
	r.Add("value", "n!", v).
		Add("digits", "Stellen", len(v.String()))
	return r, nil
}

func runCounting(key, symbol string, fn func(n, r int64) (*big.Int, error)) Runner {
	return func(_ context.Context, _ *Env, p Params) (*Result, error) {
		n, err := p.Integer("n")
		if err != nil {
			return nil, err
		}
		k, err := p.Integer("r")
		if err != nil {
			return nil, err
		}
		v, err := fn(int64(n), int64(k))
		if err != nil {
			return nil, err
		}
		r := &Result{Summary: bigSummary(fmt.Sprintf("%s(%d, %d) = ", symbol, n, k), v)}
		r.Add(key, symbol+"(n, r)", v)
		return r, nil
	}
}

// formatRoot renders a root as "1,5" or "-1 + 2i"
func formatRoot(root numeric.Root) string {
	if root.Imag == 0 {
		return FormatAuto(root.Real)
	}
	sign := "+"
	im := root.Imag
	if im < 0 {
		sign = "-"
		im = -im
	}
	return FormatAuto(root.Real) + " " + sign + " " + FormatAuto(im) + "i"
}

var rootKindLabels = map[numeric.RootKind]string{
	numeric.TwoReal:  "zwei reelle Lösungen",
	numeric.Repeated: "doppelte Lösung",
	numeric.Complex:  "komplexe Lösungen",
}

func runQuadratic(_ context.Context, _ *Env, p Params) (*Result, error) {
	var coeff [3]float64
	for i, name := range []string{"a", "b", "c"} {
		v, err := p.Number(name)
		if err != nil {
			return nil, err
		}
		coeff[i] = v
	}
	res, err := numeric.Quadratic(coeff[0], coeff[1], coeff[2])
	if err != nil {
		return nil, err
	}
	labels := make([]string, len(res.Roots))
	roots := make([]map[string]interface{}, len(res.Roots))
	for i, root := range res.Roots {
		labels[i] = fmt.Sprintf("x%d = %s", i+1, formatRoot(root))
		roots[i] = map[string]interface{}{"real": root.Real, "imag": root.Imag}
	}
	r := &Result{Summary: strings.Join(labels, ", ") + " (" + rootKindLabels[res.Kind] + ")"}
	r.Add("discriminant", "Diskriminante", res.Discriminant).
		Add("kind", "Art", string(res.Kind)).
		Add("roots", "Lösungen", roots)
	return r, nil
}

func runPythagorean(_ context.Context, _ *Env, p Params) (*Result, error) {
	var in numeric.PythagoreanInput
	var err error
	if in.A, err = optionalNumber(p, "a"); err != nil {
		return nil, err
	}
	if in.B, err = optionalNumber(p, "b"); err != nil {
		return nil, err
	}
	if in.C, err = optionalNumber(p, "c"); err != nil {
		return nil, err
	}
	out, err := numeric.Pythagorean(in)
	if err != nil {
		return nil, err
	}
	r := &Result{Summary: fmt.Sprintf("a = %s, b = %s, c = %s",
		FormatAuto(out.A), FormatAuto(out.B), FormatAuto(out.C))}
	r.Add("a", "Kathete a", mathx.Round(out.A, 6)).
		Add("b", "Kathete b", mathx.Round(out.B, 6)).
		Add("c", "Hypotenuse c", mathx.Round(out.C, 6))
	return r, nil
}

func runSample(key, label string, fn func([]float64) (float64, error)) Runner {
	return func(_ context.Context, _ *Env, p Params) (*Result, error) {
		values, err := p.List("values")
		if err != nil {
			return nil, err
		}
		v, err := fn(values)
		if err != nil {
			return nil, err
		}
		r := &Result{Summary: label + ": " + FormatAuto(v)}
		r.Add(key, label, v)
		return r, nil
	}
}

func joinNumbers(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = FormatAuto(v)
	}
	return strings.Join(parts, "; ")
}

func runMode(_ context.Context, _ *Env, p Params) (*Result, error) {
	values, err := p.List("values")
	if err != nil {
		return nil, err
	}
	mode, err := numeric.Mode(values)
	if err != nil {
		return nil, err
	}
	r := &Result{Summary: "Modus: " + joinNumbers(mode)}
	r.Add("mode", "Modus", mode)
	return r, nil
}

func runStatistics(_ context.Context, _ *Env, p Params) (*Result, error) {
	values, err := p.List("values")
	if err != nil {
		return nil, err
	}
	s, err := numeric.Summary(values)
	if err != nil {
		return nil, err
	}
	r := &Result{Summary: fmt.Sprintf("n = %d, Mittelwert %s, Standardabweichung %s",
		s.Count, FormatAuto(s.Mean), FormatAuto(s.StdDev))}
	r.Add("count", "Anzahl", s.Count).
		Add("sum", "Summe", s.Sum).
		Add("min", "Minimum", s.Min).
		Add("max", "Maximum", s.Max).
		Add("mean", "Mittelwert", s.Mean).
		Add("median", "Median", s.Median).
		Add("mode", "Modus", s.Mode).
		Add("variance", "Varianz", s.Variance).
		Add("std_dev", "Standardabweichung", s.StdDev)
	return r, nil
}

func runPercentage(_ context.Context, _ *Env, p Params) (*Result, error) {
	part, err := p.Number("part")
	if err != nil {
		return nil, err
	}
	whole, err := p.Number("whole")
	if err != nil {
		return nil, err
	}
	pct, err := numeric.Percentage(part, whole)
	if err != nil {
		return nil, err
	}
	r := &Result{Summary: FormatAuto(part) + " von " + FormatAuto(whole) + " = " + FormatNumber(pct, 2) + " %"}
	r.Add("percent", "Prozent", pct)
	return r, nil
}
