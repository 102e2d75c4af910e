package numeric

import (
	"math"

	"github.com/msto63/mRW/foundation/core/errors"
)

// RootKind classifies the roots of a quadratic
type RootKind string

const (
	TwoReal  RootKind = "two-real"
	Repeated RootKind = "repeated"
	Complex  RootKind = "complex"
)

// Root is a root of the form Real + Imag*i
type Root struct {
	Real float64 `json:"real"`
	Imag float64 `json:"imag"`
}

// QuadraticResult holds the discriminant and roots of ax² + bx + c
type QuadraticResult struct {
	Discriminant float64  `json:"discriminant"`
	Kind         RootKind `json:"kind"`
	Roots        []Root   `json:"roots"`
}

// Quadratic solves ax² + bx + c = 0. Real roots are ascending; a complex
// pair is returned as (re - im·i, re + im·i).
func Quadratic(a, b, c float64) (QuadraticResult, error) {
	for _, v := range []float64{a, b, c} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return QuadraticResult{}, errors.InvalidArgument(errors.ModuleNumeric, "quadratic", v, "finite coefficients")
		}
	}
	if a == 0 {
		return QuadraticResult{}, errors.InvalidArgument(errors.ModuleNumeric, "quadratic", a, "a != 0")
	}

	d := b*b - 4*a*c
	res := QuadraticResult{Discriminant: d}
	switch {
	case d > 0:
		sq := math.Sqrt(d)
		// q avoids cancellation when b² >> 4ac
		q := -0.5 * (b + math.Copysign(sq, b))
		x1, x2 := q/a, c/q
		if x1 > x2 {
			x1, x2 = x2, x1
		}
		res.Kind = TwoReal
		res.Roots = []Root{{Real: x1}, {Real: x2}}
	case d == 0:
		res.Kind = Repeated
		res.Roots = []Root{{Real: -b / (2 * a)}}
	default:
		re := -b / (2 * a)
		im := math.Abs(math.Sqrt(-d) / (2 * a))
		res.Kind = Complex
		res.Roots = []Root{{Real: re, Imag: -im}, {Real: re, Imag: im}}
	}
	for i := range res.Roots {
		if res.Roots[i].Real == 0 {
			res.Roots[i].Real = 0 // normalize -0
		}
	}
	return res, nil
}

// PythagoreanInput holds the two legs A, B and hypotenuse C; exactly one
// of them is zero and is solved for
type PythagoreanInput struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
}

// Pythagorean solves a² + b² = c² for the missing side
func Pythagorean(in PythagoreanInput) (PythagoreanInput, error) {
	missing := 0
	for _, v := range []float64{in.A, in.B, in.C} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return in, errors.InvalidArgument(errors.ModuleNumeric, "pythagorean", v, "non-negative finite sides")
		}
		if v == 0 {
			missing++
		}
	}
	if missing != 1 {
		return in, errors.InvalidArgument(errors.ModuleNumeric, "pythagorean", missing, "exactly one unknown side")
	}

	out := in
	switch {
	case in.C == 0:
		out.C = math.Hypot(in.A, in.B)
	case in.A == 0:
		if in.B >= in.C {
			return in, errors.InvalidArgument(errors.ModuleNumeric, "pythagorean", in.B, "leg shorter than hypotenuse")
		}
		out.A = math.Sqrt(in.C*in.C - in.B*in.B)
	default:
		if in.A >= in.C {
			return in, errors.InvalidArgument(errors.ModuleNumeric, "pythagorean", in.A, "leg shorter than hypotenuse")
		}
		out.B = math.Sqrt(in.C*in.C - in.A*in.A)
	}
	return out, nil
}

// Percentage returns part / whole * 100
func Percentage(part, whole float64) (float64, error) {
	if whole == 0 {
		return 0, errors.InvalidArgument(errors.ModuleNumeric, "percentage", whole, "whole != 0")
	}
	return part / whole * 100, nil
}
