// File: decimal.go
// Title: Decimal Arithmetic Implementation
// Description: Exact decimal arithmetic backed by big.Rat. Rounding is done
//              with integer arithmetic so half-up and half-even are exact.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core decimal operations
// - 2026-10-15 v0.2.0: Exact rounding, removed pooling

package mathx

import (
	"math/big"
	"strings"

	"github.com/msto63/mRW/foundation/core/errors"
)

// RoundingMode defines how decimal numbers are rounded
type RoundingMode int

const (
	// RoundingModeHalfUp rounds ties away from zero (commercial rounding)
	RoundingModeHalfUp RoundingMode = iota

	// RoundingModeHalfEven rounds ties to the even neighbour (banker's rounding)
	RoundingModeHalfEven

	// RoundingModeUp rounds away from zero
	RoundingModeUp

	// RoundingModeDown truncates toward zero
	RoundingModeDown
)

// Decimal is an immutable exact decimal value
type Decimal struct {
	value *big.Rat
}

// NewDecimal parses "123.45", "-6", "1e3" or "1/2"
func NewDecimal(s string) (Decimal, error) {
	r, ok := new(big.Rat).SetString(strings.TrimSpace(s))
	if !ok {
		return Decimal{}, errors.ParseFailure(errors.ModuleMathx, "", s, "decimal")
	}
	return Decimal{value: r}, nil
}

// MustNewDecimal parses s and panics on failure; for constants only
func MustNewDecimal(s string) Decimal {
	d, err := NewDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

// NewDecimalFromInt creates a Decimal from an integer
func NewDecimalFromInt(i int64) Decimal {
	return Decimal{value: new(big.Rat).SetInt64(i)}
}

// NewDecimalFromFloat creates a Decimal from a float64. Non-finite input
// yields zero; callers validate with ParseNumber first.
func NewDecimalFromFloat(f float64) Decimal {
	r := new(big.Rat)
	if r.SetFloat64(f) == nil {
		return Zero()
	}
	return Decimal{value: r}
}

// Zero returns 0
func Zero() Decimal { return Decimal{value: new(big.Rat)} }

// One returns 1
func One() Decimal { return NewDecimalFromInt(1) }

func (d Decimal) rat() *big.Rat {
	if d.value == nil {
		return new(big.Rat)
	}
	return d.value
}

// Add returns d + other
func (d Decimal) Add(other Decimal) Decimal {
	return Decimal{value: new(big.Rat).Add(d.rat(), other.rat())}
}

// Sub returns d - other
func (d Decimal) Sub(other Decimal) Decimal {
	return Decimal{value: new(big.Rat).Sub(d.rat(), other.rat())}
}

// Multiply returns d * other
func (d Decimal) Multiply(other Decimal) Decimal {
	return Decimal{value: new(big.Rat).Mul(d.rat(), other.rat())}
}

// Divide returns d / other
func (d Decimal) Divide(other Decimal) (Decimal, error) {
	if other.IsZero() {
		return Decimal{}, errors.InvalidArgument(errors.ModuleMathx, "divide", other.String(), "non-zero divisor")
	}
	return Decimal{value: new(big.Rat).Quo(d.rat(), other.rat())}, nil
}

// Abs returns |d|
func (d Decimal) Abs() Decimal {
	return Decimal{value: new(big.Rat).Abs(d.rat())}
}

// Neg returns -d
func (d Decimal) Neg() Decimal {
	return Decimal{value: new(big.Rat).Neg(d.rat())}
}

// Sign returns -1, 0 or +1
func (d Decimal) Sign() int { return d.rat().Sign() }

// IsZero reports d == 0
func (d Decimal) IsZero() bool { return d.Sign() == 0 }

// IsNegative reports d < 0
func (d Decimal) IsNegative() bool { return d.Sign() < 0 }

// Cmp compares d with other
func (d Decimal) Cmp(other Decimal) int { return d.rat().Cmp(other.rat()) }

// LessThan reports d < other
func (d Decimal) LessThan(other Decimal) bool { return d.Cmp(other) < 0 }

// Min returns the smaller of d and other
func (d Decimal) Min(other Decimal) Decimal {
	if d.Cmp(other) <= 0 {
		return d
	}
	return other
}

// Max returns the larger of d and other
func (d Decimal) Max(other Decimal) Decimal {
	if d.Cmp(other) >= 0 {
		return d
	}
	return other
}

// Round rounds d to places fractional digits
func (d Decimal) Round(places int, mode RoundingMode) Decimal {
	if places < 0 {
		places = 0
	}
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(places)), nil)
	scaled := new(big.Rat).Mul(d.rat(), new(big.Rat).SetInt(scale))

	num := new(big.Int).Abs(scaled.Num())
	den := scaled.Denom()
	q, r := new(big.Int).QuoRem(num, den, new(big.Int))

	if r.Sign() != 0 {
		twice := new(big.Int).Lsh(r, 1)
		half := twice.Cmp(den)
		switch mode {
		case RoundingModeHalfUp:
			if half >= 0 {
				q.Add(q, big.NewInt(1))
			}
		case RoundingModeHalfEven:
			if half > 0 || (half == 0 && q.Bit(0) == 1) {
				q.Add(q, big.NewInt(1))
			}
		case RoundingModeUp:
			q.Add(q, big.NewInt(1))
		case RoundingModeDown:
		}
	}
	if scaled.Sign() < 0 {
		q.Neg(q)
	}
	return Decimal{value: new(big.Rat).SetFrac(q, scale)}
}

// StringFixed formats d with exactly places fractional digits, rounding half-up
func (d Decimal) StringFixed(places int) string {
	if places < 0 {
		places = 0
	}
	return d.Round(places, RoundingModeHalfUp).rat().FloatString(places)
}

// String formats d without trailing zeros
func (d Decimal) String() string {
	r := d.rat()
	if r.IsInt() {
		return r.Num().String()
	}
	s := r.FloatString(12)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// Float64 returns the nearest float64
func (d Decimal) Float64() float64 {
	f, _ := d.rat().Float64()
	return f
}

// Pow returns d raised to a non-negative integer power
func (d Decimal) Pow(exp int) Decimal {
	result := One()
	base := d
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Multiply(base)
		}
		base = base.Multiply(base)
		exp >>= 1
	}
	return result
}
