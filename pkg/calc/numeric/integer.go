package numeric

import (
	"math"
	"math/big"

	"github.com/msto63/mRW/foundation/core/errors"
)

// MaxFactorialInput bounds n for the big-integer functions
const MaxFactorialInput = 10000

// abs64 returns |a| as uint64, so |MinInt64| is representable
func abs64(a int64) uint64 {
	if a == math.MinInt64 {
		return 1 << 63
	}
	if a < 0 {
		return uint64(-a)
	}
	return uint64(a)
}

func gcdU(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// GCD returns the greatest common divisor of |a| and |b|; GCD(a, 0) = |a|
func GCD(a, b int64) (int64, error) {
	g := gcdU(abs64(a), abs64(b))
	if g > math.MaxInt64 {
		return 0, errors.InvalidArgument(errors.ModuleNumeric, "gcd", a, "result within int64")
	}
	return int64(g), nil
}

// LCM returns the least common multiple of |a| and |b|; LCM(a, 0) = 0.
// It divides before multiplying and reports overflow as an error.
func LCM(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	ua, ub := abs64(a), abs64(b)
	q := ua / gcdU(ua, ub)
	if q != 0 && ub > math.MaxInt64/q {
		return 0, errors.InvalidArgument(errors.ModuleNumeric, "lcm", []int64{a, b}, "lcm within int64")
	}
	return int64(q * ub), nil
}

// GCDList folds GCD over values
func GCDList(values []int64) (int64, error) {
	if len(values) == 0 {
		return 0, errors.InvalidArgument(errors.ModuleNumeric, "gcd", 0, "at least one value")
	}
	acc := int64(0)
	for _, v := range values {
		g, err := GCD(acc, v)
		if err != nil {
			return 0, err
		}
		acc = g
	}
	return acc, nil
}

// LCMList folds LCM over values
func LCMList(values []int64) (int64, error) {
	if len(values) == 0 {
		return 0, errors.InvalidArgument(errors.ModuleNumeric, "lcm", 0, "at least one value")
	}
	acc := int64(1)
	for _, v := range values {
		l, err := LCM(acc, v)
		if err != nil {
			return 0, err
		}
		acc = l
	}
	return acc, nil
}

func checkN(op string, n int64) error {
	if n < 0 {
		return errors.InvalidArgument(errors.ModuleNumeric, op, n, "n >= 0")
	}
	if n > MaxFactorialInput {
		return errors.InvalidArgument(errors.ModuleNumeric, op, n, "n <= 10000")
	}
	return nil
}

// Factorial returns n!
func Factorial(n int64) (*big.Int, error) {
	if err := checkN("factorial", n); err != nil {
		return nil, err
	}
	if n < 2 {
		return big.NewInt(1), nil
	}
	return new(big.Int).MulRange(2, n), nil
}

func checkNR(op string, n, r int64) error {
	if err := checkN(op, n); err != nil {
		return err
	}
	if r < 0 || r > n {
		return errors.InvalidArgument(errors.ModuleNumeric, op, r, "0 <= r <= n")
	}
	return nil
}

// Permutation returns P(n, r) = n! / (n-r)!
func Permutation(n, r int64) (*big.Int, error) {
	if err := checkNR("permutation", n, r); err != nil {
		return nil, err
	}
	if r == 0 {
		return big.NewInt(1), nil
	}
	return new(big.Int).MulRange(n-r+1, n), nil
}

// Combination returns C(n, r) = n! / (r! (n-r)!)
func Combination(n, r int64) (*big.Int, error) {
	if err := checkNR("combination", n, r); err != nil {
		return nil, err
	}
	return new(big.Int).Binomial(n, r), nil
}
