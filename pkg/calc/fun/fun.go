// Package fun implements randomised tools: dice, coins and a decision wheel.
//
// Randomness comes from an injected *rand.Rand so results are reproducible
// under a fixed seed. It is not suitable for anything security related.
package fun

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/msto63/mRW/foundation/core/errors"
	"github.com/msto63/mRW/foundation/utils/stringx"
)

// Limits for a single request
const (
	MaxDice  = 100
	MaxSides = 1000
	MaxCoins = 1000
	MaxWheel = 100
	MinSides = 2
)

// Coin sides
const (
	Heads = "heads"
	Tails = "tails"
)

// Roller draws random outcomes. A *rand.Rand is not safe for concurrent
// use, so Roller guards it with a mutex.
type Roller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRoller wraps rng; a nil rng is replaced by a time-seeded source
func NewRoller(rng *rand.Rand) *Roller {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Roller{rng: rng}
}

// NewSeededRoller returns a Roller with a deterministic source
func NewSeededRoller(seed int64) *Roller {
	return NewRoller(rand.New(rand.NewSource(seed)))
}

// DiceResult holds the individual rolls and their total
type DiceResult struct {
	Sides int   `json:"sides"`
	Rolls []int `json:"rolls"`
	Total int   `json:"total"`
}

// RollDice rolls count dice with the given number of sides
func (r *Roller) RollDice(count, sides int) (DiceResult, error) {
	if count < 1 || count > MaxDice {
		return DiceResult{}, errors.InvalidArgument(errors.ModuleFun, "roll_dice", count, "1..100 dice")
	}
	if sides < MinSides || sides > MaxSides {
		return DiceResult{}, errors.InvalidArgument(errors.ModuleFun, "roll_dice", sides, "2..1000 sides")
	}

	res := DiceResult{Sides: sides, Rolls: make([]int, count)}
	r.mu.Lock()
	for i := range res.Rolls {
		res.Rolls[i] = r.rng.Intn(sides) + 1
		res.Total += res.Rolls[i]
	}
	r.mu.Unlock()
	return res, nil
}

// CoinResult holds the flips and the per-side counts
type CoinResult struct {
	Flips []string `json:"flips"`
	Heads int      `json:"heads"`
	Tails int      `json:"tails"`
}

// FlipCoins flips count fair coins
func (r *Roller) FlipCoins(count int) (CoinResult, error) {
	if count < 1 || count > MaxCoins {
		return CoinResult{}, errors.InvalidArgument(errors.ModuleFun, "flip_coins", count, "1..1000 coins")
	}

	res := CoinResult{Flips: make([]string, count)}
	r.mu.Lock()
	for i := range res.Flips {
		if r.rng.Intn(2) == 0 {
			res.Flips[i] = Heads
			res.Heads++
		} else {
			res.Flips[i] = Tails
			res.Tails++
		}
	}
	r.mu.Unlock()
	return res, nil
}

// WheelResult is the option the wheel stopped on
type WheelResult struct {
	Options []string `json:"options"`
	Index   int      `json:"index"`
	Choice  string   `json:"choice"`
}

// SpinWheel picks one of options uniformly. Blank options are dropped and
// the rest are trimmed.
func (r *Roller) SpinWheel(options []string) (WheelResult, error) {
	opts := make([]string, 0, len(options))
	for _, o := range options {
		if !stringx.IsBlank(o) {
			opts = append(opts, strings.TrimSpace(o))
		}
	}
	if len(opts) == 0 {
		return WheelResult{}, errors.InvalidArgument(errors.ModuleFun, "spin_wheel", options, "at least one option")
	}
	if len(opts) > MaxWheel {
		return WheelResult{}, errors.InvalidArgument(errors.ModuleFun, "spin_wheel", len(opts), "at most 100 options")
	}

	r.mu.Lock()
	i := r.rng.Intn(len(opts))
	r.mu.Unlock()
	return WheelResult{Options: opts, Index: i, Choice: opts[i]}, nil
}

// Do runs fn with exclusive access to the underlying source
func (r *Roller) Do(fn func(rng *rand.Rand)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(r.rng)
}
