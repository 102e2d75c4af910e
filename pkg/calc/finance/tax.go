package finance

import (
	"math"

	"github.com/msto63/mRW/foundation/core/errors"
	"github.com/msto63/mRW/foundation/utils/mathx"
)

// Bracket is one band of a progressive tax table. UpTo is the inclusive
// upper bound of the band; zero marks the open-ended top band.
type Bracket struct {
	UpTo        float64 `json:"up_to" yaml:"up_to"`
	RatePercent float64 `json:"rate_percent" yaml:"rate_percent"`
}

// BracketTax is the tax collected in one band
type BracketTax struct {
	From        float64 `json:"from"`
	To          float64 `json:"to"`
	Taxed       float64 `json:"taxed"`
	RatePercent float64 `json:"rate_percent"`
	Tax         float64 `json:"tax"`
}

// TaxResult is the outcome of a bracket calculation
type TaxResult struct {
	Taxable              float64      `json:"taxable"`
	Tax                  float64      `json:"tax"`
	EffectiveRatePercent float64      `json:"effective_rate_percent"`
	Breakdown            []BracketTax `json:"breakdown"`
}

// GiftTaxBrackets is the preset gift tax table (amounts in KRW)
var GiftTaxBrackets = []Bracket{
	{UpTo: 100_000_000, RatePercent: 10},
	{UpTo: 500_000_000, RatePercent: 20},
	{UpTo: 1_000_000_000, RatePercent: 30},
	{UpTo: 3_000_000_000, RatePercent: 40},
	{UpTo: 0, RatePercent: 50},
}

// WealthTaxBrackets is an illustrative net-worth tax table
var WealthTaxBrackets = []Bracket{
	{UpTo: 1_000_000, RatePercent: 0.5},
	{UpTo: 5_000_000, RatePercent: 1},
	{UpTo: 20_000_000, RatePercent: 1.5},
	{UpTo: 0, RatePercent: 2},
}

func validateBrackets(brackets []Bracket) error {
	if len(brackets) == 0 {
		return errors.InvalidArgument(errors.ModuleFinance, "progressive_tax", 0, "at least one bracket")
	}
	prev := 0.0
	for i, b := range brackets {
		if b.RatePercent < 0 || b.RatePercent > 100 {
			return errors.InvalidArgument(errors.ModuleFinance, "progressive_tax", b.RatePercent, "rate between 0 and 100")
		}
		last := i == len(brackets)-1
		if b.UpTo == 0 {
			if !last {
				return errors.InvalidArgument(errors.ModuleFinance, "progressive_tax", i, "only the last bracket may be open-ended")
			}
			continue
		}
		if b.UpTo <= prev {
			return errors.InvalidArgument(errors.ModuleFinance, "progressive_tax", b.UpTo, "ascending bracket bounds")
		}
		prev = b.UpTo
	}
	if brackets[len(brackets)-1].UpTo != 0 {
		return errors.InvalidArgument(errors.ModuleFinance, "progressive_tax", prev, "an open-ended top bracket")
	}
	return nil
}

// onePercent is 1/100 as an exact decimal
var onePercent = mathx.MustNewDecimal("0.01")

// percentRate converts a rate in percent to a fraction
func percentRate(p float64) mathx.Decimal {
	return mathx.NewDecimalFromFloat(p).Multiply(onePercent)
}

// ProgressiveTax walks the brackets in ascending order and taxes
// min(remaining, width) in each. An amount exactly on a bound stays in the
// lower bracket.
func ProgressiveTax(amount float64, brackets []Bracket) (TaxResult, error) {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return TaxResult{}, errors.InvalidArgument(errors.ModuleFinance, "progressive_tax", amount, "amount >= 0")
	}
	if err := validateBrackets(brackets); err != nil {
		return TaxResult{}, err
	}

	remaining := mathx.NewDecimalFromFloat(amount)
	lower := mathx.Zero()
	total := mathx.Zero()
	res := TaxResult{Taxable: amount}

	for _, b := range brackets {
		if remaining.IsZero() {
			break
		}
		take := remaining
		upper := remaining.Add(lower)
		if b.UpTo != 0 {
			upper = mathx.NewDecimalFromFloat(b.UpTo)
			take = remaining.Min(upper.Sub(lower))
		}
		tax := take.Multiply(percentRate(b.RatePercent))
		total = total.Add(tax)
		res.Breakdown = append(res.Breakdown, BracketTax{
			From:        lower.Float64(),
			To:          lower.Add(take).Float64(),
			Taxed:       take.Float64(),
			RatePercent: b.RatePercent,
			Tax:         tax.Round(2, mathx.RoundingModeHalfUp).Float64(),
		})
		remaining = remaining.Sub(take)
		lower = upper
	}

	res.Tax = total.Round(2, mathx.RoundingModeHalfUp).Float64()
	if amount > 0 {
		res.EffectiveRatePercent = total.Float64() / amount * 100
	}
	return res, nil
}

// GiftTaxInput is a gift amount and the deduction applied before the table
type GiftTaxInput struct {
	Amount    float64 `json:"amount"`
	Deduction float64 `json:"deduction"`
}

// GiftTax applies GiftTaxBrackets to the amount above the deduction
func GiftTax(in GiftTaxInput) (TaxResult, error) {
	if in.Amount < 0 || in.Deduction < 0 {
		return TaxResult{}, errors.InvalidArgument(errors.ModuleFinance, "gift_tax", in.Amount, "non-negative amount and deduction")
	}
	return ProgressiveTax(math.Max(0, in.Amount-in.Deduction), GiftTaxBrackets)
}

// WealthTaxInput is a net worth, its exemption and an optional custom table
type WealthTaxInput struct {
	NetWorth  float64   `json:"net_worth"`
	Exemption float64   `json:"exemption"`
	Brackets  []Bracket `json:"brackets,omitempty"`
}

// WealthTax applies the bracket table to net worth above the exemption
func WealthTax(in WealthTaxInput) (TaxResult, error) {
	if in.NetWorth < 0 || in.Exemption < 0 {
		return TaxResult{}, errors.InvalidArgument(errors.ModuleFinance, "wealth_tax", in.NetWorth, "non-negative net worth and exemption")
	}
	brackets := in.Brackets
	if len(brackets) == 0 {
		brackets = WealthTaxBrackets
	}
	return ProgressiveTax(math.Max(0, in.NetWorth-in.Exemption), brackets)
}
