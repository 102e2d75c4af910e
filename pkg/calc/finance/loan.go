package finance

import (
	"math"

	"github.com/msto63/mRW/foundation/core/errors"
	"github.com/msto63/mRW/foundation/utils/mathx"
)

// DefaultPeriodsPerYear is used when AmortizationInput.PeriodsPerYear is zero
const DefaultPeriodsPerYear = 12

// AmortizationInput describes a fixed-payment loan
type AmortizationInput struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	TermPeriods       int     `json:"term_periods"`
	PeriodsPerYear    int     `json:"periods_per_year,omitempty"`
}

// AmortizationResult holds the payment and totals
type AmortizationResult struct {
	PeriodicPayment float64 `json:"periodic_payment"`
	TotalPayment    float64 `json:"total_payment"`
	TotalInterest   float64 `json:"total_interest"`
}

// Installment is one row of a repayment schedule
type Installment struct {
	Period    int     `json:"period"`
	Payment   float64 `json:"payment"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Balance   float64 `json:"balance"`
}

func (in AmortizationInput) validate() (AmortizationInput, error) {
	if in.Principal < 0 || math.IsNaN(in.Principal) || math.IsInf(in.Principal, 0) {
		return in, errors.InvalidArgument(errors.ModuleFinance, "amortize", in.Principal, "principal >= 0")
	}
	if in.AnnualRatePercent < 0 || math.IsNaN(in.AnnualRatePercent) || math.IsInf(in.AnnualRatePercent, 0) {
		return in, errors.InvalidArgument(errors.ModuleFinance, "amortize", in.AnnualRatePercent, "annual rate >= 0")
	}
	if in.TermPeriods < 1 {
		return in, errors.InvalidArgument(errors.ModuleFinance, "amortize", in.TermPeriods, "term >= 1 period")
	}
	if in.PeriodsPerYear == 0 {
		in.PeriodsPerYear = DefaultPeriodsPerYear
	}
	if in.PeriodsPerYear < 0 {
		return in, errors.InvalidArgument(errors.ModuleFinance, "amortize", in.PeriodsPerYear, "periods per year >= 1")
	}
	return in, nil
}

// annuityPayment returns the unrounded periodic payment
func annuityPayment(principal, r float64, n int) float64 {
	if r == 0 {
		return principal / float64(n)
	}
	g := math.Pow(1+r, float64(n))
	return principal * r * g / (g - 1)
}

// Amortize computes the fixed periodic payment of a loan. The payment is
// rounded to cents and the total is the exact product of payment and term.
// TotalInterest is TotalPayment - Principal in float64, so that identity
// holds exactly for every principal.
func Amortize(in AmortizationInput) (AmortizationResult, error) {
	in, err := in.validate()
	if err != nil {
		return AmortizationResult{}, err
	}
	r := in.AnnualRatePercent / 100 / float64(in.PeriodsPerYear)

	payment := mathx.NewDecimalFromFloat(annuityPayment(in.Principal, r, in.TermPeriods)).
		Round(2, mathx.RoundingModeHalfUp)
	total := payment.Multiply(mathx.NewDecimalFromInt(int64(in.TermPeriods))).Float64()

	return AmortizationResult{
		PeriodicPayment: payment.Float64(),
		TotalPayment:    total,
		TotalInterest:   total - in.Principal,
	}, nil
}

// Schedule returns the period-by-period repayment table. Interest is
// rounded to cents each period; the last installment absorbs the residue
// so the balance ends at exactly zero.
func Schedule(in AmortizationInput) ([]Installment, error) {
	in, err := in.validate()
	if err != nil {
		return nil, err
	}
	r := in.AnnualRatePercent / 100 / float64(in.PeriodsPerYear)
	rate := mathx.NewDecimalFromFloat(r)
	payment := mathx.NewDecimalFromFloat(annuityPayment(in.Principal, r, in.TermPeriods)).
		Round(2, mathx.RoundingModeHalfUp)
	balance := mathx.NewDecimalFromFloat(in.Principal).Round(2, mathx.RoundingModeHalfUp)

	rows := make([]Installment, 0, in.TermPeriods)
	for p := 1; p <= in.TermPeriods; p++ {
		interest := balance.Multiply(rate).Round(2, mathx.RoundingModeHalfUp)
		pay := payment
		principal := pay.Sub(interest)
		if p == in.TermPeriods || balance.LessThan(principal) {
			principal = balance
			pay = interest.Add(principal)
		}
		balance = balance.Sub(principal)
		rows = append(rows, Installment{
			Period:    p,
			Payment:   pay.Float64(),
			Interest:  interest.Float64(),
			Principal: principal.Float64(),
			Balance:   balance.Float64(),
		})
		if balance.IsZero() {
			break
		}
	}
	return rows, nil
}
