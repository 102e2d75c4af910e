package finance

import (
	"math"

	"github.com/msto63/mRW/foundation/core/errors"
	"github.com/msto63/mRW/foundation/utils/mathx"
)

// DCAInput describes a dollar-cost-averaging plan
type DCAInput struct {
	Contribution          float64 `json:"contribution"`
	PeriodicReturnPercent float64 `json:"periodic_return_percent"`
	Periods               int     `json:"periods"`
	InitialBalance        float64 `json:"initial_balance,omitempty"`
}

// DCAPeriod is the state after one period
type DCAPeriod struct {
	Period      int     `json:"period"`
	Contributed float64 `json:"contributed"`
	Balance     float64 `json:"balance"`
}

// DCAResult is the outcome of a DCA projection
type DCAResult struct {
	Balance          float64     `json:"balance"`
	TotalContributed float64     `json:"total_contributed"`
	Gain             float64     `json:"gain"`
	Series           []DCAPeriod `json:"series"`
}

// ProjectDCA runs the plan period by period. Each period first adds the
// contribution and then applies growth: balance = (balance + c) * (1 + r).
func ProjectDCA(in DCAInput) (DCAResult, error) {
	if in.Periods < 1 {
		return DCAResult{}, errors.InvalidArgument(errors.ModuleFinance, "dca", in.Periods, "periods >= 1")
	}
	if in.Contribution < 0 || in.InitialBalance < 0 {
		return DCAResult{}, errors.InvalidArgument(errors.ModuleFinance, "dca", in.Contribution, "non-negative contribution and initial balance")
	}
	if in.PeriodicReturnPercent <= -100 {
		return DCAResult{}, errors.InvalidArgument(errors.ModuleFinance, "dca", in.PeriodicReturnPercent, "periodic return > -100%")
	}

	r := in.PeriodicReturnPercent / 100
	balance := in.InitialBalance
	contributed := 0.0
	series := make([]DCAPeriod, 0, in.Periods)
	for p := 1; p <= in.Periods; p++ {
		balance += in.Contribution
		contributed += in.Contribution
		balance *= 1 + r
		series = append(series, DCAPeriod{Period: p, Contributed: contributed, Balance: balance})
	}

	return DCAResult{
		Balance:          balance,
		TotalContributed: contributed,
		Gain:             balance - in.InitialBalance - contributed,
		Series:           series,
	}, nil
}

// ROIInput describes an investment outcome
type ROIInput struct {
	Initial float64 `json:"initial"`
	Final   float64 `json:"final"`
	Years   float64 `json:"years,omitempty"`
}

// ROIResult holds total and annualized return
type ROIResult struct {
	ROIPercent        float64 `json:"roi_percent"`
	AnnualizedPercent float64 `json:"annualized_percent"`
	Annualized        bool    `json:"annualized"`
}

// ROI computes (final-initial)/initial and, when years > 0, the geometric
// annual rate (final/initial)^(1/years) - 1.
func ROI(in ROIInput) (ROIResult, error) {
	if in.Initial <= 0 {
		return ROIResult{}, errors.InvalidArgument(errors.ModuleFinance, "roi", in.Initial, "initial investment > 0")
	}
	if in.Final < 0 {
		return ROIResult{}, errors.InvalidArgument(errors.ModuleFinance, "roi", in.Final, "final value >= 0")
	}
	res := ROIResult{ROIPercent: (in.Final - in.Initial) / in.Initial * 100}
	if in.Years > 0 {
		res.AnnualizedPercent = (math.Pow(in.Final/in.Initial, 1/in.Years) - 1) * 100
		res.Annualized = true
	}
	return res, nil
}

// CompoundResult holds a future value and the interest earned
type CompoundResult struct {
	FutureValue float64 `json:"future_value"`
	Interest    float64 `json:"interest"`
}

// CompoundInterest computes P(1 + r/k)^(k*t)
func CompoundInterest(principal, annualRatePercent float64, compoundsPerYear int, years float64) (CompoundResult, error) {
	if principal < 0 {
		return CompoundResult{}, errors.InvalidArgument(errors.ModuleFinance, "compound_interest", principal, "principal >= 0")
	}
	if compoundsPerYear < 1 {
		return CompoundResult{}, errors.InvalidArgument(errors.ModuleFinance, "compound_interest", compoundsPerYear, "compounds per year >= 1")
	}
	if years < 0 {
		return CompoundResult{}, errors.InvalidArgument(errors.ModuleFinance, "compound_interest", years, "years >= 0")
	}
	k := float64(compoundsPerYear)
	fv := principal * math.Pow(1+annualRatePercent/100/k, k*years)
	return CompoundResult{
		FutureValue: mathx.Round2(fv),
		Interest:    mathx.Round2(fv - principal),
	}, nil
}

// PresentValue discounts a future amount over periods at ratePercent per period
func PresentValue(future, ratePercent float64, periods int) (float64, error) {
	if periods < 0 {
		return 0, errors.InvalidArgument(errors.ModuleFinance, "present_value", periods, "periods >= 0")
	}
	if ratePercent <= -100 {
		return 0, errors.InvalidArgument(errors.ModuleFinance, "present_value", ratePercent, "rate > -100%")
	}
	return mathx.Round2(future / math.Pow(1+ratePercent/100, float64(periods))), nil
}

// SimpleInterest returns principal * rate * years
func SimpleInterest(principal, annualRatePercent, years float64) (float64, error) {
	if principal < 0 || years < 0 {
		return 0, errors.InvalidArgument(errors.ModuleFinance, "simple_interest", principal, "non-negative principal and years")
	}
	return mathx.Round2(principal * annualRatePercent / 100 * years), nil
}

// CapRate returns net operating income / property value in percent
func CapRate(netOperatingIncome, propertyValue float64) (float64, error) {
	if propertyValue <= 0 {
		return 0, errors.InvalidArgument(errors.ModuleFinance, "cap_rate", propertyValue, "property value > 0")
	}
	return netOperatingIncome / propertyValue * 100, nil
}
