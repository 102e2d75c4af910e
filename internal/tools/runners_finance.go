package tools

import (
	"context"
	"strings"

	"github.com/msto63/mRW/foundation/core/errors"
	"github.com/msto63/mRW/foundation/utils/mathx"
	"github.com/msto63/mRW/pkg/calc/finance"
)

func financeRunners() map[string]Runner {
	return map[string]Runner{
		"loan":              runLoan,
		"loan-schedule":     runLoanSchedule,
		"savings-plan":      runSavingsPlan,
		"compound-interest": runCompoundInterest,
		"present-value":     runPresentValue,
		"simple-interest":   runSimpleInterest,
		"roi":               runROI,
		"cap-rate":          runCapRate,
		"progressive-tax":   runProgressiveTax,
		"gift-tax":          runGiftTax,
		"wealth-tax":        runWealthTax,
	}
}

func loanInput(p Params) (finance.AmortizationInput, error) {
	var in finance.AmortizationInput
	var err error
	if in.Principal, err = p.Number("principal"); err != nil {
		return in, err
	}
	if in.AnnualRatePercent, err = p.Number("rate"); err != nil {
		return in, err
	}
	if in.TermPeriods, err = p.Integer("months"); err != nil {
		return in, err
	}
	in.PeriodsPerYear = 12
	return in, nil
}

func runLoan(_ context.Context, _ *Env, p Params) (*Result, error) {
	in, err := loanInput(p)
	if err != nil {
		return nil, err
	}
	res, err := finance.Amortize(in)
	if err != nil {
		return nil, err
	}
	r := &Result{Summary: "Monatliche Rate: " + FormatMoney(res.PeriodicPayment)}
	r.Add("payment", "Monatliche Rate", res.PeriodicPayment).
		Add("total_payment", "Gesamtbetrag", res.TotalPayment).
		Add("total_interest", "Zinskosten", res.TotalInterest)
	return r, nil
}

func runLoanSchedule(_ context.Context, _ *Env, p Params) (*Result, error) {
	in, err := loanInput(p)
	if err != nil {
		return nil, err
	}
	rows, err := finance.Schedule(in)
	if err != nil {
		return nil, err
	}
	table := make([]map[string]interface{}, len(rows))
	interest := 0.0
	for i, row := range rows {
		interest += row.Interest
		table[i] = map[string]interface{}{
			"period":    row.Period,
			"payment":   row.Payment,
			"interest":  row.Interest,
			"principal": row.Principal,
			"balance":   row.Balance,
		}
	}
	r := &Result{Summary: FormatNumber(float64(len(rows)), 0) + " Raten, Zinsen gesamt " + FormatMoney(interest)}
	r.Add("installments", "Raten", len(rows)).
		Add("total_interest", "Zinsen gesamt", mathx.Round2(interest)).
		Add("schedule", "Tilgungsplan", table)
	return r, nil
}

func runSavingsPlan(_ context.Context, _ *Env, p Params) (*Result, error) {
	var in finance.DCAInput
	var err error
	if in.Contribution, err = p.Number("contribution"); err != nil {
		return nil, err
	}
	if in.PeriodicReturnPercent, err = p.Number("rate"); err != nil {
		return nil, err
	}
	if in.Periods, err = p.Integer("periods"); err != nil {
		return nil, err
	}
	if in.InitialBalance, err = optionalNumber(p, "initial"); err != nil {
		return nil, err
	}
	res, err := finance.ProjectDCA(in)
	if err != nil {
		return nil, err
	}
	r := &Result{Summary: "Endkapital: " + FormatMoney(res.Balance)}
	r.Add("balance", "Endkapital", mathx.Round2(res.Balance)).
		Add("total_contributed", "Eingezahlt", mathx.Round2(res.TotalContributed)).
		Add("gain", "Ertrag", mathx.Round2(res.Gain))
	return r, nil
}

func runCompoundInterest(_ context.Context, _ *Env, p Params) (*Result, error) {
	principal, err := p.Number("principal")
	if err != nil {
		return nil, err
	}
	rate, err := p.Number("rate")
	if err != nil {
		return nil, err
	}
	years, err := p.Number("years")
	if err != nil {
		return nil, err
	}
	k, err := p.Integer("compounds")
	if err != nil {
		return nil, err
	}
	res, err := finance.CompoundInterest(principal, rate, k, years)
	if err != nil {
		return nil, err
	}
	r := &Result{Summary: "Endwert: " + FormatMoney(res.FutureValue)}
	r.Add("future_value", "Endwert", res.FutureValue).
		Add("interest", "Zinsertrag", res.Interest)
	return r, nil
}

func runPresentValue(_ context.Context, _ *Env, p Params) (*Result, error) {
	future, err := p.Number("future")
	if err != nil {
		return nil, err
	}
	rate, err := p.Number("rate")
	if err != nil {
		return nil, err
	}
	periods, err := p.Integer("periods")
	if err != nil {
		return nil, err
	}
	pv, err := finance.PresentValue(future, rate, periods)
	if err != nil {
		return nil, err
	}
	r := &Result{Summary: "Barwert: " + FormatMoney(pv)}
	r.Add("present_value", "Barwert", pv)
	return r, nil
}

func runSimpleInterest(_ context.Context, _ *Env, p Params) (*Result, error) {
	principal, err := p.Number("principal")
	if err != nil {
		return nil, err
	}
	rate, err := p.Number("rate")
	if err != nil {
		return nil, err
	}
	years, err := p.Number("years")
	if err != nil {
		return nil, err
	}
	interest, err := finance.SimpleInterest(principal, rate, years)
	if err != nil {
		return nil, err
	}
	r := &Result{Summary: "Zinsen: " + FormatMoney(interest)}
	r.Add("interest", "Zinsen", interest).
		Add("total", "Endbetrag", mathx.Round2(principal+interest))
	return r, nil
}

func runROI(_ context.Context, _ *Env, p Params) (*Result, error) {
	var in finance.ROIInput
	var err error
	if in.Initial, err = p.Number("initial"); err != nil {
		return nil, err
	}
	if in.Final, err = p.Number("final"); err != nil {
		return nil, err
	}
	if in.Years, err = optionalNumber(p, "years"); err != nil {
		return nil, err
	}
	res, err := finance.ROI(in)
	if err != nil {
		return nil, err
	}
	summary := "Rendite: " + FormatNumber(res.ROIPercent, 2) + " %"
	r := &Result{}
	r.Add("roi_percent", "Rendite (%)", mathx.Round2(res.ROIPercent))
	if res.Annualized {
		summary += ", " + FormatNumber(res.AnnualizedPercent, 2) + " % p.a."
		r.Add("annualized_percent", "Rendite p.a. (%)", mathx.Round2(res.AnnualizedPercent))
	}
	r.Summary = summary
	return r, nil
}

func runCapRate(_ context.Context, _ *Env, p Params) (*Result, error) {
	income, err := p.Number("income")
	if err != nil {
		return nil, err
	}
	value, err := p.Number("value")
	if err != nil {
		return nil, err
	}
	rate, err := finance.CapRate(income, value)
	if err != nil {
		return nil, err
	}
	r := &Result{Summary: "Mietrendite: " + FormatNumber(rate, 2) + " %"}
	r.Add("cap_rate_percent", "Mietrendite (%)", mathx.Round2(rate))
	return r, nil
}

// parseBrackets reads "upTo:rate" pairs such as "10000:10,50000:20,0:30"
func parseBrackets(p Params, name string) ([]finance.Bracket, error) {
	parts, err := p.Strings(name)
	if err != nil {
		return nil, err
	}
	brackets := make([]finance.Bracket, 0, len(parts))
	for _, part := range parts {
		upTo, rate, ok := strings.Cut(part, ":")
		if !ok {
			return nil, errors.ParseFailure(errors.ModuleTools, name, part, "upper bound:rate percent")
		}
		var b finance.Bracket
		if b.UpTo, err = mathx.ParseNamedNumber(name, upTo); err != nil {
			return nil, err
		}
		if b.RatePercent, err = mathx.ParseNamedNumber(name, rate); err != nil {
			return nil, err
		}
		brackets = append(brackets, b)
	}
	return brackets, nil
}

func taxResult(label string, res finance.TaxResult) *Result {
	rows := make([]map[string]interface{}, len(res.Breakdown))
	for i, b := range res.Breakdown {
		rows[i] = map[string]interface{}{
			"from":         b.From,
			"to":           b.To,
			"taxed":        b.Taxed,
			"rate_percent": b.RatePercent,
			"tax":          b.Tax,
		}
	}
	r := &Result{Summary: label + ": " + FormatMoney(res.Tax) + " (" + FormatNumber(res.EffectiveRatePercent, 2) + " %)"}
	r.Add("taxable", "Steuerpflichtiger Betrag", res.Taxable).
		Add("tax", label, res.Tax).
		Add("effective_rate_percent", "Effektiver Steuersatz (%)", mathx.Round2(res.EffectiveRatePercent)).
		Add("breakdown", "Stufen", rows)
	return r
}

func runProgressiveTax(_ context.Context, _ *Env, p Params) (*Result, error) {
	amount, err := p.Number("amount")
	if err != nil {
		return nil, err
	}
	brackets, err := parseBrackets(p, "brackets")
	if err != nil {
		return nil, err
	}
	res, err := finance.ProgressiveTax(amount, brackets)
	if err != nil {
		return nil, err
	}
	return taxResult("Steuer", res), nil
}

func runGiftTax(_ context.Context, _ *Env, p Params) (*Result, error) {
	var in finance.GiftTaxInput
	var err error
	if in.Amount, err = p.Number("amount"); err != nil {
		return nil, err
	}
	if in.Deduction, err = optionalNumber(p, "deduction"); err != nil {
		return nil, err
	}
	res, err := finance.GiftTax(in)
	if err != nil {
		return nil, err
	}
	return taxResult("Schenkungsteuer", res), nil
}

func runWealthTax(_ context.Context, _ *Env, p Params) (*Result, error) {
	var in finance.WealthTaxInput
	var err error
	if in.NetWorth, err = p.Number("net_worth"); err != nil {
		return nil, err
	}
	if in.Exemption, err = optionalNumber(p, "exemption"); err != nil {
		return nil, err
	}
	res, err := finance.WealthTax(in)
	if err != nil {
		return nil, err
	}
	return taxResult("Vermögensteuer", res), nil
}
