package finance_test

import (
	"fmt"

	"github.com/msto63/mRW/pkg/calc/finance"
)

func ExampleAmortize() {
	res, _ := finance.Amortize(finance.AmortizationInput{
		Principal:         200000,
		AnnualRatePercent: 6,
		TermPeriods:       360,
	})
	fmt.Printf("%.2f %.2f\n", res.PeriodicPayment, res.TotalInterest)
	// Output: 1199.10 231676.00
}

func ExampleProjectDCA() {
	res, _ := finance.ProjectDCA(finance.DCAInput{Contribution: 100, PeriodicReturnPercent: 1, Periods: 12})
	fmt.Printf("%.2f\n", res.Balance)
	// Output: 1280.93
}
