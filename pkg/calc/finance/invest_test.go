package finance

import (
	"math"
	"testing"

	"github.com/msto63/mRW/foundation/core/errors"
)

func TestDCAZeroReturn(t *testing.T) {
	for _, n := range []int{1, 5, 12, 120} {
		res, err := ProjectDCA(DCAInput{Contribution: 100, PeriodicReturnPercent: 0, Periods: n})
		if err != nil {
			t.Fatalf("ProjectDCA error = %v", err)
		}
		if res.Balance != 100*float64(n) {
			t.Errorf("ProjectDCA(n=%d).Balance = %v, want %v", n, res.Balance, 100*float64(n))
		}
		if res.Gain != 0 {
			t.Errorf("ProjectDCA(n=%d).Gain = %v, want 0", n, res.Gain)
		}
		if len(res.Series) != n {
			t.Errorf("len(Series) = %d, want %d", len(res.Series), n)
		}
	}
}

func TestDCAContributionThenGrowth(t *testing.T) {
	res, err := ProjectDCA(DCAInput{Contribution: 100, PeriodicReturnPercent: 10, Periods: 2})
	if err != nil {
		t.Fatalf("ProjectDCA error = %v", err)
	}
	// (0+100)*1.1 = 110; (110+100)*1.1 = 231
	if math.Abs(res.Balance-231) > 1e-9 {
		t.Errorf("Balance = %v, want 231", res.Balance)
	}
	if res.TotalContributed != 200 || math.Abs(res.Gain-31) > 1e-9 {
		t.Errorf("contributed %v gain %v, want 200 and 31", res.TotalContributed, res.Gain)
	}
}

func TestDCAValidation(t *testing.T) {
	if _, err := ProjectDCA(DCAInput{Contribution: 100, Periods: 0}); !errors.IsInvalidArgument(err) {
		t.Errorf("periods 0 error = %v", err)
	}
	if _, err := ProjectDCA(DCAInput{Contribution: 100, Periods: 3, PeriodicReturnPercent: -100}); !errors.IsInvalidArgument(err) {
		t.Errorf("return -100%% error = %v", err)
	}
}

func TestROI(t *testing.T) {
	res, err := ROI(ROIInput{Initial: 1000, Final: 1210, Years: 2})
	if err != nil {
		t.Fatalf("ROI error = %v", err)
	}
	if math.Abs(res.ROIPercent-21) > 1e-9 {
		t.Errorf("ROIPercent = %v, want 21", res.ROIPercent)
	}
	if !res.Annualized || math.Abs(res.AnnualizedPercent-10) > 1e-9 {
		t.Errorf("AnnualizedPercent = %v (%v), want 10", res.AnnualizedPercent, res.Annualized)
	}

	res, err = ROI(ROIInput{Initial: 500, Final: 400})
	if err != nil {
		t.Fatalf("ROI error = %v", err)
	}
	if res.Annualized || res.ROIPercent != -20 {
		t.Errorf("ROI without years = %+v", res)
	}

	for _, initial := range []float64{0, -5} {
		if _, err := ROI(ROIInput{Initial: initial, Final: 10}); !errors.IsInvalidArgument(err) {
			t.Errorf("ROI(initial=%v) error = %v, want invalid argument", initial, err)
		}
	}
}

func TestCompoundAndPresentValue(t *testing.T) {
	res, err := CompoundInterest(1000, 5, 1, 10)
	if err != nil {
		t.Fatalf("CompoundInterest error = %v", err)
	}
	if res.FutureValue != 1628.89 || res.Interest != 628.89 {
		t.Errorf("CompoundInterest = %+v, want 1628.89 / 628.89", res)
	}

	pv, err := PresentValue(1628.89, 5, 10)
	if err != nil || math.Abs(pv-1000) > 0.01 {
		t.Errorf("PresentValue = %v, %v, want ≈ 1000", pv, err)
	}

	if _, err := CompoundInterest(1000, 5, 0, 1); !errors.IsInvalidArgument(err) {
		t.Errorf("compounds 0 error = %v", err)
	}
}

func TestSimpleInterestAndCapRate(t *testing.T) {
	if got, _ := SimpleInterest(2000, 3.5, 2); got != 140 {
		t.Errorf("SimpleInterest = %v, want 140", got)
	}
	if got, _ := CapRate(25000, 500000); got != 5 {
		t.Errorf("CapRate = %v, want 5", got)
	}
	if _, err := CapRate(25000, 0); !errors.IsInvalidArgument(err) {
		t.Errorf("CapRate(value 0) error = %v", err)
	}
}
