package health

import (
	"time"

	"github.com/msto63/mRW/foundation/core/errors"
	"github.com/msto63/mRW/foundation/utils/timex"
)

const (
	gestationDays   = 280
	conceptionDays  = 14
	lutealPhaseDays = 14
	fertileBefore   = 5
	fertileAfter    = 1

	MinCycleLength = 21
	MaxCycleLength = 45

	// MaxGestationDays is the longest plausible span since the last period
	MaxGestationDays = gestationDays + 21
)

// DueDateResult holds pregnancy dates derived from the last period
type DueDateResult struct {
	DueDate       time.Time `json:"due_date"`
	Conception    time.Time `json:"conception"`
	WeeksPregnant int       `json:"weeks_pregnant"`
	DaysPregnant  int       `json:"days_pregnant"`
}

// DueDate applies Naegele's rule: last period + 280 days. The gestational
// age is measured against today and is zero when today precedes the period.
func DueDate(lastPeriod, today time.Time) (DueDateResult, error) {
	if lastPeriod.IsZero() {
		return DueDateResult{}, errors.InvalidArgument(errors.ModuleHealth, "due_date", lastPeriod, "a date")
	}
	days := timex.DaysBetween(lastPeriod, today)
	if days < 0 {
		days = 0
	}
	return DueDateResult{
		DueDate:       timex.AddDays(lastPeriod, gestationDays),
		Conception:    timex.AddDays(lastPeriod, conceptionDays),
		WeeksPregnant: days / 7,
		DaysPregnant:  days % 7,
	}, nil
}

// OvulationResult holds the estimated cycle dates
type OvulationResult struct {
	NextPeriod   time.Time `json:"next_period"`
	Ovulation    time.Time `json:"ovulation"`
	FertileStart time.Time `json:"fertile_start"`
	FertileEnd   time.Time `json:"fertile_end"`
}

// Ovulation estimates ovulation as 14 days before the next period.
// The fertile window runs from five days before to one day after.
func Ovulation(periodStart time.Time, cycleLength int) (OvulationResult, error) {
	if cycleLength < MinCycleLength || cycleLength > MaxCycleLength {
		return OvulationResult{}, errors.InvalidArgument(errors.ModuleHealth, "ovulation", cycleLength, "cycle length between 21 and 45 days")
	}
	next := timex.AddDays(periodStart, cycleLength)
	ov := timex.AddDays(next, -lutealPhaseDays)
	return OvulationResult{
		NextPeriod:   next,
		Ovulation:    ov,
		FertileStart: timex.AddDays(ov, -fertileBefore),
		FertileEnd:   timex.AddDays(ov, fertileAfter),
	}, nil
}
