package health

import (
	"time"

	"github.com/msto63/mRW/foundation/core/errors"
)

const (
	// SleepCycle is the length of one sleep cycle
	SleepCycle = 90 * time.Minute
	// FallAsleep is the assumed time to fall asleep
	FallAsleep = 14 * time.Minute
)

// SleepMode selects what the anchor time means
type SleepMode string

const (
	// WakeAt: the anchor is the desired wake time, suggest bedtimes
	WakeAt SleepMode = "wake_at"
	// BedAt: the anchor is the bedtime, suggest wake times
	BedAt SleepMode = "bed_at"
)

// SleepOption is one suggestion
type SleepOption struct {
	Time   time.Time     `json:"time"`
	Cycles int           `json:"cycles"`
	Sleep  time.Duration `json:"sleep"`
}

// SleepCycles suggests times that align with full 90-minute cycles,
// best option first (six cycles down to three).
func SleepCycles(anchor time.Time, mode SleepMode) ([]SleepOption, error) {
	if mode != WakeAt && mode != BedAt {
		return nil, errors.InvalidArgument(errors.ModuleHealth, "sleep_cycles", mode, "wake_at or bed_at")
	}
	out := make([]SleepOption, 0, 4)
	for cycles := 6; cycles >= 3; cycles-- {
		sleep := time.Duration(cycles) * SleepCycle
		var t time.Time
		if mode == WakeAt {
			t = anchor.Add(-sleep - FallAsleep)
		} else {
			t = anchor.Add(FallAsleep + sleep)
		}
		out = append(out, SleepOption{Time: t, Cycles: cycles, Sleep: sleep})
	}
	return out, nil
}
