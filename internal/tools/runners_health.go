package tools

import (
	"context"
	"strings"

	"github.com/msto63/mRW/foundation/core/errors"
	"github.com/msto63/mRW/foundation/utils/mathx"
	"github.com/msto63/mRW/foundation/utils/timex"
	"github.com/msto63/mRW/pkg/calc/health"
)

func healthRunners() map[string]Runner {
	return map[string]Runner{
		"bmi":           runBMI,
		"bmr":           runBMR,
		"calories":      runCalories,
		"due-date":      runDueDate,
		"ovulation":     runOvulation,
		"sleep-bedtime": runSleep(health.WakeAt, "wake"),
		"sleep-wake":    runSleep(health.BedAt, "bed"),
		"age":           runAge,
	}
}

var bmiLabels = map[string]string{
	"underweight":     "Untergewicht",
	"normal":          "Normalgewicht",
	"overweight":      "Übergewicht",
	"obese class I":   "Adipositas Grad I",
	"obese class II":  "Adipositas Grad II",
	"obese class III": "Adipositas Grad III",
}

func runBMI(_ context.Context, _ *Env, p Params) (*Result, error) {
	w, err := p.Number("weight")
	if err != nil {
		return nil, err
	}
	h, err := p.Number("height")
	if err != nil {
		return nil, err
	}
	res, err := health.BMI(w, h)
	if err != nil {
		return nil, err
	}
	label := bmiLabels[res.Category]
	r := &Result{Summary: "BMI " + FormatNumber(res.Value, 1) + " (" + label + ")"}
	r.Add("bmi", "BMI", res.Value).
		Add("category", "Kategorie", res.Category).
		Add("category_label", "Einstufung", label)
	return r, nil
}

func bodyInput(p Params, withActivity bool) (health.BodyMetricsInput, error) {
	var in health.BodyMetricsInput
	var err error
	if in.WeightKg, err = p.Number("weight"); err != nil {
		return in, err
	}
	if in.HeightCm, err = p.Number("height"); err != nil {
		return in, err
	}
	if in.Age, err = p.Integer("age"); err != nil {
		return in, err
	}
	sex, err := p.Text("sex")
	if err != nil {
		return in, err
	}
	if in.Sex, err = health.ParseSex(sex); err != nil {
		return in, err
	}
	if withActivity {
		level, err := p.Text("activity")
		if err != nil {
			return in, err
		}
		if in.ActivityLevel, err = health.ParseActivityLevel(level); err != nil {
			return in, err
		}
	}
	return in, nil
}

func runBMR(_ context.Context, _ *Env, p Params) (*Result, error) {
	in, err := bodyInput(p, false)
	if err != nil {
		return nil, err
	}
	bmr, err := health.BMR(in)
	if err != nil {
		return nil, err
	}
	r := &Result{Summary: "Grundumsatz: " + FormatNumber(bmr, 0) + " kcal/Tag"}
	r.Add("bmr", "Grundumsatz (kcal)", mathx.Round(bmr, 0))
	return r, nil
}

func runCalories(_ context.Context, _ *Env, p Params) (*Result, error) {
	in, err := bodyInput(p, true)
	if err != nil {
		return nil, err
	}
	g, err := health.Goals(in)
	if err != nil {
		return nil, err
	}
	r := &Result{Summary: "Kalorienbedarf: " + FormatNumber(g.Maintain, 0) + " kcal/Tag"}
	r.Add("bmr", "Grundumsatz (kcal)", g.BMR).
		Add("maintain", "Gewicht halten (kcal)", g.Maintain).
		Add("lose", "Abnehmen (kcal)", g.Lose).
		Add("gain", "Zunehmen (kcal)", g.Gain)
	return r, nil
}

func runDueDate(_ context.Context, env *Env, p Params) (*Result, error) {
	last, err := p.Date("last_period")
	if err != nil {
		return nil, err
	}
	if timex.DaysBetween(last, env.Today()) > health.MaxGestationDays {
		return nil, errors.InvalidArgument(errors.ModuleTools, "due_date", timex.FormatDate(last), "last period within the last 43 weeks")
	}
	res, err := health.DueDate(last, env.Today())
	if err != nil {
		return nil, err
	}
	r := &Result{Summary: "Geburtstermin: " + germanDate(res.DueDate)}
	r.Add("due_date", "Geburtstermin", res.DueDate).
		Add("conception", "Empfängnis", res.Conception).
		Add("weeks", "SSW (Wochen)", res.WeeksPregnant).
		Add("days", "SSW (Tage)", res.DaysPregnant)
	return r, nil
}

func runOvulation(_ context.Context, _ *Env, p Params) (*Result, error) {
	start, err := p.Date("period_start")
	if err != nil {
		return nil, err
	}
	cycle, err := p.Integer("cycle")
	if err != nil {
		return nil, err
	}
	res, err := health.Ovulation(start, cycle)
	if err != nil {
		return nil, err
	}
	r := &Result{Summary: "Eisprung: " + germanDate(res.Ovulation) +
		", fruchtbar " + germanDate(res.FertileStart) + " bis " + germanDate(res.FertileEnd)}
	r.Add("next_period", "Nächste Periode", res.NextPeriod).
		Add("ovulation", "Eisprung", res.Ovulation).
		Add("fertile_start", "Fruchtbar ab", res.FertileStart).
		Add("fertile_end", "Fruchtbar bis", res.FertileEnd)
	return r, nil
}

func runSleep(mode health.SleepMode, param string) Runner {
	return func(_ context.Context, env *Env, p Params) (*Result, error) {
		anchor, err := p.Clock(param, env.Today())
		if err != nil {
			return nil, err
		}
		options, err := health.SleepCycles(anchor, mode)
		if err != nil {
			return nil, err
		}
		times := make([]string, len(options))
		rows := make([]map[string]interface{}, len(options))
		for i, o := range options {
			times[i] = o.Time.Format("15:04")
			rows[i] = map[string]interface{}{
				"time":        times[i],
				"cycles":      o.Cycles,
				"sleep_hours": o.Sleep.Hours(),
			}
		}
		prefix := "Schlafenszeiten: "
		if mode == health.BedAt {
			prefix = "Weckzeiten: "
		}
		r := &Result{Summary: prefix + strings.Join(times, ", ")}
		r.Add("times", "Uhrzeiten", times).
			Add("options", "Vorschläge", rows)
		return r, nil
	}
}

func runAge(_ context.Context, env *Env, p Params) (*Result, error) {
	birth, err := p.Date("birth")
	if err != nil {
		return nil, err
	}
	today := env.Today()
	if birth.After(today) {
		return nil, errors.InvalidArgument(errors.ModuleTools, "age", timex.FormatDate(birth), "birth date not in the future")
	}
	years := timex.Age(birth, today)
	days := timex.DaysBetween(birth, today)
	r := &Result{Summary: FormatNumber(float64(years), 0) + " Jahre (" + FormatNumber(float64(days), 0) + " Tage)"}
	r.Add("years", "Jahre", years).
		Add("days", "Tage", days).
		Add("weekday", "Geburtstag (Wochentag)", germanWeekday(birth))
	return r, nil
}
