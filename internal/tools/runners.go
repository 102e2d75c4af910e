package tools

import (
	"time"
)

// builtinRunners returns every runner keyed by catalog ID
func builtinRunners() map[string]Runner {
	all := make(map[string]Runner)
	for _, group := range []map[string]Runner{
		financeRunners(),
		healthRunners(),
		mathRunners(),
		convertRunners(),
		textRunners(),
		funRunners(),
	} {
		for id, run := range group {
			all[id] = run
		}
	}
	return all
}

// optionalNumber parses name when present and returns 0 otherwise
func optionalNumber(p Params, name string) (float64, error) {
	if !p.Has(name) {
		return 0, nil
	}
	return p.Number(name)
}

const displayDate = "02.01.2006"

func germanDate(t time.Time) string {
	return t.Format(displayDate)
}

var germanWeekdays = [...]string{
	time.Sunday:    "Sonntag",
	time.Monday:    "Montag",
	time.Tuesday:   "Dienstag",
	time.Wednesday: "Mittwoch",
	time.Thursday:  "Donnerstag",
	time.Friday:    "Freitag",
	time.Saturday:  "Samstag",
}

func germanWeekday(t time.Time) string {
	return germanWeekdays[t.Weekday()]
}
