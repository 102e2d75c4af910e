package tools

import (
	"context"

	"github.com/msto63/mRW/pkg/calc/convert"
)

func convertRunners() map[string]Runner {
	m := map[string]Runner{"convert": runConvert("")}
	for _, c := range convert.Categories() {
		m["convert-"+string(c)] = runConvert(c)
	}
	return m
}

// runConvert returns a converter fixed to category; an empty category
// reads it from the optional "category" parameter or infers it from the
// source unit.
func runConvert(category convert.Category) Runner {
	return func(_ context.Context, _ *Env, p Params) (*Result, error) {
		value, err := p.Number("value")
		if err != nil {
			return nil, err
		}
		from, err := p.Text("from")
		if err != nil {
			return nil, err
		}
		to, err := p.Text("to")
		if err != nil {
			return nil, err
		}
		cat := category
		if cat == "" && p.Has("category") {
			if cat, err = convert.ParseCategory(p["category"]); err != nil {
				return nil, err
			}
		}

		out, err := convert.ConvertRequest(convert.ConversionRequest{
			Value:    value,
			FromUnit: from,
			ToUnit:   to,
			Category: cat,
		})
		if err != nil {
			return nil, err
		}
		if cat == "" {
			_, cat, _ = convert.Lookup(from)
		}

		r := &Result{Summary: FormatAuto(value) + " " + from + " = " + FormatAuto(out) + " " + to}
		r.Add("value", "Ergebnis", out).
			Add("input", "Eingabe", value).
			Add("from", "Von", from).
			Add("to", "Nach", to).
			Add("category", "Kategorie", string(cat))
		return r, nil
	}
}
