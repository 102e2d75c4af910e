package tools

import (
	"context"
	"strconv"
	"strings"

	"github.com/msto63/mRW/pkg/calc/fun"
)

func funRunners() map[string]Runner {
	return map[string]Runner{
		"dice":  runDice,
		"coin":  runCoin,
		"wheel": runWheel,
	}
}

func runDice(_ context.Context, env *Env, p Params) (*Result, error) {
	count, err := p.Integer("count")
	if err != nil {
		return nil, err
	}
	sides, err := p.Integer("sides")
	if err != nil {
		return nil, err
	}
	res, err := env.Roller.RollDice(count, sides)
	if err != nil {
		return nil, err
	}
	rolls := make([]string, len(res.Rolls))
	for i, v := range res.Rolls {
		rolls[i] = strconv.Itoa(v)
	}
	r := &Result{Summary: "Gewürfelt: " + strings.Join(rolls, ", ") + " (Summe " + strconv.Itoa(res.Total) + ")"}
	r.Add("rolls", "Würfe", res.Rolls).
		Add("total", "Summe", res.Total).
		Add("sides", "Seiten", res.Sides)
	return r, nil
}

var coinLabels = map[string]string{fun.Heads: "Kopf", fun.Tails: "Zahl"}

func runCoin(_ context.Context, env *Env, p Params) (*Result, error) {
	count, err := p.Integer("count")
	if err != nil {
		return nil, err
	}
	res, err := env.Roller.FlipCoins(count)
	if err != nil {
		return nil, err
	}
	summary := coinLabels[res.Flips[0]]
	if count > 1 {
		summary = strconv.Itoa(res.Heads) + "× Kopf, " + strconv.Itoa(res.Tails) + "× Zahl"
	}
	r := &Result{Summary: summary}
	r.Add("flips", "Würfe", res.Flips).
		Add("heads", "Kopf", res.Heads).
		Add("tails", "Zahl", res.Tails)
	return r, nil
}

func runWheel(_ context.Context, env *Env, p Params) (*Result, error) {
	options, err := p.Strings("options")
	if err != nil {
		return nil, err
	}
	res, err := env.Roller.SpinWheel(options)
	if err != nil {
		return nil, err
	}
	r := &Result{Summary: "Das Rad zeigt: " + res.Choice}
	r.Add("choice", "Ergebnis", res.Choice).
		Add("index", "Position", res.Index).
		Add("options", "Optionen", res.Options)
	return r, nil
}
