package tools

import (
	"context"
	"math/rand"
	"strconv"

	"github.com/msto63/mRW/pkg/calc/text"
)

func textRunners() map[string]Runner {
	return map[string]Runner{
		"reverse":    runTransform("Umgekehrt", text.Reverse),
		"title-case": runTransform("Titel", text.TitleCase),
		"scramble":   runScramble,
		"word-count": runWordCount,
		"numerology": runNumerology,
		"hash":       runHash,
	}
}

func runTransform(label string, fn func(string) string) Runner {
	return func(_ context.Context, _ *Env, p Params) (*Result, error) {
		s, err := p.Text("text")
		if err != nil {
			return nil, err
		}
		out := fn(s)
		r := &Result{Summary: out}
		r.Add("text", label, out)
		return r, nil
	}
}

func runScramble(_ context.Context, env *Env, p Params) (*Result, error) {
	s, err := p.Text("text")
	if err != nil {
		return nil, err
	}
	var out string
	env.Roller.Do(func(rng *rand.Rand) {
		out = text.Scramble(s, rng)
	})
	r := &Result{Summary: out}
	r.Add("text", "Gemischt", out)
	return r, nil
}

func runWordCount(_ context.Context, _ *Env, p Params) (*Result, error) {
	s, err := p.Text("text")
	if err != nil {
		return nil, err
	}
	ws := text.WordCount(s)
	r := &Result{Summary: strconv.Itoa(ws.Words) + " Wörter, " + strconv.Itoa(ws.Characters) + " Zeichen"}
	r.Add("words", "Wörter", ws.Words).
		Add("characters", "Zeichen", ws.Characters).
		Add("characters_no_spaces", "Zeichen ohne Leerzeichen", ws.CharactersNoSpaces).
		Add("lines", "Zeilen", ws.Lines)
	return r, nil
}

func runNumerology(_ context.Context, _ *Env, p Params) (*Result, error) {
	name, err := p.Text("name")
	if err != nil {
		return nil, err
	}
	res, err := text.Numerology(name)
	if err != nil {
		return nil, err
	}
	summary := "Namenszahl " + strconv.Itoa(res.Number)
	if res.Master {
		summary += " (Meisterzahl)"
	}
	r := &Result{Summary: summary}
	r.Add("number", "Namenszahl", res.Number).
		Add("sum", "Quersumme", res.Sum).
		Add("master", "Meisterzahl", res.Master)
	return r, nil
}

func runHash(_ context.Context, _ *Env, p Params) (*Result, error) {
	s, err := p.Text("text")
	if err != nil {
		return nil, err
	}
	algo, err := p.Choice("algorithm", text.Algorithms())
	if err != nil {
		return nil, err
	}
	res, err := text.Hash(s, algo)
	if err != nil {
		return nil, err
	}
	r := &Result{Summary: res.Algorithm + ": " + res.Digest}
	r.Add("digest", "Hashwert", res.Digest).
		Add("algorithm", "Verfahren", res.Algorithm).
		Add("cryptographic", "Kryptografisch", res.Cryptographic)
	return r, nil
}
