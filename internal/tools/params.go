package tools

import (
	"strings"
	"time"

	"github.com/msto63/mRW/foundation/core/errors"
	"github.com/msto63/mRW/foundation/utils/mathx"
	"github.com/msto63/mRW/foundation/utils/stringx"
	"github.com/msto63/mRW/foundation/utils/timex"
)

// Params holds raw parameter values keyed by parameter name
type Params map[string]string

// ParseParams builds Params from "key=value" pairs
func ParseParams(pairs []string) (Params, error) {
	p := make(Params, len(pairs))
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, errors.ParseFailure(errors.ModuleTools, "param", pair, "key=value")
		}
		p[k] = strings.TrimSpace(v)
	}
	return p, nil
}

// Has reports whether name has a non-blank value
func (p Params) Has(name string) bool {
	return !stringx.IsBlank(p[name])
}

// Clone returns a copy of p
func (p Params) Clone() Params {
	c := make(Params, len(p))
	for k, v := range p {
		c[k] = v
	}
	return c
}

func (p Params) raw(name string) (string, error) {
	v := strings.TrimSpace(p[name])
	if v == "" {
		return "", errors.InvalidArgument(errors.ModuleTools, "param", name, "a value for "+name)
	}
	return v, nil
}

// Number parses a decimal number
func (p Params) Number(name string) (float64, error) {
	v, err := p.raw(name)
	if err != nil {
		return 0, err
	}
	return mathx.ParseNamedNumber(name, v)
}

// Integer parses a whole number
func (p Params) Integer(name string) (int, error) {
	v, err := p.raw(name)
	if err != nil {
		return 0, err
	}
	n, err := mathx.ParseInt(name, v)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// Text returns the trimmed value; blank is an error
func (p Params) Text(name string) (string, error) {
	return p.raw(name)
}

// Date parses a calendar date
func (p Params) Date(name string) (time.Time, error) {
	v, err := p.raw(name)
	if err != nil {
		return time.Time{}, err
	}
	d, err := timex.ParseDate(v)
	if err != nil {
		return time.Time{}, errors.ParseFailure(errors.ModuleTools, name, v, "date YYYY-MM-DD or DD.MM.YYYY")
	}
	return d, nil
}

// Clock parses a time of day HH:MM on the given date
func (p Params) Clock(name string, day time.Time) (time.Time, error) {
	v, err := p.raw(name)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse("15:04", v)
	if err != nil {
		return time.Time{}, errors.ParseFailure(errors.ModuleTools, name, v, "time HH:MM")
	}
	d := timex.StartOfDay(day)
	return d.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute), nil
}

// List parses a list of numbers separated by commas, semicolons or spaces
func (p Params) List(name string) ([]float64, error) {
	v, err := p.raw(name)
	if err != nil {
		return nil, err
	}
	return mathx.ParseNumberList(name, v)
}

// IntegerList parses a list of whole numbers
func (p Params) IntegerList(name string) ([]int64, error) {
	values, err := p.List(name)
	if err != nil {
		return nil, err
	}
	out := make([]int64, len(values))
	for i, v := range values {
		n, ok := mathx.Int64(v)
		if !ok {
			return nil, errors.ParseFailure(errors.ModuleTools, name, p[name], "whole numbers")
		}
		out[i] = n
	}
	return out, nil
}

// Strings splits a value on commas, semicolons or newlines and drops blanks
func (p Params) Strings(name string) ([]string, error) {
	v, err := p.raw(name)
	if err != nil {
		return nil, err
	}
	parts := strings.FieldsFunc(v, func(r rune) bool { return r == ',' || r == ';' || r == '\n' })
	out := make([]string, 0, len(parts))
	for _, s := range parts {
		if !stringx.IsBlank(s) {
			out = append(out, strings.TrimSpace(s))
		}
	}
	return out, nil
}

// Choice returns the value if it case-insensitively matches one of choices
func (p Params) Choice(name string, choices []string) (string, error) {
	v, err := p.raw(name)
	if err != nil {
		return "", err
	}
	for _, c := range choices {
		if strings.EqualFold(v, c) {
			return c, nil
		}
	}
	return "", errors.InvalidArgument(errors.ModuleTools, "param", v, name+" one of "+strings.Join(choices, ", "))
}
