// ============================================================================
// meinRECHENWERK (mRW) - Rechenkern
// ============================================================================
//
// Package:     tools
// Description: Tool catalog and router over the calculation library
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

// Package tools binds the static tool catalog to the calculation library.
// Each catalog entry describes one tool (name, icon, category, path and
// parameters); a Runner implements it on top of pkg/calc.
package tools

import (
	"context"
	"math/big"
	"time"

	"github.com/msto63/mRW/foundation/utils/timex"
	"github.com/msto63/mRW/pkg/calc/fun"
)

// ParamKind describes how a parameter value is parsed
type ParamKind string

const (
	KindNumber  ParamKind = "number"
	KindInteger ParamKind = "integer"
	KindText    ParamKind = "text"
	KindDate    ParamKind = "date"
	KindList    ParamKind = "list"
	KindChoice  ParamKind = "choice"
)

// Param describes one input of a tool
type Param struct {
	Name     string    `yaml:"name" json:"name"`
	Label    string    `yaml:"label" json:"label"`
	Kind     ParamKind `yaml:"kind" json:"kind"`
	Default  string    `yaml:"default,omitempty" json:"default,omitempty"`
	Choices  []string  `yaml:"choices,omitempty" json:"choices,omitempty"`
	Required bool      `yaml:"required,omitempty" json:"required,omitempty"`
	Help     string    `yaml:"help,omitempty" json:"help,omitempty"`
}

// Tool is a catalog entry
type Tool struct {
	ID            string  `yaml:"id" json:"id"`
	Name          string  `yaml:"name" json:"name"`
	Description   string  `yaml:"description" json:"description"`
	Icon          string  `yaml:"icon" json:"icon"`
	Category      string  `yaml:"category" json:"category"`
	Path          string  `yaml:"path" json:"path"`
	Params        []Param `yaml:"params" json:"params"`
	Deterministic bool    `yaml:"deterministic" json:"deterministic"`

	run Runner
}

// Param returns the parameter definition by name
func (t *Tool) Param(name string) (Param, bool) {
	for _, p := range t.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

// Runner computes a tool result from parsed parameters
type Runner func(ctx context.Context, env *Env, p Params) (*Result, error)

// Env carries the non-deterministic inputs a runner may need
type Env struct {
	Now    func() time.Time
	Roller *fun.Roller
}

// Today returns the current date at midnight UTC
func (e *Env) Today() time.Time {
	return timex.StartOfDay(e.Now())
}

// Field is one labelled output value
type Field struct {
	Key   string      `json:"key"`
	Label string      `json:"label"`
	Value interface{} `json:"value"`
}

// Result is the output of a tool run
type Result struct {
	Tool    string  `json:"tool"`
	Summary string  `json:"summary"`
	Fields  []Field `json:"fields"`
}

// Add appends a field and returns r for chaining
func (r *Result) Add(key, label string, value interface{}) *Result {
	r.Fields = append(r.Fields, Field{Key: key, Label: label, Value: value})
	return r
}

// Get returns the value of the field with key
func (r *Result) Get(key string) (interface{}, bool) {
	for _, f := range r.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Map returns the field values keyed by field key. Values are normalised
// to bool, float64, string, []interface{} and map[string]interface{} so
// the map can be encoded as JSON or a protobuf Struct without loss.
func (r *Result) Map() map[string]interface{} {
	m := make(map[string]interface{}, len(r.Fields))
	for _, f := range r.Fields {
		m[f.Key] = Normalize(f.Value)
	}
	return m
}

// Normalized returns a copy of r with every field value passed through
// Normalize. Its JSON encoding decodes back to an equal Result: big
// integers stay exact strings and dates keep their YYYY-MM-DD form.
func (r *Result) Normalized() *Result {
	out := &Result{Tool: r.Tool, Summary: r.Summary, Fields: make([]Field, len(r.Fields))}
	for i, f := range r.Fields {
		out.Fields[i] = Field{Key: f.Key, Label: f.Label, Value: Normalize(f.Value)}
	}
	return out
}

// Normalize converts v into a JSON-compatible value
func Normalize(v interface{}) interface{} {
	switch x := v.(type) {
	case nil, bool, float64, string:
		return x
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case float32:
		return float64(x)
	case *big.Int:
		return x.String()
	case time.Time:
		return timex.FormatDate(x)
	case time.Duration:
		return x.String()
	case []int:
		out := make([]interface{}, len(x))
		for i, n := range x {
			out[i] = float64(n)
		}
		return out
	case []float64:
		out := make([]interface{}, len(x))
		for i, n := range x {
			out[i] = n
		}
		return out
	case []string:
		out := make([]interface{}, len(x))
		for i, s := range x {
			out[i] = s
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(x))
		for i, e := range x {
			out[i] = Normalize(e)
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(x))
		for k, e := range x {
			out[k] = Normalize(e)
		}
		return out
	case []map[string]interface{}:
		out := make([]interface{}, len(x))
		for i, e := range x {
			out[i] = Normalize(e)
		}
		return out
	default:
		if s, ok := v.(interface{ String() string }); ok {
			return s.String()
		}
		return v
	}
}
