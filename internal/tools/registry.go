package tools

import (
	"context"
	"strings"
	"time"

	"github.com/sahilm/fuzzy"

	"github.com/msto63/mRW/foundation/core/errors"
	"github.com/msto63/mRW/pkg/calc/fun"
)

// Registry routes tool IDs and paths to their runners
type Registry struct {
	catalog *Catalog
	env     *Env
	index   []string
}

// Option configures a Registry
type Option func(*Registry)

// WithClock sets the clock used by date-relative tools
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		if now != nil {
			r.env.Now = now
		}
	}
}

// WithRoller sets the random source of the fun and scramble tools
func WithRoller(roller *fun.Roller) Option {
	return func(r *Registry) {
		if roller != nil {
			r.env.Roller = roller
		}
	}
}

// NewRegistry loads the embedded catalog
func NewRegistry(opts ...Option) (*Registry, error) {
	c, err := LoadCatalog()
	if err != nil {
		return nil, err
	}
	return newRegistry(c, opts...), nil
}

func newRegistry(c *Catalog, opts ...Option) *Registry {
	r := &Registry{
		catalog: c,
		env:     &Env{Now: time.Now, Roller: fun.NewRoller(nil)},
	}
	for _, opt := range opts {
		opt(r)
	}
	r.index = make([]string, len(c.Tools))
	for i, t := range c.Tools {
		r.index[i] = strings.ToLower(t.Name + " " + t.ID + " " + t.Description)
	}
	return r
}

// Get returns a tool by ID or path
func (r *Registry) Get(idOrPath string) (*Tool, error) {
	t, ok := r.catalog.Tool(strings.TrimSpace(idOrPath))
	if !ok {
		return nil, errors.NotFound(errors.ModuleTools, "get_tool", idOrPath)
	}
	return t, nil
}

// List returns the tools of a category in catalog order; an empty
// category lists everything.
func (r *Registry) List(category string) []*Tool {
	out := make([]*Tool, 0, len(r.catalog.Tools))
	for _, t := range r.catalog.Tools {
		if category == "" || strings.EqualFold(t.Category, category) {
			out = append(out, t)
		}
	}
	return out
}

// Categories returns the catalog categories with their tool counts
func (r *Registry) Categories() []Category {
	out := make([]Category, len(r.catalog.Categories))
	copy(out, r.catalog.Categories)
	return out
}

// Search ranks tools by fuzzy match against name, ID and description.
// A blank query returns the full catalog.
func (r *Registry) Search(query string) []*Tool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return r.List("")
	}
	matches := fuzzy.Find(query, r.index)
	out := make([]*Tool, 0, len(matches))
	for _, m := range matches {
		out = append(out, r.catalog.Tools[m.Index])
	}
	return out
}

// Run resolves a tool, fills parameter defaults, checks required
// parameters and executes the runner.
func (r *Registry) Run(ctx context.Context, idOrPath string, params Params) (*Result, error) {
	t, err := r.Get(idOrPath)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.OperationFailed(errors.ModuleTools, t.ID, err)
	}

	p, err := r.Prepare(t, params)
	if err != nil {
		return nil, err
	}
	res, err := t.run(ctx, r.env, p)
	if err != nil {
		return nil, err
	}
	res.Tool = t.ID
	return res, nil
}

// Prepare returns a copy of params with defaults applied. Missing
// required parameters are reported as InvalidArgument.
func (r *Registry) Prepare(t *Tool, params Params) (Params, error) {
	p := make(Params, len(t.Params))
	for k, v := range params {
		p[k] = strings.TrimSpace(v)
	}
	for _, def := range t.Params {
		if p.Has(def.Name) {
			continue
		}
		if def.Default != "" {
			p[def.Name] = def.Default
			continue
		}
		if def.Required {
			return nil, errors.InvalidArgument(errors.ModuleTools, t.ID, def.Name, "required parameter "+def.Name)
		}
	}
	return p, nil
}
