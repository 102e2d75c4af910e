package tools

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	mrwerror "github.com/msto63/mRW/foundation/core/error"
	"github.com/msto63/mRW/foundation/core/errors"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Category groups tools in the catalog
type Category struct {
	ID    string `yaml:"id" json:"id"`
	Name  string `yaml:"name" json:"name"`
	Icon  string `yaml:"icon" json:"icon"`
	Count int    `yaml:"-" json:"count"`
}

// Catalog is the decoded tool directory with every entry bound to a runner
type Catalog struct {
	Categories []Category `yaml:"categories"`
	Tools      []*Tool    `yaml:"tools"`

	byID   map[string]*Tool
	byPath map[string]*Tool
}

// LoadCatalog decodes the embedded catalog and binds the built-in runners
func LoadCatalog() (*Catalog, error) {
	return parseCatalog(catalogYAML, builtinRunners())
}

// parseCatalog decodes data and binds runners by tool ID. An entry
// without a runner and a runner without an entry are both errors.
func parseCatalog(data []byte, runners map[string]Runner) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.ParseFailure(errors.ModuleTools, "catalog", "catalog.yaml", err.Error())
	}

	c.byID = make(map[string]*Tool, len(c.Tools))
	c.byPath = make(map[string]*Tool, len(c.Tools))
	categories := make(map[string]int, len(c.Categories))
	for i, cat := range c.Categories {
		categories[cat.ID] = i
	}

	var problems []string
	for _, t := range c.Tools {
		switch {
		case t.ID == "":
			problems = append(problems, "entry without id")
			continue
		case c.byID[t.ID] != nil:
			problems = append(problems, "duplicate id "+t.ID)
			continue
		}
		idx, ok := categories[t.Category]
		if !ok {
			problems = append(problems, fmt.Sprintf("%s: unknown category %q", t.ID, t.Category))
		} else {
			c.Categories[idx].Count++
		}
		if t.Path != "" {
			if other := c.byPath[t.Path]; other != nil {
				problems = append(problems, fmt.Sprintf("%s: path %s already used by %s", t.ID, t.Path, other.ID))
			}
			c.byPath[t.Path] = t
		}
		for _, p := range t.Params {
			if !validKind(p.Kind) {
				problems = append(problems, fmt.Sprintf("%s.%s: unknown kind %q", t.ID, p.Name, p.Kind))
			}
			if p.Kind == KindChoice && len(p.Choices) == 0 {
				problems = append(problems, fmt.Sprintf("%s.%s: choice without choices", t.ID, p.Name))
			}
		}

		run, ok := runners[t.ID]
		if !ok {
			problems = append(problems, t.ID+": no runner")
		}
		t.run = run
		c.byID[t.ID] = t
	}
	for id := range runners {
		if c.byID[id] == nil {
			problems = append(problems, id+": runner without catalog entry")
		}
	}

	if len(problems) > 0 {
		sort.Strings(problems)
		return nil, errors.NewErrorBuilder(errors.ModuleTools).
			Operation("load_catalog").
			Code(mrwerror.CodeInvalidConfig).
			Messagef("invalid tool catalog: %s", strings.Join(problems, "; ")).
			Detail("problems", problems).
			Build()
	}
	return &c, nil
}

func validKind(k ParamKind) bool {
	switch k {
	case KindNumber, KindInteger, KindText, KindDate, KindList, KindChoice:
		return true
	}
	return false
}

// Tool returns the entry with the given ID or path
func (c *Catalog) Tool(idOrPath string) (*Tool, bool) {
	if t, ok := c.byID[idOrPath]; ok {
		return t, true
	}
	if t, ok := c.byPath[idOrPath]; ok {
		return t, true
	}
	if !strings.HasPrefix(idOrPath, "/") {
		t, ok := c.byPath["/"+idOrPath]
		return t, ok
	}
	return nil, false
}
