package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog is the set of choices shown on the registration form.
type Catalog struct {
	Sports []string `yaml:"sports"`
	Years  []string `yaml:"years"`
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Errorf("catalog: embedded catalog: %w", err))
	}
	return c
}

// Load reads a catalog from path, or returns Default when path is empty.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog. Entries are trimmed; blanks and duplicates
// are rejected.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	var err error
	if c.Sports, err = clean("sports", c.Sports); err != nil {
		return nil, err
	}
	if c.Years, err = clean("years", c.Years); err != nil {
		return nil, err
	}
	return &c, nil
}

// HasSport reports whether sport is offered. Matching is exact.
func (c *Catalog) HasSport(sport string) bool { return slices.Contains(c.Sports, sport) }

func clean(field string, in []string) ([]string, error) {
	if len(in) == 0 {
		return nil, fmt.Errorf("parse catalog: %s: %w", field, errEmpty)
	}
	out := make([]string, 0, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" {
			return nil, fmt.Errorf("parse catalog: %s: blank entry", field)
		}
		if slices.Contains(out, v) {
			return nil, fmt.Errorf("parse catalog: %s: duplicate %q", field, v)
		}
		out = append(out, v)
	}
	return out, nil
}

var errEmpty = errors.New("no entries")
