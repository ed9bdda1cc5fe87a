// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// RankedCommittees is how many committees a respondent ranks.
const RankedCommittees = 3

var (
	ErrEmptyList      = errors.New("catalog list is empty")
	ErrDuplicateItem  = errors.New("catalog list has a duplicate entry")
	ErrTooFewRankable = errors.New("catalog has too few committees to rank")
)

// Catalog holds the enumerated answer choices for skills, committees and
// provinces.
type Catalog struct {
	Skills     []string `yaml:"skills"`
	Committees []string `yaml:"committees"`
	Provinces  []string `yaml:"provinces"`

	skills     map[string]struct{}
	committees map[string]struct{}
	provinces  map[string]struct{}
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Default returns the catalog embedded in the binary.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(defaultCatalog)
		if err != nil {
			panic("catalog: embedded catalog is invalid: " + err.Error())
		}
		defaultCat = c
	})
	return defaultCat
}

// Load reads a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	var err error
	if c.skills, err = index("skills", c.Skills); err != nil {
		return nil, err
	}
	if c.committees, err = index("committees", c.Committees); err != nil {
		return nil, err
	}
	if len(c.Committees) < RankedCommittees {
		return nil, fmt.Errorf("committees: %d listed, %d needed: %w", len(c.Committees), RankedCommittees, ErrTooFewRankable)
	}
	if c.provinces, err = index("provinces", c.Provinces); err != nil {
		return nil, err
	}
	return &c, nil
}

func index(name string, items []string) (map[string]struct{}, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyList)
	}
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, dup := set[item]; dup {
			return nil, fmt.Errorf("%s: %q: %w", name, item, ErrDuplicateItem)
		}
		set[item] = struct{}{}
	}
	return set, nil
}

func (c *Catalog) IsSkill(s string) bool {
	_, ok := c.skills[s]
	return ok
}

func (c *Catalog) IsCommittee(s string) bool {
	_, ok := c.committees[s]
	return ok
}

func (c *Catalog) IsProvince(s string) bool {
	_, ok := c.provinces[s]
	return ok
}
