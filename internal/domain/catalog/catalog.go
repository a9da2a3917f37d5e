// Package catalog holds the scouting configuration: positions, the tactical profiles each
// position offers, and the signed metric weights of every profile.
//
// A Catalog is immutable once built. Accessors hand out copies so callers can never change
// the configuration a running engine scores with.
package catalog

import (
	"fmt"
	"regexp"
	"strings"
)

// MetricSpec is one weighted statistic of a profile. Name must match a dataset column.
type MetricSpec struct {
	Name   string  `json:"name" koanf:"name"`
	Weight float64 `json:"weight" koanf:"weight"`
}

// Negative reports whether a lower raw value is better for this metric.
func (m MetricSpec) Negative() bool { return m.Weight < 0 }

// Profile is a tactical archetype with its ordered metric weights.
type Profile struct {
	Name        string       `json:"name" koanf:"name"`
	Description string       `json:"description" koanf:"description"`
	Metrics     []MetricSpec `json:"metrics" koanf:"metrics"`
}

// Position is a playing role matched against the raw position-code column.
type Position struct {
	Name     string   `json:"name" koanf:"name"`
	Codes    []string `json:"codes" koanf:"codes"`
	Profiles []string `json:"profiles" koanf:"profiles"`
}

// Pattern returns the alternation of the position codes, e.g. "CB|RCB|LCB".
func (p Position) Pattern() string {
	return strings.Join(p.Codes, "|")
}

// Regexp compiles the position codes into a literal alternation. It matches anywhere in
// the cell, so "CB" also matches "RCB" and "LCB".
func (p Position) Regexp() *regexp.Regexp {
	quoted := make([]string, len(p.Codes))
	for i, c := range p.Codes {
		quoted[i] = regexp.QuoteMeta(c)
	}
	return regexp.MustCompile(strings.Join(quoted, "|"))
}

// Catalog is the immutable lookup structure for positions and profiles.
type Catalog struct {
	positions  []Position
	byPosition map[string]int
	profiles   map[string]Profile
	order      []string
}

// New validates and assembles a catalog. Position order and profile order are preserved.
func New(positions []Position, profiles []Profile) (*Catalog, error) {
	c := &Catalog{
		positions:  make([]Position, 0, len(positions)),
		byPosition: make(map[string]int, len(positions)),
		profiles:   make(map[string]Profile, len(profiles)),
		order:      make([]string, 0, len(profiles)),
	}

	for _, pr := range profiles {
		if strings.TrimSpace(pr.Name) == "" {
			return nil, fmt.Errorf("%w: profile with empty name", ErrInvalidCatalog)
		}
		if _, dup := c.profiles[pr.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate profile %q", ErrInvalidCatalog, pr.Name)
		}
		seen := make(map[string]struct{}, len(pr.Metrics))
		for _, m := range pr.Metrics {
			if strings.TrimSpace(m.Name) == "" {
				return nil, fmt.Errorf("%w: profile %q has a metric with empty name", ErrInvalidCatalog, pr.Name)
			}
			if _, dup := seen[m.Name]; dup {
				return nil, fmt.Errorf("%w: profile %q lists metric %q twice", ErrInvalidCatalog, pr.Name, m.Name)
			}
			seen[m.Name] = struct{}{}
		}
		c.profiles[pr.Name] = cloneProfile(pr)
		c.order = append(c.order, pr.Name)
	}

	for _, pos := range positions {
		if strings.TrimSpace(pos.Name) == "" {
			return nil, fmt.Errorf("%w: position with empty name", ErrInvalidCatalog)
		}
		if _, dup := c.byPosition[pos.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate position %q", ErrInvalidCatalog, pos.Name)
		}
		if len(pos.Codes) == 0 {
			return nil, fmt.Errorf("%w: position %q has no codes", ErrInvalidCatalog, pos.Name)
		}
		for _, code := range pos.Codes {
			if code == "" {
				return nil, fmt.Errorf("%w: position %q has an empty code", ErrInvalidCatalog, pos.Name)
			}
		}
		for _, name := range pos.Profiles {
			if _, ok := c.profiles[name]; !ok {
				return nil, fmt.Errorf("%w: position %q offers unknown profile %q", ErrInvalidCatalog, pos.Name, name)
			}
		}
		if len(pos.Profiles) == 0 {
			if _, ok := c.profiles[pos.Name]; !ok {
				return nil, fmt.Errorf("%w: position %q declares no profiles and no profile is named after it", ErrInvalidCatalog, pos.Name)
			}
		}
		c.byPosition[pos.Name] = len(c.positions)
		c.positions = append(c.positions, clonePosition(pos))
	}

	return c, nil
}

// Default returns the reference catalog.
func Default() *Catalog {
	c, err := New(defaultPositions, defaultProfiles)
	if err != nil {
		panic(err)
	}
	return c
}

// Positions returns every position in declaration order.
func (c *Catalog) Positions() []Position {
	out := make([]Position, len(c.positions))
	for i, p := range c.positions {
		out[i] = clonePosition(p)
	}
	return out
}

// Position looks up a position by name.
func (c *Catalog) Position(name string) (Position, error) {
	i, ok := c.byPosition[name]
	if !ok {
		return Position{}, &ConfigNotFoundError{Kind: KindPosition, Name: name}
	}
	return clonePosition(c.positions[i]), nil
}

// ProfilesFor returns the profile names a position offers. A position without declared
// profiles acts as its own single profile.
func (c *Catalog) ProfilesFor(position string) ([]string, error) {
	p, err := c.Position(position)
	if err != nil {
		return nil, err
	}
	if len(p.Profiles) == 0 {
		return []string{p.Name}, nil
	}
	return p.Profiles, nil
}

// Profile looks up a profile by name.
func (c *Catalog) Profile(name string) (Profile, error) {
	p, ok := c.profiles[name]
	if !ok {
		return Profile{}, &ConfigNotFoundError{Kind: KindProfile, Name: name}
	}
	return cloneProfile(p), nil
}

// Profiles returns every profile in declaration order.
func (c *Catalog) Profiles() []Profile {
	out := make([]Profile, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, cloneProfile(c.profiles[name]))
	}
	return out
}

// MetricsFor returns the ordered metric weights of a profile.
func (c *Catalog) MetricsFor(profile string) ([]MetricSpec, error) {
	p, err := c.Profile(profile)
	if err != nil {
		return nil, err
	}
	return p.Metrics, nil
}

// DescriptionFor returns the human-readable description of a profile, if any.
func (c *Catalog) DescriptionFor(profile string) (string, bool) {
	p, ok := c.profiles[profile]
	if !ok || p.Description == "" {
		return "", false
	}
	return p.Description, true
}

func clonePosition(p Position) Position {
	p.Codes = append([]string(nil), p.Codes...)
	p.Profiles = append([]string(nil), p.Profiles...)
	return p
}

func cloneProfile(p Profile) Profile {
	p.Metrics = append([]MetricSpec(nil), p.Metrics...)
	return p
}
