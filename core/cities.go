package core

import (
	"fmt"
	"strings"
)

// Cities is the id ↔ name table that accompanies an EdgeStore.
// Lookups are exact and case-sensitive.
type Cities struct {
	names []string
	index map[string]int
}

// NewCities builds a table where names[i] is the display name of vertex i.
// Names must be non-blank and unique.
func NewCities(names []string) (*Cities, error) {
	c := &Cities{
		names: make([]string, len(names)),
		index: make(map[string]int, len(names)),
	}
	for i, name := range names {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("%w: position %d", ErrEmptyCityName, i)
		}
		if prev, ok := c.index[name]; ok {
			return nil, fmt.Errorf("%w: %q at positions %d and %d", ErrDuplicateCity, name, prev, i)
		}
		c.names[i] = name
		c.index[name] = i
	}

	return c, nil
}

// Len returns the number of cities.
func (c *Cities) Len() int { return len(c.names) }

// Names returns a copy of the names in id order.
func (c *Cities) Names() []string { return append([]string(nil), c.names...) }

// Name returns the display name of id, or "" when id is out of range.
func (c *Cities) Name(id int) string {
	if id < 0 || id >= len(c.names) {
		return ""
	}

	return c.names[id]
}

// Index resolves a name to its vertex id.
func (c *Cities) Index(name string) (int, error) {
	id, ok := c.index[name]
	if !ok {
		return NoVertex, fmt.Errorf("%w: unknown city %q", ErrInvalidVertex, name)
	}

	return id, nil
}

// Resolve converts named roads into id-based edges, keeping their order.
func (c *Cities) Resolve(roads []Road) ([]Edge, error) {
	edges := make([]Edge, 0, len(roads))
	for i, r := range roads {
		from, err := c.Index(r.From)
		if err != nil {
			return nil, fmt.Errorf("road %d: %w", i, err)
		}
		to, err := c.Index(r.To)
		if err != nil {
			return nil, fmt.Errorf("road %d: %w", i, err)
		}
		edges = append(edges, Edge{From: from, To: to, Weight: r.Weight})
	}

	return edges, nil
}

// Equal reports whether both tables list the same names in the same order.
func (c *Cities) Equal(other *Cities) bool {
	if c == nil || other == nil {
		return c == other
	}
	if len(c.names) != len(other.names) {
		return false
	}
	for i := range c.names {
		if c.names[i] != other.names[i] {
			return false
		}
	}

	return true
}
