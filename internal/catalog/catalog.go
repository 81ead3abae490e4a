// Package catalog holds the fixed, ordered list of destinations shown in the
// carousel. The data is compiled into the binary and never changes at runtime.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/agnivade/levenshtein"
)

//go:embed destinations.toml
var defaultTOML string

var (
	ErrEmpty       = errors.New("catalog has no destinations")
	ErrDuplicateID = errors.New("duplicate destination id")
	ErrInvalidID   = errors.New("destination id must be positive")
)

// Destination is one showcase entry. Image is an opaque asset handle; only the
// renderer decides what to do with it.
type Destination struct {
	ID          int      `toml:"id"`
	Name        string   `toml:"name"`
	Location    string   `toml:"location"`
	Image       string   `toml:"image"`
	Description string   `toml:"description"`
	Highlights  []string `toml:"highlights"`
	Duration    string   `toml:"duration"`
	Price       string   `toml:"price"`
}

type catalogFile struct {
	Destination []Destination `toml:"destination"`
}

// Catalog is immutable after construction. Accessors hand out copies.
type Catalog struct {
	items []Destination
}

// Default decodes the embedded destination list.
func Default() (*Catalog, error) {
	return Parse(defaultTOML)
}

// MustDefault is Default for package-level wiring and tests.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	return c
}

// Parse decodes a TOML document with [[destination]] tables.
func Parse(data string) (*Catalog, error) {
	var f catalogFile
	if _, err := toml.Decode(data, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(f.Destination)
}

// New validates items and returns a catalog holding its own copy of them.
func New(items []Destination) (*Catalog, error) {
	if len(items) == 0 {
		return nil, ErrEmpty
	}
	seen := make(map[int]struct{}, len(items))
	out := make([]Destination, 0, len(items))
	for _, d := range items {
		if d.ID <= 0 {
			return nil, fmt.Errorf("%w: %q has id %d", ErrInvalidID, d.Name, d.ID)
		}
		if _, dup := seen[d.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, d.ID)
		}
		seen[d.ID] = struct{}{}
		out = append(out, clone(d))
	}
	return &Catalog{items: out}, nil
}

func (c *Catalog) Len() int { return len(c.items) }

// At returns the destination at index i. Callers keep i in [0, Len()).
func (c *Catalog) At(i int) Destination {
	return clone(c.items[i])
}

func (c *Catalog) All() []Destination {
	out := make([]Destination, len(c.items))
	for i, d := range c.items {
		out[i] = clone(d)
	}
	return out
}

// IndexOf returns the position of the destination with the given id.
func (c *Catalog) IndexOf(id int) (int, bool) {
	for i, d := range c.items {
		if d.ID == id {
			return i, true
		}
	}
	return -1, false
}

// Closest finds the destination that best matches a typed query. Substring hits
// on name or location win outright; otherwise the smallest edit distance to the
// name, location, or any single word of either is used. Weak matches are rejected.
func (c *Catalog) Closest(query string) (int, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return -1, false
	}
	best, bestIdx := -1, -1
	for i, d := range c.items {
		score := matchScore(q, d)
		if best < 0 || score < best {
			best, bestIdx = score, i
		}
	}
	if best > max(1, len([]rune(q))/3) {
		return -1, false
	}
	return bestIdx, true
}

func matchScore(q string, d Destination) int {
	name := strings.ToLower(d.Name)
	loc := strings.ToLower(d.Location)
	if strings.Contains(name, q) || strings.Contains(loc, q) {
		return 0
	}
	best := min(levenshtein.ComputeDistance(q, name), levenshtein.ComputeDistance(q, loc))
	for _, w := range strings.FieldsFunc(name+" "+loc, func(r rune) bool { return r == ' ' || r == ',' }) {
		if dist := levenshtein.ComputeDistance(q, w); dist < best {
			best = dist
		}
	}
	return best
}

func clone(d Destination) Destination {
	d.Highlights = append([]string(nil), d.Highlights...)
	return d
}
