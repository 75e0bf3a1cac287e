package catalog

import (
	"maps"
	"slices"

	"github.com/bornholm/readings/internal/core/model"
	"github.com/pkg/errors"
)

// Catalog maps each known item to the identifier range of its readings.
// It is immutable once created and safe for concurrent use.
type Catalog struct {
	ranges map[model.ItemName]model.IdentifierRange
}

type Entry struct {
	Name  model.ItemName
	Range model.IdentifierRange
}

func (c *Catalog) Lookup(name model.ItemName) (model.IdentifierRange, bool) {
	rng, exists := c.ranges[name]
	return rng, exists
}

// Names returns the known item names, sorted.
func (c *Catalog) Names() []model.ItemName {
	return slices.Sorted(maps.Keys(c.ranges))
}

func (c *Catalog) Len() int {
	return len(c.ranges)
}

// Validate checks every range of the catalog with the given function.
func (c *Catalog) Validate(fn func(rng model.IdentifierRange) error) error {
	for _, name := range c.Names() {
		if err := fn(c.ranges[name]); err != nil {
			return errors.Wrapf(err, "invalid range for item '%s'", name)
		}
	}

	return nil
}

func New(entries ...Entry) (*Catalog, error) {
	ranges := make(map[model.ItemName]model.IdentifierRange, len(entries))

	for _, e := range entries {
		if e.Name == "" {
			return nil, errors.New("item name must not be empty")
		}

		if e.Range.Start == "" || e.Range.End == "" {
			return nil, errors.Errorf("item '%s' range bounds must not be empty", e.Name)
		}

		if _, exists := ranges[e.Name]; exists {
			return nil, errors.Errorf("duplicate item '%s'", e.Name)
		}

		ranges[e.Name] = e.Range
	}

	return &Catalog{
		ranges: ranges,
	}, nil
}
