package calculator

import (
	"errors"
	"fmt"

	"solar-calculator/internal/model"
)

// Catalog maps each property category to the system sizes (kW) on offer.
// Sizes are strictly ascending; the eligibility filter relies on that order.
type Catalog map[model.Category][]int

// DefaultCatalog returns a fresh copy of the built-in size table.
func DefaultCatalog() Catalog {
	return Catalog{
		model.CategoryHouseSinglePhase:    {3, 5, 7, 10, 15, 20},
		model.CategoryHouseThreePhase:     {5, 7, 10, 15, 20, 25, 30, 40},
		model.CategoryBusinessSinglePhase: {5, 7, 10, 15, 20, 25, 30, 40},
		model.CategoryBusinessThreePhase:  {5, 7, 10, 15, 20, 25, 30, 40, 100},
		model.CategoryBusinessBulk:        {40, 100, 200, 300, 500, 1000},
	}
}

func (c Catalog) Validate() error {
	if c == nil {
		return errors.New("catalog is nil")
	}
	for _, cat := range model.AllCategories() {
		sizes, ok := c[cat]
		if !ok || len(sizes) == 0 {
			return fmt.Errorf("catalog has no sizes for %q", cat)
		}
		for i, s := range sizes {
			if s <= 0 {
				return fmt.Errorf("catalog %q: size %d must be > 0", cat, s)
			}
			if i > 0 && s <= sizes[i-1] {
				return fmt.Errorf("catalog %q: sizes must be strictly ascending (%d after %d)", cat, s, sizes[i-1])
			}
		}
	}
	for cat := range c {
		if !cat.Valid() {
			return fmt.Errorf("catalog: %w: %q", model.ErrUnknownCategory, cat)
		}
	}
	return nil
}

// Sizes returns a copy of the sizes for cat, or nil for an unknown category.
func (c Catalog) Sizes(cat model.Category) []int {
	sizes, ok := c[cat]
	if !ok {
		return nil
	}
	out := make([]int, len(sizes))
	copy(out, sizes)
	return out
}

// Clone deep-copies the catalog.
func (c Catalog) Clone() Catalog {
	out := make(Catalog, len(c))
	for cat := range c {
		out[cat] = c.Sizes(cat)
	}
	return out
}
