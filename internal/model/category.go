package model

import (
	"errors"
	"fmt"
	"strings"
)

// Category is the property type a system is sized for.
// Keep these values stable; they appear in URLs, config files and API payloads.
type Category string

const (
	CategoryHouseSinglePhase    Category = "house-single-phase"
	CategoryHouseThreePhase     Category = "house-three-phase"
	CategoryBusinessSinglePhase Category = "business-single-phase"
	CategoryBusinessThreePhase  Category = "business-three-phase"
	CategoryBusinessBulk        Category = "business-bulk"
)

// DefaultCategory is preselected when the user has not picked one.
const DefaultCategory = CategoryHouseSinglePhase

var ErrUnknownCategory = errors.New("unknown property category")

var categoryLabels = map[Category]string{
	CategoryHouseSinglePhase:    "House (Single Phase Electricity Supply)",
	CategoryHouseThreePhase:     "House (Three Phase Electricity Supply)",
	CategoryBusinessSinglePhase: "Business (Single Phase Electricity Supply)",
	CategoryBusinessThreePhase:  "Business (Three Phase Electricity Supply)",
	CategoryBusinessBulk:        "Business (Bulk Supply)",
}

// AllCategories returns every category in display order.
func AllCategories() []Category {
	return []Category{
		CategoryHouseSinglePhase,
		CategoryHouseThreePhase,
		CategoryBusinessSinglePhase,
		CategoryBusinessThreePhase,
		CategoryBusinessBulk,
	}
}

// Label is the human-readable name shown in the UI and in reports.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// IsHouse reports whether the category is residential.
func (c Category) IsHouse() bool {
	return strings.HasPrefix(string(c), "house-")
}

// Kind is "house" or "business".
func (c Category) Kind() string {
	if c.IsHouse() {
		return "house"
	}
	return "business"
}

// ParseCategory accepts a slug ("house-single-phase") or a display label
// ("House (Single Phase Electricity Supply)"), case-insensitively.
// An empty string yields DefaultCategory.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultCategory, nil
	}
	for _, c := range AllCategories() {
		if strings.EqualFold(s, string(c)) || strings.EqualFold(s, c.Label()) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}
