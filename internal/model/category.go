package model

import "strings"

// Category is the kind of food an entry holds.
type Category string

// The fixed set of food categories.
const (
	CategoryFruit     Category = "Fruit"
	CategoryVegetable Category = "Vegetable"
	CategoryMeat      Category = "Meat"
	CategoryFish      Category = "Fish"
	CategoryDairy     Category = "Dairy"
	CategoryEggs      Category = "Eggs"
	CategoryBakery    Category = "Bakery"
	CategoryPantry    Category = "Pantry"
	CategoryBeverages Category = "Beverages"
	CategoryLeftovers Category = "Leftovers"
	CategoryOther     Category = "Other"
)

// DefaultIcon is used when a category has no icon of its own.
const DefaultIcon = "fa-utensils"

// Categories lists every category in display order.
var Categories = []Category{
	CategoryFruit,
	CategoryVegetable,
	CategoryMeat,
	CategoryFish,
	CategoryDairy,
	CategoryEggs,
	CategoryBakery,
	CategoryPantry,
	CategoryBeverages,
	CategoryLeftovers,
	CategoryOther,
}

var categoryIcons = map[Category]string{
	CategoryFruit:     "fa-apple-whole",
	CategoryVegetable: "fa-carrot",
	CategoryMeat:      "fa-drumstick-bite",
	CategoryFish:      "fa-fish-fins",
	CategoryDairy:     "fa-cheese",
	CategoryEggs:      "fa-egg",
	CategoryBakery:    "fa-bread-slice",
	CategoryPantry:    "fa-jar",
	CategoryBeverages: "fa-bottle-water",
	CategoryLeftovers: "fa-bowl-rice",
	CategoryOther:     DefaultIcon,
}

// IsValid reports whether c is one of the fixed categories.
func (c Category) IsValid() bool {
	_, ok := categoryIcons[c]
	return ok
}

// Icon returns the icon identifier for the category, or DefaultIcon.
func (c Category) Icon() string {
	if icon, ok := categoryIcons[c]; ok {
		return icon
	}
	return DefaultIcon
}

// ParseCategory matches name against the fixed categories, ignoring case
// and surrounding whitespace.
func ParseCategory(name string) (Category, bool) {
	name = strings.TrimSpace(name)
	for _, c := range Categories {
		if strings.EqualFold(string(c), name) {
			return c, true
		}
	}
	return "", false
}

// CategoryNames returns the category names as plain strings.
func CategoryNames() []string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = string(c)
	}
	return names
}
