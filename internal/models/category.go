package models

import "strings"

// Category classifies an account on the balance sheet. The zero value is not
// a valid category.
type Category string

const (
	CategoryCash        Category = "cash"
	CategoryInvestments Category = "investments"
	CategoryRealEstate  Category = "real_estate"
	CategoryLiabilities Category = "liabilities"
)

// AllCategories lists the valid categories in balance-sheet order.
var AllCategories = []Category{
	CategoryCash,
	CategoryInvestments,
	CategoryRealEstate,
	CategoryLiabilities,
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	for _, category := range AllCategories {
		if c == category {
			return true
		}
	}
	return false
}

// IsLiability reports whether balances in this category reduce net worth.
func (c Category) IsLiability() bool {
	return c == CategoryLiabilities
}

// Label returns the human-readable name of the category.
func (c Category) Label() string {
	switch c {
	case CategoryCash:
		return "Cash"
	case CategoryInvestments:
		return "Investments"
	case CategoryRealEstate:
		return "Real estate"
	case CategoryLiabilities:
		return "Liabilities"
	}
	return string(c)
}

// ParseCategory converts a header label into a Category. It returns the
// parsed category and whether the label named one: "Real Estate" parses,
// "Retirement" does not.
func ParseCategory(label string) (Category, bool) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(label)), " ", "_")
	c := Category(normalized)
	return c, c.IsValid()
}
