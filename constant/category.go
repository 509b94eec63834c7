package constant

// Categories is the fixed set of item categories offered by the catalog
// and accepted for wishlist items.
var Categories = []string{
	"Electronics",
	"Books",
	"Home",
	"Fashion",
	"Sports",
	"Toys",
	"Beauty",
	"Travel",
}

// IsValidCategory reports whether category is one of the known categories.
func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

type SortOption string

const (
	SortNameAsc   SortOption = "nameAsc"
	SortNameDesc  SortOption = "nameDesc"
	SortPriceAsc  SortOption = "priceAsc"
	SortPriceDesc SortOption = "priceDesc"
)

// IsValidSortOption reports whether s is a known sort option.
func IsValidSortOption(s SortOption) bool {
	switch s {
	case SortNameAsc, SortNameDesc, SortPriceAsc, SortPriceDesc:
		return true
	}
	return false
}

type GenderType string

const (
	GenderMale   GenderType = "male"
	GenderFemale GenderType = "female"
	GenderOther  GenderType = "other"
)
