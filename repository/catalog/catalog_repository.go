package catalog

import (
	"context"
	"time"

	"github.com/owuwix/wiishy/model"
)

// CatalogRepository serves the static recommendation catalog. Items keep a
// stable identity so that adding one to a wishlist retains its id.
type CatalogRepository interface {
	List(ctx context.Context) ([]model.WishlistItem, error)
}

type static struct {
	items []model.WishlistItem
}

func NewCatalogRepository() CatalogRepository {
	return &static{items: seedItems()}
}

// List returns a copy so callers can never mutate the catalog.
func (s *static) List(ctx context.Context) ([]model.WishlistItem, error) {
	out := make([]model.WishlistItem, len(s.items))
	copy(out, s.items)
	return out, nil
}

func seedItems() []model.WishlistItem {
	seededAt := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)

	item := func(id, name, description, category string, price float64, imageURL string) model.WishlistItem {
		return model.WishlistItem{
			ID:          id,
			Name:        name,
			Description: description,
			Category:    category,
			Price:       price,
			ImageURL:    imageURL,
			CreatedAt:   seededAt,
			UpdatedAt:   seededAt,
		}
	}

	return []model.WishlistItem{
		item("cat-0001", "Wireless Headphones", "Over-ear noise cancelling headphones with 30h battery", "Electronics", 129.99, "https://images.wiishy.dev/catalog/headphones.jpg"),
		item("cat-0002", "Mechanical Keyboard", "Compact 75% layout with hot-swappable switches", "Electronics", 89.50, "https://images.wiishy.dev/catalog/keyboard.jpg"),
		item("cat-0003", "E-Reader", "6-inch glare-free display, weeks of battery life", "Electronics", 109.00, "https://images.wiishy.dev/catalog/ereader.jpg"),
		item("cat-0004", "The Pragmatic Programmer", "20th anniversary edition", "Books", 39.95, "https://images.wiishy.dev/catalog/pragprog.jpg"),
		item("cat-0005", "Sci-Fi Anthology", "Collected short stories from the last decade", "Books", 18.00, ""),
		item("cat-0006", "Ceramic Pour-Over Set", "Hand-glazed dripper with matching mug", "Home", 42.00, "https://images.wiishy.dev/catalog/pourover.jpg"),
		item("cat-0007", "Weighted Blanket", "7kg, breathable cotton cover", "Home", 64.90, ""),
		item("cat-0008", "Linen Throw Pillow", "Set of two, stone washed", "Home", 27.50, ""),
		item("cat-0009", "Trail Running Shoes", "Lightweight with aggressive grip", "Sports", 119.00, "https://images.wiishy.dev/catalog/trailshoes.jpg"),
		item("cat-0010", "Yoga Mat", "6mm non-slip, includes carry strap", "Sports", 34.00, ""),
		item("cat-0011", "Wool Scarf", "Merino wool, oversized", "Fashion", 49.00, ""),
		item("cat-0012", "Canvas Weekender Bag", "Waxed canvas with leather trim", "Fashion", 98.00, "https://images.wiishy.dev/catalog/weekender.jpg"),
		item("cat-0013", "Building Block Castle", "1200-piece medieval castle set", "Toys", 74.99, ""),
		item("cat-0014", "Strategy Board Game", "2-4 players, 60-90 minutes", "Toys", 44.00, ""),
		item("cat-0015", "Facial Serum Set", "Vitamin C and hyaluronic acid duo", "Beauty", 31.90, ""),
		item("cat-0016", "City Guide: Lisbon", "Curated walking routes and food spots", "Travel", 0, "https://images.wiishy.dev/catalog/lisbon.jpg"),
		item("cat-0017", "Packing Cube Set", "Five sizes, ripstop nylon", "Travel", 24.50, ""),
	}
}
