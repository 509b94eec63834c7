package recommendation_test

import (
	"context"
	"reflect"
	"testing"

	apprecommendation "github.com/owuwix/wiishy/application/recommendation"
	"github.com/owuwix/wiishy/constant"
	catalogmocks "github.com/owuwix/wiishy/mocks/repository/catalog"
	"github.com/owuwix/wiishy/model"
	"github.com/stretchr/testify/mock"
)

func sampleCatalog() []model.WishlistItem {
	return []model.WishlistItem{
		{ID: "a", Name: "Red Mug", Category: "Home", Price: 10},
		{ID: "b", Name: "Blue Mug", Category: "Home", Price: 5},
		{ID: "c", Name: "Novel", Category: "Books", Price: 8},
	}
}

func names(items []model.WishlistItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Name)
	}
	return out
}

func TestFilterItems(t *testing.T) {
	tests := []struct {
		name      string
		items     []model.WishlistItem
		filter    *model.FilterState
		wantNames []string
	}{
		{
			name:      "nil filter keeps catalog order",
			items:     sampleCatalog(),
			filter:    nil,
			wantNames: []string{"Red Mug", "Blue Mug", "Novel"},
		},
		{
			name:      "empty filter keeps catalog order",
			items:     sampleCatalog(),
			filter:    &model.FilterState{},
			wantNames: []string{"Red Mug", "Blue Mug", "Novel"},
		},
		{
			name:      "search is a case-insensitive substring over name",
			items:     sampleCatalog(),
			filter:    &model.FilterState{Search: "MUG"},
			wantNames: []string{"Red Mug", "Blue Mug"},
		},
		{
			name: "search also matches the description",
			items: []model.WishlistItem{
				{ID: "a", Name: "Red Mug", Description: "ceramic", Category: "Home"},
				{ID: "c", Name: "Novel", Description: "a mug shot mystery", Category: "Books"},
			},
			filter:    &model.FilterState{Search: "mug"},
			wantNames: []string{"Red Mug", "Novel"},
		},
		{
			name:      "search combines with price ascending",
			items:     sampleCatalog(),
			filter:    &model.FilterState{Search: "mug", SortBy: constant.SortPriceAsc},
			wantNames: []string{"Blue Mug", "Red Mug"},
		},
		{
			name:      "category membership",
			items:     sampleCatalog(),
			filter:    &model.FilterState{Categories: []string{"Books"}, SortBy: constant.SortNameAsc},
			wantNames: []string{"Novel"},
		},
		{
			name:      "multiple categories union",
			items:     sampleCatalog(),
			filter:    &model.FilterState{Categories: []string{"Books", "Home"}},
			wantNames: []string{"Red Mug", "Blue Mug", "Novel"},
		},
		{
			name:      "sort by name ascending",
			items:     sampleCatalog(),
			filter:    &model.FilterState{SortBy: constant.SortNameAsc},
			wantNames: []string{"Blue Mug", "Novel", "Red Mug"},
		},
		{
			name:      "sort by name descending",
			items:     sampleCatalog(),
			filter:    &model.FilterState{SortBy: constant.SortNameDesc},
			wantNames: []string{"Red Mug", "Novel", "Blue Mug"},
		},
		{
			name:      "sort by price descending",
			items:     sampleCatalog(),
			filter:    &model.FilterState{SortBy: constant.SortPriceDesc},
			wantNames: []string{"Red Mug", "Novel", "Blue Mug"},
		},
		{
			name: "an absent price sorts as zero",
			items: []model.WishlistItem{
				{ID: "a", Name: "Red Mug", Category: "Home", Price: 10},
				{ID: "d", Name: "City Map", Category: "Travel"},
			},
			filter:    &model.FilterState{SortBy: constant.SortPriceAsc},
			wantNames: []string{"City Map", "Red Mug"},
		},
		{
			name: "name sort is case-insensitive",
			items: []model.WishlistItem{
				{ID: "a", Name: "banana stand"},
				{ID: "b", Name: "Apple Stand"},
			},
			filter:    &model.FilterState{SortBy: constant.SortNameAsc},
			wantNames: []string{"Apple Stand", "banana stand"},
		},
		{
			name:      "no match leaves nothing",
			items:     sampleCatalog(),
			filter:    &model.FilterState{Search: "teapot"},
			wantNames: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(apprecommendation.FilterItems(tt.items, tt.filter))
			if !reflect.DeepEqual(got, tt.wantNames) {
				t.Fatalf("FilterItems() = %v, want %v", got, tt.wantNames)
			}
		})
	}
}

func TestFilterItems_Pure(t *testing.T) {
	filter := &model.FilterState{Search: "mug", SortBy: constant.SortPriceAsc}

	first := names(apprecommendation.FilterItems(sampleCatalog(), filter))
	second := names(apprecommendation.FilterItems(sampleCatalog(), filter))
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("FilterItems() not deterministic: %v then %v", first, second)
	}
}

func TestRecommendationApp_ListRecommendations(t *testing.T) {
	t.Run("success: projects the catalog through the filter", func(t *testing.T) {
		repo := catalogmocks.NewCatalogRepository(t)
		app := apprecommendation.NewRecommendationApp(repo)

		repo.
			On("List", mock.Anything).
			Return(sampleCatalog(), nil).
			Once()

		got, err := app.ListRecommendations(context.Background(), &model.FilterState{Search: "mug", SortBy: constant.SortPriceAsc})
		if err != nil {
			t.Fatalf("ListRecommendations() error = %v", err)
		}
		if want := []string{"Blue Mug", "Red Mug"}; !reflect.DeepEqual(names(got.Items), want) {
			t.Fatalf("ListRecommendations() items = %v, want %v", names(got.Items), want)
		}
		if got.TotalCount != 2 {
			t.Fatalf("ListRecommendations() totalCount = %d, want 2", got.TotalCount)
		}
	})
}

func TestRecommendationApp_ListCategories(t *testing.T) {
	repo := catalogmocks.NewCatalogRepository(t)
	app := apprecommendation.NewRecommendationApp(repo)

	got, err := app.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("ListCategories() error = %v", err)
	}
	if !reflect.DeepEqual(got.Categories, constant.Categories) {
		t.Fatalf("ListCategories() = %v, want %v", got.Categories, constant.Categories)
	}
}
