package recommendation

import (
	"context"
	"sort"
	"strings"

	"github.com/owuwix/wiishy/constant"
	"github.com/owuwix/wiishy/model"
	catalogrepo "github.com/owuwix/wiishy/repository/catalog"
	"github.com/owuwix/wiishy/utils/errors"
	"github.com/owuwix/wiishy/utils/logger"
	"go.uber.org/zap"
)

type RecommendationApp interface {
	ListRecommendations(ctx context.Context, filter *model.FilterState) (*model.RecommendationListResponse, error)
	ListCategories(ctx context.Context) (*model.CategoryListResponse, error)
}

type recommendationAppImpl struct {
	catalogRepo catalogrepo.CatalogRepository
}

func NewRecommendationApp(catalogRepo catalogrepo.CatalogRepository) RecommendationApp {
	return &recommendationAppImpl{catalogRepo: catalogRepo}
}

// ListRecommendations projects the catalog through the filter: substring
// search over name and description, category membership, then one of four
// sort orders. The projection is pure; the same catalog and filter always
// produce the same ordering.
func (s *recommendationAppImpl) ListRecommendations(ctx context.Context, filter *model.FilterState) (*model.RecommendationListResponse, error) {
	items, err := s.catalogRepo.List(ctx)
	if err != nil {
		logger.Error("[ListRecommendations] err catalogRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	items = FilterItems(items, filter)
	return &model.RecommendationListResponse{
		Items:      items,
		TotalCount: len(items),
	}, nil
}

func (s *recommendationAppImpl) ListCategories(ctx context.Context) (*model.CategoryListResponse, error) {
	categories := make([]string, len(constant.Categories))
	copy(categories, constant.Categories)
	return &model.CategoryListResponse{Categories: categories}, nil
}

// FilterItems applies the filter to items in place and returns the result.
// Sorting is stable, so items comparing equal keep catalog order.
func FilterItems(items []model.WishlistItem, filter *model.FilterState) []model.WishlistItem {
	if filter == nil {
		return items
	}

	if search := strings.ToLower(strings.TrimSpace(filter.Search)); search != "" {
		kept := items[:0]
		for _, item := range items {
			if strings.Contains(strings.ToLower(item.Name), search) ||
				strings.Contains(strings.ToLower(item.Description), search) {
				kept = append(kept, item)
			}
		}
		items = kept
	}

	if len(filter.Categories) > 0 {
		selected := make(map[string]struct{}, len(filter.Categories))
		for _, c := range filter.Categories {
			selected[c] = struct{}{}
		}
		kept := items[:0]
		for _, item := range items {
			if _, ok := selected[item.Category]; ok {
				kept = append(kept, item)
			}
		}
		items = kept
	}

	switch filter.SortBy {
	case constant.SortNameAsc:
		sort.SliceStable(items, func(i, j int) bool {
			return compareNames(items[i].Name, items[j].Name) < 0
		})
	case constant.SortNameDesc:
		sort.SliceStable(items, func(i, j int) bool {
			return compareNames(items[i].Name, items[j].Name) > 0
		})
	case constant.SortPriceAsc:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Price < items[j].Price
		})
	case constant.SortPriceDesc:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Price > items[j].Price
		})
	}

	return items
}

// compareNames orders names case-insensitively, falling back to a
// case-sensitive compare for equal folds so the order is total.
func compareNames(a, b string) int {
	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}
