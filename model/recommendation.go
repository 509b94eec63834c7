package model

import "github.com/owuwix/wiishy/constant"

// FilterState is the active search/category/sort criteria applied to the
// recommendation catalog. It is transient, never persisted.
type FilterState struct {
	Search     string
	Categories []string
	SortBy     constant.SortOption
}

type RecommendationListResponse struct {
	Items      []WishlistItem `json:"items"`
	TotalCount int            `json:"total_count"`
}

type CategoryListResponse struct {
	Categories []string `json:"categories"`
}
