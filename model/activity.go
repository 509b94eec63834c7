package model

import "time"

// Activity actions recorded for the feed.
const (
	ActivityWishlistCreated = "wishlist_created"
	ActivityWishlistUpdated = "wishlist_updated"
	ActivityWishlistDeleted = "wishlist_deleted"
	ActivityItemAdded       = "item_added"
	ActivityItemRemoved     = "item_removed"
	ActivityItemReplaced    = "item_replaced"
)

// ActivityEntry is one recorded wishlist mutation in a user's feed.
type ActivityEntry struct {
	UserID       uint64    `json:"user_id"`
	Action       string    `json:"action"`
	WishlistID   string    `json:"wishlist_id"`
	WishlistName string    `json:"wishlist_name"`
	ItemName     string    `json:"item_name,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

type ActivityListResponse struct {
	Entries []ActivityEntry `json:"entries"`
}
