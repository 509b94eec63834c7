package model

import "time"

// Wishlist is a named, owned collection of items with a visibility flag.
// Items are returned in insertion order.
type Wishlist struct {
	ID          string         `db:"id" json:"id"`
	UserID      uint64         `db:"user_id" json:"user_id"`
	Name        string         `db:"name" json:"name"`
	Description string         `db:"description" json:"description,omitempty"`
	IsPublic    bool           `db:"is_public" json:"is_public"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updated_at"`
	Items       []WishlistItem `json:"items"`
}

// WishlistItem is a single desired product entry within exactly one wishlist.
type WishlistItem struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description,omitempty"`
	Category    string    `db:"category" json:"category"`
	Price       float64   `db:"price" json:"price,omitempty"`
	ImageURL    string    `db:"image_url" json:"image_url,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// CreateWishlistRequest for creating a wishlist
type CreateWishlistRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
	IsPublic    bool   `json:"is_public"`
}

// UpdateWishlistRequest carries partial wishlist fields; nil means
// "leave unchanged"
type UpdateWishlistRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	IsPublic    *bool   `json:"is_public,omitempty"`
}

// ItemRequest carries an item to add to or replace in a wishlist. ID and
// CreatedAt are set when the item comes from the recommendation catalog,
// in which case its identity is retained; a freshly authored item leaves
// them empty and gets a new id and timestamps.
type ItemRequest struct {
	ID          string     `json:"id"`
	Name        string     `json:"name" validate:"required,max=100"`
	Description string     `json:"description" validate:"max=500"`
	Category    string     `json:"category" validate:"required"`
	Price       float64    `json:"price" validate:"gte=0"`
	ImageURL    string     `json:"image_url" validate:"omitempty,url,startswith=http"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}
