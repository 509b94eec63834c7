package wishlist

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/owuwix/wiishy/model"
)

type SQL struct {
	conn *sqlx.DB
}

type WishlistRepository interface {
	ListByUser(ctx context.Context, userID uint64) ([]model.Wishlist, error)
	Get(ctx context.Context, userID uint64, id string) (*model.Wishlist, error)
	Insert(ctx context.Context, data *model.Wishlist) error
	Update(ctx context.Context, data *model.Wishlist) error
	Delete(ctx context.Context, userID uint64, id string) error
	InsertItem(ctx context.Context, wishlistID string, item *model.WishlistItem, touchedAt time.Time) error
	DeleteItem(ctx context.Context, wishlistID, itemID string, touchedAt time.Time) error
	ReplaceItem(ctx context.Context, wishlistID string, item *model.WishlistItem, touchedAt time.Time) (bool, error)
}

func NewWishlistRepository(conn *sqlx.DB) WishlistRepository {
	return &SQL{conn: conn}
}

// Rows keep an auto-increment seq so that list and item order is always
// insertion order.
const (
	listWishlistsQuery  = `SELECT id, user_id, name, description, is_public, created_at, updated_at FROM wishlist WHERE user_id = ? ORDER BY seq`
	getWishlistQuery    = `SELECT id, user_id, name, description, is_public, created_at, updated_at FROM wishlist WHERE id = ? AND user_id = ?`
	insertWishlistQuery = `INSERT INTO wishlist (id, user_id, name, description, is_public, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)`
	updateWishlistQuery = `UPDATE wishlist SET name = ?, description = ?, is_public = ?, updated_at = ? WHERE id = ?`
	deleteWishlistQuery = `DELETE FROM wishlist WHERE id = ? AND user_id = ?`
	touchWishlistQuery  = `UPDATE wishlist SET updated_at = ? WHERE id = ?`

	listItemsQuery      = `SELECT wishlist_id, id, name, description, category, price, image_url, created_at, updated_at FROM wishlist_item WHERE wishlist_id IN (?) ORDER BY seq`
	insertItemQuery     = `INSERT INTO wishlist_item (id, wishlist_id, name, description, category, price, image_url, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	deleteItemQuery     = `DELETE FROM wishlist_item WHERE wishlist_id = ? AND id = ?`
	deleteAllItemsQuery = `DELETE FROM wishlist_item WHERE wishlist_id = ?`
	replaceItemQuery    = `UPDATE wishlist_item SET name = ?, description = ?, category = ?, price = ?, image_url = ?, updated_at = ? WHERE wishlist_id = ? AND id = ?`
)

type itemRow struct {
	WishlistID string `db:"wishlist_id"`
	model.WishlistItem
}

func (s *SQL) ListByUser(ctx context.Context, userID uint64) ([]model.Wishlist, error) {
	lists := []model.Wishlist{}
	if err := s.conn.SelectContext(ctx, &lists, listWishlistsQuery, userID); err != nil {
		return nil, err
	}
	if len(lists) == 0 {
		return lists, nil
	}

	ids := make([]string, 0, len(lists))
	for i := range lists {
		lists[i].Items = []model.WishlistItem{}
		ids = append(ids, lists[i].ID)
	}

	query, args, err := sqlx.In(listItemsQuery, ids)
	if err != nil {
		return nil, err
	}

	rows := []itemRow{}
	if err := s.conn.SelectContext(ctx, &rows, s.conn.Rebind(query), args...); err != nil {
		return nil, err
	}

	byID := make(map[string]*model.Wishlist, len(lists))
	for i := range lists {
		byID[lists[i].ID] = &lists[i]
	}
	for _, row := range rows {
		if list, ok := byID[row.WishlistID]; ok {
			list.Items = append(list.Items, row.WishlistItem)
		}
	}
	return lists, nil
}

func (s *SQL) Get(ctx context.Context, userID uint64, id string) (*model.Wishlist, error) {
	var list model.Wishlist
	if err := s.conn.QueryRowxContext(ctx, getWishlistQuery, id, userID).StructScan(&list); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	query, args, err := sqlx.In(listItemsQuery, []string{list.ID})
	if err != nil {
		return nil, err
	}
	rows := []itemRow{}
	if err := s.conn.SelectContext(ctx, &rows, s.conn.Rebind(query), args...); err != nil {
		return nil, err
	}

	list.Items = make([]model.WishlistItem, 0, len(rows))
	for _, row := range rows {
		list.Items = append(list.Items, row.WishlistItem)
	}
	return &list, nil
}

func (s *SQL) Insert(ctx context.Context, data *model.Wishlist) error {
	_, err := s.conn.ExecContext(ctx, insertWishlistQuery,
		data.ID, data.UserID, data.Name, data.Description, data.IsPublic, data.CreatedAt, data.UpdatedAt)
	return err
}

func (s *SQL) Update(ctx context.Context, data *model.Wishlist) error {
	_, err := s.conn.ExecContext(ctx, updateWishlistQuery,
		data.Name, data.Description, data.IsPublic, data.UpdatedAt, data.ID)
	return err
}

// Delete removes the wishlist and all of its items. An absent id deletes
// zero rows and is not an error.
func (s *SQL) Delete(ctx context.Context, userID uint64, id string) error {
	tx, err := s.conn.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, deleteAllItemsQuery, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, deleteWishlistQuery, id, userID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

func (s *SQL) InsertItem(ctx context.Context, wishlistID string, item *model.WishlistItem, touchedAt time.Time) error {
	tx, err := s.conn.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, insertItemQuery,
		item.ID, wishlistID, item.Name, item.Description, item.Category, item.Price, item.ImageURL, item.CreatedAt, item.UpdatedAt); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, touchWishlistQuery, touchedAt, wishlistID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// DeleteItem removes the item if present; a missing item still refreshes
// the wishlist timestamp and is not an error.
func (s *SQL) DeleteItem(ctx context.Context, wishlistID, itemID string, touchedAt time.Time) error {
	tx, err := s.conn.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, deleteItemQuery, wishlistID, itemID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, touchWishlistQuery, touchedAt, wishlistID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// ReplaceItem updates the item in place within one transaction, so an item
// edit is never observable as a remove followed by an add. Returns false
// when the item does not exist in the wishlist.
func (s *SQL) ReplaceItem(ctx context.Context, wishlistID string, item *model.WishlistItem, touchedAt time.Time) (bool, error) {
	tx, err := s.conn.BeginTxx(ctx, nil)
	if err != nil {
		return false, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	result, err := tx.ExecContext(ctx, replaceItemQuery,
		item.Name, item.Description, item.Category, item.Price, item.ImageURL, item.UpdatedAt, wishlistID, item.ID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected == 0 {
		return false, nil
	}

	if _, err := tx.ExecContext(ctx, touchWishlistQuery, touchedAt, wishlistID); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	committed = true
	return true, nil
}
