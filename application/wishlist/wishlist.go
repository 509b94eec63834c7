package wishlist

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/owuwix/wiishy/constant"
	"github.com/owuwix/wiishy/model"
	wishlistrepo "github.com/owuwix/wiishy/repository/wishlist"
	"github.com/owuwix/wiishy/thirdparty/rabbitmq"
	"github.com/owuwix/wiishy/utils/errors"
	"github.com/owuwix/wiishy/utils/logger"
	"go.uber.org/zap"
)

type WishlistApp interface {
	ListWishlists(ctx context.Context, userID uint64) ([]model.Wishlist, error)
	GetWishlist(ctx context.Context, userID uint64, id string) (*model.Wishlist, error)
	CreateWishlist(ctx context.Context, userID uint64, req *model.CreateWishlistRequest) (*model.Wishlist, error)
	UpdateWishlist(ctx context.Context, userID uint64, id string, req *model.UpdateWishlistRequest) (*model.Wishlist, error)
	DeleteWishlist(ctx context.Context, userID uint64, id string) error
	AddItem(ctx context.Context, userID uint64, wishlistID string, req *model.ItemRequest) (*model.Wishlist, error)
	ReplaceItem(ctx context.Context, userID uint64, wishlistID, itemID string, req *model.ItemRequest) (*model.Wishlist, error)
	RemoveItem(ctx context.Context, userID uint64, wishlistID, itemID string) (*model.Wishlist, error)
}

type wishlistAppImpl struct {
	wishlistRepo wishlistrepo.WishlistRepository
	publisher    *rabbitmq.Publisher
}

func NewWishlistApp(wishlistRepo wishlistrepo.WishlistRepository, publisher *rabbitmq.Publisher) WishlistApp {
	return &wishlistAppImpl{wishlistRepo: wishlistRepo, publisher: publisher}
}

func (s *wishlistAppImpl) ListWishlists(ctx context.Context, userID uint64) ([]model.Wishlist, error) {
	if userID == 0 {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	lists, err := s.wishlistRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Error("[ListWishlists] err wishlistRepo.ListByUser", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return lists, nil
}

func (s *wishlistAppImpl) GetWishlist(ctx context.Context, userID uint64, id string) (*model.Wishlist, error) {
	if userID == 0 {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	list, err := s.wishlistRepo.Get(ctx, userID, id)
	if err != nil {
		logger.Error("[GetWishlist] err wishlistRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if list == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return list, nil
}

func (s *wishlistAppImpl) CreateWishlist(ctx context.Context, userID uint64, req *model.CreateWishlistRequest) (*model.Wishlist, error) {
	if userID == 0 {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	now := time.Now()
	list := &model.Wishlist{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		IsPublic:    req.IsPublic,
		CreatedAt:   now,
		UpdatedAt:   now,
		Items:       []model.WishlistItem{},
	}

	if err := s.wishlistRepo.Insert(ctx, list); err != nil {
		logger.Error("[CreateWishlist] err wishlistRepo.Insert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	s.publishActivity(model.ActivityWishlistCreated, list, "")
	return list, nil
}

func (s *wishlistAppImpl) UpdateWishlist(ctx context.Context, userID uint64, id string, req *model.UpdateWishlistRequest) (*model.Wishlist, error) {
	if userID == 0 {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	list, err := s.wishlistRepo.Get(ctx, userID, id)
	if err != nil {
		logger.Error("[UpdateWishlist] err wishlistRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if list == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	// id, user and creation time are immutable
	if req.Name != nil {
		list.Name = *req.Name
	}
	if req.Description != nil {
		list.Description = *req.Description
	}
	if req.IsPublic != nil {
		list.IsPublic = *req.IsPublic
	}
	list.UpdatedAt = time.Now()

	if err := s.wishlistRepo.Update(ctx, list); err != nil {
		logger.Error("[UpdateWishlist] err wishlistRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	s.publishActivity(model.ActivityWishlistUpdated, list, "")
	return list, nil
}

// DeleteWishlist is idempotent: deleting an absent id is a no-op, which
// keeps client retries harmless.
func (s *wishlistAppImpl) DeleteWishlist(ctx context.Context, userID uint64, id string) error {
	if userID == 0 {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}

	list, err := s.wishlistRepo.Get(ctx, userID, id)
	if err != nil {
		logger.Error("[DeleteWishlist] err wishlistRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if list == nil {
		return nil
	}

	if err := s.wishlistRepo.Delete(ctx, userID, id); err != nil {
		logger.Error("[DeleteWishlist] err wishlistRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	s.publishActivity(model.ActivityWishlistDeleted, list, "")
	return nil
}

// AddItem appends an item to the wishlist. An item coming from the
// recommendation catalog already carries an id and creation time and keeps
// both; a freshly authored item gets new ones.
func (s *wishlistAppImpl) AddItem(ctx context.Context, userID uint64, wishlistID string, req *model.ItemRequest) (*model.Wishlist, error) {
	if userID == 0 {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	if !constant.IsValidCategory(req.Category) {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	list, err := s.wishlistRepo.Get(ctx, userID, wishlistID)
	if err != nil {
		logger.Error("[AddItem] err wishlistRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if list == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	now := time.Now()
	item := model.WishlistItem{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		UpdatedAt:   now,
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if req.CreatedAt != nil {
		item.CreatedAt = *req.CreatedAt
	} else {
		item.CreatedAt = now
	}

	if err := s.wishlistRepo.InsertItem(ctx, wishlistID, &item, now); err != nil {
		logger.Error("[AddItem] err wishlistRepo.InsertItem", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	list.Items = append(list.Items, item)
	list.UpdatedAt = now

	s.publishActivity(model.ActivityItemAdded, list, item.Name)
	return list, nil
}

// ReplaceItem edits an item in place as a single atomic operation.
func (s *wishlistAppImpl) ReplaceItem(ctx context.Context, userID uint64, wishlistID, itemID string, req *model.ItemRequest) (*model.Wishlist, error) {
	if userID == 0 {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	if !constant.IsValidCategory(req.Category) {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	list, err := s.wishlistRepo.Get(ctx, userID, wishlistID)
	if err != nil {
		logger.Error("[ReplaceItem] err wishlistRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if list == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	now := time.Now()
	item := model.WishlistItem{
		ID:          itemID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		UpdatedAt:   now,
	}

	replaced, err := s.wishlistRepo.ReplaceItem(ctx, wishlistID, &item, now)
	if err != nil {
		logger.Error("[ReplaceItem] err wishlistRepo.ReplaceItem", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !replaced {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	for i := range list.Items {
		if list.Items[i].ID == itemID {
			item.CreatedAt = list.Items[i].CreatedAt
			list.Items[i] = item
			break
		}
	}
	list.UpdatedAt = now

	s.publishActivity(model.ActivityItemReplaced, list, item.Name)
	return list, nil
}

// RemoveItem filters the item out by id. Removing an item that is not in
// the wishlist is a no-op; the wishlist timestamp is refreshed either way.
func (s *wishlistAppImpl) RemoveItem(ctx context.Context, userID uint64, wishlistID, itemID string) (*model.Wishlist, error) {
	if userID == 0 {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	list, err := s.wishlistRepo.Get(ctx, userID, wishlistID)
	if err != nil {
		logger.Error("[RemoveItem] err wishlistRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if list == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	now := time.Now()
	if err := s.wishlistRepo.DeleteItem(ctx, wishlistID, itemID, now); err != nil {
		logger.Error("[RemoveItem] err wishlistRepo.DeleteItem", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	removedName := ""
	kept := make([]model.WishlistItem, 0, len(list.Items))
	for _, item := range list.Items {
		if item.ID == itemID {
			removedName = item.Name
			continue
		}
		kept = append(kept, item)
	}
	list.Items = kept
	list.UpdatedAt = now

	if removedName != "" {
		s.publishActivity(model.ActivityItemRemoved, list, removedName)
	}
	return list, nil
}

// publishActivity emits a feed event. Publish failures are logged and never
// fail the mutation.
func (s *wishlistAppImpl) publishActivity(action string, list *model.Wishlist, itemName string) {
	if s.publisher == nil {
		return
	}

	msg := rabbitmq.WishlistActivityMessage{
		UserID:       list.UserID,
		Action:       action,
		WishlistID:   list.ID,
		WishlistName: list.Name,
		ItemName:     itemName,
		OccurredAt:   time.Now(),
	}
	if err := s.publisher.PublishWishlistActivity(msg); err != nil {
		logger.Error("[publishActivity] err PublishWishlistActivity", zap.String("error", err.Error()))
	}
}
