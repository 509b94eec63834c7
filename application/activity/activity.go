package activity

import (
	"context"

	"github.com/owuwix/wiishy/cmd/config"
	"github.com/owuwix/wiishy/constant"
	"github.com/owuwix/wiishy/model"
	redisrepo "github.com/owuwix/wiishy/repository/redis"
	"github.com/owuwix/wiishy/utils/errors"
	"github.com/owuwix/wiishy/utils/logger"
	"go.uber.org/zap"
)

type ActivityApp interface {
	Ingest(ctx context.Context, entry *model.ActivityEntry) error
	Recent(ctx context.Context, userID uint64) (*model.ActivityListResponse, error)
}

type activityAppImpl struct {
	config    *config.Config
	redisRepo redisrepo.Repository
}

func NewActivityApp(config *config.Config, redisRepo redisrepo.Repository) ActivityApp {
	return &activityAppImpl{config: config, redisRepo: redisRepo}
}

// Ingest records one wishlist mutation in the owning user's feed. Called by
// the activity worker through the internal API.
func (s *activityAppImpl) Ingest(ctx context.Context, entry *model.ActivityEntry) error {
	if entry.UserID == 0 || entry.Action == "" {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	err := s.redisRepo.PushActivity(ctx, entry, s.config.Activity.FeedSize, s.config.Activity.FeedTTL)
	if err != nil {
		logger.Error("[Ingest] err redisRepo.PushActivity", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// Recent returns the newest entries of the current user's feed.
func (s *activityAppImpl) Recent(ctx context.Context, userID uint64) (*model.ActivityListResponse, error) {
	if userID == 0 {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	entries, err := s.redisRepo.RecentActivity(ctx, userID, s.config.Activity.FeedSize)
	if err != nil {
		logger.Error("[Recent] err redisRepo.RecentActivity", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.ActivityListResponse{Entries: entries}, nil
}
