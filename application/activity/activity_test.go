package activity_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appactivity "github.com/owuwix/wiishy/application/activity"
	"github.com/owuwix/wiishy/cmd/config"
	"github.com/owuwix/wiishy/constant"
	redismocks "github.com/owuwix/wiishy/mocks/repository/redis"
	"github.com/owuwix/wiishy/model"
	cerr "github.com/owuwix/wiishy/utils/errors"
	"github.com/stretchr/testify/mock"
)

func testConfig() *config.Config {
	return &config.Config{
		Activity: config.ActivityConfig{
			FeedSize: 50,
			FeedTTL:  7 * 24 * time.Hour,
		},
	}
}

func assertErrCode(t *testing.T, err error, errCode constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[errCode] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[errCode])
	}
}

func TestActivityApp_Ingest(t *testing.T) {
	entry := &model.ActivityEntry{
		UserID:       7,
		Action:       model.ActivityItemAdded,
		WishlistID:   "wl-1",
		WishlistName: "Birthday",
		ItemName:     "Book",
		OccurredAt:   time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	t.Run("success", func(t *testing.T) {
		repo := redismocks.NewRedisRepository(t)
		app := appactivity.NewActivityApp(testConfig(), repo)

		repo.
			On("PushActivity", mock.Anything, entry, 50, 7*24*time.Hour).
			Return(nil).
			Once()

		if err := app.Ingest(context.Background(), entry); err != nil {
			t.Fatalf("Ingest() error = %v", err)
		}
	})

	t.Run("error: entry without owner or action", func(t *testing.T) {
		repo := redismocks.NewRedisRepository(t)
		app := appactivity.NewActivityApp(testConfig(), repo)

		err := app.Ingest(context.Background(), &model.ActivityEntry{Action: model.ActivityItemAdded})
		assertErrCode(t, err, constant.ErrInvalidRequest)

		err = app.Ingest(context.Background(), &model.ActivityEntry{UserID: 7})
		assertErrCode(t, err, constant.ErrInvalidRequest)
	})

	t.Run("error: redis push fails", func(t *testing.T) {
		repo := redismocks.NewRedisRepository(t)
		app := appactivity.NewActivityApp(testConfig(), repo)

		repo.
			On("PushActivity", mock.Anything, entry, 50, 7*24*time.Hour).
			Return(errors.New("redis down")).
			Once()

		err := app.Ingest(context.Background(), entry)
		assertErrCode(t, err, constant.ErrInternal)
	})
}

func TestActivityApp_Recent(t *testing.T) {
	t.Run("error: not authenticated", func(t *testing.T) {
		repo := redismocks.NewRedisRepository(t)
		app := appactivity.NewActivityApp(testConfig(), repo)

		_, err := app.Recent(context.Background(), 0)
		assertErrCode(t, err, constant.ErrUnauthorize)
	})

	t.Run("success: returns the stored feed", func(t *testing.T) {
		repo := redismocks.NewRedisRepository(t)
		app := appactivity.NewActivityApp(testConfig(), repo)

		entries := []model.ActivityEntry{
			{UserID: 7, Action: model.ActivityWishlistCreated, WishlistID: "wl-1", WishlistName: "Birthday"},
		}
		repo.
			On("RecentActivity", mock.Anything, uint64(7), 50).
			Return(entries, nil).
			Once()

		got, err := app.Recent(context.Background(), 7)
		if err != nil {
			t.Fatalf("Recent() error = %v", err)
		}
		if len(got.Entries) != 1 || got.Entries[0].WishlistID != "wl-1" {
			t.Fatalf("Recent() = %+v", got.Entries)
		}
	})
}
