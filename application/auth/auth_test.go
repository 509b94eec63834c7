package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	appauth "github.com/owuwix/wiishy/application/auth"
	"github.com/owuwix/wiishy/cmd/config"
	"github.com/owuwix/wiishy/constant"
	redismocks "github.com/owuwix/wiishy/mocks/repository/redis"
	usermocks "github.com/owuwix/wiishy/mocks/repository/user"
	"github.com/owuwix/wiishy/model"
	cerr "github.com/owuwix/wiishy/utils/errors"
	"github.com/stretchr/testify/mock"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret-key-for-jwt-signing",
			JWTExpiration:  time.Hour,
			SessionExpTime: time.Hour,
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

func TestAuthApp_Register(t *testing.T) {
	type fields struct {
		config    *config.Config
		userRepo  *usermocks.UserRepository
		redisRepo *redismocks.RedisRepository
	}
	type args struct {
		ctx context.Context
		req *model.RegisterRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: register new user with defaulted profile",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{Username: "alice", Password: "password123"},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "alice"}).
					Return(nil, nil).
					Once()

				f.userRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.UserEntity) bool {
						return ent.Username == "alice" &&
							ent.PasswordHash != "" &&
							ent.Gender == constant.GenderOther &&
							ent.Country == "" &&
							ent.BirthDate == "" &&
							len(ent.Interests) == 0
					})).
					Return(&model.UserEntity{
						ID:        1,
						Username:  "alice",
						Gender:    constant.GenderOther,
						Interests: model.InterestList{},
						CreatedAt: time.Now(),
					}, nil).
					Once()

				f.redisRepo.
					On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).
					Return(nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: username already exists",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{Username: "alice", Password: "password123"},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "alice"}).
					Return(&model.UserEntity{ID: 1, Username: "alice"}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrUsernameExists,
		},
		{
			name: "error: repository Get returns error",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{Username: "alice", Password: "password123"},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "alice"}).
					Return(nil, errors.New("db error")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: repository Create returns error",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{Username: "alice", Password: "password123"},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "alice"}).
					Return(nil, nil).
					Once()

				f.userRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.UserEntity")).
					Return(nil, errors.New("create failed")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appauth.NewAuthApp(tt.fields.config, tt.fields.userRepo, tt.fields.redisRepo)

			got, err := app.Register(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Register() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}

			if got.Token == "" {
				t.Fatalf("Register() returned empty token")
			}
			if got.User == nil || got.User.Username != tt.args.req.Username {
				t.Fatalf("Register() user = %+v, want username %s", got.User, tt.args.req.Username)
			}
			if got.User.Gender != constant.GenderOther {
				t.Fatalf("Register() gender = %s, want %s", got.User.Gender, constant.GenderOther)
			}
		})
	}
}

func TestAuthApp_Login(t *testing.T) {
	type fields struct {
		config    *config.Config
		userRepo  *usermocks.UserRepository
		redisRepo *redismocks.RedisRepository
	}
	type args struct {
		ctx context.Context
		req *model.LoginRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: login with known username",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{Username: "alice", Password: "password123"},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "alice"}).
					Return(&model.UserEntity{
						ID:        1,
						Username:  "alice",
						Gender:    constant.GenderFemale,
						Country:   "DE",
						CreatedAt: time.Now(),
					}, nil).
					Once()

				f.redisRepo.
					On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).
					Return(nil).
					Once()
			},
			wantErr: false,
		},
		{
			// the password is never verified; any value works for a
			// known username
			name: "success: login ignores the password",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{Username: "alice", Password: "definitely-wrong"},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "alice"}).
					Return(&model.UserEntity{
						ID:           1,
						Username:     "alice",
						PasswordHash: "bcrypt-hash-of-something-else",
						CreatedAt:    time.Now(),
					}, nil).
					Once()

				f.redisRepo.
					On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).
					Return(nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: unknown username",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{Username: "nobody", Password: "password123"},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "nobody"}).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidCredentials,
		},
		{
			name: "error: repository returns error",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{Username: "alice", Password: "password123"},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "alice"}).
					Return(nil, errors.New("db error")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appauth.NewAuthApp(tt.fields.config, tt.fields.userRepo, tt.fields.redisRepo)

			got, err := app.Login(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Login() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}

			if got.Token == "" {
				t.Fatalf("Login() returned empty token")
			}
			if got.User == nil || got.User.ID != 1 {
				t.Fatalf("Login() user = %+v, want id 1", got.User)
			}
		})
	}
}

func TestAuthApp_UpdateProfile(t *testing.T) {
	gender := constant.GenderFemale
	country := "Portugal"
	interests := model.InterestList{"books", "travel"}

	type fields struct {
		config    *config.Config
		userRepo  *usermocks.UserRepository
		redisRepo *redismocks.RedisRepository
	}
	type args struct {
		ctx    context.Context
		userID uint64
		req    *model.UpdateProfileRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.ProfileResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "error: not authenticated",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 0,
				req:    &model.UpdateProfileRequest{Country: &country},
			},
			wantErr: true,
			errCode: constant.ErrUnauthorize,
		},
		{
			name: "error: user no longer exists",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 7,
				req:    &model.UpdateProfileRequest{Country: &country},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ID: uint64(7)}).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrUnauthorize,
		},
		{
			name: "success: merges only the provided fields",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 7,
				req: &model.UpdateProfileRequest{
					Gender:    &gender,
					Interests: &interests,
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ID: uint64(7)}).
					Return(&model.UserEntity{
						ID:        7,
						Username:  "alice",
						Gender:    constant.GenderOther,
						Country:   "Spain",
						BirthDate: "1990-04-01",
						Interests: model.InterestList{},
					}, nil).
					Once()

				f.userRepo.
					On("Update", mock.Anything, mock.MatchedBy(func(ent *model.UserEntity) bool {
						// untouched fields survive the merge
						return ent.ID == 7 &&
							ent.Gender == constant.GenderFemale &&
							ent.Country == "Spain" &&
							ent.BirthDate == "1990-04-01" &&
							len(ent.Interests) == 2
					})).
					Return(nil).
					Once()
			},
			want: &model.ProfileResponse{
				ID:        7,
				Username:  "alice",
				Gender:    constant.GenderFemale,
				Country:   "Spain",
				BirthDate: "1990-04-01",
				Interests: interests,
			},
			wantErr: false,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appauth.NewAuthApp(tt.fields.config, tt.fields.userRepo, tt.fields.redisRepo)

			got, err := app.UpdateProfile(tt.args.ctx, tt.args.userID, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateProfile() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}

			if got.Gender != tt.want.Gender || got.Country != tt.want.Country ||
				got.BirthDate != tt.want.BirthDate || len(got.Interests) != len(tt.want.Interests) {
				t.Fatalf("UpdateProfile() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAuthApp_Logout(t *testing.T) {
	cfg := testConfig()

	t.Run("success: deletes the session referenced by the token", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRedisRepository(t)
		app := appauth.NewAuthApp(cfg, userRepo, redisRepo)

		token := signTestToken(t, cfg.Auth.JWTSecret, "1", "session-jti")

		redisRepo.
			On("DeleteSession", mock.Anything, "session-jti").
			Return(nil).
			Once()

		if err := app.Logout(context.Background(), token); err != nil {
			t.Fatalf("Logout() error = %v", err)
		}
	})

	t.Run("success: malformed token clears nothing", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRedisRepository(t)
		app := appauth.NewAuthApp(cfg, userRepo, redisRepo)

		if err := app.Logout(context.Background(), "not-a-token"); err != nil {
			t.Fatalf("Logout() error = %v", err)
		}
	})
}

func TestAuthApp_ValidateToken(t *testing.T) {
	cfg := testConfig()

	t.Run("success: token with live session", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRedisRepository(t)
		app := appauth.NewAuthApp(cfg, userRepo, redisRepo)

		token := signTestToken(t, cfg.Auth.JWTSecret, "42", "live-jti")

		redisRepo.
			On("GetSession", mock.Anything, "live-jti").
			Return(uint64(42), nil).
			Once()

		userID, err := app.ValidateToken(context.Background(), token)
		if err != nil {
			t.Fatalf("ValidateToken() error = %v", err)
		}
		if userID != 42 {
			t.Fatalf("ValidateToken() = %d, want 42", userID)
		}
	})

	t.Run("error: session does not match subject", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRedisRepository(t)
		app := appauth.NewAuthApp(cfg, userRepo, redisRepo)

		token := signTestToken(t, cfg.Auth.JWTSecret, "42", "stale-jti")

		redisRepo.
			On("GetSession", mock.Anything, "stale-jti").
			Return(uint64(7), nil).
			Once()

		if _, err := app.ValidateToken(context.Background(), token); err == nil {
			t.Fatalf("ValidateToken() expected error")
		}
	})

	t.Run("error: expired session resolves to unauthenticated", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRedisRepository(t)
		app := appauth.NewAuthApp(cfg, userRepo, redisRepo)

		token := signTestToken(t, cfg.Auth.JWTSecret, "42", "gone-jti")

		redisRepo.
			On("GetSession", mock.Anything, "gone-jti").
			Return(uint64(0), errors.New("redis: nil")).
			Once()

		if _, err := app.ValidateToken(context.Background(), token); err == nil {
			t.Fatalf("ValidateToken() expected error")
		}
	})
}

func signTestToken(t *testing.T, secret, subject, jti string) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ID:        jti,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}
