package auth

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/owuwix/wiishy/cmd/config"
	"github.com/owuwix/wiishy/constant"
	"github.com/owuwix/wiishy/model"
	redisrepo "github.com/owuwix/wiishy/repository/redis"
	userrepo "github.com/owuwix/wiishy/repository/user"
	"github.com/owuwix/wiishy/utils/errors"
	"github.com/owuwix/wiishy/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)
	Logout(ctx context.Context, tokenString string) error
	Profile(ctx context.Context, userID uint64) (*model.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uint64, req *model.UpdateProfileRequest) (*model.ProfileResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (uint64, error)
}

type AuthAppImpl struct {
	config    *config.Config
	userRepo  userrepo.UserRepository
	redisRepo redisrepo.Repository
}

func NewAuthApp(config *config.Config, userRepo userrepo.UserRepository, redisRepo redisrepo.Repository) AuthApp {
	return &AuthAppImpl{
		config:    config,
		userRepo:  userRepo,
		redisRepo: redisRepo,
	}
}

// Register creates a user with a defaulted profile and logs them in.
func (s *AuthAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Username: req.Username})
	if err != nil {
		logger.Error("[Register] err userRepo.Get username", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrUsernameExists)
	}

	// The hash is stored but never compared at login; credential
	// verification is out of scope for this system.
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Register] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Profile fields start empty; gender defaults to "other"
	userEntity := &model.UserEntity{
		Username:     req.Username,
		PasswordHash: string(hashedPassword),
		Gender:       constant.GenderOther,
		Country:      "",
		BirthDate:    "",
		Interests:    model.InterestList{},
		CreatedAt:    time.Now(),
	}

	userEntity, err = s.userRepo.Create(ctx, userEntity)
	if err != nil {
		logger.Error("[Register] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	token, err := s.startSession(ctx, userEntity.ID)
	if err != nil {
		logger.Error("[Register] err startSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.AuthResponse{
		User:  userEntity.ToProfile(),
		Token: token,
	}, nil
}

// Login resolves the user by username only. The password is accepted but
// not verified; an unknown username is the only credential failure.
func (s *AuthAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Username: req.Username})
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if user == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidCredentials)
	}

	token, err := s.startSession(ctx, user.ID)
	if err != nil {
		logger.Error("[Login] err startSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.AuthResponse{
		User:  user.ToProfile(),
		Token: token,
	}, nil
}

// Logout clears the persisted session. It succeeds even when the token is
// malformed or the session is already gone.
func (s *AuthAppImpl) Logout(ctx context.Context, tokenString string) error {
	jti, err := s.parseJTI(tokenString)
	if err != nil {
		// nothing to clear
		return nil
	}

	if err := s.redisRepo.DeleteSession(ctx, jti); err != nil {
		logger.Error("[Logout] err DeleteSession", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *AuthAppImpl) Profile(ctx context.Context, userID uint64) (*model.ProfileResponse, error) {
	if userID == 0 {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[Profile] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	return user.ToProfile(), nil
}

// UpdateProfile merges the provided fields into the current user. Absent
// fields are left untouched.
func (s *AuthAppImpl) UpdateProfile(ctx context.Context, userID uint64, req *model.UpdateProfileRequest) (*model.ProfileResponse, error) {
	if userID == 0 {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[UpdateProfile] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	if req.Gender != nil {
		user.Gender = *req.Gender
	}
	if req.Country != nil {
		user.Country = *req.Country
	}
	if req.BirthDate != nil {
		user.BirthDate = *req.BirthDate
	}
	if req.Interests != nil {
		user.Interests = *req.Interests
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		logger.Error("[UpdateProfile] err userRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return user.ToProfile(), nil
}

func (s *AuthAppImpl) ValidateToken(ctx context.Context, tokenString string) (uint64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return 0, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return 0, fmt.Errorf("invalid claims")
	}

	userIDStr := claims.Subject
	userID, err := strconv.ParseUint(userIDStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user id in token")
	}

	jti := claims.ID
	if jti == "" {
		return 0, fmt.Errorf("token missing jti")
	}

	redisUserID, err := s.redisRepo.GetSession(ctx, jti)
	if err != nil {
		return 0, fmt.Errorf("invalid or expired session")
	}

	if redisUserID != userID {
		return 0, fmt.Errorf("token does not match user session")
	}

	return userID, nil
}

// startSession issues a JWT and persists the session it references.
func (s *AuthAppImpl) startSession(ctx context.Context, userID uint64) (string, error) {
	token, jti, err := s.generateJWT(userID)
	if err != nil {
		return "", err
	}

	if err := s.redisRepo.SetSession(ctx, jti, userID, s.config.Auth.SessionExpTime); err != nil {
		return "", err
	}
	return token, nil
}

// generateJWT creates a JWT token for the user
func (s *AuthAppImpl) generateJWT(userID uint64) (string, string, error) {
	newUUID, _ := uuid.NewRandom()
	claims := jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", userID),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Auth.JWTExpiration)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}

// parseJTI extracts the session id from a token without requiring a live
// session.
func (s *AuthAppImpl) parseJTI(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.ID == "" {
		return "", fmt.Errorf("token missing jti")
	}
	return claims.ID, nil
}
