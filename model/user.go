package model

import (
	"time"

	"github.com/owuwix/wiishy/constant"
)

// UserEntity represents the user table entity
type UserEntity struct {
	ID           uint64              `db:"id" json:"id"`
	Username     string              `db:"username" json:"username"`
	PasswordHash string              `db:"password_hash" json:"-"`
	Gender       constant.GenderType `db:"gender" json:"gender"`
	Country      string              `db:"country" json:"country"`
	BirthDate    string              `db:"birth_date" json:"birth_date"`
	Interests    InterestList        `db:"interests" json:"interests"`
	CreatedAt    time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time          `db:"updated_at" json:"updated_at,omitempty"`
}

// UserFilter for querying users
type UserFilter struct {
	ID       uint64
	Username string
}

// RegisterRequest for user registration
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest for user login
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by both register and login
type AuthResponse struct {
	User  *ProfileResponse `json:"user"`
	Token string           `json:"token"`
}

// UpdateProfileRequest carries the partial profile fields; nil means
// "leave unchanged"
type UpdateProfileRequest struct {
	Gender    *constant.GenderType `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	Country   *string              `json:"country,omitempty" validate:"omitempty,max=100"`
	BirthDate *string              `json:"birth_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Interests *InterestList        `json:"interests,omitempty" validate:"omitempty,dive,max=50"`
}

// ProfileResponse is the observable identity shape exposed to clients
type ProfileResponse struct {
	ID        uint64              `json:"id"`
	Username  string              `json:"username"`
	Gender    constant.GenderType `json:"gender"`
	Country   string              `json:"country"`
	BirthDate string              `json:"birth_date"`
	Interests InterestList        `json:"interests"`
	CreatedAt time.Time           `json:"created_at"`
}

// ToProfile maps the entity to its client-facing shape
func (u *UserEntity) ToProfile() *ProfileResponse {
	interests := u.Interests
	if interests == nil {
		interests = InterestList{}
	}
	return &ProfileResponse{
		ID:        u.ID,
		Username:  u.Username,
		Gender:    u.Gender,
		Country:   u.Country,
		BirthDate: u.BirthDate,
		Interests: interests,
		CreatedAt: u.CreatedAt,
	}
}
