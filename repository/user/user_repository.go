package user

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/owuwix/wiishy/model"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	Update(ctx context.Context, data *model.UserEntity) error
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	insertUserQuery = `INSERT INTO user (username, password_hash, gender, country, birth_date, interests, created_at) VALUES (?, ?, ?, ?, ?, ?, NOW())`
	updateUserQuery = `UPDATE user SET gender = ?, country = ?, birth_date = ?, interests = ?, updated_at = NOW() WHERE id = ?`
	getUserBase     = `SELECT id, username, password_hash, gender, country, birth_date, interests, created_at, updated_at FROM user WHERE true`
)

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertUserQuery,
		data.Username, data.PasswordHash, data.Gender, data.Country, data.BirthDate, data.Interests)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := getUserBase
	args := make([]any, 0, 2)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Username != "" {
		// exact, case-sensitive match
		query += " AND username = BINARY ?"
		args = append(args, filter.Username)
	}

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Update(ctx context.Context, data *model.UserEntity) error {
	_, err := s.conn.ExecContext(ctx, updateUserQuery,
		data.Gender, data.Country, data.BirthDate, data.Interests, data.ID)
	return err
}
