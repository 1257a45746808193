package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ferdian3456/postapi/internal/model"
	"go.uber.org/zap"
)

type SQLUserRepository struct {
	Log *zap.Logger
	DB  *sql.DB
}

func NewSQLUserRepository(zap *zap.Logger, db *sql.DB) *SQLUserRepository {
	return &SQLUserRepository{
		Log: zap,
		DB:  db,
	}
}

func (repository *SQLUserRepository) Insert(ctx context.Context, user *model.User) error {
	query := "INSERT INTO users (name, email, password, created_at, updated_at) VALUES (?, ?, ?, ?, ?)"

	now := time.Now().UTC()

	result, err := repository.DB.ExecContext(ctx, query, user.Name, user.Email, user.Password, now, now)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	user.Id = id
	user.CreatedAt = now
	user.UpdatedAt = now

	return nil
}

func (repository *SQLUserRepository) CheckEmailUnique(ctx context.Context, email string) (int, error) {
	query := "SELECT 1 FROM users WHERE email = ? LIMIT 1"

	var exists int
	err := repository.DB.QueryRowContext(ctx, query, email).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return exists, nil
		}
		return exists, err
	}

	return exists, nil
}

func (repository *SQLUserRepository) FindByEmail(ctx context.Context, email string) (model.User, error) {
	query := "SELECT id, name, email, password, created_at, updated_at FROM users WHERE email = ? LIMIT 1"

	var user model.User
	err := repository.DB.QueryRowContext(ctx, query, email).Scan(&user.Id, &user.Name, &user.Email, &user.Password, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user, userNotFound()
		}
		return user, err
	}

	return user, nil
}

func (repository *SQLUserRepository) FindById(ctx context.Context, id int64) (model.User, error) {
	query := "SELECT id, name, email, password, created_at, updated_at FROM users WHERE id = ? LIMIT 1"

	var user model.User
	err := repository.DB.QueryRowContext(ctx, query, id).Scan(&user.Id, &user.Name, &user.Email, &user.Password, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user, userNotFound()
		}
		return user, err
	}

	return user, nil
}
