package repository

import (
	"context"
	"errors"

	"github.com/ferdian3456/postapi/internal/constant"
	"github.com/ferdian3456/postapi/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type UserRepository struct {
	Log *zap.Logger
	DB  *pgxpool.Pool
}

func NewUserRepository(zap *zap.Logger, db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		Log: zap,
		DB:  db,
	}
}

func userNotFound() error {
	return &model.ValidationError{
		Code:    constant.ERR_NOT_FOUND_ERROR,
		Message: constant.ERR_USER_NOT_FOUND_MESSAGE,
		Param:   "userId",
	}
}

func (repository *UserRepository) Insert(ctx context.Context, user *model.User) error {
	query := "INSERT INTO users (name, email, password) VALUES ($1, $2, $3) RETURNING id, created_at, updated_at"

	err := repository.DB.QueryRow(ctx, query, user.Name, user.Email, user.Password).Scan(&user.Id, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return err
	}

	return nil
}

func (repository *UserRepository) CheckEmailUnique(ctx context.Context, email string) (int, error) {
	query := "SELECT 1 FROM users WHERE email = $1 LIMIT 1"

	var exists int
	err := repository.DB.QueryRow(ctx, query, email).Scan(&exists)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return exists, nil
		}
		return exists, err
	}

	return exists, nil
}

func (repository *UserRepository) FindByEmail(ctx context.Context, email string) (model.User, error) {
	query := "SELECT id, name, email, password, created_at, updated_at FROM users WHERE email = $1 LIMIT 1"

	var user model.User
	err := repository.DB.QueryRow(ctx, query, email).Scan(&user.Id, &user.Name, &user.Email, &user.Password, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user, userNotFound()
		}
		return user, err
	}

	return user, nil
}

func (repository *UserRepository) FindById(ctx context.Context, id int64) (model.User, error) {
	query := "SELECT id, name, email, password, created_at, updated_at FROM users WHERE id = $1 LIMIT 1"

	var user model.User
	err := repository.DB.QueryRow(ctx, query, id).Scan(&user.Id, &user.Name, &user.Email, &user.Password, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user, userNotFound()
		}
		return user, err
	}

	return user, nil
}
