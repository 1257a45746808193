package usecase

import (
	"context"
	"time"

	"github.com/ferdian3456/postapi/internal/model"
)

// PostStore is implemented by the PostgreSQL and SQLite post repositories.
// Missing rows are reported as a NOT_FOUND *model.ValidationError.
type PostStore interface {
	FindAll(ctx context.Context) ([]model.Post, error)
	FindById(ctx context.Context, id int64) (model.Post, error)
	Insert(ctx context.Context, post *model.Post) error
	Update(ctx context.Context, post *model.Post) error
	Delete(ctx context.Context, id int64) error
}

type UserStore interface {
	Insert(ctx context.Context, user *model.User) error
	CheckEmailUnique(ctx context.Context, email string) (int, error)
	FindByEmail(ctx context.Context, email string) (model.User, error)
	FindById(ctx context.Context, id int64) (model.User, error)
}

// TokenStore keeps the hash of the live access token per user.
type TokenStore interface {
	SetAccessToken(ctx context.Context, userId int64, accessToken string, ttl time.Duration) error
	GetAccessToken(ctx context.Context, userId int64) (string, error)
	RemoveAccessToken(ctx context.Context, userId int64) error
}
