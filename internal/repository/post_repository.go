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

type PostRepository struct {
	Log *zap.Logger
	DB  *pgxpool.Pool
}

func NewPostRepository(zap *zap.Logger, db *pgxpool.Pool) *PostRepository {
	return &PostRepository{
		Log: zap,
		DB:  db,
	}
}

func postNotFound() error {
	return &model.ValidationError{
		Code:    constant.ERR_NOT_FOUND_ERROR,
		Message: constant.ERR_POST_NOT_FOUND_MESSAGE,
		Param:   "id",
	}
}

func (repository *PostRepository) FindAll(ctx context.Context) ([]model.Post, error) {
	query := "SELECT id, title, author, article, image, created_at, updated_at FROM posts ORDER BY id"

	rows, err := repository.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []model.Post{}

	for rows.Next() {
		var post model.Post
		err := rows.Scan(&post.Id, &post.Title, &post.Author, &post.Article, &post.Image, &post.CreatedAt, &post.UpdatedAt)
		if err != nil {
			return nil, err
		}

		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

func (repository *PostRepository) FindById(ctx context.Context, id int64) (model.Post, error) {
	query := "SELECT id, title, author, article, image, created_at, updated_at FROM posts WHERE id = $1"

	var post model.Post
	err := repository.DB.QueryRow(ctx, query, id).Scan(&post.Id, &post.Title, &post.Author, &post.Article, &post.Image, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return post, postNotFound()
		}
		return post, err
	}

	return post, nil
}

// Insert stores the post and fills in the id and timestamps assigned by the database.
func (repository *PostRepository) Insert(ctx context.Context, post *model.Post) error {
	query := "INSERT INTO posts (title, author, article, image) VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at"

	err := repository.DB.QueryRow(ctx, query, post.Title, post.Author, post.Article, post.Image).Scan(&post.Id, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return err
	}

	return nil
}

func (repository *PostRepository) Update(ctx context.Context, post *model.Post) error {
	query := "UPDATE posts SET title = $1, author = $2, article = $3, image = $4, updated_at = NOW() WHERE id = $5 RETURNING updated_at"

	err := repository.DB.QueryRow(ctx, query, post.Title, post.Author, post.Article, post.Image, post.Id).Scan(&post.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return postNotFound()
		}
		return err
	}

	return nil
}

func (repository *PostRepository) Delete(ctx context.Context, id int64) error {
	query := "DELETE FROM posts WHERE id = $1"

	tag, err := repository.DB.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return postNotFound()
	}

	return nil
}
