package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ferdian3456/postapi/internal/model"
	"go.uber.org/zap"
)

// SQLPostRepository is the database/sql flavour of PostRepository, used
// with the SQLite driver.
type SQLPostRepository struct {
	Log *zap.Logger
	DB  *sql.DB
}

func NewSQLPostRepository(zap *zap.Logger, db *sql.DB) *SQLPostRepository {
	return &SQLPostRepository{
		Log: zap,
		DB:  db,
	}
}

func (repository *SQLPostRepository) FindAll(ctx context.Context) ([]model.Post, error) {
	query := "SELECT id, title, author, article, image, created_at, updated_at FROM posts ORDER BY id"

	rows, err := repository.DB.QueryContext(ctx, query)
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

func (repository *SQLPostRepository) FindById(ctx context.Context, id int64) (model.Post, error) {
	query := "SELECT id, title, author, article, image, created_at, updated_at FROM posts WHERE id = ?"

	var post model.Post
	err := repository.DB.QueryRowContext(ctx, query, id).Scan(&post.Id, &post.Title, &post.Author, &post.Article, &post.Image, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return post, postNotFound()
		}
		return post, err
	}

	return post, nil
}

func (repository *SQLPostRepository) Insert(ctx context.Context, post *model.Post) error {
	query := "INSERT INTO posts (title, author, article, image, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)"

	now := time.Now().UTC()

	result, err := repository.DB.ExecContext(ctx, query, post.Title, post.Author, post.Article, post.Image, now, now)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	post.Id = id
	post.CreatedAt = now
	post.UpdatedAt = now

	return nil
}

func (repository *SQLPostRepository) Update(ctx context.Context, post *model.Post) error {
	query := "UPDATE posts SET title = ?, author = ?, article = ?, image = ?, updated_at = ? WHERE id = ?"

	now := time.Now().UTC()

	result, err := repository.DB.ExecContext(ctx, query, post.Title, post.Author, post.Article, post.Image, now, post.Id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return postNotFound()
	}

	post.UpdatedAt = now

	return nil
}

func (repository *SQLPostRepository) Delete(ctx context.Context, id int64) error {
	query := "DELETE FROM posts WHERE id = ?"

	result, err := repository.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return postNotFound()
	}

	return nil
}
