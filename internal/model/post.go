package model

import (
	"mime/multipart"
	"time"
)

type Post struct {
	Id        int64
	Title     string
	Author    string
	Article   string
	Image     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type PostCreateRequest struct {
	Title   string
	Author  string
	Article string
	Image   *multipart.FileHeader
}

// PostUpdateRequest carries only the fields present in the request.
// A nil pointer leaves the stored value untouched.
type PostUpdateRequest struct {
	Title   *string
	Author  *string
	Article *string
	Image   *multipart.FileHeader
}

type PostResponse struct {
	Id        int64     `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Article   string    `json:"article"`
	Image     *string   `json:"image"`
	ImageUrl  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
