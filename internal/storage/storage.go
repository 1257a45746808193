// Package storage keeps uploaded blobs on the "public" disk. Every driver
// addresses blobs by a relative key such as "posts/<name>.png".
package storage

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"
)

const (
	DriverLocal = "local"
	DriverMinio = "minio"
	DriverS3    = "s3"
)

var (
	ErrObjectNotFound = errors.New("object not found")
	ErrInvalidKey     = errors.New("invalid object key")
)

type Object struct {
	Body        io.ReadCloser
	Size        int64
	ContentType string
}

type Disk interface {
	// Store writes the blob under dir/name and returns the stored key.
	Store(ctx context.Context, dir string, name string, reader io.Reader, size int64, contentType string) (string, error)
	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, key string) error
	Open(ctx context.Context, key string) (*Object, error)
}

// CleanKey rejects absolute keys and keys escaping the disk root.
func CleanKey(key string) (string, error) {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, "\\") {
		return "", ErrInvalidKey
	}

	cleaned := path.Clean(key)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", ErrInvalidKey
	}

	return cleaned, nil
}

func JoinKey(dir string, name string) (string, error) {
	if name == "" || strings.Contains(name, "/") {
		return "", ErrInvalidKey
	}

	return CleanKey(path.Join(dir, name))
}
