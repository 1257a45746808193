package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"path"
	"path/filepath"

	"go.uber.org/zap"
)

// LocalDisk stores blobs below a directory on the local filesystem.
type LocalDisk struct {
	Root string
	Log  *zap.Logger
}

func NewLocalDisk(root string, log *zap.Logger) (*LocalDisk, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	err = os.MkdirAll(absRoot, 0o755)
	if err != nil {
		return nil, fmt.Errorf("create storage root %s: %w", absRoot, err)
	}

	return &LocalDisk{
		Root: absRoot,
		Log:  log,
	}, nil
}

func (disk *LocalDisk) path(key string) (string, error) {
	cleaned, err := CleanKey(key)
	if err != nil {
		return "", err
	}

	return filepath.Join(disk.Root, filepath.FromSlash(cleaned)), nil
}

func (disk *LocalDisk) Store(ctx context.Context, dir string, name string, reader io.Reader, size int64, contentType string) (string, error) {
	key, err := JoinKey(dir, name)
	if err != nil {
		return "", err
	}

	fullPath, err := disk.path(key)
	if err != nil {
		return "", err
	}

	err = os.MkdirAll(filepath.Dir(fullPath), 0o755)
	if err != nil {
		return "", err
	}

	// write to a temp file first so a failed copy never leaves a partial blob
	tmp, err := os.CreateTemp(filepath.Dir(fullPath), ".upload-*")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	written, err := io.Copy(tmp, reader)
	if err != nil {
		_ = tmp.Close()
		return "", err
	}

	err = tmp.Close()
	if err != nil {
		return "", err
	}

	if size >= 0 && written != size {
		return "", fmt.Errorf("short write for %s: wrote %d of %d bytes", key, written, size)
	}

	err = os.Rename(tmp.Name(), fullPath)
	if err != nil {
		return "", err
	}

	disk.Log.Debug("stored object on local disk", zap.String("key", key), zap.Int64("size", written))

	return key, nil
}

func (disk *LocalDisk) Exists(ctx context.Context, key string) (bool, error) {
	fullPath, err := disk.path(key)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}

	return !info.IsDir(), nil
}

func (disk *LocalDisk) Delete(ctx context.Context, key string) error {
	fullPath, err := disk.path(key)
	if err != nil {
		return err
	}

	err = os.Remove(fullPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return nil
}

func (disk *LocalDisk) Open(ctx context.Context, key string) (*Object, error) {
	fullPath, err := disk.path(key)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(fullPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrObjectNotFound
		}
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, err
	}

	if info.IsDir() {
		_ = file.Close()
		return nil, ErrObjectNotFound
	}

	contentType := mime.TypeByExtension(path.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &Object{
		Body:        file,
		Size:        info.Size(),
		ContentType: contentType,
	}, nil
}
