package storage

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// MinioDisk keeps blobs in one MinIO bucket, the bucket being the public disk.
type MinioDisk struct {
	Client *minio.Client
	Bucket string
	Log    *zap.Logger
}

func NewMinioDisk(client *minio.Client, bucket string, log *zap.Logger) *MinioDisk {
	return &MinioDisk{
		Client: client,
		Bucket: bucket,
		Log:    log,
	}
}

func (disk *MinioDisk) Store(ctx context.Context, dir string, name string, reader io.Reader, size int64, contentType string) (string, error) {
	key, err := JoinKey(dir, name)
	if err != nil {
		return "", err
	}

	info, err := disk.Client.PutObject(ctx, disk.Bucket, key, reader, size,
		minio.PutObjectOptions{
			ContentType:  contentType,
			CacheControl: "public, max-age=31536000, immutable",
		})
	if err != nil {
		return "", err
	}

	disk.Log.Debug("stored object in minio",
		zap.String("bucket", disk.Bucket),
		zap.String("key", key),
		zap.Int64("size", info.Size))

	return key, nil
}

func (disk *MinioDisk) Exists(ctx context.Context, key string) (bool, error) {
	key, err := CleanKey(key)
	if err != nil {
		return false, err
	}

	_, err = disk.Client.StatObject(ctx, disk.Bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if isMinioNotFound(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func (disk *MinioDisk) Delete(ctx context.Context, key string) error {
	key, err := CleanKey(key)
	if err != nil {
		return err
	}

	err = disk.Client.RemoveObject(ctx, disk.Bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		return err
	}

	return nil
}

func (disk *MinioDisk) Open(ctx context.Context, key string) (*Object, error) {
	key, err := CleanKey(key)
	if err != nil {
		return nil, err
	}

	object, err := disk.Client.GetObject(ctx, disk.Bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}

	// GetObject is lazy, Stat issues the request
	info, err := object.Stat()
	if err != nil {
		_ = object.Close()
		if isMinioNotFound(err) {
			return nil, ErrObjectNotFound
		}
		return nil, err
	}

	return &Object{
		Body:        object,
		Size:        info.Size,
		ContentType: info.ContentType,
	}, nil
}

func isMinioNotFound(err error) bool {
	code := minio.ToErrorResponse(err).Code
	return code == "NoSuchKey" || code == "NotFound"
}
