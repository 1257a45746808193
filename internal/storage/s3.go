package storage

import (
	"context"
	"errors"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"go.uber.org/zap"
)

// S3Disk keeps blobs in an S3 (or S3 compatible) bucket.
type S3Disk struct {
	Client *s3.Client
	Bucket string
	Log    *zap.Logger
}

func NewS3Disk(client *s3.Client, bucket string, log *zap.Logger) *S3Disk {
	return &S3Disk{
		Client: client,
		Bucket: bucket,
		Log:    log,
	}
}

func (disk *S3Disk) Store(ctx context.Context, dir string, name string, reader io.Reader, size int64, contentType string) (string, error) {
	key, err := JoinKey(dir, name)
	if err != nil {
		return "", err
	}

	_, err = disk.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(disk.Bucket),
		Key:           aws.String(key),
		Body:          reader,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		CacheControl:  aws.String("public, max-age=31536000, immutable"),
	})
	if err != nil {
		return "", err
	}

	disk.Log.Debug("stored object in s3", zap.String("bucket", disk.Bucket), zap.String("key", key))

	return key, nil
}

func (disk *S3Disk) Exists(ctx context.Context, key string) (bool, error) {
	key, err := CleanKey(key)
	if err != nil {
		return false, err
	}

	_, err = disk.Client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(disk.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isS3NotFound(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func (disk *S3Disk) Delete(ctx context.Context, key string) error {
	key, err := CleanKey(key)
	if err != nil {
		return err
	}

	_, err = disk.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(disk.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return err
	}

	return nil
}

func (disk *S3Disk) Open(ctx context.Context, key string) (*Object, error) {
	key, err := CleanKey(key)
	if err != nil {
		return nil, err
	}

	output, err := disk.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(disk.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isS3NotFound(err) {
			return nil, ErrObjectNotFound
		}
		return nil, err
	}

	return &Object{
		Body:        output.Body,
		Size:        aws.ToInt64(output.ContentLength),
		ContentType: aws.ToString(output.ContentType),
	}, nil
}

func isS3NotFound(err error) bool {
	var notFound *types.NotFound
	var noSuchKey *types.NoSuchKey
	return errors.As(err, &notFound) || errors.As(err, &noSuchKey)
}
