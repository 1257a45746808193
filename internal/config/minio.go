package config

import (
	"context"

	"github.com/knadh/koanf/v2"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

func NewMinIO(config *koanf.Koanf, log *zap.Logger) *minio.Client {
	minioClient, err := minio.New(config.String("MINIO_URL"), &minio.Options{
		Creds:  credentials.NewStaticV4(config.String("MINIO_USER"), config.String("MINIO_PASSWORD"), ""),
		Secure: config.Bool("MINIO_SECURE"),
	})
	if err != nil {
		log.Fatal("failed to initialize minio client", zap.Error(err))
	}

	err = EnsureMinioBucket(context.Background(), minioClient, config.String("MINIO_BUCKET_NAME"), config.String("MINIO_LOCATION"), log)
	if err != nil {
		log.Fatal("failed to create minio bucket", zap.Error(err))
	}

	return minioClient
}

func EnsureMinioBucket(ctx context.Context, minioClient *minio.Client, bucketName string, location string, log *zap.Logger) error {
	err := minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{
		Region: location,
	})
	if err != nil {
		exists, errBucketExists := minioClient.BucketExists(ctx, bucketName)
		if errBucketExists == nil && exists {
			log.Info("minio bucket already exists", zap.String("bucket", bucketName))
			return nil
		}

		return err
	}

	log.Info("successfully created minio bucket", zap.String("bucket", bucketName))

	return nil
}
