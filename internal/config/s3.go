package config

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

func NewS3Client(config *koanf.Koanf, log *zap.Logger) *s3.Client {
	options := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(config.String("AWS_REGION")),
	}

	// Without static keys the default chain (env, shared config, IAM role) applies.
	accessKeyId := config.String("AWS_ACCESS_KEY_ID")
	if accessKeyId != "" {
		options = append(options, awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			accessKeyId,
			config.String("AWS_SECRET_ACCESS_KEY"),
			"",
		)))
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), options...)
	if err != nil {
		log.Fatal("failed to load aws config", zap.Error(err))
	}

	endpoint := config.String("AWS_ENDPOINT")

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
}
