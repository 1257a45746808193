package config

import (
	"github.com/ferdian3456/postapi/internal/storage"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

// NewDisk builds the public disk selected by STORAGE_DRIVER.
func NewDisk(config *koanf.Koanf, log *zap.Logger) storage.Disk {
	driver := config.String("STORAGE_DRIVER")

	switch driver {
	case storage.DriverLocal:
		disk, err := storage.NewLocalDisk(config.String("STORAGE_LOCAL_ROOT"), log)
		if err != nil {
			log.Fatal("failed to prepare local storage", zap.Error(err))
		}
		return disk
	case storage.DriverMinio:
		return storage.NewMinioDisk(NewMinIO(config, log), config.String("MINIO_BUCKET_NAME"), log)
	case storage.DriverS3:
		return storage.NewS3Disk(NewS3Client(config, log), config.String("AWS_BUCKET_NAME"), log)
	default:
		log.Fatal("unsupported storage driver", zap.String("driver", driver))
	}

	return nil
}
