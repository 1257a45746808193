// Package testinfra starts the containers and databases used by integration
// tests. Container based helpers skip the test in -short mode.
package testinfra

import (
	"context"
	"fmt"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	MinioUser     = "minioadmin"
	MinioPassword = "minioadmin"
)

func skipShort(t *testing.T) {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
}

// StartPostgres returns the connection string of a fresh PostgreSQL container.
func StartPostgres(ctx context.Context, t *testing.T) string {
	skipShort(t)

	t.Log("Starting PostgreSQL container...")
	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("postapi_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		),
	)
	require.NoError(t, err, "failed to start postgres")

	t.Cleanup(func() {
		_ = pgContainer.Terminate(context.Background())
	})

	pgURL, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "failed to get postgres connection string")
	t.Logf("PostgreSQL started at: %s", pgURL)

	return pgURL
}

// StartRedis returns the host:port of a fresh Redis container.
func StartRedis(ctx context.Context, t *testing.T) string {
	skipShort(t)

	t.Log("Starting Redis container...")
	redisContainer, err := redis.Run(ctx,
		"redis:7-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Ready to accept connections"),
		),
	)
	require.NoError(t, err, "failed to start redis")

	t.Cleanup(func() {
		_ = redisContainer.Terminate(context.Background())
	})

	redisHost, err := redisContainer.Host(ctx)
	require.NoError(t, err, "failed to get redis host")

	redisPort, err := redisContainer.MappedPort(ctx, "6379")
	require.NoError(t, err, "failed to get redis port")

	redisURL := fmt.Sprintf("%s:%s", redisHost, redisPort.Port())
	t.Logf("Redis started at: %s", redisURL)

	return redisURL
}

// StartMinio returns a client for a fresh MinIO container.
func StartMinio(ctx context.Context, t *testing.T) *minio.Client {
	skipShort(t)

	t.Log("Starting MinIO container...")
	minioContainer, err := testcontainers.GenericContainer(ctx,
		testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image: "minio/minio:latest",
				Cmd:   []string{"server", "/data"},
				Env: map[string]string{
					"MINIO_ROOT_USER":     MinioUser,
					"MINIO_ROOT_PASSWORD": MinioPassword,
				},
				ExposedPorts: []string{"9000/tcp"},
				WaitingFor:   wait.ForHTTP("/minio/health/live").WithPort("9000/tcp"),
			},
			Started: true,
		},
	)
	require.NoError(t, err, "failed to start minio")

	t.Cleanup(func() {
		_ = minioContainer.Terminate(context.Background())
	})

	minioHost, err := minioContainer.Host(ctx)
	require.NoError(t, err, "failed to get minio host")

	minioPort, err := minioContainer.MappedPort(ctx, "9000")
	require.NoError(t, err, "failed to get minio port")

	minioURL := fmt.Sprintf("%s:%s", minioHost, minioPort.Port())
	t.Logf("MinIO started at: %s", minioURL)

	minioClient, err := minio.New(minioURL, &minio.Options{
		Creds:  credentials.NewStaticV4(MinioUser, MinioPassword, ""),
		Secure: false,
	})
	require.NoError(t, err, "failed to connect to minio")

	return minioClient
}
