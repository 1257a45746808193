package http_test

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/ferdian3456/postapi/internal/config"
	"github.com/ferdian3456/postapi/internal/constant"
	"github.com/ferdian3456/postapi/internal/exception"
	"github.com/ferdian3456/postapi/internal/model"
	"github.com/ferdian3456/postapi/internal/repository"
	"github.com/ferdian3456/postapi/internal/storage"
	"github.com/ferdian3456/postapi/internal/testinfra"
	"github.com/ferdian3456/postapi/internal/util"

	"github.com/gofiber/fiber/v2"
	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testAppUrl    = "http://posts.test"
	testJwtSecret = "test-secret-key-for-jwt-token-generation"
)

// tokenStore keeps access token hashes in memory in place of Redis.
type tokenStore struct {
	mu     sync.Mutex
	hashes map[int64]string
}

func (store *tokenStore) SetAccessToken(ctx context.Context, userId int64, accessToken string, ttl time.Duration) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.hashes[userId] = util.HashToken(accessToken)
	return nil
}

func (store *tokenStore) GetAccessToken(ctx context.Context, userId int64) (string, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	hash, ok := store.hashes[userId]
	if !ok {
		return "", &model.ValidationError{Code: constant.ERR_UNATHORIZED_ERROR, Message: "Authorization token not found or expired"}
	}

	return hash, nil
}

func (store *tokenStore) RemoveAccessToken(ctx context.Context, userId int64) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	delete(store.hashes, userId)
	return nil
}

type testApp struct {
	App  *fiber.App
	Disk storage.Disk
}

func newTestConfig(t *testing.T) *koanf.Koanf {
	t.Helper()

	testConfig := koanf.New(".")
	require.NoError(t, testConfig.Set("APP_URL", testAppUrl))
	require.NoError(t, testConfig.Set("JWT_SECRET_KEY", testJwtSecret))
	require.NoError(t, testConfig.Set("JWT_ACCESS_TOKEN_TTL", "60m"))

	return testConfig
}

// setupTestApp serves the API from SQLite and a temp dir, with no containers.
func setupTestApp(t *testing.T) *testApp {
	t.Helper()

	log := zap.NewNop()
	testConfig := newTestConfig(t)

	sqlDB := testinfra.NewSQLite(t)

	disk, err := storage.NewLocalDisk(t.TempDir(), log)
	require.NoError(t, err)

	return newTestApp(&config.ServerConfig{
		PostStore:  repository.NewSQLPostRepository(log, sqlDB),
		UserStore:  repository.NewSQLUserRepository(log, sqlDB),
		TokenStore: &tokenStore{hashes: make(map[int64]string)},
		Disk:       disk,
		Log:        log,
		Config:     testConfig,
	})
}

func newTestApp(serverConfig *config.ServerConfig) *testApp {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          exception.ErrorHandler(serverConfig.Log),
	})
	app.Use(exception.Recovery(serverConfig.Log))

	serverConfig.Router = app
	config.Server(serverConfig)

	return &testApp{App: app, Disk: serverConfig.Disk}
}

func (app *testApp) do(t *testing.T, req *http.Request) *http.Response {
	t.Helper()

	resp, err := app.App.Test(req, -1)
	require.NoError(t, err, "request should succeed")

	t.Cleanup(func() {
		_ = resp.Body.Close()
	})

	return resp
}

// register creates a user and returns its access token.
func (app *testApp) register(t *testing.T, email string) string {
	t.Helper()

	body := []byte(`{"name":"Jane","email":"` + email + `","password":"password123"}`)
	resp := app.do(t, testinfra.CreateJSONRequest(http.MethodPost, "/api/register", body))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	result := testinfra.ParseJSONResponse(t, resp)
	token, ok := result["token"].(map[string]interface{})
	require.True(t, ok, "token should be an object")

	accessToken, ok := token["accessToken"].(string)
	require.True(t, ok, "accessToken should be a string")
	require.NotEmpty(t, accessToken)

	return accessToken
}
