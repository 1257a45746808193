package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/ferdian3456/postapi/internal/constant"
	"github.com/ferdian3456/postapi/internal/model"
	"github.com/ferdian3456/postapi/internal/util"
	"github.com/ferdian3456/postapi/internal/validator"
	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const testJwtSecret = "test-secret-key-for-jwt-token-generation"

func newTestUserUsecase(t *testing.T) (*UserUsecase, *memoryUserStore, *memoryTokenStore) {
	t.Helper()

	config := koanf.New(".")
	require.NoError(t, config.Set("JWT_SECRET_KEY", testJwtSecret))
	require.NoError(t, config.Set("JWT_ACCESS_TOKEN_TTL", "15m"))

	userStore := newMemoryUserStore()
	tokenStore := newMemoryTokenStore()

	return NewUserUsecase(userStore, tokenStore, zap.NewNop(), config), userStore, tokenStore
}

func registerInput(name, email, password string) validator.Input {
	return validator.Input{Values: map[string]any{
		"name":     name,
		"email":    email,
		"password": password,
	}}
}

func requireUnauthorized(t *testing.T, err error) *model.ValidationError {
	t.Helper()

	var validationErr *model.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, constant.ERR_UNATHORIZED_ERROR, validationErr.Code)

	return validationErr
}

func TestRegister(t *testing.T) {
	usecase, userStore, tokenStore := newTestUserUsecase(t)

	response, err := usecase.Register(context.Background(), registerInput("Jane", "Jane@Example.com", "password123"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), response.User.Id)
	assert.Equal(t, "jane@example.com", response.User.Email)
	assert.Equal(t, "Bearer", response.Token.TokenType)
	assert.Equal(t, int((15 * time.Minute).Seconds()), response.Token.AccessTokenExpiresIn)

	stored := userStore.users[1]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("password123")))
	assert.Equal(t, util.HashToken(response.Token.AccessToken), tokenStore.hashes[1])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	usecase, userStore, _ := newTestUserUsecase(t)

	_, err := usecase.Register(context.Background(), registerInput("Jane", "jane@example.com", "password123"))
	require.NoError(t, err)

	_, err = usecase.Register(context.Background(), registerInput("Other", "JANE@example.com", "password456"))

	var validationErr *model.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "email", validationErr.Param)
	assert.Equal(t, "The email has already been taken.", validationErr.Message)
	assert.Len(t, userStore.users, 1)
}

func TestRegisterValidation(t *testing.T) {
	usecase, userStore, _ := newTestUserUsecase(t)

	_, err := usecase.Register(context.Background(), registerInput("", "not-an-email", "short"))

	var validationErrs *model.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)

	messages := validationErrs.Messages()
	assert.Equal(t, []string{"The name field is required."}, messages["name"])
	assert.Equal(t, []string{"The email field must be a valid email address."}, messages["email"])
	assert.Equal(t, []string{"The password field must be at least 8 characters."}, messages["password"])
	assert.Empty(t, userStore.users)
}

func TestLogin(t *testing.T) {
	usecase, _, tokenStore := newTestUserUsecase(t)

	registered, err := usecase.Register(context.Background(), registerInput("Jane", "jane@example.com", "password123"))
	require.NoError(t, err)

	response, err := usecase.Login(context.Background(), validator.Input{Values: map[string]any{
		"email":    "jane@example.com",
		"password": "password123",
	}})
	require.NoError(t, err)

	assert.Equal(t, registered.User.Id, response.User.Id)
	assert.Equal(t, util.HashToken(response.Token.AccessToken), tokenStore.hashes[response.User.Id])
}

func TestLoginInvalidCredentials(t *testing.T) {
	usecase, _, _ := newTestUserUsecase(t)

	_, err := usecase.Register(context.Background(), registerInput("Jane", "jane@example.com", "password123"))
	require.NoError(t, err)

	for _, credentials := range []map[string]any{
		{"email": "jane@example.com", "password": "wrong-password"},
		{"email": "nobody@example.com", "password": "password123"},
	} {
		_, err = usecase.Login(context.Background(), validator.Input{Values: credentials})
		validationErr := requireUnauthorized(t, err)
		assert.Equal(t, constant.ERR_INVALID_CREDENTIALS_MESSAGE, validationErr.Message)
	}
}

func TestVerifyAccessToken(t *testing.T) {
	usecase, _, _ := newTestUserUsecase(t)

	registered, err := usecase.Register(context.Background(), registerInput("Jane", "jane@example.com", "password123"))
	require.NoError(t, err)

	userId := registered.User.Id
	require.NoError(t, usecase.VerifyAccessToken(context.Background(), userId, registered.Token.AccessToken))

	err = usecase.VerifyAccessToken(context.Background(), userId, registered.Token.AccessToken+"x")
	requireUnauthorized(t, err)

	require.NoError(t, usecase.Logout(context.Background(), userId))

	err = usecase.VerifyAccessToken(context.Background(), userId, registered.Token.AccessToken)
	requireUnauthorized(t, err)
}

func TestGetUserInfo(t *testing.T) {
	usecase, _, _ := newTestUserUsecase(t)

	registered, err := usecase.Register(context.Background(), registerInput("Jane", "jane@example.com", "password123"))
	require.NoError(t, err)

	user, err := usecase.GetUserInfo(context.Background(), registered.User.Id)
	require.NoError(t, err)
	assert.Equal(t, registered.User, user)

	_, err = usecase.GetUserInfo(context.Background(), 99)
	require.Error(t, err)
}
