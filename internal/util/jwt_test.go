package util_test

import (
	"testing"
	"time"

	"github.com/ferdian3456/postapi/internal/constant"
	"github.com/ferdian3456/postapi/internal/model"
	"github.com/ferdian3456/postapi/internal/util"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret-key"

func requireUnauthorized(t *testing.T, err error, message string) {
	t.Helper()

	var validationErr *model.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, constant.ERR_UNATHORIZED_ERROR, validationErr.Code)
	assert.Equal(t, message, validationErr.Message)
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	response, err := util.GenerateTokenResponse(7, testSecret, 15*time.Minute)
	require.NoError(t, err)

	assert.NotEmpty(t, response.AccessToken)
	assert.Equal(t, 900, response.AccessTokenExpiresIn)
	assert.Equal(t, "Bearer", response.TokenType)

	token, userId, err := util.ValidateAccessToken("Bearer "+response.AccessToken, zap.NewNop(), testSecret)
	require.NoError(t, err)
	assert.Equal(t, response.AccessToken, token)
	assert.Equal(t, int64(7), userId)
}

func TestGenerateAccessTokenWithoutSecret(t *testing.T) {
	_, err := util.GenerateAccessToken(1, "", time.Minute)
	assert.Error(t, err)

	_, _, err = util.ValidateAccessToken("Bearer x", zap.NewNop(), "")
	assert.Error(t, err)
}

func TestValidateAccessTokenHeaderFormat(t *testing.T) {
	log := zap.NewNop()

	_, _, err := util.ValidateAccessToken("", log, testSecret)
	requireUnauthorized(t, err, "No authentication token is provided")

	_, _, err = util.ValidateAccessToken("Token abc", log, testSecret)
	requireUnauthorized(t, err, "Authentication token format is not match")

	_, _, err = util.ValidateAccessToken("Bearer    ", log, testSecret)
	requireUnauthorized(t, err, "Authentication token is empty")

	_, _, err = util.ValidateAccessToken("Bearer not.a.jwt", log, testSecret)
	requireUnauthorized(t, err, "Authentication token is malformed")
}

func TestValidateAccessTokenRejectsWrongSecret(t *testing.T) {
	token, err := util.GenerateAccessToken(1, "another-secret", time.Minute)
	require.NoError(t, err)

	_, _, err = util.ValidateAccessToken("Bearer "+token, zap.NewNop(), testSecret)
	requireUnauthorized(t, err, "Authentication token is invalid")
}

func TestValidateAccessTokenRejectsExpired(t *testing.T) {
	token, err := util.GenerateAccessToken(1, testSecret, -time.Minute)
	require.NoError(t, err)

	_, _, err = util.ValidateAccessToken("Bearer "+token, zap.NewNop(), testSecret)
	requireUnauthorized(t, err, "Authentication token is expired")
}

func TestValidateAccessTokenRejectsForeignIssuer(t *testing.T) {
	claims := &model.Claims{
		UserId: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, _, err = util.ValidateAccessToken("Bearer "+token, zap.NewNop(), testSecret)
	requireUnauthorized(t, err, "Authentication token is invalid")
}

func TestValidateAccessTokenRejectsNoneAlgorithm(t *testing.T) {
	claims := &model.Claims{
		UserId: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    util.TokenIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, _, err = util.ValidateAccessToken("Bearer "+token, zap.NewNop(), testSecret)
	require.Error(t, err)

	var validationErr *model.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, constant.ERR_UNATHORIZED_ERROR, validationErr.Code)
}

func TestHashToken(t *testing.T) {
	assert.Equal(t, util.HashToken("abc"), util.HashSHA256("abc"))
	assert.Len(t, util.HashToken("abc"), 64)
	assert.NotEqual(t, util.HashToken("abc"), util.HashToken("abd"))
}
