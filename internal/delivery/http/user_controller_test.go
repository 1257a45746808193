package http_test

import (
	"net/http"
	"testing"

	"github.com/ferdian3456/postapi/internal/testinfra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	app := setupTestApp(t)

	resp := app.do(t, testinfra.CreateJSONRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", testinfra.ParseJSONResponse(t, resp)["status"])
}

func TestRegisterAndMe(t *testing.T) {
	app := setupTestApp(t)
	token := app.register(t, "jane@example.com")

	resp := app.do(t, testinfra.CreateAuthRequest(http.MethodGet, "/api/me", nil, token))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	me := testinfra.ParseJSONResponse(t, resp)
	assert.Equal(t, "Jane", me["name"])
	assert.Equal(t, "jane@example.com", me["email"])
	assert.NotContains(t, me, "password")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app := setupTestApp(t)
	app.register(t, "jane@example.com")

	body := []byte(`{"name":"Other","email":"jane@example.com","password":"password123"}`)
	resp := app.do(t, testinfra.CreateJSONRequest(http.MethodPost, "/api/register", body))
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	result := testinfra.ParseJSONResponse(t, resp)
	assert.Equal(t, []string{"The email has already been taken."}, testinfra.FieldErrors(t, result, "email"))
}

func TestLoginLogout(t *testing.T) {
	app := setupTestApp(t)
	registerToken := app.register(t, "jane@example.com")

	t.Log("=== Wrong password ===")
	resp := app.do(t, testinfra.CreateJSONRequest(http.MethodPost, "/api/login", []byte(`{"email":"jane@example.com","password":"wrong-password"}`)))
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid login credentials", testinfra.ParseJSONResponse(t, resp)["message"])

	t.Log("=== Login ===")
	resp = app.do(t, testinfra.CreateJSONRequest(http.MethodPost, "/api/login", []byte(`{"email":"jane@example.com","password":"password123"}`)))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	result := testinfra.ParseJSONResponse(t, resp)
	token := result["token"].(map[string]interface{})["accessToken"].(string)

	t.Log("=== Earlier token is replaced by the new session ===")
	if registerToken != token {
		resp = app.do(t, testinfra.CreateAuthRequest(http.MethodGet, "/api/me", nil, registerToken))
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}

	t.Log("=== Logout ===")
	resp = app.do(t, testinfra.CreateAuthRequest(http.MethodPost, "/api/logout", nil, token))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Logged out successfully", testinfra.ParseJSONResponse(t, resp)["message"])

	resp = app.do(t, testinfra.CreateAuthRequest(http.MethodGet, "/api/me", nil, token))
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginValidationFromForm(t *testing.T) {
	app := setupTestApp(t)

	body, contentType := testinfra.CreateMultipartFormData(t, map[string]string{"email": "jane"}, nil)
	resp := app.do(t, testinfra.CreateAuthMultipartRequest(http.MethodPost, "/api/login", body, contentType, ""))
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	result := testinfra.ParseJSONResponse(t, resp)
	assert.Equal(t, []string{"The email field must be a valid email address."}, testinfra.FieldErrors(t, result, "email"))
	assert.Equal(t, []string{"The password field is required."}, testinfra.FieldErrors(t, result, "password"))
}

func TestUnknownRoute(t *testing.T) {
	app := setupTestApp(t)

	resp := app.do(t, testinfra.CreateJSONRequest(http.MethodGet, "/api/nothing-here", nil))
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, testinfra.ParseJSONResponse(t, resp), "message")
}
