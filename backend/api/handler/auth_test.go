package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginWrongCredentials(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSON(r, "POST", "/login", map[string]string{
		"username": "admin",
		"password": "nope",
	}, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Tên đăng nhập hoặc mật khẩu không đúng", resp.Error)
}

func TestLoginMissingBody(t *testing.T) {
	r := setupTestRouter(t)
	w := doJSON(r, "POST", "/login", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckAuthReflectsSession(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSON(r, "GET", "/admin/check-auth", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"loggedIn":false}`, w.Body.String())

	cookies := loginAdmin(t, r)
	w = doJSON(r, "GET", "/admin/check-auth", nil, cookies)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"loggedIn":true}`, w.Body.String())
}

func TestLogoutRedirectsToLogin(t *testing.T) {
	r := setupTestRouter(t)
	cookies := loginAdmin(t, r)

	w := doJSON(r, "GET", "/logout", nil, cookies)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	// the replacement cookie invalidates the session
	cleared := w.Result().Cookies()
	require.NotEmpty(t, cleared)
	w = doJSON(r, "GET", "/admin/check-auth", nil, cleared)
	assert.JSONEq(t, `{"loggedIn":false}`, w.Body.String())
}

func TestChangePasswordRequiresSession(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSON(r, "POST", "/admin/change-password", map[string]string{
		"currentPassword": "admin123",
		"newPassword":     "other-password",
	}, nil)

	// page-style path: unauthenticated callers are redirected
	assert.Equal(t, http.StatusFound, w.Code)
}

func TestChangePasswordFlow(t *testing.T) {
	r := setupTestRouter(t)
	cookies := loginAdmin(t, r)

	// wrong current password is rejected and nothing changes
	w := doJSON(r, "POST", "/admin/change-password", map[string]string{
		"currentPassword": "wrong",
		"newPassword":     "new-password",
	}, cookies)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Mật khẩu hiện tại không đúng")

	w = doJSON(r, "POST", "/login", map[string]string{"username": "admin", "password": "admin123"}, nil)
	assert.Equal(t, http.StatusOK, w.Code, "old password still valid after failed change")

	// correct current password rotates the credential
	w = doJSON(r, "POST", "/admin/change-password", map[string]string{
		"currentPassword": "admin123",
		"newPassword":     "new-password",
	}, cookies)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, "POST", "/login", map[string]string{"username": "admin", "password": "admin123"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code, "old password must stop working")

	w = doJSON(r, "POST", "/login", map[string]string{"username": "admin", "password": "new-password"}, nil)
	assert.Equal(t, http.StatusOK, w.Code, "new password must work")
}
