package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"mediabox/backend/api/middleware"
	"mediabox/backend/common"
	"mediabox/backend/library/storage"
	"mediabox/backend/model"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// setupTestRouter wires fresh temp-backed stores and the same route table
// the server uses.
func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	require.NoError(t, model.InitStores(t.TempDir()))
	repo, err := storage.New(filepath.Join(t.TempDir(), "uploads"))
	require.NoError(t, err)
	Init(repo)

	r := gin.New()
	r.UseRawPath = true
	r.Use(sessions.Sessions(common.SessionName, cookie.NewStore([]byte("test-secret"))))
	r.Use(middleware.Lang())

	r.POST("/login", Login)
	r.GET("/logout", Logout)
	r.GET("/admin/check-auth", CheckAuth)
	r.POST("/admin/change-password", middleware.SessionAuth(), ChangePassword)

	adminAPI := r.Group("/admin/api")
	adminAPI.Use(middleware.SessionAuth())
	{
		adminAPI.GET("/files", GetFiles)
		adminAPI.DELETE("/files/:filename", DeleteFile)
		adminAPI.GET("/stats", GetStats)
		adminAPI.POST("/settings", UpdateSettings)
		adminAPI.POST("/announcement", UpdateAnnouncement)
	}

	r.GET("/api/announcement", GetAnnouncement)
	r.POST("/upload", Upload)
	r.POST("/convert", Convert)
	r.GET("/api/convert", ConvertSingle)
	return r
}

func doJSON(r *gin.Engine, method, path string, payload any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		data, _ := json.Marshal(payload)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// loginAdmin authenticates with the default credentials and returns the
// session cookies.
func loginAdmin(t *testing.T, r *gin.Engine) []*http.Cookie {
	t.Helper()
	w := doJSON(r, "POST", "/login", map[string]string{
		"username": "admin",
		"password": "admin123",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}
