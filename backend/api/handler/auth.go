package handler

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"mediabox/backend/api/middleware"
	"mediabox/backend/common"
	mberrors "mediabox/backend/common/errors"
	"mediabox/backend/common/i18n"
	"mediabox/backend/model"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func IndexPage(c *gin.Context) {
	c.File(filepath.Join(common.PublicDir, "index.html"))
}

func LoginPage(c *gin.Context) {
	if middleware.IsLoggedIn(c) {
		target := "/admin"
		if strings.HasPrefix(c.Request.URL.Path, "/trangquantri") {
			target = "/trangquantri"
		}
		c.Redirect(http.StatusFound, target)
		return
	}
	c.File(filepath.Join(common.PublicDir, "admin-login.html"))
}

func AdminPage(c *gin.Context) {
	c.File(filepath.Join(common.PublicDir, "admin.html"))
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	lang := c.GetString("lang")
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespError(c, http.StatusBadRequest, i18n.Translate(mberrors.ErrInvalidParam, lang))
		return
	}

	if !model.Authenticate(req.Username, req.Password) {
		common.RespError(c, http.StatusUnauthorized, i18n.Translate(mberrors.ErrInvalidCredentials, lang))
		return
	}

	session := sessions.Default(c)
	session.Set("loggedIn", true)
	if err := session.Save(); err != nil {
		common.RespError(c, http.StatusInternalServerError, i18n.Translate(mberrors.ErrInternalServer, lang))
		return
	}
	common.RespSuccess(c)
}

func Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	_ = session.Save()
	c.Redirect(http.StatusFound, "/login")
}

// CheckAuth is intentionally ungated: the front-end probes it to decide
// which view to render.
func CheckAuth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"loggedIn": middleware.IsLoggedIn(c)})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

func ChangePassword(c *gin.Context) {
	lang := c.GetString("lang")
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespError(c, http.StatusBadRequest, i18n.Translate(mberrors.ErrInvalidParam, lang))
		return
	}

	if err := model.ChangePassword(req.CurrentPassword, req.NewPassword); err != nil {
		if errors.Is(err, model.ErrWrongPassword) {
			common.RespError(c, http.StatusUnauthorized, i18n.Translate(mberrors.ErrWrongCurrentPassword, lang))
			return
		}
		common.SysError("failed to save new password: " + err.Error())
		common.RespError(c, http.StatusInternalServerError, i18n.Translate(mberrors.ErrSavePassword, lang))
		return
	}
	common.RespSuccess(c)
}
