package handler

import (
	"net/http"

	"mediabox/backend/common"
	mberrors "mediabox/backend/common/errors"
	"mediabox/backend/common/i18n"
	"mediabox/backend/model"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// settingsPayload mirrors the admin form: maxFileSize arrives in MB.
// Omitted or zero fields keep their current value.
type settingsPayload struct {
	MaxFiles    int `json:"maxFiles" validate:"omitempty,gte=0,lte=100000"`
	MaxFileSize int `json:"maxFileSize" validate:"omitempty,gte=0,lte=102400"`
}

func UpdateSettings(c *gin.Context) {
	lang := c.GetString("lang")
	if c.Request.ContentLength == 0 {
		common.RespError(c, http.StatusBadRequest, i18n.Translate(mberrors.ErrEmptyBody, lang))
		return
	}

	var payload settingsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		common.RespError(c, http.StatusBadRequest, i18n.Translate(mberrors.ErrInvalidParam, lang))
		return
	}
	if err := validate.Struct(&payload); err != nil {
		common.RespError(c, http.StatusBadRequest, i18n.Translate(mberrors.ErrInvalidParam, lang))
		return
	}

	settings, err := model.UpdateSettings(payload.MaxFiles, payload.MaxFileSize)
	if err != nil {
		common.SysError("failed to save settings: " + err.Error())
		common.RespError(c, http.StatusInternalServerError, i18n.Translate(mberrors.ErrSaveSettings, lang))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"newSettings": settings,
	})
}

func UpdateAnnouncement(c *gin.Context) {
	lang := c.GetString("lang")
	var a model.Announcement
	if err := c.ShouldBindJSON(&a); err != nil {
		common.RespError(c, http.StatusBadRequest, i18n.Translate(mberrors.ErrInvalidParam, lang))
		return
	}

	if err := model.SaveAnnouncement(a); err != nil {
		common.SysError("failed to save announcement: " + err.Error())
		common.RespError(c, http.StatusInternalServerError, i18n.Translate(mberrors.ErrSaveAnnouncement, lang))
		return
	}
	common.RespSuccess(c)
}

// GetAnnouncement is public; unset state comes back as the inactive
// default, never an error.
func GetAnnouncement(c *gin.Context) {
	c.JSON(http.StatusOK, model.GetAnnouncement())
}
