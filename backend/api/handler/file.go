package handler

import (
	"errors"
	"net/http"
	"strconv"

	"mediabox/backend/common"
	mberrors "mediabox/backend/common/errors"
	"mediabox/backend/common/i18n"
	"mediabox/backend/library/storage"

	"github.com/gin-gonic/gin"
)

// GetFiles returns one page of the managed directory listing.
func GetFiles(c *gin.Context) {
	lang := c.GetString("lang")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	search := c.Query("search")

	result, err := fileRepo.List(page, limit, search)
	if err != nil {
		common.SysError("failed to list upload directory: " + err.Error())
		common.RespError(c, http.StatusInternalServerError, i18n.Translate(mberrors.ErrReadUploadDir, lang))
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteFile removes one stored file. Traversal attempts are a client
// error; a missing or locked file is a server error.
func DeleteFile(c *gin.Context) {
	lang := c.GetString("lang")
	name := c.Param("filename")

	if err := fileRepo.Delete(name); err != nil {
		if errors.Is(err, storage.ErrInvalidName) {
			common.RespError(c, http.StatusBadRequest, i18n.Translate(mberrors.ErrInvalidFilename, lang))
			return
		}
		common.SysError("failed to delete file " + name + ": " + err.Error())
		common.RespError(c, http.StatusInternalServerError, i18n.Translate(mberrors.ErrDeleteFile, lang))
		return
	}
	common.RespSuccess(c)
}

func GetStats(c *gin.Context) {
	lang := c.GetString("lang")
	stats, err := fileRepo.Stats()
	if err != nil {
		common.SysError("failed to stat upload directory: " + err.Error())
		common.RespError(c, http.StatusInternalServerError, i18n.Translate(mberrors.ErrReadUploadDir, lang))
		return
	}
	c.JSON(http.StatusOK, stats)
}
