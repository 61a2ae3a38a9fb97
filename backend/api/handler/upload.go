package handler

import (
	"net/http"

	"mediabox/backend/common"
	mberrors "mediabox/backend/common/errors"
	"mediabox/backend/common/i18n"
	"mediabox/backend/model"

	"github.com/gin-gonic/gin"
)

// Upload ingests multipart files from the "files" field and answers with
// the public URLs of the stored copies. The configured maxFiles and
// maxFileSizeMB limits are enforced here, before anything hits disk.
func Upload(c *gin.Context) {
	lang := c.GetString("lang")

	form, err := c.MultipartForm()
	if err != nil {
		common.RespError(c, http.StatusBadRequest, err.Error())
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		common.RespError(c, http.StatusBadRequest, i18n.Translate(mberrors.ErrNoFilesUploaded, lang))
		return
	}

	settings := model.GetSettings()
	if settings.MaxFiles > 0 && len(files) > settings.MaxFiles {
		common.RespError(c, http.StatusBadRequest, i18n.Translate(mberrors.ErrTooManyFiles, lang, settings.MaxFiles))
		return
	}
	maxBytes := int64(settings.MaxFileSizeMB) * 1024 * 1024
	if maxBytes > 0 {
		for _, fh := range files {
			if fh.Size > maxBytes {
				common.RespError(c, http.StatusBadRequest,
					i18n.Translate(mberrors.ErrFileTooLarge, lang, fh.Filename, settings.MaxFileSizeMB))
				return
			}
		}
	}

	base := common.RequestBaseURL(c)
	urls := make([]string, 0, len(files))
	for _, fh := range files {
		name, err := fileRepo.SaveUpload(fh, "files")
		if err != nil {
			common.SysError("failed to save upload " + fh.Filename + ": " + err.Error())
			common.RespError(c, http.StatusInternalServerError, i18n.Translate(mberrors.ErrSaveFile, lang))
			return
		}
		urls = append(urls, base+"/uploads/"+name)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"urls":    urls,
	})
}
