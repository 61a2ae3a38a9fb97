package handler

import (
	"net/http"

	"mediabox/backend/common"
	mberrors "mediabox/backend/common/errors"
	"mediabox/backend/common/i18n"

	"github.com/gin-gonic/gin"
)

type convertRequest struct {
	URLs []string `json:"urls" binding:"required,min=1"`
}

// Convert fetches a batch of remote URLs sequentially. The envelope always
// succeeds once the URL list parses; failures are reported per item.
func Convert(c *gin.Context) {
	lang := c.GetString("lang")
	var req convertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespError(c, http.StatusBadRequest, i18n.Translate(mberrors.ErrMissingURLList, lang))
		return
	}

	results := remote.FetchAll(c.Request.Context(), req.URLs, common.RequestBaseURL(c), lang)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"results": results,
	})
}

// ConvertSingle is the query-parameter form of Convert. Fetch failures
// still answer 200 with a per-item error, the same as one batch entry.
func ConvertSingle(c *gin.Context) {
	lang := c.GetString("lang")
	rawURL := c.Query("url")
	if rawURL == "" {
		common.RespError(c, http.StatusBadRequest, i18n.Translate(mberrors.ErrMissingURLParam, lang))
		return
	}

	res := remote.FetchOne(c.Request.Context(), rawURL, common.RequestBaseURL(c), lang)
	c.JSON(http.StatusOK, res)
}
