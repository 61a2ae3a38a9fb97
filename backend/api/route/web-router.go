package route

import (
	"mediabox/backend/common"

	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
)

// setWebRouter serves the front-end bundle and the managed directory.
// Stored files are public: anyone with a URL can retrieve the file.
func setWebRouter(route *gin.Engine) {
	route.Use(static.Serve("/", static.LocalFile(common.PublicDir, false)))
	route.Use(static.Serve("/uploads", static.LocalFile(common.UploadDir, false)))
}
