package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"mediabox/backend/api/handler"
	"mediabox/backend/api/middleware"
	"mediabox/backend/api/route"
	"mediabox/backend/common"
	"mediabox/backend/library/storage"
	"mediabox/backend/model"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
)

func main() {
	flag.Parse()
	if *common.PrintVersion {
		fmt.Println(common.Version)
		os.Exit(0)
	}
	if *common.PrintHelpFlag {
		common.PrintHelp()
		os.Exit(0)
	}
	common.SetupGinLog()
	common.SysLog("Mediabox " + common.Version + " started")
	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := common.LoadConfigFile(); err != nil {
		common.FatalLog(err)
	}
	// Initialize Redis (optional, used for the session store when configured)
	if err := common.InitRedisClient(); err != nil {
		common.FatalLog(err)
	}
	// Singleton config files: admin credentials, upload settings, announcement
	if err := model.InitStores(common.DataDir); err != nil {
		common.FatalLog(err)
	}
	repo, err := storage.New(common.UploadDir)
	if err != nil {
		common.FatalLog(err)
	}
	handler.Init(repo)

	server := gin.Default()
	// route on the raw path so encoded slashes in :filename reach the
	// handler's validation instead of 404ing
	server.UseRawPath = true
	server.Use(middleware.CORS())

	// Initialize session store
	if common.RedisEnabled {
		opt := common.ParseRedisOption()
		store, err := redis.NewStore(opt.MinIdleConns, "tcp", opt.Addr, opt.Password, []byte(common.SessionSecret))
		if err != nil {
			common.FatalLog(err)
		}
		store.Options(sessions.Options{Path: "/", MaxAge: common.SessionMaxAge, HttpOnly: true})
		server.Use(sessions.Sessions(common.SessionName, store))
	} else {
		store := cookie.NewStore([]byte(common.SessionSecret))
		store.Options(sessions.Options{Path: "/", MaxAge: common.SessionMaxAge, HttpOnly: true})
		server.Use(sessions.Sessions(common.SessionName, store))
	}
	server.Use(middleware.Lang())

	route.SetRouter(server)
	server.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") || strings.HasPrefix(c.Request.URL.Path, "/admin/api/") {
			c.JSON(404, gin.H{
				"success": false,
				"error":   "API route not found",
			})
		} else {
			c.String(404, "404 page not found")
		}
	})

	port := strconv.Itoa(*common.Port)
	common.SysLog("Server listening on port: " + port)

	setupGracefulShutdown()

	if err := server.Run(":" + port); err != nil {
		log.Fatal("failed to start server: " + err.Error())
	}
}

// setupGracefulShutdown registers signal handlers to ensure clean shutdown
func setupGracefulShutdown() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		common.SysLog("Shutting down...")
		os.Exit(0)
	}()
}
