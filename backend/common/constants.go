package common

import (
	"flag"
	"fmt"
	"path/filepath"
)

var Version = "v0.3.1"

var (
	Port          = flag.Int("port", 3010, "the listening port")
	PrintVersion  = flag.Bool("version", false, "print version and exit")
	PrintHelpFlag = flag.Bool("help", false, "print help and exit")
)

// Process-wide configuration, overridable via the ini config file.
var (
	SessionSecret = "mediabox-session-secret"
	DataDir       = "data"
	UploadDir     = filepath.Join("data", "uploads")
	PublicDir     = "public"
	CORSOrigin    = "http://localhost:3010"
)

const (
	SessionName   = "session"
	SessionMaxAge = 24 * 60 * 60 // 24h, sliding per cookie refresh

	DefaultPageSize = 20
	RecentFileCount = 5
)

func PrintHelp() {
	fmt.Println("Mediabox " + Version + " - self-hosted media upload service")
	fmt.Println("Usage: mediabox [--port <port>] [--version] [--help]")
	fmt.Println("Configuration is read from ~/.config/mediabox/config.ini")
}
