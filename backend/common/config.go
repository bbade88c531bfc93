package common

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var Version = "v0.1.0"

var (
	Port         = flag.Int("port", 8000, "the listening port")
	PrintVersion = flag.Bool("version", false, "print version and exit")
	LogDir       = flag.String("log-dir", "", "specify the log directory")
)

var (
	// DatabaseDSN selects PostgreSQL when set; otherwise SQLitePath is used.
	DatabaseDSN string
	SQLitePath  = "data/bookgram.db"
	// UploadPath is the content store root, one file per {topic}.{format}.
	UploadPath     = "uploads"
	AllowedOrigins = []string{"*"}
)

// InitConf loads settings from the environment, with optional .env support.
func InitConf() {
	_ = godotenv.Load()

	DatabaseDSN = os.Getenv("DATABASE_DSN")
	if path := os.Getenv("SQLITE_PATH"); path != "" {
		SQLitePath = path
	}
	if path := os.Getenv("UPLOAD_PATH"); path != "" {
		UploadPath = path
	}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		parts := strings.Split(origins, ",")
		AllowedOrigins = AllowedOrigins[:0]
		for _, part := range parts {
			if origin := strings.TrimSpace(part); origin != "" {
				AllowedOrigins = append(AllowedOrigins, origin)
			}
		}
	}
	if port := os.Getenv("PORT"); port != "" {
		if value, err := strconv.Atoi(port); err == nil {
			*Port = value
		}
	}
}
