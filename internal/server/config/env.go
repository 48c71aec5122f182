package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/studiosite/internal/flagx"
	"github.com/joho/godotenv"
)

// loadDotEnv is a seam for tests.
var loadDotEnv = godotenv.Load

// parseEnv overlays settings from environment variables. A dotenv file is
// loaded first: the one named by -env, or ./.env when present. Variables
// already set in the process environment take precedence over the file.
//
// Recognized variables:
//
//	HTTP_ADDRESS, GRPC_ADDRESS, DATABASE_URL,
//	DB_CONNECT_TIMEOUT, DB_CONN_MAX_IDLE_TIME, DB_MAX_OPEN_CONNS,
//	ADMIN_EMAIL, ADMIN_PASSWORD, SESSION_SECRET, SESSION_TTL,
//	APP_ENV, NEXT_PUBLIC_SITE_URL (or SITE_URL), STATIC_DIR, MAX_PAGE_LIMIT,
//	OPENAI_API_KEY, OPENAI_BASE_URL, CHAT_MODEL, CHAT_TIMEOUT,
//	S3_ROOT_USER, S3_ROOT_PASSWORD, S3_BUCKET, S3_REGION,
//	S3_BASE_ENDPOINT, S3_PUBLIC_URL
//
// Malformed numeric or duration values panic.
func parseEnv(config *Config) {
	if path := flagx.EnvFileFlags(); path != "" {
		if err := loadDotEnv(path); err != nil {
			panic(err)
		}
	} else if err := loadDotEnv(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	envString(&config.EndpointAddrHTTP, "HTTP_ADDRESS")
	envString(&config.EndpointAddrGRPC, "GRPC_ADDRESS")
	envString(&config.DatabaseDSN, "DATABASE_URL")
	envDuration(&config.DBConnectTimeout, "DB_CONNECT_TIMEOUT")
	envDuration(&config.DBConnMaxIdleTime, "DB_CONN_MAX_IDLE_TIME")
	envInt(&config.DBMaxOpenConns, "DB_MAX_OPEN_CONNS")
	envString(&config.AdminEmail, "ADMIN_EMAIL")
	envString(&config.AdminPassword, "ADMIN_PASSWORD")
	envString(&config.SecretKey, "SESSION_SECRET")
	envDuration(&config.SessionTTL, "SESSION_TTL")
	if v, ok := os.LookupEnv("APP_ENV"); ok {
		config.Production = strings.EqualFold(v, "production")
	}
	envString(&config.SiteURL, "SITE_URL", "NEXT_PUBLIC_SITE_URL")
	envString(&config.StaticDir, "STATIC_DIR")
	envInt(&config.MaxPageLimit, "MAX_PAGE_LIMIT")
	envString(&config.OpenAIAPIKey, "OPENAI_API_KEY")
	envString(&config.OpenAIBaseURL, "OPENAI_BASE_URL")
	envString(&config.ChatModel, "CHAT_MODEL")
	envDuration(&config.ChatTimeout, "CHAT_TIMEOUT")
	envString(&config.S3RootUser, "S3_ROOT_USER")
	envString(&config.S3RootPassword, "S3_ROOT_PASSWORD")
	envString(&config.S3Bucket, "S3_BUCKET")
	envString(&config.S3Region, "S3_REGION")
	envString(&config.S3BaseEndpoint, "S3_BASE_ENDPOINT")
	envString(&config.S3PublicURL, "S3_PUBLIC_URL")
}

// envString assigns the value of the last set variable among keys.
func envString(dst *string, keys ...string) {
	for _, k := range keys {
		if v, ok := os.LookupEnv(k); ok && v != "" {
			*dst = v
		}
	}
}

func envInt(dst *int, key string) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		panic(err)
	}
	*dst = n
}

func envDuration(dst *time.Duration, key string) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(err)
	}
	*dst = d
}
