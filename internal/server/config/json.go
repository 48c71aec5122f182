package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/studiosite/internal/flagx"
	"github.com/dmitrijs2005/studiosite/internal/timex"
)

// JsonConfig is the on-disk shape of the optional JSON config file.
// Durations accept both "30s" strings and integer nanoseconds. Fields left
// out of the file keep their current value.
type JsonConfig struct {
	EndpointAddrHTTP  *string         `json:"endpoint_addr_http"`
	EndpointAddrGRPC  *string         `json:"endpoint_addr_grpc"`
	DatabaseDSN       *string         `json:"database_dsn"`
	DBConnectTimeout  *timex.Duration `json:"db_connect_timeout"`
	DBConnMaxIdleTime *timex.Duration `json:"db_conn_max_idle_time"`
	DBMaxOpenConns    *int            `json:"db_max_open_conns"`
	AdminEmail        *string         `json:"admin_email"`
	AdminPassword     *string         `json:"admin_password"`
	SecretKey         *string         `json:"secret_key"`
	SessionTTL        *timex.Duration `json:"session_ttl"`
	Production        *bool           `json:"production"`
	SiteURL           *string         `json:"site_url"`
	StaticDir         *string         `json:"static_dir"`
	MaxPageLimit      *int            `json:"max_page_limit"`
	OpenAIAPIKey      *string         `json:"openai_api_key"`
	OpenAIBaseURL     *string         `json:"openai_base_url"`
	ChatModel         *string         `json:"chat_model"`
	ChatTimeout       *timex.Duration `json:"chat_timeout"`
	S3RootUser        *string         `json:"s3_root_user"`
	S3RootPassword    *string         `json:"s3_root_password"`
	S3Bucket          *string         `json:"s3_bucket"`
	S3Region          *string         `json:"s3_region"`
	S3BaseEndpoint    *string         `json:"s3_base_endpoint"`
	S3PublicURL       *string         `json:"s3_public_url"`
}

// parseJson loads configuration values from the JSON file named by the -c
// or -config flag. Without the flag nothing is loaded. An unreadable file
// or invalid JSON panics, since the server cannot start with a config the
// operator did not intend.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setDuration(&config.DBConnectTimeout, c.DBConnectTimeout)
	setDuration(&config.DBConnMaxIdleTime, c.DBConnMaxIdleTime)
	setInt(&config.DBMaxOpenConns, c.DBMaxOpenConns)
	setString(&config.AdminEmail, c.AdminEmail)
	setString(&config.AdminPassword, c.AdminPassword)
	setString(&config.SecretKey, c.SecretKey)
	setDuration(&config.SessionTTL, c.SessionTTL)
	if c.Production != nil {
		config.Production = *c.Production
	}
	setString(&config.SiteURL, c.SiteURL)
	setString(&config.StaticDir, c.StaticDir)
	setInt(&config.MaxPageLimit, c.MaxPageLimit)
	setString(&config.OpenAIAPIKey, c.OpenAIAPIKey)
	setString(&config.OpenAIBaseURL, c.OpenAIBaseURL)
	setString(&config.ChatModel, c.ChatModel)
	setDuration(&config.ChatTimeout, c.ChatTimeout)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.S3PublicURL, c.S3PublicURL)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v *timex.Duration) {
	if v != nil {
		*dst = v.Duration
	}
}
