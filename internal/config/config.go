package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

var ErrEmptyCredentials = errors.New(
	"error getting PT_NAVER_CLIENT_ID / PT_NAVER_CLIENT_SECRET: variables not specified or contain an empty string",
)

// Transport kinds for the tool server.
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
)

type Config struct {
	Env         string // Env is the current environment: local, dev, prod.
	StoragePath string // StoragePath is the SQLite database file path.
	Naver       Naver
	Server      Server
	Tg          Telegram
}

type Naver struct {
	ClientID     string        // ClientID is the Naver open API client ID.
	ClientSecret string        // ClientSecret is the Naver open API client secret.
	Timeout      time.Duration // Timeout is the upstream request timeout.
}

type Server struct {
	Transport string // Transport is the tool server transport: stdio or sse.
	Addr      string // Addr is the listen address for the sse transport.
}

type Telegram struct {
	Token  string // Token is a telegram bot token; empty disables notifications.
	ChatID int64  // ChatID is the chat triggered alerts are delivered to.
}

// MustLoad loads the configuration from environment variables and returns a Config struct.
func MustLoad() *Config {
	// Automatically binds environment variables to config keys
	viper.SetEnvPrefix("PT")
	viper.AutomaticEnv()

	// optional args
	viper.SetDefault("ENV", "production")
	viper.SetDefault("STORAGE_PATH", "price_history.db")
	viper.SetDefault("NAVER_TIMEOUT", "10s")
	viper.SetDefault("MCP_TRANSPORT", TransportStdio)
	viper.SetDefault("MCP_ADDR", ":8000")

	if viper.GetString("NAVER_CLIENT_ID") == "" || viper.GetString("NAVER_CLIENT_SECRET") == "" {
		panic(ErrEmptyCredentials)
	}

	return &Config{
		Env:         viper.GetString("ENV"),
		StoragePath: viper.GetString("STORAGE_PATH"),
		Naver: Naver{
			ClientID:     viper.GetString("NAVER_CLIENT_ID"),
			ClientSecret: viper.GetString("NAVER_CLIENT_SECRET"),
			Timeout:      viper.GetDuration("NAVER_TIMEOUT"),
		},
		Server: Server{
			Transport: viper.GetString("MCP_TRANSPORT"),
			Addr:      viper.GetString("MCP_ADDR"),
		},
		Tg: Telegram{
			Token:  viper.GetString("TELEGRAM_TOKEN"),
			ChatID: viper.GetInt64("TELEGRAM_CHAT_ID"),
		},
	}
}

// MaskedAPIInfo returns the credential pair with all but the outer four
// characters visible, safe to log at startup.
func (c *Config) MaskedAPIInfo() map[string]string {
	return map[string]string{
		"naver_client_id":     maskKey(c.Naver.ClientID),
		"naver_client_secret": maskKey(c.Naver.ClientSecret),
		"storage_path":        c.StoragePath,
	}
}

func maskKey(key string) string {
	const minLen = 8
	if len(key) < minLen {
		return "unset"
	}

	return fmt.Sprintf("%s...%s", key[:4], key[len(key)-4:])
}
