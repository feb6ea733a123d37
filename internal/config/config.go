package config

import (
	"github.com/zeromicro/go-zero/mcp"
	"github.com/zeromicro/go-zero/rest"
)

// Config holds the server configuration.
type Config struct {
	mcp.McpConf

	UI         UIConfig         `json:",optional"`
	API        APIConfig        `json:",optional"`
	Gallery    GalleryConfig    `json:",optional"`
	Translator TranslatorConfig `json:",optional"`
	Database   DatabaseConfig   `json:",optional"`
	Share      ShareConfig      `json:",optional"`
	SMTP       SMTPConfig       `json:",optional"`
}

// UIConfig holds the Web UI server settings.
type UIConfig struct {
	rest.RestConf
}

// APIConfig holds the REST API server settings.
type APIConfig struct {
	rest.RestConf
}

// GalleryConfig holds gallery presentation settings.
type GalleryConfig struct {
	DefaultLanguage string `json:",default=en"`
}

// TranslatorConfig holds the machine translation endpoint settings.
type TranslatorConfig struct {
	Endpoint  string `json:",default=https://translate.example.com/translate"`
	RateLimit int    `json:",default=10"` // requests per second
}

// DatabaseConfig holds database settings.
type DatabaseConfig struct {
	Path string `json:",default=./.data/mailgallery.db"`
}

// ShareConfig holds share delivery settings.
type ShareConfig struct {
	Workers      int    `json:",default=2"`
	MaxAttempts  int    `json:",default=3"`
	RetryBackoff string `json:",default=1m"`
	MaxBackoff   string `json:",default=1h"`
	RateLimit    int    `json:",default=30"` // emails per minute
}

// SMTPConfig holds SMTP email delivery settings.
type SMTPConfig struct {
	Host      string `json:",default=smtp.gmail.com"`
	Port      string `json:",default=587"`
	Username  string `json:",optional"`
	Password  string `json:",optional"`
	FromEmail string `json:",optional"`
	FromName  string `json:",optional"`
}
