package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	DB       DBConfig
	Bot      BotConfig
	Storage  StorageConfig
	Download DownloadConfig
	Log      LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// BotConfig holds chat-facing settings: the admin allow-list and the
// company identity printed on documents and contact cards.
type BotConfig struct {
	AdminIDs     []int64 `mapstructure:"admin_ids"`
	CompanyName  string  `mapstructure:"company_name"`
	ContactPhone string  `mapstructure:"contact_phone"`
}

// IsAdmin reports whether the chat user id is on the static allow-list.
func (b *BotConfig) IsAdmin(chatID int64) bool {
	for _, id := range b.AdminIDs {
		if id == chatID {
			return true
		}
	}
	return false
}

// StorageConfig holds generated-document storage settings.
// Provider is "local" or "s3".
type StorageConfig struct {
	Provider      string `mapstructure:"provider"`
	Dir           string `mapstructure:"dir"`
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// DownloadConfig holds signed download link settings for the local provider.
type DownloadConfig struct {
	Secret  string        `mapstructure:"secret"`
	Expiry  time.Duration `mapstructure:"expiry"`
	BaseURL string        `mapstructure:"base_url"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the SALESDESK_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SALESDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "salesdesk")
	v.SetDefault("db.password", "salesdesk_secret")
	v.SetDefault("db.name", "salesdesk_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Bot defaults
	v.SetDefault("bot.admin_ids", "")
	v.SetDefault("bot.company_name", "AVTOLIDER")
	v.SetDefault("bot.contact_phone", "")

	// Storage defaults
	v.SetDefault("storage.provider", "local")
	v.SetDefault("storage.dir", "documents")
	v.SetDefault("storage.region", "us-east-1")
	v.SetDefault("storage.bucket", "salesdesk-documents")
	v.SetDefault("storage.endpoint", "")
	v.SetDefault("storage.presign_expiry", 3600)

	// Download defaults
	v.SetDefault("download.secret", "change-me-in-production")
	v.SetDefault("download.expiry", "1h")
	v.SetDefault("download.base_url", "http://localhost:8080")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":            "SALESDESK_SERVER_PORT",
		"server.read_timeout":    "SALESDESK_SERVER_READ_TIMEOUT",
		"server.write_timeout":   "SALESDESK_SERVER_WRITE_TIMEOUT",
		"server.environment":     "SALESDESK_SERVER_ENVIRONMENT",
		"db.host":                "SALESDESK_DB_HOST",
		"db.port":                "SALESDESK_DB_PORT",
		"db.user":                "SALESDESK_DB_USER",
		"db.password":            "SALESDESK_DB_PASSWORD",
		"db.name":                "SALESDESK_DB_NAME",
		"db.sslmode":             "SALESDESK_DB_SSLMODE",
		"db.max_open":            "SALESDESK_DB_MAX_OPEN",
		"db.max_idle":            "SALESDESK_DB_MAX_IDLE",
		"bot.admin_ids":          "SALESDESK_BOT_ADMIN_IDS",
		"bot.company_name":       "SALESDESK_BOT_COMPANY_NAME",
		"bot.contact_phone":      "SALESDESK_BOT_CONTACT_PHONE",
		"storage.provider":       "SALESDESK_STORAGE_PROVIDER",
		"storage.dir":            "SALESDESK_STORAGE_DIR",
		"storage.region":         "SALESDESK_STORAGE_REGION",
		"storage.bucket":         "SALESDESK_STORAGE_BUCKET",
		"storage.endpoint":       "SALESDESK_STORAGE_ENDPOINT",
		"storage.access_key":     "SALESDESK_STORAGE_ACCESS_KEY",
		"storage.secret_key":     "SALESDESK_STORAGE_SECRET_KEY",
		"storage.presign_expiry": "SALESDESK_STORAGE_PRESIGN_EXPIRY",
		"download.secret":        "SALESDESK_DOWNLOAD_SECRET",
		"download.expiry":        "SALESDESK_DOWNLOAD_EXPIRY",
		"download.base_url":      "SALESDESK_DOWNLOAD_BASE_URL",
		"log.level":              "SALESDESK_LOG_LEVEL",
		"log.format":             "SALESDESK_LOG_FORMAT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if SALESDESK_SERVER_PORT
	// is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("SALESDESK_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}

	adminIDs, err := parseAdminIDs(v.GetString("bot.admin_ids"))
	if err != nil {
		return nil, fmt.Errorf("parsing bot.admin_ids: %w", err)
	}
	cfg.Bot = BotConfig{
		AdminIDs:     adminIDs,
		CompanyName:  v.GetString("bot.company_name"),
		ContactPhone: v.GetString("bot.contact_phone"),
	}

	cfg.Storage = StorageConfig{
		Provider:      v.GetString("storage.provider"),
		Dir:           v.GetString("storage.dir"),
		Region:        v.GetString("storage.region"),
		Bucket:        v.GetString("storage.bucket"),
		Endpoint:      v.GetString("storage.endpoint"),
		AccessKey:     v.GetString("storage.access_key"),
		SecretKey:     v.GetString("storage.secret_key"),
		PresignExpiry: v.GetInt64("storage.presign_expiry"),
	}
	cfg.Download = DownloadConfig{
		Secret:  v.GetString("download.secret"),
		Expiry:  v.GetDuration("download.expiry"),
		BaseURL: v.GetString("download.base_url"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	return cfg, nil
}

// parseAdminIDs parses a comma-separated list of chat user ids.
func parseAdminIDs(raw string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid admin id %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
