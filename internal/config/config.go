package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/spf13/viper"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
	Redis    *RedisConfig    `mapstructure:"redis"`
	Credits  *CreditsConfig  `mapstructure:"credits"`
	Metrics  *MetricsConfig  `mapstructure:"metrics"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	LogLevel           string   `mapstructure:"log_level"`
	Port               string   `mapstructure:"port"`
	BaseURL            string   `mapstructure:"base_url"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
	JWTSigningKey      string   `mapstructure:"jwt_signing_key"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

func (c *PostgresConfig) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DB, sslMode)
}

type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	Prefix   string        `mapstructure:"prefix"`
	TTL      time.Duration `mapstructure:"ttl"`
}

type CreditsConfig struct {
	DefaultBalance int `mapstructure:"default_balance"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)

	// APP_API_PORT overrides api.port, and so on.
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("api.environment", "development")
	v.SetDefault("api.log_level", "info")
	v.SetDefault("api.port", "8080")
	v.SetDefault("gin.mode", "release")
	v.SetDefault("credits.default_balance", 5000)
	v.SetDefault("redis.prefix", "instruments-rental")
	v.SetDefault("redis.ttl", "10m")

	return v
}

func unmarshal(v *viper.Viper) (*AppConfig, error) {
	conf := &AppConfig{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("conf.Validate -> %w", err)
	}

	return conf, nil
}

func Load(path string) (*AppConfig, error) {
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	return unmarshal(v)
}

// Watch calls onChange with the re-read configuration every time the file
// changes. Invalid edits are passed to onErr and otherwise ignored.
func Watch(path string, onChange func(*AppConfig), onErr func(error)) error {
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	v.OnConfigChange(func(_ fsnotify.Event) {
		conf, err := unmarshal(v)
		if err != nil {
			onErr(err)
			return
		}
		onChange(conf)
	})
	v.WatchConfig()

	return nil
}

func (c *AppConfig) Validate() error {
	if c.API == nil || c.Gin == nil || c.Credits == nil {
		return fmt.Errorf("api, gin and credits sections are required")
	}

	if err := validation.ValidateStruct(c.API,
		validation.Field(&c.API.Port, validation.Required),
		validation.Field(&c.API.JWTSigningKey, validation.Required, validation.Length(16, 0)),
		validation.Field(&c.API.LogLevel, validation.In("debug", "info", "warn", "error")),
	); err != nil {
		return fmt.Errorf("api: %w", err)
	}

	if err := validation.ValidateStruct(c.Gin,
		validation.Field(&c.Gin.Mode, validation.In("debug", "release", "test")),
	); err != nil {
		return fmt.Errorf("gin: %w", err)
	}

	return validation.ValidateStruct(c.Credits,
		validation.Field(&c.Credits.DefaultBalance, validation.Min(0)),
	)
}
