package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	SMTP     SMTPConfig
	Redis    RedisConfig
	Links    LinksConfig
}

type ServerConfig struct {
	Env       string // "development" or "production"
	Port      string
	APIPrefix string
}

type DatabaseConfig struct {
	ConnectionURI string
	Name          string
}

type JWTConfig struct {
	SecretKey        string
	SecretKeyRefresh string
}

type SMTPConfig struct {
	Server   string
	Port     int
	Username string
	Password string
	From     string
}

type RedisConfig struct {
	URL string // empty disables background email delivery
}

// LinksConfig holds the public URLs embedded in outbound emails.
type LinksConfig struct {
	ResetURLBase  string
	VerifyURLBase string
}

func Load() (*Config, error) {
	viper.AutomaticEnv()
	if p := os.Getenv("CONFIG_FILE"); p != "" {
		viper.SetConfigFile(p)
		_ = viper.ReadInConfig()
	}

	cfg := &Config{
		Server: ServerConfig{
			Env:       getEnvOrDefault("ENV", "development"),
			Port:      getEnvOrDefault("PORT", "8080"),
			APIPrefix: getEnvOrDefault("API_STR", "/api"),
		},
		Database: DatabaseConfig{
			ConnectionURI: getEnvOrDefault("DB_CONNECTION", "mongodb://localhost:27017"),
			Name:          getEnvOrDefault("DB_NAME", "jokertask"),
		},
		JWT: JWTConfig{
			SecretKey:        os.Getenv("SECRET_KEY"),
			SecretKeyRefresh: os.Getenv("SECRET_KEY_REFRESH"),
		},
		SMTP: SMTPConfig{
			Server:   getEnvOrDefault("SMTP_SERVER", "smtp.gmail.com"),
			Port:     viper.GetInt("SMTP_PORT"),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     os.Getenv("SMTP_FROM"),
		},
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
		Links: LinksConfig{
			ResetURLBase:  getEnvOrDefault("RESET_URL_BASE", "http://localhost:8080/reset-password"),
			VerifyURLBase: getEnvOrDefault("VERIFY_URL_BASE", "http://localhost:8080/verify-user"),
		},
	}
	if cfg.SMTP.Port == 0 {
		cfg.SMTP.Port = 587
	}
	if cfg.JWT.SecretKey == "" || cfg.JWT.SecretKeyRefresh == "" {
		return nil, fmt.Errorf("SECRET_KEY and SECRET_KEY_REFRESH are required")
	}
	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env != "production"
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
