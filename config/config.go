package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

const defaultSessionSecret = "dev-secret-key-change-in-production"

type Config struct {
	Server     ServerConfig
	Session    SessionConfig
	Database   DatabaseConfig
	Uploads    UploadConfig
	Mail       MailConfig
	Cloudinary CloudinaryConfig
	AI         AIConfig
	RateLimit  RateLimitConfig
}

type ServerConfig struct {
	Port           string        `env:"PORT" envDefault:"5000"`
	Env            string        `env:"APP_ENV" envDefault:"development"`
	ReadTimeout    time.Duration `env:"READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout   time.Duration `env:"WRITE_TIMEOUT" envDefault:"120s"`
	MaxUploadBytes int64         `env:"MAX_UPLOAD_BYTES" envDefault:"52428800"` // 50 MiB
}

// SessionConfig drives the signed session cookie.
type SessionConfig struct {
	Secret     string        `env:"SESSION_SECRET"`
	TTL        time.Duration `env:"SESSION_TTL" envDefault:"168h"`
	CookieName string        `env:"SESSION_COOKIE" envDefault:"session"`
	Secure     bool          `env:"COOKIE_SECURE" envDefault:"false"`
	Issuer     string        `env:"SESSION_ISSUER" envDefault:"schoolsite"`
}

type DatabaseConfig struct {
	URL             string        `env:"DATABASE_URL" envDefault:"sqlite:///gachororo_school.db"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"20"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"300s"`
}

type UploadConfig struct {
	Root string `env:"UPLOAD_FOLDER" envDefault:"uploads"`
}

// MailConfig is the account the contact form sends through. Empty credentials disable mail.
type MailConfig struct {
	Username  string `env:"MAIL_USERNAME"`
	Password  string `env:"MAIL_PASSWORD"`
	Server    string `env:"MAIL_SERVER" envDefault:"smtp.gmail.com"`
	Port      int    `env:"MAIL_PORT" envDefault:"587"`
	Recipient string `env:"MAIL_RECIPIENT"`
}

func (m MailConfig) Enabled() bool { return m.Username != "" && m.Password != "" }

type CloudinaryConfig struct {
	CloudName string `env:"CLOUDINARY_CLOUD_NAME"`
	APIKey    string `env:"CLOUDINARY_API_KEY"`
	APISecret string `env:"CLOUDINARY_API_SECRET"`
	Folder    string `env:"CLOUDINARY_FOLDER" envDefault:"school"`
}

func (c CloudinaryConfig) Enabled() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

// AIConfig points the tutor at an OpenAI-compatible endpoint. The API key itself lives in site settings.
type AIConfig struct {
	BaseURL    string `env:"AI_BASE_URL"`
	Model      string `env:"AI_MODEL" envDefault:"gpt-4o-mini"`
	ImageModel string `env:"AI_IMAGE_MODEL" envDefault:"dall-e-3"`
}

type RateLimitConfig struct {
	LoginPerMinute int `env:"LOGIN_RATE_LIMIT" envDefault:"10"`
	TutorPerMinute int `env:"TUTOR_RATE_LIMIT" envDefault:"20"`
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read .env: %w", err)
	}
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Session.Secret == "" {
		cfg.Session.Secret = os.Getenv("SECRET_KEY")
	}
	if cfg.Session.Secret == "" {
		cfg.Session.Secret = defaultSessionSecret
	}
	if cfg.Mail.Recipient == "" {
		cfg.Mail.Recipient = cfg.Mail.Username
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool { return c.Server.Env == "production" }
