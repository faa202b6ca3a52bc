package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAddr            = ":8080"
	defaultBaseURL         = "http://localhost:8080"
	defaultFragmentTTL     = 10 * time.Minute
	developmentSessionSalt = "mad-hatter-development-session-key"
)

// Provider exposes the application settings to the rest of the program.
type Provider interface {
	GetAddr() string
	GetAppBaseURL() string
	GetSessionSecret() string
	GetContentFile() string
	GetContentWatch() bool
	GetFragmentCacheTTL() time.Duration
	GetLogFormat() string
	GetLogLevel() string
	GetTemplatesMode() string
}

// Config holds all configuration for the application.
type Config struct {
	Addr             string
	AppBaseURL       string
	SessionSecret    string
	ContentFile      string
	ContentWatch     bool
	FragmentCacheTTL time.Duration
	LogFormat        string
	LogLevel         string
	TemplatesMode    string
}

// New loads configuration from a .env file, if present, and the environment.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment without touching .env.
func FromEnv() *Config {
	cfg := &Config{
		Addr:             getenv("APP_ADDR", defaultAddr),
		AppBaseURL:       getenv("APP_BASE_URL", defaultBaseURL),
		SessionSecret:    os.Getenv("SESSION_SECRET"),
		ContentFile:      os.Getenv("CONTENT_FILE"),
		ContentWatch:     getbool("CONTENT_WATCH", false),
		FragmentCacheTTL: getduration("FRAGMENT_CACHE_TTL", defaultFragmentTTL),
		LogFormat:        getenv("LOG_FORMAT", "text"),
		LogLevel:         getenv("LOG_LEVEL", "info"),
		TemplatesMode:    getenv("APP_TEMPLATES", "embed"),
	}

	if cfg.SessionSecret == "" {
		log.Println("SESSION_SECRET is not set, using a development key")
		cfg.SessionSecret = developmentSessionSalt
	}
	return cfg
}

func (c *Config) GetAddr() string                    { return c.Addr }
func (c *Config) GetAppBaseURL() string              { return c.AppBaseURL }
func (c *Config) GetSessionSecret() string           { return c.SessionSecret }
func (c *Config) GetContentFile() string             { return c.ContentFile }
func (c *Config) GetContentWatch() bool              { return c.ContentWatch }
func (c *Config) GetFragmentCacheTTL() time.Duration { return c.FragmentCacheTTL }
func (c *Config) GetLogFormat() string               { return c.LogFormat }
func (c *Config) GetLogLevel() string                { return c.LogLevel }
func (c *Config) GetTemplatesMode() string           { return c.TemplatesMode }

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getbool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getduration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
