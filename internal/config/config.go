package config

import (
	"os"
	"time"
)

type EmailConfig struct {
	APIKey      string
	FromAddress string
	FromName    string
}

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	JWTIssuer   string

	// TokenExpiry bounds issued tokens; zero means tokens never expire.
	TokenExpiry time.Duration

	// AllowedEmailDomain restricts registration to one institutional domain
	// (e.g. "cumminscollege.edu.in"); empty disables the check.
	AllowedEmailDomain string

	CORSOrigins string
	Email       EmailConfig
}

func Load() *Config {
	cfg := &Config{
		Port:               getEnv("PORT", "3000"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		JWTIssuer:          getEnv("JWT_ISSUER", "campus-events"),
		TokenExpiry:        7 * 24 * time.Hour,
		AllowedEmailDomain: getEnv("ALLOWED_EMAIL_DOMAIN", "cumminscollege.edu.in"),
		CORSOrigins:        getEnv("CORS_ORIGINS", "*"),
	}

	if raw := os.Getenv("TOKEN_EXPIRY"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			cfg.TokenExpiry = d
		}
	}

	cfg.Email.APIKey = os.Getenv("RESEND_API_KEY")
	cfg.Email.FromAddress = os.Getenv("EMAIL_FROM_ADDRESS")
	cfg.Email.FromName = getEnv("EMAIL_FROM_NAME", "Campus Events")

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
