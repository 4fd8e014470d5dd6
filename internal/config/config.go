package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT
	JWTSecret        string
	JWTAccessExpiry  time.Duration
	JWTRefreshExpiry time.Duration

	// Google People API (contact import)
	PeopleAPIURL   string
	PeoplePageSize string

	// Twilio (invite SMS)
	TwilioSID        string
	TwilioAuthToken  string
	TwilioFromNumber string
	TwilioAPIURL     string

	// Invite links embedded in SMS messages
	InviteLinkBase string

	// Uploads (event cover images)
	UploadDir string

	// Server
	Port        string
	CORSOrigins string
}

func Load() *Config {
	// Missing .env is fine; env vars may come from the environment directly.
	_ = godotenv.Load()

	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "gatherly_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret:        getEnv("JWT_SECRET", ""),
		JWTAccessExpiry:  parseDuration(getEnv("JWT_ACCESS_EXPIRY", "15m")),
		JWTRefreshExpiry: parseDuration(getEnv("JWT_REFRESH_EXPIRY", "168h")),

		PeopleAPIURL:   getEnv("PEOPLE_API_URL", "https://people.googleapis.com/v1/people/me/connections"),
		PeoplePageSize: getEnv("PEOPLE_PAGE_SIZE", "1000"),

		TwilioSID:        getEnv("TWILIO_SID", ""),
		TwilioAuthToken:  getEnv("TWILIO_AUTH_TOKEN", ""),
		TwilioFromNumber: getEnv("TWILIO_FROM_NUMBER", ""),
		TwilioAPIURL:     getEnv("TWILIO_API_URL", "https://api.twilio.com/2010-04-01"),

		InviteLinkBase: getEnv("INVITE_LINK_BASE", "http://localhost:3000/invited-event"),

		UploadDir: getEnv("UPLOAD_DIR", "uploads"),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 15 * time.Minute
	}
	return d
}
