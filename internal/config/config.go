package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	Port           string
	DBPath         string
	JWTSecret      string
	AccessTokenTTL time.Duration
	AllowedOrigins []string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	ReportFrom   string
	ReportTo     string
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		Port:           getEnvOrDefault("PORT", "8080"),
		DBPath:         getEnvOrDefault("DB_PATH", "pos.db"),
		JWTSecret:      getEnvOrDefault("JWT_SECRET", "pos-demo-secret"),
		AccessTokenTTL: getDurationEnv("ACCESS_TOKEN_TTL", 12, time.Hour),
		AllowedOrigins: getListEnv("ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		SMTPHost:       getEnvOrDefault("SMTP_HOST", ""),
		SMTPPort:       getIntEnv("SMTP_PORT", 465),
		SMTPUser:       getEnvOrDefault("SMTP_USER", ""),
		SMTPPassword:   getEnvOrDefault("SMTP_PASSWORD", ""),
		ReportFrom:     getEnvOrDefault("REPORT_FROM", ""),
		ReportTo:       getEnvOrDefault("REPORT_TO", ""),
	}
}

// MailEnabled reports whether the daily closing summary should be emailed.
func (c Config) MailEnabled() bool {
	return c.SMTPHost != "" && c.ReportTo != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}

func getListEnv(key string, defaultValue []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
