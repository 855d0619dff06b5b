package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv       string
	Port         string
	APIBaseURL   string
	APITimeout   time.Duration
	APIResolve   map[string]string
	OriginURL    string
	SessionDrv   string
	DatabaseURL  string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBSSLMode    string
	MigrationDir string
	RedisURL     string
	RedisAddr    string
	RedisPass    string
	MenuCacheTTL time.Duration
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPass     string
	SMTPFrom     string
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	AppConfig = FromEnv()
}

// FromEnv reads the configuration from the process environment.
func FromEnv() *Config {
	smtpPort, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		smtpPort = 587
	}

	return &Config{
		AppEnv:       getEnv("APP_ENV", "development"),
		Port:         getEnv("APP_PORT", getEnv("PORT", "8082")),
		APIBaseURL:   strings.TrimRight(getEnv("API_BASE_URL", "https://pepe.codedoc.cloud"), "/"),
		APITimeout:   getDuration("API_TIMEOUT", 30*time.Second),
		APIResolve:   parseResolve(os.Getenv("API_RESOLVE")),
		OriginURL:    os.Getenv("ORIGIN_URL"),
		SessionDrv:   getEnv("SESSION_DRIVER", "memory"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBUser:       getEnv("DB_USER", "postgres"),
		DBPassword:   getEnv("DB_PASSWORD", "postgres"),
		DBName:       getEnv("DB_NAME", "pepe_order"),
		DBSSLMode:    getEnv("DB_SSLMODE", "disable"),
		MigrationDir: getEnv("MIGRATION_DIR", "database/migration"),
		RedisURL:     os.Getenv("REDIS_URL"),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:    os.Getenv("REDIS_PASSWORD"),
		MenuCacheTTL: getDuration("MENU_CACHE_TTL", 5*time.Minute),
		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     smtpPort,
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPass:     os.Getenv("SMTP_PASS"),
		SMTPFrom:     os.Getenv("SMTP_FROM"),
	}
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

// parseResolve reads "host=ip,host2=ip2" pairs used to pin API hosts to fixed
// addresses.
func parseResolve(raw string) map[string]string {
	resolve := map[string]string{}
	for _, pair := range strings.Split(raw, ",") {
		host, ip, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || host == "" || ip == "" {
			continue
		}
		resolve[strings.TrimSpace(host)] = strings.TrimSpace(ip)
	}
	return resolve
}
