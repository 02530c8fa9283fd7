package config

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	defaultPollInterval = 5 * time.Second
)

type DBConfig struct {
	Driver   string
	URL      string
	Host     string
	User     string
	Password string
	Name     string
	Port     string
}

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Region          string
	Endpoint        string
}

// Enabled reports whether enough credentials are present to reach the bucket.
func (c R2Config) Enabled() bool {
	return c.BucketName != "" && c.AccessKeyID != "" && c.SecretAccessKey != "" &&
		(c.AccountID != "" || c.Endpoint != "")
}

type Config struct {
	DB           DBConfig
	Port         string
	Environment  string
	APIURL       string
	PollInterval time.Duration
	CorsConfig   cors.Options
	R2           R2Config
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

var Envs = initConfig()

func initConfig() Config {
	if getEnv("ENV", "development") != "production" {
		envFile := getEnv("ENV_FILE", ".env")
		log.Println("Running in development mode, loading", envFile)
		if err := godotenv.Load(envFile); err != nil {
			log.Println("No", envFile, "file found")
		}
	}
	return Load()
}

// Load reads the configuration from the process environment.
func Load() Config {
	port := getEnv("PORT", "8080")

	return Config{
		DB: DBConfig{
			Driver:   strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
			URL:      getEnv("DB_URL", ""),
			Host:     getEnv("DB_HOST", "localhost"),
			User:     getEnv("DB_USER", ""),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_DATABASE", "quickdrop"),
			Port:     getEnv("DB_PORT", "5432"),
		},
		Port:         port,
		Environment:  getEnv("ENV", "development"),
		APIURL:       strings.TrimRight(getEnv("API_URL", "http://localhost:"+port), "/"),
		PollInterval: getDuration("POLL_INTERVAL", defaultPollInterval),
		CorsConfig:   CorsConfig(),
		R2: R2Config{
			AccountID:       getEnv("R2_ACCOUNT_ID", ""),
			AccessKeyID:     getEnv("R2_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("R2_SECRET_ACCESS_KEY", ""),
			BucketName:      getEnv("R2_BUCKET_NAME", ""),
			Region:          getEnv("R2_REGION", "auto"),
			Endpoint:        getEnv("R2_ENDPOINT", ""),
		},
	}
}

// DSN returns the connection string for the configured driver. DB_URL wins
// when set.
func (c DBConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	switch c.Driver {
	case DriverSQLite:
		return c.Name + ".db"
	default:
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			c.Host, c.User, c.Password, c.Name, c.Port)
	}
}

// Gets the env by key or fallbacks
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Printf("Invalid %s %q, using %s", key, value, fallback)
		return fallback
	}
	return d
}

// The API is public: any origin may read and write logs.
func CorsConfig() cors.Options {
	return cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}
}
