package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"milktrack-be/pkg/importer"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Import   ImportConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	ImportEventTopic   string
}

type DatabaseConfig struct {
	Connection string
}

// ImportConfig exposes the pipeline's bounds as configuration. Defaults
// match the shipped behavior; tests and staging can push the boundaries
// without a rebuild.
type ImportConfig struct {
	MaxAmountML          float64
	MaxDurationMin       float64
	MaxWorkbookRows      int
	DuplicateWindowMin   int
	DuplicateToleranceML float64
	PendingTTLMin        int
}

func (c ImportConfig) Limits() importer.Limits {
	limits := importer.DefaultLimits()
	limits.MaxAmountML = c.MaxAmountML
	limits.MaxDurationMin = c.MaxDurationMin
	limits.MaxWorkbookRows = c.MaxWorkbookRows
	limits.DuplicateWindow = time.Duration(c.DuplicateWindowMin) * time.Minute
	limits.DuplicateToleranceML = c.DuplicateToleranceML
	return limits
}

func (c ImportConfig) PendingTTL() time.Duration {
	return time.Duration(c.PendingTTLMin) * time.Minute
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			ImportEventTopic:   getEnv("IMPORT_EVENT_TOPIC_NAME", "IMPORT_COMPLETED"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Import: ImportConfig{
			MaxAmountML:          getEnvAsFloat("IMPORT_MAX_AMOUNT_ML", 500),
			MaxDurationMin:       getEnvAsFloat("IMPORT_MAX_DURATION_MIN", 600),
			MaxWorkbookRows:      getEnvAsInt("IMPORT_MAX_WORKBOOK_ROWS", 50000),
			DuplicateWindowMin:   getEnvAsInt("IMPORT_DUPLICATE_WINDOW_MIN", 10),
			DuplicateToleranceML: getEnvAsFloat("IMPORT_DUPLICATE_TOLERANCE_ML", 5),
			PendingTTLMin:        getEnvAsInt("IMPORT_PENDING_TTL_MIN", 30),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
