package configs

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type RESTconfig struct {
	PORT          string
	AllowedOrigin string
}

type CatalogAPIConfig struct {
	URL    string
	APIKey string
}

type DatabaseConfig struct {
	URL     string
	Enabled bool
}

type NominatimConfig struct {
	URL       string
	UserAgent string
}

type RedisConfig struct {
	Addr            string
	Password        string
	Enabled         bool
	CacheTTLSeconds int
}

type StdoutLogConfig struct {
	Level string
}

type FluentBitConfig struct {
	Host    string
	Port    int
	Enabled bool
	Level   string
}

// AppConfig holds the whole application configuration.
type AppConfig struct {
	Rest         RESTconfig
	CatalogAPI   CatalogAPIConfig
	Database     DatabaseConfig
	Nominatim    NominatimConfig
	Redis        RedisConfig
	FluentBit    FluentBitConfig
	AppName      string
	StdoutLogger StdoutLogConfig
}

// LoadConfig reads configuration from environment variables, loading a
// .env file first when one exists.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		log.Printf("Info: Could not load .env file (path: %v): %v.\n", envPath, err)
	}

	cfg := &AppConfig{}

	cfg.AppName = getEnvAsString("APP_NAME", "listing-catalog-service")

	cfg.Rest.PORT = getEnvAsString("PORT", "8080")
	cfg.Rest.AllowedOrigin = getEnvAsString("CORS_ALLOWED_ORIGIN", "http://localhost:5173")

	cfg.CatalogAPI.URL = os.Getenv("CATALOG_API_URL")
	if cfg.CatalogAPI.URL == "" {
		return nil, fmt.Errorf("CATALOG_API_URL environment variable is required")
	}
	cfg.CatalogAPI.APIKey = os.Getenv("CATALOG_API_KEY")

	cfg.Database.URL = os.Getenv("DATABASE_URL")
	cfg.Database.Enabled = cfg.Database.URL != ""

	cfg.Nominatim.URL = getEnvAsString("NOMINATIM_URL", "https://nominatim.openstreetmap.org")
	cfg.Nominatim.UserAgent = getEnvAsString("NOMINATIM_USER_AGENT", cfg.AppName+"/1.0")

	cfg.Redis.Addr = os.Getenv("REDIS_ADDR")
	cfg.Redis.Enabled = cfg.Redis.Addr != ""
	if cfg.Redis.Enabled {
		cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
		cfg.Redis.CacheTTLSeconds = getEnvAsInt("CACHE_TTL_SECONDS", 300)
	}

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}

		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}

	cfg.StdoutLogger.Level = getEnvAsString("STDOUT_LOG_LEVEL", "debug")

	return cfg, nil
}

func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}
