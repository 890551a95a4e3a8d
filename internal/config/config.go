package config

import (
	"os"
	"strconv"
	"strings"

	"econdash/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Data     DataConfig
	Database DatabaseConfig
	Compare  CompareConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// DataConfig holds the paths of the files the dashboard reads at startup
type DataConfig struct {
	CSVFile   string
	ModelFile string
	ImagesDir string
}

// DatabaseConfig holds the view log connection settings.
// An empty URL selects an in-memory sqlite database.
type DatabaseConfig struct {
	URL    string
	Driver string
}

// CompareConfig holds country comparison settings
type CompareConfig struct {
	Seed int64
}

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	DefaultCSVFile   = "streamlit/global_economy.csv"
	DefaultModelFile = "streamlit/gdp_prediction_model.json"
	DefaultImagesDir = "streamlit/images"
)

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server:   *loadServerConfig(),
		Data:     *loadDataConfig(),
		Database: *loadDatabaseConfig(),
		Compare:  *loadCompareConfig(),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

// Default returns the configuration used when no environment is set
func Default() *Config {
	return &Config{
		Server:   ServerConfig{Port: "8080", GinMode: "debug"},
		Data:     DataConfig{CSVFile: DefaultCSVFile, ModelFile: DefaultModelFile, ImagesDir: DefaultImagesDir},
		Database: DatabaseConfig{Driver: DriverSQLite},
		Compare:  CompareConfig{Seed: 42},
	}
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:    getEnvOrDefault("PORT", "8080"),
		GinMode: getEnvOrDefault("GIN_MODE", "debug"),
	}
}

func loadDataConfig() *DataConfig {
	return &DataConfig{
		CSVFile:   getEnvOrDefault("ECONOMY_DATA_FILE", DefaultCSVFile),
		ModelFile: getEnvOrDefault("MODEL_FILE", DefaultModelFile),
		ImagesDir: getEnvOrDefault("IMAGES_DIR", DefaultImagesDir),
	}
}

func loadDatabaseConfig() *DatabaseConfig {
	url := getEnvOrDefault("DATABASE_URL", "")
	return &DatabaseConfig{
		URL:    url,
		Driver: getEnvOrDefault("DB_DRIVER", InferDriver(url)),
	}
}

func loadCompareConfig() *CompareConfig {
	return &CompareConfig{
		Seed: getEnvInt64OrDefault("COMPARE_SEED", 42),
	}
}

// InferDriver picks the sql driver name from a connection URL
func InferDriver(url string) string {
	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		return DriverPostgres
	}
	return DriverSQLite
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if config.Data.CSVFile == "" || config.Data.ModelFile == "" {
		return errors.ConfigInvalid("data and model file paths are required")
	}
	switch config.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return errors.ConfigInvalid("unsupported DB_DRIVER " + config.Database.Driver)
	}
	if config.Database.Driver == DriverPostgres && config.Database.URL == "" {
		return errors.ConfigInvalid("DATABASE_URL is required for postgres")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
