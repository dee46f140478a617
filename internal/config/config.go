package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the runtime configuration shared by the binaries.
type Config struct {
	VenuesSource    string
	VenuesPath      string
	DatabaseURL     string
	Port            string
	LogLevel        string
	LogFormat       string
	DistanceFormula string
}

// LoadEnv loads a .env file from the working directory if one exists.
// It reports whether a file was loaded; a missing file is not an error.
func LoadEnv() (bool, error) {
	if err := godotenv.Load(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Get returns the trimmed value of key, or fallback when it is unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// FromEnv reads the configuration from the process environment.
func FromEnv() Config {
	return Config{
		VenuesSource:    strings.ToLower(Get("VENUES_SOURCE", "file")),
		VenuesPath:      Get("VENUES_PATH", "data/bars.json"),
		DatabaseURL:     Get("DATABASE_URL", ""),
		Port:            Get("PORT", "8080"),
		LogLevel:        Get("LOG_LEVEL", "info"),
		LogFormat:       Get("LOG_FORMAT", "console"),
		DistanceFormula: Get("DISTANCE_FORMULA", "haversine"),
	}
}
