package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultLogLevel  = "info"
	DefaultPrecision = 6
	DefaultSpeedMPS  = 13.89 // 50 km/h
)

type Config struct {
	LogLevel  string
	Precision int
	SpeedMPS  float64
}

// Load .env into the process environment if present. Reports whether a file was read.
func LoadDotEnv(filenames ...string) bool {
	return godotenv.Load(filenames...) == nil
}

// Return the variable's value, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Read GEOCALC_* variables. All problems are reported together.
func Load() (Config, error) {
	var errs []string

	cfg := Config{
		LogLevel:  Get("GEOCALC_LOG_LEVEL", DefaultLogLevel),
		Precision: DefaultPrecision,
		SpeedMPS:  DefaultSpeedMPS,
	}

	if v := Get("GEOCALC_PRECISION", ""); v != "" {
		n, err := strconv.Atoi(v)
		switch {
		case err != nil:
			errs = append(errs, fmt.Sprintf("GEOCALC_PRECISION must be an integer, got %q", v))
		case n < 0 || n > 15:
			errs = append(errs, fmt.Sprintf("GEOCALC_PRECISION must be 0-15, got %d", n))
		default:
			cfg.Precision = n
		}
	}

	if v := Get("GEOCALC_SPEED_MPS", ""); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		switch {
		case err != nil:
			errs = append(errs, fmt.Sprintf("GEOCALC_SPEED_MPS must be a number, got %q", v))
		case !(f > 0):
			errs = append(errs, fmt.Sprintf("GEOCALC_SPEED_MPS must be positive, got %v", f))
		default:
			cfg.SpeedMPS = f
		}
	}

	if len(errs) > 0 {
		return Config{}, fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return cfg, nil
}
