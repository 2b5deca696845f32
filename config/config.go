package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"positionSizer/internal/adapters/logger"
	"positionSizer/internal/adapters/params"
	"positionSizer/internal/domain"
	"positionSizer/internal/ports"
)

// Config holds all application configuration.
type Config struct {
	// HTTP surface
	HTTPAddr        string
	ShareBaseURL    string        // Prefix for shareable links
	ShutdownTimeout time.Duration // Grace period for in-flight requests
	MetricsEnabled  bool

	// Input binding
	LockPolicy   params.LockPolicy
	DefaultsFile string          // Optional YAML file overriding sample defaults
	Defaults     domain.Defaults // Values used for unset inputs

	// Logging
	LogLevel logger.LogLevel
}

// LoadConfig loads configuration from environment variables (.env file).
// Defaults for unset trade inputs are resolved in three layers: the sample
// trade, then DEFAULTS_FILE, then DEFAULT_* variables.
func LoadConfig() (*Config, error) {
	// Load .env file, but don't fail if it doesn't exist (allow pure env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	var err error
	var errs []string

	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")
	cfg.ShareBaseURL = getEnv("SHARE_BASE_URL", "http://localhost:8080/")
	cfg.MetricsEnabled = getEnvAsBool("METRICS_ENABLED", true)

	shutdownSeconds := getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 5)
	if shutdownSeconds <= 0 {
		errs = append(errs, "SHUTDOWN_TIMEOUT_SECONDS must be positive")
	}
	cfg.ShutdownTimeout = time.Duration(shutdownSeconds) * time.Second

	cfg.LockPolicy, err = params.ParseLockPolicy(getEnv("LOCK_CEILING_POLICY", string(params.LockPolicyClamp)))
	if err != nil {
		errs = append(errs, err.Error())
	}

	cfg.Defaults = domain.SampleDefaults()
	cfg.DefaultsFile = getEnv("DEFAULTS_FILE", "")
	if cfg.DefaultsFile != "" {
		if err := loadDefaultsFile(cfg.DefaultsFile, &cfg.Defaults); err != nil {
			errs = append(errs, err.Error())
		}
	}
	errs = append(errs, applyDefaultOverrides(&cfg.Defaults)...)
	errs = append(errs, validateDefaults(cfg.Defaults)...)

	cfg.LogLevel = logger.ParseLevel(getEnv("LOG_LEVEL", "INFO"))

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: configuration validation failed: %s", ports.ErrConfigurationError, strings.Join(errs, "; "))
	}

	return cfg, nil
}

// loadDefaultsFile overlays the keys present in a YAML file onto d.
func loadDefaultsFile(path string, d *domain.Defaults) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read defaults file %s: %v", path, err)
	}
	if err := yaml.Unmarshal(data, d); err != nil {
		return fmt.Errorf("parse defaults file %s: %v", path, err)
	}
	return nil
}

func applyDefaultOverrides(d *domain.Defaults) []string {
	var errs []string
	overrides := []struct {
		key string
		dst *float64
	}{
		{"DEFAULT_ENTRY", &d.Entry},
		{"DEFAULT_STOP_LOSS", &d.StopLoss},
		{"DEFAULT_TAKE_PROFIT", &d.TakeProfit},
		{"DEFAULT_CAPITAL", &d.Capital},
		{"DEFAULT_RISK_PERCENT", &d.RiskPercent},
		{"DEFAULT_MAX_LEVERAGE", &d.MaxLeverage},
		{"DEFAULT_TRIGGER_MULTIPLE", &d.TriggerMultiple},
		{"DEFAULT_LOCK_MULTIPLE", &d.LockMultiple},
	}
	for _, o := range overrides {
		v, err := getEnvAsFloatRequired(o.key, *o.dst)
		if err != nil {
			errs = append(errs, fmt.Sprintf("invalid %s: %v", o.key, err))
			continue
		}
		*o.dst = v
	}
	return errs
}

func validateDefaults(d domain.Defaults) []string {
	var errs []string
	if d.Capital < 0 {
		errs = append(errs, "default capital cannot be negative")
	}
	if d.RiskPercent < 0 {
		errs = append(errs, "default risk percent cannot be negative")
	}
	if d.MaxLeverage < 0 {
		errs = append(errs, "default max leverage cannot be negative")
	}
	if d.Entry < 0 || d.StopLoss < 0 || d.TakeProfit < 0 {
		errs = append(errs, "default prices cannot be negative")
	}
	return errs
}

// --- Env Var Helpers ---

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloatRequired(key string, defaultValue float64) (float64, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float value '%s' for key %s: %w", valueStr, key, err)
	}
	return value, nil
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
