// Package config loads file and environment configuration for flipmon.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultDataDir     = "."
	defaultDeviceIndex = 1
	defaultPolicy      = "ignore"

	// FileName is the optional YAML config file inside the data dir.
	FileName = "flipmon.yaml"
)

// Config holds runtime configuration values.
type Config struct {
	DataDir         string
	StoreDir        string
	DeviceIndex     int
	MalformedPolicy string
	DryRun          bool
	Debug           bool
}

// fileConfig is the YAML shape of flipmon.yaml.
type fileConfig struct {
	StoreDir          string `yaml:"store_dir"`
	DeviceIndex       *int   `yaml:"device_index"`
	MalformedPosition string `yaml:"malformed_position"`
	DryRun            *bool  `yaml:"dry_run"`
	Debug             *bool  `yaml:"debug"`
}

// Load reads defaults, then <dataDir>/flipmon.yaml, then <dataDir>/.env and environment variables.
// An empty dataDir falls back to DATA_DIR or the working directory.
func Load(dataDir string) (Config, error) {
	if dataDir == "" {
		dataDir = envString("DATA_DIR", defaultDataDir)
	}
	cfg := Config{
		DataDir:         dataDir,
		DeviceIndex:     defaultDeviceIndex,
		MalformedPolicy: defaultPolicy,
	}

	fc, err := loadFile(filepath.Join(cfg.DataDir, FileName))
	if err != nil {
		return Config{}, err
	}
	cfg.StoreDir = fc.StoreDir
	if fc.DeviceIndex != nil {
		cfg.DeviceIndex = *fc.DeviceIndex
	}
	if fc.MalformedPosition != "" {
		cfg.MalformedPolicy = fc.MalformedPosition
	}
	if fc.DryRun != nil {
		cfg.DryRun = *fc.DryRun
	}
	if fc.Debug != nil {
		cfg.Debug = *fc.Debug
	}

	if err := loadEnvFile(filepath.Join(cfg.DataDir, ".env")); err != nil {
		return Config{}, err
	}

	cfg.StoreDir = envString("STORE_DIR", cfg.StoreDir)
	switch {
	case cfg.StoreDir == "":
		cfg.StoreDir = cfg.DataDir
	case !filepath.IsAbs(cfg.StoreDir):
		cfg.StoreDir = filepath.Join(cfg.DataDir, cfg.StoreDir)
	}

	idx, err := envInt("DEVICE_INDEX", cfg.DeviceIndex)
	if err != nil {
		return Config{}, err
	}
	if idx < 0 {
		return Config{}, fmt.Errorf("DEVICE_INDEX must be >= 0")
	}
	cfg.DeviceIndex = idx

	cfg.MalformedPolicy = envString("MALFORMED_POSITION", cfg.MalformedPolicy)

	cfg.DryRun = envBool("DRY_RUN", cfg.DryRun)
	cfg.Debug = envBool("DEBUG", cfg.Debug)

	return cfg, nil
}

// loadFile parses the YAML config file. Missing files return empty data.
func loadFile(path string) (fileConfig, error) {
	var fc fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fc, nil
		}
		return fc, err
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fileConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return fc, nil
}

// envString returns an env override when present, otherwise a default.
func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// envInt returns an int env override when present, otherwise a default.
func envInt(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return value, nil
}

// envBool returns a bool env override when present, otherwise a default.
func envBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

// loadEnvFile loads KEY=VALUE pairs from a .env file without overriding the environment.
func loadEnvFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := parseEnvLine(line)
		if !ok {
			continue
		}
		if _, exists := os.LookupEnv(key); !exists {
			if err := os.Setenv(key, value); err != nil {
				return err
			}
		}
	}

	return nil
}

// parseEnvLine parses a single .env line into key/value.
func parseEnvLine(line string) (string, string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", false
	}
	return key, strings.Trim(strings.TrimSpace(value), `"'`), true
}
