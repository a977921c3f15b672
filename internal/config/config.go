// Package config loads runtime configuration and the shell's monitor order.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultDataDir      = "./data"
	defaultMonitorsPath = "-"
	defaultFormat       = "json"
)

// Config holds runtime configuration values.
type Config struct {
	DataDir      string
	ShellConfig  string
	MonitorsPath string
	OutputFormat string
}

// Load reads configuration from $DATA_DIR/.env and environment variables.
// DATA_DIR itself can only come from the environment.
func Load() (Config, error) {
	cfg := Config{
		DataDir:      envString("DATA_DIR", defaultDataDir),
		ShellConfig:  defaultShellConfig(),
		MonitorsPath: defaultMonitorsPath,
		OutputFormat: defaultFormat,
	}

	if err := loadEnvFile(filepath.Join(cfg.DataDir, ".env")); err != nil {
		return Config{}, err
	}

	cfg.ShellConfig = envString("SHELL_CONFIG", cfg.ShellConfig)
	cfg.MonitorsPath = envString("MONITORS_PATH", cfg.MonitorsPath)
	cfg.OutputFormat = NormalizeFormat(envString("OUTPUT_FORMAT", cfg.OutputFormat))

	return cfg, nil
}

// NormalizeFormat ensures a supported output format value.
func NormalizeFormat(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yaml", "yml":
		return "yaml"
	default:
		return "json"
	}
}

// defaultShellConfig returns the shell config path under the user config dir.
func defaultShellConfig() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "quickshell", "config.json")
}

// envString returns the trimmed value of key, or def when it is unset or blank.
func envString(key, def string) string {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	if v = strings.TrimSpace(v); v == "" {
		return def
	}
	return v
}

// loadEnvFile exports KEY=VALUE pairs from a .env file.
// Keys already present in the environment are left alone.
func loadEnvFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open env file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, ok := parseEnvLine(scanner.Text())
		if !ok {
			continue
		}
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("set %s from %s: %w", key, path, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read env file: %w", err)
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
	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", false
	}
	return key, strings.Trim(strings.TrimSpace(value), `"'`), true
}
