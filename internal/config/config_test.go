package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoad_EnvOverrides verifies environment variables override defaults.
func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DATA_DIR", "")
	t.Setenv("SHELL_CONFIG", "/tmp/shell.jsonc")
	t.Setenv("MONITORS_PATH", "")
	t.Setenv("OUTPUT_FORMAT", " YAML ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ShellConfig != "/tmp/shell.jsonc" {
		t.Fatalf("unexpected shell config: %q", cfg.ShellConfig)
	}
	if cfg.MonitorsPath != "-" || cfg.DataDir != "./data" {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if cfg.OutputFormat != "yaml" {
		t.Fatalf("expected yaml format, got %q", cfg.OutputFormat)
	}
}

// TestLoad_DataDirEnvFile verifies the .env file is read from DATA_DIR.
func TestLoad_DataDirEnvFile(t *testing.T) {
	dir := t.TempDir()
	data := "SHELL_CONFIG=/from/datadir.json\nOUTPUT_FORMAT=yml\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(data), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	t.Setenv("DATA_DIR", dir)
	t.Setenv("MONITORS_PATH", "")
	for _, key := range []string{"SHELL_CONFIG", "OUTPUT_FORMAT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataDir != dir {
		t.Fatalf("expected data dir %q, got %q", dir, cfg.DataDir)
	}
	if cfg.ShellConfig != "/from/datadir.json" {
		t.Fatalf("expected shell config from .env, got %q", cfg.ShellConfig)
	}
	if cfg.OutputFormat != "yaml" {
		t.Fatalf("expected yaml format from .env, got %q", cfg.OutputFormat)
	}
}

// TestLoad_EnvBeatsDataDirFile verifies environment values win over DATA_DIR/.env.
func TestLoad_EnvBeatsDataDirFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("SHELL_CONFIG=/from/file.json\n"), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	t.Setenv("DATA_DIR", dir)
	t.Setenv("SHELL_CONFIG", "/from/env.json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ShellConfig != "/from/env.json" {
		t.Fatalf("expected env value, got %q", cfg.ShellConfig)
	}
}

// TestLoad_UnreadableEnvFile verifies a .env that cannot be read is reported.
func TestLoad_UnreadableEnvFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ".env"), 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	t.Setenv("DATA_DIR", dir)
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for directory .env")
	}
}

// TestNormalizeFormat verifies unknown formats fall back to json.
func TestNormalizeFormat(t *testing.T) {
	cases := map[string]string{"json": "json", "yml": "yaml", "YAML": "yaml", "toml": "json", "": "json"}
	for in, want := range cases {
		if got := NormalizeFormat(in); got != want {
			t.Fatalf("NormalizeFormat(%q) = %q, want %q", in, got, want)
		}
	}
}

// TestParseEnvLine verifies .env lines are split and cleaned.
func TestParseEnvLine(t *testing.T) {
	key, value, ok := parseEnvLine(`export SHELL_CONFIG="/home/me/.config/qs.json"`)
	if !ok || key != "SHELL_CONFIG" || value != "/home/me/.config/qs.json" {
		t.Fatalf("unexpected parse: %q %q %v", key, value, ok)
	}
	for _, line := range []string{"", "# comment", "NOEQUALS", "=value"} {
		if _, _, ok := parseEnvLine(line); ok {
			t.Fatalf("expected %q to be skipped", line)
		}
	}
}

// TestLoadEnvFile_KeepsExisting verifies .env values never override the environment.
func TestLoadEnvFile_KeepsExisting(t *testing.T) {
	const newKey = "REGIONSEL_TEST_NEW_KEY"
	t.Cleanup(func() { os.Unsetenv(newKey) })
	t.Setenv("REGIONSEL_TEST_SET_KEY", "env")

	path := filepath.Join(t.TempDir(), ".env")
	data := "REGIONSEL_TEST_SET_KEY=file\n" + newKey + "='from file'\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := loadEnvFile(path); err != nil {
		t.Fatalf("loadEnvFile failed: %v", err)
	}
	if got := os.Getenv("REGIONSEL_TEST_SET_KEY"); got != "env" {
		t.Fatalf("expected existing value kept, got %q", got)
	}
	if got := os.Getenv(newKey); got != "from file" {
		t.Fatalf("expected file value, got %q", got)
	}
}

// TestLoadEnvFile_Missing verifies a missing .env file is not an error.
func TestLoadEnvFile_Missing(t *testing.T) {
	if err := loadEnvFile(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}
