package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	mrwerror "github.com/msto63/mRW/foundation/core/error"
)

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"seconds", "30s", 30 * time.Second, false},
		{"minutes", "5m", 5 * time.Minute, false},
		{"hours", "2h", 2 * time.Hour, false},
		{"complex", "1h30m", 90 * time.Minute, false},
		{"milliseconds", "100ms", 100 * time.Millisecond, false},
		{"invalid", "invalid", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))

			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalText() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && d.Duration != tt.expected {
				t.Errorf("UnmarshalText() = %v, want %v", d.Duration, tt.expected)
			}
		})
	}
}

func TestDuration_MarshalText(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{"seconds", 30 * time.Second, "30s"},
		{"minutes", 5 * time.Minute, "5m0s"},
		{"hours", 2 * time.Hour, "2h0m0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Duration{tt.duration}
			result, err := d.MarshalText()

			if err != nil {
				t.Errorf("MarshalText() error = %v", err)
				return
			}

			if string(result) != tt.expected {
				t.Errorf("MarshalText() = %v, want %v", string(result), tt.expected)
			}
		})
	}
}

func TestConfig_applyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	// General defaults
	if cfg.General.Name != "meinRECHENWERK" {
		t.Errorf("General.Name = %v, want meinRECHENWERK", cfg.General.Name)
	}
	if cfg.General.Environment != "development" {
		t.Errorf("General.Environment = %v, want development", cfg.General.Environment)
	}
	if cfg.General.LogLevel != "info" {
		t.Errorf("General.LogLevel = %v, want info", cfg.General.LogLevel)
	}

	// History defaults
	if !cfg.History.IsEnabled() {
		t.Error("History.IsEnabled() = false, want true")
	}
	if cfg.History.MaxEntries != 100 {
		t.Errorf("History.MaxEntries = %v, want 100", cfg.History.MaxEntries)
	}
	if cfg.History.Path != filepath.Join("./data", "history.db") {
		t.Errorf("History.Path = %v", cfg.History.Path)
	}

	// Cache defaults
	if cfg.Cache.Backend != "memory" {
		t.Errorf("Cache.Backend = %v, want memory", cfg.Cache.Backend)
	}
	if cfg.Cache.TTL.Duration != 10*time.Minute {
		t.Errorf("Cache.TTL = %v, want 10m", cfg.Cache.TTL.Duration)
	}

	// Transport defaults
	if cfg.GRPC.Port != 9300 {
		t.Errorf("GRPC.Port = %v, want 9300", cfg.GRPC.Port)
	}
	if cfg.HTTP.Port != 8380 {
		t.Errorf("HTTP.Port = %v, want 8380", cfg.HTTP.Port)
	}
	if cfg.HTTP.ReadTimeout.Duration != 15*time.Second {
		t.Errorf("HTTP.ReadTimeout = %v, want 15s", cfg.HTTP.ReadTimeout.Duration)
	}
}

func TestConfig_Addresses(t *testing.T) {
	cfg := Default()
	if got := cfg.GRPCAddress(); got != "0.0.0.0:9300" {
		t.Errorf("GRPCAddress() = %v, want 0.0.0.0:9300", got)
	}
	if got := cfg.HTTPAddress(); got != "0.0.0.0:8380" {
		t.Errorf("HTTPAddress() = %v, want 0.0.0.0:8380", got)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"grpc port", func(c *Config) { c.GRPC.Port = 70000 }},
		{"http port", func(c *Config) { c.HTTP.Port = -1 }},
		{"max entries", func(c *Config) { c.History.MaxEntries = 0 }},
		{"history backend", func(c *Config) { c.History.Backend = "postgres" }},
		{"cache backend", func(c *Config) { c.Cache.Backend = "memcached" }},
		{"rate limit", func(c *Config) { c.HTTP.RateLimit.Requests = -5 }},
	}

	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if !mrwerror.HasCode(err, mrwerror.CodeInvalidConfig) {
				t.Errorf("Validate() error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/config.toml")
	if !mrwerror.HasCode(err, mrwerror.CodeMissingConfig) {
		t.Errorf("Load() error = %v, want MISSING_CONFIG", err)
	}
}

func TestLoad_ValidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	configContent := `
[general]
name = "TestRECHENWERK"
environment = "test"

[history]
enabled = false
max_entries = 25

[http]
port = 9999
host = "127.0.0.1"

[http.rate_limit]
requests = 60
window = "30s"
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.Name != "TestRECHENWERK" {
		t.Errorf("General.Name = %v, want TestRECHENWERK", cfg.General.Name)
	}
	if cfg.History.IsEnabled() {
		t.Error("History.IsEnabled() = true, want false")
	}
	if cfg.History.MaxEntries != 25 {
		t.Errorf("History.MaxEntries = %v, want 25", cfg.History.MaxEntries)
	}
	if cfg.HTTP.Port != 9999 || cfg.HTTP.Host != "127.0.0.1" {
		t.Errorf("HTTP = %s, want 127.0.0.1:9999", cfg.HTTPAddress())
	}
	if cfg.HTTP.RateLimit.Requests != 60 || cfg.HTTP.RateLimit.Window.Duration != 30*time.Second {
		t.Errorf("HTTP.RateLimit = %+v", cfg.HTTP.RateLimit)
	}

	// Check defaults were applied for missing values
	if cfg.GRPC.Port != 9300 {
		t.Errorf("GRPC.Port = %v, want 9300 (default)", cfg.GRPC.Port)
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	configContent := `
general:
  name: YamlWerk
cache:
  enabled: true
  backend: redis
  ttl: 90s
grpc:
  port: 9400
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.General.Name != "YamlWerk" {
		t.Errorf("General.Name = %v, want YamlWerk", cfg.General.Name)
	}
	if !cfg.Cache.Enabled || cfg.Cache.Backend != "redis" {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
	if cfg.Cache.TTL.Duration != 90*time.Second {
		t.Errorf("Cache.TTL = %v, want 90s", cfg.Cache.TTL.Duration)
	}
	if cfg.GRPC.Port != 9400 {
		t.Errorf("GRPC.Port = %v, want 9400", cfg.GRPC.Port)
	}
}

func TestLoad_InvalidContent(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	os.WriteFile(configPath, []byte("[general\nname ="), 0644)

	_, err := Load(configPath)
	if !mrwerror.HasCode(err, mrwerror.CodeInvalidConfig) {
		t.Errorf("Load() error = %v, want INVALID_CONFIG", err)
	}
}

func TestConfig_expandEnvVars(t *testing.T) {
	t.Setenv("TEST_DATA_DIR", "/srv/mrw")

	cfg := &Config{
		General: GeneralConfig{DataDir: "$TEST_DATA_DIR"},
		History: HistoryConfig{Path: "${TEST_DATA_DIR}/h.db"},
	}
	cfg.expandEnvVars()

	if cfg.General.DataDir != "/srv/mrw" {
		t.Errorf("DataDir = %v, want /srv/mrw", cfg.General.DataDir)
	}
	if cfg.History.Path != "/srv/mrw/h.db" {
		t.Errorf("History.Path = %v, want /srv/mrw/h.db", cfg.History.Path)
	}
}

func TestLoadFromEnv_NoConfigFound(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv("HOME", t.TempDir())

	// Change to a temp directory without config files
	originalWd, _ := os.Getwd()
	os.Chdir(t.TempDir())
	defer os.Chdir(originalWd)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.General.Name != "meinRECHENWERK" {
		t.Errorf("LoadFromEnv() without file = %+v, want defaults", cfg.General)
	}
}

func TestLoadFromEnv_ExplicitPath(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "custom.toml")
	os.WriteFile(configPath, []byte("[grpc]\nport = 9555\n"), 0644)
	t.Setenv(EnvConfigPath, configPath)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.GRPC.Port != 9555 {
		t.Errorf("GRPC.Port = %v, want 9555", cfg.GRPC.Port)
	}
}

func TestLoad_ShippedConfig(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "..", "configs", "config.toml"))
	if err != nil {
		t.Fatalf("Load(configs/config.toml) error = %v", err)
	}
	if cfg.GRPC.Port != 9300 || cfg.HTTP.Port != 8380 {
		t.Errorf("ports = %d/%d, want 9300/8380", cfg.GRPC.Port, cfg.HTTP.Port)
	}
	if !cfg.History.IsEnabled() || cfg.History.MaxEntries != 100 {
		t.Errorf("history = %+v", cfg.History)
	}
	if cfg.HTTP.RateLimit.Requests != 120 || cfg.HTTP.RateLimit.Window.Duration != time.Minute {
		t.Errorf("rate limit = %+v", cfg.HTTP.RateLimit)
	}
}
