package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mrwerror "github.com/msto63/mRW/foundation/core/error"
)

// EnvConfigPath names the environment variable holding the config path
const EnvConfigPath = "MRW_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	History HistoryConfig `toml:"history" yaml:"history"`
	Cache   CacheConfig   `toml:"cache" yaml:"cache"`
	GRPC    GRPCConfig    `toml:"grpc" yaml:"grpc"`
	HTTP    HTTPConfig    `toml:"http" yaml:"http"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name        string `toml:"name" yaml:"name"`
	Environment string `toml:"environment" yaml:"environment"`
	DataDir     string `toml:"data_dir" yaml:"data_dir"`
	LogLevel    string `toml:"log_level" yaml:"log_level"`
	LogFormat   string `toml:"log_format" yaml:"log_format"`
}

// HistoryConfig holds the local calculation history settings
type HistoryConfig struct {
	Enabled    *bool  `toml:"enabled" yaml:"enabled"`
	Backend    string `toml:"backend" yaml:"backend"`
	Path       string `toml:"path" yaml:"path"`
	MaxEntries int    `toml:"max_entries" yaml:"max_entries"`
}

// IsEnabled reports whether history is on; it defaults to true
func (h HistoryConfig) IsEnabled() bool {
	return h.Enabled == nil || *h.Enabled
}

// CacheConfig holds result cache settings
type CacheConfig struct {
	Enabled   bool     `toml:"enabled" yaml:"enabled"`
	Backend   string   `toml:"backend" yaml:"backend"`
	RedisAddr string   `toml:"redis_addr" yaml:"redis_addr"`
	TTL       Duration `toml:"ttl" yaml:"ttl"`
	MaxItems  int      `toml:"max_items" yaml:"max_items"`
}

// GRPCConfig holds the gRPC server settings
type GRPCConfig struct {
	Host       string `toml:"host" yaml:"host"`
	Port       int    `toml:"port" yaml:"port"`
	Reflection bool   `toml:"reflection" yaml:"reflection"`
}

// HTTPConfig holds the HTTP gateway settings
type HTTPConfig struct {
	Host         string          `toml:"host" yaml:"host"`
	Port         int             `toml:"port" yaml:"port"`
	ReadTimeout  Duration        `toml:"read_timeout" yaml:"read_timeout"`
	WriteTimeout Duration        `toml:"write_timeout" yaml:"write_timeout"`
	CORS         CORSConfig      `toml:"cors" yaml:"cors"`
	RateLimit    RateLimitConfig `toml:"rate_limit" yaml:"rate_limit"`
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	Enabled        bool     `toml:"enabled" yaml:"enabled"`
	AllowedOrigins []string `toml:"allowed_origins" yaml:"allowed_origins"`
	AllowedMethods []string `toml:"allowed_methods" yaml:"allowed_methods"`
}

// RateLimitConfig allows Requests per Window and client IP; 0 disables it
type RateLimitConfig struct {
	Requests int      `toml:"requests" yaml:"requests"`
	Window   Duration `toml:"window" yaml:"window"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	return d.UnmarshalText([]byte(node.Value))
}

// Default returns a configuration with all defaults applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, mrwerror.Newf("config file not found: %s", path).
			WithCode(mrwerror.CodeMissingConfig).
			WithDetail("path", path)
	}
	if err != nil {
		return nil, mrwerror.Wrap(err, "failed to read config").WithCode(mrwerror.CodeConfigError)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		_, err = toml.Decode(string(data), &cfg)
	}
	if err != nil {
		return nil, mrwerror.Wrap(err, "failed to parse config").
			WithCode(mrwerror.CodeInvalidConfig).
			WithDetail("path", path)
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SearchPaths returns the locations LoadFromEnv tries, in order
func SearchPaths() []string {
	paths := []string{
		"./configs/config.toml",
		"./config.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config/meinrechenwerk/config.toml"))
	}
	return paths
}

// LoadFromEnv loads configuration from MRW_CONFIG or the first default
// location that exists. Without any file it returns Default().
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}
	for _, p := range SearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "meinRECHENWERK"
	}
	if c.General.Environment == "" {
		c.General.Environment = "development"
	}
	if c.General.DataDir == "" {
		c.General.DataDir = "./data"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	// History
	if c.History.Backend == "" {
		c.History.Backend = "sqlite"
	}
	if c.History.Path == "" {
		c.History.Path = filepath.Join(c.General.DataDir, "history.db")
	}
	if c.History.MaxEntries == 0 {
		c.History.MaxEntries = 100
	}

	// Cache
	if c.Cache.Backend == "" {
		c.Cache.Backend = "memory"
	}
	if c.Cache.RedisAddr == "" {
		c.Cache.RedisAddr = "localhost:6379"
	}
	if c.Cache.TTL.Duration == 0 {
		c.Cache.TTL.Duration = 10 * time.Minute
	}
	if c.Cache.MaxItems == 0 {
		c.Cache.MaxItems = 10000
	}

	// gRPC
	if c.GRPC.Host == "" {
		c.GRPC.Host = "0.0.0.0"
	}
	if c.GRPC.Port == 0 {
		c.GRPC.Port = 9300
	}

	// HTTP
	if c.HTTP.Host == "" {
		c.HTTP.Host = "0.0.0.0"
	}
	if c.HTTP.Port == 0 {
		c.HTTP.Port = 8380
	}
	if c.HTTP.ReadTimeout.Duration == 0 {
		c.HTTP.ReadTimeout.Duration = 15 * time.Second
	}
	if c.HTTP.WriteTimeout.Duration == 0 {
		c.HTTP.WriteTimeout.Duration = 30 * time.Second
	}
	if len(c.HTTP.CORS.AllowedOrigins) == 0 {
		c.HTTP.CORS.AllowedOrigins = []string{"*"}
	}
	if len(c.HTTP.CORS.AllowedMethods) == 0 {
		c.HTTP.CORS.AllowedMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	}
	if c.HTTP.RateLimit.Window.Duration == 0 {
		c.HTTP.RateLimit.Window.Duration = time.Minute
	}
}

// expandEnvVars expands environment variables in path-like values
func (c *Config) expandEnvVars() {
	c.General.DataDir = os.ExpandEnv(c.General.DataDir)
	c.History.Path = os.ExpandEnv(c.History.Path)
	c.Cache.RedisAddr = os.ExpandEnv(c.Cache.RedisAddr)
}

// Validate checks ranges and backend names
func (c *Config) Validate() error {
	invalid := func(field string, value interface{}) error {
		return mrwerror.Newf("invalid config value for %s: %v", field, value).
			WithCode(mrwerror.CodeInvalidConfig).
			WithDetail("field", field)
	}

	for name, port := range map[string]int{"grpc.port": c.GRPC.Port, "http.port": c.HTTP.Port} {
		if port < 1 || port > 65535 {
			return invalid(name, port)
		}
	}
	if c.History.MaxEntries < 1 {
		return invalid("history.max_entries", c.History.MaxEntries)
	}
	switch c.History.Backend {
	case "sqlite", "memory":
	default:
		return invalid("history.backend", c.History.Backend)
	}
	switch c.Cache.Backend {
	case "memory", "redis":
	default:
		return invalid("cache.backend", c.Cache.Backend)
	}
	if c.Cache.MaxItems < 1 {
		return invalid("cache.max_items", c.Cache.MaxItems)
	}
	if c.HTTP.RateLimit.Requests < 0 {
		return invalid("http.rate_limit.requests", c.HTTP.RateLimit.Requests)
	}
	return nil
}

// GRPCAddress returns host:port of the gRPC server
func (c *Config) GRPCAddress() string {
	return fmt.Sprintf("%s:%d", c.GRPC.Host, c.GRPC.Port)
}

// HTTPAddress returns host:port of the HTTP gateway
func (c *Config) HTTPAddress() string {
	return fmt.Sprintf("%s:%d", c.HTTP.Host, c.HTTP.Port)
}
