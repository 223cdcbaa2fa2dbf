package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/kumarlokesh/wordtrie/internal/wordlist"
)

// EnvPrefix prefixes every environment variable override, e.g. WORDTRIE_SERVER_PORT.
const EnvPrefix = "WORDTRIE"

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Log        LogConfig        `mapstructure:"log"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

// ServerConfig holds server related configuration
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DictionaryConfig lists the word lists to load and how to read them
type DictionaryConfig struct {
	Files         []string `mapstructure:"files"`
	SkipBlank     bool     `mapstructure:"skip_blank"`
	CommentPrefix string   `mapstructure:"comment_prefix"`
	TrimSpace     bool     `mapstructure:"trim_space"`
}

// LogConfig holds logging related configuration
type LogConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
}

// MetricsConfig holds prometheus related configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	return Load(v, configPath)
}

// Load reads configuration into v, which may already carry bound flags.
func Load(v *viper.Viper, configPath string) (*Config, error) {
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", "5s")

	v.SetDefault("dictionary.files", []string{})
	v.SetDefault("dictionary.skip_blank", true)
	v.SetDefault("dictionary.comment_prefix", "#")
	v.SetDefault("dictionary.trim_space", true)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.console", true)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive, got %s", c.Server.ShutdownTimeout)
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics path must start with '/': %q", c.Metrics.Path)
	}
	return nil
}

// Addr returns the host:port the server listens on
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// WordlistOptions converts the dictionary settings into loader options
func (c DictionaryConfig) WordlistOptions() wordlist.Options {
	return wordlist.Options{
		SkipBlank:     c.SkipBlank,
		CommentPrefix: c.CommentPrefix,
		TrimSpace:     c.TrimSpace,
	}
}
