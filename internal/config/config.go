// Package config loads gobeam settings.
//
// Precedence, lowest to highest: built-in defaults, the YAML file, a .env
// file in the working directory, then process environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/project"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when no path is given
const DefaultFile = "gobeam.yaml"

// Config is the full application configuration
type Config struct {
	Server   ServerConfig     `yaml:"server"`
	Store    StoreConfig      `yaml:"store"`
	Log      LogConfig        `yaml:"log"`
	Analysis project.Defaults `yaml:"analysis"`
}

// ServerConfig configures the HTTP service
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	RateLimit       float64       `yaml:"rateLimit"` // requests per second per client
	RateBurst       int           `yaml:"rateBurst"`
	ReadTimeout     time.Duration `yaml:"readTimeout"`
	WriteTimeout    time.Duration `yaml:"writeTimeout"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
}

// StoreConfig configures project persistence
type StoreConfig struct {
	Path string `yaml:"path"`
}

// LogConfig configures slog output
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// Default returns the built-in configuration
func Default() Config {
	storePath := filepath.Join(".gobeam", "data")
	if home, err := os.UserHomeDir(); err == nil {
		storePath = filepath.Join(home, ".gobeam", "data")
	}
	return Config{
		Server: ServerConfig{
			Addr:            ":5000",
			RateLimit:       10,
			RateBurst:       20,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Store: StoreConfig{Path: storePath},
		Log:   LogConfig{Level: "info", Format: "text"},
		Analysis: project.Defaults{
			ElasticModulus:  beam.DefaultElasticModulus,
			MomentOfInertia: beam.DefaultMomentOfInertia,
			NumPoints:       beam.DefaultNumPoints,
		},
	}
}

// Load builds the configuration. An explicit path must exist; when path is
// empty DefaultFile is read if present.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case explicit || !errors.Is(err, fs.ErrNotExist):
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	// .env is optional; variables already set in the environment win
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	if err := cfg.applyEnv(os.Getenv); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv("PORT"); v != "" {
		c.Server.Addr = ":" + v
	}
	if v := getenv("GOBEAM_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := getenv("GOBEAM_STORE"); v != "" {
		c.Store.Path = v
	}
	if v := getenv("GOBEAM_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := getenv("GOBEAM_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v := getenv("GOBEAM_RATE_LIMIT"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("GOBEAM_RATE_LIMIT: %w", err)
		}
		c.Server.RateLimit = f
	}
	if v := getenv("GOBEAM_RATE_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("GOBEAM_RATE_BURST: %w", err)
		}
		c.Server.RateBurst = n
	}
	return nil
}

// Validate checks values that would otherwise fail later at runtime
func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server address must not be empty")
	}
	if c.Server.RateLimit < 0 || c.Server.RateBurst < 0 {
		return errors.New("rate limit and burst must not be negative")
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}

// ParseLevel maps a level name to slog.Level
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
	return l, nil
}

// NewLogger builds a slog.Logger writing to w
func (c LogConfig) NewLogger(w io.Writer) *slog.Logger {
	level, err := ParseLevel(c.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
