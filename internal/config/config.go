package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/joho/godotenv"
)

const (
	BackendHuggingFace = "huggingface"
	BackendOpenAI      = "openai"

	StorageSQLite = "sqlite"
	StorageMemory = "memory"
)

// Config collects every tunable of the camxuc binaries.
type Config struct {
	Storage    StorageConfig    `json:"storage"`
	Classifier ClassifierConfig `json:"classifier"`
	History    HistoryConfig    `json:"history"`
	UI         UIConfig         `json:"ui"`
	Log        LogConfig        `json:"log"`
}

type StorageConfig struct {
	Backend    string `json:"backend"`
	Path       string `json:"path"`
	MaxRecords int    `json:"maxRecords"`
}

type ClassifierConfig struct {
	Backend        string  `json:"backend"`
	Model          string  `json:"model"`
	BaseURL        string  `json:"baseURL"`
	APIKey         string  `json:"apiKey"`
	TimeoutSeconds int     `json:"timeoutSeconds"`
	RatePerSecond  float64 `json:"ratePerSecond"`
	Burst          int     `json:"burst"`
}

type HistoryConfig struct {
	PageSize  int `json:"pageSize"`
	Increment int `json:"increment"`
}

type UIConfig struct {
	MinRunes int   `json:"minRunes"`
	Color    *bool `json:"color"`
}

type LogConfig struct {
	Level string `json:"level"`
}

// Load reads configuration from JSON. Missing files are treated as empty config.
func Load(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := sonic.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// LoadDotEnv loads KEY=value pairs from the given files into the process
// environment without overriding variables already set. Missing files are
// skipped.
func LoadDotEnv(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// Resolve loads envFile and the JSON config at path, applies environment
// overrides and fills defaults. Callers apply flag overrides afterwards.
func Resolve(path, envFile string, getenv func(string) string) (Config, error) {
	if envFile != "" {
		if err := LoadDotEnv(envFile); err != nil {
			return Config{}, err
		}
	}
	cfg, err := Load(path)
	if err != nil {
		return Config{}, err
	}
	cfg.ApplyEnv(getenv)
	cfg.Defaults()
	return cfg, nil
}

// ApplyEnv overrides fields from environment variables.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv("CAMXUC_DB"); v != "" {
		c.Storage.Path = v
	}
	if v := getenv("CAMXUC_STORAGE"); v != "" {
		c.Storage.Backend = v
	}
	if v := getenv("CAMXUC_CLASSIFIER"); v != "" {
		c.Classifier.Backend = v
	}
	if v := getenv("CAMXUC_MODEL"); v != "" {
		c.Classifier.Model = v
	}
	if v := getenv("CAMXUC_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := getenv("CAMXUC_MAX_RECORDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Storage.MaxRecords = n
		}
	}

	switch c.Classifier.Backend {
	case BackendOpenAI:
		if c.Classifier.APIKey == "" {
			c.Classifier.APIKey = getenv("OPENAI_API_KEY")
		}
		if c.Classifier.BaseURL == "" {
			c.Classifier.BaseURL = getenv("OPENAI_BASE_URL")
		}
	default:
		if c.Classifier.APIKey == "" {
			c.Classifier.APIKey = getenv("HF_TOKEN")
		}
	}
}

// Defaults ensures minimal sane defaults.
func (c *Config) Defaults() {
	if c.Storage.Backend == "" {
		c.Storage.Backend = StorageSQLite
	}
	if c.Storage.Path == "" {
		c.Storage.Path = "db/sentiments.db"
	}
	if c.Classifier.Backend == "" {
		c.Classifier.Backend = BackendHuggingFace
	}
	if c.Classifier.TimeoutSeconds == 0 {
		c.Classifier.TimeoutSeconds = 30
	}
	if c.Classifier.Burst == 0 {
		c.Classifier.Burst = 1
	}
	if c.History.PageSize == 0 {
		c.History.PageSize = 50
	}
	if c.History.Increment == 0 {
		c.History.Increment = 10
	}
	if c.UI.MinRunes == 0 {
		c.UI.MinRunes = 5
	}
	if c.UI.Color == nil {
		on := true
		c.UI.Color = &on
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate rejects unknown backends.
func (c Config) Validate() error {
	switch c.Storage.Backend {
	case StorageSQLite, StorageMemory:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	switch c.Classifier.Backend {
	case BackendHuggingFace, BackendOpenAI:
	default:
		return fmt.Errorf("unknown classifier backend %q", c.Classifier.Backend)
	}
	return nil
}

// SlogLevel maps Log.Level to a slog level; unknown values mean info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
