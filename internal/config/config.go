package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Addr           string   `yaml:"addr"`
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"server"`
	AI struct {
		Provider string `yaml:"provider"`
		Model    string `yaml:"model"`
		APIKey   string `yaml:"api_key"`
		BaseURL  string `yaml:"base_url"` // openai-compatible / ollama endpoints
	} `yaml:"ai"`
	Store struct {
		Path string `yaml:"path"`
	} `yaml:"store"`
	Generate struct {
		TimeoutSeconds int `yaml:"timeout_seconds"`
	} `yaml:"generate"`
	Preview struct {
		DebounceMillis    int `yaml:"debounce_millis"`
		PrintSettleMillis int `yaml:"print_settle_millis"`
		PrintPaintMillis  int `yaml:"print_paint_millis"`
	} `yaml:"preview"`
	Log struct {
		Mode string `yaml:"mode"`
	} `yaml:"log"`
}

// Default returns the configuration used when no YAML file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.Server.Addr = ":8080"
	cfg.Server.AllowedOrigins = []string{"http://localhost:5173", "http://localhost:3000"}
	cfg.AI.Provider = "gemini"
	cfg.AI.Model = "gemini-2.0-flash"
	cfg.Store.Path = "prospekt.db"
	cfg.Generate.TimeoutSeconds = 90
	cfg.Preview.DebounceMillis = 750
	cfg.Preview.PrintSettleMillis = 500
	cfg.Preview.PrintPaintMillis = 200
	cfg.Log.Mode = "dev"
	return cfg
}

// Load reads configuration in layers: defaults, then the YAML file at path
// (skipped when path is empty), then PROSPEKT_* environment variables. A
// .env file in the working directory is loaded first if present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		file, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if addr := os.Getenv("PROSPEKT_ADDR"); addr != "" {
		cfg.Server.Addr = addr
	}
	if provider := os.Getenv("PROSPEKT_AI_PROVIDER"); provider != "" {
		cfg.AI.Provider = provider
	}
	if model := os.Getenv("PROSPEKT_AI_MODEL"); model != "" {
		cfg.AI.Model = model
	}
	if apiKey := os.Getenv("PROSPEKT_API_KEY"); apiKey != "" {
		cfg.AI.APIKey = apiKey
	}
	if baseURL := os.Getenv("PROSPEKT_AI_BASE_URL"); baseURL != "" {
		cfg.AI.BaseURL = baseURL
	}
	if storePath := os.Getenv("PROSPEKT_STORE_PATH"); storePath != "" {
		cfg.Store.Path = storePath
	}
	if mode := os.Getenv("PROSPEKT_LOG_MODE"); mode != "" {
		cfg.Log.Mode = mode
	}
}

// GenerateTimeout converts the configured timeout to a duration, falling
// back to the default when unset or nonsensical.
func (c *Config) GenerateTimeout() time.Duration {
	if c.Generate.TimeoutSeconds <= 0 {
		return 90 * time.Second
	}
	return time.Duration(c.Generate.TimeoutSeconds) * time.Second
}

func (c *Config) PreviewDebounce() time.Duration {
	if c.Preview.DebounceMillis <= 0 {
		return 750 * time.Millisecond
	}
	return time.Duration(c.Preview.DebounceMillis) * time.Millisecond
}

func (c *Config) PrintSettle() time.Duration {
	if c.Preview.PrintSettleMillis <= 0 {
		return 500 * time.Millisecond
	}
	return time.Duration(c.Preview.PrintSettleMillis) * time.Millisecond
}

func (c *Config) PrintPaint() time.Duration {
	if c.Preview.PrintPaintMillis <= 0 {
		return 200 * time.Millisecond
	}
	return time.Duration(c.Preview.PrintPaintMillis) * time.Millisecond
}
