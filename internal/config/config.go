package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// RateTable decodes a comma-separated list of PAIR:RATE entries, e.g.
// "USD-NGN:1650,EUR-NGN:1820". It backs the offline estimate table.
type RateTable map[string]float64

func (t *RateTable) Decode(value string) error {
	table := make(map[string]float64)

	for _, entry := range strings.Split(value, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		key, rateStr, found := strings.Cut(entry, ":")
		if !found {
			return fmt.Errorf("invalid fallback rate entry %q, expected PAIR:RATE", entry)
		}

		rate, err := strconv.ParseFloat(strings.TrimSpace(rateStr), 64)
		if err != nil {
			return fmt.Errorf("invalid fallback rate for %q: %v", key, err)
		}

		table[strings.ToUpper(strings.TrimSpace(key))] = rate
	}

	*t = table
	return nil
}

type Config struct {
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	Domestic        string        `envconfig:"DOMESTIC_CURRENCY" default:"NGN"`
	Freshness       time.Duration `envconfig:"CACHE_FRESHNESS" default:"30m"`
	FallbackRates   RateTable     `envconfig:"FALLBACK_RATES" default:"USD-NGN:1650,EUR-NGN:1820,GBP-NGN:2150"`
	RefreshInterval time.Duration `envconfig:"REFRESH_INTERVAL" default:"0"`
	RefreshPairs    []string      `envconfig:"REFRESH_PAIRS" default:"USD-NGN"`
	PersistTimeout  time.Duration `envconfig:"PERSIST_TIMEOUT" default:"5s"`
	StoreDriver     string        `envconfig:"STORE_DRIVER" default:"memory"`
	DatabaseURL     string        `envconfig:"DATABASE_URL"`
	RedisURL        string        `envconfig:"REDIS_URL"`

	Server ServerConfig `envconfig:"SERVER"`
	Oracle OracleConfig `envconfig:"ORACLE"`
	Gemini GeminiConfig `envconfig:"GEMINI"`
	OpenAI OpenAIConfig `envconfig:"OPENAI"`
}

type ServerConfig struct {
	Port            int           `envconfig:"PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"5s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"120s"`
	IdleTimeout     time.Duration `envconfig:"IDLE_TIMEOUT" default:"120s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

type OracleConfig struct {
	Provider     string        `envconfig:"PROVIDER" default:"gemini"`
	Timeout      time.Duration `envconfig:"TIMEOUT" default:"45s"`
	RetryBudget  int           `envconfig:"RETRY_BUDGET" default:"1"`
	RetryBackoff time.Duration `envconfig:"RETRY_BACKOFF" default:"2s"`
}

type GeminiConfig struct {
	APIKey  string `envconfig:"API_KEY"`
	Model   string `envconfig:"MODEL" default:"gemini-2.0-flash"`
	BaseURL string `envconfig:"BASE_URL"`
}

type OpenAIConfig struct {
	APIKey string `envconfig:"API_KEY"`
	Model  string `envconfig:"MODEL" default:"gpt-4o-mini"`
}

func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if c.Freshness <= 0 {
		return fmt.Errorf("CACHE_FRESHNESS must be positive, got %s", c.Freshness)
	}

	switch c.StoreDriver {
	case "memory":
	case "postgres":
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when STORE_DRIVER is postgres")
		}
	case "redis":
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required when STORE_DRIVER is redis")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q, expected memory, postgres or redis", c.StoreDriver)
	}

	switch c.Oracle.Provider {
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required when ORACLE_PROVIDER is gemini")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when ORACLE_PROVIDER is openai")
		}
	default:
		return fmt.Errorf("unknown ORACLE_PROVIDER %q, expected gemini or openai", c.Oracle.Provider)
	}

	if c.Oracle.RetryBudget < 0 || c.Oracle.RetryBudget > 2 {
		return fmt.Errorf("ORACLE_RETRY_BUDGET must be between 0 and 2, got %d", c.Oracle.RetryBudget)
	}

	return nil
}
