package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Database DatabaseConfig
	Redis    RedisConfig

	// Transport
	NATS NATSConfig

	// Campus Advisor specifics
	Chat           ChatConfig
	GoogleCalendar GoogleCalendarConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// DatabaseConfig points at the SQLite file holding users, messages and advice logs.
type DatabaseConfig struct {
	Path string
}

// RedisConfig is optional. When URL is empty the history cache stays in-process.
type RedisConfig struct {
	URL      string
	CacheTTL time.Duration
}

// NATSConfig is optional. Only cmd/consumer needs it.
type NATSConfig struct {
	URL        string
	Subject    string
	QueueGroup string
	Timeout    time.Duration
}

type ChatConfig struct {
	HistoryWindow       int
	PromptTurns         int
	RateLimitPerMin     int
	AdviceThreshold     float64
	DefaultHistoryLimit int
	DefaultAdviceLimit  int
	HistoryCacheSize    int
	HistoryCacheTTL     time.Duration
	GenerationMaxTokens int
	GeneralMaxTokens    int
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
	Timezone        string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
	// Cooldown benches a failed provider so later turns skip it.
	Cooldown        string           `yaml:"cooldown"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper.
// A .env file in the working directory is applied first when present.
// Config file name: config.yaml, searched in ./config, ., /etc/campus-advisor/
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/campus-advisor/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Storage
	cfg.Database.Path = viper.GetString("database.path")
	cfg.Redis.URL = viper.GetString("redis.url")
	cfg.Redis.CacheTTL = viper.GetDuration("redis.cache_ttl")

	// Transport
	cfg.NATS.URL = viper.GetString("nats.url")
	cfg.NATS.Subject = viper.GetString("nats.subject")
	cfg.NATS.QueueGroup = viper.GetString("nats.queue_group")
	cfg.NATS.Timeout = viper.GetDuration("nats.timeout")

	// Chat
	cfg.Chat.HistoryWindow = viper.GetInt("chat.history_window")
	cfg.Chat.PromptTurns = viper.GetInt("chat.prompt_turns")
	cfg.Chat.RateLimitPerMin = viper.GetInt("chat.rate_limit_per_min")
	cfg.Chat.AdviceThreshold = viper.GetFloat64("chat.advice_threshold")
	cfg.Chat.DefaultHistoryLimit = viper.GetInt("chat.default_history_limit")
	cfg.Chat.DefaultAdviceLimit = viper.GetInt("chat.default_advice_limit")
	cfg.Chat.HistoryCacheSize = viper.GetInt("chat.history_cache_size")
	cfg.Chat.HistoryCacheTTL = viper.GetDuration("chat.history_cache_ttl")
	cfg.Chat.GenerationMaxTokens = viper.GetInt("chat.generation_max_tokens")
	cfg.Chat.GeneralMaxTokens = viper.GetInt("chat.general_max_tokens")

	// Google Calendar (optional)
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.Timezone = viper.GetString("google_calendar.timezone")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")
	cfg.LLM.Cooldown = viper.GetString("llm.cooldown")

	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  expandEnvVar(getStringFromMap(providerMap, "base_url")),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	// The original deployment talks to a single LM Studio instance; keep that
	// working with nothing but LOCAL_LLM_URL set.
	if len(cfg.LLM.Providers) == 0 {
		cfg.LLM.Providers = []ProviderConfig{{
			Name:     "local",
			Enabled:  true,
			Priority: 1,
			BaseURL:  viper.GetString("local_llm_url"),
			Model:    viper.GetString("local_llm_model"),
			Timeout:  viper.GetString("local_llm_timeout"),
		}}
	}

	if err := ValidateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("database.path", "data/campus-advisor.db")
	viper.SetDefault("redis.cache_ttl", "10m")

	viper.SetDefault("nats.subject", "advisor.chat.ask")
	viper.SetDefault("nats.queue_group", "campus-advisor")
	viper.SetDefault("nats.timeout", "90s")

	viper.SetDefault("chat.history_window", 10)
	viper.SetDefault("chat.prompt_turns", 5)
	viper.SetDefault("chat.rate_limit_per_min", 30)
	viper.SetDefault("chat.advice_threshold", 0.7)
	viper.SetDefault("chat.default_history_limit", 20)
	viper.SetDefault("chat.default_advice_limit", 50)
	viper.SetDefault("chat.history_cache_size", 1000)
	viper.SetDefault("chat.history_cache_ttl", "10m")
	viper.SetDefault("chat.generation_max_tokens", 512)
	viper.SetDefault("chat.general_max_tokens", 400)

	viper.SetDefault("google_calendar.token_path", "token.json")
	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("google_calendar.timezone", "UTC")

	viper.SetDefault("local_llm_url", "http://localhost:1234/v1")
	viper.SetDefault("local_llm_model", "mistralai/mistral-7b-instruct-v0.3")
	viper.SetDefault("local_llm_timeout", "120s")

	// LLM defaults. A single attempt per provider: the chat path has its own
	// deterministic fallbacks.
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 1)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "120s")
	viper.SetDefault("llm.cooldown", "30s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// ValidateLLMConfig validates the LLM configuration.
// Local providers need no API key, so only name/priority are enforced.
func ValidateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}
		enabledCount++

		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
