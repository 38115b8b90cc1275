package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Environment string           `toml:"environment"` // "development" or "production"
	Logging     LoggingConfig    `toml:"logging"`
	Eventbrite  EventbriteConfig `toml:"eventbrite"`
	Claude      ClaudeConfig     `toml:"claude"`
	Gemini      GeminiConfig     `toml:"gemini"`
	LLM         LLMConfig        `toml:"llm"`
	Summary     SummaryConfig    `toml:"summary"`
}

type LoggingConfig struct {
	Level      string   `toml:"level" validate:"omitempty,oneof=trace debug info warn error"`
	Output     []string `toml:"output"`      // "stdout", "file"
	TimeFormat string   `toml:"time_format"` // Time format for logs (default: "15:04:05")
}

// EventbriteConfig holds the credentials and transport settings for the
// Eventbrite v3 API. The API key is injected here rather than read from the
// environment by the pipeline itself, so tests can run against fake servers.
type EventbriteConfig struct {
	APIKey              string        `toml:"api_key" validate:"required"`
	BaseURL             string        `toml:"base_url" validate:"required,url"`
	RequestTimeout      time.Duration `toml:"request_timeout"`
	MarkdownDescription bool          `toml:"markdown_description"` // Also render the description as markdown
}

type ClaudeConfig struct {
	APIKey      string  `toml:"api_key"`
	Model       string  `toml:"model"`
	Temperature float32 `toml:"temperature"`
	MaxTokens   int     `toml:"max_tokens"`
	Timeout     string  `toml:"timeout"` // e.g., "2m"
}

type GeminiConfig struct {
	APIKey      string  `toml:"api_key"`
	Model       string  `toml:"model"`
	Temperature float32 `toml:"temperature"`
	Timeout     string  `toml:"timeout"`
}

type LLMConfig struct {
	DefaultProvider string `toml:"default_provider" validate:"omitempty,oneof=claude gemini"`
}

// SummaryConfig controls the generation step of the pipeline.
type SummaryConfig struct {
	Model       string  `toml:"model"`       // Empty uses the default provider's configured model
	Temperature float32 `toml:"temperature"` // 0 uses the provider default
}

// NewDefaultConfig returns a config populated with defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Logging: LoggingConfig{
			Level:      "info",
			Output:     []string{"stdout"},
			TimeFormat: "15:04:05",
		},
		Eventbrite: EventbriteConfig{
			BaseURL:        "https://www.eventbriteapi.com/v3",
			RequestTimeout: 30 * time.Second,
		},
		Claude: ClaudeConfig{
			Model:       "claude-sonnet-4-20250514",
			Temperature: 0.3,
			MaxTokens:   1024,
			Timeout:     "2m",
		},
		Gemini: GeminiConfig{
			Model:       "gemini-2.5-flash",
			Temperature: 0.3,
			Timeout:     "2m",
		},
		LLM: LLMConfig{
			DefaultProvider: "claude",
		},
		Summary: SummaryConfig{
			Temperature: 0.3,
		},
	}
}

// LoadFromFile loads configuration from a single TOML file on top of defaults
func LoadFromFile(path string) (*Config, error) {
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration by merging defaults, then each TOML file
// in order (later files override earlier ones), then environment overrides.
// A missing file is an error; pass no paths to load defaults plus environment.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies EVENTBRIEF_* environment variables on top of the
// loaded configuration. The unprefixed EVENTBRITE_API_KEY, ANTHROPIC_API_KEY
// and GEMINI_API_KEY names are also honored for credentials.
func applyEnvOverrides(config *Config) {
	if level := os.Getenv("EVENTBRIEF_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if output := os.Getenv("EVENTBRIEF_LOG_OUTPUT"); output != "" {
		outputs := []string{}
		for _, o := range strings.Split(output, ",") {
			if trimmed := strings.TrimSpace(o); trimmed != "" {
				outputs = append(outputs, trimmed)
			}
		}
		if len(outputs) > 0 {
			config.Logging.Output = outputs
		}
	}

	// Eventbrite configuration
	if key := os.Getenv("EVENTBRIEF_EVENTBRITE_API_KEY"); key != "" {
		config.Eventbrite.APIKey = key
	} else if key := os.Getenv("EVENTBRITE_API_KEY"); key != "" {
		config.Eventbrite.APIKey = key
	}
	if baseURL := os.Getenv("EVENTBRIEF_EVENTBRITE_BASE_URL"); baseURL != "" {
		config.Eventbrite.BaseURL = baseURL
	}
	if timeout := os.Getenv("EVENTBRIEF_EVENTBRITE_REQUEST_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			config.Eventbrite.RequestTimeout = d
		}
	}
	if markdown := os.Getenv("EVENTBRIEF_MARKDOWN_DESCRIPTION"); markdown != "" {
		if m, err := strconv.ParseBool(markdown); err == nil {
			config.Eventbrite.MarkdownDescription = m
		}
	}

	// LLM provider configuration
	if key := os.Getenv("EVENTBRIEF_CLAUDE_API_KEY"); key != "" {
		config.Claude.APIKey = key
	} else if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		config.Claude.APIKey = key
	}
	if key := os.Getenv("EVENTBRIEF_GEMINI_API_KEY"); key != "" {
		config.Gemini.APIKey = key
	} else if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		config.Gemini.APIKey = key
	}
	if provider := os.Getenv("EVENTBRIEF_LLM_PROVIDER"); provider != "" {
		config.LLM.DefaultProvider = provider
	}
	if model := os.Getenv("EVENTBRIEF_SUMMARY_MODEL"); model != "" {
		config.Summary.Model = model
	}
	if temp := os.Getenv("EVENTBRIEF_SUMMARY_TEMPERATURE"); temp != "" {
		if t, err := strconv.ParseFloat(temp, 32); err == nil {
			config.Summary.Temperature = float32(t)
		}
	}
}

// Validate checks the configuration against its struct tags
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// IsProduction returns true when running in production mode
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}
