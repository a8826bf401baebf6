package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"

	"studygen/internal/fault"
)

// Config holds runtime configuration for a single run.
type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Summarization provider
	SummaryProvider  string `env:"SUMMARY_PROVIDER" envDefault:"huggingface"` // "huggingface" (Inference API)
	SummaryModel     string `env:"SUMMARY_MODEL" envDefault:"sshleifer/distilbart-cnn-12-6"`
	SummaryMaxLength int    `env:"SUMMARY_MAX_LENGTH" envDefault:"200" validate:"gt=0"`
	HuggingFaceKey   string `env:"HUGGINGFACE_API_KEY" validate:"required"`

	// Chat-completion provider
	LLMProvider string `env:"LLM_PROVIDER" envDefault:"openai"` // "openai" (uses OpenAI API)
	LLMModel    string `env:"LLM_MODEL" envDefault:"gpt-4o-mini"`
	OpenAIKey   string `env:"OPENAI_API_KEY" validate:"required"`

	// Per-request bound for every provider call.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"60s" validate:"gt=0"`
}

// Load reads configuration from environment variables with defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration before any network call is made.
// A missing API key surfaces as an authentication error so the run
// fails fast instead of discovering it mid-pipeline.
func (c Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			switch fe.StructField() {
			case "HuggingFaceKey":
				return fmt.Errorf("HUGGINGFACE_API_KEY is not set: %w", fault.ErrAuth)
			case "OpenAIKey":
				return fmt.Errorf("OPENAI_API_KEY is not set: %w", fault.ErrAuth)
			}
		}
		return fmt.Errorf("invalid configuration: %s", verrs[0].StructField())
	}
	return fmt.Errorf("failed to validate config: %w", err)
}
