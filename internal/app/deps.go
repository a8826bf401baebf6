package app

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/openai/openai-go/v3"

	"studygen/internal/config"
	"studygen/internal/llm"
	"studygen/internal/logger"
	"studygen/internal/summarizer"
)

// Deps bundles the runtime dependencies of a run.
type Deps struct {
	Config     config.Config
	Log        *slog.Logger
	Summarizer summarizer.Provider
	LLM        llm.Client
}

// LoadConfig reads a local .env if present (its absence is fine) and
// parses configuration from the environment.
func LoadConfig() (config.Config, error) {
	_ = godotenv.Load()
	return config.Load()
}

// Build validates cfg and wires up shared components. Validation runs
// first so missing credentials fail before any client is constructed.
func Build(cfg config.Config) (Deps, error) {
	log := logger.New(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return Deps{}, err
	}

	sp, err := buildSummarizer(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize summarizer: %w", err)
	}
	llmClient, err := buildLLM(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize LLM: %w", err)
	}

	return Deps{
		Config:     cfg,
		Log:        log,
		Summarizer: sp,
		LLM:        llmClient,
	}, nil
}

func buildSummarizer(cfg config.Config, log *slog.Logger) (summarizer.Provider, error) {
	switch cfg.SummaryProvider {
	case "huggingface":
		p, err := summarizer.NewHuggingFace(cfg.HuggingFaceKey, cfg.SummaryModel, cfg.SummaryMaxLength, cfg.RequestTimeout)
		if err != nil {
			return nil, err
		}
		log.Info("using Hugging Face summarizer", "model", cfg.SummaryModel)
		return p, nil
	default:
		return nil, fmt.Errorf("invalid SUMMARY_PROVIDER: %s (valid option: huggingface)", cfg.SummaryProvider)
	}
}

func buildLLM(cfg config.Config, log *slog.Logger) (llm.Client, error) {
	switch cfg.LLMProvider {
	case "openai":
		client, err := llm.NewOpenAIClient(cfg.OpenAIKey, openai.ChatModel(cfg.LLMModel), cfg.RequestTimeout, log)
		if err != nil {
			return nil, err
		}
		log.Info("using OpenAI LLM client", "model", cfg.LLMModel)
		return client, nil
	default:
		return nil, fmt.Errorf("invalid LLM_PROVIDER: %s (valid option: openai)", cfg.LLMProvider)
	}
}
