package llm

import (
	"context"
	"fmt"

	"github.com/lshigami/devprep/config"
	"github.com/rs/zerolog/log"
)

// NewProvider builds the completion provider selected by LLM_PROVIDER. A
// missing API key yields a Disabled provider instead of an error so the
// rest of the API keeps working.
func NewProvider(cfg *config.Config) (Provider, error) {
	var (
		base Provider
		err  error
	)
	switch cfg.LLM.Provider {
	case config.ProviderGroq, config.ProviderOpenAI:
		if cfg.LLM.APIKey == "" {
			log.Warn().Str("provider", cfg.LLM.Provider).Msg("LLM API key is not set. Grading routes will be non-functional.")
			return Disabled{Reason: "missing API key"}, nil
		}
		base, err = NewOpenAIProvider(OpenAIConfig{APIKey: cfg.LLM.APIKey, BaseURL: cfg.LLM.BaseURL, Model: cfg.LLM.Model})
	case config.ProviderGemini:
		if cfg.LLM.GeminiAPIKey == "" {
			log.Warn().Msg("GEMINI_API_KEY is not set. Grading routes will be non-functional.")
			return Disabled{Reason: "missing API key"}, nil
		}
		base, err = NewGeminiProvider(context.Background(), GeminiConfig{APIKey: cfg.LLM.GeminiAPIKey, Model: cfg.LLM.Model})
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.LLM.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.LLM.Provider, err)
	}
	return WithLogging(base), nil
}
