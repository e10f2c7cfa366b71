package llm

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/osokin/lingvo/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with retry
// and audit logging middleware.
func NewProvider(ctx context.Context, cfg Config, audit store.AuditRepo, log *logrus.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown tutor backend: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → retry → logging → base
	logged := WithLogging(base, audit, log)
	retried := WithRetry(logged, cfg.Retry)

	return retried, nil
}

// NewProviderFromEnv builds a Provider from LINGVO_* environment
// variables, falling back to probing the standard API key variables.
func NewProviderFromEnv(ctx context.Context, audit store.AuditRepo, log *logrus.Logger) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, audit, log)
}
