package chat

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/ganilson/synctechSite/internal/config"
	"github.com/ganilson/synctechSite/pkg/llm"
	"github.com/ganilson/synctechSite/pkg/llm/gemini"
	"github.com/ganilson/synctechSite/pkg/logger"
)

var Module = fx.Module("chat",
	fx.Provide(
		NewPrompts,
		NewLLMProvider,
		NewService,
		NewHandler,
	),
	fx.Invoke(RegisterRoutes),
)

// NewPrompts loads the prompt set, honouring CHAT_PROMPTS_FILE
func NewPrompts(cfg *config.Config) (*Prompts, error) {
	return LoadPrompts(cfg.Chat.PromptsFile)
}

// NewLLMProvider creates a Gemini client if configured. It returns a nil
// provider otherwise so the server starts and the relay answers with the
// configuration error.
func NewLLMProvider(cfg *config.Config, log *slog.Logger) llm.Provider {
	scopedLog := log.With(logger.Scope("chat.llm"))

	if !cfg.LLM.IsConfigured() {
		scopedLog.Warn("LLM provider not configured")
		return nil
	}

	client, err := gemini.NewClient(context.Background(), gemini.Config{
		APIKey:          cfg.LLM.APIKey,
		Model:           cfg.LLM.Model,
		Timeout:         cfg.LLM.Timeout,
		Temperature:     cfg.LLM.Temperature,
		MaxOutputTokens: cfg.LLM.MaxOutputTokens,
		BaseURL:         cfg.LLM.BaseURL,
	}, gemini.WithLogger(scopedLog))
	if err != nil {
		scopedLog.Error("failed to create LLM client", logger.Error(err))
		return nil
	}

	scopedLog.Info("LLM client initialized", slog.String("model", client.Model()))
	return client
}
