package chat

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/ganilson/synctechSite/internal/config"
	"github.com/ganilson/synctechSite/pkg/apperror"
	"github.com/ganilson/synctechSite/pkg/llm"
	"github.com/ganilson/synctechSite/pkg/logger"
	"github.com/ganilson/synctechSite/pkg/tracing"
)

var (
	// ErrNotConfigured is returned while no provider credential is set
	ErrNotConfigured = apperror.New(http.StatusInternalServerError, "llm_not_configured", "AI API Key not configured.")

	// ErrMessageRequired is returned for an empty message
	ErrMessageRequired = apperror.New(http.StatusBadRequest, "message_required", "Message is required.")

	// ErrGeneration is returned for any downstream failure. The cause is
	// attached as Internal and never rendered.
	ErrGeneration = apperror.New(http.StatusInternalServerError, "llm_error", "Failed to iterate with AI")
)

// Service relays one user message to the LLM provider per call.
// It holds no conversation state.
type Service struct {
	provider llm.Provider
	prompts  *Prompts
	timeout  time.Duration
	log      *slog.Logger
}

// NewService creates a new chat service. provider may be nil.
func NewService(provider llm.Provider, prompts *Prompts, cfg *config.Config, log *slog.Logger) *Service {
	return &Service{
		provider: provider,
		prompts:  prompts,
		timeout:  cfg.LLM.Timeout,
		log:      log.With(logger.Scope("chat.svc")),
	}
}

// Prompts returns the prompt set used by the service
func (s *Service) Prompts() *Prompts { return s.prompts }

// Reply answers req with exactly one provider call.
//
// The provider call is detached from ctx cancellation and bounded by the
// configured timeout: a caller that goes away does not abort it, the
// result is discarded.
func (s *Service) Reply(ctx context.Context, req Request) (*Response, error) {
	lang := ParseLanguage(req.Lang)

	if s.provider == nil || !s.provider.IsConfigured() {
		repliesTotal.WithLabelValues(string(lang), outcomeNotConfigured).Inc()
		return nil, ErrNotConfigured.WithMessage(s.prompts.NotConfigured(lang))
	}

	if strings.TrimSpace(req.Message) == "" {
		repliesTotal.WithLabelValues(string(lang), outcomeInvalid).Inc()
		return nil, ErrMessageRequired.WithMessage(s.prompts.MessageRequired(lang))
	}

	system, err := s.prompts.System(lang)
	if err != nil {
		return nil, s.fail(lang, "render system prompt", err)
	}
	prompt, err := s.prompts.User(req.Message)
	if err != nil {
		return nil, s.fail(lang, "render user prompt", err)
	}

	callCtx := context.WithoutCancel(ctx)
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(callCtx, s.timeout)
		defer cancel()
	}

	callCtx, span := tracing.Start(callCtx, "chat.reply",
		attribute.String("chat.lang", string(lang)),
		attribute.Int("chat.message_length", len(req.Message)),
	)
	defer span.End()

	start := time.Now()
	content, err := s.provider.Generate(callCtx, llm.Request{
		System: system,
		Prompt: prompt,
	})
	if err != nil {
		providerSeconds.WithLabelValues(outcomeError).Observe(time.Since(start).Seconds())
		span.RecordError(err)
		span.SetStatus(codes.Error, "generation failed")
		return nil, s.fail(lang, "generation failed", err)
	}
	providerSeconds.WithLabelValues(outcomeOK).Observe(time.Since(start).Seconds())
	repliesTotal.WithLabelValues(string(lang), outcomeOK).Inc()

	return &Response{Content: content}, nil
}

func (s *Service) fail(lang Language, msg string, err error) error {
	repliesTotal.WithLabelValues(string(lang), outcomeError).Inc()
	s.log.Error(msg, logger.Error(err), slog.String("lang", string(lang)))
	return ErrGeneration.WithMessage(s.prompts.Failure()).WithInternal(err)
}
