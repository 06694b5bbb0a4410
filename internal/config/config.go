package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds all application configuration
type Config struct {
	// Server settings
	ServerPort    int    `env:"SERVER_PORT" envDefault:"8080"`
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:"0.0.0.0"`
	Environment   string `env:"ENVIRONMENT" envDefault:"local"`
	Debug         bool   `env:"DEBUG" envDefault:"false"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`

	LLM  LLMConfig
	Chat ChatConfig
	Site SiteConfig
	Otel OtelConfig

	// Server timeouts
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"90s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// LLMConfig holds the generative-text provider settings used by the chat relay
type LLMConfig struct {
	// Gemini API key. The relay answers with a configuration error while empty.
	APIKey string `env:"GEMINI_API_KEY" envDefault:""`

	Model string `env:"LLM_MODEL" envDefault:"gemini-1.5-flash"`

	// Upper bound for one provider call
	Timeout time.Duration `env:"LLM_TIMEOUT" envDefault:"60s"`

	// Zero leaves the provider default in place
	Temperature     float64 `env:"LLM_TEMPERATURE" envDefault:"0"`
	MaxOutputTokens int     `env:"LLM_MAX_OUTPUT_TOKENS" envDefault:"0"`

	// Overrides the provider endpoint (proxies, local fakes)
	BaseURL string `env:"LLM_BASE_URL" envDefault:""`

	// Disable LLM network calls (for testing)
	NetworkDisabled bool `env:"LLM_NETWORK_DISABLED" envDefault:"false"`
}

// IsConfigured returns true if a provider credential is present
func (l *LLMConfig) IsConfigured() bool {
	if l.NetworkDisabled {
		return false
	}
	return strings.TrimSpace(l.APIKey) != ""
}

// ChatConfig holds chat relay settings
type ChatConfig struct {
	// YAML file replacing the embedded prompt set
	PromptsFile string `env:"CHAT_PROMPTS_FILE" envDefault:""`
}

// SiteConfig holds the public website settings
type SiteConfig struct {
	BaseURL        string `env:"SITE_BASE_URL" envDefault:"https://synctech.ao"`
	BrandSuffix    string `env:"SITE_BRAND_SUFFIX" envDefault:"Synctech - Inovação e Tecnologia"`
	DefaultImage   string `env:"SITE_DEFAULT_IMAGE" envDefault:"/og-image.png"`
	DefaultLang    string `env:"SITE_DEFAULT_LANG" envDefault:"pt"`
	WhatsAppNumber string `env:"SITE_WHATSAPP_NUMBER" envDefault:"244946808054"`
	ContactEmail   string `env:"SITE_CONTACT_EMAIL" envDefault:"contacto@synctech.ao"`

	// Directory of markdown posts replacing the embedded blog
	ContentDir string `env:"SITE_CONTENT_DIR" envDefault:""`
}

// URL joins path onto the site base URL
func (s *SiteConfig) URL(path string) string {
	base := strings.TrimRight(s.BaseURL, "/")
	if path == "" || path == "/" {
		return base + "/"
	}
	return base + "/" + strings.TrimLeft(path, "/")
}

// NewConfig parses configuration from the environment
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.ServerPort),
		slog.String("site", cfg.Site.BaseURL),
		slog.String("llm_model", cfg.LLM.Model),
		slog.Bool("llm_configured", cfg.LLM.IsConfigured()),
	)
	if !cfg.LLM.IsConfigured() {
		log.Warn("GEMINI_API_KEY not set, /api/chat will answer with a configuration error")
	}

	return cfg, nil
}
