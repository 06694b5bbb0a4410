package config

import (
	"io"
	"log/slog"
	"os"
	"testing"
	"time"
)

func TestLLMConfig_IsConfigured(t *testing.T) {
	tests := []struct {
		name   string
		config LLMConfig
		want   bool
	}{
		{name: "api key set", config: LLMConfig{APIKey: "test-api-key"}, want: true},
		{name: "empty api key", config: LLMConfig{}, want: false},
		{name: "whitespace api key", config: LLMConfig{APIKey: "   "}, want: false},
		{name: "network disabled", config: LLMConfig{APIKey: "test-api-key", NetworkDisabled: true}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.IsConfigured(); got != tt.want {
				t.Errorf("IsConfigured() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSiteConfig_URL(t *testing.T) {
	tests := []struct {
		name string
		base string
		path string
		want string
	}{
		{"root", "https://synctech.ao", "/", "https://synctech.ao/"},
		{"empty path", "https://synctech.ao", "", "https://synctech.ao/"},
		{"path", "https://synctech.ao", "/blog", "https://synctech.ao/blog"},
		{"trailing slash base", "https://synctech.ao/", "/blog/flutter", "https://synctech.ao/blog/flutter"},
		{"relative path", "https://synctech.ao", "sitemap.xml", "https://synctech.ao/sitemap.xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := SiteConfig{BaseURL: tt.base}
			if got := s.URL(tt.path); got != tt.want {
				t.Errorf("URL(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestOtelConfig_Enabled(t *testing.T) {
	if (OtelConfig{}).Enabled() {
		t.Error("Enabled() = true for empty endpoint")
	}
	if !(OtelConfig{ExporterEndpoint: "http://localhost:4318"}).Enabled() {
		t.Error("Enabled() = false with endpoint set")
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	for _, key := range []string{"GEMINI_API_KEY", "LLM_MODEL", "LLM_TIMEOUT", "SERVER_PORT", "SITE_BRAND_SUFFIX", "SITE_DEFAULT_LANG"} {
		unsetEnv(t, key)
	}

	cfg, err := NewConfig(slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}

	if cfg.ServerPort != 8080 {
		t.Errorf("ServerPort = %d, want 8080", cfg.ServerPort)
	}
	if cfg.LLM.Model != "gemini-1.5-flash" {
		t.Errorf("LLM.Model = %q, want gemini-1.5-flash", cfg.LLM.Model)
	}
	if cfg.LLM.Timeout != 60*time.Second {
		t.Errorf("LLM.Timeout = %v, want 60s", cfg.LLM.Timeout)
	}
	if cfg.LLM.IsConfigured() {
		t.Error("LLM.IsConfigured() = true without GEMINI_API_KEY")
	}
	if cfg.Site.BrandSuffix != "Synctech - Inovação e Tecnologia" {
		t.Errorf("Site.BrandSuffix = %q", cfg.Site.BrandSuffix)
	}
	if cfg.Site.DefaultLang != "pt" {
		t.Errorf("Site.DefaultLang = %q, want pt", cfg.Site.DefaultLang)
	}
}

func TestNewConfig_FromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "abc123")
	t.Setenv("LLM_MODEL", "gemini-2.0-flash")
	t.Setenv("LLM_TIMEOUT", "15s")
	t.Setenv("SITE_BASE_URL", "https://staging.synctech.ao")
	t.Setenv("SERVER_PORT", "9000")

	cfg, err := NewConfig(slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}

	if !cfg.LLM.IsConfigured() {
		t.Error("LLM.IsConfigured() = false with GEMINI_API_KEY set")
	}
	if cfg.LLM.Model != "gemini-2.0-flash" {
		t.Errorf("LLM.Model = %q", cfg.LLM.Model)
	}
	if cfg.LLM.Timeout != 15*time.Second {
		t.Errorf("LLM.Timeout = %v, want 15s", cfg.LLM.Timeout)
	}
	if cfg.Site.BaseURL != "https://staging.synctech.ao" {
		t.Errorf("Site.BaseURL = %q", cfg.Site.BaseURL)
	}
	if cfg.ServerPort != 9000 {
		t.Errorf("ServerPort = %d, want 9000", cfg.ServerPort)
	}
}

func TestNewConfig_InvalidDuration(t *testing.T) {
	t.Setenv("LLM_TIMEOUT", "soon")

	if _, err := NewConfig(slog.New(slog.NewTextHandler(io.Discard, nil))); err == nil {
		t.Error("NewConfig() error = nil, want parse error")
	}
}

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	orig, ok := os.LookupEnv(key)
	os.Unsetenv(key)
	t.Cleanup(func() {
		if ok {
			os.Setenv(key, orig)
		}
	})
}
