package tracing

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/ganilson/synctechSite/internal/config"
)

func TestSampler(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{1.0, "AlwaysOnSampler"},
		{2.0, "AlwaysOnSampler"},
		{0, "AlwaysOffSampler"},
		{-1, "AlwaysOffSampler"},
		{0.5, "ParentBased{root:TraceIDRatioBased{0.5}"},
	}
	for _, tt := range tests {
		if got := sampler(tt.rate).Description(); !strings.HasPrefix(got, tt.want) {
			t.Errorf("sampler(%v) = %q, want %q", tt.rate, got, tt.want)
		}
	}
}

func TestSkipTracing(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/health", true},
		{"/healthz", true},
		{"/ready", true},
		{"/metrics", true},
		{"/static/styles.css", true},
		{"/api/chat", false},
		{"/", false},
		{"/blog/cloud-angola", false},
	}
	e := echo.New()
	for _, tt := range tests {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, tt.path, nil), httptest.NewRecorder())
		if got := skipTracing(c); got != tt.want {
			t.Errorf("skipTracing(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestNewTracerProvider_Disabled(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	res, err := NewTracerProvider(&config.Config{}, log)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.SDKProvider != nil {
		t.Error("expected no SDK provider when tracing is disabled")
	}
	if _, ok := otel.GetTracerProvider().(noop.TracerProvider); !ok {
		t.Errorf("global provider = %T, want noop.TracerProvider", otel.GetTracerProvider())
	}
}

func TestRegisterEchoMiddleware_Disabled(t *testing.T) {
	e := echo.New()
	RegisterEchoMiddleware(e, &config.Config{})

	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
