package health

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ganilson/synctechSite/internal/config"
	"github.com/ganilson/synctechSite/internal/version"
	"github.com/ganilson/synctechSite/pkg/llm"
)

// Handler handles health check requests
type Handler struct {
	provider llm.Provider
	cfg      *config.Config
	startAt  time.Time
}

// NewHandler creates a new health handler. provider may be nil.
func NewHandler(provider llm.Provider, cfg *config.Config) *Handler {
	return &Handler{
		provider: provider,
		cfg:      cfg,
		startAt:  time.Now(),
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string           `json:"status"`
	Timestamp string           `json:"timestamp"`
	Uptime    string           `json:"uptime"`
	Version   string           `json:"version"`
	Checks    map[string]Check `json:"checks"`
}

// Check represents an individual health check result
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Health returns the overall service health.
// A missing LLM credential degrades the chat relay but not the site,
// so the service stays healthy.
// @Summary      Get service health
// @Tags         health
// @Produce      json
// @Success      200 {object} HealthResponse "Service is healthy"
// @Router       /health [get]
func (h *Handler) Health(c echo.Context) error {
	llmCheck := Check{Status: "healthy"}
	if h.provider == nil || !h.provider.IsConfigured() {
		llmCheck = Check{Status: "degraded", Message: "GEMINI_API_KEY not configured"}
	}

	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.startAt).String(),
		Version:   version.Version,
		Checks: map[string]Check{
			"llm": llmCheck,
		},
	})
}

// Healthz returns a simple health check (for k8s liveness probe)
// @Summary      Liveness probe
// @Tags         health
// @Produce      plain
// @Success      200 {string} string "OK"
// @Router       /healthz [get]
func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// Ready returns readiness status (for k8s readiness probe)
// @Summary      Readiness probe
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]any "Service is ready"
// @Router       /ready [get]
func (h *Handler) Ready(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ready",
	})
}

// Version returns build information
// @Summary      Build information
// @Tags         health
// @Produce      json
// @Success      200 {object} version.VersionInfo
// @Router       /api/version [get]
func (h *Handler) Version(c echo.Context) error {
	return c.JSON(http.StatusOK, version.Info())
}
