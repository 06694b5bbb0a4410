package chat

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ganilson/synctechSite/pkg/apperror"
	"github.com/ganilson/synctechSite/pkg/logger"
)

// Handler handles chat HTTP requests
type Handler struct {
	svc *Service
	log *slog.Logger
}

// NewHandler creates a new chat handler
func NewHandler(svc *Service, log *slog.Logger) *Handler {
	return &Handler{
		svc: svc,
		log: log.With(logger.Scope("chat.handler")),
	}
}

// Chat handles POST /api/chat
// @Summary      Ask the site assistant
// @Description  Relays one message to the LLM provider with the Synctech system prompt
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        request body Request true "Message and language (en or pt)"
// @Success      200 {object} Response "Generated reply"
// @Failure      400 {object} map[string]string "Empty message or invalid body"
// @Failure      500 {object} map[string]string "Provider not configured or generation failed"
// @Router       /api/chat [post]
func (h *Handler) Chat(c echo.Context) error {
	var req Request
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		h.log.Debug("invalid chat body", logger.Error(err))
		lang := ParseLanguage(c.QueryParam("lang"))
		return apperror.NewBadRequest(h.svc.Prompts().InvalidBody(lang))
	}

	resp, err := h.svc.Reply(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}
