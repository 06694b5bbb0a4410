package chat

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// maxBodySize caps the chat request body
const maxBodySize = "32K"

// RegisterRoutes registers chat routes
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.POST("/api/chat", h.Chat, middleware.BodyLimit(maxBodySize))
}
