package handler

import (
	"legaldocai-be/internal/pkg/logger"
	"legaldocai-be/internal/pkg/serverutils"
	internalWS "legaldocai-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ProgressHandler upgrades /ws/progress connections. The browser tab
// generates its own client id and passes it as a query param; upload
// progress and document lifecycle events are pushed to that id.
type ProgressHandler struct {
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewProgressHandler(hub *internalWS.Hub, log logger.ILogger) *ProgressHandler {
	return &ProgressHandler{
		hub:    hub,
		logger: log,
	}
}

func (h *ProgressHandler) RegisterRoutes(app *fiber.App) {
	app.Use("/ws/progress", func(ctx *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(ctx) {
			return fiber.ErrUpgradeRequired
		}
		clientID, err := uuid.Parse(ctx.Query("client_id"))
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).
				JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Missing or invalid client_id"))
		}
		ctx.Locals("client_id", clientID)
		return ctx.Next()
	})

	app.Get("/ws/progress", websocket.New(func(conn *websocket.Conn) {
		clientID := conn.Locals("client_id").(uuid.UUID)
		h.logger.Info("ProgressHandler", "WS connection established", map[string]interface{}{"client_id": clientID})
		internalWS.ServeWs(h.hub, conn, clientID)
	}))
}
