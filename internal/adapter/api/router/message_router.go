package router

import (
	"souqtech/internal/adapter/api/handler"
	"souqtech/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupMessageRouter(e *echo.Echo, adminMiddleware *middleware.AdminMiddleware) {
	messageHandler := handler.GetMessageHandler()

	// Visitors submit messages; the inbox itself is back-office only.
	e.POST("/v1/messages", messageHandler.CreateMessage)

	admin := e.Group("/v1/admin/messages")
	admin.Use(adminMiddleware.AdminOnly)
	admin.GET("", messageHandler.ListMessages)
	admin.PATCH("/:id/read", messageHandler.MarkMessageRead)
	admin.DELETE("/:id", messageHandler.DeleteMessage)
}
