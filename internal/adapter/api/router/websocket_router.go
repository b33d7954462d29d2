package router

import (
	"souqtech/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupWebSocketRouter(e *echo.Echo) {
	notificationHandler := handler.GetNotificationHandler()

	e.GET("/v1/ws/notifications", notificationHandler.Subscribe)
}
