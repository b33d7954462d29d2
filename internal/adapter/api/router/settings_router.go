package router

import (
	"souqtech/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupSettingsRouter(e *echo.Echo) {
	settingsHandler := handler.GetSettingsHandler()

	settings := e.Group("/v1/settings")
	settings.GET("/language", settingsHandler.GetLanguage)
	settings.PUT("/language", settingsHandler.SetLanguage)
}
