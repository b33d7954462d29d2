package router

import (
	"souqtech/internal/adapter/api/handler"
	"souqtech/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupFileRouter(e *echo.Echo, adminMiddleware *middleware.AdminMiddleware) {
	fileHandler := handler.GetFileHandler()

	admin := e.Group("/v1/admin/files")
	admin.Use(adminMiddleware.AdminOnly)
	admin.POST("/images", fileHandler.UploadImage)
	admin.DELETE("/images", fileHandler.DeleteImage)
}
