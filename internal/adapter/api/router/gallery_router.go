package router

import (
	"souqtech/internal/adapter/api/handler"
	"souqtech/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupGalleryRouter(e *echo.Echo, adminMiddleware *middleware.AdminMiddleware) {
	galleryHandler := handler.GetGalleryHandler()

	e.GET("/v1/gallery", galleryHandler.ListGalleryItems)

	admin := e.Group("/v1/admin/gallery")
	admin.Use(adminMiddleware.AdminOnly)
	admin.POST("", galleryHandler.CreateGalleryItem)
	admin.PUT("/:id", galleryHandler.UpdateGalleryItem)
	admin.DELETE("/:id", galleryHandler.DeleteGalleryItem)
}
