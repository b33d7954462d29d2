package router

import (
	"souqtech/internal/adapter/api/handler"
	"souqtech/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupOfferRouter(e *echo.Echo, adminMiddleware *middleware.AdminMiddleware) {
	offerHandler := handler.GetOfferHandler()

	e.GET("/v1/offers", offerHandler.ListOffers)

	admin := e.Group("/v1/admin/offers")
	admin.Use(adminMiddleware.AdminOnly)
	admin.POST("", offerHandler.CreateOffer)
	admin.PUT("/:id", offerHandler.UpdateOffer)
	admin.DELETE("/:id", offerHandler.DeleteOffer)
}
