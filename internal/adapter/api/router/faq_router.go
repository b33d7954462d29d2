package router

import (
	"souqtech/internal/adapter/api/handler"
	"souqtech/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupFAQRouter(e *echo.Echo, adminMiddleware *middleware.AdminMiddleware) {
	faqHandler := handler.GetFAQHandler()

	e.GET("/v1/faqs", faqHandler.ListFAQs)

	admin := e.Group("/v1/admin/faqs")
	admin.Use(adminMiddleware.AdminOnly)
	admin.POST("", faqHandler.CreateFAQ)
	admin.PUT("/:id", faqHandler.UpdateFAQ)
	admin.DELETE("/:id", faqHandler.DeleteFAQ)
}
