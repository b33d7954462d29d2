package router

import (
	"souqtech/internal/adapter/api/handler"
	"souqtech/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupTestimonialRouter(e *echo.Echo, adminMiddleware *middleware.AdminMiddleware) {
	testimonialHandler := handler.GetTestimonialHandler()

	testimonials := e.Group("/v1/testimonials")
	testimonials.GET("", testimonialHandler.ListTestimonials)
	testimonials.POST("", testimonialHandler.CreateTestimonial)

	admin := e.Group("/v1/admin/testimonials")
	admin.Use(adminMiddleware.AdminOnly)
	admin.PATCH("/:id/approve", testimonialHandler.ApproveTestimonial)
	admin.DELETE("/:id", testimonialHandler.DeleteTestimonial)
}
