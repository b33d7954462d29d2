package router

import (
	"souqtech/internal/adapter/api/handler"
	"souqtech/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupReviewRouter(e *echo.Echo, adminMiddleware *middleware.AdminMiddleware) {
	reviewHandler := handler.GetReviewHandler()

	reviews := e.Group("/v1/reviews")
	reviews.GET("", reviewHandler.ListReviews)
	reviews.POST("", reviewHandler.CreateReview)

	e.GET("/v1/products/:productId/rating", reviewHandler.GetProductRating)

	admin := e.Group("/v1/admin/reviews")
	admin.Use(adminMiddleware.AdminOnly)
	admin.DELETE("/:id", reviewHandler.DeleteReview)
}
