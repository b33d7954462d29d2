package router

import (
	"souqtech/internal/adapter/api/handler"
	"souqtech/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupCommentRouter(e *echo.Echo, adminMiddleware *middleware.AdminMiddleware) {
	commentHandler := handler.GetCommentHandler()

	comments := e.Group("/v1/comments")
	comments.GET("", commentHandler.ListComments)
	comments.POST("", commentHandler.CreateComment)

	admin := e.Group("/v1/admin/comments")
	admin.Use(adminMiddleware.AdminOnly)
	admin.DELETE("/:id", commentHandler.DeleteComment)
}
