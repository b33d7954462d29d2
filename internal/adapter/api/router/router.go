package router

import (
	"souqtech/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, adminMiddleware *middleware.AdminMiddleware) {
	SetupAuthRouter(e)
	SetupProductRouter(e, adminMiddleware)
	SetupReviewRouter(e, adminMiddleware)
	SetupMessageRouter(e, adminMiddleware)
	SetupCommentRouter(e, adminMiddleware)
	SetupFAQRouter(e, adminMiddleware)
	SetupGalleryRouter(e, adminMiddleware)
	SetupOfferRouter(e, adminMiddleware)
	SetupTestimonialRouter(e, adminMiddleware)
	SetupCartRouter(e)
	SetupSettingsRouter(e)
	SetupHealthRouter(e)
}
