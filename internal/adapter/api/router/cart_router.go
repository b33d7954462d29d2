package router

import (
	"souqtech/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupCartRouter(e *echo.Echo) {
	cartHandler := handler.GetCartHandler()

	cart := e.Group("/v1/cart")
	cart.GET("", cartHandler.GetCart)
	cart.POST("/items", cartHandler.AddToCart)
	cart.PUT("/items/:productId", cartHandler.UpdateCartQuantity)
	cart.DELETE("/items/:productId", cartHandler.RemoveFromCart)
	cart.DELETE("", cartHandler.ClearCart)

	favorites := e.Group("/v1/favorites")
	favorites.GET("", cartHandler.GetFavorites)
	favorites.POST("", cartHandler.AddToFavorites)
	favorites.DELETE("/:productId", cartHandler.RemoveFromFavorites)
}
