package handler

import (
	"souqtech/internal/usecase"
	"souqtech/pkg/errors"
	"souqtech/pkg/response"

	"github.com/labstack/echo/v4"
)

type CartHandler struct {
	store *usecase.Store
}

func NewCartHandler(store *usecase.Store) *CartHandler {
	return &CartHandler{
		store: store,
	}
}

type addToCartRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

type updateCartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type favoriteRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

func (h *CartHandler) GetCart(c echo.Context) error {
	return response.Success(c, map[string]interface{}{
		"items": h.store.Cart(),
	})
}

// AddToCart resolves the product from the loaded catalog; an unknown id is
// rejected rather than stored as an empty line.
func (h *CartHandler) AddToCart(c echo.Context) error {
	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	for _, product := range h.store.Products.Items() {
		if product.ID == req.ProductID {
			h.store.AddToCart(*product)
			return response.Success(c, map[string]interface{}{
				"items": h.store.Cart(),
			})
		}
	}

	return response.Error(c, errors.NotFound("Product not found", nil))
}

func (h *CartHandler) UpdateCartQuantity(c echo.Context) error {
	productID := c.Param("productId")

	var req updateCartQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	h.store.UpdateCartQuantity(productID, req.Quantity)
	return response.Success(c, map[string]interface{}{
		"items": h.store.Cart(),
	})
}

func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	productID := c.Param("productId")

	h.store.RemoveFromCart(productID)
	return response.Success(c, map[string]interface{}{
		"items": h.store.Cart(),
	})
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	h.store.ClearCart()
	return response.Success(c, map[string]interface{}{
		"items": h.store.Cart(),
	})
}

func (h *CartHandler) GetFavorites(c echo.Context) error {
	return response.Success(c, map[string]interface{}{
		"items": h.store.Favorites(),
	})
}

func (h *CartHandler) AddToFavorites(c echo.Context) error {
	var req favoriteRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	h.store.AddToFavorites(req.ProductID)
	return response.Success(c, map[string]interface{}{
		"items": h.store.Favorites(),
	})
}

func (h *CartHandler) RemoveFromFavorites(c echo.Context) error {
	productID := c.Param("productId")

	h.store.RemoveFromFavorites(productID)
	return response.Success(c, map[string]interface{}{
		"items": h.store.Favorites(),
	})
}
