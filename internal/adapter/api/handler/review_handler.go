package handler

import (
	"souqtech/internal/usecase"
	"souqtech/pkg/response"

	"github.com/labstack/echo/v4"
)

type ReviewHandler struct {
	store *usecase.Store
}

func NewReviewHandler(store *usecase.Store) *ReviewHandler {
	return &ReviewHandler{
		store: store,
	}
}

type createReviewRequest struct {
	ProductID    string `json:"product_id" validate:"required"`
	CustomerName string `json:"customer_name" validate:"required"`
	Rating       int    `json:"rating" validate:"required,min=1,max=5"`
	ReviewText   string `json:"review_text"`
}

func (h *ReviewHandler) ListReviews(c echo.Context) error {
	return response.Success(c, map[string]interface{}{
		"items":   h.store.ReviewViews(),
		"loading": h.store.Reviews.Loading(),
	})
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	review, err := h.store.Reviews.Add(c.Request().Context(), usecase.CreateReviewInput{
		ProductID:    req.ProductID,
		CustomerName: req.CustomerName,
		Rating:       req.Rating,
		ReviewText:   req.ReviewText,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, usecase.NewReviewView(review))
}

func (h *ReviewHandler) GetProductRating(c echo.Context) error {
	productID := c.Param("productId")

	return response.Success(c, map[string]interface{}{
		"product_id": productID,
		"average":    h.store.Reviews.AverageRating(productID),
	})
}

func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	id := c.Param("id")

	if err := h.store.Reviews.Delete(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"id": id})
}
