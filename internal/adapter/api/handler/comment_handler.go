package handler

import (
	"souqtech/internal/usecase"
	"souqtech/pkg/response"

	"github.com/labstack/echo/v4"
)

type CommentHandler struct {
	store *usecase.Store
}

func NewCommentHandler(store *usecase.Store) *CommentHandler {
	return &CommentHandler{
		store: store,
	}
}

type createCommentRequest struct {
	CustomerName string `json:"customer_name" validate:"required"`
	CommentText  string `json:"comment_text" validate:"required"`
	ProductID    string `json:"product_id" validate:"required"`
}

func (h *CommentHandler) ListComments(c echo.Context) error {
	return response.Success(c, map[string]interface{}{
		"items":   h.store.CommentViews(),
		"loading": h.store.Comments.Loading(),
	})
}

func (h *CommentHandler) CreateComment(c echo.Context) error {
	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	comment, err := h.store.Comments.Add(c.Request().Context(), usecase.CreateCommentInput{
		CustomerName: req.CustomerName,
		CommentText:  req.CommentText,
		ProductID:    req.ProductID,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, usecase.NewCommentView(comment))
}

func (h *CommentHandler) DeleteComment(c echo.Context) error {
	id := c.Param("id")

	if err := h.store.Comments.Delete(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"id": id})
}
