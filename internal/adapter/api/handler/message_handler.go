package handler

import (
	"souqtech/internal/usecase"
	"souqtech/pkg/response"

	"github.com/labstack/echo/v4"
)

type MessageHandler struct {
	store *usecase.Store
}

func NewMessageHandler(store *usecase.Store) *MessageHandler {
	return &MessageHandler{
		store: store,
	}
}

type createMessageRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone"`
	Message   string `json:"message" validate:"required"`
	ProductID string `json:"product_id"`
}

func (h *MessageHandler) ListMessages(c echo.Context) error {
	return response.Success(c, map[string]interface{}{
		"items":   h.store.MessageViews(),
		"loading": h.store.Messages.Loading(),
	})
}

func (h *MessageHandler) CreateMessage(c echo.Context) error {
	var req createMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	message, err := h.store.Messages.Add(c.Request().Context(), usecase.CreateMessageInput{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		ProductID: req.ProductID,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, usecase.NewMessageView(message))
}

func (h *MessageHandler) MarkMessageRead(c echo.Context) error {
	id := c.Param("id")

	message, err := h.store.Messages.MarkAsRead(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, usecase.NewMessageView(message))
}

func (h *MessageHandler) DeleteMessage(c echo.Context) error {
	id := c.Param("id")

	if err := h.store.Messages.Delete(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"id": id})
}
