package handler

import (
	"souqtech/internal/usecase"
	"souqtech/pkg/response"

	"github.com/labstack/echo/v4"
)

type SettingsHandler struct {
	store *usecase.Store
}

func NewSettingsHandler(store *usecase.Store) *SettingsHandler {
	return &SettingsHandler{
		store: store,
	}
}

type setLanguageRequest struct {
	Language string `json:"language" validate:"required,oneof=ar en"`
}

func (h *SettingsHandler) GetLanguage(c echo.Context) error {
	return response.Success(c, map[string]string{
		"language":  h.store.Language(),
		"direction": h.store.Direction(),
	})
}

func (h *SettingsHandler) SetLanguage(c echo.Context) error {
	var req setLanguageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.store.SetLanguage(req.Language); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"language":  h.store.Language(),
		"direction": h.store.Direction(),
	})
}
