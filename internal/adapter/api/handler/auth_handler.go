package handler

import (
	"souqtech/internal/usecase"
	"souqtech/pkg/response"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	store *usecase.Store
}

func NewAuthHandler(store *usecase.Store) *AuthHandler {
	return &AuthHandler{
		store: store,
	}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	token, err := h.store.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"token":    token,
		"is_admin": true,
	})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	h.store.Logout()
	return response.Success(c, map[string]interface{}{
		"is_admin": false,
	})
}

func (h *AuthHandler) Session(c echo.Context) error {
	return response.Success(c, map[string]interface{}{
		"is_admin": h.store.IsAdmin(),
	})
}
