package handler

import (
	"time"

	"souqtech/internal/usecase"
	"souqtech/pkg/response"

	"github.com/labstack/echo/v4"
)

type OfferHandler struct {
	store *usecase.Store
}

func NewOfferHandler(store *usecase.Store) *OfferHandler {
	return &OfferHandler{
		store: store,
	}
}

type createOfferRequest struct {
	Title              string     `json:"title" validate:"required"`
	TitleEn            string     `json:"title_en"`
	Description        string     `json:"description"`
	DescriptionEn      string     `json:"description_en"`
	DiscountPercentage float64    `json:"discount_percentage" validate:"gte=0,lte=100"`
	ImageURL           string     `json:"image_url"`
	ExpiresAt          *time.Time `json:"expires_at"`
}

type updateOfferRequest struct {
	Title              *string    `json:"title"`
	TitleEn            *string    `json:"title_en"`
	Description        *string    `json:"description"`
	DescriptionEn      *string    `json:"description_en"`
	DiscountPercentage *float64   `json:"discount_percentage"`
	ImageURL           *string    `json:"image_url"`
	ExpiresAt          *time.Time `json:"expires_at"`
	IsActive           *bool      `json:"is_active"`
}

func (r *updateOfferRequest) updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Title != nil {
		updates["title"] = *r.Title
	}
	if r.TitleEn != nil {
		updates["title_en"] = *r.TitleEn
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.DescriptionEn != nil {
		updates["description_en"] = *r.DescriptionEn
	}
	if r.DiscountPercentage != nil {
		updates["discount_percentage"] = *r.DiscountPercentage
	}
	if r.ImageURL != nil {
		updates["image_url"] = *r.ImageURL
	}
	if r.ExpiresAt != nil {
		updates["expires_at"] = *r.ExpiresAt
	}
	if r.IsActive != nil {
		updates["is_active"] = *r.IsActive
	}
	return updates
}

func (h *OfferHandler) ListOffers(c echo.Context) error {
	return response.Success(c, map[string]interface{}{
		"items":   h.store.OfferViews(),
		"loading": h.store.Offers.Loading(),
	})
}

func (h *OfferHandler) CreateOffer(c echo.Context) error {
	var req createOfferRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	offer, err := h.store.Offers.Add(c.Request().Context(), usecase.CreateOfferInput{
		Title:              req.Title,
		TitleEn:            req.TitleEn,
		Description:        req.Description,
		DescriptionEn:      req.DescriptionEn,
		DiscountPercentage: req.DiscountPercentage,
		ImageURL:           req.ImageURL,
		ExpiresAt:          req.ExpiresAt,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, usecase.NewOfferView(offer))
}

func (h *OfferHandler) UpdateOffer(c echo.Context) error {
	id := c.Param("id")

	var req updateOfferRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	offer, err := h.store.Offers.Update(c.Request().Context(), id, req.updates())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, usecase.NewOfferView(offer))
}

func (h *OfferHandler) DeleteOffer(c echo.Context) error {
	id := c.Param("id")

	if err := h.store.Offers.Delete(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"id": id})
}
