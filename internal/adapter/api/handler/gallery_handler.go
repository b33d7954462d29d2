package handler

import (
	"souqtech/internal/usecase"
	"souqtech/pkg/response"

	"github.com/labstack/echo/v4"
)

type GalleryHandler struct {
	store *usecase.Store
}

func NewGalleryHandler(store *usecase.Store) *GalleryHandler {
	return &GalleryHandler{
		store: store,
	}
}

type createGalleryItemRequest struct {
	Title         string `json:"title" validate:"required"`
	TitleEn       string `json:"title_en"`
	Description   string `json:"description"`
	DescriptionEn string `json:"description_en"`
	ImageURL      string `json:"image_url" validate:"required"`
	Category      string `json:"category"`
}

type updateGalleryItemRequest struct {
	Title         *string `json:"title"`
	TitleEn       *string `json:"title_en"`
	Description   *string `json:"description"`
	DescriptionEn *string `json:"description_en"`
	ImageURL      *string `json:"image_url"`
	Category      *string `json:"category"`
}

func (r *updateGalleryItemRequest) updates() map[string]interface{} {
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
	if r.ImageURL != nil {
		updates["image_url"] = *r.ImageURL
	}
	if r.Category != nil {
		updates["category"] = *r.Category
	}
	return updates
}

func (h *GalleryHandler) ListGalleryItems(c echo.Context) error {
	return response.Success(c, map[string]interface{}{
		"items":   h.store.GalleryItemViews(),
		"loading": h.store.Gallery.Loading(),
	})
}

func (h *GalleryHandler) CreateGalleryItem(c echo.Context) error {
	var req createGalleryItemRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	item, err := h.store.Gallery.Add(c.Request().Context(), usecase.CreateGalleryItemInput{
		Title:         req.Title,
		TitleEn:       req.TitleEn,
		Description:   req.Description,
		DescriptionEn: req.DescriptionEn,
		ImageURL:      req.ImageURL,
		Category:      req.Category,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, usecase.NewGalleryItemView(item))
}

func (h *GalleryHandler) UpdateGalleryItem(c echo.Context) error {
	id := c.Param("id")

	var req updateGalleryItemRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	item, err := h.store.Gallery.Update(c.Request().Context(), id, req.updates())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, usecase.NewGalleryItemView(item))
}

func (h *GalleryHandler) DeleteGalleryItem(c echo.Context) error {
	id := c.Param("id")

	if err := h.store.Gallery.Delete(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"id": id})
}
