package handler

import (
	"souqtech/internal/usecase"
	"souqtech/pkg/response"

	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	store *usecase.Store
}

func NewProductHandler(store *usecase.Store) *ProductHandler {
	return &ProductHandler{
		store: store,
	}
}

type createProductRequest struct {
	Name          string  `json:"name" validate:"required"`
	NameEn        string  `json:"name_en"`
	Description   string  `json:"description"`
	DescriptionEn string  `json:"description_en"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	OriginalPrice float64 `json:"original_price"`
	ImageURL      string  `json:"image_url"`
	Category      string  `json:"category"`
	WhatsappText  string  `json:"whatsapp_text"`
	IsFeatured    bool    `json:"is_featured"`
	IsNew         bool    `json:"is_new"`
	IsBestseller  bool    `json:"is_bestseller"`
	IsOrganic     bool    `json:"is_organic"`
}

type updateProductRequest struct {
	Name          *string  `json:"name"`
	NameEn        *string  `json:"name_en"`
	Description   *string  `json:"description"`
	DescriptionEn *string  `json:"description_en"`
	Price         *float64 `json:"price"`
	OriginalPrice *float64 `json:"original_price"`
	ImageURL      *string  `json:"image_url"`
	Category      *string  `json:"category"`
	WhatsappText  *string  `json:"whatsapp_text"`
	IsFeatured    *bool    `json:"is_featured"`
	IsNew         *bool    `json:"is_new"`
	IsBestseller  *bool    `json:"is_bestseller"`
	IsOrganic     *bool    `json:"is_organic"`
}

func (r *updateProductRequest) updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.NameEn != nil {
		updates["name_en"] = *r.NameEn
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.DescriptionEn != nil {
		updates["description_en"] = *r.DescriptionEn
	}
	if r.Price != nil {
		updates["price"] = *r.Price
	}
	if r.OriginalPrice != nil {
		updates["original_price"] = *r.OriginalPrice
	}
	if r.ImageURL != nil {
		updates["image_url"] = *r.ImageURL
	}
	if r.Category != nil {
		updates["category"] = *r.Category
	}
	if r.WhatsappText != nil {
		updates["whatsapp_text"] = *r.WhatsappText
	}
	if r.IsFeatured != nil {
		updates["is_featured"] = *r.IsFeatured
	}
	if r.IsNew != nil {
		updates["is_new"] = *r.IsNew
	}
	if r.IsBestseller != nil {
		updates["is_bestseller"] = *r.IsBestseller
	}
	if r.IsOrganic != nil {
		updates["is_organic"] = *r.IsOrganic
	}
	return updates
}

// ListProducts returns the legacy-aliased product list plus the collection's
// loading flag so the storefront can render its empty state correctly.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	return response.Success(c, map[string]interface{}{
		"items":   h.store.ProductViews(),
		"loading": h.store.Products.Loading(),
	})
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.store.Products.Add(c.Request().Context(), usecase.CreateProductInput{
		Name:          req.Name,
		NameEn:        req.NameEn,
		Description:   req.Description,
		DescriptionEn: req.DescriptionEn,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		ImageURL:      req.ImageURL,
		Category:      req.Category,
		WhatsappText:  req.WhatsappText,
		IsFeatured:    req.IsFeatured,
		IsNew:         req.IsNew,
		IsBestseller:  req.IsBestseller,
		IsOrganic:     req.IsOrganic,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, usecase.NewProductView(product))
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id := c.Param("id")

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.store.Products.Update(c.Request().Context(), id, req.updates())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, usecase.NewProductView(product))
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id := c.Param("id")

	if err := h.store.DeleteProduct(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"id": id})
}
