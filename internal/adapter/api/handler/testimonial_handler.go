package handler

import (
	"souqtech/internal/usecase"
	"souqtech/pkg/response"

	"github.com/labstack/echo/v4"
)

type TestimonialHandler struct {
	store *usecase.Store
}

func NewTestimonialHandler(store *usecase.Store) *TestimonialHandler {
	return &TestimonialHandler{
		store: store,
	}
}

type createTestimonialRequest struct {
	CustomerName  string `json:"customer_name" validate:"required"`
	CustomerImage string `json:"customer_image"`
	Comment       string `json:"comment" validate:"required"`
	Rating        int    `json:"rating" validate:"required,min=1,max=5"`
}

func (h *TestimonialHandler) ListTestimonials(c echo.Context) error {
	return response.Success(c, map[string]interface{}{
		"items":   h.store.TestimonialViews(),
		"loading": h.store.Testimonials.Loading(),
	})
}

func (h *TestimonialHandler) CreateTestimonial(c echo.Context) error {
	var req createTestimonialRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	testimonial, err := h.store.Testimonials.Add(c.Request().Context(), usecase.CreateTestimonialInput{
		CustomerName:  req.CustomerName,
		CustomerImage: req.CustomerImage,
		Comment:       req.Comment,
		Rating:        req.Rating,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, testimonial)
}

func (h *TestimonialHandler) ApproveTestimonial(c echo.Context) error {
	id := c.Param("id")

	testimonial, err := h.store.Testimonials.Approve(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, testimonial)
}

func (h *TestimonialHandler) DeleteTestimonial(c echo.Context) error {
	id := c.Param("id")

	if err := h.store.Testimonials.Delete(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"id": id})
}
