package handler

import (
	"souqtech/internal/usecase"
	"souqtech/pkg/response"

	"github.com/labstack/echo/v4"
)

type FAQHandler struct {
	store *usecase.Store
}

func NewFAQHandler(store *usecase.Store) *FAQHandler {
	return &FAQHandler{
		store: store,
	}
}

type createFAQRequest struct {
	Question   string `json:"question" validate:"required"`
	QuestionEn string `json:"question_en"`
	Answer     string `json:"answer" validate:"required"`
	AnswerEn   string `json:"answer_en"`
	OrderIndex int    `json:"order_index"`
}

type updateFAQRequest struct {
	Question   *string `json:"question"`
	QuestionEn *string `json:"question_en"`
	Answer     *string `json:"answer"`
	AnswerEn   *string `json:"answer_en"`
	OrderIndex *int    `json:"order_index"`
	IsActive   *bool   `json:"is_active"`
}

func (r *updateFAQRequest) updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Question != nil {
		updates["question"] = *r.Question
	}
	if r.QuestionEn != nil {
		updates["question_en"] = *r.QuestionEn
	}
	if r.Answer != nil {
		updates["answer"] = *r.Answer
	}
	if r.AnswerEn != nil {
		updates["answer_en"] = *r.AnswerEn
	}
	if r.OrderIndex != nil {
		updates["order_index"] = *r.OrderIndex
	}
	if r.IsActive != nil {
		updates["is_active"] = *r.IsActive
	}
	return updates
}

func (h *FAQHandler) ListFAQs(c echo.Context) error {
	return response.Success(c, map[string]interface{}{
		"items":   h.store.FAQViews(),
		"loading": h.store.FAQs.Loading(),
	})
}

func (h *FAQHandler) CreateFAQ(c echo.Context) error {
	var req createFAQRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	faq, err := h.store.FAQs.Add(c.Request().Context(), usecase.CreateFAQInput{
		Question:   req.Question,
		QuestionEn: req.QuestionEn,
		Answer:     req.Answer,
		AnswerEn:   req.AnswerEn,
		OrderIndex: req.OrderIndex,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, usecase.NewFAQView(faq))
}

func (h *FAQHandler) UpdateFAQ(c echo.Context) error {
	id := c.Param("id")

	var req updateFAQRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	faq, err := h.store.FAQs.Update(c.Request().Context(), id, req.updates())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, usecase.NewFAQView(faq))
}

func (h *FAQHandler) DeleteFAQ(c echo.Context) error {
	id := c.Param("id")

	if err := h.store.FAQs.Delete(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"id": id})
}
