package repository

import (
	"context"

	"souqtech/internal/domain/entity"
)

type TestimonialRepository interface {
	// List returns approved testimonials ordered by created_at descending.
	List(ctx context.Context) ([]*entity.Testimonial, error)
	Create(ctx context.Context, testimonial *entity.Testimonial) (*entity.Testimonial, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) (*entity.Testimonial, error)
	Delete(ctx context.Context, id string) error
}
