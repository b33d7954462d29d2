package repository

import (
	"context"

	"souqtech/internal/domain/entity"
)

type FAQRepository interface {
	// List returns active FAQs ordered by order_index ascending.
	List(ctx context.Context) ([]*entity.FAQ, error)
	Create(ctx context.Context, faq *entity.FAQ) (*entity.FAQ, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) (*entity.FAQ, error)
	Delete(ctx context.Context, id string) error
}
