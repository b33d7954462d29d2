package repository

import (
	"context"

	"souqtech/internal/domain/entity"
)

type OfferRepository interface {
	// List returns active offers ordered by created_at descending.
	List(ctx context.Context) ([]*entity.Offer, error)
	Create(ctx context.Context, offer *entity.Offer) (*entity.Offer, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) (*entity.Offer, error)
	Delete(ctx context.Context, id string) error
}
