package repository

import (
	"context"

	"souqtech/internal/domain/entity"
)

type ProductRepository interface {
	// List returns the full collection ordered by created_at descending.
	List(ctx context.Context) ([]*entity.Product, error)
	// Create stores a new product and returns it with the server-assigned
	// id and timestamps filled in.
	Create(ctx context.Context, product *entity.Product) (*entity.Product, error)
	// Update applies the given field changes and returns the updated row.
	Update(ctx context.Context, id string, updates map[string]interface{}) (*entity.Product, error)
	Delete(ctx context.Context, id string) error
}
