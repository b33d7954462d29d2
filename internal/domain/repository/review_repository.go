package repository

import (
	"context"

	"souqtech/internal/domain/entity"
)

type ReviewRepository interface {
	List(ctx context.Context) ([]*entity.Review, error)
	Create(ctx context.Context, review *entity.Review) (*entity.Review, error)
	Delete(ctx context.Context, id string) error
}
