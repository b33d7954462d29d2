package repository

import (
	"context"

	"souqtech/internal/domain/entity"
)

type GalleryRepository interface {
	List(ctx context.Context) ([]*entity.GalleryItem, error)
	Create(ctx context.Context, item *entity.GalleryItem) (*entity.GalleryItem, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) (*entity.GalleryItem, error)
	Delete(ctx context.Context, id string) error
}
