package repository

import (
	"context"

	"souqtech/internal/domain/entity"
)

type MessageRepository interface {
	List(ctx context.Context) ([]*entity.Message, error)
	Create(ctx context.Context, message *entity.Message) (*entity.Message, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) (*entity.Message, error)
	Delete(ctx context.Context, id string) error
}
