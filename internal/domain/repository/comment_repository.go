package repository

import (
	"context"

	"souqtech/internal/domain/entity"
)

type CommentRepository interface {
	List(ctx context.Context) ([]*entity.Comment, error)
	Create(ctx context.Context, comment *entity.Comment) (*entity.Comment, error)
	Delete(ctx context.Context, id string) error
}
