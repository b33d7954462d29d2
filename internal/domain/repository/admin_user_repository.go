package repository

import (
	"context"

	"souqtech/internal/domain/entity"
)

type AdminUserRepository interface {
	// GetByUsername is a single-row lookup used by the login flow.
	GetByUsername(ctx context.Context, username string) (*entity.AdminUser, error)
}
