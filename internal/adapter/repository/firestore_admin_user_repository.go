package repository

import (
	"context"

	"google.golang.org/api/iterator"

	"cloud.google.com/go/firestore"

	"souqtech/internal/domain/entity"
	"souqtech/internal/domain/repository"
	"souqtech/pkg/errors"
)

type firestoreAdminUserRepository struct {
	client *firestore.Client
}

func NewFirestoreAdminUserRepository(client *firestore.Client) repository.AdminUserRepository {
	return &firestoreAdminUserRepository{
		client: client,
	}
}

func (r *firestoreAdminUserRepository) GetByUsername(ctx context.Context, username string) (*entity.AdminUser, error) {
	query := r.client.Collection("admin_users").Where("username", "==", username).Limit(1)
	iter := query.Documents(ctx)
	doc, err := iter.Next()

	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("Admin user", nil)
		}
		return nil, errors.Internal("Failed to query admin user", err)
	}

	var admin entity.AdminUser
	if err := doc.DataTo(&admin); err != nil {
		return nil, errors.Internal("Failed to parse admin user data", err)
	}

	return &admin, nil
}
