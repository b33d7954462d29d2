package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"souqtech/internal/domain/entity"
	"souqtech/internal/domain/repository"
	"souqtech/pkg/errors"

	"github.com/google/uuid"
)

type firestoreGalleryRepository struct {
	client *firestore.Client
}

func NewFirestoreGalleryRepository(client *firestore.Client) repository.GalleryRepository {
	return &firestoreGalleryRepository{
		client: client,
	}
}

func (r *firestoreGalleryRepository) List(ctx context.Context) ([]*entity.GalleryItem, error) {
	query := r.client.Collection("gallery_items").OrderBy("created_at", firestore.Desc)

	iter := query.Documents(ctx)
	var items []*entity.GalleryItem

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate gallery items", err)
		}
		var item entity.GalleryItem
		if err := doc.DataTo(&item); err != nil {
			return nil, errors.Internal("Failed to parse gallery item data", err)
		}
		items = append(items, &item)
	}

	return items, nil
}

func (r *firestoreGalleryRepository) Create(ctx context.Context, item *entity.GalleryItem) (*entity.GalleryItem, error) {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.CreatedAt = time.Now()

	_, err := r.client.Collection("gallery_items").Doc(item.ID).Set(ctx, item)
	if err != nil {
		return nil, errors.Internal("Failed to create gallery item", err)
	}

	return item, nil
}

func (r *firestoreGalleryRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (*entity.GalleryItem, error) {
	fieldUpdates := make([]firestore.Update, 0, len(updates))
	for field, value := range updates {
		fieldUpdates = append(fieldUpdates, firestore.Update{Path: field, Value: value})
	}

	_, err := r.client.Collection("gallery_items").Doc(id).Update(ctx, fieldUpdates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Gallery item", err)
		}
		return nil, errors.Internal("Failed to update gallery item", err)
	}

	doc, err := r.client.Collection("gallery_items").Doc(id).Get(ctx)
	if err != nil {
		return nil, errors.Internal("Failed to get updated gallery item", err)
	}

	var item entity.GalleryItem
	if err := doc.DataTo(&item); err != nil {
		return nil, errors.Internal("Failed to parse gallery item data", err)
	}

	return &item, nil
}

func (r *firestoreGalleryRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("gallery_items").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete gallery item", err)
	}

	return nil
}
