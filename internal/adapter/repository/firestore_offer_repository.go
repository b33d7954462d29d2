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

type firestoreOfferRepository struct {
	client *firestore.Client
}

func NewFirestoreOfferRepository(client *firestore.Client) repository.OfferRepository {
	return &firestoreOfferRepository{
		client: client,
	}
}

func (r *firestoreOfferRepository) List(ctx context.Context) ([]*entity.Offer, error) {
	query := r.client.Collection("offers").
		Where("is_active", "==", true).
		OrderBy("created_at", firestore.Desc)

	iter := query.Documents(ctx)
	var offers []*entity.Offer

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate offers", err)
		}
		var offer entity.Offer
		if err := doc.DataTo(&offer); err != nil {
			return nil, errors.Internal("Failed to parse offer data", err)
		}
		offers = append(offers, &offer)
	}

	return offers, nil
}

func (r *firestoreOfferRepository) Create(ctx context.Context, offer *entity.Offer) (*entity.Offer, error) {
	if offer.ID == "" {
		offer.ID = uuid.New().String()
	}
	offer.CreatedAt = time.Now()

	_, err := r.client.Collection("offers").Doc(offer.ID).Set(ctx, offer)
	if err != nil {
		return nil, errors.Internal("Failed to create offer", err)
	}

	return offer, nil
}

func (r *firestoreOfferRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (*entity.Offer, error) {
	fieldUpdates := make([]firestore.Update, 0, len(updates))
	for field, value := range updates {
		fieldUpdates = append(fieldUpdates, firestore.Update{Path: field, Value: value})
	}

	_, err := r.client.Collection("offers").Doc(id).Update(ctx, fieldUpdates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Offer", err)
		}
		return nil, errors.Internal("Failed to update offer", err)
	}

	doc, err := r.client.Collection("offers").Doc(id).Get(ctx)
	if err != nil {
		return nil, errors.Internal("Failed to get updated offer", err)
	}

	var offer entity.Offer
	if err := doc.DataTo(&offer); err != nil {
		return nil, errors.Internal("Failed to parse offer data", err)
	}

	return &offer, nil
}

func (r *firestoreOfferRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("offers").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete offer", err)
	}

	return nil
}
