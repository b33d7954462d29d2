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

type firestoreFAQRepository struct {
	client *firestore.Client
}

func NewFirestoreFAQRepository(client *firestore.Client) repository.FAQRepository {
	return &firestoreFAQRepository{
		client: client,
	}
}

func (r *firestoreFAQRepository) List(ctx context.Context) ([]*entity.FAQ, error) {
	query := r.client.Collection("faqs").
		Where("is_active", "==", true).
		OrderBy("order_index", firestore.Asc)

	iter := query.Documents(ctx)
	var faqs []*entity.FAQ

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate FAQs", err)
		}
		var faq entity.FAQ
		if err := doc.DataTo(&faq); err != nil {
			return nil, errors.Internal("Failed to parse FAQ data", err)
		}
		faqs = append(faqs, &faq)
	}

	return faqs, nil
}

func (r *firestoreFAQRepository) Create(ctx context.Context, faq *entity.FAQ) (*entity.FAQ, error) {
	if faq.ID == "" {
		faq.ID = uuid.New().String()
	}
	faq.CreatedAt = time.Now()

	_, err := r.client.Collection("faqs").Doc(faq.ID).Set(ctx, faq)
	if err != nil {
		return nil, errors.Internal("Failed to create FAQ", err)
	}

	return faq, nil
}

func (r *firestoreFAQRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (*entity.FAQ, error) {
	fieldUpdates := make([]firestore.Update, 0, len(updates))
	for field, value := range updates {
		fieldUpdates = append(fieldUpdates, firestore.Update{Path: field, Value: value})
	}

	_, err := r.client.Collection("faqs").Doc(id).Update(ctx, fieldUpdates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("FAQ", err)
		}
		return nil, errors.Internal("Failed to update FAQ", err)
	}

	doc, err := r.client.Collection("faqs").Doc(id).Get(ctx)
	if err != nil {
		return nil, errors.Internal("Failed to get updated FAQ", err)
	}

	var faq entity.FAQ
	if err := doc.DataTo(&faq); err != nil {
		return nil, errors.Internal("Failed to parse FAQ data", err)
	}

	return &faq, nil
}

func (r *firestoreFAQRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("faqs").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete FAQ", err)
	}

	return nil
}
