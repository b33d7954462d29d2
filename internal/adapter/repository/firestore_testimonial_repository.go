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

type firestoreTestimonialRepository struct {
	client *firestore.Client
}

func NewFirestoreTestimonialRepository(client *firestore.Client) repository.TestimonialRepository {
	return &firestoreTestimonialRepository{
		client: client,
	}
}

func (r *firestoreTestimonialRepository) List(ctx context.Context) ([]*entity.Testimonial, error) {
	query := r.client.Collection("testimonials").
		Where("is_approved", "==", true).
		OrderBy("created_at", firestore.Desc)

	iter := query.Documents(ctx)
	var testimonials []*entity.Testimonial

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate testimonials", err)
		}
		var testimonial entity.Testimonial
		if err := doc.DataTo(&testimonial); err != nil {
			return nil, errors.Internal("Failed to parse testimonial data", err)
		}
		testimonials = append(testimonials, &testimonial)
	}

	return testimonials, nil
}

func (r *firestoreTestimonialRepository) Create(ctx context.Context, testimonial *entity.Testimonial) (*entity.Testimonial, error) {
	if testimonial.ID == "" {
		testimonial.ID = uuid.New().String()
	}
	testimonial.CreatedAt = time.Now()

	_, err := r.client.Collection("testimonials").Doc(testimonial.ID).Set(ctx, testimonial)
	if err != nil {
		return nil, errors.Internal("Failed to create testimonial", err)
	}

	return testimonial, nil
}

func (r *firestoreTestimonialRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (*entity.Testimonial, error) {
	fieldUpdates := make([]firestore.Update, 0, len(updates))
	for field, value := range updates {
		fieldUpdates = append(fieldUpdates, firestore.Update{Path: field, Value: value})
	}

	_, err := r.client.Collection("testimonials").Doc(id).Update(ctx, fieldUpdates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Testimonial", err)
		}
		return nil, errors.Internal("Failed to update testimonial", err)
	}

	doc, err := r.client.Collection("testimonials").Doc(id).Get(ctx)
	if err != nil {
		return nil, errors.Internal("Failed to get updated testimonial", err)
	}

	var testimonial entity.Testimonial
	if err := doc.DataTo(&testimonial); err != nil {
		return nil, errors.Internal("Failed to parse testimonial data", err)
	}

	return &testimonial, nil
}

func (r *firestoreTestimonialRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("testimonials").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete testimonial", err)
	}

	return nil
}
