package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"souqtech/internal/domain/entity"
	"souqtech/internal/domain/repository"
	"souqtech/pkg/errors"

	"github.com/google/uuid"
)

type firestoreCommentRepository struct {
	client *firestore.Client
}

func NewFirestoreCommentRepository(client *firestore.Client) repository.CommentRepository {
	return &firestoreCommentRepository{
		client: client,
	}
}

func (r *firestoreCommentRepository) List(ctx context.Context) ([]*entity.Comment, error) {
	query := r.client.Collection("comments").OrderBy("created_at", firestore.Desc)

	iter := query.Documents(ctx)
	var comments []*entity.Comment

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate comments", err)
		}
		var comment entity.Comment
		if err := doc.DataTo(&comment); err != nil {
			return nil, errors.Internal("Failed to parse comment data", err)
		}
		comments = append(comments, &comment)
	}

	return comments, nil
}

func (r *firestoreCommentRepository) Create(ctx context.Context, comment *entity.Comment) (*entity.Comment, error) {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	comment.CreatedAt = time.Now()

	_, err := r.client.Collection("comments").Doc(comment.ID).Set(ctx, comment)
	if err != nil {
		return nil, errors.Internal("Failed to create comment", err)
	}

	return comment, nil
}

func (r *firestoreCommentRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("comments").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete comment", err)
	}

	return nil
}
