package usecase

import (
	"context"
	"testing"

	"souqtech/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestReviewAverageRating(t *testing.T) {
	repo := &fakeReviewRepo{items: []*entity.Review{
		{ID: "r1", ProductID: "p1", Rating: 5},
		{ID: "r2", ProductID: "p1", Rating: 4},
		{ID: "r3", ProductID: "p2", Rating: 1},
	}}
	uc := NewReviewUseCase(repo, &recordingNotifier{})
	assert.NoError(t, uc.Refresh(context.Background()))

	assert.InDelta(t, 4.5, uc.AverageRating("p1"), 0.001)
	assert.InDelta(t, 1.0, uc.AverageRating("p2"), 0.001)
}

func TestReviewAverageRatingNoReviews(t *testing.T) {
	uc := NewReviewUseCase(&fakeReviewRepo{}, &recordingNotifier{})

	assert.Zero(t, uc.AverageRating("missing"))
}

func TestReviewAddPrepends(t *testing.T) {
	repo := &fakeReviewRepo{items: []*entity.Review{{ID: "r1", ProductID: "p1", Rating: 3}}}
	uc := NewReviewUseCase(repo, &recordingNotifier{})
	assert.NoError(t, uc.Refresh(context.Background()))

	created, err := uc.Add(context.Background(), CreateReviewInput{
		ProductID:    "p1",
		CustomerName: "أحمد",
		Rating:       5,
	})

	assert.NoError(t, err)
	items := uc.Items()
	assert.Len(t, items, 2)
	assert.Equal(t, created.ID, items[0].ID)
	assert.InDelta(t, 4.0, uc.AverageRating("p1"), 0.001)
}
