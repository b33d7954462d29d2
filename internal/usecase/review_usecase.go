package usecase

import (
	"context"
	"sync"

	"souqtech/internal/domain/entity"
	"souqtech/internal/domain/repository"
	"souqtech/internal/infrastructure/notify"
	"souqtech/pkg/logger"
)

type ReviewUseCase struct {
	reviewRepo repository.ReviewRepository
	notifier   Notifier

	mu      sync.RWMutex
	items   []*entity.Review
	loading bool
}

func NewReviewUseCase(reviewRepo repository.ReviewRepository, notifier Notifier) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo: reviewRepo,
		notifier:   notifier,
	}
}

type CreateReviewInput struct {
	ProductID    string
	CustomerName string
	Rating       int
	ReviewText   string
}

func (uc *ReviewUseCase) Refresh(ctx context.Context) error {
	uc.setLoading(true)
	defer uc.setLoading(false)

	items, err := uc.reviewRepo.List(ctx)
	if err != nil {
		logger.Error("Failed to fetch reviews: %v", err)
		uc.notifier.Notify(notify.ReviewsLoadFailed)
		return err
	}

	uc.mu.Lock()
	uc.items = items
	uc.mu.Unlock()

	return nil
}

func (uc *ReviewUseCase) Items() []*entity.Review {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	items := make([]*entity.Review, len(uc.items))
	copy(items, uc.items)
	return items
}

func (uc *ReviewUseCase) Loading() bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.loading
}

func (uc *ReviewUseCase) Add(ctx context.Context, input CreateReviewInput) (*entity.Review, error) {
	review := &entity.Review{
		ProductID:    input.ProductID,
		CustomerName: input.CustomerName,
		Rating:       input.Rating,
		ReviewText:   input.ReviewText,
	}

	created, err := uc.reviewRepo.Create(ctx, review)
	if err != nil {
		logger.Error("Failed to add review: %v", err)
		uc.notifier.Notify(notify.ReviewAddFailed)
		return nil, err
	}

	uc.mu.Lock()
	uc.items = append([]*entity.Review{created}, uc.items...)
	uc.mu.Unlock()

	uc.notifier.Notify(notify.ReviewAdded)
	return created, nil
}

func (uc *ReviewUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.reviewRepo.Delete(ctx, id); err != nil {
		logger.Error("Failed to delete review %s: %v", id, err)
		uc.notifier.Notify(notify.ReviewDeleteFailed)
		return err
	}

	uc.mu.Lock()
	filtered := uc.items[:0]
	for _, item := range uc.items {
		if item.ID != id {
			filtered = append(filtered, item)
		}
	}
	uc.items = filtered
	uc.mu.Unlock()

	uc.notifier.Notify(notify.ReviewDeleted)
	return nil
}

// AverageRating computes the mean rating over one product's reviews from the
// local list. Returns 0 when the product has no reviews.
func (uc *ReviewUseCase) AverageRating(productID string) float64 {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	var sum, count int
	for _, item := range uc.items {
		if item.ProductID == productID {
			sum += item.Rating
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}

func (uc *ReviewUseCase) setLoading(v bool) {
	uc.mu.Lock()
	uc.loading = v
	uc.mu.Unlock()
}
