package usecase

import (
	"context"
	"sync"
	"time"

	"souqtech/internal/domain/entity"
	"souqtech/internal/domain/repository"
	"souqtech/internal/infrastructure/notify"
	"souqtech/pkg/logger"
)

type OfferUseCase struct {
	offerRepo repository.OfferRepository
	notifier  Notifier

	mu      sync.RWMutex
	items   []*entity.Offer
	loading bool
}

func NewOfferUseCase(offerRepo repository.OfferRepository, notifier Notifier) *OfferUseCase {
	return &OfferUseCase{
		offerRepo: offerRepo,
		notifier:  notifier,
	}
}

type CreateOfferInput struct {
	Title              string
	TitleEn            string
	Description        string
	DescriptionEn      string
	DiscountPercentage float64
	ImageURL           string
	ExpiresAt          *time.Time
}

func (uc *OfferUseCase) Refresh(ctx context.Context) error {
	uc.setLoading(true)
	defer uc.setLoading(false)

	items, err := uc.offerRepo.List(ctx)
	if err != nil {
		logger.Error("Failed to fetch offers: %v", err)
		uc.notifier.Notify(notify.OffersLoadFailed)
		return err
	}

	uc.mu.Lock()
	uc.items = items
	uc.mu.Unlock()

	return nil
}

func (uc *OfferUseCase) Items() []*entity.Offer {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	items := make([]*entity.Offer, len(uc.items))
	copy(items, uc.items)
	return items
}

func (uc *OfferUseCase) Loading() bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.loading
}

// Add creates the offer active, matching the storefront behavior where a new
// offer is published immediately.
func (uc *OfferUseCase) Add(ctx context.Context, input CreateOfferInput) (*entity.Offer, error) {
	offer := &entity.Offer{
		Title:              input.Title,
		TitleEn:            input.TitleEn,
		Description:        input.Description,
		DescriptionEn:      input.DescriptionEn,
		DiscountPercentage: input.DiscountPercentage,
		ImageURL:           input.ImageURL,
		ExpiresAt:          input.ExpiresAt,
		IsActive:           true,
	}

	created, err := uc.offerRepo.Create(ctx, offer)
	if err != nil {
		logger.Error("Failed to add offer: %v", err)
		uc.notifier.Notify(notify.OfferAddFailed)
		return nil, err
	}

	uc.mu.Lock()
	uc.items = append([]*entity.Offer{created}, uc.items...)
	uc.mu.Unlock()

	uc.notifier.Notify(notify.OfferAdded)
	return created, nil
}

func (uc *OfferUseCase) Update(ctx context.Context, id string, updates map[string]interface{}) (*entity.Offer, error) {
	updated, err := uc.offerRepo.Update(ctx, id, updates)
	if err != nil {
		logger.Error("Failed to update offer %s: %v", id, err)
		uc.notifier.Notify(notify.OfferUpdateFailed)
		return nil, err
	}

	uc.mu.Lock()
	for i, item := range uc.items {
		if item.ID == id {
			uc.items[i] = updated
			break
		}
	}
	uc.mu.Unlock()

	uc.notifier.Notify(notify.OfferUpdated)
	return updated, nil
}

func (uc *OfferUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.offerRepo.Delete(ctx, id); err != nil {
		logger.Error("Failed to delete offer %s: %v", id, err)
		uc.notifier.Notify(notify.OfferDeleteFailed)
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

	uc.notifier.Notify(notify.OfferDeleted)
	return nil
}

func (uc *OfferUseCase) setLoading(v bool) {
	uc.mu.Lock()
	uc.loading = v
	uc.mu.Unlock()
}
