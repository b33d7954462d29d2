package usecase

import (
	"context"
	"sync"

	"souqtech/internal/domain/entity"
	"souqtech/internal/domain/repository"
	"souqtech/internal/infrastructure/notify"
	"souqtech/pkg/logger"
)

type GalleryUseCase struct {
	galleryRepo repository.GalleryRepository
	notifier    Notifier

	mu      sync.RWMutex
	items   []*entity.GalleryItem
	loading bool
}

func NewGalleryUseCase(galleryRepo repository.GalleryRepository, notifier Notifier) *GalleryUseCase {
	return &GalleryUseCase{
		galleryRepo: galleryRepo,
		notifier:    notifier,
	}
}

type CreateGalleryItemInput struct {
	Title         string
	TitleEn       string
	Description   string
	DescriptionEn string
	ImageURL      string
	Category      string
}

func (uc *GalleryUseCase) Refresh(ctx context.Context) error {
	uc.setLoading(true)
	defer uc.setLoading(false)

	items, err := uc.galleryRepo.List(ctx)
	if err != nil {
		logger.Error("Failed to fetch gallery items: %v", err)
		uc.notifier.Notify(notify.GalleryLoadFailed)
		return err
	}

	uc.mu.Lock()
	uc.items = items
	uc.mu.Unlock()

	return nil
}

func (uc *GalleryUseCase) Items() []*entity.GalleryItem {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	items := make([]*entity.GalleryItem, len(uc.items))
	copy(items, uc.items)
	return items
}

func (uc *GalleryUseCase) Loading() bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.loading
}

func (uc *GalleryUseCase) Add(ctx context.Context, input CreateGalleryItemInput) (*entity.GalleryItem, error) {
	item := &entity.GalleryItem{
		Title:         input.Title,
		TitleEn:       input.TitleEn,
		Description:   input.Description,
		DescriptionEn: input.DescriptionEn,
		ImageURL:      input.ImageURL,
		Category:      input.Category,
	}

	created, err := uc.galleryRepo.Create(ctx, item)
	if err != nil {
		logger.Error("Failed to add gallery item: %v", err)
		uc.notifier.Notify(notify.GalleryItemAddFailed)
		return nil, err
	}

	uc.mu.Lock()
	uc.items = append([]*entity.GalleryItem{created}, uc.items...)
	uc.mu.Unlock()

	uc.notifier.Notify(notify.GalleryItemAdded)
	return created, nil
}

func (uc *GalleryUseCase) Update(ctx context.Context, id string, updates map[string]interface{}) (*entity.GalleryItem, error) {
	updated, err := uc.galleryRepo.Update(ctx, id, updates)
	if err != nil {
		logger.Error("Failed to update gallery item %s: %v", id, err)
		uc.notifier.Notify(notify.GalleryItemUpdateFailed)
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

	uc.notifier.Notify(notify.GalleryItemUpdated)
	return updated, nil
}

func (uc *GalleryUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.galleryRepo.Delete(ctx, id); err != nil {
		logger.Error("Failed to delete gallery item %s: %v", id, err)
		uc.notifier.Notify(notify.GalleryItemDeleteFailed)
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

	uc.notifier.Notify(notify.GalleryItemDeleted)
	return nil
}

func (uc *GalleryUseCase) setLoading(v bool) {
	uc.mu.Lock()
	uc.loading = v
	uc.mu.Unlock()
}
