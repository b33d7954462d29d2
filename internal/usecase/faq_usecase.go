package usecase

import (
	"context"
	"sort"
	"sync"

	"souqtech/internal/domain/entity"
	"souqtech/internal/domain/repository"
	"souqtech/internal/infrastructure/notify"
	"souqtech/pkg/logger"
)

// FAQUseCase keeps the local list sorted ascending by order_index at all
// times. Ties keep insertion order.
type FAQUseCase struct {
	faqRepo  repository.FAQRepository
	notifier Notifier

	mu      sync.RWMutex
	items   []*entity.FAQ
	loading bool
}

func NewFAQUseCase(faqRepo repository.FAQRepository, notifier Notifier) *FAQUseCase {
	return &FAQUseCase{
		faqRepo:  faqRepo,
		notifier: notifier,
	}
}

type CreateFAQInput struct {
	Question   string
	QuestionEn string
	Answer     string
	AnswerEn   string
	OrderIndex int
}

func (uc *FAQUseCase) Refresh(ctx context.Context) error {
	uc.setLoading(true)
	defer uc.setLoading(false)

	items, err := uc.faqRepo.List(ctx)
	if err != nil {
		logger.Error("Failed to fetch FAQs: %v", err)
		uc.notifier.Notify(notify.FAQsLoadFailed)
		return err
	}

	uc.mu.Lock()
	uc.items = items
	uc.sortLocked()
	uc.mu.Unlock()

	return nil
}

func (uc *FAQUseCase) Items() []*entity.FAQ {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	items := make([]*entity.FAQ, len(uc.items))
	copy(items, uc.items)
	return items
}

func (uc *FAQUseCase) Loading() bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.loading
}

func (uc *FAQUseCase) Add(ctx context.Context, input CreateFAQInput) (*entity.FAQ, error) {
	faq := &entity.FAQ{
		Question:   input.Question,
		QuestionEn: input.QuestionEn,
		Answer:     input.Answer,
		AnswerEn:   input.AnswerEn,
		OrderIndex: input.OrderIndex,
		IsActive:   true,
	}

	created, err := uc.faqRepo.Create(ctx, faq)
	if err != nil {
		logger.Error("Failed to add FAQ: %v", err)
		uc.notifier.Notify(notify.FAQAddFailed)
		return nil, err
	}

	uc.mu.Lock()
	uc.items = append(uc.items, created)
	uc.sortLocked()
	uc.mu.Unlock()

	uc.notifier.Notify(notify.FAQAdded)
	return created, nil
}

func (uc *FAQUseCase) Update(ctx context.Context, id string, updates map[string]interface{}) (*entity.FAQ, error) {
	updated, err := uc.faqRepo.Update(ctx, id, updates)
	if err != nil {
		logger.Error("Failed to update FAQ %s: %v", id, err)
		uc.notifier.Notify(notify.FAQUpdateFailed)
		return nil, err
	}

	uc.mu.Lock()
	for i, item := range uc.items {
		if item.ID == id {
			uc.items[i] = updated
			break
		}
	}
	uc.sortLocked()
	uc.mu.Unlock()

	uc.notifier.Notify(notify.FAQUpdated)
	return updated, nil
}

func (uc *FAQUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.faqRepo.Delete(ctx, id); err != nil {
		logger.Error("Failed to delete FAQ %s: %v", id, err)
		uc.notifier.Notify(notify.FAQDeleteFailed)
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

	uc.notifier.Notify(notify.FAQDeleted)
	return nil
}

// sortLocked keeps the order_index invariant. Caller holds the lock.
func (uc *FAQUseCase) sortLocked() {
	sort.SliceStable(uc.items, func(i, j int) bool {
		return uc.items[i].OrderIndex < uc.items[j].OrderIndex
	})
}

func (uc *FAQUseCase) setLoading(v bool) {
	uc.mu.Lock()
	uc.loading = v
	uc.mu.Unlock()
}
