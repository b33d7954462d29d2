package usecase

import (
	"context"
	"sync"

	"souqtech/internal/domain/entity"
	"souqtech/internal/domain/repository"
	"souqtech/internal/infrastructure/notify"
	"souqtech/pkg/logger"
)

// TestimonialUseCase holds only approved testimonials locally. Submissions
// go to the remote store unapproved and join the list once an admin approves
// them.
type TestimonialUseCase struct {
	testimonialRepo repository.TestimonialRepository
	notifier        Notifier

	mu      sync.RWMutex
	items   []*entity.Testimonial
	loading bool
}

func NewTestimonialUseCase(testimonialRepo repository.TestimonialRepository, notifier Notifier) *TestimonialUseCase {
	return &TestimonialUseCase{
		testimonialRepo: testimonialRepo,
		notifier:        notifier,
	}
}

type CreateTestimonialInput struct {
	CustomerName  string
	CustomerImage string
	Comment       string
	Rating        int
}

func (uc *TestimonialUseCase) Refresh(ctx context.Context) error {
	uc.setLoading(true)
	defer uc.setLoading(false)

	items, err := uc.testimonialRepo.List(ctx)
	if err != nil {
		logger.Error("Failed to fetch testimonials: %v", err)
		uc.notifier.Notify(notify.TestimonialsLoadFailed)
		return err
	}

	uc.mu.Lock()
	uc.items = items
	uc.mu.Unlock()

	return nil
}

func (uc *TestimonialUseCase) Items() []*entity.Testimonial {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	items := make([]*entity.Testimonial, len(uc.items))
	copy(items, uc.items)
	return items
}

func (uc *TestimonialUseCase) Loading() bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.loading
}

func (uc *TestimonialUseCase) Add(ctx context.Context, input CreateTestimonialInput) (*entity.Testimonial, error) {
	testimonial := &entity.Testimonial{
		CustomerName:  input.CustomerName,
		CustomerImage: input.CustomerImage,
		Comment:       input.Comment,
		Rating:        input.Rating,
		IsApproved:    false,
	}

	created, err := uc.testimonialRepo.Create(ctx, testimonial)
	if err != nil {
		logger.Error("Failed to submit testimonial: %v", err)
		uc.notifier.Notify(notify.TestimonialSubmitFailed)
		return nil, err
	}

	// The local list shows approved testimonials only.
	if created.IsApproved {
		uc.mu.Lock()
		uc.items = append([]*entity.Testimonial{created}, uc.items...)
		uc.mu.Unlock()
	}

	uc.notifier.Notify(notify.TestimonialSubmitted)
	return created, nil
}

func (uc *TestimonialUseCase) Approve(ctx context.Context, id string) (*entity.Testimonial, error) {
	updated, err := uc.testimonialRepo.Update(ctx, id, map[string]interface{}{"is_approved": true})
	if err != nil {
		logger.Error("Failed to approve testimonial %s: %v", id, err)
		uc.notifier.Notify(notify.TestimonialApproveFailed)
		return nil, err
	}

	uc.mu.Lock()
	uc.items = append([]*entity.Testimonial{updated}, uc.items...)
	uc.mu.Unlock()

	uc.notifier.Notify(notify.TestimonialApproved)
	return updated, nil
}

func (uc *TestimonialUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.testimonialRepo.Delete(ctx, id); err != nil {
		logger.Error("Failed to delete testimonial %s: %v", id, err)
		uc.notifier.Notify(notify.TestimonialDeleteFailed)
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

	uc.notifier.Notify(notify.TestimonialDeleted)
	return nil
}

func (uc *TestimonialUseCase) setLoading(v bool) {
	uc.mu.Lock()
	uc.loading = v
	uc.mu.Unlock()
}
