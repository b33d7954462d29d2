package usecase

import (
	"context"
	"sync"

	"souqtech/internal/domain/entity"
	"souqtech/internal/infrastructure/notify"
	"souqtech/pkg/errors"
)

// recordingNotifier captures every toast event in order.
type recordingNotifier struct {
	mu     sync.Mutex
	events []notify.Event
}

func (n *recordingNotifier) Notify(event notify.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

func (n *recordingNotifier) Events() []notify.Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	events := make([]notify.Event, len(n.events))
	copy(events, n.events)
	return events
}

type fakeProductRepo struct {
	items     []*entity.Product
	listErr   error
	createErr error
	updateErr error
	deleteErr error
}

func (r *fakeProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.items, nil
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	if product.ID == "" {
		product.ID = "p-created"
	}
	return product, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, id string, updates map[string]interface{}) (*entity.Product, error) {
	if r.updateErr != nil {
		return nil, r.updateErr
	}
	updated := &entity.Product{ID: id}
	if name, ok := updates["name"].(string); ok {
		updated.Name = name
	}
	if price, ok := updates["price"].(float64); ok {
		updated.Price = price
	}
	return updated, nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id string) error {
	return r.deleteErr
}

type fakeMessageRepo struct {
	items     []*entity.Message
	listErr   error
	createErr error
	updateErr error
	deleteErr error
}

func (r *fakeMessageRepo) List(ctx context.Context) ([]*entity.Message, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.items, nil
}

func (r *fakeMessageRepo) Create(ctx context.Context, message *entity.Message) (*entity.Message, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	if message.ID == "" {
		message.ID = "m-created"
	}
	return message, nil
}

func (r *fakeMessageRepo) Update(ctx context.Context, id string, updates map[string]interface{}) (*entity.Message, error) {
	if r.updateErr != nil {
		return nil, r.updateErr
	}
	updated := &entity.Message{ID: id}
	if read, ok := updates["is_read"].(bool); ok {
		updated.IsRead = read
	}
	return updated, nil
}

func (r *fakeMessageRepo) Delete(ctx context.Context, id string) error {
	return r.deleteErr
}

type fakeFAQRepo struct {
	items     []*entity.FAQ
	listErr   error
	createErr error
	updateErr error
	deleteErr error
}

func (r *fakeFAQRepo) List(ctx context.Context) ([]*entity.FAQ, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.items, nil
}

func (r *fakeFAQRepo) Create(ctx context.Context, faq *entity.FAQ) (*entity.FAQ, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	if faq.ID == "" {
		faq.ID = "f-created"
	}
	return faq, nil
}

func (r *fakeFAQRepo) Update(ctx context.Context, id string, updates map[string]interface{}) (*entity.FAQ, error) {
	if r.updateErr != nil {
		return nil, r.updateErr
	}
	updated := &entity.FAQ{ID: id}
	if order, ok := updates["order_index"].(int); ok {
		updated.OrderIndex = order
	}
	return updated, nil
}

func (r *fakeFAQRepo) Delete(ctx context.Context, id string) error {
	return r.deleteErr
}

type fakeTestimonialRepo struct {
	items     []*entity.Testimonial
	createErr error
	updateErr error
	deleteErr error
}

func (r *fakeTestimonialRepo) List(ctx context.Context) ([]*entity.Testimonial, error) {
	return r.items, nil
}

func (r *fakeTestimonialRepo) Create(ctx context.Context, testimonial *entity.Testimonial) (*entity.Testimonial, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	if testimonial.ID == "" {
		testimonial.ID = "t-created"
	}
	return testimonial, nil
}

func (r *fakeTestimonialRepo) Update(ctx context.Context, id string, updates map[string]interface{}) (*entity.Testimonial, error) {
	if r.updateErr != nil {
		return nil, r.updateErr
	}
	updated := &entity.Testimonial{ID: id}
	if approved, ok := updates["is_approved"].(bool); ok {
		updated.IsApproved = approved
	}
	return updated, nil
}

func (r *fakeTestimonialRepo) Delete(ctx context.Context, id string) error {
	return r.deleteErr
}

type fakeReviewRepo struct {
	items     []*entity.Review
	listErr   error
	createErr error
	deleteErr error
}

func (r *fakeReviewRepo) List(ctx context.Context) ([]*entity.Review, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.items, nil
}

func (r *fakeReviewRepo) Create(ctx context.Context, review *entity.Review) (*entity.Review, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	if review.ID == "" {
		review.ID = "r-created"
	}
	return review, nil
}

func (r *fakeReviewRepo) Delete(ctx context.Context, id string) error {
	return r.deleteErr
}

type fakeAdminRepo struct {
	users map[string]*entity.AdminUser
	err   error
}

func (r *fakeAdminRepo) GetByUsername(ctx context.Context, username string) (*entity.AdminUser, error) {
	if r.err != nil {
		return nil, r.err
	}
	user, ok := r.users[username]
	if !ok {
		return nil, errors.NotFound("Admin user", nil)
	}
	return user, nil
}
