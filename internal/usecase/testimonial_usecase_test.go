package usecase

import (
	"context"
	"testing"

	"souqtech/internal/domain/entity"
	"souqtech/internal/infrastructure/notify"

	"github.com/stretchr/testify/assert"
)

func TestTestimonialSubmissionStaysPendingLocally(t *testing.T) {
	repo := &fakeTestimonialRepo{}
	notifier := &recordingNotifier{}
	uc := NewTestimonialUseCase(repo, notifier)

	created, err := uc.Add(context.Background(), CreateTestimonialInput{
		CustomerName: "سارة",
		Comment:      "خدمة ممتازة",
		Rating:       5,
	})

	assert.NoError(t, err)
	assert.False(t, created.IsApproved)
	// Unapproved submissions never join the public list.
	assert.Empty(t, uc.Items())
	assert.Equal(t, []notify.Event{notify.TestimonialSubmitted}, notifier.Events())
}

func TestTestimonialApprovePrepends(t *testing.T) {
	repo := &fakeTestimonialRepo{items: []*entity.Testimonial{{ID: "t1", IsApproved: true}}}
	notifier := &recordingNotifier{}
	uc := NewTestimonialUseCase(repo, notifier)
	assert.NoError(t, uc.Refresh(context.Background()))

	approved, err := uc.Approve(context.Background(), "t2")

	assert.NoError(t, err)
	assert.True(t, approved.IsApproved)
	items := uc.Items()
	assert.Len(t, items, 2)
	assert.Equal(t, "t2", items[0].ID)
	assert.Equal(t, []notify.Event{notify.TestimonialApproved}, notifier.Events())
}

func TestTestimonialDelete(t *testing.T) {
	repo := &fakeTestimonialRepo{items: []*entity.Testimonial{
		{ID: "t1", IsApproved: true},
		{ID: "t2", IsApproved: true},
	}}
	notifier := &recordingNotifier{}
	uc := NewTestimonialUseCase(repo, notifier)
	assert.NoError(t, uc.Refresh(context.Background()))

	assert.NoError(t, uc.Delete(context.Background(), "t1"))

	items := uc.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, "t2", items[0].ID)
}
