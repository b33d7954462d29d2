package usecase

import (
	"context"
	"errors"
	"testing"

	"souqtech/internal/domain/entity"
	"souqtech/internal/infrastructure/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageAddPrepends(t *testing.T) {
	repo := &fakeMessageRepo{items: []*entity.Message{{ID: "m1"}}}
	notifier := &recordingNotifier{}
	uc := NewMessageUseCase(repo, notifier)
	require.NoError(t, uc.Refresh(context.Background()))

	created, err := uc.Add(context.Background(), CreateMessageInput{
		Name:    "أحمد",
		Message: "هل المنتج متوفر؟",
	})

	assert.NoError(t, err)
	assert.False(t, created.IsRead)
	items := uc.Items()
	assert.Len(t, items, 2)
	assert.Equal(t, created.ID, items[0].ID)
	assert.Equal(t, []notify.Event{notify.MessageSent}, notifier.Events())
}

func TestMarkAsReadIsSilentOnSuccess(t *testing.T) {
	repo := &fakeMessageRepo{items: []*entity.Message{
		{ID: "m1", IsRead: false},
		{ID: "m2", IsRead: false},
	}}
	notifier := &recordingNotifier{}
	uc := NewMessageUseCase(repo, notifier)
	require.NoError(t, uc.Refresh(context.Background()))

	updated, err := uc.MarkAsRead(context.Background(), "m1")

	assert.NoError(t, err)
	assert.True(t, updated.IsRead)
	items := uc.Items()
	assert.True(t, items[0].IsRead)
	assert.False(t, items[1].IsRead)
	// The read flip is the one mutation that raises no toast.
	assert.Empty(t, notifier.Events())
}

func TestMarkAsReadFailure(t *testing.T) {
	repo := &fakeMessageRepo{items: []*entity.Message{{ID: "m1", IsRead: false}}}
	notifier := &recordingNotifier{}
	uc := NewMessageUseCase(repo, notifier)
	require.NoError(t, uc.Refresh(context.Background()))

	repo.updateErr = errors.New("boom")
	_, err := uc.MarkAsRead(context.Background(), "m1")

	assert.Error(t, err)
	items := uc.Items()
	assert.False(t, items[0].IsRead)
	assert.Equal(t, []notify.Event{notify.MessageMarkReadFailed}, notifier.Events())
}

func TestMessageDelete(t *testing.T) {
	repo := &fakeMessageRepo{items: []*entity.Message{{ID: "m1"}, {ID: "m2"}}}
	notifier := &recordingNotifier{}
	uc := NewMessageUseCase(repo, notifier)
	require.NoError(t, uc.Refresh(context.Background()))

	assert.NoError(t, uc.Delete(context.Background(), "m1"))

	items := uc.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, "m2", items[0].ID)
	assert.Equal(t, []notify.Event{notify.MessageDeleted}, notifier.Events())
}
