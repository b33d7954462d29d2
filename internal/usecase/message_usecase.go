package usecase

import (
	"context"
	"sync"

	"souqtech/internal/domain/entity"
	"souqtech/internal/domain/repository"
	"souqtech/internal/infrastructure/notify"
	"souqtech/pkg/logger"
)

type MessageUseCase struct {
	messageRepo repository.MessageRepository
	notifier    Notifier

	mu      sync.RWMutex
	items   []*entity.Message
	loading bool
}

func NewMessageUseCase(messageRepo repository.MessageRepository, notifier Notifier) *MessageUseCase {
	return &MessageUseCase{
		messageRepo: messageRepo,
		notifier:    notifier,
	}
}

type CreateMessageInput struct {
	Name      string
	Email     string
	Phone     string
	Message   string
	ProductID string
}

func (uc *MessageUseCase) Refresh(ctx context.Context) error {
	uc.setLoading(true)
	defer uc.setLoading(false)

	items, err := uc.messageRepo.List(ctx)
	if err != nil {
		logger.Error("Failed to fetch messages: %v", err)
		uc.notifier.Notify(notify.MessagesLoadFailed)
		return err
	}

	uc.mu.Lock()
	uc.items = items
	uc.mu.Unlock()

	return nil
}

func (uc *MessageUseCase) Items() []*entity.Message {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	items := make([]*entity.Message, len(uc.items))
	copy(items, uc.items)
	return items
}

func (uc *MessageUseCase) Loading() bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.loading
}

func (uc *MessageUseCase) Add(ctx context.Context, input CreateMessageInput) (*entity.Message, error) {
	message := &entity.Message{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Message:   input.Message,
		ProductID: input.ProductID,
		IsRead:    false,
	}

	created, err := uc.messageRepo.Create(ctx, message)
	if err != nil {
		logger.Error("Failed to send message: %v", err)
		uc.notifier.Notify(notify.MessageSendFailed)
		return nil, err
	}

	uc.mu.Lock()
	uc.items = append([]*entity.Message{created}, uc.items...)
	uc.mu.Unlock()

	uc.notifier.Notify(notify.MessageSent)
	return created, nil
}

// MarkAsRead flips is_read on the remote row and replaces the local record.
// Success is silent; only the failure path raises a toast.
func (uc *MessageUseCase) MarkAsRead(ctx context.Context, id string) (*entity.Message, error) {
	updated, err := uc.messageRepo.Update(ctx, id, map[string]interface{}{"is_read": true})
	if err != nil {
		logger.Error("Failed to mark message %s as read: %v", id, err)
		uc.notifier.Notify(notify.MessageMarkReadFailed)
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

	return updated, nil
}

func (uc *MessageUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.messageRepo.Delete(ctx, id); err != nil {
		logger.Error("Failed to delete message %s: %v", id, err)
		uc.notifier.Notify(notify.MessageDeleteFailed)
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

	uc.notifier.Notify(notify.MessageDeleted)
	return nil
}

func (uc *MessageUseCase) setLoading(v bool) {
	uc.mu.Lock()
	uc.loading = v
	uc.mu.Unlock()
}
