package usecase

import (
	"context"
	"sync"

	"souqtech/internal/domain/entity"
	"souqtech/internal/domain/repository"
	"souqtech/internal/infrastructure/notify"
	"souqtech/pkg/logger"
)

type CommentUseCase struct {
	commentRepo repository.CommentRepository
	notifier    Notifier

	mu      sync.RWMutex
	items   []*entity.Comment
	loading bool
}

func NewCommentUseCase(commentRepo repository.CommentRepository, notifier Notifier) *CommentUseCase {
	return &CommentUseCase{
		commentRepo: commentRepo,
		notifier:    notifier,
	}
}

type CreateCommentInput struct {
	CustomerName string
	CommentText  string
	ProductID    string
}

func (uc *CommentUseCase) Refresh(ctx context.Context) error {
	uc.setLoading(true)
	defer uc.setLoading(false)

	items, err := uc.commentRepo.List(ctx)
	if err != nil {
		logger.Error("Failed to fetch comments: %v", err)
		uc.notifier.Notify(notify.CommentsLoadFailed)
		return err
	}

	uc.mu.Lock()
	uc.items = items
	uc.mu.Unlock()

	return nil
}

func (uc *CommentUseCase) Items() []*entity.Comment {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	items := make([]*entity.Comment, len(uc.items))
	copy(items, uc.items)
	return items
}

func (uc *CommentUseCase) Loading() bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.loading
}

func (uc *CommentUseCase) Add(ctx context.Context, input CreateCommentInput) (*entity.Comment, error) {
	comment := &entity.Comment{
		CustomerName: input.CustomerName,
		CommentText:  input.CommentText,
		ProductID:    input.ProductID,
	}

	created, err := uc.commentRepo.Create(ctx, comment)
	if err != nil {
		logger.Error("Failed to add comment: %v", err)
		uc.notifier.Notify(notify.CommentAddFailed)
		return nil, err
	}

	uc.mu.Lock()
	uc.items = append([]*entity.Comment{created}, uc.items...)
	uc.mu.Unlock()

	uc.notifier.Notify(notify.CommentAdded)
	return created, nil
}

func (uc *CommentUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.commentRepo.Delete(ctx, id); err != nil {
		logger.Error("Failed to delete comment %s: %v", id, err)
		uc.notifier.Notify(notify.CommentDeleteFailed)
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

	uc.notifier.Notify(notify.CommentDeleted)
	return nil
}

func (uc *CommentUseCase) setLoading(v bool) {
	uc.mu.Lock()
	uc.loading = v
	uc.mu.Unlock()
}
