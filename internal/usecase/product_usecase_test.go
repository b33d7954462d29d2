package usecase

import (
	"context"
	"errors"
	"testing"

	"souqtech/internal/domain/entity"
	"souqtech/internal/infrastructure/notify"

	"github.com/stretchr/testify/assert"
)

func TestProductRefresh(t *testing.T) {
	repo := &fakeProductRepo{items: []*entity.Product{
		{ID: "p1", Name: "لابتوب"},
		{ID: "p2", Name: "هاتف"},
	}}
	notifier := &recordingNotifier{}
	uc := NewProductUseCase(repo, notifier)

	err := uc.Refresh(context.Background())

	assert.NoError(t, err)
	assert.Len(t, uc.Items(), 2)
	assert.False(t, uc.Loading())
	// A successful fetch is silent.
	assert.Empty(t, notifier.Events())
}

func TestProductRefreshFailureKeepsPreviousList(t *testing.T) {
	repo := &fakeProductRepo{items: []*entity.Product{{ID: "p1"}}}
	notifier := &recordingNotifier{}
	uc := NewProductUseCase(repo, notifier)

	assert.NoError(t, uc.Refresh(context.Background()))

	repo.listErr = errors.New("network down")
	err := uc.Refresh(context.Background())

	assert.Error(t, err)
	assert.Len(t, uc.Items(), 1)
	assert.Equal(t, []notify.Event{notify.ProductsLoadFailed}, notifier.Events())
}

func TestProductAddPrepends(t *testing.T) {
	repo := &fakeProductRepo{items: []*entity.Product{{ID: "p1"}}}
	notifier := &recordingNotifier{}
	uc := NewProductUseCase(repo, notifier)
	assert.NoError(t, uc.Refresh(context.Background()))

	created, err := uc.Add(context.Background(), CreateProductInput{Name: "شاحن", Price: 25})

	assert.NoError(t, err)
	items := uc.Items()
	assert.Len(t, items, 2)
	assert.Equal(t, created.ID, items[0].ID)
	assert.Equal(t, []notify.Event{notify.ProductAdded}, notifier.Events())
}

func TestProductAddFailureLeavesListUnchanged(t *testing.T) {
	repo := &fakeProductRepo{createErr: errors.New("boom")}
	notifier := &recordingNotifier{}
	uc := NewProductUseCase(repo, notifier)

	_, err := uc.Add(context.Background(), CreateProductInput{Name: "شاحن"})

	assert.Error(t, err)
	assert.Empty(t, uc.Items())
	assert.Equal(t, []notify.Event{notify.ProductAddFailed}, notifier.Events())
}

func TestProductUpdateReplacesMatchingRecord(t *testing.T) {
	repo := &fakeProductRepo{items: []*entity.Product{{ID: "p1", Name: "old"}, {ID: "p2"}}}
	notifier := &recordingNotifier{}
	uc := NewProductUseCase(repo, notifier)
	assert.NoError(t, uc.Refresh(context.Background()))

	updated, err := uc.Update(context.Background(), "p1", map[string]interface{}{"name": "new"})

	assert.NoError(t, err)
	assert.Equal(t, "new", updated.Name)
	items := uc.Items()
	assert.Equal(t, "new", items[0].Name)
	assert.Equal(t, "p2", items[1].ID)
	assert.Equal(t, []notify.Event{notify.ProductUpdated}, notifier.Events())
}

func TestProductDelete(t *testing.T) {
	repo := &fakeProductRepo{items: []*entity.Product{{ID: "p1"}, {ID: "p2"}}}
	notifier := &recordingNotifier{}
	uc := NewProductUseCase(repo, notifier)
	assert.NoError(t, uc.Refresh(context.Background()))

	err := uc.Delete(context.Background(), "p1")

	assert.NoError(t, err)
	items := uc.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].ID)
	assert.Equal(t, []notify.Event{notify.ProductDeleted}, notifier.Events())
}

func TestProductDeleteUnknownIDIsANoOp(t *testing.T) {
	repo := &fakeProductRepo{items: []*entity.Product{{ID: "p1"}}}
	notifier := &recordingNotifier{}
	uc := NewProductUseCase(repo, notifier)
	assert.NoError(t, uc.Refresh(context.Background()))

	// The remote store treats an unknown id as a successful delete.
	err := uc.Delete(context.Background(), "does-not-exist")

	assert.NoError(t, err)
	items := uc.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ID)
	assert.Equal(t, []notify.Event{notify.ProductDeleted}, notifier.Events())
}

func TestProductDeleteFailureKeepsRecord(t *testing.T) {
	repo := &fakeProductRepo{items: []*entity.Product{{ID: "p1"}}}
	notifier := &recordingNotifier{}
	uc := NewProductUseCase(repo, notifier)
	assert.NoError(t, uc.Refresh(context.Background()))

	repo.deleteErr = errors.New("boom")
	err := uc.Delete(context.Background(), "p1")

	assert.Error(t, err)
	assert.Len(t, uc.Items(), 1)
	assert.Equal(t, []notify.Event{notify.ProductDeleteFailed}, notifier.Events())
}
