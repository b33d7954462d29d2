package usecase

import (
	"context"
	"testing"

	"souqtech/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestFAQRefreshSortsByOrderIndex(t *testing.T) {
	repo := &fakeFAQRepo{items: []*entity.FAQ{
		{ID: "f3", OrderIndex: 3},
		{ID: "f1", OrderIndex: 1},
		{ID: "f2", OrderIndex: 2},
	}}
	uc := NewFAQUseCase(repo, &recordingNotifier{})

	assert.NoError(t, uc.Refresh(context.Background()))

	items := uc.Items()
	assert.Equal(t, []string{"f1", "f2", "f3"}, []string{items[0].ID, items[1].ID, items[2].ID})
}

func TestFAQAddKeepsOrderInvariant(t *testing.T) {
	repo := &fakeFAQRepo{items: []*entity.FAQ{
		{ID: "f1", OrderIndex: 1},
		{ID: "f3", OrderIndex: 3},
	}}
	uc := NewFAQUseCase(repo, &recordingNotifier{})
	assert.NoError(t, uc.Refresh(context.Background()))

	_, err := uc.Add(context.Background(), CreateFAQInput{Question: "كيف أطلب؟", Answer: "عبر واتساب", OrderIndex: 2})

	assert.NoError(t, err)
	items := uc.Items()
	assert.Equal(t, []int{1, 2, 3}, []int{items[0].OrderIndex, items[1].OrderIndex, items[2].OrderIndex})
}

func TestFAQSortTiesKeepInsertionOrder(t *testing.T) {
	repo := &fakeFAQRepo{items: []*entity.FAQ{
		{ID: "first", OrderIndex: 1},
		{ID: "second", OrderIndex: 1},
	}}
	uc := NewFAQUseCase(repo, &recordingNotifier{})

	assert.NoError(t, uc.Refresh(context.Background()))

	items := uc.Items()
	assert.Equal(t, "first", items[0].ID)
	assert.Equal(t, "second", items[1].ID)
}

func TestFAQUpdateResorts(t *testing.T) {
	repo := &fakeFAQRepo{items: []*entity.FAQ{
		{ID: "f1", OrderIndex: 1},
		{ID: "f2", OrderIndex: 2},
	}}
	uc := NewFAQUseCase(repo, &recordingNotifier{})
	assert.NoError(t, uc.Refresh(context.Background()))

	_, err := uc.Update(context.Background(), "f1", map[string]interface{}{"order_index": 5})

	assert.NoError(t, err)
	items := uc.Items()
	assert.Equal(t, "f2", items[0].ID)
	assert.Equal(t, "f1", items[1].ID)
}
