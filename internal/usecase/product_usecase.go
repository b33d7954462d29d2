package usecase

import (
	"context"
	"sync"

	"souqtech/internal/domain/entity"
	"souqtech/internal/domain/repository"
	"souqtech/internal/infrastructure/notify"
	"souqtech/pkg/logger"
)

// ProductUseCase owns the product collection's lifecycle against the remote
// store. The in-memory list is the storefront's working copy; it is only
// touched after a remote call has succeeded.
type ProductUseCase struct {
	productRepo repository.ProductRepository
	notifier    Notifier

	mu      sync.RWMutex
	items   []*entity.Product
	loading bool
}

func NewProductUseCase(productRepo repository.ProductRepository, notifier Notifier) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		notifier:    notifier,
	}
}

type CreateProductInput struct {
	Name          string
	NameEn        string
	Description   string
	DescriptionEn string
	Price         float64
	OriginalPrice float64
	ImageURL      string
	Category      string
	WhatsappText  string
	IsFeatured    bool
	IsNew         bool
	IsBestseller  bool
	IsOrganic     bool
}

// Refresh replaces the local list with the remote collection, newest first.
// On failure the previous list is kept.
func (uc *ProductUseCase) Refresh(ctx context.Context) error {
	uc.setLoading(true)
	defer uc.setLoading(false)

	items, err := uc.productRepo.List(ctx)
	if err != nil {
		logger.Error("Failed to fetch products: %v", err)
		uc.notifier.Notify(notify.ProductsLoadFailed)
		return err
	}

	uc.mu.Lock()
	uc.items = items
	uc.mu.Unlock()

	return nil
}

func (uc *ProductUseCase) Items() []*entity.Product {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	items := make([]*entity.Product, len(uc.items))
	copy(items, uc.items)
	return items
}

func (uc *ProductUseCase) Loading() bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.loading
}

func (uc *ProductUseCase) Add(ctx context.Context, input CreateProductInput) (*entity.Product, error) {
	product := &entity.Product{
		Name:          input.Name,
		NameEn:        input.NameEn,
		Description:   input.Description,
		DescriptionEn: input.DescriptionEn,
		Price:         input.Price,
		OriginalPrice: input.OriginalPrice,
		ImageURL:      input.ImageURL,
		Category:      input.Category,
		WhatsappText:  input.WhatsappText,
		IsFeatured:    input.IsFeatured,
		IsNew:         input.IsNew,
		IsBestseller:  input.IsBestseller,
		IsOrganic:     input.IsOrganic,
	}

	created, err := uc.productRepo.Create(ctx, product)
	if err != nil {
		logger.Error("Failed to add product: %v", err)
		uc.notifier.Notify(notify.ProductAddFailed)
		return nil, err
	}

	uc.mu.Lock()
	uc.items = append([]*entity.Product{created}, uc.items...)
	uc.mu.Unlock()

	uc.notifier.Notify(notify.ProductAdded)
	return created, nil
}

// Update sends the changed fields and replaces the matching local record
// with the server-returned row.
func (uc *ProductUseCase) Update(ctx context.Context, id string, updates map[string]interface{}) (*entity.Product, error) {
	updated, err := uc.productRepo.Update(ctx, id, updates)
	if err != nil {
		logger.Error("Failed to update product %s: %v", id, err)
		uc.notifier.Notify(notify.ProductUpdateFailed)
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

	uc.notifier.Notify(notify.ProductUpdated)
	return updated, nil
}

func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.productRepo.Delete(ctx, id); err != nil {
		logger.Error("Failed to delete product %s: %v", id, err)
		uc.notifier.Notify(notify.ProductDeleteFailed)
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

	uc.notifier.Notify(notify.ProductDeleted)
	return nil
}

func (uc *ProductUseCase) setLoading(v bool) {
	uc.mu.Lock()
	uc.loading = v
	uc.mu.Unlock()
}
