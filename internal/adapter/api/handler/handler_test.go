package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"souqtech/internal/adapter/api"
	"souqtech/internal/domain/entity"
	"souqtech/internal/infrastructure/localstate"
	"souqtech/internal/infrastructure/notify"
	"souqtech/internal/usecase"
	"souqtech/pkg/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProductRepo struct {
	items []*entity.Product
}

func (r *stubProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	return r.items, nil
}

func (r *stubProductRepo) Create(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	product.ID = "p-created"
	return product, nil
}

func (r *stubProductRepo) Update(ctx context.Context, id string, updates map[string]interface{}) (*entity.Product, error) {
	return &entity.Product{ID: id}, nil
}

func (r *stubProductRepo) Delete(ctx context.Context, id string) error {
	return nil
}

type stubAdminRepo struct {
	users map[string]*entity.AdminUser
}

func (r *stubAdminRepo) GetByUsername(ctx context.Context, username string) (*entity.AdminUser, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, errors.NotFound("Admin user", nil)
	}
	return user, nil
}

func newTestStore(t *testing.T) *usecase.Store {
	t.Helper()

	state, err := localstate.Open(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)

	notifier := notify.NewService(nil, "ar")
	productRepo := &stubProductRepo{items: []*entity.Product{
		{ID: "p1", Name: "لابتوب", Price: 999},
	}}

	store := usecase.NewStore(usecase.StoreDeps{
		Products: usecase.NewProductUseCase(productRepo, notifier),
		AdminRepo: &stubAdminRepo{users: map[string]*entity.AdminUser{
			"admin": {ID: "a1", Username: "admin", PasswordHash: "secret"},
		}},
		Notifier:    notifier,
		State:       state,
		JWTSecret:   "test-secret",
		DefaultLang: "ar",
	})
	require.NoError(t, store.Products.Refresh(context.Background()))
	return store
}

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = api.NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestListProducts(t *testing.T) {
	h := NewProductHandler(newTestStore(t))
	c, rec := newTestContext(http.MethodGet, "/v1/products", "")

	require.NoError(t, h.ListProducts(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), "لابتوب")
	assert.Contains(t, rec.Body.String(), `"loading":false`)
}

func TestCreateProductValidation(t *testing.T) {
	h := NewProductHandler(newTestStore(t))
	c, rec := newTestContext(http.MethodPost, "/v1/admin/products", `{"price":10}`)

	require.NoError(t, h.CreateProduct(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestAddToCartUnknownProduct(t *testing.T) {
	h := NewCartHandler(newTestStore(t))
	c, rec := newTestContext(http.MethodPost, "/v1/cart/items", `{"product_id":"nope"}`)

	require.NoError(t, h.AddToCart(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
}

func TestAddToCartMergesQuantities(t *testing.T) {
	store := newTestStore(t)
	h := NewCartHandler(store)

	for i := 0; i < 2; i++ {
		c, rec := newTestContext(http.MethodPost, "/v1/cart/items", `{"product_id":"p1"}`)
		require.NoError(t, h.AddToCart(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	cart := store.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 2, cart[0].Quantity)
}

func TestLoginSuccessReturnsToken(t *testing.T) {
	h := NewAuthHandler(newTestStore(t))
	c, rec := newTestContext(http.MethodPost, "/v1/auth/login", `{"username":"admin","password":"secret"}`)

	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token"`)
	assert.Contains(t, rec.Body.String(), `"is_admin":true`)
}

func TestLoginWrongPassword(t *testing.T) {
	h := NewAuthHandler(newTestStore(t))
	c, rec := newTestContext(http.MethodPost, "/v1/auth/login", `{"username":"admin","password":"nope"}`)

	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
}

func TestSetLanguage(t *testing.T) {
	store := newTestStore(t)
	h := NewSettingsHandler(store)

	c, rec := newTestContext(http.MethodPut, "/v1/settings/language", `{"language":"en"}`)
	require.NoError(t, h.SetLanguage(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"direction":"ltr"`)
	assert.Equal(t, "en", store.Language())
}

func TestSetLanguageRejectsUnknown(t *testing.T) {
	h := NewSettingsHandler(newTestStore(t))

	c, rec := newTestContext(http.MethodPut, "/v1/settings/language", `{"language":"fr"}`)
	require.NoError(t, h.SetLanguage(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
