package usecase

import (
	"context"
	"path/filepath"
	"testing"

	"souqtech/internal/domain/entity"
	"souqtech/internal/infrastructure/localstate"
	"souqtech/internal/infrastructure/notify"
	"souqtech/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, statePath string) (*Store, *fakeProductRepo, *recordingNotifier) {
	t.Helper()

	state, err := localstate.Open(statePath)
	require.NoError(t, err)

	productRepo := &fakeProductRepo{}
	notifier := &recordingNotifier{}

	store := NewStore(StoreDeps{
		Products: NewProductUseCase(productRepo, notifier),
		AdminRepo: &fakeAdminRepo{users: map[string]*entity.AdminUser{
			"admin": {ID: "a1", Username: "admin", PasswordHash: "secret"},
		}},
		Notifier:    notifier,
		State:       state,
		JWTSecret:   "test-secret",
		DefaultLang: "ar",
	})
	return store, productRepo, notifier
}

func statePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "state.json")
}

func TestCartAddMergesByProduct(t *testing.T) {
	store, _, _ := newTestStore(t, statePath(t))
	product := entity.Product{ID: "p1", Name: "سماعات", Price: 50}

	store.AddToCart(product)
	store.AddToCart(product)

	cart := store.Cart()
	assert.Len(t, cart, 1)
	assert.Equal(t, 2, cart[0].Quantity)
}

func TestCartQuantityZeroRemovesLine(t *testing.T) {
	store, _, _ := newTestStore(t, statePath(t))
	store.AddToCart(entity.Product{ID: "p1"})
	store.AddToCart(entity.Product{ID: "p2"})

	store.UpdateCartQuantity("p1", 0)

	cart := store.Cart()
	assert.Len(t, cart, 1)
	assert.Equal(t, "p2", cart[0].Product.ID)
}

func TestCartQuantityNegativeRemovesLine(t *testing.T) {
	store, _, _ := newTestStore(t, statePath(t))
	store.AddToCart(entity.Product{ID: "p1"})

	store.UpdateCartQuantity("p1", -5)

	assert.Empty(t, store.Cart())
}

func TestCartUpdateQuantity(t *testing.T) {
	store, _, _ := newTestStore(t, statePath(t))
	store.AddToCart(entity.Product{ID: "p1"})

	store.UpdateCartQuantity("p1", 7)

	cart := store.Cart()
	assert.Len(t, cart, 1)
	assert.Equal(t, 7, cart[0].Quantity)
}

func TestCartClear(t *testing.T) {
	store, _, _ := newTestStore(t, statePath(t))
	store.AddToCart(entity.Product{ID: "p1"})
	store.AddToCart(entity.Product{ID: "p2"})

	store.ClearCart()

	assert.Empty(t, store.Cart())
}

func TestFavoritesAllowRepeats(t *testing.T) {
	store, _, _ := newTestStore(t, statePath(t))

	store.AddToFavorites("p1")
	store.AddToFavorites("p1")

	assert.Equal(t, []string{"p1", "p1"}, store.Favorites())

	store.RemoveFromFavorites("p1")
	assert.Empty(t, store.Favorites())
}

func TestDeleteProductCascadesIntoLocalState(t *testing.T) {
	store, productRepo, _ := newTestStore(t, statePath(t))
	productRepo.items = []*entity.Product{{ID: "p1"}, {ID: "p2"}}
	require.NoError(t, store.Products.Refresh(context.Background()))

	store.AddToCart(entity.Product{ID: "p1"})
	store.AddToCart(entity.Product{ID: "p2"})
	store.AddToFavorites("p1")
	store.AddToFavorites("p2")

	require.NoError(t, store.DeleteProduct(context.Background(), "p1"))

	cart := store.Cart()
	assert.Len(t, cart, 1)
	assert.Equal(t, "p2", cart[0].Product.ID)
	assert.Equal(t, []string{"p2"}, store.Favorites())
	assert.Len(t, store.Products.Items(), 1)
}

func TestLocalStateSurvivesRestart(t *testing.T) {
	path := statePath(t)

	store, _, _ := newTestStore(t, path)
	store.AddToCart(entity.Product{ID: "p1", Name: "كاميرا"})
	store.AddToFavorites("p1")
	require.NoError(t, store.SetLanguage("en"))
	_, err := store.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)

	reopened, _, _ := newTestStore(t, path)

	cart := reopened.Cart()
	assert.Len(t, cart, 1)
	assert.Equal(t, "p1", cart[0].Product.ID)
	assert.Equal(t, []string{"p1"}, reopened.Favorites())
	assert.Equal(t, "en", reopened.Language())
	assert.True(t, reopened.IsAdmin())
}

func TestLoginSuccess(t *testing.T) {
	store, _, notifier := newTestStore(t, statePath(t))

	token, err := store.Login(context.Background(), "admin", "secret")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, store.IsAdmin())
	assert.Contains(t, notifier.Events(), notify.LoginSucceeded)
}

func TestLoginUnknownUser(t *testing.T) {
	store, _, notifier := newTestStore(t, statePath(t))

	_, err := store.Login(context.Background(), "nobody", "secret")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
	assert.False(t, store.IsAdmin())
	assert.Contains(t, notifier.Events(), notify.LoginUnknownUser)
}

func TestLoginWrongPassword(t *testing.T) {
	store, _, notifier := newTestStore(t, statePath(t))

	_, err := store.Login(context.Background(), "admin", "wrong")

	assert.Error(t, err)
	assert.False(t, store.IsAdmin())
	assert.Contains(t, notifier.Events(), notify.LoginWrongPassword)
}

func TestLogoutClearsAdminFlag(t *testing.T) {
	path := statePath(t)
	store, _, _ := newTestStore(t, path)
	_, err := store.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)

	store.Logout()

	assert.False(t, store.IsAdmin())
	reopened, _, _ := newTestStore(t, path)
	assert.False(t, reopened.IsAdmin())
}

func TestLanguageAndDirection(t *testing.T) {
	store, _, _ := newTestStore(t, statePath(t))

	assert.Equal(t, "ar", store.Language())
	assert.Equal(t, "rtl", store.Direction())

	require.NoError(t, store.SetLanguage("en"))
	assert.Equal(t, "ltr", store.Direction())

	err := store.SetLanguage("fr")
	assert.Error(t, err)
	assert.Equal(t, "en", store.Language())
}
