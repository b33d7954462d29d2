package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"souqtech/internal/domain/entity"
	"souqtech/internal/domain/repository"
	"souqtech/internal/infrastructure/localstate"
	"souqtech/internal/infrastructure/notify"
	"souqtech/pkg/errors"
	"souqtech/pkg/logger"
)

const (
	stateKeyCart      = "cart"
	stateKeyFavorites = "favorites"
	stateKeyIsAdmin   = "isAdmin"
	stateKeyLanguage  = "language"
)

// CartItem is a product line in the device-local cart. Quantity is always
// at least 1; a line whose quantity drops to 0 is removed, not stored.
type CartItem struct {
	Product  entity.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// Store composes every entity use case into the single surface the UI is
// allowed to talk to, and owns the purely local state: cart, favorites,
// admin-session flag and UI language, all persisted to the state file on
// every change and hydrated once at startup.
type Store struct {
	Products     *ProductUseCase
	Reviews      *ReviewUseCase
	Messages     *MessageUseCase
	Comments     *CommentUseCase
	FAQs         *FAQUseCase
	Gallery      *GalleryUseCase
	Offers       *OfferUseCase
	Testimonials *TestimonialUseCase

	adminRepo repository.AdminUserRepository
	notifier  Notifier
	state     *localstate.Store
	jwtSecret string

	mu        sync.RWMutex
	cart      []CartItem
	favorites []string
	isAdmin   bool
	language  string
}

type StoreDeps struct {
	Products     *ProductUseCase
	Reviews      *ReviewUseCase
	Messages     *MessageUseCase
	Comments     *CommentUseCase
	FAQs         *FAQUseCase
	Gallery      *GalleryUseCase
	Offers       *OfferUseCase
	Testimonials *TestimonialUseCase
	AdminRepo    repository.AdminUserRepository
	Notifier     Notifier
	State        *localstate.Store
	JWTSecret    string
	DefaultLang  string
}

func NewStore(deps StoreDeps) *Store {
	s := &Store{
		Products:     deps.Products,
		Reviews:      deps.Reviews,
		Messages:     deps.Messages,
		Comments:     deps.Comments,
		FAQs:         deps.FAQs,
		Gallery:      deps.Gallery,
		Offers:       deps.Offers,
		Testimonials: deps.Testimonials,
		adminRepo:    deps.AdminRepo,
		notifier:     deps.Notifier,
		state:        deps.State,
		jwtSecret:    deps.JWTSecret,
		language:     deps.DefaultLang,
	}
	if s.language == "" {
		s.language = "ar"
	}
	s.hydrate()
	return s
}

// hydrate restores local state from the state file, once, at construction.
func (s *Store) hydrate() {
	if s.state == nil {
		return
	}

	if raw, ok := s.state.Get(stateKeyCart); ok {
		if err := json.Unmarshal([]byte(raw), &s.cart); err != nil {
			logger.Warn("Discarding unreadable saved cart: %v", err)
			s.cart = nil
		}
	}
	if raw, ok := s.state.Get(stateKeyFavorites); ok {
		if err := json.Unmarshal([]byte(raw), &s.favorites); err != nil {
			logger.Warn("Discarding unreadable saved favorites: %v", err)
			s.favorites = nil
		}
	}
	if flag, ok := s.state.Get(stateKeyIsAdmin); ok && flag == "true" {
		s.isAdmin = true
	}
	if lang, ok := s.state.Get(stateKeyLanguage); ok && (lang == "ar" || lang == "en") {
		s.language = lang
	}
	s.syncNotifierLanguage()
}

// RefreshAll performs the initial load of every collection. Each failure is
// independent and already surfaced through its own toast.
func (s *Store) RefreshAll(ctx context.Context) {
	s.Products.Refresh(ctx)
	s.Reviews.Refresh(ctx)
	s.Messages.Refresh(ctx)
	s.Comments.Refresh(ctx)
	s.FAQs.Refresh(ctx)
	s.Gallery.Refresh(ctx)
	s.Offers.Refresh(ctx)
	s.Testimonials.Refresh(ctx)
}

// Legacy-aliased read surface. Derived from the authoritative lists on every
// call.

func (s *Store) ProductViews() []ProductView {
	items := s.Products.Items()
	views := make([]ProductView, len(items))
	for i, item := range items {
		views[i] = NewProductView(item)
	}
	return views
}

func (s *Store) ReviewViews() []ReviewView {
	items := s.Reviews.Items()
	views := make([]ReviewView, len(items))
	for i, item := range items {
		views[i] = NewReviewView(item)
	}
	return views
}

func (s *Store) MessageViews() []MessageView {
	items := s.Messages.Items()
	views := make([]MessageView, len(items))
	for i, item := range items {
		views[i] = NewMessageView(item)
	}
	return views
}

func (s *Store) CommentViews() []CommentView {
	items := s.Comments.Items()
	views := make([]CommentView, len(items))
	for i, item := range items {
		views[i] = NewCommentView(item)
	}
	return views
}

func (s *Store) FAQViews() []FAQView {
	items := s.FAQs.Items()
	views := make([]FAQView, len(items))
	for i, item := range items {
		views[i] = NewFAQView(item)
	}
	return views
}

func (s *Store) GalleryItemViews() []GalleryItemView {
	items := s.Gallery.Items()
	views := make([]GalleryItemView, len(items))
	for i, item := range items {
		views[i] = NewGalleryItemView(item)
	}
	return views
}

func (s *Store) OfferViews() []OfferView {
	items := s.Offers.Items()
	views := make([]OfferView, len(items))
	for i, item := range items {
		views[i] = NewOfferView(item)
	}
	return views
}

func (s *Store) TestimonialViews() []*entity.Testimonial {
	return s.Testimonials.Items()
}

// Cart

func (s *Store) Cart() []CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart := make([]CartItem, len(s.cart))
	copy(cart, s.cart)
	return cart
}

// AddToCart merges by product id: a second add of the same product bumps the
// quantity instead of appending a new line.
func (s *Store) AddToCart(product entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.cart {
		if item.Product.ID == product.ID {
			s.cart[i].Quantity++
			s.persistCartLocked()
			return
		}
	}

	s.cart = append(s.cart, CartItem{Product: product, Quantity: 1})
	s.persistCartLocked()
}

func (s *Store) RemoveFromCart(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeFromCartLocked(productID)
	s.persistCartLocked()
}

// UpdateCartQuantity sets the line quantity; zero or negative removes the
// line entirely.
func (s *Store) UpdateCartQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeFromCartLocked(productID)
		s.persistCartLocked()
		return
	}

	for i, item := range s.cart {
		if item.Product.ID == productID {
			s.cart[i].Quantity = quantity
			break
		}
	}
	s.persistCartLocked()
}

func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
	s.persistCartLocked()
}

func (s *Store) removeFromCartLocked(productID string) {
	filtered := s.cart[:0]
	for _, item := range s.cart {
		if item.Product.ID != productID {
			filtered = append(filtered, item)
		}
	}
	s.cart = filtered
}

// Favorites

func (s *Store) Favorites() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	favorites := make([]string, len(s.favorites))
	copy(favorites, s.favorites)
	return favorites
}

func (s *Store) AddToFavorites(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.favorites = append(s.favorites, productID)
	s.persistFavoritesLocked()
}

func (s *Store) RemoveFromFavorites(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := s.favorites[:0]
	for _, id := range s.favorites {
		if id != productID {
			filtered = append(filtered, id)
		}
	}
	s.favorites = filtered
	s.persistFavoritesLocked()
}

// DeleteProduct removes the product remotely, then drops it from the cart
// and favorites so no local state dangles.
func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	if err := s.Products.Delete(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	s.removeFromCartLocked(id)
	filtered := s.favorites[:0]
	for _, fav := range s.favorites {
		if fav != id {
			filtered = append(filtered, fav)
		}
	}
	s.favorites = filtered
	s.persistCartLocked()
	s.persistFavoritesLocked()
	s.mu.Unlock()

	return nil
}

// Admin session

// Login looks the username up in the admin credentials table and compares
// the stored password value with the supplied one. On success the admin flag
// is set, persisted and trusted on every later start; the returned token
// authenticates subsequent admin requests.
func (s *Store) Login(ctx context.Context, username, password string) (string, error) {
	admin, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			s.notifier.Notify(notify.LoginUnknownUser)
			return "", errors.Unauthorized("Invalid credentials", err)
		}
		logger.Error("Login lookup failed: %v", err)
		s.notifier.Notify(notify.LoginFailed)
		return "", err
	}

	if admin.PasswordHash != password {
		s.notifier.Notify(notify.LoginWrongPassword)
		return "", errors.Unauthorized("Invalid credentials", nil)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  admin.Username,
		"role": "admin",
		"iat":  time.Now().Unix(),
	})
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		logger.Error("Failed to sign session token: %v", err)
		s.notifier.Notify(notify.LoginFailed)
		return "", errors.Internal("Failed to create session", err)
	}

	s.mu.Lock()
	s.isAdmin = true
	s.mu.Unlock()
	if s.state != nil {
		if err := s.state.Set(stateKeyIsAdmin, "true"); err != nil {
			logger.Warn("Failed to persist admin flag: %v", err)
		}
	}

	s.notifier.Notify(notify.LoginSucceeded)
	return signed, nil
}

func (s *Store) Logout() {
	s.mu.Lock()
	s.isAdmin = false
	s.mu.Unlock()

	if s.state != nil {
		if err := s.state.Remove(stateKeyIsAdmin); err != nil {
			logger.Warn("Failed to clear admin flag: %v", err)
		}
	}
}

func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isAdmin
}

// Language

func (s *Store) Language() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.language
}

// Direction returns the document text direction for the current language.
func (s *Store) Direction() string {
	if s.Language() == "ar" {
		return "rtl"
	}
	return "ltr"
}

func (s *Store) SetLanguage(lang string) error {
	if lang != "ar" && lang != "en" {
		return errors.BadRequest("Unsupported language", nil)
	}

	s.mu.Lock()
	s.language = lang
	s.mu.Unlock()

	if s.state != nil {
		if err := s.state.Set(stateKeyLanguage, lang); err != nil {
			logger.Warn("Failed to persist language: %v", err)
		}
	}

	s.syncNotifierLanguage()
	return nil
}

func (s *Store) syncNotifierLanguage() {
	if setter, ok := s.notifier.(interface{ SetLanguage(string) }); ok {
		setter.SetLanguage(s.language)
	}
}

func (s *Store) persistCartLocked() {
	if s.state == nil {
		return
	}
	raw, err := json.Marshal(s.cart)
	if err != nil {
		logger.Warn("Failed to encode cart: %v", err)
		return
	}
	if err := s.state.Set(stateKeyCart, string(raw)); err != nil {
		logger.Warn("Failed to persist cart: %v", err)
	}
}

func (s *Store) persistFavoritesLocked() {
	if s.state == nil {
		return
	}
	raw, err := json.Marshal(s.favorites)
	if err != nil {
		logger.Warn("Failed to encode favorites: %v", err)
		return
	}
	if err := s.state.Set(stateKeyFavorites, string(raw)); err != nil {
		logger.Warn("Failed to persist favorites: %v", err)
	}
}
