package handler

import (
	"souqtech/internal/infrastructure/storage"
	"souqtech/internal/infrastructure/websocket"
	"souqtech/internal/usecase"
)

var (
	productHandler     *ProductHandler
	reviewHandler      *ReviewHandler
	messageHandler     *MessageHandler
	commentHandler     *CommentHandler
	faqHandler         *FAQHandler
	galleryHandler     *GalleryHandler
	offerHandler       *OfferHandler
	testimonialHandler *TestimonialHandler
	cartHandler        *CartHandler
	authHandler        *AuthHandler
	settingsHandler    *SettingsHandler
	healthHandler      *HealthHandler
)

func Setup(store *usecase.Store) {
	productHandler = NewProductHandler(store)
	reviewHandler = NewReviewHandler(store)
	messageHandler = NewMessageHandler(store)
	commentHandler = NewCommentHandler(store)
	faqHandler = NewFAQHandler(store)
	galleryHandler = NewGalleryHandler(store)
	offerHandler = NewOfferHandler(store)
	testimonialHandler = NewTestimonialHandler(store)
	cartHandler = NewCartHandler(store)
	authHandler = NewAuthHandler(store)
	settingsHandler = NewSettingsHandler(store)
	healthHandler = NewHealthHandler()
}

var fileHandler *FileHandler

func SetupFileHandler(storageClient *storage.CloudStorageClient) {
	fileHandler = NewFileHandler(storageClient)
}

var notificationHandler *NotificationHandler

func SetupNotificationHandler(hub *websocket.Hub) {
	notificationHandler = NewNotificationHandler(hub)
}

func GetProductHandler() *ProductHandler         { return productHandler }
func GetReviewHandler() *ReviewHandler           { return reviewHandler }
func GetMessageHandler() *MessageHandler         { return messageHandler }
func GetCommentHandler() *CommentHandler         { return commentHandler }
func GetFAQHandler() *FAQHandler                 { return faqHandler }
func GetGalleryHandler() *GalleryHandler         { return galleryHandler }
func GetOfferHandler() *OfferHandler             { return offerHandler }
func GetTestimonialHandler() *TestimonialHandler { return testimonialHandler }
func GetCartHandler() *CartHandler               { return cartHandler }
func GetAuthHandler() *AuthHandler               { return authHandler }
func GetSettingsHandler() *SettingsHandler       { return settingsHandler }
func GetHealthHandler() *HealthHandler           { return healthHandler }
func GetFileHandler() *FileHandler               { return fileHandler }
func GetNotificationHandler() *NotificationHandler {
	return notificationHandler
}
