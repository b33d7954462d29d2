package main

import (
	"context"
	"log"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"souqtech/internal/adapter/api"
	"souqtech/internal/adapter/api/handler"
	apimiddleware "souqtech/internal/adapter/api/middleware"
	"souqtech/internal/adapter/api/router"
	"souqtech/internal/adapter/repository"
	"souqtech/internal/infrastructure/localstate"
	"souqtech/internal/infrastructure/notify"
	"souqtech/internal/infrastructure/storage"
	"souqtech/internal/infrastructure/websocket"
	"souqtech/internal/usecase"
	"souqtech/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	serviceAccountPath := ""

	// Production deployments inject the credentials directly; local
	// development points at a key file.
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath = os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	firestoreClient, err := firebaseApp.Firestore(ctx)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, serviceAccountPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	state, err := localstate.Open(cfg.StateFile)
	if err != nil {
		log.Fatalf("Failed to open state file: %v", err)
	}

	hub := websocket.NewHub()
	hub.Start(ctx)

	notifier := notify.NewService(hub, cfg.DefaultLanguage)

	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	reviewRepo := repository.NewFirestoreReviewRepository(firestoreClient)
	messageRepo := repository.NewFirestoreMessageRepository(firestoreClient)
	commentRepo := repository.NewFirestoreCommentRepository(firestoreClient)
	faqRepo := repository.NewFirestoreFAQRepository(firestoreClient)
	galleryRepo := repository.NewFirestoreGalleryRepository(firestoreClient)
	offerRepo := repository.NewFirestoreOfferRepository(firestoreClient)
	testimonialRepo := repository.NewFirestoreTestimonialRepository(firestoreClient)
	adminUserRepo := repository.NewFirestoreAdminUserRepository(firestoreClient)

	store := usecase.NewStore(usecase.StoreDeps{
		Products:     usecase.NewProductUseCase(productRepo, notifier),
		Reviews:      usecase.NewReviewUseCase(reviewRepo, notifier),
		Messages:     usecase.NewMessageUseCase(messageRepo, notifier),
		Comments:     usecase.NewCommentUseCase(commentRepo, notifier),
		FAQs:         usecase.NewFAQUseCase(faqRepo, notifier),
		Gallery:      usecase.NewGalleryUseCase(galleryRepo, notifier),
		Offers:       usecase.NewOfferUseCase(offerRepo, notifier),
		Testimonials: usecase.NewTestimonialUseCase(testimonialRepo, notifier),
		AdminRepo:    adminUserRepo,
		Notifier:     notifier,
		State:        state,
		JWTSecret:    cfg.JWTSecret,
		DefaultLang:  cfg.DefaultLanguage,
	})

	store.RefreshAll(ctx)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	handler.Setup(store)
	handler.SetupFileHandler(storageClient)
	handler.SetupNotificationHandler(hub)

	adminMiddleware := apimiddleware.NewAdminMiddleware(store, cfg.JWTSecret)

	router.Setup(e, adminMiddleware)
	router.SetupFileRouter(e, adminMiddleware)
	router.SetupWebSocketRouter(e)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
