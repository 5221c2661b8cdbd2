package main

import (
	"context"

	"hushhnotify/internal/adapter/api"
	"hushhnotify/internal/adapter/api/handler"
	apimiddleware "hushhnotify/internal/adapter/api/middleware"
	"hushhnotify/internal/adapter/repository"
	"hushhnotify/internal/infrastructure/firebase"
	"hushhnotify/internal/usecase"
	"hushhnotify/pkg/config"
	"hushhnotify/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Logger().Fatalf("Failed to load configuration: %v", err)
	}
	logger.Configure(cfg.LogLevel, cfg.IsDevelopment())

	ctx := context.Background()

	opt, err := cfg.ClientOption()
	if err != nil {
		logger.Logger().Fatalf("Failed to load Firebase credentials: %v", err)
	}

	clients, err := firebase.NewClients(ctx, cfg, opt)
	if err != nil {
		logger.Logger().Fatalf("%v", err)
	}
	defer clients.Close()

	rtdbBidRepo := repository.NewRTDBBidRepository(clients.Database)
	firestoreBidRepo := repository.NewFirestoreBidRepository(clients.Firestore, cfg.BidsCollection)
	recipientRepo := repository.NewFirestoreRecipientRepository(clients.Firestore, cfg.UsersCollection, cfg.AgentsCollection)
	notificationRepo := repository.NewFirestoreNotificationRepository(clients.Firestore, cfg.AgentInboxCollection)

	pushService := firebase.NewMessagingClient(clients.Messaging)
	authClient := firebase.NewFirebaseAuthClient(clients.Auth)

	bidUseCase := usecase.NewBidUseCase(rtdbBidRepo, firestoreBidRepo, recipientRepo, pushService)
	cartNotificationUseCase := usecase.NewCartNotificationUseCase(recipientRepo, notificationRepo, pushService)

	handlers := handler.Setup(bidUseCase, cartNotificationUseCase)
	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)

	e := api.NewServer(handlers, authMiddleware)

	logger.Info("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
