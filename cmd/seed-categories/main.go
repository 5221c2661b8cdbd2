package main

import (
	"context"
	"fmt"
	"os"

	"hushhnotify/internal/adapter/repository"
	"hushhnotify/internal/domain/entity"
	"hushhnotify/internal/infrastructure/firebase"
	"hushhnotify/internal/usecase"
	"hushhnotify/pkg/config"
	"hushhnotify/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration: %v", err)
		return 1
	}
	logger.Configure(cfg.LogLevel, cfg.IsDevelopment())

	opt, err := cfg.ClientOption()
	if err != nil {
		printCredentialHelp(cfg.ServiceAccountPath)
		return 1
	}

	ctx := context.Background()

	client, err := firebase.NewFirestoreOnly(ctx, cfg, opt)
	if err != nil {
		logger.Error("%v", err)
		return 1
	}
	defer client.Close()

	categoryRepo := repository.NewFirestoreCategoryRepository(client, cfg.CategoriesCollection)
	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo)

	count, err := categoryUseCase.SeedCategories(ctx, entity.DefaultCategories())
	if err != nil {
		logger.Error("Error adding categories: %v", err)
		return 1
	}

	logger.Info("Successfully added %d categories to %s", count, cfg.CategoriesCollection)
	return 0
}

func printCredentialHelp(path string) {
	fmt.Fprintf(os.Stderr, "Service account key not found: %s\n\n", path)
	fmt.Fprintln(os.Stderr, "To get a key:")
	fmt.Fprintln(os.Stderr, "  1. Open the Firebase console and select your project")
	fmt.Fprintln(os.Stderr, "  2. Go to Project settings > Service accounts")
	fmt.Fprintln(os.Stderr, "  3. Click \"Generate new private key\"")
	fmt.Fprintf(os.Stderr, "  4. Save the file as %s or set FIREBASE_SERVICE_ACCOUNT_PATH\n", path)
	fmt.Fprintln(os.Stderr, "  5. Run this command again")
}
