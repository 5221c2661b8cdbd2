package usecase

import (
	"context"

	"hushhnotify/internal/domain/entity"
	"hushhnotify/internal/domain/repository"
	"hushhnotify/pkg/errors"
	"hushhnotify/pkg/logger"
)

type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryUseCase(categoryRepo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// SeedCategories uploads the list one document at a time and stops at the
// first failure. It returns how many were written.
func (uc *CategoryUseCase) SeedCategories(ctx context.Context, categories []entity.Category) (int, error) {
	logger.Info("Uploading %d categories to Firestore...", len(categories))

	for i := range categories {
		category := categories[i]
		category.IsActive = true

		logger.Info("Uploading category %d/%d: %s", i+1, len(categories), category.Name)

		id, err := uc.categoryRepo.Add(ctx, &category)
		if err != nil {
			return i, errors.Internal("Failed to upload category "+category.Name, err)
		}

		logger.Debug("Uploaded %s as %s", category.Name, id)
	}

	logger.Info("Total categories uploaded: %d", len(categories))
	return len(categories), nil
}
