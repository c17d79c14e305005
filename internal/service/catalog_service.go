package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"habitly-be/internal/cache"
	"habitly-be/internal/entities"
	"habitly-be/internal/models"
	"habitly-be/internal/repository"
)

const predefinedCatalogKey = "catalog:predefined:categories"

// CatalogService defines the interface for category/habit browsing, custom
// catalog entries and the startup seed.
type CatalogService interface {
	Seed() error
	Categories(userID string) (*models.CategoryListResponse, error)
	CreateCategory(userID string, req *models.CreateCategoryRequest) (*entities.Category, error)
	DeleteCategory(userID, categoryID string) error
	HabitsInCategory(userID, categoryID string) (*models.HabitListResponse, error)
	CreateHabit(userID, categoryID string, req *models.CreateHabitRequest) (*entities.Habit, error)
	UpdateHabit(userID, habitID string, req *models.UpdateHabitRequest) error
}

type catalogService struct {
	repo     repository.CatalogRepository
	cache    cache.Cache
	cacheTTL time.Duration
	ctx      context.Context
}

// NewCatalogService creates a new catalog service. cacheClient may be nil;
// the service then always reads the catalog from the database.
func NewCatalogService(repo repository.CatalogRepository, cacheClient cache.Cache, cacheTTL time.Duration) CatalogService {
	return &catalogService{
		repo:     repo,
		cache:    cacheClient,
		cacheTTL: cacheTTL,
		ctx:      context.Background(),
	}
}

// Seed populates the predefined categories and habits if absent. Runs at
// process start; re-running creates no duplicates.
func (s *catalogService) Seed() error {
	for _, category := range defaultCatalog {
		categoryID, err := s.repo.SeedCategory(category.Name)
		if err != nil {
			return err
		}
		for _, habit := range category.Habits {
			if err := s.repo.SeedHabit(categoryID, habit); err != nil {
				return err
			}
		}
	}

	// The predefined catalog may have changed shape; drop the cached copy.
	if s.cache != nil {
		if err := s.cache.Delete(s.ctx, predefinedCatalogKey); err != nil {
			log.Printf("Warning: failed to invalidate catalog cache: %v", err)
		}
	}

	return nil
}

// Categories returns the predefined categories plus the caller's custom ones.
// The predefined half is shared by every user and rarely changes, so it is
// served cache-aside from Redis when available.
func (s *catalogService) Categories(userID string) (*models.CategoryListResponse, error) {
	predefined, err := s.predefinedCategories()
	if err != nil {
		return nil, err
	}

	custom, err := s.repo.ListCustomCategories(userID)
	if err != nil {
		return nil, err
	}

	return &models.CategoryListResponse{
		Predefined: predefined,
		Custom:     custom,
	}, nil
}

func (s *catalogService) predefinedCategories() ([]*entities.Category, error) {
	if s.cache != nil {
		var cached []*entities.Category
		if err := s.cache.GetJSON(s.ctx, predefinedCatalogKey, &cached); err == nil && len(cached) > 0 {
			return cached, nil
		}
	}

	predefined, err := s.repo.ListPredefinedCategories()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(s.ctx, predefinedCatalogKey, predefined, s.cacheTTL); err != nil {
			log.Printf("Warning: failed to cache predefined catalog: %v", err)
		}
	}

	return predefined, nil
}

// CreateCategory creates a custom category owned by the caller
func (s *catalogService) CreateCategory(userID string, req *models.CreateCategoryRequest) (*entities.Category, error) {
	category, err := s.repo.CreateCategory(req.Name, userID)
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, fmt.Errorf("%w: category %q already exists", ErrConflict, req.Name)
	}
	if err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory deletes a custom category owned by the caller. Predefined
// categories cannot be deleted.
func (s *catalogService) DeleteCategory(userID, categoryID string) error {
	err := s.repo.DeleteCustomCategory(categoryID, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// visibleCategory loads a category the caller is allowed to see: predefined,
// or custom and owned by them. Anything else reads as not found.
func (s *catalogService) visibleCategory(userID, categoryID string) (*entities.Category, error) {
	category, err := s.repo.FindCategoryByID(categoryID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if category.UserID != nil && *category.UserID != userID {
		return nil, ErrNotFound
	}
	return category, nil
}

// HabitsInCategory lists the habits the caller can see in a category
func (s *catalogService) HabitsInCategory(userID, categoryID string) (*models.HabitListResponse, error) {
	category, err := s.visibleCategory(userID, categoryID)
	if err != nil {
		return nil, err
	}

	habits, err := s.repo.ListHabitsByCategory(categoryID, userID)
	if err != nil {
		return nil, err
	}

	return &models.HabitListResponse{
		CategoryID: category.ID,
		Category:   category.Name,
		Habits:     habits,
	}, nil
}

// CreateHabit creates a custom habit owned by the caller in a visible category
func (s *catalogService) CreateHabit(userID, categoryID string, req *models.CreateHabitRequest) (*entities.Habit, error) {
	if _, err := s.visibleCategory(userID, categoryID); err != nil {
		return nil, err
	}
	return s.repo.CreateHabit(categoryID, userID, req.Name)
}

// UpdateHabit renames a custom habit. Only the owner may rename it, and
// predefined habits are immutable (users rename those for themselves through
// the selection ledger instead).
func (s *catalogService) UpdateHabit(userID, habitID string, req *models.UpdateHabitRequest) error {
	err := s.repo.UpdateCustomHabitName(habitID, userID, req.Name)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
