package service

import (
	"errors"

	"habitly-be/internal/entities"
	"habitly-be/internal/models"
	"habitly-be/internal/repository"
)

// SelectionService defines the interface for the selection ledger: adopting,
// renaming and removing habits from a user's personal list.
type SelectionService interface {
	Adopt(userID, habitID string) (*models.ActionResponse, error)
	Rename(userID, habitID string, req *models.RenameHabitRequest) (*models.ActionResponse, error)
	Remove(userID, habitID string) (*models.ActionResponse, error)
}

type selectionService struct {
	selectionRepo repository.SelectionRepository
	catalogRepo   repository.CatalogRepository
}

// NewSelectionService creates a new selection ledger service
func NewSelectionService(selectionRepo repository.SelectionRepository, catalogRepo repository.CatalogRepository) SelectionService {
	return &selectionService{
		selectionRepo: selectionRepo,
		catalogRepo:   catalogRepo,
	}
}

// visibleHabit loads a habit the caller may adopt: predefined, or custom and
// owned by them.
func (s *selectionService) visibleHabit(userID, habitID string) (*entities.Habit, error) {
	habit, err := s.catalogRepo.FindHabitByID(habitID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if habit.UserID != nil && *habit.UserID != userID {
		return nil, ErrNotFound
	}
	return habit, nil
}

// Adopt records the habit in the caller's ledger. Calling it again for the
// same habit is a no-op, not an error.
func (s *selectionService) Adopt(userID, habitID string) (*models.ActionResponse, error) {
	if _, err := s.visibleHabit(userID, habitID); err != nil {
		return nil, err
	}

	created, err := s.selectionRepo.Adopt(userID, habitID)
	if err != nil {
		return nil, err
	}

	message := "Habit added to my habits"
	if !created {
		message = "Habit is already in my habits"
	}
	return &models.ActionResponse{Success: true, Message: message}, nil
}

// Rename sets the caller's display-name override for a habit. Renaming a
// habit that isn't adopted yet adopts it with the override in place.
func (s *selectionService) Rename(userID, habitID string, req *models.RenameHabitRequest) (*models.ActionResponse, error) {
	if _, err := s.visibleHabit(userID, habitID); err != nil {
		return nil, err
	}

	if err := s.selectionRepo.Rename(userID, habitID, req.CustomName); err != nil {
		return nil, err
	}

	return &models.ActionResponse{Success: true, Message: "Habit renamed"}, nil
}

// Remove takes the habit out of the caller's ledger. The outcome depends on
// the habit's origin and the entry's override; see the removal decision table.
func (s *selectionService) Remove(userID, habitID string) (*models.ActionResponse, error) {
	habit, err := s.catalogRepo.FindHabitByID(habitID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	entry, err := s.selectionRepo.Find(userID, habitID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	outcome := resolveRemoval(habit.OwnedBy(userID), entry.HasOverride())

	if outcome.deleteHabit {
		// The ledger entry and any daily statuses cascade with the habit row.
		if err := s.catalogRepo.DeleteHabit(habitID); err != nil {
			return nil, err
		}
	} else {
		if err := s.selectionRepo.Delete(userID, habitID); err != nil {
			return nil, err
		}
	}

	return &models.ActionResponse{Success: true, Message: outcome.message}, nil
}
