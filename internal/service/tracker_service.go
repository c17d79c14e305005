package service

import (
	"fmt"
	"time"

	"habitly-be/internal/entities"
	"habitly-be/internal/models"
	"habitly-be/internal/repository"
)

const dateLayout = "2006-01-02"

// TrackerService defines the interface for the daily status tracker.
type TrackerService interface {
	// MyHabits reconciles today's status rows against the selection ledger
	// and returns them. Safe to call any number of times per day.
	MyHabits(userID string) (*models.MyHabitsResponse, error)
	// Mark sets today's status for one habit. The row must already exist,
	// which MyHabits guarantees for every adopted habit.
	Mark(userID string, req *models.UpdateStatusRequest) (*models.ActionResponse, error)
}

type trackerService struct {
	statusRepo repository.StatusRepository
	now        func() time.Time
}

// NewTrackerService creates a new tracker service
func NewTrackerService(statusRepo repository.StatusRepository) TrackerService {
	return &trackerService{
		statusRepo: statusRepo,
		now:        time.Now,
	}
}

func (s *trackerService) today() string {
	return s.now().Format(dateLayout)
}

// MyHabits ensures a Pending row exists for every adopted habit today, then
// lists the day's statuses. A new calendar day implicitly resets tracking:
// fresh Pending rows appear for the new date and prior days are untouched.
func (s *trackerService) MyHabits(userID string) (*models.MyHabitsResponse, error) {
	day := s.today()

	if _, err := s.statusRepo.EnsureToday(userID, day); err != nil {
		return nil, err
	}

	statuses, err := s.statusRepo.ListForDay(userID, day)
	if err != nil {
		return nil, err
	}

	return &models.MyHabitsResponse{
		Date:   day,
		Habits: statuses,
	}, nil
}

// Mark writes the caller-supplied status after validating it against the
// declared set and stamps the time of marking.
func (s *trackerService) Mark(userID string, req *models.UpdateStatusRequest) (*models.ActionResponse, error) {
	status := entities.Status(req.Status)
	if !entities.ValidStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	updated, err := s.statusRepo.Mark(userID, req.HabitID, s.today(), string(status))
	if err != nil {
		return nil, err
	}
	if !updated {
		// No row for today: either the habit isn't adopted or the my-habits
		// view hasn't been requested yet today.
		return nil, ErrNotFound
	}

	return &models.ActionResponse{
		Success: true,
		Message: fmt.Sprintf("Habit marked %s", status),
	}, nil
}
