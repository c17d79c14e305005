package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"habitly-be/internal/models"
	"habitly-be/internal/repository/mocks"
)

func newTrackerFixture(t *testing.T, now time.Time) (*mocks.MockStatusRepository, *trackerService) {
	ctrl := gomock.NewController(t)
	statusRepo := mocks.NewMockStatusRepository(ctrl)
	svc := &trackerService{
		statusRepo: statusRepo,
		now:        func() time.Time { return now },
	}
	return statusRepo, svc
}

func TestMyHabits(t *testing.T) {
	day := time.Date(2025, 3, 14, 9, 26, 0, 0, time.UTC)

	t.Run("reconciles before listing", func(t *testing.T) {
		statusRepo, svc := newTrackerFixture(t, day)
		listed := []*models.MyHabitStatus{
			{HabitID: testHabitID, DisplayName: "Drink 8 Glasses of Water", Status: "Pending"},
		}
		gomock.InOrder(
			statusRepo.EXPECT().EnsureToday(testUserID, "2025-03-14").Return(int64(1), nil),
			statusRepo.EXPECT().ListForDay(testUserID, "2025-03-14").Return(listed, nil),
		)

		resp, err := svc.MyHabits(testUserID)
		require.NoError(t, err)
		assert.Equal(t, "2025-03-14", resp.Date)
		assert.Equal(t, listed, resp.Habits)
	})

	t.Run("repeat calls within a day stay idempotent", func(t *testing.T) {
		statusRepo, svc := newTrackerFixture(t, day)
		statusRepo.EXPECT().EnsureToday(testUserID, "2025-03-14").Return(int64(0), nil).Times(2)
		statusRepo.EXPECT().ListForDay(testUserID, "2025-03-14").Return(nil, nil).Times(2)

		for i := 0; i < 2; i++ {
			_, err := svc.MyHabits(testUserID)
			require.NoError(t, err)
		}
	})

	t.Run("a new calendar day targets a fresh date", func(t *testing.T) {
		statusRepo, svc := newTrackerFixture(t, day.Add(24*time.Hour))
		statusRepo.EXPECT().EnsureToday(testUserID, "2025-03-15").Return(int64(1), nil)
		statusRepo.EXPECT().ListForDay(testUserID, "2025-03-15").Return(nil, nil)

		resp, err := svc.MyHabits(testUserID)
		require.NoError(t, err)
		assert.Equal(t, "2025-03-15", resp.Date)
	})
}

func TestMark(t *testing.T) {
	day := time.Date(2025, 3, 14, 21, 0, 0, 0, time.UTC)

	t.Run("writes the requested status", func(t *testing.T) {
		statusRepo, svc := newTrackerFixture(t, day)
		statusRepo.EXPECT().Mark(testUserID, testHabitID, "2025-03-14", "Completed").Return(true, nil)

		resp, err := svc.Mark(testUserID, &models.UpdateStatusRequest{HabitID: testHabitID, Status: "Completed"})
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, "Habit marked Completed", resp.Message)
	})

	t.Run("accepts every declared status", func(t *testing.T) {
		for _, status := range []string{"Pending", "Completed", "Missed", "Skipped"} {
			statusRepo, svc := newTrackerFixture(t, day)
			statusRepo.EXPECT().Mark(testUserID, testHabitID, "2025-03-14", status).Return(true, nil)

			_, err := svc.Mark(testUserID, &models.UpdateStatusRequest{HabitID: testHabitID, Status: status})
			require.NoError(t, err, "status %s", status)
		}
	})

	t.Run("rejects an unknown status without touching the repo", func(t *testing.T) {
		_, svc := newTrackerFixture(t, day)

		_, err := svc.Mark(testUserID, &models.UpdateStatusRequest{HabitID: testHabitID, Status: "Done"})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("missing row for today reads as not found", func(t *testing.T) {
		statusRepo, svc := newTrackerFixture(t, day)
		statusRepo.EXPECT().Mark(testUserID, testHabitID, "2025-03-14", "Completed").Return(false, nil)

		_, err := svc.Mark(testUserID, &models.UpdateStatusRequest{HabitID: testHabitID, Status: "Completed"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
