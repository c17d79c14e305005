package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"habitly-be/internal/entities"
	"habitly-be/internal/models"
	"habitly-be/internal/repository"
	"habitly-be/internal/repository/mocks"
)

const testCategoryID = "44444444-4444-4444-4444-444444444444"

func newCatalogFixture(t *testing.T) (*mocks.MockCatalogRepository, CatalogService) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCatalogRepository(ctrl)
	// nil cache: the service must work without Redis
	return repo, NewCatalogService(repo, nil, time.Hour)
}

func TestSeed(t *testing.T) {
	repo, svc := newCatalogFixture(t)

	totalHabits := 0
	for _, category := range defaultCatalog {
		repo.EXPECT().SeedCategory(category.Name).Return(testCategoryID, nil)
		totalHabits += len(category.Habits)
	}
	repo.EXPECT().SeedHabit(testCategoryID, gomock.Any()).Return(nil).Times(totalHabits)

	require.NoError(t, svc.Seed())

	// The baseline dataset: 5 categories of 7 habits each.
	assert.Len(t, defaultCatalog, 5)
	assert.Equal(t, 35, totalHabits)
}

func TestCategories(t *testing.T) {
	repo, svc := newCatalogFixture(t)

	predefined := []*entities.Category{{ID: testCategoryID, Name: "Health & Wellness"}}
	custom := []*entities.Category{{ID: "55555555-5555-5555-5555-555555555555", Name: "Music", IsCustom: true, UserID: strptr(testUserID)}}
	repo.EXPECT().ListPredefinedCategories().Return(predefined, nil)
	repo.EXPECT().ListCustomCategories(testUserID).Return(custom, nil)

	resp, err := svc.Categories(testUserID)
	require.NoError(t, err)
	assert.Equal(t, predefined, resp.Predefined)
	assert.Equal(t, custom, resp.Custom)
}

func TestHabitsInCategory(t *testing.T) {
	t.Run("lists habits in a visible category", func(t *testing.T) {
		repo, svc := newCatalogFixture(t)
		repo.EXPECT().FindCategoryByID(testCategoryID).Return(&entities.Category{ID: testCategoryID, Name: "Health & Wellness"}, nil)
		habits := []*entities.Habit{{ID: testHabitID, CategoryID: testCategoryID, Name: "Drink 8 Glasses of Water"}}
		repo.EXPECT().ListHabitsByCategory(testCategoryID, testUserID).Return(habits, nil)

		resp, err := svc.HabitsInCategory(testUserID, testCategoryID)
		require.NoError(t, err)
		assert.Equal(t, "Health & Wellness", resp.Category)
		assert.Equal(t, habits, resp.Habits)
	})

	t.Run("another user's custom category is invisible", func(t *testing.T) {
		repo, svc := newCatalogFixture(t)
		repo.EXPECT().FindCategoryByID(testCategoryID).Return(&entities.Category{
			ID:       testCategoryID,
			Name:     "Private",
			IsCustom: true,
			UserID:   strptr(otherUserID),
		}, nil)

		_, err := svc.HabitsInCategory(testUserID, testCategoryID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCreateCategory(t *testing.T) {
	t.Run("creates a custom category", func(t *testing.T) {
		repo, svc := newCatalogFixture(t)
		created := &entities.Category{ID: testCategoryID, Name: "Music", IsCustom: true, UserID: strptr(testUserID)}
		repo.EXPECT().CreateCategory("Music", testUserID).Return(created, nil)

		category, err := svc.CreateCategory(testUserID, &models.CreateCategoryRequest{Name: "Music"})
		require.NoError(t, err)
		assert.True(t, category.IsCustom)
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		repo, svc := newCatalogFixture(t)
		repo.EXPECT().CreateCategory("Music", testUserID).Return(nil, repository.ErrDuplicate)

		_, err := svc.CreateCategory(testUserID, &models.CreateCategoryRequest{Name: "Music"})
		assert.ErrorIs(t, err, ErrConflict)
	})
}

func TestUpdateHabit(t *testing.T) {
	t.Run("renames an owned custom habit", func(t *testing.T) {
		repo, svc := newCatalogFixture(t)
		repo.EXPECT().UpdateCustomHabitName(testHabitID, testUserID, "Practice Guitar").Return(nil)

		err := svc.UpdateHabit(testUserID, testHabitID, &models.UpdateHabitRequest{Name: "Practice Guitar"})
		assert.NoError(t, err)
	})

	t.Run("predefined habits are immutable", func(t *testing.T) {
		repo, svc := newCatalogFixture(t)
		repo.EXPECT().UpdateCustomHabitName(testHabitID, testUserID, "Nope").Return(repository.ErrNotFound)

		err := svc.UpdateHabit(testUserID, testHabitID, &models.UpdateHabitRequest{Name: "Nope"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
