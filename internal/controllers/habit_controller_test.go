package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"habitly-be/internal/middleware"
	"habitly-be/internal/models"
	"habitly-be/internal/service"
)

type stubSelectionService struct {
	adoptFn  func(userID, habitID string) (*models.ActionResponse, error)
	renameFn func(userID, habitID string, req *models.RenameHabitRequest) (*models.ActionResponse, error)
	removeFn func(userID, habitID string) (*models.ActionResponse, error)
}

func (s *stubSelectionService) Adopt(userID, habitID string) (*models.ActionResponse, error) {
	return s.adoptFn(userID, habitID)
}

func (s *stubSelectionService) Rename(userID, habitID string, req *models.RenameHabitRequest) (*models.ActionResponse, error) {
	return s.renameFn(userID, habitID, req)
}

func (s *stubSelectionService) Remove(userID, habitID string) (*models.ActionResponse, error) {
	return s.removeFn(userID, habitID)
}

type stubTrackerService struct {
	myHabitsFn func(userID string) (*models.MyHabitsResponse, error)
	markFn     func(userID string, req *models.UpdateStatusRequest) (*models.ActionResponse, error)
}

func (s *stubTrackerService) MyHabits(userID string) (*models.MyHabitsResponse, error) {
	return s.myHabitsFn(userID)
}

func (s *stubTrackerService) Mark(userID string, req *models.UpdateStatusRequest) (*models.ActionResponse, error) {
	return s.markFn(userID, req)
}

// asUser injects the user ID the auth middleware would have set.
func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Next()
	}
}

func habitTestRouter(selection service.SelectionService, tracker service.TrackerService, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	hc := NewHabitController(selection, tracker)

	group := router.Group("/", asUser(userID))
	group.GET("/my_habits", hc.MyHabits)
	group.POST("/my_habits/:habitID", hc.Adopt)
	group.PATCH("/my_habits/:habitID", hc.Rename)
	group.DELETE("/remove_habit/:categoryID/:habitID", hc.Remove)
	return router
}

func TestMyHabits(t *testing.T) {
	tracker := &stubTrackerService{
		myHabitsFn: func(userID string) (*models.MyHabitsResponse, error) {
			assert.Equal(t, "user-1", userID)
			return &models.MyHabitsResponse{
				Date: "2025-03-14",
				Habits: []*models.MyHabitStatus{
					{HabitID: "habit-1", DisplayName: "Drink 8 Glasses of Water", Status: "Pending"},
				},
			}, nil
		},
	}
	router := habitTestRouter(&stubSelectionService{}, tracker, "user-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/my_habits", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "2025-03-14")
	assert.Contains(t, w.Body.String(), "Drink 8 Glasses of Water")
}

func TestAdopt(t *testing.T) {
	t.Run("adopt returns the service message", func(t *testing.T) {
		selection := &stubSelectionService{
			adoptFn: func(userID, habitID string) (*models.ActionResponse, error) {
				assert.Equal(t, "habit-1", habitID)
				return &models.ActionResponse{Success: true, Message: "Habit added to my habits"}, nil
			},
		}
		router := habitTestRouter(selection, &stubTrackerService{}, "user-1")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/my_habits/habit-1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Habit added to my habits")
	})

	t.Run("unknown habit maps to 404", func(t *testing.T) {
		selection := &stubSelectionService{
			adoptFn: func(userID, habitID string) (*models.ActionResponse, error) {
				return nil, service.ErrNotFound
			},
		}
		router := habitTestRouter(selection, &stubTrackerService{}, "user-1")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/my_habits/habit-9", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRenameEndpoint(t *testing.T) {
	t.Run("valid body renames", func(t *testing.T) {
		selection := &stubSelectionService{
			renameFn: func(userID, habitID string, req *models.RenameHabitRequest) (*models.ActionResponse, error) {
				assert.Equal(t, "Hydrate!", req.CustomName)
				return &models.ActionResponse{Success: true, Message: "Habit renamed"}, nil
			},
		}
		router := habitTestRouter(selection, &stubTrackerService{}, "user-1")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/my_habits/habit-1", strings.NewReader(`{"custom_name":"Hydrate!"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing custom_name is a 400", func(t *testing.T) {
		router := habitTestRouter(&stubSelectionService{}, &stubTrackerService{}, "user-1")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/my_habits/habit-1", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRemoveEndpoint(t *testing.T) {
	selection := &stubSelectionService{
		removeFn: func(userID, habitID string) (*models.ActionResponse, error) {
			assert.Equal(t, "habit-1", habitID)
			return &models.ActionResponse{Success: true, Message: "Habit reverted to predefined"}, nil
		},
	}
	router := habitTestRouter(selection, &stubTrackerService{}, "user-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/remove_habit/cat-1/habit-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Habit reverted to predefined")
}

func TestMissingUserContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	hc := NewHabitController(&stubSelectionService{}, &stubTrackerService{})
	// No auth middleware; the controller must refuse rather than panic.
	router.GET("/my_habits", hc.MyHabits)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/my_habits", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
