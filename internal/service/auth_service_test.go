package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"habitly-be/internal/entities"
	"habitly-be/internal/jwt"
	"habitly-be/internal/models"
	"habitly-be/internal/repository"
	"habitly-be/internal/repository/mocks"
)

func newAuthFixture(t *testing.T) (*mocks.MockUserRepository, AuthService, *jwt.JWTService) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	jwtService := jwt.NewJWTService("test-secret", time.Hour)
	return userRepo, NewAuthService(userRepo, jwtService), jwtService
}

func TestRegister(t *testing.T) {
	req := &models.RegisterRequest{
		FirstName: "Alice",
		LastName:  "Smith",
		Username:  "alice",
		DOB:       "1995-06-01",
		Email:     "alice@example.com",
		Password:  "secret123",
	}

	t.Run("hashes the password and returns a valid token", func(t *testing.T) {
		userRepo, svc, jwtService := newAuthFixture(t)
		userRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(u *entities.User) (*entities.User, error) {
			// Stored credential must be a bcrypt hash of the password, never the password itself.
			assert.NotEqual(t, req.Password, u.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)))
			require.NotNil(t, u.DOB)
			assert.Equal(t, "1995-06-01", u.DOB.Format("2006-01-02"))

			u.ID = testUserID
			u.CreatedAt = time.Now()
			return u, nil
		})

		resp, err := svc.Register(req)
		require.NoError(t, err)
		assert.Equal(t, "alice", resp.User.Username)

		claims, err := jwtService.ValidateToken(resp.User.Token)
		require.NoError(t, err)
		assert.Equal(t, testUserID, claims.UserID)
	})

	t.Run("duplicate username or email conflicts", func(t *testing.T) {
		userRepo, svc, _ := newAuthFixture(t)
		userRepo.EXPECT().Create(gomock.Any()).Return(nil, repository.ErrDuplicate)

		_, err := svc.Register(req)
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("malformed date of birth is rejected", func(t *testing.T) {
		_, svc, _ := newAuthFixture(t)
		bad := *req
		bad.DOB = "06/01/1995"

		_, err := svc.Register(&bad)
		assert.Error(t, err)
	})
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	user := &entities.User{
		ID:           testUserID,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: string(hash),
	}

	t.Run("login by email", func(t *testing.T) {
		userRepo, svc, _ := newAuthFixture(t)
		userRepo.EXPECT().FindByIdentifier("alice@example.com").Return(user, nil)

		resp, err := svc.Login(&models.LoginRequest{Identifier: "alice@example.com", Password: "secret123"})
		require.NoError(t, err)
		assert.Equal(t, testUserID, resp.UserID)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("login by username", func(t *testing.T) {
		userRepo, svc, _ := newAuthFixture(t)
		userRepo.EXPECT().FindByIdentifier("alice").Return(user, nil)

		_, err := svc.Login(&models.LoginRequest{Identifier: "alice", Password: "secret123"})
		require.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo, svc, _ := newAuthFixture(t)
		userRepo.EXPECT().FindByIdentifier("alice").Return(user, nil)

		_, err := svc.Login(&models.LoginRequest{Identifier: "alice", Password: "wrong"})
		assert.ErrorIs(t, err, ErrBadCredentials)
	})

	t.Run("unknown identifier reads as bad credentials", func(t *testing.T) {
		userRepo, svc, _ := newAuthFixture(t)
		userRepo.EXPECT().FindByIdentifier("nobody").Return(nil, repository.ErrNotFound)

		_, err := svc.Login(&models.LoginRequest{Identifier: "nobody", Password: "secret123"})
		assert.ErrorIs(t, err, ErrBadCredentials)
	})
}
