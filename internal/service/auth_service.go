package service

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"habitly-be/internal/entities"
	"habitly-be/internal/jwt"
	"habitly-be/internal/models"
	"habitly-be/internal/repository"
)

const dobLayout = "2006-01-02"

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Register(req *models.RegisterRequest) (*models.RegisterResponse, error)
	Login(req *models.LoginRequest) (*models.AuthResponse, error)
	Profile(userID string) (*entities.User, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtService *jwt.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a new user account
func (s *authService) Register(req *models.RegisterRequest) (*models.RegisterResponse, error) {
	var dob *time.Time
	if req.DOB != "" {
		parsed, err := time.Parse(dobLayout, req.DOB)
		if err != nil {
			return nil, fmt.Errorf("invalid date of birth, expected YYYY-MM-DD: %w", err)
		}
		dob = &parsed
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entities.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Username:     req.Username,
		DOB:          dob,
		Gender:       req.Gender,
		Mobile:       req.Mobile,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
	}

	// The unique constraints on username/email are the source of truth; a
	// racing duplicate registration surfaces as ErrDuplicate here.
	user, err = s.userRepo.Create(user)
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, fmt.Errorf("%w: username or email already registered", ErrConflict)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Generate JWT token for automatic login after registration
	token, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.RegisterResponse{
		Message: "User registered successfully",
		User: models.AuthResponse{
			UserID:    user.ID,
			Username:  user.Username,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
			Token:     token,
		},
	}, nil
}

// Login authenticates a user by email or username and returns a JWT token
func (s *authService) Login(req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.FindByIdentifier(req.Identifier)
	if err != nil {
		return nil, ErrBadCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrBadCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		Token:     token,
	}, nil
}

// Profile loads the authenticated user's record
func (s *authService) Profile(userID string) (*entities.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
