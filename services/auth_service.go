package services

import (
	"context"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/mehmood09/restaurant-system/models"
	"github.com/mehmood09/restaurant-system/repository"
)

// AuthService handles registration and credential checks.
type AuthService struct {
	userRepo     repository.UserRepository
	tokenService *TokenService
	logger       *zap.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, tokenService *TokenService, logger *zap.Logger) *AuthService {
	return &AuthService{userRepo: userRepo, tokenService: tokenService, logger: logger}
}

// Register creates a new customer account and returns a session token, so a
// fresh registration is logged in immediately.
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, string, *ServiceError) {
	if _, err := s.userRepo.FindByUsername(ctx, req.Username); err == nil {
		return nil, "", &ServiceError{StatusCode: http.StatusConflict, Message: "Username already taken"}
	} else if !isNotFound(err) {
		s.logger.Error("Failed to check username", zap.Error(err))
		return nil, "", internal("Failed to create account")
	}

	if _, err := s.userRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, "", &ServiceError{StatusCode: http.StatusConflict, Message: "Email already registered"}
	} else if !isNotFound(err) {
		s.logger.Error("Failed to check email", zap.Error(err))
		return nil, "", internal("Failed to create account")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", internal("Failed to hash password")
	}

	user := &models.User{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  string(hashedPassword),
		Role:      models.RoleCustomer,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, "", internal("Failed to create account")
	}

	token, err := s.tokenService.GenerateToken(user.ID.String(), user.Username, user.Role)
	if err != nil {
		s.logger.Error("Failed to generate token", zap.Error(err))
		return nil, "", internal("Failed to create session")
	}

	s.logger.Info("User registered", zap.String("username", user.Username))
	return user, token, nil
}

// Login verifies credentials and returns a session token.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.User, string, *ServiceError) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, "", &ServiceError{StatusCode: http.StatusUnauthorized, Message: "Invalid username or password"}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, "", &ServiceError{StatusCode: http.StatusUnauthorized, Message: "Invalid username or password"}
	}

	token, err := s.tokenService.GenerateToken(user.ID.String(), user.Username, user.Role)
	if err != nil {
		s.logger.Error("Failed to generate token", zap.Error(err))
		return nil, "", internal("Failed to create session")
	}
	return user, token, nil
}

// GetUser loads the authenticated user's profile.
func (s *AuthService) GetUser(ctx context.Context, userID string) (*models.User, *ServiceError) {
	id, serviceErr := parseUserID(userID)
	if serviceErr != nil {
		return nil, serviceErr
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound("User not found")
	}
	return user, nil
}
