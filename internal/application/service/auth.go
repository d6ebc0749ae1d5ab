package service

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pharmaplus/pos-api/internal/domain/entity"
	"github.com/pharmaplus/pos-api/internal/domain/repository"
	"github.com/pharmaplus/pos-api/pkg/apperror"
	"github.com/pharmaplus/pos-api/pkg/utils"
)

// AuthService authenticates cashiers and managers against the local user
// store and issues JWTs for the API.
type AuthService struct {
	userRepo repository.UserRepository
	jwt      *utils.JWTManager
}

func NewAuthService(userRepo repository.UserRepository, jwt *utils.JWTManager) *AuthService {
	return &AuthService{userRepo: userRepo, jwt: jwt}
}

// TokenPair is the login response payload.
type TokenPair struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         *entity.User `json:"user"`
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, apperror.NewValidationError("email and password are required")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewAppError(http.StatusUnauthorized, "Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperror.NewAppError(http.StatusUnauthorized, "Invalid email or password")
	}

	access, err := s.jwt.GenerateAccessToken(user.ID, user.Email, user.FullName(), user.Role)
	if err != nil {
		return nil, err
	}
	refresh, err := s.jwt.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh, User: user}, nil
}

// Refresh exchanges a refresh token for a new token pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	userID, err := s.jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.NewAppError(http.StatusUnauthorized, "Invalid refresh token")
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewAppError(http.StatusUnauthorized, "Invalid refresh token")
	}

	access, err := s.jwt.GenerateAccessToken(user.ID, user.Email, user.FullName(), user.Role)
	if err != nil {
		return nil, err
	}
	refresh, err := s.jwt.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh, User: user}, nil
}

func (s *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}
