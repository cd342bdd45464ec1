package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"homevest-listings/internal/auth"
	apperrors "homevest-listings/internal/errors"
	"homevest-listings/internal/models"
	"homevest-listings/internal/repositories"
	"homevest-listings/internal/validators"
	"homevest-listings/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo      repositories.UserRepository
	validator validators.UserValidator
	secret    string
}

func NewUserService(repo repositories.UserRepository, validator validators.UserValidator, secret string) *UserService {
	return &UserService{
		repo:      repo,
		validator: validator,
		secret:    secret,
	}
}

func (s *UserService) Register(ctx context.Context, req *models.RegisterRequest) (*auth.TokenDetails, error) {
	if err := s.validator.ValidateRegister(req); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	// Check if email already exists
	existing, err := s.repo.FindByEmail(ctx, req.Email)
	switch {
	case err == nil && existing != nil:
		return nil, apperrors.NewAppError(apperrors.ErrValidation, "email already registered: "+req.Email, apperrors.MsgEmailTaken, apperrors.ErrCodeEmailTaken, http.StatusConflict, nil)
	case err != nil && !errors.Is(err, apperrors.ErrNotFound):
		return nil, fmt.Errorf("failed to check email existence: %v", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %v", err)
	}

	user := &models.User{
		ID:       uuid.NewString(),
		FullName: strings.TrimSpace(req.FullName),
		Email:    strings.ToLower(req.Email),
		Password: string(hashedPassword),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to register user: %v", err)
	}
	logger.GlobalLogger.Printf("Registered user: id=%s, email=%s", user.ID, user.Email)

	return s.issueToken(user)
}

func (s *UserService) Login(ctx context.Context, email, password string) (*auth.TokenDetails, error) {
	if err := s.validator.ValidateLogin(email, password); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, invalidCredentials(nil)
		}
		return nil, fmt.Errorf("failed to query user: %v", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, invalidCredentials(err)
	}

	return s.issueToken(user)
}

func (s *UserService) issueToken(user *models.User) (*auth.TokenDetails, error) {
	tokenDetails, err := auth.GenerateJWT(user.ID, user.FullName, user.Email, s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %v", err)
	}
	return tokenDetails, nil
}

func invalidCredentials(err error) *apperrors.AppError {
	return apperrors.NewAppError(apperrors.ErrAuthRequired, "invalid email or password", apperrors.MsgInvalidCredentials, apperrors.ErrCodeInvalidCredentials, http.StatusUnauthorized, err)
}
