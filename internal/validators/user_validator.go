package validators

import (
	"errors"
	"regexp"
	"strings"

	"homevest-listings/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type userValidator struct{}

func NewUserValidator() UserValidator {
	return &userValidator{}
}

func (v *userValidator) ValidateRegister(req *models.RegisterRequest) error {
	if strings.TrimSpace(req.FullName) == "" || req.Email == "" || req.Password == "" {
		return errors.New("full name, email, and password are required")
	}

	if len(req.FullName) < 2 || len(req.FullName) > 100 {
		return errors.New("full name must be between 2 and 100 characters")
	}

	if len(req.Password) < 6 || len(req.Password) > 100 {
		return errors.New("password must be between 6 and 100 characters")
	}

	if !emailRegex.MatchString(req.Email) {
		return errors.New("invalid email format")
	}

	return nil
}

func (v *userValidator) ValidateLogin(email, password string) error {
	if email == "" || password == "" {
		return errors.New("email and password are required")
	}

	if !emailRegex.MatchString(email) {
		return errors.New("invalid email format")
	}

	return nil
}
