package validators

import (
	"homevest-listings/internal/models"
)

type ListingValidator interface {
	ValidateCreate(input *models.PropertyListingInput) error
}

type UserValidator interface {
	ValidateRegister(req *models.RegisterRequest) error
	ValidateLogin(email, password string) error
}
