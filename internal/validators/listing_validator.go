package validators

import (
	"fmt"
	"strings"
	"time"

	apperrors "homevest-listings/internal/errors"
	"homevest-listings/internal/models"

	"github.com/go-playground/validator/v10"
)

const (
	minYearBuilt = 1800
	minLongitude = -180.0
	maxLongitude = 180.0
	minLatitude  = -90.0
	maxLatitude  = 90.0
)

var validate = validator.New()

// dateTimeLayouts are tried in order when reading auctionEndTime.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDateTime reads an ISO-8601 date or date-time. Values without a zone are UTC.
func ParseDateTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%q is not an ISO-8601 date", value)
}

type listingValidator struct {
	now func() time.Time
}

func NewListingValidator() ListingValidator {
	return &listingValidator{now: time.Now}
}

// NewListingValidatorAt pins the clock used for the yearBuilt upper bound.
func NewListingValidatorAt(now func() time.Time) ListingValidator {
	return &listingValidator{now: now}
}

func (v *listingValidator) ValidateCreate(input *models.PropertyListingInput) error {
	if input == nil {
		return apperrors.NewValidationError("property data is required")
	}

	if missing := missingRequiredFields(input); len(missing) > 0 {
		return apperrors.NewValidationError("missing required fields: " + strings.Join(missing, ", "))
	}

	if err := v.validateCoordinates(input.Coordinates); err != nil {
		return err
	}

	price, err := input.Price.Float64()
	if err != nil || price <= 0 {
		return apperrors.NewValidationError("price must be a positive number")
	}

	if err := v.validateOptionalNumbers(input); err != nil {
		return err
	}

	if strings.TrimSpace(input.AuctionEndTime) != "" {
		if _, err := ParseDateTime(input.AuctionEndTime); err != nil {
			return apperrors.NewValidationError("auctionEndTime must be a valid date")
		}
	}

	if len(input.Images) > models.MaxImages {
		return apperrors.NewValidationError(fmt.Sprintf("at most %d images are allowed, got %d", models.MaxImages, len(input.Images)))
	}
	for i := range input.Images {
		if err := validateFileRef(input.Images[i]); err != nil {
			return apperrors.NewValidationError(fmt.Sprintf("image %d is missing a file location", i+1))
		}
	}

	if input.Documents != nil {
		if err := validateFileRef(*input.Documents); err != nil {
			return apperrors.NewValidationError("document is missing a file location")
		}
	}

	return nil
}

func missingRequiredFields(input *models.PropertyListingInput) []string {
	var missing []string
	if strings.TrimSpace(input.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(input.Description) == "" {
		missing = append(missing, "description")
	}
	if strings.TrimSpace(input.PropertyType) == "" {
		missing = append(missing, "propertyType")
	}
	if !input.Price.IsSet() {
		missing = append(missing, "price")
	}
	if strings.TrimSpace(input.Address) == "" {
		missing = append(missing, "address")
	}
	if len(input.Coordinates) != 2 {
		missing = append(missing, "coordinates")
	}
	return missing
}

func (v *listingValidator) validateCoordinates(coords []models.Numeric) error {
	lng, err := coords[0].Float64()
	if err != nil {
		return apperrors.NewValidationError("longitude must be a valid number")
	}
	lat, err := coords[1].Float64()
	if err != nil {
		return apperrors.NewValidationError("latitude must be a valid number")
	}
	if lng < minLongitude || lng > maxLongitude {
		return apperrors.NewValidationError("longitude must be between -180 and 180")
	}
	if lat < minLatitude || lat > maxLatitude {
		return apperrors.NewValidationError("latitude must be between -90 and 90")
	}
	return nil
}

func (v *listingValidator) validateOptionalNumbers(input *models.PropertyListingInput) error {
	fields := []struct {
		name  string
		value models.Numeric
		min   float64
	}{
		{"area", input.Area, 0},
		{"bedrooms", input.Bedrooms, 0},
		{"bathrooms", input.Bathrooms, 0},
		{"yearBuilt", input.YearBuilt, minYearBuilt},
		{"minimumBid", input.MinimumBid, 0},
	}

	for _, f := range fields {
		if !f.value.IsSet() {
			continue
		}
		n, err := f.value.Float64()
		if err != nil {
			return apperrors.NewValidationError(fmt.Sprintf("%s must be a number", f.name))
		}
		if n < f.min {
			return apperrors.NewValidationError(fmt.Sprintf("%s must be at least %g", f.name, f.min))
		}
		if f.name == "yearBuilt" {
			if year := v.now().Year(); n > float64(year) {
				return apperrors.NewValidationError(fmt.Sprintf("yearBuilt cannot be later than %d", year))
			}
		}
	}
	return nil
}

func validateFileRef(ref models.FileRef) error {
	ref.URI = strings.TrimSpace(ref.URI)
	return validate.Struct(ref)
}
