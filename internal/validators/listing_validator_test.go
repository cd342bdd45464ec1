package validators

import (
	"fmt"
	"testing"
	"time"

	apperrors "homevest-listings/internal/errors"
	"homevest-listings/internal/models"

	"github.com/stretchr/testify/require"
)

var fixedNow = func() time.Time { return time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC) }

func validListing() *models.PropertyListingInput {
	return &models.PropertyListingInput{
		Title:        "A",
		Description:  "B",
		PropertyType: models.PropertyTypeResidential,
		Price:        "100",
		Address:      "X",
		Coordinates:  []models.Numeric{"10", "20"},
	}
}

func TestValidateCreate(t *testing.T) {
	v := NewListingValidatorAt(fixedNow)

	tests := []struct {
		name        string
		mutate      func(in *models.PropertyListingInput)
		expectedMsg string
	}{
		{name: "minimal_valid", mutate: func(in *models.PropertyListingInput) {}},
		{
			name:        "missing_title",
			mutate:      func(in *models.PropertyListingInput) { in.Title = "   " },
			expectedMsg: "missing required fields: title",
		},
		{
			name: "missing_several",
			mutate: func(in *models.PropertyListingInput) {
				in.Description = ""
				in.Price = ""
				in.Coordinates = nil
			},
			expectedMsg: "missing required fields: description, price, coordinates",
		},
		{
			name:        "one_coordinate",
			mutate:      func(in *models.PropertyListingInput) { in.Coordinates = []models.Numeric{"10"} },
			expectedMsg: "missing required fields: coordinates",
		},
		{
			name:        "longitude_not_numeric",
			mutate:      func(in *models.PropertyListingInput) { in.Coordinates[0] = "east" },
			expectedMsg: "longitude must be a valid number",
		},
		{
			name:        "latitude_nan",
			mutate:      func(in *models.PropertyListingInput) { in.Coordinates[1] = "NaN" },
			expectedMsg: "latitude must be a valid number",
		},
		{name: "longitude_min", mutate: func(in *models.PropertyListingInput) { in.Coordinates[0] = "-180" }},
		{name: "longitude_max", mutate: func(in *models.PropertyListingInput) { in.Coordinates[0] = "180" }},
		{
			name:        "longitude_below_min",
			mutate:      func(in *models.PropertyListingInput) { in.Coordinates[0] = "-180.0001" },
			expectedMsg: "longitude must be between -180 and 180",
		},
		{
			name:        "longitude_above_max",
			mutate:      func(in *models.PropertyListingInput) { in.Coordinates[0] = "180.0001" },
			expectedMsg: "longitude must be between -180 and 180",
		},
		{name: "latitude_min", mutate: func(in *models.PropertyListingInput) { in.Coordinates[1] = "-90" }},
		{name: "latitude_max", mutate: func(in *models.PropertyListingInput) { in.Coordinates[1] = "90" }},
		{
			name:        "latitude_below_min",
			mutate:      func(in *models.PropertyListingInput) { in.Coordinates[1] = "-90.0001" },
			expectedMsg: "latitude must be between -90 and 90",
		},
		{
			name:        "latitude_above_max",
			mutate:      func(in *models.PropertyListingInput) { in.Coordinates[1] = "90.5" },
			expectedMsg: "latitude must be between -90 and 90",
		},
		{
			name:        "price_zero",
			mutate:      func(in *models.PropertyListingInput) { in.Price = "0" },
			expectedMsg: "price must be a positive number",
		},
		{
			name:        "price_not_numeric",
			mutate:      func(in *models.PropertyListingInput) { in.Price = "cheap" },
			expectedMsg: "price must be a positive number",
		},
		{name: "year_built_1800", mutate: func(in *models.PropertyListingInput) { in.YearBuilt = "1800" }},
		{
			name:        "year_built_1799",
			mutate:      func(in *models.PropertyListingInput) { in.YearBuilt = "1799" },
			expectedMsg: "yearBuilt must be at least 1800",
		},
		{name: "year_built_current", mutate: func(in *models.PropertyListingInput) { in.YearBuilt = "2026" }},
		{
			name:        "year_built_next_year",
			mutate:      func(in *models.PropertyListingInput) { in.YearBuilt = "2027" },
			expectedMsg: "yearBuilt cannot be later than 2026",
		},
		{
			name:        "negative_area",
			mutate:      func(in *models.PropertyListingInput) { in.Area = "-1" },
			expectedMsg: "area must be at least 0",
		},
		{
			name:        "bedrooms_not_numeric",
			mutate:      func(in *models.PropertyListingInput) { in.Bedrooms = "three" },
			expectedMsg: "bedrooms must be a number",
		},
		{
			name:        "negative_minimum_bid",
			mutate:      func(in *models.PropertyListingInput) { in.MinimumBid = "-0.01" },
			expectedMsg: "minimumBid must be at least 0",
		},
		{name: "zero_bathrooms", mutate: func(in *models.PropertyListingInput) { in.Bathrooms = "0" }},
		{name: "auction_end_date_time", mutate: func(in *models.PropertyListingInput) { in.AuctionEndTime = "2026-12-01T10:00:00Z" }},
		{name: "auction_end_date_only", mutate: func(in *models.PropertyListingInput) { in.AuctionEndTime = "2026-12-01" }},
		{
			name:        "auction_end_garbage",
			mutate:      func(in *models.PropertyListingInput) { in.AuctionEndTime = "next tuesday" },
			expectedMsg: "auctionEndTime must be a valid date",
		},
		{
			name: "ten_images",
			mutate: func(in *models.PropertyListingInput) {
				in.Images = images(models.MaxImages)
			},
		},
		{
			name: "eleven_images",
			mutate: func(in *models.PropertyListingInput) {
				in.Images = images(models.MaxImages + 1)
			},
			expectedMsg: "at most 10 images are allowed, got 11",
		},
		{
			name: "image_without_uri",
			mutate: func(in *models.PropertyListingInput) {
				in.Images = images(2)
				in.Images[1].URI = " "
			},
			expectedMsg: "image 2 is missing a file location",
		},
		{
			name: "document_without_uri",
			mutate: func(in *models.PropertyListingInput) {
				in.Documents = &models.FileRef{Name: "deed.pdf", Type: "application/pdf"}
			},
			expectedMsg: "document is missing a file location",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validListing()
			tt.mutate(in)

			err := v.ValidateCreate(in)
			if tt.expectedMsg == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, apperrors.ErrValidation)
			require.Equal(t, tt.expectedMsg, err.Error())
		})
	}
}

func TestValidateCreate_NilInput(t *testing.T) {
	err := NewListingValidator().ValidateCreate(nil)
	require.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestParseDateTime(t *testing.T) {
	got, err := ParseDateTime("2026-12-01T10:30:00+02:00")
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 12, 1, 8, 30, 0, 0, time.UTC), got.UTC())

	got, err = ParseDateTime("2026-12-01")
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDateTime("")
	require.Error(t, err)
}

func images(n int) []models.FileRef {
	refs := make([]models.FileRef, n)
	for i := range refs {
		refs[i] = models.FileRef{URI: fmt.Sprintf("file:///tmp/img%d.jpg", i), Type: "image/jpeg"}
	}
	return refs
}
