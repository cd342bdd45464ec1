package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	apperrors "homevest-listings/internal/errors"
	"homevest-listings/internal/models"
	"homevest-listings/internal/repositories"
	"homevest-listings/internal/validators"
	"homevest-listings/pkg/logger"

	"github.com/google/uuid"
)

type PropertyService struct {
	repo repositories.PropertyRepository
	now  func() time.Time
}

func NewPropertyService(repo repositories.PropertyRepository) *PropertyService {
	return &PropertyService{repo: repo, now: time.Now}
}

// CreateProperty turns a bound multipart form into a stored listing owned by ownerID.
func (s *PropertyService) CreateProperty(ctx context.Context, ownerID string, form *models.CreatePropertyForm) (*models.Property, error) {
	property := &models.Property{
		ID:                   uuid.NewString(),
		OwnerID:              ownerID,
		Title:                strings.TrimSpace(form.Title),
		Description:          strings.TrimSpace(form.Description),
		PropertyType:         form.PropertyType,
		Price:                form.Price,
		Address:              strings.TrimSpace(form.Address),
		Location:             models.GeoPoint{Type: "Point", Coordinates: [2]float64{*form.Longitude, *form.Latitude}},
		Area:                 form.Area,
		Bedrooms:             form.Bedrooms,
		Bathrooms:            form.Bathrooms,
		YearBuilt:            form.YearBuilt,
		MinimumBid:           form.MinimumBid,
		ConstructionStatus:   form.ConstructionStatus,
		LegalDescription:     form.LegalDescription,
		PropertyID:           form.PropertyID,
		VerificationDocument: form.VerificationDocument,
		IsAuctionEnabled:     form.IsAuctionEnabled,
		Amenities:            []string{},
		Images:               make([]string, 0, len(form.Images)),
		Documents:            []string{},
		CreatedAt:            s.now().UTC(),
	}

	if form.AuctionEndTime != "" {
		end, err := validators.ParseDateTime(form.AuctionEndTime)
		if err != nil {
			return nil, apperrors.NewValidationError("auctionEndTime must be a valid date")
		}
		formatted := end.UTC().Format(time.RFC3339)
		property.AuctionEndTime = &formatted
	}

	if form.Amenities != "" {
		if err := json.Unmarshal([]byte(form.Amenities), &property.Amenities); err != nil {
			return nil, apperrors.NewValidationError("amenities must be a JSON array of strings")
		}
	}

	for _, image := range form.Images {
		property.Images = append(property.Images, image.Filename)
	}
	if form.Documents != nil {
		property.Documents = append(property.Documents, form.Documents.Filename)
	}

	if err := s.repo.Create(ctx, property); err != nil {
		return nil, fmt.Errorf("failed to create property: %v", err)
	}
	logger.GlobalLogger.Printf("Created property: id=%s, owner=%s, images=%d", property.ID, ownerID, len(property.Images))
	return property, nil
}

func (s *PropertyService) GetPropertyByID(ctx context.Context, ownerID, id string) (*models.Property, error) {
	property, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if property.OwnerID != ownerID {
		return nil, fmt.Errorf("property %s: %w", id, apperrors.ErrNotFound)
	}
	return property, nil
}

func (s *PropertyService) ListProperties(ctx context.Context, ownerID string) ([]models.Property, error) {
	return s.repo.FindByOwner(ctx, ownerID)
}
