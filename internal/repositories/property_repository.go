package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"

	apperrors "homevest-listings/internal/errors"
	"homevest-listings/internal/models"
)

// propertyRepository keeps sandbox listings in memory
type propertyRepository struct {
	mu         sync.RWMutex
	properties map[string]models.Property
}

func NewPropertyRepository() PropertyRepository {
	return &propertyRepository{
		properties: make(map[string]models.Property),
	}
}

func (r *propertyRepository) FindByID(_ context.Context, id string) (*models.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	property, ok := r.properties[id]
	if !ok {
		return nil, fmt.Errorf("property %s: %w", id, apperrors.ErrNotFound)
	}
	return &property, nil
}

func (r *propertyRepository) FindByOwner(_ context.Context, ownerID string) ([]models.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Property, 0)
	for _, p := range r.properties {
		if p.OwnerID == ownerID {
			result = append(result, p)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (r *propertyRepository) Create(_ context.Context, property *models.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.properties[property.ID]; exists {
		return fmt.Errorf("property %s already exists", property.ID)
	}
	r.properties[property.ID] = *property
	return nil
}
