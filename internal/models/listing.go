// internal/models/listing.go
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Property types accepted by the property service.
const (
	PropertyTypeResidential = "residential"
	PropertyTypeCommercial  = "commercial"
	PropertyTypeIndustrial  = "industrial"
	PropertyTypeLand        = "land"
	PropertyTypeMixedUse    = "mixed-use"
)

// MaxImages is the largest number of images a single listing may carry.
const MaxImages = 10

// Numeric is a number kept in the textual form the form layer captured it in.
// A blank Numeric means the field was not provided.
type Numeric string

// IsSet reports whether a value was provided.
func (n Numeric) IsSet() bool {
	return strings.TrimSpace(string(n)) != ""
}

// Float64 parses the value, rejecting NaN and infinities.
func (n Numeric) Float64() (float64, error) {
	s := strings.TrimSpace(string(n))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return v, nil
}

// UnmarshalJSON accepts both JSON numbers and JSON strings.
func (n *Numeric) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Numeric(s)
		return nil
	}
	*n = Numeric(data)
	return nil
}

// FileRef points at a picked file.
type FileRef struct {
	URI  string `json:"uri" yaml:"uri" validate:"required"`
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// PropertyListingInput is the draft of a property to be created.
type PropertyListingInput struct {
	Title        string    `json:"title" yaml:"title"`
	Description  string    `json:"description" yaml:"description"`
	PropertyType string    `json:"propertyType" yaml:"propertyType"`
	Price        Numeric   `json:"price" yaml:"price"`
	Address      string    `json:"address" yaml:"address"`
	Coordinates  []Numeric `json:"coordinates" yaml:"coordinates"`

	Area       Numeric `json:"area,omitempty" yaml:"area,omitempty"`
	Bedrooms   Numeric `json:"bedrooms,omitempty" yaml:"bedrooms,omitempty"`
	Bathrooms  Numeric `json:"bathrooms,omitempty" yaml:"bathrooms,omitempty"`
	YearBuilt  Numeric `json:"yearBuilt,omitempty" yaml:"yearBuilt,omitempty"`
	MinimumBid Numeric `json:"minimumBid,omitempty" yaml:"minimumBid,omitempty"`

	ConstructionStatus   string `json:"constructionStatus,omitempty" yaml:"constructionStatus,omitempty"`
	LegalDescription     string `json:"legalDescription,omitempty" yaml:"legalDescription,omitempty"`
	PropertyID           string `json:"propertyId,omitempty" yaml:"propertyId,omitempty"`
	VerificationDocument string `json:"verificationDocument,omitempty" yaml:"verificationDocument,omitempty"`

	IsAuctionEnabled *bool  `json:"isAuctionEnabled,omitempty" yaml:"isAuctionEnabled,omitempty"`
	AuctionEndTime   string `json:"auctionEndTime,omitempty" yaml:"auctionEndTime,omitempty"`

	Amenities []string  `json:"amenities,omitempty" yaml:"amenities,omitempty"`
	Images    []FileRef `json:"images,omitempty" yaml:"images,omitempty"`
	Documents *FileRef  `json:"documents,omitempty" yaml:"documents,omitempty"`
}

// PropertyResult is the created property record exactly as the server returned it.
type PropertyResult map[string]interface{}
