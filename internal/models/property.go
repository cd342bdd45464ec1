// internal/models/property.go
package models

import (
	"mime/multipart"
	"time"
)

// Property is a listing as the sandbox backend stores it.
type Property struct {
	ID                   string    `json:"_id" bson:"_id"`
	OwnerID              string    `json:"owner" bson:"owner"`
	Title                string    `json:"title" bson:"title"`
	Description          string    `json:"description" bson:"description"`
	PropertyType         string    `json:"propertyType" bson:"propertyType"`
	Price                float64   `json:"price" bson:"price"`
	Address              string    `json:"address" bson:"address"`
	Location             GeoPoint  `json:"location" bson:"location"`
	Area                 *float64  `json:"area,omitempty" bson:"area,omitempty"`
	Bedrooms             *float64  `json:"bedrooms,omitempty" bson:"bedrooms,omitempty"`
	Bathrooms            *float64  `json:"bathrooms,omitempty" bson:"bathrooms,omitempty"`
	YearBuilt            *float64  `json:"yearBuilt,omitempty" bson:"yearBuilt,omitempty"`
	MinimumBid           *float64  `json:"minimumBid,omitempty" bson:"minimumBid,omitempty"`
	ConstructionStatus   string    `json:"constructionStatus,omitempty" bson:"constructionStatus,omitempty"`
	LegalDescription     string    `json:"legalDescription,omitempty" bson:"legalDescription,omitempty"`
	PropertyID           string    `json:"propertyId,omitempty" bson:"propertyId,omitempty"`
	VerificationDocument string    `json:"verificationDocument,omitempty" bson:"verificationDocument,omitempty"`
	IsAuctionEnabled     bool      `json:"isAuctionEnabled" bson:"isAuctionEnabled"`
	AuctionEndTime       *string   `json:"auctionEndTime,omitempty" bson:"auctionEndTime,omitempty"`
	Amenities            []string  `json:"amenities" bson:"amenities"`
	Images               []string  `json:"images" bson:"images"`
	Documents            []string  `json:"documents" bson:"documents"`
	CreatedAt            time.Time `json:"createdAt" bson:"createdAt"`
}

// GeoPoint stores coordinates as [longitude, latitude].
type GeoPoint struct {
	Type        string     `json:"type" bson:"type"`
	Coordinates [2]float64 `json:"coordinates" bson:"coordinates"`
}

// CreatePropertyForm binds the multipart body of a create request.
type CreatePropertyForm struct {
	Title                string                  `form:"title" binding:"required"`
	Description          string                  `form:"description" binding:"required"`
	PropertyType         string                  `form:"propertyType" binding:"required,oneof=residential commercial industrial land mixed-use"`
	Price                float64                 `form:"price" binding:"required,gt=0"`
	Address              string                  `form:"address" binding:"required"`
	Longitude            *float64                `form:"longitude" binding:"required,gte=-180,lte=180"`
	Latitude             *float64                `form:"latitude" binding:"required,gte=-90,lte=90"`
	Area                 *float64                `form:"area" binding:"omitempty,gte=0"`
	Bedrooms             *float64                `form:"bedrooms" binding:"omitempty,gte=0"`
	Bathrooms            *float64                `form:"bathrooms" binding:"omitempty,gte=0"`
	YearBuilt            *float64                `form:"yearBuilt" binding:"omitempty,gte=1800"`
	MinimumBid           *float64                `form:"minimumBid" binding:"omitempty,gte=0"`
	ConstructionStatus   string                  `form:"constructionStatus"`
	LegalDescription     string                  `form:"legalDescription"`
	PropertyID           string                  `form:"propertyId"`
	VerificationDocument string                  `form:"verificationDocument"`
	IsAuctionEnabled     bool                    `form:"isAuctionEnabled"`
	AuctionEndTime       string                  `form:"auctionEndTime"`
	Amenities            string                  `form:"amenities"`
	Images               []*multipart.FileHeader `form:"images" binding:"max=10"`
	Documents            *multipart.FileHeader   `form:"documents"`
}
