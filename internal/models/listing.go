package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Listing represents a rental property owned by exactly one user.
type Listing struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	Location    string             `bson:"location" json:"location"`
	Bedrooms    int                `bson:"bedrooms" json:"bedrooms"`
	Bathrooms   int                `bson:"bathrooms" json:"bathrooms"`
	Sqft        float64            `bson:"sqft" json:"sqft"`
	ImageURL    string             `bson:"imageUrl" json:"imageUrl"`
	Tags        []string           `bson:"tags" json:"tags"`
	Available   bool               `bson:"available" json:"available"`
	OwnerID     primitive.ObjectID `bson:"ownerId" json:"ownerId"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ListingInput is the allow-listed set of fields a client may submit.
// Owner and timestamps are always server-assigned; numeric fields are
// pointers so a missing value can be told apart from zero.
type ListingInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Location    string   `json:"location"`
	Bedrooms    *int     `json:"bedrooms"`
	Bathrooms   *int     `json:"bathrooms"`
	Sqft        *float64 `json:"sqft"`
	ImageURL    string   `json:"imageUrl"`
	Tags        []string `json:"tags"`
	Available   *bool    `json:"available"`
}

// ListingOwner is the public owner summary embedded in detail responses.
type ListingOwner struct {
	ID     primitive.ObjectID `json:"id"`
	Name   string             `json:"name"`
	Email  string             `json:"email"`
	Avatar string             `json:"avatar"`
}

// ListingDetail is a listing with its owner resolved.
type ListingDetail struct {
	Listing
	Owner *ListingOwner `json:"owner,omitempty"`
}
