package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/whyismeleige/rental-ads/internal/models"
)

// UserStore is the persistence surface the auth and listing services
// need. internal/repository provides the MongoDB implementation.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// ListingStore is the persistence surface of the listing service.
type ListingStore interface {
	Insert(ctx context.Context, listing *models.Listing) error
	FindAll(ctx context.Context, search string) ([]models.Listing, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Listing, error)
	FindByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.Listing, error)
	Replace(ctx context.Context, listing *models.Listing) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
