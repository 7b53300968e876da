package services

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/whyismeleige/rental-ads/internal/models"
	"github.com/whyismeleige/rental-ads/pkg/apperr"
	"github.com/whyismeleige/rental-ads/pkg/utils"
)

type ListingService struct {
	listings ListingStore
	users    UserStore
}

func NewListingService(listings ListingStore, users UserStore) *ListingService {
	return &ListingService{listings: listings, users: users}
}

// List returns all listings, newest first, optionally filtered by a
// case-insensitive substring match against location.
func (s *ListingService) List(ctx context.Context, search string) ([]models.Listing, error) {
	return s.listings.FindAll(ctx, search)
}

// GetByID returns a listing with its owner summary resolved.
func (s *ListingService) GetByID(ctx context.Context, id string) (*models.ListingDetail, error) {
	listing, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &models.ListingDetail{Listing: *listing}
	owner, err := s.users.FindByID(ctx, listing.OwnerID)
	if err != nil {
		return nil, err
	}
	if owner != nil {
		detail.Owner = &models.ListingOwner{
			ID:     owner.ID,
			Name:   owner.Name,
			Email:  owner.Email,
			Avatar: owner.Avatar,
		}
	}
	return detail, nil
}

// GetMine returns the caller's listings, newest first.
func (s *ListingService) GetMine(ctx context.Context, ownerID string) ([]models.Listing, error) {
	oid, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, apperr.Authentication("invalid token subject")
	}
	return s.listings.FindByOwner(ctx, oid)
}

// Create validates input and persists a new listing owned by the caller.
// Owner, availability and timestamps are server-assigned; nothing in the
// request body can override them.
func (s *ListingService) Create(ctx context.Context, ownerID string, input *models.ListingInput) (*models.Listing, error) {
	oid, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, apperr.Authentication("invalid token subject")
	}
	if fields := utils.ValidateListing(input); len(fields) > 0 {
		return nil, apperr.Validation("invalid listing data", fields)
	}

	now := time.Now().UTC()
	listing := &models.Listing{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Price:       *input.Price,
		Location:    strings.TrimSpace(input.Location),
		Bedrooms:    *input.Bedrooms,
		Bathrooms:   *input.Bathrooms,
		Sqft:        *input.Sqft,
		ImageURL:    strings.TrimSpace(input.ImageURL),
		Tags:        input.Tags,
		Available:   true,
		OwnerID:     oid,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if listing.Tags == nil {
		listing.Tags = []string{}
	}

	if err := s.listings.Insert(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

// Update replaces the mutable fields of a listing. Only the owner may
// update; ownership is strict equality with the stored ownerId and is
// never taken from the request body.
func (s *ListingService) Update(ctx context.Context, requesterID, id string, input *models.ListingInput) (*models.Listing, error) {
	listing, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing.OwnerID.Hex() != requesterID {
		return nil, apperr.Authorization("not authorized to update this listing")
	}
	if fields := utils.ValidateListing(input); len(fields) > 0 {
		return nil, apperr.Validation("invalid listing data", fields)
	}

	listing.Title = strings.TrimSpace(input.Title)
	listing.Description = strings.TrimSpace(input.Description)
	listing.Price = *input.Price
	listing.Location = strings.TrimSpace(input.Location)
	listing.Bedrooms = *input.Bedrooms
	listing.Bathrooms = *input.Bathrooms
	listing.Sqft = *input.Sqft
	listing.ImageURL = strings.TrimSpace(input.ImageURL)
	if input.Tags != nil {
		listing.Tags = input.Tags
	}
	if input.Available != nil {
		listing.Available = *input.Available
	}
	listing.UpdatedAt = time.Now().UTC()

	if err := s.listings.Replace(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

// Delete removes a listing after the same existence and ownership checks
// as Update.
func (s *ListingService) Delete(ctx context.Context, requesterID, id string) error {
	listing, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if listing.OwnerID.Hex() != requesterID {
		return apperr.Authorization("not authorized to delete this listing")
	}
	return s.listings.Delete(ctx, listing.ID)
}

// find resolves an id string to a stored listing. Malformed ids look the
// same as missing listings to the caller.
func (s *ListingService) find(ctx context.Context, id string) (*models.Listing, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NotFound("listing not found")
	}
	listing, err := s.listings.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, apperr.NotFound("listing not found")
	}
	return listing, nil
}
