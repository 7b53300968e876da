package repository

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/whyismeleige/rental-ads/internal/models"
)

type ListingRepository struct {
	col *mongo.Collection
}

func NewListingRepository(db *mongo.Database) *ListingRepository {
	return &ListingRepository{col: db.Collection("listings")}
}

// newestFirst sorts by creation time, descending.
var newestFirst = options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

// Insert saves a new listing and fills in its generated id.
func (r *ListingRepository) Insert(ctx context.Context, listing *models.Listing) error {
	res, err := r.col.InsertOne(ctx, listing)
	if err != nil {
		return err
	}
	listing.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// FindAll returns all listings, newest first. A non-empty search term
// filters by case-insensitive substring match against location; the term
// is escaped so it is never interpreted as a pattern.
func (r *ListingRepository) FindAll(ctx context.Context, search string) ([]models.Listing, error) {
	filter := bson.M{}
	if search != "" {
		filter["location"] = bson.M{"$regex": regexp.QuoteMeta(search), "$options": "i"}
	}

	cur, err := r.col.Find(ctx, filter, newestFirst)
	if err != nil {
		return nil, err
	}
	return decodeListings(ctx, cur)
}

// FindByID retrieves a listing by id. Returns (nil, nil) when absent.
func (r *ListingRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Listing, error) {
	var listing models.Listing
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&listing)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

// FindByOwner returns all listings owned by the given user, newest first.
func (r *ListingRepository) FindByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.Listing, error) {
	cur, err := r.col.Find(ctx, bson.M{"ownerId": owner}, newestFirst)
	if err != nil {
		return nil, err
	}
	return decodeListings(ctx, cur)
}

// Replace overwrites the stored document with listing.
func (r *ListingRepository) Replace(ctx context.Context, listing *models.Listing) error {
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": listing.ID}, listing)
	return err
}

// Delete removes the listing with the given id.
func (r *ListingRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func decodeListings(ctx context.Context, cur *mongo.Cursor) ([]models.Listing, error) {
	listings := []models.Listing{}
	if err := cur.All(ctx, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}
