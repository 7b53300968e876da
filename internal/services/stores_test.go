package services

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/whyismeleige/rental-ads/internal/models"
)

// In-memory store fakes so the services can be exercised without a
// database. Newest-first ordering is modelled as reverse insertion
// order.

type memUserStore struct {
	users []*models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{}
}

func (s *memUserStore) Create(_ context.Context, user *models.User) error {
	u := *user
	u.ID = primitive.NewObjectID()
	s.users = append(s.users, &u)
	user.ID = u.ID
	return nil
}

func (s *memUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *memUserStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

type memListingStore struct {
	listings []*models.Listing
}

func newMemListingStore() *memListingStore {
	return &memListingStore{}
}

func (s *memListingStore) Insert(_ context.Context, listing *models.Listing) error {
	l := *listing
	l.ID = primitive.NewObjectID()
	s.listings = append(s.listings, &l)
	listing.ID = l.ID
	return nil
}

func (s *memListingStore) FindAll(_ context.Context, search string) ([]models.Listing, error) {
	out := []models.Listing{}
	for i := len(s.listings) - 1; i >= 0; i-- {
		l := s.listings[i]
		if search != "" && !strings.Contains(strings.ToLower(l.Location), strings.ToLower(search)) {
			continue
		}
		out = append(out, *l)
	}
	return out, nil
}

func (s *memListingStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Listing, error) {
	for _, l := range s.listings {
		if l.ID == id {
			copied := *l
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *memListingStore) FindByOwner(_ context.Context, owner primitive.ObjectID) ([]models.Listing, error) {
	out := []models.Listing{}
	for i := len(s.listings) - 1; i >= 0; i-- {
		if s.listings[i].OwnerID == owner {
			out = append(out, *s.listings[i])
		}
	}
	return out, nil
}

func (s *memListingStore) Replace(_ context.Context, listing *models.Listing) error {
	for i, l := range s.listings {
		if l.ID == listing.ID {
			copied := *listing
			s.listings[i] = &copied
			return nil
		}
	}
	return nil
}

func (s *memListingStore) Delete(_ context.Context, id primitive.ObjectID) error {
	for i, l := range s.listings {
		if l.ID == id {
			s.listings = append(s.listings[:i], s.listings[i+1:]...)
			return nil
		}
	}
	return nil
}
