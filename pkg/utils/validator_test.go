package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whyismeleige/rental-ads/internal/models"
)

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("user@example.com"))
	assert.NoError(t, ValidateEmail("  user@example.com  "))

	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("user@nodot"))
	assert.Error(t, ValidateEmail("user @example.com"))
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("Jo"))
	assert.NoError(t, ValidateName(strings.Repeat("a", 50)))

	assert.Error(t, ValidateName("J"))
	assert.Error(t, ValidateName("   "))
	assert.Error(t, ValidateName(strings.Repeat("a", 51)))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("12345678"))
	assert.Error(t, ValidatePassword("1234567"))
}

func ptr[T any](v T) *T {
	return &v
}

func valid() *models.ListingInput {
	return &models.ListingInput{
		Title:       "Sunny 2BHK near the park",
		Description: "Bright two-bedroom flat with a balcony and good light.",
		Price:       ptr(24000.0),
		Location:    "Mumbai Central",
		Bedrooms:    ptr(2),
		Bathrooms:   ptr(1),
		Sqft:        ptr(850.0),
		ImageURL:    "https://example.com/flat.jpg",
	}
}

func TestValidateListing_Valid(t *testing.T) {
	assert.Empty(t, ValidateListing(valid()))
}

func TestValidateListing_Boundaries(t *testing.T) {
	in := valid()
	in.Title = "1234"
	assert.Contains(t, ValidateListing(in), "title")
	in.Title = "12345"
	assert.Empty(t, ValidateListing(in))

	in = valid()
	in.Description = strings.Repeat("d", 19)
	assert.Contains(t, ValidateListing(in), "description")
	in.Description = strings.Repeat("d", 20)
	assert.Empty(t, ValidateListing(in))

	in = valid()
	in.Price = ptr(-0.01)
	assert.Contains(t, ValidateListing(in), "price")
	in.Price = ptr(0.0)
	assert.Empty(t, ValidateListing(in))

	in = valid()
	in.Sqft = ptr(0.5)
	assert.Contains(t, ValidateListing(in), "sqft")
	in.Sqft = ptr(1.0)
	assert.Empty(t, ValidateListing(in))

	in = valid()
	in.Bedrooms = ptr(-1)
	assert.Contains(t, ValidateListing(in), "bedrooms")
	in.Bedrooms = ptr(0)
	assert.Empty(t, ValidateListing(in))
}

func TestValidateListing_MissingFields(t *testing.T) {
	fields := ValidateListing(&models.ListingInput{})
	require.Len(t, fields, 8)
	for _, f := range []string{"title", "description", "price", "location", "bedrooms", "bathrooms", "sqft", "imageUrl"} {
		assert.Contains(t, fields, f)
	}
}
