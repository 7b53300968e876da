package utils

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/whyismeleige/rental-ads/internal/models"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail validates email format.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errors.New("email is required")
	}
	if !emailRegex.MatchString(email) {
		return errors.New("invalid email address")
	}
	return nil
}

// ValidateName validates display name length.
func ValidateName(name string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(name))
	if n < 2 || n > 50 {
		return errors.New("name must be between 2 and 50 characters")
	}
	return nil
}

// ValidatePassword validates password length.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}

// ValidateListing checks every listing field and returns a map of
// field -> message for each violation. An empty map means valid.
func ValidateListing(in *models.ListingInput) map[string]string {
	fields := map[string]string{}

	if utf8.RuneCountInString(strings.TrimSpace(in.Title)) < 5 {
		fields["title"] = "title must be at least 5 characters"
	}
	if utf8.RuneCountInString(strings.TrimSpace(in.Description)) < 20 {
		fields["description"] = "description must be at least 20 characters"
	}
	if in.Price == nil {
		fields["price"] = "price is required"
	} else if *in.Price < 0 {
		fields["price"] = "price must be a positive number"
	}
	if strings.TrimSpace(in.Location) == "" {
		fields["location"] = "location is required"
	}
	if in.Bedrooms == nil {
		fields["bedrooms"] = "number of bedrooms is required"
	} else if *in.Bedrooms < 0 {
		fields["bedrooms"] = "bedrooms cannot be negative"
	}
	if in.Bathrooms == nil {
		fields["bathrooms"] = "number of bathrooms is required"
	} else if *in.Bathrooms < 0 {
		fields["bathrooms"] = "bathrooms cannot be negative"
	}
	if in.Sqft == nil {
		fields["sqft"] = "square footage is required"
	} else if *in.Sqft < 1 {
		fields["sqft"] = "square footage must be greater than 0"
	}
	if strings.TrimSpace(in.ImageURL) == "" {
		fields["imageUrl"] = "image URL is required"
	}

	return fields
}
