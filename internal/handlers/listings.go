package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/whyismeleige/rental-ads/internal/models"
	"github.com/whyismeleige/rental-ads/internal/services"
	"github.com/whyismeleige/rental-ads/pkg/apperr"
)

type ListingHandler struct {
	listings *services.ListingService
	logger   *zap.Logger
}

func NewListingHandler(listings *services.ListingService, logger *zap.Logger) *ListingHandler {
	return &ListingHandler{listings: listings, logger: logger}
}

// List returns all listings, optionally filtered by ?search= against
// location.
func (h *ListingHandler) List(c *gin.Context) {
	listings, err := h.listings.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, listings)
}

// GetByID returns a single listing with its owner resolved.
func (h *ListingHandler) GetByID(c *gin.Context) {
	listing, err := h.listings.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

// GetMine returns the authenticated caller's listings.
func (h *ListingHandler) GetMine(c *gin.Context) {
	listings, err := h.listings.GetMine(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, listings)
}

// Create persists a new listing owned by the caller.
func (h *ListingHandler) Create(c *gin.Context) {
	var input models.ListingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, h.logger, apperr.Validation("invalid request body", nil))
		return
	}

	listing, err := h.listings.Create(c.Request.Context(), c.GetString("userID"), &input)
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, listing)
}

// Update replaces the mutable fields of the caller's listing.
func (h *ListingHandler) Update(c *gin.Context) {
	var input models.ListingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, h.logger, apperr.Validation("invalid request body", nil))
		return
	}

	listing, err := h.listings.Update(c.Request.Context(), c.GetString("userID"), c.Param("id"), &input)
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

// Delete removes the caller's listing.
func (h *ListingHandler) Delete(c *gin.Context) {
	if err := h.listings.Delete(c.Request.Context(), c.GetString("userID"), c.Param("id")); err != nil {
		fail(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Listing removed"})
}
