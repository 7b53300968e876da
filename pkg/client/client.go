// Package client is a typed Go client for the rental-ads HTTP API,
// mirroring the data-access wrappers the web frontend uses.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/whyismeleige/rental-ads/internal/models"
	"github.com/whyismeleige/rental-ads/pkg/apperr"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// SetToken sets the bearer token attached to subsequent requests.
// Register and Login set it automatically on success.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Register creates an account and stores the returned token.
func (c *Client) Register(ctx context.Context, name, email, password string) (*models.AuthResponse, error) {
	req := &models.RegisterRequest{Name: name, Email: email, Password: password}
	resp := &models.AuthResponse{}
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", req, resp); err != nil {
		return nil, err
	}
	c.token = resp.Token
	return resp, nil
}

// Login authenticates and stores the returned token.
func (c *Client) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	req := &models.LoginRequest{Email: email, Password: password}
	resp := &models.AuthResponse{}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", req, resp); err != nil {
		return nil, err
	}
	c.token = resp.Token
	return resp, nil
}

// Logout acknowledges the logout and drops the stored token.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil); err != nil {
		return err
	}
	c.token = ""
	return nil
}

// Profile returns the account bound to the stored token.
func (c *Client) Profile(ctx context.Context) (*models.User, error) {
	var out struct {
		User *models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/profile", nil, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

// Listings returns all listings, optionally filtered by a location
// search term.
func (c *Client) Listings(ctx context.Context, search string) ([]models.Listing, error) {
	path := "/api/listings"
	if search != "" {
		path += "?search=" + url.QueryEscape(search)
	}
	var out []models.Listing
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Listing returns one listing with its owner resolved.
func (c *Client) Listing(ctx context.Context, id string) (*models.ListingDetail, error) {
	out := &models.ListingDetail{}
	if err := c.do(ctx, http.MethodGet, "/api/listings/"+url.PathEscape(id), nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// MyListings returns the authenticated caller's listings.
func (c *Client) MyListings(ctx context.Context) ([]models.Listing, error) {
	var out []models.Listing
	if err := c.do(ctx, http.MethodGet, "/api/listings/my-listings", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateListing persists a new listing owned by the caller.
func (c *Client) CreateListing(ctx context.Context, input *models.ListingInput) (*models.Listing, error) {
	out := &models.Listing{}
	if err := c.do(ctx, http.MethodPost, "/api/listings", input, out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateListing replaces the mutable fields of the caller's listing.
func (c *Client) UpdateListing(ctx context.Context, id string, input *models.ListingInput) (*models.Listing, error) {
	out := &models.Listing{}
	if err := c.do(ctx, http.MethodPut, "/api/listings/"+url.PathEscape(id), input, out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteListing removes the caller's listing.
func (c *Client) DeleteListing(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/listings/"+url.PathEscape(id), nil, nil)
}

// do performs one request and decodes the response into out. Error
// envelopes come back as *apperr.Error so callers can branch on the
// same taxonomy the server uses.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		var envelope struct {
			Message string          `json:"message"`
			Type    string          `json:"type"`
			Data    json.RawMessage `json:"data"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil || envelope.Message == "" {
			return fmt.Errorf("server returned status %d", resp.StatusCode)
		}
		var data any
		if len(envelope.Data) > 0 {
			_ = json.Unmarshal(envelope.Data, &data)
		}
		return &apperr.Error{Type: envelope.Type, Message: envelope.Message, Data: data}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}
