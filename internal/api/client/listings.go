package client

import (
	"context"
	"fmt"
	"net/url"

	domain "github.com/donaldgifford/listing-valuator/pkg/types"
)

// NewListing is the request body for creating or updating a listing.
type NewListing struct {
	VIN       string           `json:"vin"`
	Condition domain.Condition `json:"condition"`
	Make      string           `json:"make"`
	Model     string           `json:"model"`
	Year      int              `json:"year"`
	Mileage   int              `json:"mileage"`
	Color     string           `json:"color,omitempty"`
	Price     float64          `json:"price"`
	Latitude  *float64         `json:"latitude,omitempty"`
	Longitude *float64         `json:"longitude,omitempty"`
	OwnerID   *string          `json:"owner_id,omitempty"`
}

// CreateListing inserts a listing or updates the one with the same VIN.
func (c *Client) CreateListing(ctx context.Context, l *NewListing) (*domain.Listing, error) {
	var out domain.Listing
	if err := c.post(ctx, "/api/v1/listings", l, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetListing returns a single listing by ID.
func (c *Client) GetListing(ctx context.Context, id string) (*domain.Listing, error) {
	var l domain.Listing
	if err := c.get(ctx, "/api/v1/listings/"+url.PathEscape(id), &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// MarkSold marks a listing sold. changed is false when it already was.
func (c *Client) MarkSold(ctx context.Context, id string) (l *domain.Listing, changed bool, err error) {
	var resp struct {
		Listing domain.Listing `json:"listing"`
		Changed bool           `json:"changed"`
	}
	path := fmt.Sprintf("/api/v1/listings/%s/sold", url.PathEscape(id))
	if err := c.post(ctx, path, nil, &resp); err != nil {
		return nil, false, err
	}
	return &resp.Listing, resp.Changed, nil
}

// RecordVisit adds one visit's engagement for a user.
func (c *Client) RecordVisit(
	ctx context.Context,
	listingID, userID string,
	clicks int,
	dwellSeconds float64,
) (*domain.ListingVisit, error) {
	body := map[string]any{"user_id": userID, "clicks": clicks, "dwell_seconds": dwellSeconds}

	var v domain.ListingVisit
	path := fmt.Sprintf("/api/v1/listings/%s/visits", url.PathEscape(listingID))
	if err := c.post(ctx, path, body, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// SetFavorite favorites or unfavorites a listing for a user.
func (c *Client) SetFavorite(ctx context.Context, listingID, userID string, favorite bool) (changed bool, err error) {
	body := map[string]any{"user_id": userID, "favorite": favorite}

	var resp struct {
		Changed bool `json:"changed"`
	}
	path := fmt.Sprintf("/api/v1/listings/%s/favorite", url.PathEscape(listingID))
	if err := c.put(ctx, path, body, &resp); err != nil {
		return false, err
	}
	return resp.Changed, nil
}

// SendMessage sends a message about a listing.
func (c *Client) SendMessage(ctx context.Context, listingID, senderID, receiverID, text string) (*domain.Message, error) {
	body := map[string]string{
		"listing_id":  listingID,
		"sender_id":   senderID,
		"receiver_id": receiverID,
		"body":        text,
	}

	var m domain.Message
	if err := c.post(ctx, "/api/v1/messages", body, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
