package client

import (
	"context"

	"github.com/donaldgifford/listing-valuator/internal/engine"
	domain "github.com/donaldgifford/listing-valuator/pkg/types"
)

// Vehicle is the request body for valuation endpoints.
type Vehicle struct {
	Condition domain.Condition `json:"condition"`
	Make      string           `json:"make"`
	Model     string           `json:"model"`
	Year      int              `json:"year"`
	Mileage   int              `json:"mileage"`
	Latitude  *float64         `json:"latitude,omitempty"`
	Longitude *float64         `json:"longitude,omitempty"`
	SellerID  string           `json:"seller_id,omitempty"`
}

// Estimate prices a vehicle from its comparables.
func (c *Client) Estimate(ctx context.Context, v *Vehicle) (*domain.PriceEstimate, error) {
	var est domain.PriceEstimate
	if err := c.post(ctx, "/api/v1/valuations", v, &est); err != nil {
		return nil, err
	}
	return &est, nil
}

// Comparables returns the weighted comparables behind an estimate.
func (c *Client) Comparables(ctx context.Context, v *Vehicle) (*engine.ComparableSet, error) {
	var set engine.ComparableSet
	if err := c.post(ctx, "/api/v1/comparables", v, &set); err != nil {
		return nil, err
	}
	return &set, nil
}
