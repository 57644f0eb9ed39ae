package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	score "github.com/donaldgifford/listing-valuator/pkg/scorer"
	domain "github.com/donaldgifford/listing-valuator/pkg/types"
)

// RecommendationsResponse is the ranked recommendation list for a user.
type RecommendationsResponse struct {
	UserID     string           `json:"user_id"`
	ListingIDs []string         `json:"listing_ids"`
	Listings   []domain.Listing `json:"listings,omitempty"`
	Scores     []score.Scored   `json:"scores,omitempty"`
}

// RecommendationsParams defines optional query parameters.
type RecommendationsParams struct {
	Latitude  *float64
	Longitude *float64
	Expand    bool
	Detail    bool
}

// Recommendations returns the best listings for a user.
func (c *Client) Recommendations(
	ctx context.Context,
	userID string,
	params *RecommendationsParams,
) (*RecommendationsResponse, error) {
	q := url.Values{}
	if params != nil {
		if params.Latitude != nil && params.Longitude != nil {
			q.Set("latitude", strconv.FormatFloat(*params.Latitude, 'f', -1, 64))
			q.Set("longitude", strconv.FormatFloat(*params.Longitude, 'f', -1, 64))
		}
		if params.Expand {
			q.Set("expand", "true")
		}
		if params.Detail {
			q.Set("detail", "true")
		}
	}

	path := fmt.Sprintf("/api/v1/users/%s/recommendations", url.PathEscape(userID))
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp RecommendationsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
