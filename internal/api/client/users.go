package client

import (
	"context"
	"fmt"
	"net/url"

	domain "github.com/donaldgifford/listing-valuator/pkg/types"
)

// CreateUser registers a user by email and ZIP.
func (c *Client) CreateUser(ctx context.Context, email, zip string) (*domain.User, error) {
	body := map[string]string{"email": email, "zip": zip}

	var u domain.User
	if err := c.post(ctx, "/api/v1/users", body, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUser returns a single user.
func (c *Client) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	if err := c.get(ctx, "/api/v1/users/"+url.PathEscape(id), &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// SavePreference records a saved or recently run search.
func (c *Client) SavePreference(
	ctx context.Context,
	userID string,
	kind domain.PreferenceKind,
	filter domain.SearchFilter,
) (*domain.SearchPreference, error) {
	body := struct {
		Kind   domain.PreferenceKind `json:"kind"`
		Filter domain.SearchFilter   `json:"filter"`
	}{Kind: kind, Filter: filter}

	var p domain.SearchPreference
	path := fmt.Sprintf("/api/v1/users/%s/preferences", url.PathEscape(userID))
	if err := c.post(ctx, path, body, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPreferences returns a user's saved and recent searches.
func (c *Client) ListPreferences(ctx context.Context, userID string) ([]domain.SearchPreference, error) {
	var resp struct {
		Preferences []domain.SearchPreference `json:"preferences"`
	}
	path := fmt.Sprintf("/api/v1/users/%s/preferences", url.PathEscape(userID))
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Preferences, nil
}
