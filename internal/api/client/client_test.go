package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/listing-valuator/internal/engine"
	"github.com/donaldgifford/listing-valuator/pkg/comps"
	domain "github.com/donaldgifford/listing-valuator/pkg/types"
)

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.GetListing(context.Background(), "l1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"title":"Service Unavailable"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Estimate(context.Background(), &Vehicle{Make: "Honda"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error (HTTP 503)")
	assert.False(t, IsNotFound(err))
}

func TestClient_NotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := New(srv.URL).GetUser(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestClient_Estimate(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/valuations", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var v Vehicle
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&v))
		assert.Equal(t, "Civic", v.Model)
		assert.Equal(t, "s1", v.SellerID)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(domain.PriceEstimate{
			MarketPrice:      19000,
			RecommendedPrice: 19000,
			Confidence:       domain.ConfidenceHigh,
			DepthReached:     1,
		})
	}))
	defer srv.Close()

	est, err := New(srv.URL).Estimate(context.Background(), &Vehicle{
		Condition: domain.ConditionUsed,
		Make:      "Honda",
		Model:     "Civic",
		Year:      2020,
		Mileage:   30000,
		SellerID:  "s1",
	})
	require.NoError(t, err)
	assert.InDelta(t, 19000.0, est.MarketPrice, 1e-9)
	assert.Equal(t, domain.ConfidenceHigh, est.Confidence)
}

func TestClient_Comparables(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/comparables", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(engine.ComparableSet{
			DepthReached: 2,
			MarketPrice:  18500,
			Comparables: []engine.WeightedComparable{
				{Comparable: comps.Comparable{Listing: domain.Listing{ID: "a"}, Depth: 2}},
			},
		})
	}))
	defer srv.Close()

	set, err := New(srv.URL).Comparables(context.Background(), &Vehicle{Make: "Honda"})
	require.NoError(t, err)
	assert.Equal(t, 2, set.DepthReached)
	require.Len(t, set.Comparables, 1)
	assert.Equal(t, "a", set.Comparables[0].Listing.ID)
}

func TestClient_Recommendations(t *testing.T) {
	t.Parallel()

	lat, lon := 40.7, -74.0
	tests := []struct {
		name      string
		params    *RecommendationsParams
		wantQuery string
	}{
		{name: "no params", params: nil, wantQuery: ""},
		{
			name:      "location and expand",
			params:    &RecommendationsParams{Latitude: &lat, Longitude: &lon, Expand: true},
			wantQuery: "expand=true&latitude=40.7&longitude=-74",
		},
		{
			name:      "latitude alone is dropped",
			params:    &RecommendationsParams{Latitude: &lat, Detail: true},
			wantQuery: "detail=true",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/v1/users/u1/recommendations", r.URL.Path)
				assert.Equal(t, tt.wantQuery, r.URL.RawQuery)
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"user_id":"u1","listing_ids":["a","b"]}`))
			}))
			defer srv.Close()

			resp, err := New(srv.URL).Recommendations(context.Background(), "u1", tt.params)
			require.NoError(t, err)
			assert.Equal(t, []string{"a", "b"}, resp.ListingIDs)
		})
	}
}

func TestClient_MarkSold(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/listings/l1/sold", r.URL.Path)
		_, _ = w.Write([]byte(`{"listing":{"id":"l1","sold":true},"changed":false}`))
	}))
	defer srv.Close()

	l, changed, err := New(srv.URL).MarkSold(context.Background(), "l1")
	require.NoError(t, err)
	assert.True(t, l.Sold)
	assert.False(t, changed)
}

func TestClient_SetFavorite(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "u1", body["user_id"])
		assert.Equal(t, true, body["favorite"])

		_, _ = w.Write([]byte(`{"favorited":true,"changed":true}`))
	}))
	defer srv.Close()

	changed, err := New(srv.URL).SetFavorite(context.Background(), "l1", "u1", true)
	require.NoError(t, err)
	assert.True(t, changed)
}

func TestClient_SavePreference(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/users/u1/preferences", r.URL.Path)

		var body struct {
			Kind   string              `json:"kind"`
			Filter domain.SearchFilter `json:"filter"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "favorited", body.Kind)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"p1","user_id":"u1","kind":"favorited"}`))
	}))
	defer srv.Close()

	honda := "Honda"
	p, err := New(srv.URL).SavePreference(context.Background(), "u1",
		domain.PreferenceFavorited, domain.SearchFilter{Make: &honda})
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)
}
