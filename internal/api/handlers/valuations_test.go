package handlers_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/listing-valuator/internal/api/handlers"
	"github.com/donaldgifford/listing-valuator/internal/engine"
	"github.com/donaldgifford/listing-valuator/pkg/comps"
	domain "github.com/donaldgifford/listing-valuator/pkg/types"
)

type fakeValuator struct {
	estimate *domain.PriceEstimate
	set      *engine.ComparableSet
	err      error
	got      *domain.Specification
}

func (f *fakeValuator) EstimatePrice(_ context.Context, spec *domain.Specification) (*domain.PriceEstimate, error) {
	f.got = spec
	return f.estimate, f.err
}

func (f *fakeValuator) Comparables(_ context.Context, spec *domain.Specification) (*engine.ComparableSet, error) {
	f.got = spec
	return f.set, f.err
}

func civicBody() map[string]any {
	return map[string]any{
		"condition": "used",
		"make":      "Honda",
		"model":     "Civic",
		"year":      2020,
		"mileage":   30000,
		"latitude":  40.7,
		"longitude": -74.0,
		"seller_id": sellerID,
	}
}

func TestEstimate_Success(t *testing.T) {
	t.Parallel()

	fv := &fakeValuator{estimate: &domain.PriceEstimate{
		MarketPrice:      19000,
		RecommendedPrice: 19000,
		SellerMultiplier: 1,
		Confidence:       domain.ConfidenceHigh,
		DepthReached:     1,
		ComparableCount:  3,
		Elasticity:       []domain.ElasticityPoint{},
	}}

	_, api := humatest.New(t)
	handlers.RegisterValuationRoutes(api, handlers.NewValuationsHandler(fv))

	resp := api.Post("/api/v1/valuations", civicBody())
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	assert.Contains(t, resp.Body.String(), `"market_price":19000`)
	assert.Contains(t, resp.Body.String(), `"confidence_level":"high"`)

	require.NotNil(t, fv.got)
	assert.Equal(t, domain.ConditionUsed, fv.got.Condition)
	assert.Equal(t, sellerID, fv.got.SellerID)
	require.NotNil(t, fv.got.Location)
	assert.InDelta(t, 40.7, fv.got.Location.Lat, 1e-9)
}

func TestEstimate_WithoutLocation(t *testing.T) {
	t.Parallel()

	fv := &fakeValuator{estimate: &domain.PriceEstimate{Confidence: domain.ConfidenceLow}}

	_, api := humatest.New(t)
	handlers.RegisterValuationRoutes(api, handlers.NewValuationsHandler(fv))

	body := civicBody()
	delete(body, "latitude")
	delete(body, "longitude")

	resp := api.Post("/api/v1/valuations", body)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	assert.Nil(t, fv.got.Location)
}

func TestEstimate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "no comparables", err: comps.ErrNoComparables, wantStatus: http.StatusNotFound},
		{
			name:       "invalid specification",
			err:        fmt.Errorf("%w: year must be positive", engine.ErrInvalidSpecification),
			wantStatus: http.StatusUnprocessableEntity,
		},
		{name: "store unavailable", err: errors.New("connection refused"), wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, api := humatest.New(t)
			handlers.RegisterValuationRoutes(api, handlers.NewValuationsHandler(&fakeValuator{err: tt.err}))

			resp := api.Post("/api/v1/valuations", civicBody())
			assert.Equal(t, tt.wantStatus, resp.Code)
		})
	}
}

func TestEstimate_RejectsInvalidBody(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{name: "unknown condition", mutate: func(b map[string]any) { b["condition"] = "mint" }},
		{name: "negative mileage", mutate: func(b map[string]any) { b["mileage"] = -5 }},
		{name: "missing make", mutate: func(b map[string]any) { delete(b, "make") }},
		{name: "latitude out of range", mutate: func(b map[string]any) { b["latitude"] = 91.0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fv := &fakeValuator{}
			_, api := humatest.New(t)
			handlers.RegisterValuationRoutes(api, handlers.NewValuationsHandler(fv))

			body := civicBody()
			tt.mutate(body)

			resp := api.Post("/api/v1/valuations", body)
			assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
			assert.Nil(t, fv.got, "invalid input never reaches the valuator")
		})
	}
}

func TestComparables_Success(t *testing.T) {
	t.Parallel()

	fv := &fakeValuator{set: &engine.ComparableSet{
		DepthReached: 2,
		MarketPrice:  18500,
		Comparables: []engine.WeightedComparable{
			{Comparable: comps.Comparable{Listing: domain.Listing{ID: listingID, Price: 18500}, Depth: 2}},
		},
	}}

	_, api := humatest.New(t)
	handlers.RegisterValuationRoutes(api, handlers.NewValuationsHandler(fv))

	resp := api.Post("/api/v1/comparables", civicBody())
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	assert.Contains(t, resp.Body.String(), `"depth_reached":2`)
	assert.Contains(t, resp.Body.String(), `"id":"`+listingID+`"`)
}

func TestComparables_NotFound(t *testing.T) {
	t.Parallel()

	_, api := humatest.New(t)
	handlers.RegisterValuationRoutes(api, handlers.NewValuationsHandler(&fakeValuator{err: comps.ErrNoComparables}))

	resp := api.Post("/api/v1/comparables", civicBody())
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
