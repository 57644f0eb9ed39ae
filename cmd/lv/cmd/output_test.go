package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/listing-valuator/internal/engine"
	"github.com/donaldgifford/listing-valuator/pkg/comps"
	"github.com/donaldgifford/listing-valuator/pkg/pricing"
	domain "github.com/donaldgifford/listing-valuator/pkg/types"
)

func TestPrintEstimate(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := printEstimate(&buf, &domain.PriceEstimate{
		MarketPrice:      19000,
		RecommendedPrice: 20900,
		SellerMultiplier: 1.1,
		Confidence:       domain.ConfidenceHigh,
		DepthReached:     1,
		ComparableCount:  3,
		Elasticity: []domain.ElasticityPoint{
			{Offset: -10, Price: 18810, PredictedDays: 12.5},
			{Offset: 0, Price: 20900, PredictedDays: 20},
		},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "$19000.00")
	assert.Contains(t, out, "$20900.00")
	assert.Contains(t, out, "high (depth 1)")
	assert.Contains(t, out, "-10%")
	assert.Contains(t, out, "+0%")
}

func TestPrintComparables(t *testing.T) {
	t.Parallel()

	miles := 12.3
	var buf bytes.Buffer
	err := printComparables(&buf, &engine.ComparableSet{
		DepthReached: 2,
		MarketPrice:  18500,
		Comparables: []engine.WeightedComparable{
			{
				Comparable: comps.Comparable{
					Listing:   domain.Listing{ID: "a", Make: "Honda", Model: "Civic", Year: 2020, Price: 18000},
					Depth:     2,
					Proximity: &miles,
				},
				Weight: pricing.Weight{Total: 0.375},
			},
			{
				Comparable: comps.Comparable{
					Listing: domain.Listing{ID: "b", Make: "Honda", Model: "Civic", Year: 2021, Price: 19000},
				},
			},
		},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "2020 Honda Civic")
	assert.Contains(t, out, "12.3")
	assert.Contains(t, out, "0.375")
	assert.Contains(t, out, "-")
}

func TestPrintUser_UnknownLocation(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, printUser(&buf, &domain.User{ID: "u1", Email: "a@example.com", ZIP: "99999"}))
	assert.Contains(t, buf.String(), "unknown")
}

func TestPrintListingDetail(t *testing.T) {
	t.Parallel()

	owner := "s1"
	soldAt := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	var buf bytes.Buffer
	require.NoError(t, printListingDetail(&buf, &domain.Listing{
		ID:      "l1",
		VIN:     "1HGCV1F34LA000001",
		Make:    "Honda",
		Model:   "Civic",
		Year:    2020,
		Price:   19000,
		OwnerID: &owner,
		Sold:    true,
		SoldAt:  &soldAt,
	}))

	out := buf.String()
	assert.Contains(t, out, "Owner:")
	assert.Contains(t, out, "2026-02-01 10:00:00")
	assert.NotContains(t, out, "Location:")
}

func TestEstimateCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/valuations", r.URL.Path)
		_, _ = w.Write([]byte(`{"market_price":19000,"recommended_price":19000,"confidence_level":"high","depth_reached":1}`))
	}))
	defer srv.Close()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{
		"estimate", "--server", srv.URL, "--output", "json",
		"--make", "Honda", "--model", "Civic", "--year", "2020",
	})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), `"market_price": 19000`)
}
