package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	domain "github.com/donaldgifford/listing-valuator/pkg/types"
)

func soldListing(model string, daysOnMarket float64) domain.Listing {
	created := now.Add(-200 * 24 * time.Hour)
	soldAt := created.Add(time.Duration(daysOnMarket * 24 * float64(time.Hour)))
	return domain.Listing{
		Condition: domain.ConditionUsed,
		Make:      "Honda",
		Model:     model,
		CreatedAt: created,
		Sold:      true,
		SoldAt:    &soldAt,
	}
}

func repeat(n int, l domain.Listing) []domain.Listing {
	out := make([]domain.Listing, n)
	for i := range out {
		out[i] = l
	}
	return out
}

var (
	civicKey  = domain.GroupKey{Condition: domain.ConditionUsed, Make: "Honda", Model: "Civic"}
	accordKey = domain.GroupKey{Condition: domain.ConditionUsed, Make: "Honda", Model: "Accord"}
)

func TestSellerMultiplier_BelowThreshold(t *testing.T) {
	t.Parallel()

	history := repeat(3, soldListing("Civic", 5))
	market := map[domain.GroupKey]float64{civicKey: 30}

	assert.Equal(t, 1.0, SellerMultiplier(history, market, DefaultSellerConfig(), now))
}

func TestSellerMultiplier_UnsoldListingsDoNotCount(t *testing.T) {
	t.Parallel()

	history := repeat(4, soldListing("Civic", 5))
	history = append(history, domain.Listing{Condition: domain.ConditionUsed, Make: "Honda", Model: "Civic"})
	market := map[domain.GroupKey]float64{civicKey: 30}

	assert.Equal(t, 1.0, SellerMultiplier(history, market, DefaultSellerConfig(), now))
}

func TestSellerMultiplier_SmoothedRatio(t *testing.T) {
	t.Parallel()

	cfg := SellerConfig{MinSold: 5, Smoothing: 3, MinMultiplier: 0.5, MaxMultiplier: 2}
	history := repeat(5, soldListing("Civic", 10))
	market := map[domain.GroupKey]float64{civicKey: 20}

	// smoothed = (10*5 + 20*3) / 8 = 13.75; ratio = 20 / 13.75
	assert.InDelta(t, 20/13.75, SellerMultiplier(history, market, cfg, now), 1e-9)
}

func TestSellerMultiplier_Clamped(t *testing.T) {
	t.Parallel()

	cfg := DefaultSellerConfig()

	fast := repeat(10, soldListing("Civic", 1))
	assert.Equal(t, cfg.MaxMultiplier, SellerMultiplier(fast, map[domain.GroupKey]float64{civicKey: 60}, cfg, now))

	slow := repeat(10, soldListing("Civic", 200))
	assert.Equal(t, cfg.MinMultiplier, SellerMultiplier(slow, map[domain.GroupKey]float64{civicKey: 10}, cfg, now))
}

func TestSellerMultiplier_CountWeightedAcrossGroups(t *testing.T) {
	t.Parallel()

	cfg := SellerConfig{MinSold: 5, Smoothing: 0, MinMultiplier: 0.1, MaxMultiplier: 10}
	history := append(repeat(4, soldListing("Civic", 10)), repeat(2, soldListing("Accord", 30))...)
	market := map[domain.GroupKey]float64{civicKey: 20, accordKey: 20}

	// Civic ratio 2.0 over 4 sales, Accord ratio 2/3 over 2 sales.
	want := (2.0*4 + (20.0/30.0)*2) / 6
	assert.InDelta(t, want, SellerMultiplier(history, market, cfg, now), 1e-9)
}

func TestSellerMultiplier_GroupsWithoutMarketAreSkipped(t *testing.T) {
	t.Parallel()

	cfg := SellerConfig{MinSold: 5, Smoothing: 0, MinMultiplier: 0.1, MaxMultiplier: 10}
	history := append(repeat(4, soldListing("Civic", 10)), repeat(2, soldListing("Accord", 30))...)

	onlyCivic := map[domain.GroupKey]float64{civicKey: 20}
	assert.InDelta(t, 2.0, SellerMultiplier(history, onlyCivic, cfg, now), 1e-9)

	assert.Equal(t, 1.0, SellerMultiplier(history, nil, cfg, now))
}

func TestSellerGroups(t *testing.T) {
	t.Parallel()

	history := []domain.Listing{
		soldListing("Civic", 1),
		soldListing("Accord", 1),
		soldListing("Civic", 2),
		{Condition: domain.ConditionUsed, Make: "Honda", Model: "Pilot"},
	}

	assert.Equal(t, []domain.GroupKey{civicKey, accordKey}, SellerGroups(history))
}
