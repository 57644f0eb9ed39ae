package pricing

import (
	"time"

	domain "github.com/donaldgifford/listing-valuator/pkg/types"
)

// SellerConfig controls the seller history multiplier.
type SellerConfig struct {
	// MinSold is the number of sold listings a seller needs before their
	// history adjusts a price.
	MinSold int
	// Smoothing pulls small seller samples toward the market average.
	Smoothing     float64
	MinMultiplier float64
	MaxMultiplier float64
}

// DefaultSellerConfig returns the default seller multiplier constants.
func DefaultSellerConfig() SellerConfig {
	return SellerConfig{
		MinSold:       5,
		Smoothing:     3,
		MinMultiplier: 0.9,
		MaxMultiplier: 1.1,
	}
}

// SellerMultiplier compares how fast a seller's listings sold against the
// market average for the same condition, make, and model. marketAvgDays is
// keyed by segment and must exclude the seller's own sales. The result is 1.0
// when the seller lacks history or no segment has market data.
func SellerMultiplier(
	history []domain.Listing,
	marketAvgDays map[domain.GroupKey]float64,
	cfg SellerConfig,
	now time.Time,
) float64 {
	groups := make(map[domain.GroupKey]*sellerGroup)
	var order []domain.GroupKey
	sold := 0

	for i := range history {
		l := &history[i]
		if !l.Sold || l.SoldAt == nil {
			continue
		}
		sold++

		key := domain.GroupOf(l)
		g, ok := groups[key]
		if !ok {
			g = &sellerGroup{}
			groups[key] = g
			order = append(order, key)
		}
		g.count++
		g.totalDays += l.DaysOnMarket(now)
	}

	if sold < cfg.MinSold {
		return 1.0
	}

	var weightedRatio float64
	var weight int
	for _, key := range order {
		marketAvg, ok := marketAvgDays[key]
		if !ok || marketAvg <= 0 {
			continue
		}

		g := groups[key]
		sellerAvg := g.totalDays / float64(g.count)
		n := float64(g.count)
		smoothed := (sellerAvg*n + marketAvg*cfg.Smoothing) / (n + cfg.Smoothing)
		if smoothed <= 0 {
			continue
		}

		weightedRatio += (marketAvg / smoothed) * n
		weight += g.count
	}

	if weight == 0 {
		return 1.0
	}

	return clamp(weightedRatio/float64(weight), cfg.MinMultiplier, cfg.MaxMultiplier)
}

// SellerGroups returns the distinct segments of the seller's sold listings
// in first-seen order.
func SellerGroups(history []domain.Listing) []domain.GroupKey {
	seen := make(map[domain.GroupKey]struct{})
	var keys []domain.GroupKey
	for i := range history {
		if !history[i].Sold {
			continue
		}
		k := domain.GroupOf(&history[i])
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}

type sellerGroup struct {
	count     int
	totalDays float64
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
