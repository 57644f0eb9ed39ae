package pricing

import (
	"math"

	"github.com/donaldgifford/listing-valuator/pkg/comps"
	domain "github.com/donaldgifford/listing-valuator/pkg/types"
)

// Weight is the per-factor weight breakdown of one comparable.
type Weight struct {
	Similarity float64 `json:"similarity"`
	Depth      float64 `json:"depth"`
	Sold       float64 `json:"sold"`
	Proximity  float64 `json:"proximity"`
	Recency    float64 `json:"recency"`
	Total      float64 `json:"total"`
}

// Weigh computes the combined weight of every comparable against the target.
// The returned slice is index-aligned with cs.
func Weigh(target *domain.Specification, cs []comps.Comparable, cfg Config) []Weight {
	counts := comps.CountByDepth(cs)
	weights := make([]Weight, len(cs))

	for i := range cs {
		c := &cs[i]
		w := Weight{
			Similarity: similarityWeight(target, &c.Listing, cfg.MileageScale),
			Depth:      DepthWeight(c.Depth, counts[c.Depth], cfg.DepthWeights),
			Sold:       soldWeight(c.Listing.Sold, cfg),
			Proximity:  proximityWeight(c.Proximity, cfg),
			Recency:    recencyWeight(c.DaysOnMarket, cfg),
		}
		w.Total = w.Similarity * w.Depth * w.Sold * w.Proximity * w.Recency
		weights[i] = w
	}

	return weights
}

// MarketPrice returns the weight-normalized average price of the
// comparables rounded to cents. An empty set or a zero weight sum yields 0.
func MarketPrice(target *domain.Specification, cs []comps.Comparable, cfg Config) float64 {
	if len(cs) == 0 {
		return 0
	}

	var weighted, total float64
	for i, w := range Weigh(target, cs, cfg) {
		weighted += cs[i].Listing.Price * w.Total
		total += w.Total
	}

	if total == 0 {
		return 0
	}
	return Round2(weighted / total)
}

// DepthWeight divides the depth's base weight by the number of comparables
// found at that depth so a crowded tier does not dominate by volume. Depths
// beyond the table reuse its last entry.
func DepthWeight(depth, countAtDepth int, base []float64) float64 {
	if len(base) == 0 || countAtDepth <= 0 {
		return 0
	}

	idx := min(max(depth-1, 0), len(base)-1)
	return base[idx] / float64(countAtDepth)
}

func similarityWeight(target *domain.Specification, l *domain.Listing, mileageScale float64) float64 {
	yearGap := math.Abs(float64(target.Year - l.Year))

	var mileageGap float64
	if mileageScale > 0 {
		mileageGap = math.Abs(float64(target.Mileage-l.Mileage)) / mileageScale
	}

	return 1 / (1 + yearGap + mileageGap)
}

func soldWeight(sold bool, cfg Config) float64 {
	if sold {
		return cfg.SoldWeight
	}
	return cfg.ActiveWeight
}

// proximityWeight fades linearly with distance down to the floor. Unknown
// distance is neutral.
func proximityWeight(miles *float64, cfg Config) float64 {
	if miles == nil || cfg.ProximityFadeMiles <= 0 {
		return 1
	}
	return math.Max(cfg.ProximityFloor, 1-*miles/cfg.ProximityFadeMiles)
}

func recencyWeight(daysOnMarket float64, cfg Config) float64 {
	if cfg.DaysPerMonth <= 0 {
		return 1
	}
	return math.Max(cfg.RecencyFloor, 1/((1+daysOnMarket)/cfg.DaysPerMonth))
}
