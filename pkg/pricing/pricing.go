// Package pricing estimates a market price from comparable listings, adjusts
// it by a seller's selling history, and predicts time-to-sell at nearby
// price points.
package pricing

import (
	"math"

	domain "github.com/donaldgifford/listing-valuator/pkg/types"
)

// Config holds the weighting constants used by the estimators.
type Config struct {
	// MileageScale converts a mileage gap into year-equivalent units.
	MileageScale float64
	// DepthWeights is the base weight per search depth, shallowest first.
	DepthWeights []float64

	SoldWeight   float64
	ActiveWeight float64

	ProximityFadeMiles float64
	ProximityFloor     float64

	RecencyFloor float64
	DaysPerMonth float64

	Seller     SellerConfig
	Elasticity ElasticityConfig
}

// DefaultConfig returns the default pricing constants.
func DefaultConfig() Config {
	return Config{
		MileageScale:       10000,
		DepthWeights:       []float64{1.0, 0.75, 0.5, 0.25},
		SoldWeight:         1.0,
		ActiveWeight:       0.7,
		ProximityFadeMiles: 500,
		ProximityFloor:     0.1,
		RecencyFloor:       0.1,
		DaysPerMonth:       30,
		Seller:             DefaultSellerConfig(),
		Elasticity:         DefaultElasticityConfig(),
	}
}

// ConfidenceFor maps the depth at which the comparable search was satisfied
// to a confidence label.
func ConfidenceFor(depth int) domain.ConfidenceLevel {
	switch depth {
	case 1:
		return domain.ConfidenceHigh
	case 2:
		return domain.ConfidenceMedium
	case 3:
		return domain.ConfidenceLow
	default:
		return domain.ConfidenceVeryLow
	}
}

// Recommend applies the seller multiplier to the market price. Estimates
// below high confidence are returned unadjusted.
func Recommend(marketPrice, multiplier float64, confidence domain.ConfidenceLevel) float64 {
	if confidence != domain.ConfidenceHigh {
		return Round2(marketPrice)
	}
	return Round2(marketPrice * multiplier)
}

// Round2 rounds v to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
