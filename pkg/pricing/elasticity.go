package pricing

import (
	"math"
	"time"

	"github.com/donaldgifford/listing-valuator/pkg/comps"
	domain "github.com/donaldgifford/listing-valuator/pkg/types"
)

// ElasticityConfig controls the days-on-market regression.
type ElasticityConfig struct {
	// DecayDays halves a sale's weight after this many days.
	DecayDays float64
	// Offsets are the fractional price offsets the curve is evaluated at.
	Offsets []float64
}

// DefaultElasticityConfig returns the default curve settings.
func DefaultElasticityConfig() ElasticityConfig {
	return ElasticityConfig{
		DecayDays: 90,
		Offsets:   []float64{-0.10, -0.05, 0, 0.05, 0.10},
	}
}

// Fit is a weighted least-squares line of days-on-market against price.
type Fit struct {
	Slope     float64
	Intercept float64
	Samples   int
}

// Predict returns the expected days-on-market at price, never negative.
func (f Fit) Predict(price float64) float64 {
	return math.Max(0, f.Intercept+f.Slope*price)
}

// FitElasticity regresses days-on-market on price over the sold comparables.
// Each sale is weighted by its depth weight and decays with age. It returns
// false when there are no sold comparables.
func FitElasticity(cs []comps.Comparable, cfg Config, now time.Time) (Fit, bool) {
	counts := comps.CountByDepth(cs)

	var xs, ys, ws []float64
	for i := range cs {
		c := &cs[i]
		if !c.Listing.Sold || c.Listing.SoldAt == nil {
			continue
		}

		sinceSale := math.Max(0, now.Sub(*c.Listing.SoldAt).Hours()/24)
		decay := 1.0
		if cfg.Elasticity.DecayDays > 0 {
			decay = 1 / (1 + sinceSale/cfg.Elasticity.DecayDays)
		}

		xs = append(xs, c.Listing.Price)
		ys = append(ys, c.DaysOnMarket)
		ws = append(ws, DepthWeight(c.Depth, counts[c.Depth], cfg.DepthWeights)*decay)
	}

	if len(xs) == 0 {
		return Fit{}, false
	}

	var sumW, meanX, meanY float64
	for i := range xs {
		sumW += ws[i]
		meanX += ws[i] * xs[i]
		meanY += ws[i] * ys[i]
	}
	if sumW == 0 {
		return Fit{}, false
	}
	meanX /= sumW
	meanY /= sumW

	var cov, variance float64
	for i := range xs {
		dx := xs[i] - meanX
		cov += ws[i] * dx * (ys[i] - meanY)
		variance += ws[i] * dx * dx
	}

	fit := Fit{Intercept: meanY, Samples: len(xs)}
	if variance > 0 {
		fit.Slope = cov / variance
		fit.Intercept = meanY - fit.Slope*meanX
	}

	return fit, true
}

// ElasticityCurve predicts days-on-market at each configured offset from the
// recommended price. It is empty when no comparable has sold.
func ElasticityCurve(
	cs []comps.Comparable,
	recommendedPrice float64,
	cfg Config,
	now time.Time,
) []domain.ElasticityPoint {
	fit, ok := FitElasticity(cs, cfg, now)
	if !ok {
		return []domain.ElasticityPoint{}
	}

	points := make([]domain.ElasticityPoint, 0, len(cfg.Elasticity.Offsets))
	for _, off := range cfg.Elasticity.Offsets {
		price := Round2(recommendedPrice * (1 + off))
		points = append(points, domain.ElasticityPoint{
			Offset:        off,
			Price:         price,
			PredictedDays: Round2(fit.Predict(price)),
		})
	}
	return points
}
