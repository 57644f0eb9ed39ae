package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/listing-valuator/internal/metrics"
	"github.com/donaldgifford/listing-valuator/pkg/comps"
	"github.com/donaldgifford/listing-valuator/pkg/pricing"
	domain "github.com/donaldgifford/listing-valuator/pkg/types"
)

// WeightedComparable is a comparable with its market price weight.
type WeightedComparable struct {
	comps.Comparable
	Weight pricing.Weight `json:"weight"`
}

// ComparableSet is the result of a comparable search with weights attached.
type ComparableSet struct {
	DepthReached int                  `json:"depth_reached"`
	MarketPrice  float64              `json:"market_price"`
	Comparables  []WeightedComparable `json:"comparables"`
}

// EstimatePrice values a vehicle from its comparables. The seller's history
// adjusts the recommended price only for high confidence estimates. It
// returns comps.ErrNoComparables when nothing comparable exists.
func (eng *Engine) EstimatePrice(
	ctx context.Context,
	spec *domain.Specification,
) (_ *domain.PriceEstimate, err error) {
	ctx, span := eng.tracer.Start(ctx, "engine.EstimatePrice", trace.WithAttributes(
		attribute.String("vehicle.make", spec.Make),
		attribute.String("vehicle.model", spec.Model),
		attribute.Int("vehicle.year", spec.Year),
	))
	defer endSpan(span, &err)

	start := time.Now()
	defer func() {
		metrics.EstimateDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.EstimateFailuresTotal.Inc()
		}
	}()

	now := eng.nowFunc()

	res, err := eng.search(ctx, spec, now)
	if err != nil {
		return nil, err
	}

	est := &domain.PriceEstimate{
		MarketPrice:      pricing.MarketPrice(spec, res.Comparables, eng.pricing),
		SellerMultiplier: 1.0,
		Confidence:       pricing.ConfidenceFor(res.DepthReached),
		DepthReached:     res.DepthReached,
		ComparableCount:  len(res.Comparables),
	}

	if spec.SellerID != "" && est.Confidence == domain.ConfidenceHigh {
		mult, err := eng.sellerMultiplier(ctx, spec.SellerID, now)
		if err != nil {
			return nil, err
		}
		est.SellerMultiplier = mult
	}

	est.RecommendedPrice = pricing.Recommend(est.MarketPrice, est.SellerMultiplier, est.Confidence)
	est.Elasticity = pricing.ElasticityCurve(res.Comparables, est.RecommendedPrice, eng.pricing, now)

	span.SetAttributes(
		attribute.Int("comps.depth", est.DepthReached),
		attribute.Int("comps.count", est.ComparableCount),
		attribute.String("estimate.confidence", string(est.Confidence)),
	)
	metrics.EstimatesTotal.WithLabelValues(string(est.Confidence)).Inc()

	eng.log.Debug("price estimated",
		"make", spec.Make,
		"model", spec.Model,
		"year", spec.Year,
		"market_price", est.MarketPrice,
		"recommended_price", est.RecommendedPrice,
		"confidence", est.Confidence,
		"depth", est.DepthReached,
		"comparables", est.ComparableCount,
	)

	return est, nil
}

// Comparables runs the comparable search and attaches each comparable's
// market price weight.
func (eng *Engine) Comparables(
	ctx context.Context,
	spec *domain.Specification,
) (_ *ComparableSet, err error) {
	ctx, span := eng.tracer.Start(ctx, "engine.Comparables")
	defer endSpan(span, &err)

	res, err := eng.search(ctx, spec, eng.nowFunc())
	if err != nil {
		return nil, err
	}

	weights := pricing.Weigh(spec, res.Comparables, eng.pricing)
	set := &ComparableSet{
		DepthReached: res.DepthReached,
		MarketPrice:  pricing.MarketPrice(spec, res.Comparables, eng.pricing),
		Comparables:  make([]WeightedComparable, len(res.Comparables)),
	}
	for i := range res.Comparables {
		set.Comparables[i] = WeightedComparable{Comparable: res.Comparables[i], Weight: weights[i]}
	}

	return set, nil
}

func (eng *Engine) search(
	ctx context.Context,
	spec *domain.Specification,
	now time.Time,
) (*comps.Result, error) {
	if err := validateSpecification(spec); err != nil {
		return nil, err
	}

	res, err := comps.Search(ctx, eng.store, spec, eng.comps, now)
	if err != nil {
		if errors.Is(err, comps.ErrNoComparables) {
			return nil, err
		}
		return nil, fmt.Errorf("searching comparables: %w", err)
	}

	metrics.ComparableDepth.Observe(float64(res.DepthReached))
	metrics.ComparablesFound.Observe(float64(len(res.Comparables)))

	return res, nil
}

func (eng *Engine) sellerMultiplier(ctx context.Context, sellerID string, now time.Time) (float64, error) {
	history, err := eng.store.ListSellerSoldListings(ctx, sellerID)
	if err != nil {
		return 0, fmt.Errorf("loading seller history: %w", err)
	}
	if len(history) < eng.pricing.Seller.MinSold {
		return 1.0, nil
	}

	avgs, err := eng.store.MarketAvgDaysOnMarket(ctx, sellerID, pricing.SellerGroups(history))
	if err != nil {
		return 0, fmt.Errorf("loading market averages: %w", err)
	}

	return pricing.SellerMultiplier(history, avgs, eng.pricing.Seller, now), nil
}

func validateSpecification(spec *domain.Specification) error {
	var errs []error

	if !spec.Condition.Valid() {
		errs = append(errs, fmt.Errorf("unknown condition %q", spec.Condition))
	}
	if spec.Make == "" {
		errs = append(errs, errors.New("make is required"))
	}
	if spec.Model == "" {
		errs = append(errs, errors.New("model is required"))
	}
	if spec.Year <= 0 {
		errs = append(errs, errors.New("year must be positive"))
	}
	if spec.Mileage < 0 {
		errs = append(errs, errors.New("mileage must not be negative"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidSpecification, errors.Join(errs...))
	}
	return nil
}

// endSpan records a non-nil error on the span before ending it.
func endSpan(span trace.Span, err *error) {
	if *err != nil {
		span.RecordError(*err)
		span.SetStatus(codes.Error, (*err).Error())
	}
	span.End()
}
