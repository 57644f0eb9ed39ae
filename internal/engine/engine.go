// Package engine orchestrates price estimation and recommendation ranking
// over the store, cache, and geocoder.
package engine

import (
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/listing-valuator/internal/cache"
	"github.com/donaldgifford/listing-valuator/internal/geocode"
	"github.com/donaldgifford/listing-valuator/internal/store"
	"github.com/donaldgifford/listing-valuator/pkg/comps"
	"github.com/donaldgifford/listing-valuator/pkg/pricing"
	score "github.com/donaldgifford/listing-valuator/pkg/scorer"
)

const tracerName = "github.com/donaldgifford/listing-valuator/internal/engine"

const (
	defaultCacheTTL            = 4 * time.Hour
	defaultMaxRecommendations  = 20
	defaultCandidatePool       = 50
	defaultViewedPreferenceCap = 5
	defaultSignalConcurrency   = 8
	defaultWarmWindow          = 24 * time.Hour
	defaultWarmBatch           = 100
)

// ErrInvalidSpecification is returned when a price estimate target is
// missing required fields.
var ErrInvalidSpecification = errors.New("invalid vehicle specification")

// Engine orchestrates valuation and recommendation.
type Engine struct {
	store    store.Store
	cache    cache.Cache
	geocoder geocode.Geocoder
	log      *slog.Logger
	tracer   trace.Tracer
	nowFunc  func() time.Time

	comps            comps.Config
	pricing          pricing.Config
	ownedWeights     score.Weights
	ownerlessWeights score.Weights

	cacheTTL            time.Duration
	maxRecommendations  int
	candidatePool       int
	viewedPreferenceCap int
	signalConcurrency   int
	warmWindow          time.Duration
	warmBatch           int
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(s store.Store, c cache.Cache, opts ...EngineOption) *Engine {
	owned := score.DefaultOwnedWeights()
	eng := &Engine{
		store:               s,
		cache:               c,
		geocoder:            geocode.Disabled{},
		log:                 slog.Default(),
		tracer:              otel.Tracer(tracerName),
		nowFunc:             time.Now,
		comps:               comps.DefaultConfig(),
		pricing:             pricing.DefaultConfig(),
		ownedWeights:        owned,
		ownerlessWeights:    score.OwnerlessWeights(owned),
		cacheTTL:            defaultCacheTTL,
		maxRecommendations:  defaultMaxRecommendations,
		candidatePool:       defaultCandidatePool,
		viewedPreferenceCap: defaultViewedPreferenceCap,
		signalConcurrency:   defaultSignalConcurrency,
		warmWindow:          defaultWarmWindow,
		warmBatch:           defaultWarmBatch,
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithNowFunc overrides the clock used for days-on-market and expiry.
func WithNowFunc(fn func() time.Time) EngineOption {
	return func(e *Engine) {
		e.nowFunc = fn
	}
}

// WithTracer sets the tracer used for engine spans.
func WithTracer(t trace.Tracer) EngineOption {
	return func(e *Engine) {
		e.tracer = t
	}
}

// WithGeocoder sets the ZIP geocoder used at user signup.
func WithGeocoder(g geocode.Geocoder) EngineOption {
	return func(e *Engine) {
		e.geocoder = g
	}
}

// WithComparableConfig sets the comparable search tiers.
func WithComparableConfig(cfg comps.Config) EngineOption {
	return func(e *Engine) {
		e.comps = cfg
	}
}

// WithPricingConfig sets the market price, seller, and elasticity constants.
func WithPricingConfig(cfg pricing.Config) EngineOption {
	return func(e *Engine) {
		e.pricing = cfg
	}
}

// WithWeights sets the owned-listing weight table. The ownerless table is
// derived from it.
func WithWeights(owned score.Weights) EngineOption {
	return func(e *Engine) {
		e.ownedWeights = owned
		e.ownerlessWeights = score.OwnerlessWeights(owned)
	}
}

// WithCacheTTL sets how long recommendation lists stay cached.
func WithCacheTTL(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.cacheTTL = d
	}
}

// WithMaxRecommendations sets how many listings a recommendation returns.
func WithMaxRecommendations(n int) EngineOption {
	return func(e *Engine) {
		e.maxRecommendations = n
	}
}

// WithCandidatePool sets how many recently visited listings seed ranking.
func WithCandidatePool(n int) EngineOption {
	return func(e *Engine) {
		e.candidatePool = n
	}
}

// WithViewedPreferenceCap sets how many viewed filters a user keeps.
func WithViewedPreferenceCap(n int) EngineOption {
	return func(e *Engine) {
		e.viewedPreferenceCap = n
	}
}

// WithSignalConcurrency bounds concurrent signal lookups per recommendation.
func WithSignalConcurrency(n int) EngineOption {
	return func(e *Engine) {
		e.signalConcurrency = n
	}
}

// WithWarmup sets the activity window and batch size of cache warm runs.
func WithWarmup(window time.Duration, batch int) EngineOption {
	return func(e *Engine) {
		e.warmWindow = window
		e.warmBatch = batch
	}
}
