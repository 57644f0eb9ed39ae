// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/listing-valuator/pkg/comps"
	"github.com/donaldgifford/listing-valuator/pkg/pricing"
	score "github.com/donaldgifford/listing-valuator/pkg/scorer"
)

// Config is the top-level application configuration.
type Config struct {
	Server         ServerConfig         `yaml:"server"`
	Database       DatabaseConfig       `yaml:"database"`
	Cache          CacheConfig          `yaml:"cache"`
	Geocoder       GeocoderConfig       `yaml:"geocoder"`
	Valuation      ValuationConfig      `yaml:"valuation"`
	Recommendation RecommendationConfig `yaml:"recommendation"`
	Schedule       ScheduleConfig       `yaml:"schedule"`
	Telemetry      TelemetryConfig      `yaml:"telemetry"`
	Logging        LoggingConfig        `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// Cache backends.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// CacheConfig defines the recommendation cache.
type CacheConfig struct {
	Backend string        `yaml:"backend"` // memory, redis
	TTL     time.Duration `yaml:"ttl"`
	Redis   RedisConfig   `yaml:"redis"`
}

// RedisConfig defines Redis connection settings.
type RedisConfig struct {
	Addr      string `yaml:"addr"`
	Password  string `yaml:"password"`
	DB        int    `yaml:"db"`
	KeyPrefix string `yaml:"key_prefix"`
}

// GeocoderConfig defines the ZIP geocoding service used at signup.
type GeocoderConfig struct {
	Enabled   bool            `yaml:"enabled"`
	URL       string          `yaml:"url"`
	Timeout   time.Duration   `yaml:"timeout"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines outbound request rate limiting.
type RateLimitConfig struct {
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
}

// ValuationConfig defines the comparable search and pricing constants.
type ValuationConfig struct {
	Tiers    []TierConfig `yaml:"tiers"`
	MinComps int          `yaml:"min_comps"`

	MileageScale       float64   `yaml:"mileage_scale"`
	DepthWeights       []float64 `yaml:"depth_weights"`
	SoldWeight         float64   `yaml:"sold_weight"`
	ProximityFadeMiles float64   `yaml:"proximity_fade_miles"`
	DaysPerMonth       float64   `yaml:"days_per_month"`

	// Zero is a meaningful setting for these, so only an absent key takes
	// the default.
	ActiveWeight   *float64 `yaml:"active_weight"`
	ProximityFloor *float64 `yaml:"proximity_floor"`
	RecencyFloor   *float64 `yaml:"recency_floor"`

	Seller     SellerConfig     `yaml:"seller"`
	Elasticity ElasticityConfig `yaml:"elasticity"`
}

// TierConfig is one comparable search tier. Omit mileage_factor on the
// widest tier to leave mileage unconstrained.
type TierConfig struct {
	YearRange     int      `yaml:"year_range"`
	MileageFactor *float64 `yaml:"mileage_factor"`
}

// SellerConfig defines the seller history multiplier.
type SellerConfig struct {
	MinSold       int     `yaml:"min_sold"`
	Smoothing     float64 `yaml:"smoothing"`
	MinMultiplier float64 `yaml:"min_multiplier"`
	MaxMultiplier float64 `yaml:"max_multiplier"`
}

// ElasticityConfig defines the days-on-market curve.
type ElasticityConfig struct {
	DecayDays float64   `yaml:"decay_days"`
	Offsets   []float64 `yaml:"offsets"`
}

// ComparableSearch converts the tier settings for the comps package.
func (v *ValuationConfig) ComparableSearch() comps.Config {
	tiers := make([]comps.Tier, len(v.Tiers))
	for i, t := range v.Tiers {
		tiers[i] = comps.Tier{YearRange: t.YearRange, MileageFactor: t.MileageFactor}
	}
	return comps.Config{Tiers: tiers, MinComps: v.MinComps}
}

// Pricing converts the weighting settings for the pricing package.
func (v *ValuationConfig) Pricing() pricing.Config {
	return pricing.Config{
		MileageScale:       v.MileageScale,
		DepthWeights:       v.DepthWeights,
		SoldWeight:         v.SoldWeight,
		ActiveWeight:       *v.ActiveWeight,
		ProximityFadeMiles: v.ProximityFadeMiles,
		ProximityFloor:     *v.ProximityFloor,
		RecencyFloor:       *v.RecencyFloor,
		DaysPerMonth:       v.DaysPerMonth,
		Seller: pricing.SellerConfig{
			MinSold:       v.Seller.MinSold,
			Smoothing:     v.Seller.Smoothing,
			MinMultiplier: v.Seller.MinMultiplier,
			MaxMultiplier: v.Seller.MaxMultiplier,
		},
		Elasticity: pricing.ElasticityConfig{
			DecayDays: v.Elasticity.DecayDays,
			Offsets:   v.Elasticity.Offsets,
		},
	}
}

// RecommendationConfig defines recommendation ranking settings.
type RecommendationConfig struct {
	Weights             ScoringWeights `yaml:"weights"`
	MaxResults          int            `yaml:"max_results"`
	CandidatePool       int            `yaml:"candidate_pool"`
	ViewedPreferenceCap int            `yaml:"viewed_preference_cap"`
	SignalConcurrency   int            `yaml:"signal_concurrency"`
}

// ScoringWeights is the owned-listing weight table. The ownerless table is
// derived from it.
type ScoringWeights struct {
	Messages        float64 `yaml:"messages"`
	MessagedSeller  float64 `yaml:"messaged_seller"`
	Views           float64 `yaml:"views"`
	ViewsPerDay     float64 `yaml:"views_per_day"`
	Favorites       float64 `yaml:"favorites"`
	FavoritesPerDay float64 `yaml:"favorites_per_day"`
	Favorited       float64 `yaml:"favorited"`
	Dwell           float64 `yaml:"dwell"`
	DwellPerDay     float64 `yaml:"dwell_per_day"`
	Clicks          float64 `yaml:"clicks"`
	ClicksPerDay    float64 `yaml:"clicks_per_day"`
	Proximity       float64 `yaml:"proximity"`
	DaysOnMarket    float64 `yaml:"days_on_market"`
}

// Score converts the table for the score package.
func (w ScoringWeights) Score() score.Weights {
	return score.Weights(w)
}

// ScheduleConfig defines cron intervals.
type ScheduleConfig struct {
	WarmInterval time.Duration `yaml:"warm_interval"`
	WarmWindow   time.Duration `yaml:"warm_window"`
	WarmBatch    int           `yaml:"warm_batch"`
}

// TelemetryConfig defines OpenTelemetry export settings.
type TelemetryConfig struct {
	Enabled        bool          `yaml:"enabled"`
	Endpoint       string        `yaml:"endpoint"`
	ServiceName    string        `yaml:"service_name"`
	SampleRatio    float64       `yaml:"sample_ratio"`
	MetricInterval time.Duration `yaml:"metric_interval"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML config content, applying defaults and validation.
func Parse(data []byte) (*Config, error) {
	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyCacheDefaults(&cfg.Cache)
	applyGeocoderDefaults(&cfg.Geocoder)
	applyValuationDefaults(&cfg.Valuation)
	applyRecommendationDefaults(&cfg.Recommendation)
	applyScheduleDefaults(&cfg.Schedule)
	applyTelemetryDefaults(&cfg.Telemetry)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyCacheDefaults(c *CacheConfig) {
	if c.Backend == "" {
		c.Backend = CacheMemory
	}
	if c.TTL == 0 {
		c.TTL = 4 * time.Hour
	}
	if c.Redis.KeyPrefix == "" {
		c.Redis.KeyPrefix = "lv:recs:"
	}
}

func applyGeocoderDefaults(g *GeocoderConfig) {
	if g.Timeout == 0 {
		g.Timeout = 5 * time.Second
	}
	if g.RateLimit.PerSecond == 0 {
		g.RateLimit.PerSecond = 5
	}
	if g.RateLimit.Burst == 0 {
		g.RateLimit.Burst = 10
	}
}

func applyValuationDefaults(v *ValuationConfig) {
	search := comps.DefaultConfig()
	if len(v.Tiers) == 0 {
		for _, t := range search.Tiers {
			v.Tiers = append(v.Tiers, TierConfig{YearRange: t.YearRange, MileageFactor: t.MileageFactor})
		}
	}
	if v.MinComps == 0 {
		v.MinComps = search.MinComps
	}

	p := pricing.DefaultConfig()
	if v.MileageScale == 0 {
		v.MileageScale = p.MileageScale
	}
	if len(v.DepthWeights) == 0 {
		v.DepthWeights = p.DepthWeights
	}
	if v.SoldWeight == 0 {
		v.SoldWeight = p.SoldWeight
	}
	if v.ActiveWeight == nil {
		v.ActiveWeight = &p.ActiveWeight
	}
	if v.ProximityFadeMiles == 0 {
		v.ProximityFadeMiles = p.ProximityFadeMiles
	}
	if v.ProximityFloor == nil {
		v.ProximityFloor = &p.ProximityFloor
	}
	if v.RecencyFloor == nil {
		v.RecencyFloor = &p.RecencyFloor
	}
	if v.DaysPerMonth == 0 {
		v.DaysPerMonth = p.DaysPerMonth
	}

	if v.Seller.MinSold == 0 {
		v.Seller.MinSold = p.Seller.MinSold
	}
	if v.Seller.Smoothing == 0 {
		v.Seller.Smoothing = p.Seller.Smoothing
	}
	if v.Seller.MinMultiplier == 0 {
		v.Seller.MinMultiplier = p.Seller.MinMultiplier
	}
	if v.Seller.MaxMultiplier == 0 {
		v.Seller.MaxMultiplier = p.Seller.MaxMultiplier
	}

	if v.Elasticity.DecayDays == 0 {
		v.Elasticity.DecayDays = p.Elasticity.DecayDays
	}
	if len(v.Elasticity.Offsets) == 0 {
		v.Elasticity.Offsets = p.Elasticity.Offsets
	}
}

func applyRecommendationDefaults(r *RecommendationConfig) {
	if r.Weights == (ScoringWeights{}) {
		r.Weights = ScoringWeights(score.DefaultOwnedWeights())
	}
	if r.MaxResults == 0 {
		r.MaxResults = 20
	}
	if r.CandidatePool == 0 {
		r.CandidatePool = 50
	}
	if r.ViewedPreferenceCap == 0 {
		r.ViewedPreferenceCap = 5
	}
	if r.SignalConcurrency == 0 {
		r.SignalConcurrency = 8
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.WarmInterval == 0 {
		s.WarmInterval = time.Hour
	}
	if s.WarmWindow == 0 {
		s.WarmWindow = 24 * time.Hour
	}
	if s.WarmBatch == 0 {
		s.WarmBatch = 100
	}
}

func applyTelemetryDefaults(t *TelemetryConfig) {
	if t.Endpoint == "" {
		t.Endpoint = "localhost:4317"
	}
	if t.ServiceName == "" {
		t.ServiceName = "listing-valuator"
	}
	if t.SampleRatio == 0 {
		t.SampleRatio = 1.0
	}
	if t.MetricInterval == 0 {
		t.MetricInterval = 30 * time.Second
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

const weightSumTolerance = 1e-6

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, fmt.Errorf("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, fmt.Errorf("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, fmt.Errorf("database.user is required"))
	}

	switch cfg.Cache.Backend {
	case CacheMemory:
	case CacheRedis:
		if cfg.Cache.Redis.Addr == "" {
			errs = append(errs, fmt.Errorf("cache.redis.addr is required when backend is redis"))
		}
	default:
		errs = append(errs, fmt.Errorf(
			"cache.backend must be one of: memory, redis (got %q)", cfg.Cache.Backend,
		))
	}

	if cfg.Geocoder.Enabled && cfg.Geocoder.URL == "" {
		errs = append(errs, fmt.Errorf("geocoder.url is required when geocoder is enabled"))
	}

	errs = append(errs, validateValuation(&cfg.Valuation)...)
	errs = append(errs, validateRecommendation(&cfg.Recommendation)...)

	return errors.Join(errs...)
}

func validateValuation(v *ValuationConfig) []error {
	var errs []error

	for i, t := range v.Tiers {
		if t.YearRange < 0 {
			errs = append(errs, fmt.Errorf("valuation.tiers[%d].year_range must be >= 0", i))
		}
		if t.MileageFactor != nil && (*t.MileageFactor < 0 || *t.MileageFactor >= 1) {
			errs = append(errs, fmt.Errorf("valuation.tiers[%d].mileage_factor must be in [0, 1)", i))
		}
	}
	if v.MinComps < 1 {
		errs = append(errs, fmt.Errorf("valuation.min_comps must be >= 1"))
	}
	for i, w := range v.DepthWeights {
		if w < 0 {
			errs = append(errs, fmt.Errorf("valuation.depth_weights[%d] must be >= 0", i))
		}
	}
	for _, f := range []struct {
		name string
		v    *float64
	}{
		{"active_weight", v.ActiveWeight},
		{"proximity_floor", v.ProximityFloor},
		{"recency_floor", v.RecencyFloor},
	} {
		if f.v != nil && (*f.v < 0 || *f.v > 1) {
			errs = append(errs, fmt.Errorf("valuation.%s must be in [0, 1]", f.name))
		}
	}
	if v.Seller.MinMultiplier > v.Seller.MaxMultiplier {
		errs = append(errs, fmt.Errorf(
			"valuation.seller.min_multiplier (%.2f) exceeds max_multiplier (%.2f)",
			v.Seller.MinMultiplier, v.Seller.MaxMultiplier,
		))
	}
	for i, off := range v.Elasticity.Offsets {
		if off <= -1 {
			errs = append(errs, fmt.Errorf("valuation.elasticity.offsets[%d] must be > -1", i))
		}
	}

	return errs
}

func validateRecommendation(r *RecommendationConfig) []error {
	var errs []error

	w := r.Weights.Score()
	if sum := w.Sum(); math.Abs(sum-1) > weightSumTolerance {
		errs = append(errs, fmt.Errorf("recommendation.weights must sum to 1.0 (got %.4f)", sum))
	}
	if w.MessagingShare() >= w.Sum() {
		errs = append(errs, fmt.Errorf("recommendation.weights must include non-messaging signals"))
	}
	if r.MaxResults < 1 {
		errs = append(errs, fmt.Errorf("recommendation.max_results must be >= 1"))
	}
	if r.CandidatePool < 1 {
		errs = append(errs, fmt.Errorf("recommendation.candidate_pool must be >= 1"))
	}

	return errs
}
