package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/listing-valuator/pkg/comps"
	"github.com/donaldgifford/listing-valuator/pkg/pricing"
	score "github.com/donaldgifford/listing-valuator/pkg/scorer"
)

const minimalDB = `
database:
  host: localhost
  name: testdb
  user: testuser
`

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid minimal config",
			yaml: minimalDB,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "testdb", cfg.Database.Name)
				assert.Equal(t, "testuser", cfg.Database.User)
			},
		},
		{
			name: "defaults applied for optional fields",
			yaml: minimalDB,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.Database.PoolSize)
				assert.Equal(t, CacheMemory, cfg.Cache.Backend)
				assert.Equal(t, 4*time.Hour, cfg.Cache.TTL)
				assert.Equal(t, "lv:recs:", cfg.Cache.Redis.KeyPrefix)
				assert.False(t, cfg.Geocoder.Enabled)
				assert.Equal(t, 5*time.Second, cfg.Geocoder.Timeout)
				assert.Len(t, cfg.Valuation.Tiers, 4)
				assert.Equal(t, comps.DefaultMinComps, cfg.Valuation.MinComps)
				assert.Equal(t, 20, cfg.Recommendation.MaxResults)
				assert.Equal(t, 50, cfg.Recommendation.CandidatePool)
				assert.Equal(t, 5, cfg.Recommendation.ViewedPreferenceCap)
				assert.Equal(t, time.Hour, cfg.Schedule.WarmInterval)
				assert.Equal(t, 24*time.Hour, cfg.Schedule.WarmWindow)
				assert.False(t, cfg.Telemetry.Enabled)
				assert.Equal(t, "listing-valuator", cfg.Telemetry.ServiceName)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
			},
		},
		{
			name: "env var substitution",
			yaml: minimalDB + `  password: "${TEST_DB_PASSWORD}"
`,
			envVars: map[string]string{
				"TEST_DB_PASSWORD": "secret123",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "secret123", cfg.Database.Password)
			},
		},
		{
			name: "missing required database.host",
			yaml: `
database:
  name: testdb
  user: testuser
`,
			wantErr: "database.host is required",
		},
		{
			name: "missing required database.name",
			yaml: `
database:
  host: localhost
  user: testuser
`,
			wantErr: "database.name is required",
		},
		{
			name: "missing required database.user",
			yaml: `
database:
  host: localhost
  name: testdb
`,
			wantErr: "database.user is required",
		},
		{
			name: "invalid cache backend",
			yaml: minimalDB + `
cache:
  backend: memcached
`,
			wantErr: `cache.backend must be one of: memory, redis (got "memcached")`,
		},
		{
			name: "redis backend missing addr",
			yaml: minimalDB + `
cache:
  backend: redis
`,
			wantErr: "cache.redis.addr is required when backend is redis",
		},
		{
			name: "geocoder enabled without url",
			yaml: minimalDB + `
geocoder:
  enabled: true
`,
			wantErr: "geocoder.url is required when geocoder is enabled",
		},
		{
			name: "seller multiplier bounds inverted",
			yaml: minimalDB + `
valuation:
  seller:
    min_multiplier: 1.2
    max_multiplier: 1.1
`,
			wantErr: "valuation.seller.min_multiplier (1.20) exceeds max_multiplier (1.10)",
		},
		{
			name: "mileage factor out of range",
			yaml: minimalDB + `
valuation:
  tiers:
    - year_range: 0
      mileage_factor: 1.5
`,
			wantErr: "valuation.tiers[0].mileage_factor must be in [0, 1)",
		},
		{
			name: "elasticity offset at or below -100%",
			yaml: minimalDB + `
valuation:
  elasticity:
    offsets: [-1.0, 0]
`,
			wantErr: "valuation.elasticity.offsets[0] must be > -1",
		},
		{
			name: "recommendation weights do not sum to one",
			yaml: minimalDB + `
recommendation:
  weights:
    messages: 0.5
    views: 0.2
`,
			wantErr: "recommendation.weights must sum to 1.0 (got 0.7000)",
		},
		{
			name: "recommendation weights only messaging",
			yaml: minimalDB + `
recommendation:
  weights:
    messages: 0.6
    messaged_seller: 0.4
`,
			wantErr: "recommendation.weights must include non-messaging signals",
		},
		{
			name: "explicit zero floors are kept",
			yaml: minimalDB + `
valuation:
  active_weight: 0
  proximity_floor: 0
  recency_floor: 0
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				p := cfg.Valuation.Pricing()
				assert.Zero(t, p.ActiveWeight)
				assert.Zero(t, p.ProximityFloor)
				assert.Zero(t, p.RecencyFloor)
				assert.InDelta(t, pricing.DefaultConfig().SoldWeight, p.SoldWeight, 1e-9)
			},
		},
		{
			name: "proximity floor above one",
			yaml: minimalDB + `
valuation:
  proximity_floor: 1.5
`,
			wantErr: "valuation.proximity_floor must be in [0, 1]",
		},
		{
			name:    "invalid YAML",
			yaml:    `{{{not valid yaml`,
			wantErr: "parsing config YAML",
		},
		{
			name: "redis backend valid config",
			yaml: minimalDB + `
cache:
  backend: redis
  ttl: 1h
  redis:
    addr: redis:6379
    db: 2
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, CacheRedis, cfg.Cache.Backend)
				assert.Equal(t, time.Hour, cfg.Cache.TTL)
				assert.Equal(t, "redis:6379", cfg.Cache.Redis.Addr)
				assert.Equal(t, 2, cfg.Cache.Redis.DB)
			},
		},
		{
			name: "full config with overrides",
			yaml: `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: 60s
  write_timeout: 60s
database:
  host: db.example.com
  port: 5433
  name: listings_prod
  user: admin
  password: pass
  sslmode: require
  pool_size: 20
geocoder:
  enabled: true
  url: http://geo.internal/zip
  timeout: 2s
  rate_limit:
    per_second: 1
    burst: 2
valuation:
  tiers:
    - year_range: 0
      mileage_factor: 0.05
    - year_range: 2
  min_comps: 3
  depth_weights: [1, 0.5]
  sold_weight: 1
  active_weight: 0.5
  seller:
    min_sold: 10
    smoothing: 5
    min_multiplier: 0.8
    max_multiplier: 1.2
  elasticity:
    decay_days: 60
    offsets: [-0.2, 0, 0.2]
recommendation:
  max_results: 10
  candidate_pool: 25
  viewed_preference_cap: 3
schedule:
  warm_interval: 30m
  warm_window: 48h
  warm_batch: 50
telemetry:
  enabled: true
  endpoint: otel:4317
  sample_ratio: 0.25
logging:
  level: debug
  format: json
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 60*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, "db.example.com", cfg.Database.Host)
				assert.Equal(t, 5433, cfg.Database.Port)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, 20, cfg.Database.PoolSize)
				assert.True(t, cfg.Geocoder.Enabled)
				assert.Equal(t, 2*time.Second, cfg.Geocoder.Timeout)
				assert.InDelta(t, 1.0, cfg.Geocoder.RateLimit.PerSecond, 1e-9)
				require.Len(t, cfg.Valuation.Tiers, 2)
				assert.Nil(t, cfg.Valuation.Tiers[1].MileageFactor)
				assert.Equal(t, 3, cfg.Valuation.MinComps)
				assert.Equal(t, []float64{1, 0.5}, cfg.Valuation.DepthWeights)
				require.NotNil(t, cfg.Valuation.ActiveWeight)
				assert.InDelta(t, 0.5, *cfg.Valuation.ActiveWeight, 1e-9)
				assert.Equal(t, 10, cfg.Valuation.Seller.MinSold)
				assert.Equal(t, []float64{-0.2, 0, 0.2}, cfg.Valuation.Elasticity.Offsets)
				assert.Equal(t, 10, cfg.Recommendation.MaxResults)
				assert.Equal(t, 25, cfg.Recommendation.CandidatePool)
				assert.Equal(t, 3, cfg.Recommendation.ViewedPreferenceCap)
				assert.Equal(t, 30*time.Minute, cfg.Schedule.WarmInterval)
				assert.Equal(t, 50, cfg.Schedule.WarmBatch)
				assert.True(t, cfg.Telemetry.Enabled)
				assert.Equal(t, "otel:4317", cfg.Telemetry.Endpoint)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Only parallelize tests that don't modify env vars.
			if len(tt.envVars) == 0 {
				t.Parallel()
			}

			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			cfg, err := Load(path)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  DatabaseConfig
		want string
	}{
		{
			name: "basic DSN",
			cfg: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				Name:     "testdb",
				User:     "testuser",
				Password: "testpass",
				SSLMode:  "disable",
			},
			want: "host=localhost port=5432 dbname=testdb user=testuser password=testpass sslmode=disable",
		},
		{
			name: "production DSN",
			cfg: DatabaseConfig{
				Host:     "db.example.com",
				Port:     5433,
				Name:     "listings",
				User:     "admin",
				Password: "s3cret",
				SSLMode:  "require",
			},
			want: "host=db.example.com port=5433 dbname=listings user=admin password=s3cret sslmode=require",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.cfg.DSN())
		})
	}
}

func TestDefaultsMatchPackageDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(minimalDB))
	require.NoError(t, err)

	assert.Equal(t, comps.DefaultConfig(), cfg.Valuation.ComparableSearch())
	assert.Equal(t, pricing.DefaultConfig(), cfg.Valuation.Pricing())
	assert.Equal(t, score.DefaultOwnedWeights(), cfg.Recommendation.Weights.Score())
}
