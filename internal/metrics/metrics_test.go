package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HealthzUp)
	assert.NotNil(t, ReadyzUp)
	assert.NotNil(t, EstimatesTotal)
	assert.NotNil(t, EstimateFailuresTotal)
	assert.NotNil(t, EstimateDuration)
	assert.NotNil(t, ComparableDepth)
	assert.NotNil(t, ComparablesFound)
	assert.NotNil(t, RecommendationsServedTotal)
	assert.NotNil(t, RecommendationDuration)
	assert.NotNil(t, RecommendationScore)
	assert.NotNil(t, SignalLookupFailuresTotal)
	assert.NotNil(t, CacheErrorsTotal)
	assert.NotNil(t, WarmRunsTotal)
	assert.NotNil(t, WarmUsersTotal)
	assert.NotNil(t, WarmLastSuccessTimestamp)
	assert.NotNil(t, GeocodeRequestsTotal)
}
