package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	domain "github.com/donaldgifford/listing-valuator/pkg/types"
)

var now = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

func TestConfidenceFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		depth int
		want  domain.ConfidenceLevel
	}{
		{1, domain.ConfidenceHigh},
		{2, domain.ConfidenceMedium},
		{3, domain.ConfidenceLow},
		{4, domain.ConfidenceVeryLow},
		{9, domain.ConfidenceVeryLow},
		{0, domain.ConfidenceVeryLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ConfidenceFor(tt.depth), "depth %d", tt.depth)
	}
}

func TestRecommend(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 20900.0, Recommend(19000, 1.1, domain.ConfidenceHigh), 1e-9)
	assert.InDelta(t, 19000.0, Recommend(19000, 1.1, domain.ConfidenceMedium), 1e-9)
	assert.InDelta(t, 19000.0, Recommend(19000, 1.1, domain.ConfidenceLow), 1e-9)
	assert.InDelta(t, 19000.0, Recommend(19000, 1.1, domain.ConfidenceVeryLow), 1e-9)
	assert.InDelta(t, 12345.68, Recommend(12345.678, 1.0, domain.ConfidenceHigh), 1e-9)
}

func TestRound2(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 10.13, Round2(10.125000001), 1e-9)
	assert.InDelta(t, 10.12, Round2(10.1249), 1e-9)
	assert.InDelta(t, 0.0, Round2(0), 1e-9)
}
