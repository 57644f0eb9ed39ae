package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/donaldgifford/listing-valuator/internal/metrics"
)

// WarmRecommendations precomputes recommendations for recently active users
// that have no cached list. Existing entries are left alone. It returns the
// number of users warmed.
func (eng *Engine) WarmRecommendations(ctx context.Context) (_ int, err error) {
	ctx, span := eng.tracer.Start(ctx, "engine.WarmRecommendations")
	defer endSpan(span, &err)

	metrics.WarmRunsTotal.Inc()

	since := eng.nowFunc().Add(-eng.warmWindow)
	users, err := eng.store.ListActiveUsers(ctx, since, eng.warmBatch)
	if err != nil {
		return 0, fmt.Errorf("listing active users: %w", err)
	}

	warmed := 0
	for _, userID := range users {
		if ctx.Err() != nil {
			return warmed, ctx.Err()
		}

		if _, hit := eng.cached(ctx, userID); hit {
			continue
		}

		ranked, err := eng.rank(ctx, RecommendRequest{UserID: userID})
		if err != nil {
			eng.log.Error("warming recommendations failed", "user_id", userID, "error", err)
			continue
		}

		ids := make([]string, len(ranked))
		for i := range ranked {
			ids[i] = ranked[i].ListingID
		}
		eng.remember(ctx, userID, ids)

		warmed++
		metrics.WarmUsersTotal.Inc()
	}

	metrics.WarmLastSuccessTimestamp.Set(float64(time.Now().Unix()))
	eng.log.Info("recommendation warm run complete", "active_users", len(users), "warmed", warmed)

	return warmed, nil
}
