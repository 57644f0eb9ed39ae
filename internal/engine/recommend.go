package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/donaldgifford/listing-valuator/internal/metrics"
	"github.com/donaldgifford/listing-valuator/internal/store"
	"github.com/donaldgifford/listing-valuator/pkg/geo"
	score "github.com/donaldgifford/listing-valuator/pkg/scorer"
	domain "github.com/donaldgifford/listing-valuator/pkg/types"
)

// RecommendRequest identifies the user to rank listings for. A nil Location
// falls back to the coordinates stored on the user.
type RecommendRequest struct {
	UserID   string
	Location *geo.Point
}

// Recommend returns up to the configured number of listing IDs ranked for
// the user. Cached lists are served until they expire. A user without
// history gets an empty list.
func (eng *Engine) Recommend(ctx context.Context, req RecommendRequest) (_ []string, err error) {
	ctx, span := eng.tracer.Start(ctx, "engine.Recommend")
	defer endSpan(span, &err)

	ids, hit := eng.cached(ctx, req.UserID)
	if hit {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		metrics.RecommendationsServedTotal.WithLabelValues("hit").Inc()
		return ids, nil
	}
	metrics.RecommendationsServedTotal.WithLabelValues("miss").Inc()

	ranked, err := eng.rank(ctx, req)
	if err != nil {
		return nil, err
	}

	ids = make([]string, len(ranked))
	for i := range ranked {
		ids[i] = ranked[i].ListingID
	}

	eng.remember(ctx, req.UserID, ids)
	return ids, nil
}

// RankDetailed ranks listings for the user without consulting or filling the
// cache and returns the per-signal breakdown.
func (eng *Engine) RankDetailed(ctx context.Context, req RecommendRequest) (_ []score.Scored, err error) {
	ctx, span := eng.tracer.Start(ctx, "engine.RankDetailed")
	defer endSpan(span, &err)

	return eng.rank(ctx, req)
}

func (eng *Engine) cached(ctx context.Context, userID string) ([]string, bool) {
	ids, hit, err := eng.cache.Get(ctx, userID)
	if err != nil {
		metrics.CacheErrorsTotal.WithLabelValues("get").Inc()
		eng.log.Warn("recommendation cache read failed", "user_id", userID, "error", err)
		return nil, false
	}
	return ids, hit
}

// remember caches a non-empty list. Write failures are logged only.
func (eng *Engine) remember(ctx context.Context, userID string, ids []string) {
	if len(ids) == 0 {
		return
	}
	if err := eng.cache.Set(ctx, userID, ids, eng.cacheTTL); err != nil {
		metrics.CacheErrorsTotal.WithLabelValues("set").Inc()
		eng.log.Warn("recommendation cache write failed", "user_id", userID, "error", err)
	}
}

// rank sources candidates, gathers their signals, and scores them.
func (eng *Engine) rank(ctx context.Context, req RecommendRequest) ([]score.Scored, error) {
	start := time.Now()
	defer func() {
		metrics.RecommendationDuration.Observe(time.Since(start).Seconds())
	}()

	candidates, err := eng.candidates(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return []score.Scored{}, nil
	}

	origin := req.Location
	if origin == nil {
		origin = eng.userLocation(ctx, req.UserID)
	}

	signals := eng.signals(ctx, req.UserID, origin, candidates)
	ranked := score.Rank(signals, eng.ownedWeights, eng.ownerlessWeights, eng.maxRecommendations)

	for i := range ranked {
		metrics.RecommendationScore.Observe(ranked[i].Score)
	}

	eng.log.Debug("recommendations ranked",
		"user_id", req.UserID,
		"candidates", len(candidates),
		"returned", len(ranked),
	)

	return ranked, nil
}

// candidates merges the user's recently visited listings with listings
// matching their saved and viewed search filters, first occurrence winning.
func (eng *Engine) candidates(ctx context.Context, userID string) ([]domain.Listing, error) {
	visited, err := eng.store.ListRecentlyVisited(ctx, userID, eng.candidatePool)
	if err != nil {
		return nil, fmt.Errorf("listing visited candidates: %w", err)
	}

	prefs, err := eng.store.ListPreferences(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing search preferences: %w", err)
	}

	seen := make(map[string]struct{}, len(visited))
	out := make([]domain.Listing, 0, len(visited))
	add := func(ls []domain.Listing) {
		for i := range ls {
			if _, dup := seen[ls[i].ID]; dup {
				continue
			}
			seen[ls[i].ID] = struct{}{}
			out = append(out, ls[i])
		}
	}

	add(visited)
	for i := range prefs {
		f := prefs[i].Filter
		matched, err := eng.store.ListListingsByFilter(ctx, userID, &f, eng.candidatePool)
		if err != nil {
			return nil, fmt.Errorf("listing candidates for filter %q: %w", f.Key(), err)
		}
		add(matched)
	}

	return out, nil
}

func (eng *Engine) userLocation(ctx context.Context, userID string) *geo.Point {
	u, err := eng.store.GetUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			eng.log.Warn("user lookup failed, proximity unknown", "user_id", userID, "error", err)
		}
		return nil
	}
	return u.Location()
}
