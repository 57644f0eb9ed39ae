package engine

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/donaldgifford/listing-valuator/internal/metrics"
	"github.com/donaldgifford/listing-valuator/internal/store"
	"github.com/donaldgifford/listing-valuator/pkg/geo"
	score "github.com/donaldgifford/listing-valuator/pkg/scorer"
	domain "github.com/donaldgifford/listing-valuator/pkg/types"
)

// Signal names used in logs and the lookup failure metric.
const (
	signalMessages       = "messages"
	signalMessagedSeller = "messaged_seller"
	signalVisit          = "visit"
	signalFavorited      = "favorited"
)

// signals gathers the ranking inputs for every candidate. Lookups run
// concurrently; a failed lookup is logged and leaves its signal at zero.
func (eng *Engine) signals(
	ctx context.Context,
	userID string,
	origin *geo.Point,
	candidates []domain.Listing,
) []score.Signals {
	now := eng.nowFunc()
	out := make([]score.Signals, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(eng.signalConcurrency, 1))

	for i := range candidates {
		l := &candidates[i]
		s := &out[i]

		dom := l.DaysOnMarket(now)
		*s = score.Signals{
			ListingID:       l.ID,
			Owned:           l.Owned(),
			Views:           float64(l.Views),
			ViewsPerDay:     score.PerDay(float64(l.Views), dom),
			Favorites:       float64(l.Favorites),
			FavoritesPerDay: score.PerDay(float64(l.Favorites), dom),
			Proximity:       geo.DistanceBetween(origin, l.Location()),
			DaysOnMarket:    dom,
		}

		// Each goroutine writes a distinct field of s.
		if s.Owned {
			g.Go(func() error {
				n, err := eng.store.CountMessagesExcludingOwner(gctx, l.ID)
				if eng.lookupFailed(signalMessages, userID, l.ID, err) {
					return nil
				}
				s.Messages = float64(n)
				return nil
			})
			g.Go(func() error {
				ok, err := eng.store.HasMessagedSeller(gctx, userID, l.ID)
				if eng.lookupFailed(signalMessagedSeller, userID, l.ID, err) {
					return nil
				}
				s.MessagedSeller = ok
				return nil
			})
		}

		g.Go(func() error {
			v, err := eng.store.GetVisit(gctx, userID, l.ID)
			if errors.Is(err, store.ErrNotFound) {
				return nil
			}
			if eng.lookupFailed(signalVisit, userID, l.ID, err) {
				return nil
			}
			s.Clicks = float64(v.Clicks)
			s.ClicksPerDay = score.PerDay(float64(v.Clicks), dom)
			s.Dwell = v.DwellSeconds
			s.DwellPerDay = score.PerDay(v.DwellSeconds, dom)
			return nil
		})

		g.Go(func() error {
			ok, err := eng.store.IsFavorited(gctx, userID, l.ID)
			if eng.lookupFailed(signalFavorited, userID, l.ID, err) {
				return nil
			}
			s.Favorited = ok
			return nil
		})
	}

	// Lookups never return errors; Wait only joins them.
	_ = g.Wait()

	return out
}

func (eng *Engine) lookupFailed(signal, userID, listingID string, err error) bool {
	if err == nil {
		return false
	}
	metrics.SignalLookupFailuresTotal.WithLabelValues(signal).Inc()
	eng.log.Warn("signal lookup failed, defaulting to zero",
		"signal", signal,
		"user_id", userID,
		"listing_id", listingID,
		"error", err,
	)
	return true
}
