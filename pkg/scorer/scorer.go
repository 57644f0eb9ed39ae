package score

import (
	"math"
	"slices"

	"github.com/donaldgifford/listing-valuator/pkg/normalize"
)

// Weights defines the relative importance of each recommendation signal.
type Weights struct {
	Messages        float64 `json:"messages"`
	MessagedSeller  float64 `json:"messaged_seller"`
	Views           float64 `json:"views"`
	ViewsPerDay     float64 `json:"views_per_day"`
	Favorites       float64 `json:"favorites"`
	FavoritesPerDay float64 `json:"favorites_per_day"`
	Favorited       float64 `json:"favorited"`
	Dwell           float64 `json:"dwell"`
	DwellPerDay     float64 `json:"dwell_per_day"`
	Clicks          float64 `json:"clicks"`
	ClicksPerDay    float64 `json:"clicks_per_day"`
	Proximity       float64 `json:"proximity"`
	DaysOnMarket    float64 `json:"days_on_market"`
}

// DefaultOwnedWeights returns the weight table for user-created listings.
func DefaultOwnedWeights() Weights {
	return Weights{
		Messages:        0.10,
		MessagedSeller:  0.05,
		Views:           0.10,
		ViewsPerDay:     0.10,
		Favorites:       0.10,
		FavoritesPerDay: 0.10,
		Favorited:       0.10,
		Dwell:           0.05,
		DwellPerDay:     0.05,
		Clicks:          0.05,
		ClicksPerDay:    0.05,
		Proximity:       0.10,
		DaysOnMarket:    0.05,
	}
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	return w.MessagingShare() +
		w.Views + w.ViewsPerDay +
		w.Favorites + w.FavoritesPerDay + w.Favorited +
		w.Dwell + w.DwellPerDay +
		w.Clicks + w.ClicksPerDay +
		w.Proximity + w.DaysOnMarket
}

// MessagingShare returns the weight carried by the messaging signals, which
// externally sourced listings cannot produce.
func (w Weights) MessagingShare() float64 {
	return w.Messages + w.MessagedSeller
}

// OwnerlessWeights derives the weight table for listings without an owner:
// messaging weights are dropped and the rest are divided by the share of
// the total they represented, so the table keeps the owned table's sum.
func OwnerlessWeights(owned Weights) Weights {
	remaining := owned.Sum() - owned.MessagingShare()
	if remaining <= 0 {
		return Weights{}
	}
	scale := owned.Sum() / remaining

	return Weights{
		Views:           owned.Views * scale,
		ViewsPerDay:     owned.ViewsPerDay * scale,
		Favorites:       owned.Favorites * scale,
		FavoritesPerDay: owned.FavoritesPerDay * scale,
		Favorited:       owned.Favorited * scale,
		Dwell:           owned.Dwell * scale,
		DwellPerDay:     owned.DwellPerDay * scale,
		Clicks:          owned.Clicks * scale,
		ClicksPerDay:    owned.ClicksPerDay * scale,
		Proximity:       owned.Proximity * scale,
		DaysOnMarket:    owned.DaysOnMarket * scale,
	}
}

// Signals holds the raw recommendation inputs for one listing
// (decoupled from the DB model).
type Signals struct {
	ListingID string
	Owned     bool

	Messages       float64 // global, excluding the owner's own messages
	MessagedSeller bool

	Views           float64
	ViewsPerDay     float64
	Favorites       float64
	FavoritesPerDay float64
	Favorited       bool

	Dwell        float64 // seconds
	DwellPerDay  float64
	Clicks       float64
	ClicksPerDay float64

	Proximity    *float64 // miles from the user, nil when unknown
	DaysOnMarket float64
}

// PerDay spreads a cumulative count over the listing's time on market.
// Listings younger than a day count as one day.
func PerDay(total, daysOnMarket float64) float64 {
	return total / math.Max(daysOnMarket, 1)
}

// Breakdown shows the normalized value of every signal.
type Breakdown struct {
	Messages        float64 `json:"messages"`
	MessagedSeller  float64 `json:"messaged_seller"`
	Views           float64 `json:"views"`
	ViewsPerDay     float64 `json:"views_per_day"`
	Favorites       float64 `json:"favorites"`
	FavoritesPerDay float64 `json:"favorites_per_day"`
	Favorited       float64 `json:"favorited"`
	Dwell           float64 `json:"dwell"`
	DwellPerDay     float64 `json:"dwell_per_day"`
	Clicks          float64 `json:"clicks"`
	ClicksPerDay    float64 `json:"clicks_per_day"`
	Proximity       float64 `json:"proximity"`
	DaysOnMarket    float64 `json:"days_on_market"`
}

// Scored is a ranked listing.
type Scored struct {
	ListingID string    `json:"listing_id"`
	Score     float64   `json:"score"`
	Breakdown Breakdown `json:"breakdown"`
}

// Rank normalizes every candidate's signals against the batch maxima, scores
// them with the owned or ownerless weight table, and returns the best limit
// candidates in descending score order. Ties keep candidate order. A
// non-positive limit returns every candidate.
func Rank(candidates []Signals, owned, ownerless Weights, limit int) []Scored {
	m := batchMax(candidates)

	breakdowns := make([]Breakdown, len(candidates))
	for i := range candidates {
		breakdowns[i] = normalizeSignals(&candidates[i], &m)
	}
	neutral := meanProximity(candidates, breakdowns)

	scored := make([]Scored, len(candidates))
	for i := range candidates {
		c := &candidates[i]
		b := breakdowns[i]
		if c.Proximity == nil {
			b.Proximity = neutral
		}

		w := ownerless
		if c.Owned {
			w = owned
		}

		scored[i] = Scored{
			ListingID: c.ListingID,
			Score:     weightedSum(&b, &w),
			Breakdown: b,
		}
	}

	slices.SortStableFunc(scored, func(a, b Scored) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})

	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

// maxima holds the largest value of each signal across a batch.
type maxima struct {
	messages, messagedSeller   float64
	views, viewsPerDay         float64
	favorites, favoritesPerDay float64
	favorited                  float64
	dwell, dwellPerDay         float64
	clicks, clicksPerDay       float64
	proximity, daysOnMarket    float64
}

func batchMax(cs []Signals) maxima {
	var m maxima
	for i := range cs {
		c := &cs[i]
		m.messages = math.Max(m.messages, c.Messages)
		m.messagedSeller = math.Max(m.messagedSeller, boolValue(c.MessagedSeller))
		m.views = math.Max(m.views, c.Views)
		m.viewsPerDay = math.Max(m.viewsPerDay, c.ViewsPerDay)
		m.favorites = math.Max(m.favorites, c.Favorites)
		m.favoritesPerDay = math.Max(m.favoritesPerDay, c.FavoritesPerDay)
		m.favorited = math.Max(m.favorited, boolValue(c.Favorited))
		m.dwell = math.Max(m.dwell, c.Dwell)
		m.dwellPerDay = math.Max(m.dwellPerDay, c.DwellPerDay)
		m.clicks = math.Max(m.clicks, c.Clicks)
		m.clicksPerDay = math.Max(m.clicksPerDay, c.ClicksPerDay)
		if c.Proximity != nil {
			m.proximity = math.Max(m.proximity, *c.Proximity)
		}
		m.daysOnMarket = math.Max(m.daysOnMarket, c.DaysOnMarket)
	}
	return m
}

func normalizeSignals(c *Signals, m *maxima) Breakdown {
	direct := func(v, maxV float64) float64 {
		return normalize.Normalize(v, maxV, normalize.Direct)
	}
	inverse := func(v, maxV float64) float64 {
		return normalize.Normalize(v, maxV, normalize.Inverse)
	}

	b := Breakdown{
		Messages:        direct(c.Messages, m.messages),
		MessagedSeller:  direct(boolValue(c.MessagedSeller), m.messagedSeller),
		Views:           direct(c.Views, m.views),
		ViewsPerDay:     direct(c.ViewsPerDay, m.viewsPerDay),
		Favorites:       direct(c.Favorites, m.favorites),
		FavoritesPerDay: direct(c.FavoritesPerDay, m.favoritesPerDay),
		Favorited:       direct(boolValue(c.Favorited), m.favorited),
		Dwell:           direct(c.Dwell, m.dwell),
		DwellPerDay:     direct(c.DwellPerDay, m.dwellPerDay),
		Clicks:          direct(c.Clicks, m.clicks),
		ClicksPerDay:    direct(c.ClicksPerDay, m.clicksPerDay),
		DaysOnMarket:    inverse(c.DaysOnMarket, m.daysOnMarket),
	}

	if c.Proximity != nil {
		b.Proximity = inverse(*c.Proximity, m.proximity)
	}

	return b
}

// meanProximity is the average normalized proximity of the candidates with a
// known distance, or 0 when none have one.
func meanProximity(cs []Signals, bs []Breakdown) float64 {
	var sum float64
	var n int
	for i := range cs {
		if cs[i].Proximity != nil {
			sum += bs[i].Proximity
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func weightedSum(b *Breakdown, w *Weights) float64 {
	return b.Messages*w.Messages +
		b.MessagedSeller*w.MessagedSeller +
		b.Views*w.Views +
		b.ViewsPerDay*w.ViewsPerDay +
		b.Favorites*w.Favorites +
		b.FavoritesPerDay*w.FavoritesPerDay +
		b.Favorited*w.Favorited +
		b.Dwell*w.Dwell +
		b.DwellPerDay*w.DwellPerDay +
		b.Clicks*w.Clicks +
		b.ClicksPerDay*w.ClicksPerDay +
		b.Proximity*w.Proximity +
		b.DaysOnMarket*w.DaysOnMarket
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
