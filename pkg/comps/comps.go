// Package comps finds comparable listings for a vehicle specification by
// widening year and mileage tolerances tier by tier until enough matches
// are found.
package comps

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/donaldgifford/listing-valuator/pkg/geo"
	domain "github.com/donaldgifford/listing-valuator/pkg/types"
)

// ErrNoComparables is returned when no tier matched a single listing.
var ErrNoComparables = errors.New("no comparable listings found")

// DefaultMinComps is the per-tier yield that ends the search.
const DefaultMinComps = 5

// Tier is one tolerance level of the search. A nil MileageFactor means the
// tier does not constrain mileage.
type Tier struct {
	YearRange     int      `json:"year_range"`
	MileageFactor *float64 `json:"mileage_factor,omitempty"`
}

// Config controls the search. Tiers are ordered narrowest first.
type Config struct {
	Tiers    []Tier `json:"tiers"`
	MinComps int    `json:"min_comps"`
}

// DefaultConfig returns the default tier ladder.
func DefaultConfig() Config {
	f := func(v float64) *float64 { return &v }
	return Config{
		Tiers: []Tier{
			{YearRange: 0, MileageFactor: f(0.10)},
			{YearRange: 1, MileageFactor: f(0.20)},
			{YearRange: 2, MileageFactor: f(0.35)},
			{YearRange: 3},
		},
		MinComps: DefaultMinComps,
	}
}

// Query is the exact-match portion plus the tier's tolerance window.
type Query struct {
	Condition  domain.Condition
	Make       string
	Model      string
	YearMin    int
	YearMax    int
	MileageMin *int
	MileageMax *int
}

// QueryFor builds the query a tier issues for the target.
func (t Tier) QueryFor(target *domain.Specification) Query {
	q := Query{
		Condition: target.Condition,
		Make:      target.Make,
		Model:     target.Model,
		YearMin:   target.Year - t.YearRange,
		YearMax:   target.Year + t.YearRange,
	}

	if t.MileageFactor != nil {
		m := float64(target.Mileage)
		lo := int(math.Floor(m * (1 - *t.MileageFactor)))
		hi := int(math.Ceil(m * (1 + *t.MileageFactor)))
		q.MileageMin = &lo
		q.MileageMax = &hi
	}

	return q
}

// Finder returns listings matching a tier query.
type Finder interface {
	FindComparables(ctx context.Context, q Query) ([]domain.Listing, error)
}

// Comparable is a listing discovered by a search, tagged with the
// search-scoped metadata the estimators need. Tags belong to this value and
// are never written back to the listing.
type Comparable struct {
	Listing      domain.Listing `json:"listing"`
	Depth        int            `json:"depth"`
	Proximity    *float64       `json:"proximity_miles,omitempty"`
	DaysOnMarket float64        `json:"days_on_market"`
}

// Result is the outcome of a successful search.
type Result struct {
	DepthReached int          `json:"depth_reached"`
	Comparables  []Comparable `json:"comparables"`
}

// CountByDepth returns how many comparables were discovered at each depth.
func CountByDepth(comps []Comparable) map[int]int {
	counts := make(map[int]int)
	for i := range comps {
		counts[comps[i].Depth]++
	}
	return counts
}

// step is the tier machine's transition after a tier has been evaluated.
type step int

const (
	stepExpand step = iota
	stepSatisfied
	stepExhausted
)

// search holds the per-call state of one comparable search.
type search struct {
	target *domain.Specification
	cfg    Config
	now    time.Time

	tier    int // 1-based index of the tier being evaluated
	deepest int // deepest tier that contributed a listing
	seen    map[string]struct{}
	found   []Comparable
}

// Search walks the configured tiers in order. It stops at the first tier
// whose own new-listing yield reaches cfg.MinComps. When every tier is
// exhausted first, all accumulated listings are returned and the reached
// depth is the deepest tier that contributed one.
func Search(
	ctx context.Context,
	f Finder,
	target *domain.Specification,
	cfg Config,
	now time.Time,
) (*Result, error) {
	if len(cfg.Tiers) == 0 {
		return nil, errors.New("comparable search requires at least one tier")
	}

	s := &search{
		target: target,
		cfg:    cfg,
		now:    now,
		seen:   make(map[string]struct{}),
	}

	var st step
	for s.tier = 1; ; s.tier++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		listings, err := f.FindComparables(ctx, cfg.Tiers[s.tier-1].QueryFor(target))
		if err != nil {
			return nil, fmt.Errorf("querying depth %d: %w", s.tier, err)
		}

		if st = s.next(s.absorb(listings)); st != stepExpand {
			break
		}
	}

	if len(s.found) == 0 {
		return nil, ErrNoComparables
	}

	depth := s.tier
	if st == stepExhausted {
		depth = s.deepest
	}

	return &Result{DepthReached: depth, Comparables: s.found}, nil
}

// absorb tags listings not seen at a shallower tier and returns how many
// were new.
func (s *search) absorb(listings []domain.Listing) int {
	added := 0
	origin := s.target.Location

	for i := range listings {
		l := listings[i]
		if _, dup := s.seen[l.ID]; dup {
			continue
		}
		s.seen[l.ID] = struct{}{}

		s.found = append(s.found, Comparable{
			Listing:      l,
			Depth:        s.tier,
			Proximity:    geo.DistanceBetween(origin, l.Location()),
			DaysOnMarket: l.DaysOnMarket(s.now),
		})
		added++
	}

	if added > 0 {
		s.deepest = s.tier
	}
	return added
}

func (s *search) next(yield int) step {
	switch {
	case yield >= s.cfg.MinComps:
		return stepSatisfied
	case s.tier >= len(s.cfg.Tiers):
		return stepExhausted
	default:
		return stepExpand
	}
}
