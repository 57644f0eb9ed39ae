// Package domain defines the core business types for the listing valuator.
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/donaldgifford/listing-valuator/pkg/geo"
)

// Condition is the seller-declared vehicle condition.
type Condition string

// Condition constants.
const (
	ConditionNew       Condition = "new"
	ConditionUsed      Condition = "used"
	ConditionCertified Condition = "certified"
	ConditionSalvage   Condition = "salvage"
)

// Valid reports whether c is a known condition.
func (c Condition) Valid() bool {
	switch c {
	case ConditionNew, ConditionUsed, ConditionCertified, ConditionSalvage:
		return true
	default:
		return false
	}
}

const hoursPerDay = 24

// Listing is a vehicle offered on the marketplace. VIN is the immutable
// identity; price and sold state are mutable commerce fields.
type Listing struct {
	ID        string    `json:"id"                  db:"id"`
	VIN       string    `json:"vin"                 db:"vin"`
	Condition Condition `json:"condition"           db:"condition"`
	Make      string    `json:"make"                db:"make"`
	Model     string    `json:"model"               db:"model"`
	Year      int       `json:"year"                db:"year"`
	Mileage   int       `json:"mileage"             db:"mileage"`
	Color     string    `json:"color,omitempty"     db:"color"`
	Price     float64   `json:"price"               db:"price"`
	Latitude  *float64  `json:"latitude,omitempty"  db:"latitude"`
	Longitude *float64  `json:"longitude,omitempty" db:"longitude"`

	// OwnerID is nil for listings sourced from an external catalog.
	OwnerID *string `json:"owner_id,omitempty" db:"owner_id"`

	Views     int `json:"views"     db:"views"`
	Favorites int `json:"favorites" db:"favorites"`

	Sold      bool       `json:"sold"              db:"sold"`
	SoldAt    *time.Time `json:"sold_at,omitempty" db:"sold_at"`
	CreatedAt time.Time  `json:"created_at"        db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"        db:"updated_at"`
}

// Owned reports whether the listing was created by a marketplace user.
func (l *Listing) Owned() bool {
	return l.OwnerID != nil && *l.OwnerID != ""
}

// Location returns the listing coordinates, or nil when unknown.
func (l *Listing) Location() *geo.Point {
	return geo.NewPoint(l.Latitude, l.Longitude)
}

// DaysOnMarket returns the elapsed days between creation and sale, or
// between creation and now for unsold listings. Never negative.
func (l *Listing) DaysOnMarket(now time.Time) float64 {
	end := now
	if l.SoldAt != nil {
		end = *l.SoldAt
	}
	days := end.Sub(l.CreatedAt).Hours() / hoursPerDay
	if days < 0 {
		return 0
	}
	return days
}

// User is a marketplace member. Coordinates are derived once from ZIP at
// signup and stay nil when geocoding was unavailable.
type User struct {
	ID        string    `json:"id"                  db:"id"`
	Email     string    `json:"email"               db:"email"`
	ZIP       string    `json:"zip"                 db:"zip"`
	Latitude  *float64  `json:"latitude,omitempty"  db:"latitude"`
	Longitude *float64  `json:"longitude,omitempty" db:"longitude"`
	CreatedAt time.Time `json:"created_at"          db:"created_at"`
}

// Location returns the user coordinates, or nil when unknown.
func (u *User) Location() *geo.Point {
	return geo.NewPoint(u.Latitude, u.Longitude)
}

// ListingVisit accumulates one user's engagement with one listing.
type ListingVisit struct {
	UserID        string    `json:"user_id"         db:"user_id"`
	ListingID     string    `json:"listing_id"      db:"listing_id"`
	Clicks        int       `json:"clicks"          db:"clicks"`
	DwellSeconds  float64   `json:"dwell_seconds"   db:"dwell_seconds"`
	LastVisitedAt time.Time `json:"last_visited_at" db:"last_visited_at"`
}

// SearchFilter is the set of listing filters a user searched with. Nil
// fields are unset.
type SearchFilter struct {
	Condition  *Condition `json:"condition,omitempty"`
	Make       *string    `json:"make,omitempty"`
	Model      *string    `json:"model,omitempty"`
	YearMin    *int       `json:"year_min,omitempty"`
	YearMax    *int       `json:"year_max,omitempty"`
	MaxPrice   *float64   `json:"max_price,omitempty"`
	MaxMileage *int       `json:"max_mileage,omitempty"`
}

// Key returns a canonical representation used to deduplicate saved filters.
// Text fields compare case-insensitively.
func (f SearchFilter) Key() string {
	var parts []string
	if f.Condition != nil {
		parts = append(parts, "condition="+strings.ToLower(string(*f.Condition)))
	}
	if f.Make != nil {
		parts = append(parts, "make="+strings.ToLower(*f.Make))
	}
	if f.Model != nil {
		parts = append(parts, "model="+strings.ToLower(*f.Model))
	}
	if f.YearMin != nil {
		parts = append(parts, fmt.Sprintf("year_min=%d", *f.YearMin))
	}
	if f.YearMax != nil {
		parts = append(parts, fmt.Sprintf("year_max=%d", *f.YearMax))
	}
	if f.MaxPrice != nil {
		parts = append(parts, fmt.Sprintf("max_price=%.2f", *f.MaxPrice))
	}
	if f.MaxMileage != nil {
		parts = append(parts, fmt.Sprintf("max_mileage=%d", *f.MaxMileage))
	}
	return strings.Join(parts, "&")
}

// Empty reports whether no filter field is set.
func (f SearchFilter) Empty() bool {
	return f.Key() == ""
}

// PreferenceKind distinguishes saved searches from recently used ones.
type PreferenceKind string

// Preference kinds.
const (
	PreferenceFavorited PreferenceKind = "favorited"
	PreferenceViewed    PreferenceKind = "viewed"
)

// SearchPreference is a saved or recently used search filter.
type SearchPreference struct {
	ID        string         `json:"id"         db:"id"`
	UserID    string         `json:"user_id"    db:"user_id"`
	Kind      PreferenceKind `json:"kind"       db:"kind"`
	Filter    SearchFilter   `json:"filter"     db:"filter"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
}

// Message is a directed note between two users about one listing.
type Message struct {
	ID         string    `json:"id"          db:"id"`
	ListingID  string    `json:"listing_id"  db:"listing_id"`
	SenderID   string    `json:"sender_id"   db:"sender_id"`
	ReceiverID string    `json:"receiver_id" db:"receiver_id"`
	Body       string    `json:"body"        db:"body"`
	CreatedAt  time.Time `json:"created_at"  db:"created_at"`
}

// GroupKey identifies a market segment for seller history comparisons.
type GroupKey struct {
	Condition Condition `json:"condition"`
	Make      string    `json:"make"`
	Model     string    `json:"model"`
}

// GroupOf returns the market segment of a listing.
func GroupOf(l *Listing) GroupKey {
	return GroupKey{Condition: l.Condition, Make: l.Make, Model: l.Model}
}

// Specification describes a vehicle to be priced.
type Specification struct {
	Condition Condition  `json:"condition"`
	Make      string     `json:"make"`
	Model     string     `json:"model"`
	Year      int        `json:"year"`
	Mileage   int        `json:"mileage"`
	Location  *geo.Point `json:"location,omitempty"`
	SellerID  string     `json:"seller_id,omitempty"`
}

// ConfidenceLevel grades a price estimate by how far the comparable search
// had to widen.
type ConfidenceLevel string

// Confidence levels.
const (
	ConfidenceHigh    ConfidenceLevel = "high"
	ConfidenceMedium  ConfidenceLevel = "medium"
	ConfidenceLow     ConfidenceLevel = "low"
	ConfidenceVeryLow ConfidenceLevel = "very low"
)

// ElasticityPoint is a predicted days-on-market at a price offset.
type ElasticityPoint struct {
	Offset        float64 `json:"offset"`
	Price         float64 `json:"price"`
	PredictedDays float64 `json:"predicted_days"`
}

// PriceEstimate is the result of a valuation.
type PriceEstimate struct {
	MarketPrice      float64           `json:"market_price"`
	RecommendedPrice float64           `json:"recommended_price"`
	SellerMultiplier float64           `json:"seller_multiplier"`
	Confidence       ConfidenceLevel   `json:"confidence_level"`
	DepthReached     int               `json:"depth_reached"`
	ComparableCount  int               `json:"comparable_count"`
	Elasticity       []ElasticityPoint `json:"elasticity"`
}
