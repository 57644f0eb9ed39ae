// Package store defines the datastore abstraction for listing-valuator.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/donaldgifford/listing-valuator/pkg/comps"
	domain "github.com/donaldgifford/listing-valuator/pkg/types"
)

// Sentinel errors returned by Store implementations.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
)

// Store defines all data access operations for listing-valuator.
type Store interface {
	// Listings
	UpsertListing(ctx context.Context, l *domain.Listing) error
	GetListing(ctx context.Context, id string) (*domain.Listing, error)
	ListListingsByIDs(ctx context.Context, ids []string) ([]domain.Listing, error)
	MarkListingSold(ctx context.Context, id string, soldAt time.Time) (*domain.Listing, bool, error)
	FindComparables(ctx context.Context, q comps.Query) ([]domain.Listing, error)

	// Seller history
	ListSellerSoldListings(ctx context.Context, sellerID string) ([]domain.Listing, error)
	MarketAvgDaysOnMarket(
		ctx context.Context,
		excludeSellerID string,
		groups []domain.GroupKey,
	) (map[domain.GroupKey]float64, error)

	// Users
	CreateUser(ctx context.Context, u *domain.User) error
	GetUser(ctx context.Context, id string) (*domain.User, error)
	ListActiveUsers(ctx context.Context, since time.Time, limit int) ([]string, error)

	// Engagement
	RecordVisit(ctx context.Context, v *domain.ListingVisit) error
	GetVisit(ctx context.Context, userID, listingID string) (*domain.ListingVisit, error)
	SetFavorite(ctx context.Context, userID, listingID string, favorite bool) (changed bool, err error)
	IsFavorited(ctx context.Context, userID, listingID string) (bool, error)
	CreateMessage(ctx context.Context, m *domain.Message) error
	CountMessagesExcludingOwner(ctx context.Context, listingID string) (int, error)
	HasMessagedSeller(ctx context.Context, userID, listingID string) (bool, error)

	// Preferences
	SavePreference(ctx context.Context, p *domain.SearchPreference, viewedCap int) error
	ListPreferences(ctx context.Context, userID string) ([]domain.SearchPreference, error)

	// Recommendation candidates
	ListRecentlyVisited(ctx context.Context, userID string, limit int) ([]domain.Listing, error)
	ListListingsByFilter(
		ctx context.Context,
		userID string,
		f *domain.SearchFilter,
		limit int,
	) ([]domain.Listing, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
