package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/donaldgifford/listing-valuator/pkg/comps"
	domain "github.com/donaldgifford/listing-valuator/pkg/types"
)

const defaultPoolSize = 10

// uniqueViolation is the PostgreSQL SQLSTATE for unique constraint failures.
const uniqueViolation = "23505"

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
// Its methods are covered by the integration-tagged tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling. A
// non-positive poolSize uses the default.
func NewPostgresStore(ctx context.Context, connString string, poolSize int) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize
	if poolSize > 0 {
		cfg.MaxConns = int32(poolSize) //nolint:gosec // bounded by config validation
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// UpsertListing inserts a listing or updates the mutable fields of the
// listing with the same VIN. Sold state is never changed here.
func (s *PostgresStore) UpsertListing(ctx context.Context, l *domain.Listing) error {
	args := pgx.NamedArgs{
		"vin":       l.VIN,
		"condition": string(l.Condition),
		"make":      l.Make,
		"model":     l.Model,
		"year":      l.Year,
		"mileage":   l.Mileage,
		"color":     l.Color,
		"price":     l.Price,
		"latitude":  l.Latitude,
		"longitude": l.Longitude,
		"owner_id":  l.OwnerID,
	}

	return s.pool.QueryRow(ctx, queryUpsertListing, args).Scan(
		&l.ID, &l.Views, &l.Favorites, &l.Sold, &l.SoldAt, &l.CreatedAt, &l.UpdatedAt,
	)
}

// GetListing retrieves a listing by ID.
func (s *PostgresStore) GetListing(ctx context.Context, id string) (*domain.Listing, error) {
	l := &domain.Listing{}
	if err := scanListing(s.pool.QueryRow(ctx, queryGetListing, id), l); err != nil {
		return nil, notFound(err, "listing %s", id)
	}
	return l, nil
}

// ListListingsByIDs returns the listings with the given IDs in the order the
// IDs were given. Unknown IDs are skipped.
func (s *PostgresStore) ListListingsByIDs(ctx context.Context, ids []string) ([]domain.Listing, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	listings, err := s.queryListings(ctx, queryListListingsByIDs, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]domain.Listing, len(listings))
	for i := range listings {
		byID[listings[i].ID] = listings[i]
	}

	ordered := make([]domain.Listing, 0, len(listings))
	for _, id := range ids {
		if l, ok := byID[id]; ok {
			ordered = append(ordered, l)
		}
	}
	return ordered, nil
}

// MarkListingSold flips an unsold listing to sold. For a listing that was
// already sold it returns the stored listing unchanged and false.
func (s *PostgresStore) MarkListingSold(
	ctx context.Context,
	id string,
	soldAt time.Time,
) (*domain.Listing, bool, error) {
	l := &domain.Listing{}
	err := scanListing(s.pool.QueryRow(ctx, queryMarkListingSold, id, soldAt), l)
	if err == nil {
		return l, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, fmt.Errorf("marking listing sold: %w", err)
	}

	existing, err := s.GetListing(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// FindComparables returns listings matching one comparable search tier.
func (s *PostgresStore) FindComparables(ctx context.Context, q comps.Query) ([]domain.Listing, error) {
	query, args := comparableSQL(q)
	return s.queryListings(ctx, query, args...)
}

// ListSellerSoldListings returns every sold listing owned by the seller.
func (s *PostgresStore) ListSellerSoldListings(
	ctx context.Context,
	sellerID string,
) ([]domain.Listing, error) {
	return s.queryListings(ctx, queryListSellerSoldListings, sellerID)
}

// MarketAvgDaysOnMarket returns the average days-on-market of sold listings
// per group, excluding listings owned by excludeSellerID. Groups without
// sales are absent from the map.
func (s *PostgresStore) MarketAvgDaysOnMarket(
	ctx context.Context,
	excludeSellerID string,
	groups []domain.GroupKey,
) (map[domain.GroupKey]float64, error) {
	avgs := make(map[domain.GroupKey]float64, len(groups))
	if len(groups) == 0 {
		return avgs, nil
	}

	conditions := make([]string, len(groups))
	makes := make([]string, len(groups))
	models := make([]string, len(groups))
	for i, g := range groups {
		conditions[i] = string(g.Condition)
		makes[i] = g.Make
		models[i] = g.Model
	}

	rows, err := s.pool.Query(ctx, queryMarketAvgDaysOnMarket,
		excludeSellerID, conditions, makes, models,
	)
	if err != nil {
		return nil, fmt.Errorf("querying market averages: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			g   domain.GroupKey
			avg float64
		)
		if err := rows.Scan(&g.Condition, &g.Make, &g.Model, &avg); err != nil {
			return nil, fmt.Errorf("scanning market average: %w", err)
		}
		avgs[g] = avg
	}

	return avgs, rows.Err()
}

// CreateUser inserts a new user. A duplicate email returns ErrConflict.
func (s *PostgresStore) CreateUser(ctx context.Context, u *domain.User) error {
	args := pgx.NamedArgs{
		"email":     u.Email,
		"zip":       u.ZIP,
		"latitude":  u.Latitude,
		"longitude": u.Longitude,
	}

	err := s.pool.QueryRow(ctx, queryCreateUser, args).Scan(&u.ID, &u.CreatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: user %s", ErrConflict, u.Email)
	}
	return err
}

// GetUser retrieves a user by ID.
func (s *PostgresStore) GetUser(ctx context.Context, id string) (*domain.User, error) {
	u := &domain.User{}
	err := s.pool.QueryRow(ctx, queryGetUser, id).Scan(
		&u.ID, &u.Email, &u.ZIP, &u.Latitude, &u.Longitude, &u.CreatedAt,
	)
	if err != nil {
		return nil, notFound(err, "user %s", id)
	}
	return u, nil
}

// ListActiveUsers returns the IDs of users with a visit since the given time,
// most recently active first.
func (s *PostgresStore) ListActiveUsers(
	ctx context.Context,
	since time.Time,
	limit int,
) ([]string, error) {
	rows, err := s.pool.Query(ctx, queryListActiveUsers, since, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("querying active users: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scanning active users: %w", err)
	}
	return ids, nil
}

// RecordVisit adds the visit's clicks and dwell time to the user's running
// totals for the listing and counts one view on the listing. The visit is
// updated in place with the accumulated totals.
func (s *PostgresStore) RecordVisit(ctx context.Context, v *domain.ListingVisit) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		args := pgx.NamedArgs{
			"user_id":         v.UserID,
			"listing_id":      v.ListingID,
			"clicks":          v.Clicks,
			"dwell_seconds":   v.DwellSeconds,
			"last_visited_at": v.LastVisitedAt,
		}

		if err := tx.QueryRow(ctx, queryUpsertVisit, args).Scan(
			&v.Clicks, &v.DwellSeconds, &v.LastVisitedAt,
		); err != nil {
			return fmt.Errorf("upserting visit: %w", err)
		}

		if _, err := tx.Exec(ctx, queryIncrementViews, v.ListingID); err != nil {
			return fmt.Errorf("incrementing views: %w", err)
		}
		return nil
	})
}

// GetVisit returns the user's accumulated visit totals for a listing.
func (s *PostgresStore) GetVisit(
	ctx context.Context,
	userID, listingID string,
) (*domain.ListingVisit, error) {
	v := &domain.ListingVisit{}
	err := s.pool.QueryRow(ctx, queryGetVisit, userID, listingID).Scan(
		&v.UserID, &v.ListingID, &v.Clicks, &v.DwellSeconds, &v.LastVisitedAt,
	)
	if err != nil {
		return nil, notFound(err, "visit %s/%s", userID, listingID)
	}
	return v, nil
}

// SetFavorite favorites or unfavorites a listing for a user and keeps the
// listing's favorite counter in step. It reports whether anything changed.
func (s *PostgresStore) SetFavorite(
	ctx context.Context,
	userID, listingID string,
	favorite bool,
) (bool, error) {
	var changed bool

	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		query, delta := queryDeleteFavorite, -1
		if favorite {
			query, delta = queryInsertFavorite, 1
		}

		tag, err := tx.Exec(ctx, query, userID, listingID)
		if err != nil {
			return fmt.Errorf("updating favorite: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return nil
		}

		if _, err := tx.Exec(ctx, queryAdjustFavorites, listingID, delta); err != nil {
			return fmt.Errorf("adjusting favorite count: %w", err)
		}
		changed = true
		return nil
	})

	return changed, err
}

// IsFavorited reports whether the user has favorited the listing.
func (s *PostgresStore) IsFavorited(ctx context.Context, userID, listingID string) (bool, error) {
	var ok bool
	err := s.pool.QueryRow(ctx, queryIsFavorited, userID, listingID).Scan(&ok)
	return ok, err
}

// CreateMessage inserts a new message.
func (s *PostgresStore) CreateMessage(ctx context.Context, m *domain.Message) error {
	args := pgx.NamedArgs{
		"listing_id":  m.ListingID,
		"sender_id":   m.SenderID,
		"receiver_id": m.ReceiverID,
		"body":        m.Body,
	}

	return s.pool.QueryRow(ctx, queryCreateMessage, args).Scan(&m.ID, &m.CreatedAt)
}

// CountMessagesExcludingOwner counts messages about a listing, ignoring those
// sent by the listing's owner.
func (s *PostgresStore) CountMessagesExcludingOwner(ctx context.Context, listingID string) (int, error) {
	var n int
	err := s.pool.QueryRow(ctx, queryCountMessagesExcludingOwner, listingID).Scan(&n)
	return n, err
}

// HasMessagedSeller reports whether the user has messaged the listing's owner
// about the listing.
func (s *PostgresStore) HasMessagedSeller(ctx context.Context, userID, listingID string) (bool, error) {
	var ok bool
	err := s.pool.QueryRow(ctx, queryHasMessagedSeller, userID, listingID).Scan(&ok)
	return ok, err
}

// SavePreference stores a search preference. Saving a filter the user
// already has of the same kind refreshes its timestamp. Viewed preferences
// beyond viewedCap are evicted oldest first.
func (s *PostgresStore) SavePreference(
	ctx context.Context,
	p *domain.SearchPreference,
	viewedCap int,
) error {
	filterJSON, err := json.Marshal(p.Filter)
	if err != nil {
		return fmt.Errorf("marshaling filter: %w", err)
	}

	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}

	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		args := pgx.NamedArgs{
			"user_id":    p.UserID,
			"kind":       string(p.Kind),
			"filter":     filterJSON,
			"filter_key": p.Filter.Key(),
			"created_at": p.CreatedAt,
		}

		if err := tx.QueryRow(ctx, queryUpsertPreference, args).Scan(&p.ID, &p.CreatedAt); err != nil {
			return fmt.Errorf("upserting preference: %w", err)
		}

		if p.Kind != domain.PreferenceViewed || viewedCap <= 0 {
			return nil
		}

		if _, err := tx.Exec(ctx, queryEvictViewedPreferences, p.UserID, viewedCap); err != nil {
			return fmt.Errorf("evicting viewed preferences: %w", err)
		}
		return nil
	})
}

// ListPreferences returns the user's saved and recently viewed filters.
func (s *PostgresStore) ListPreferences(
	ctx context.Context,
	userID string,
) ([]domain.SearchPreference, error) {
	rows, err := s.pool.Query(ctx, queryListPreferences, userID)
	if err != nil {
		return nil, fmt.Errorf("querying preferences: %w", err)
	}
	defer rows.Close()

	var prefs []domain.SearchPreference
	for rows.Next() {
		var (
			p          domain.SearchPreference
			filterJSON []byte
		)
		if err := rows.Scan(&p.ID, &p.UserID, &p.Kind, &filterJSON, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning preference: %w", err)
		}
		if err := json.Unmarshal(filterJSON, &p.Filter); err != nil {
			return nil, fmt.Errorf("unmarshaling preference filter: %w", err)
		}
		prefs = append(prefs, p)
	}

	return prefs, rows.Err()
}

// ListRecentlyVisited returns unsold listings the user visited and does not
// own, most recently visited first.
func (s *PostgresStore) ListRecentlyVisited(
	ctx context.Context,
	userID string,
	limit int,
) ([]domain.Listing, error) {
	return s.queryListings(ctx, queryListRecentlyVisited, userID, clampLimit(limit))
}

// ListListingsByFilter returns unsold listings matching a search filter that
// the user does not own.
func (s *PostgresStore) ListListingsByFilter(
	ctx context.Context,
	userID string,
	f *domain.SearchFilter,
	limit int,
) ([]domain.Listing, error) {
	query, args := filterSQL(userID, f, limit)
	return s.queryListings(ctx, query, args...)
}

// queryListings is a helper for queries returning full listing rows.
func (s *PostgresStore) queryListings(
	ctx context.Context,
	query string,
	args ...any,
) ([]domain.Listing, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying listings: %w", err)
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		var l domain.Listing
		if err := scanListing(rows, &l); err != nil {
			return nil, fmt.Errorf("scanning listing: %w", err)
		}
		listings = append(listings, l)
	}

	return listings, rows.Err()
}

// scannable abstracts pgx.Row and pgx.Rows for reuse.
type scannable interface {
	Scan(dest ...any) error
}

// scanListing scans a full listing row in listingColumns order.
func scanListing(row scannable, l *domain.Listing) error {
	return row.Scan(
		&l.ID, &l.VIN, &l.Condition, &l.Make, &l.Model, &l.Year, &l.Mileage, &l.Color,
		&l.Price, &l.Latitude, &l.Longitude, &l.OwnerID, &l.Views, &l.Favorites,
		&l.Sold, &l.SoldAt, &l.CreatedAt, &l.UpdatedAt,
	)
}

// notFound maps pgx.ErrNoRows to ErrNotFound and passes other errors through.
func notFound(err error, format string, args ...any) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
