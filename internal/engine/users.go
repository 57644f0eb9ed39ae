package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domain "github.com/donaldgifford/listing-valuator/pkg/types"
)

// ErrInvalidPreference is returned for search preferences that cannot be saved.
var ErrInvalidPreference = errors.New("invalid search preference")

// RegisterUser creates a user, deriving coordinates from the ZIP code. When
// the geocoder cannot resolve the ZIP the user is created with unknown
// coordinates.
func (eng *Engine) RegisterUser(ctx context.Context, email, zip string) (_ *domain.User, err error) {
	ctx, span := eng.tracer.Start(ctx, "engine.RegisterUser")
	defer endSpan(span, &err)

	u := &domain.User{
		Email: strings.TrimSpace(email),
		ZIP:   strings.TrimSpace(zip),
	}

	p, gerr := eng.geocoder.Geocode(ctx, u.ZIP)
	if gerr != nil {
		eng.log.Warn("geocoding failed, user location unknown", "zip", u.ZIP, "error", gerr)
	} else {
		u.Latitude, u.Longitude = &p.Lat, &p.Lon
	}

	if err := eng.store.CreateUser(ctx, u); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	eng.log.Info("user registered", "user_id", u.ID, "located", u.Location() != nil)
	return u, nil
}

// SavePreference records a saved or recently used search filter. Viewed
// filters beyond the configured cap are evicted oldest first.
func (eng *Engine) SavePreference(ctx context.Context, p *domain.SearchPreference) error {
	switch p.Kind {
	case domain.PreferenceFavorited, domain.PreferenceViewed:
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidPreference, p.Kind)
	}
	if p.Filter.Empty() {
		return fmt.Errorf("%w: filter has no fields set", ErrInvalidPreference)
	}

	if p.CreatedAt.IsZero() {
		p.CreatedAt = eng.nowFunc()
	}

	if err := eng.store.SavePreference(ctx, p, eng.viewedPreferenceCap); err != nil {
		return fmt.Errorf("saving preference: %w", err)
	}
	return nil
}
