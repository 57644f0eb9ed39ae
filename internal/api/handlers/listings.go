package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/listing-valuator/internal/store"
	domain "github.com/donaldgifford/listing-valuator/pkg/types"
)

// ListingsHandler handles listing and engagement endpoints.
type ListingsHandler struct {
	store   store.Store
	nowFunc func() time.Time
}

// NewListingsHandler creates a new ListingsHandler.
func NewListingsHandler(s store.Store) *ListingsHandler {
	return &ListingsHandler{store: s, nowFunc: time.Now}
}

// --- Input/Output types ---

// CreateListingInput creates or updates a listing keyed by VIN.
type CreateListingInput struct {
	Body struct {
		VIN       string   `json:"vin"                 minLength:"11" maxLength:"17"                     doc:"Vehicle identification number"`
		Condition string   `json:"condition"           enum:"new,used,certified,salvage"`
		Make      string   `json:"make"                minLength:"1"`
		Model     string   `json:"model"               minLength:"1"`
		Year      int      `json:"year"                minimum:"1886"`
		Mileage   int      `json:"mileage"             minimum:"0"`
		Color     string   `json:"color,omitempty"`
		Price     float64  `json:"price"               minimum:"0"                                       doc:"Asking price in dollars"`
		Latitude  *float64 `json:"latitude,omitempty"  minimum:"-90"  maximum:"90"`
		Longitude *float64 `json:"longitude,omitempty" minimum:"-180" maximum:"180"`
		OwnerID   *string  `json:"owner_id,omitempty"                                                    doc:"Marketplace seller; omit for catalog listings"`
	}
}

// ListingPathInput selects a listing.
type ListingPathInput struct {
	ID string `path:"id" doc:"Listing ID"`
}

// Resolve validates the listing ID.
func (in *ListingPathInput) Resolve(huma.Context) []error {
	return idErrors(canonicalID("path.id", &in.ID))
}

// ListingOutput is a single listing.
type ListingOutput struct {
	Body domain.Listing
}

// MarkSoldOutput reports the listing after a sale and whether it changed.
type MarkSoldOutput struct {
	Body struct {
		Listing domain.Listing `json:"listing"`
		Changed bool           `json:"changed" doc:"false when the listing was already sold"`
	}
}

// RecordVisitInput adds engagement from one visit.
type RecordVisitInput struct {
	ID   string `path:"id" doc:"Listing ID"`
	Body struct {
		UserID       string  `json:"user_id"       minLength:"1"`
		Clicks       int     `json:"clicks"        minimum:"0" doc:"Clicks during this visit"`
		DwellSeconds float64 `json:"dwell_seconds" minimum:"0" doc:"Seconds spent on the listing during this visit"`
	}
}

// Resolve validates the listing and user IDs.
func (in *RecordVisitInput) Resolve(huma.Context) []error {
	return idErrors(
		canonicalID("path.id", &in.ID),
		canonicalID("body.user_id", &in.Body.UserID),
	)
}

// VisitOutput is the user's accumulated engagement with a listing.
type VisitOutput struct {
	Body domain.ListingVisit
}

// SetFavoriteInput favorites or unfavorites a listing.
type SetFavoriteInput struct {
	ID   string `path:"id" doc:"Listing ID"`
	Body struct {
		UserID   string `json:"user_id"  minLength:"1"`
		Favorite bool   `json:"favorite"`
	}
}

// Resolve validates the listing and user IDs.
func (in *SetFavoriteInput) Resolve(huma.Context) []error {
	return idErrors(
		canonicalID("path.id", &in.ID),
		canonicalID("body.user_id", &in.Body.UserID),
	)
}

// FavoriteOutput reports the favorite state after the change.
type FavoriteOutput struct {
	Body struct {
		Favorited bool `json:"favorited"`
		Changed   bool `json:"changed"`
	}
}

// --- Handlers ---

// CreateListing inserts a listing, or updates the mutable fields of the
// listing with the same VIN.
func (h *ListingsHandler) CreateListing(ctx context.Context, input *CreateListingInput) (*ListingOutput, error) {
	b := &input.Body
	l := &domain.Listing{
		VIN:       b.VIN,
		Condition: domain.Condition(b.Condition),
		Make:      b.Make,
		Model:     b.Model,
		Year:      b.Year,
		Mileage:   b.Mileage,
		Color:     b.Color,
		Price:     b.Price,
		Latitude:  b.Latitude,
		Longitude: b.Longitude,
		OwnerID:   b.OwnerID,
	}

	if err := h.store.UpsertListing(ctx, l); err != nil {
		return nil, storeError(err, "listing")
	}
	return &ListingOutput{Body: *l}, nil
}

// GetListing returns a single listing by ID.
func (h *ListingsHandler) GetListing(ctx context.Context, input *ListingPathInput) (*ListingOutput, error) {
	l, err := h.store.GetListing(ctx, input.ID)
	if err != nil {
		return nil, storeError(err, "listing")
	}
	return &ListingOutput{Body: *l}, nil
}

// MarkSold flips a listing to sold. Repeating the call keeps the original
// sale time.
func (h *ListingsHandler) MarkSold(ctx context.Context, input *ListingPathInput) (*MarkSoldOutput, error) {
	l, changed, err := h.store.MarkListingSold(ctx, input.ID, h.nowFunc())
	if err != nil {
		return nil, storeError(err, "listing")
	}

	resp := &MarkSoldOutput{}
	resp.Body.Listing = *l
	resp.Body.Changed = changed
	return resp, nil
}

// RecordVisit adds a visit's clicks and dwell time to the user's totals and
// counts a view on the listing.
func (h *ListingsHandler) RecordVisit(ctx context.Context, input *RecordVisitInput) (*VisitOutput, error) {
	if _, err := h.store.GetListing(ctx, input.ID); err != nil {
		return nil, storeError(err, "listing")
	}

	v := &domain.ListingVisit{
		UserID:        input.Body.UserID,
		ListingID:     input.ID,
		Clicks:        input.Body.Clicks,
		DwellSeconds:  input.Body.DwellSeconds,
		LastVisitedAt: h.nowFunc(),
	}
	if err := h.store.RecordVisit(ctx, v); err != nil {
		return nil, storeError(err, "visit")
	}
	return &VisitOutput{Body: *v}, nil
}

// SetFavorite favorites or unfavorites a listing for a user.
func (h *ListingsHandler) SetFavorite(ctx context.Context, input *SetFavoriteInput) (*FavoriteOutput, error) {
	if _, err := h.store.GetListing(ctx, input.ID); err != nil {
		return nil, storeError(err, "listing")
	}

	changed, err := h.store.SetFavorite(ctx, input.Body.UserID, input.ID, input.Body.Favorite)
	if err != nil {
		return nil, storeError(err, "favorite")
	}

	resp := &FavoriteOutput{}
	resp.Body.Favorited = input.Body.Favorite
	resp.Body.Changed = changed
	return resp, nil
}

// RegisterListingRoutes registers listing endpoints with the Huma API.
func RegisterListingRoutes(api huma.API, h *ListingsHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-listing",
		Method:        http.MethodPost,
		Path:          "/api/v1/listings",
		Summary:       "Create or update a listing",
		Description:   "Creates a listing, or updates price, mileage, color, and location of the listing with the same VIN.",
		Tags:          []string{"listings"},
		DefaultStatus: http.StatusCreated,
	}, h.CreateListing)

	huma.Register(api, huma.Operation{
		OperationID: "get-listing",
		Method:      http.MethodGet,
		Path:        "/api/v1/listings/{id}",
		Summary:     "Get a listing by ID",
		Tags:        []string{"listings"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetListing)

	huma.Register(api, huma.Operation{
		OperationID: "mark-listing-sold",
		Method:      http.MethodPost,
		Path:        "/api/v1/listings/{id}/sold",
		Summary:     "Mark a listing sold",
		Tags:        []string{"listings"},
		Errors:      []int{http.StatusNotFound},
	}, h.MarkSold)

	huma.Register(api, huma.Operation{
		OperationID: "record-visit",
		Method:      http.MethodPost,
		Path:        "/api/v1/listings/{id}/visits",
		Summary:     "Record a listing visit",
		Tags:        []string{"engagement"},
		Errors:      []int{http.StatusNotFound},
	}, h.RecordVisit)

	huma.Register(api, huma.Operation{
		OperationID: "set-favorite",
		Method:      http.MethodPut,
		Path:        "/api/v1/listings/{id}/favorite",
		Summary:     "Favorite or unfavorite a listing",
		Tags:        []string{"engagement"},
		Errors:      []int{http.StatusNotFound},
	}, h.SetFavorite)
}
