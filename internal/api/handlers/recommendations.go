package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/listing-valuator/internal/engine"
	"github.com/donaldgifford/listing-valuator/internal/store"
	"github.com/donaldgifford/listing-valuator/pkg/geo"
	score "github.com/donaldgifford/listing-valuator/pkg/scorer"
	domain "github.com/donaldgifford/listing-valuator/pkg/types"
)

// Recommender ranks listings for a user.
type Recommender interface {
	Recommend(ctx context.Context, req engine.RecommendRequest) ([]string, error)
	RankDetailed(ctx context.Context, req engine.RecommendRequest) ([]score.Scored, error)
}

// RecommendationsHandler serves per-user listing recommendations.
type RecommendationsHandler struct {
	recommender Recommender
	store       store.Store
}

// NewRecommendationsHandler creates a new RecommendationsHandler. The store
// resolves listing records when a caller asks for them.
func NewRecommendationsHandler(r Recommender, s store.Store) *RecommendationsHandler {
	return &RecommendationsHandler{recommender: r, store: s}
}

// RecommendationsInput identifies the user and, optionally, where they are.
type RecommendationsInput struct {
	UserID    string  `path:"id"         doc:"User ID"`
	Latitude  float64 `query:"latitude"  doc:"Current latitude; defaults to the user's signup location"  minimum:"-90"  maximum:"90"`
	Longitude float64 `query:"longitude" doc:"Current longitude; defaults to the user's signup location" minimum:"-180" maximum:"180"`
	Expand    bool    `query:"expand"    doc:"Include full listing records"`
	Detail    bool    `query:"detail"    doc:"Rank fresh and include per-signal score breakdowns"`

	location *geo.Point
}

// Resolve validates the user ID and records whether coordinates were
// supplied. Both or neither must be present.
func (in *RecommendationsInput) Resolve(ctx huma.Context) []error {
	errs := idErrors(canonicalID("path.id", &in.UserID))

	hasLat, hasLon := ctx.Query("latitude") != "", ctx.Query("longitude") != ""
	switch {
	case hasLat && hasLon:
		in.location = &geo.Point{Lat: in.Latitude, Lon: in.Longitude}
	case hasLat != hasLon:
		errs = append(errs, &huma.ErrorDetail{
			Location: "query.latitude",
			Message:  "latitude and longitude must be given together",
		})
	}
	return errs
}

// RecommendationsOutput is the ranked recommendation list.
type RecommendationsOutput struct {
	Body struct {
		UserID     string           `json:"user_id"`
		ListingIDs []string         `json:"listing_ids"`
		Listings   []domain.Listing `json:"listings,omitempty"`
		Scores     []score.Scored   `json:"scores,omitempty"`
	}
}

// Recommendations returns up to the configured number of listing IDs, best
// first. Users without history get an empty list.
func (h *RecommendationsHandler) Recommendations(
	ctx context.Context,
	input *RecommendationsInput,
) (*RecommendationsOutput, error) {
	req := engine.RecommendRequest{UserID: input.UserID, Location: input.location}

	resp := &RecommendationsOutput{}
	resp.Body.UserID = input.UserID

	if input.Detail {
		ranked, err := h.recommender.RankDetailed(ctx, req)
		if err != nil {
			return nil, huma.Error503ServiceUnavailable("recommendations unavailable: " + err.Error())
		}
		resp.Body.Scores = ranked
		resp.Body.ListingIDs = make([]string, len(ranked))
		for i := range ranked {
			resp.Body.ListingIDs[i] = ranked[i].ListingID
		}
	} else {
		ids, err := h.recommender.Recommend(ctx, req)
		if err != nil {
			return nil, huma.Error503ServiceUnavailable("recommendations unavailable: " + err.Error())
		}
		resp.Body.ListingIDs = ids
	}

	if input.Expand && len(resp.Body.ListingIDs) > 0 {
		listings, err := h.store.ListListingsByIDs(ctx, resp.Body.ListingIDs)
		if err != nil {
			return nil, storeError(err, "listings")
		}
		resp.Body.Listings = listings
	}

	return resp, nil
}

// RegisterRecommendationRoutes registers recommendation endpoints with the Huma API.
func RegisterRecommendationRoutes(api huma.API, h *RecommendationsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-recommendations",
		Method:      http.MethodGet,
		Path:        "/api/v1/users/{id}/recommendations",
		Summary:     "Recommend listings for a user",
		Description: "Ranks listings the user has engaged with or that match their saved searches. Results are cached per user.",
		Tags:        []string{"recommendations"},
		Errors:      []int{http.StatusUnprocessableEntity, http.StatusServiceUnavailable},
	}, h.Recommendations)
}
