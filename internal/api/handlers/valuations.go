package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/listing-valuator/internal/engine"
	"github.com/donaldgifford/listing-valuator/pkg/comps"
	"github.com/donaldgifford/listing-valuator/pkg/geo"
	domain "github.com/donaldgifford/listing-valuator/pkg/types"
)

// Valuator prices vehicles from comparable listings.
type Valuator interface {
	EstimatePrice(ctx context.Context, spec *domain.Specification) (*domain.PriceEstimate, error)
	Comparables(ctx context.Context, spec *domain.Specification) (*engine.ComparableSet, error)
}

// ValuationsHandler handles price estimate and comparable search requests.
type ValuationsHandler struct {
	valuator Valuator
}

// NewValuationsHandler creates a new ValuationsHandler.
func NewValuationsHandler(v Valuator) *ValuationsHandler {
	return &ValuationsHandler{valuator: v}
}

// --- Input/Output types ---

// VehicleBody describes the vehicle to price.
type VehicleBody struct {
	Condition string   `json:"condition"           enum:"new,used,certified,salvage" doc:"Declared vehicle condition"`
	Make      string   `json:"make"                minLength:"1"                     doc:"Manufacturer"`
	Model     string   `json:"model"               minLength:"1"                     doc:"Model name"`
	Year      int      `json:"year"                minimum:"1886"                    doc:"Model year"`
	Mileage   int      `json:"mileage"             minimum:"0"                       doc:"Odometer reading in miles"`
	Latitude  *float64 `json:"latitude,omitempty"  minimum:"-90"  maximum:"90"       doc:"Vehicle latitude"`
	Longitude *float64 `json:"longitude,omitempty" minimum:"-180" maximum:"180"      doc:"Vehicle longitude"`
	SellerID  string   `json:"seller_id,omitempty"                                   doc:"Seller whose sales history adjusts the recommendation"`
}

func (b *VehicleBody) specification() *domain.Specification {
	return &domain.Specification{
		Condition: domain.Condition(b.Condition),
		Make:      b.Make,
		Model:     b.Model,
		Year:      b.Year,
		Mileage:   b.Mileage,
		Location:  geo.NewPoint(b.Latitude, b.Longitude),
		SellerID:  b.SellerID,
	}
}

// VehicleInput wraps the vehicle body.
type VehicleInput struct {
	Body VehicleBody
}

// Resolve validates the optional seller ID.
func (in *VehicleInput) Resolve(huma.Context) []error {
	if in.Body.SellerID == "" {
		return nil
	}
	return idErrors(canonicalID("body.seller_id", &in.Body.SellerID))
}

// EstimateOutput is the response for a price estimate.
type EstimateOutput struct {
	Body domain.PriceEstimate
}

// ComparablesOutput is the response for a comparable search.
type ComparablesOutput struct {
	Body engine.ComparableSet
}

// --- Handlers ---

// Estimate returns the market and recommended price for a vehicle.
func (h *ValuationsHandler) Estimate(ctx context.Context, input *VehicleInput) (*EstimateOutput, error) {
	est, err := h.valuator.EstimatePrice(ctx, input.Body.specification())
	if err != nil {
		return nil, valuationError(err)
	}
	return &EstimateOutput{Body: *est}, nil
}

// Comparables returns the comparable listings a valuation would use.
func (h *ValuationsHandler) Comparables(ctx context.Context, input *VehicleInput) (*ComparablesOutput, error) {
	set, err := h.valuator.Comparables(ctx, input.Body.specification())
	if err != nil {
		return nil, valuationError(err)
	}
	return &ComparablesOutput{Body: *set}, nil
}

func valuationError(err error) error {
	switch {
	case errors.Is(err, comps.ErrNoComparables):
		return huma.Error404NotFound("no comparable listings found")
	case errors.Is(err, engine.ErrInvalidSpecification):
		return huma.Error422UnprocessableEntity(err.Error())
	default:
		return huma.Error503ServiceUnavailable("valuation unavailable: " + err.Error())
	}
}

// RegisterValuationRoutes registers valuation endpoints with the Huma API.
func RegisterValuationRoutes(api huma.API, h *ValuationsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "estimate-price",
		Method:      http.MethodPost,
		Path:        "/api/v1/valuations",
		Summary:     "Estimate a vehicle price",
		Description: "Returns the weighted market price, the recommended list price, a confidence level, and a days-on-market curve.",
		Tags:        []string{"valuations"},
		Errors:      []int{http.StatusNotFound, http.StatusUnprocessableEntity, http.StatusServiceUnavailable},
	}, h.Estimate)

	huma.Register(api, huma.Operation{
		OperationID: "find-comparables",
		Method:      http.MethodPost,
		Path:        "/api/v1/comparables",
		Summary:     "Find comparable listings",
		Description: "Runs the tiered comparable search and returns each comparable with its pricing weight.",
		Tags:        []string{"valuations"},
		Errors:      []int{http.StatusNotFound, http.StatusUnprocessableEntity, http.StatusServiceUnavailable},
	}, h.Comparables)
}
