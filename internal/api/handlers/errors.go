package handlers

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/listing-valuator/internal/store"
)

// storeError maps a store failure to an API error. Not found and conflict
// keep their meaning; anything else is reported as the datastore being
// unavailable.
func storeError(err error, what string) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return huma.Error404NotFound(what + " not found")
	case errors.Is(err, store.ErrConflict):
		return huma.Error409Conflict(what + " already exists")
	default:
		return huma.Error503ServiceUnavailable("datastore unavailable: " + err.Error())
	}
}
