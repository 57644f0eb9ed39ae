package handlers

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
)

// canonicalID rewrites *id to its canonical UUID form, or returns a
// validation detail for location when it is not a UUID.
func canonicalID(location string, id *string) error {
	parsed, err := uuid.Parse(*id)
	if err != nil {
		return &huma.ErrorDetail{
			Location: location,
			Message:  "expected a UUID",
			Value:    *id,
		}
	}
	*id = parsed.String()
	return nil
}

// idErrors collects the validation details of every non-nil error.
func idErrors(errs ...error) []error {
	var out []error
	for _, err := range errs {
		if err != nil {
			out = append(out, err)
		}
	}
	return out
}
