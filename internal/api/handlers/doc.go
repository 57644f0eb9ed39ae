// Package handlers implements HTTP handlers for the listing valuator API.
package handlers

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string            `json:"status"           example:"ok"`
	Checks map[string]string `json:"checks,omitempty"`
}
