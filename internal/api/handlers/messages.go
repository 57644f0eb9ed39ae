package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/listing-valuator/internal/store"
	domain "github.com/donaldgifford/listing-valuator/pkg/types"
)

// MessagesHandler handles buyer and seller messages.
type MessagesHandler struct {
	store store.Store
}

// NewMessagesHandler creates a new MessagesHandler.
func NewMessagesHandler(s store.Store) *MessagesHandler {
	return &MessagesHandler{store: s}
}

// SendMessageInput is a message about a listing.
type SendMessageInput struct {
	Body struct {
		ListingID  string `json:"listing_id"  minLength:"1"`
		SenderID   string `json:"sender_id"   minLength:"1"`
		ReceiverID string `json:"receiver_id" minLength:"1"`
		Body       string `json:"body"        minLength:"1" maxLength:"4000"`
	}
}

// Resolve validates the listing and participant IDs.
func (in *SendMessageInput) Resolve(huma.Context) []error {
	b := &in.Body
	return idErrors(
		canonicalID("body.listing_id", &b.ListingID),
		canonicalID("body.sender_id", &b.SenderID),
		canonicalID("body.receiver_id", &b.ReceiverID),
	)
}

// MessageOutput is a stored message.
type MessageOutput struct {
	Body domain.Message
}

// SendMessage stores a message about a listing.
func (h *MessagesHandler) SendMessage(ctx context.Context, input *SendMessageInput) (*MessageOutput, error) {
	b := &input.Body
	if b.SenderID == b.ReceiverID {
		return nil, huma.Error422UnprocessableEntity("sender and receiver must differ")
	}

	if _, err := h.store.GetListing(ctx, b.ListingID); err != nil {
		return nil, storeError(err, "listing")
	}

	m := &domain.Message{
		ListingID:  b.ListingID,
		SenderID:   b.SenderID,
		ReceiverID: b.ReceiverID,
		Body:       b.Body,
	}
	if err := h.store.CreateMessage(ctx, m); err != nil {
		return nil, storeError(err, "message")
	}
	return &MessageOutput{Body: *m}, nil
}

// RegisterMessageRoutes registers message endpoints with the Huma API.
func RegisterMessageRoutes(api huma.API, h *MessagesHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "send-message",
		Method:        http.MethodPost,
		Path:          "/api/v1/messages",
		Summary:       "Send a message about a listing",
		Tags:          []string{"engagement"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusNotFound, http.StatusUnprocessableEntity},
	}, h.SendMessage)
}
