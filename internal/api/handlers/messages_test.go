package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/listing-valuator/internal/api/handlers"
	storeMocks "github.com/donaldgifford/listing-valuator/internal/store/mocks"
	domain "github.com/donaldgifford/listing-valuator/pkg/types"
)

func messageBody(sender, receiver string) map[string]any {
	return map[string]any{
		"listing_id":  listingID,
		"sender_id":   sender,
		"receiver_id": receiver,
		"body":        "Is this still available?",
	}
}

func TestSendMessage(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().GetListing(mock.Anything, listingID).Return(&domain.Listing{ID: listingID}, nil)
	ms.EXPECT().CreateMessage(mock.Anything, mock.AnythingOfType("*domain.Message")).
		RunAndReturn(func(_ context.Context, m *domain.Message) error {
			m.ID = "m1"
			return nil
		})

	_, api := humatest.New(t)
	handlers.RegisterMessageRoutes(api, handlers.NewMessagesHandler(ms))

	resp := api.Post("/api/v1/messages", messageBody(buyerID, sellerID))
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	assert.Contains(t, resp.Body.String(), `"id":"m1"`)
}

func TestSendMessage_Rejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		sender     string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
	}{
		{
			name:       "message to self",
			sender:     sellerID,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:   "unknown listing",
			sender: buyerID,
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetListing(mock.Anything, listingID).Return(nil, notFound("listing"))
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			if tt.setupMock != nil {
				tt.setupMock(ms)
			}

			_, api := humatest.New(t)
			handlers.RegisterMessageRoutes(api, handlers.NewMessagesHandler(ms))

			resp := api.Post("/api/v1/messages", messageBody(tt.sender, sellerID))
			assert.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
		})
	}
}
