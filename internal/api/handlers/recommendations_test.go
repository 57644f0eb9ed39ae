package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/listing-valuator/internal/api/handlers"
	"github.com/donaldgifford/listing-valuator/internal/engine"
	storeMocks "github.com/donaldgifford/listing-valuator/internal/store/mocks"
	score "github.com/donaldgifford/listing-valuator/pkg/scorer"
	domain "github.com/donaldgifford/listing-valuator/pkg/types"
)

type fakeRecommender struct {
	ids    []string
	ranked []score.Scored
	err    error
	got    *engine.RecommendRequest
	calls  []string
}

func (f *fakeRecommender) Recommend(_ context.Context, req engine.RecommendRequest) ([]string, error) {
	f.got = &req
	f.calls = append(f.calls, "recommend")
	return f.ids, f.err
}

func (f *fakeRecommender) RankDetailed(_ context.Context, req engine.RecommendRequest) ([]score.Scored, error) {
	f.got = &req
	f.calls = append(f.calls, "detailed")
	return f.ranked, f.err
}

func TestRecommendations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		path         string
		recommender  *fakeRecommender
		setupMock    func(*storeMocks.MockStore)
		wantStatus   int
		wantBody     []string
		wantLocation bool
		wantCall     string
	}{
		{
			name:         "ids from cache or ranking",
			path:         "/api/v1/users/" + userID + "/recommendations?latitude=40.7&longitude=-74",
			recommender:  &fakeRecommender{ids: []string{"a", "b"}},
			wantStatus:   http.StatusOK,
			wantBody:     []string{`"listing_ids":["a","b"]`, `"user_id":"` + userID + `"`},
			wantLocation: true,
			wantCall:     "recommend",
		},
		{
			name:        "no history yields empty list",
			path:        "/api/v1/users/" + otherUserID + "/recommendations",
			recommender: &fakeRecommender{ids: []string{}},
			wantStatus:  http.StatusOK,
			wantBody:    []string{`"listing_ids":[]`},
			wantCall:    "recommend",
		},
		{
			name:        "expand resolves listings",
			path:        "/api/v1/users/" + userID + "/recommendations?expand=true",
			recommender: &fakeRecommender{ids: []string{"a"}},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().ListListingsByIDs(mock.Anything, []string{"a"}).
					Return([]domain.Listing{{ID: "a", Make: "Honda"}}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"make":"Honda"`},
			wantCall:   "recommend",
		},
		{
			name: "detail returns score breakdowns",
			path: "/api/v1/users/" + userID + "/recommendations?detail=true",
			recommender: &fakeRecommender{ranked: []score.Scored{
				{ListingID: "a", Score: 0.8, Breakdown: score.Breakdown{Views: 1}},
			}},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"listing_ids":["a"]`, `"score":0.8`},
			wantCall:   "detailed",
		},
		{
			name:        "upstream failure",
			path:        "/api/v1/users/" + userID + "/recommendations",
			recommender: &fakeRecommender{err: errors.New("database unavailable")},
			wantStatus:  http.StatusServiceUnavailable,
			wantCall:    "recommend",
		},
		{
			name:        "latitude without longitude",
			path:        "/api/v1/users/" + userID + "/recommendations?latitude=40.7",
			recommender: &fakeRecommender{},
			wantStatus:  http.StatusUnprocessableEntity,
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
			handlers.RegisterRecommendationRoutes(api, handlers.NewRecommendationsHandler(tt.recommender, ms))

			resp := api.Get(tt.path)
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			for _, want := range tt.wantBody {
				assert.Contains(t, resp.Body.String(), want)
			}

			if tt.wantCall == "" {
				assert.Empty(t, tt.recommender.calls)
				return
			}
			assert.Equal(t, []string{tt.wantCall}, tt.recommender.calls)
			assert.Equal(t, tt.wantLocation, tt.recommender.got.Location != nil)
		})
	}
}
