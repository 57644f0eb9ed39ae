package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/listing-valuator/internal/engine"
	"github.com/donaldgifford/listing-valuator/internal/store"
	domain "github.com/donaldgifford/listing-valuator/pkg/types"
)

// UserService registers users and records their search preferences.
type UserService interface {
	RegisterUser(ctx context.Context, email, zip string) (*domain.User, error)
	SavePreference(ctx context.Context, p *domain.SearchPreference) error
}

// UsersHandler handles user and search preference endpoints.
type UsersHandler struct {
	users UserService
	store store.Store
}

// NewUsersHandler creates a new UsersHandler.
func NewUsersHandler(u UserService, s store.Store) *UsersHandler {
	return &UsersHandler{users: u, store: s}
}

// --- Input/Output types ---

// CreateUserInput is the signup request.
type CreateUserInput struct {
	Body struct {
		Email string `json:"email" format:"email"       doc:"Contact email"`
		ZIP   string `json:"zip"   pattern:"^[0-9]{5}$" doc:"Five digit ZIP code used to locate the user"`
	}
}

// UserOutput is a single user.
type UserOutput struct {
	Body domain.User
}

// UserPathInput selects a user.
type UserPathInput struct {
	ID string `path:"id" doc:"User ID"`
}

// Resolve validates the user ID.
func (in *UserPathInput) Resolve(huma.Context) []error {
	return idErrors(canonicalID("path.id", &in.ID))
}

// SavePreferenceInput records a search the user saved or ran.
type SavePreferenceInput struct {
	ID   string `path:"id" doc:"User ID"`
	Body struct {
		Kind   string              `json:"kind"   enum:"favorited,viewed" doc:"favorited for saved searches, viewed for recently run ones"`
		Filter domain.SearchFilter `json:"filter"`
	}
}

// Resolve validates the user ID.
func (in *SavePreferenceInput) Resolve(huma.Context) []error {
	return idErrors(canonicalID("path.id", &in.ID))
}

// PreferenceOutput is a single search preference.
type PreferenceOutput struct {
	Body domain.SearchPreference
}

// ListPreferencesOutput lists a user's search preferences.
type ListPreferencesOutput struct {
	Body struct {
		Preferences []domain.SearchPreference `json:"preferences"`
	}
}

// --- Handlers ---

// CreateUser registers a user. An unknown ZIP leaves the location unset.
func (h *UsersHandler) CreateUser(ctx context.Context, input *CreateUserInput) (*UserOutput, error) {
	u, err := h.users.RegisterUser(ctx, input.Body.Email, input.Body.ZIP)
	if err != nil {
		return nil, storeError(err, "user")
	}
	return &UserOutput{Body: *u}, nil
}

// GetUser returns a single user.
func (h *UsersHandler) GetUser(ctx context.Context, input *UserPathInput) (*UserOutput, error) {
	u, err := h.store.GetUser(ctx, input.ID)
	if err != nil {
		return nil, storeError(err, "user")
	}
	return &UserOutput{Body: *u}, nil
}

// SavePreference records a saved or recently used search filter.
func (h *UsersHandler) SavePreference(
	ctx context.Context,
	input *SavePreferenceInput,
) (*PreferenceOutput, error) {
	p := &domain.SearchPreference{
		UserID: input.ID,
		Kind:   domain.PreferenceKind(input.Body.Kind),
		Filter: input.Body.Filter,
	}

	if err := h.users.SavePreference(ctx, p); err != nil {
		if errors.Is(err, engine.ErrInvalidPreference) {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		return nil, storeError(err, "user")
	}
	return &PreferenceOutput{Body: *p}, nil
}

// ListPreferences returns the user's saved and recently used searches.
func (h *UsersHandler) ListPreferences(
	ctx context.Context,
	input *UserPathInput,
) (*ListPreferencesOutput, error) {
	prefs, err := h.store.ListPreferences(ctx, input.ID)
	if err != nil {
		return nil, storeError(err, "preferences")
	}

	resp := &ListPreferencesOutput{}
	resp.Body.Preferences = prefs
	if resp.Body.Preferences == nil {
		resp.Body.Preferences = []domain.SearchPreference{}
	}
	return resp, nil
}

// RegisterUserRoutes registers user endpoints with the Huma API.
func RegisterUserRoutes(api huma.API, h *UsersHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-user",
		Method:        http.MethodPost,
		Path:          "/api/v1/users",
		Summary:       "Register a user",
		Description:   "Creates a user and derives their coordinates from the ZIP code.",
		Tags:          []string{"users"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusConflict},
	}, h.CreateUser)

	huma.Register(api, huma.Operation{
		OperationID: "get-user",
		Method:      http.MethodGet,
		Path:        "/api/v1/users/{id}",
		Summary:     "Get a user by ID",
		Tags:        []string{"users"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetUser)

	huma.Register(api, huma.Operation{
		OperationID:   "save-preference",
		Method:        http.MethodPost,
		Path:          "/api/v1/users/{id}/preferences",
		Summary:       "Save a search preference",
		Description:   "Records a saved search or a recently run one. Only the most recent viewed searches are kept.",
		Tags:          []string{"users"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusUnprocessableEntity},
	}, h.SavePreference)

	huma.Register(api, huma.Operation{
		OperationID: "list-preferences",
		Method:      http.MethodGet,
		Path:        "/api/v1/users/{id}/preferences",
		Summary:     "List search preferences",
		Tags:        []string{"users"},
	}, h.ListPreferences)
}
