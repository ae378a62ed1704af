package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"recipeclient/domain"
	"recipeclient/infrastructure/transport"
)

// RecipeAPI implements ports.RecipeAPI and ports.FavoritesAPI against the
// /rezeptapp endpoints.
type RecipeAPI struct {
	t *transport.Client
}

// NewRecipeAPI creates the recipe endpoint binding.
func NewRecipeAPI(t *transport.Client) *RecipeAPI {
	return &RecipeAPI{t: t}
}

// List returns the recipes matching the query, in server order.
func (a *RecipeAPI) List(ctx context.Context, query domain.RecipeQuery) ([]domain.RecipeRecord, error) {
	path := "/rezeptapp"
	if !query.IsZero() {
		params := url.Values{}
		if query.Search != "" {
			params.Set("search", query.Search)
		}
		if query.Category != "" {
			params.Set("category", query.Category)
		}
		path += "?" + params.Encode()
	}

	var items []domain.RecipeRecord
	if err := a.t.Request(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Categories returns the server-maintained category list.
func (a *RecipeAPI) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := a.t.Request(ctx, http.MethodGet, "/rezeptapp/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Get retrieves a single recipe by id.
func (a *RecipeAPI) Get(ctx context.Context, id int64) (domain.RecipeRecord, error) {
	var record domain.RecipeRecord
	err := a.t.Request(ctx, http.MethodGet, fmt.Sprintf("/rezeptapp/%d", id), nil, &record)
	return record, err
}

// Create stores a new recipe and returns it with its assigned id.
func (a *RecipeAPI) Create(ctx context.Context, payload domain.RecipeRecord) (domain.RecipeRecord, error) {
	var record domain.RecipeRecord
	err := a.t.Request(ctx, http.MethodPost, "/rezeptapp", payload, &record)
	return record, err
}

// Update replaces an existing recipe and returns the stored version.
func (a *RecipeAPI) Update(ctx context.Context, id int64, payload domain.RecipeRecord) (domain.RecipeRecord, error) {
	var record domain.RecipeRecord
	err := a.t.Request(ctx, http.MethodPut, fmt.Sprintf("/rezeptapp/%d", id), payload, &record)
	return record, err
}

// Delete removes a recipe.
func (a *RecipeAPI) Delete(ctx context.Context, id int64) error {
	return a.t.Request(ctx, http.MethodDelete, fmt.Sprintf("/rezeptapp/%d", id), nil, nil)
}

// PDF downloads the rendered recipe document as raw bytes.
func (a *RecipeAPI) PDF(ctx context.Context, id int64) ([]byte, error) {
	return a.t.Download(ctx, fmt.Sprintf("/rezeptapp/%d/pdf", id))
}

// FavoriteIDs returns the ids the current user has favorited.
func (a *RecipeAPI) FavoriteIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	if err := a.t.Request(ctx, http.MethodGet, "/rezeptapp/favorites/ids", nil, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// AddFavorite marks a recipe as favorite for the current user.
func (a *RecipeAPI) AddFavorite(ctx context.Context, id int64) error {
	return a.t.Request(ctx, http.MethodPost, fmt.Sprintf("/rezeptapp/%d/favorite", id), nil, nil)
}

// RemoveFavorite unmarks a recipe for the current user.
func (a *RecipeAPI) RemoveFavorite(ctx context.Context, id int64) error {
	return a.t.Request(ctx, http.MethodDelete, fmt.Sprintf("/rezeptapp/%d/favorite", id), nil, nil)
}
