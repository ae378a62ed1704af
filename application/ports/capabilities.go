// Package ports declares the capabilities the stores consume. The stores
// never see concrete transport or storage types; infrastructure provides
// the implementations.
package ports

import (
	"context"

	"recipeclient/domain"
)

// AuthAPI exposes the identity endpoints of the backend.
type AuthAPI interface {
	// Register creates an account. It does not log the user in.
	Register(ctx context.Context, username, password string) error

	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, username, password string) (string, error)

	// Logout invalidates the current token server-side.
	Logout(ctx context.Context) error

	// Me resolves the current token into the user it belongs to.
	Me(ctx context.Context) (domain.User, error)
}

// RecipeAPI exposes the recipe endpoints of the backend.
type RecipeAPI interface {
	// List returns the recipes matching the query, in server order.
	List(ctx context.Context, query domain.RecipeQuery) ([]domain.RecipeRecord, error)

	// Categories returns the server-maintained category list.
	Categories(ctx context.Context) ([]string, error)

	// Get retrieves a single recipe by id.
	Get(ctx context.Context, id int64) (domain.RecipeRecord, error)

	// Create stores a new recipe and returns it with its assigned id.
	Create(ctx context.Context, payload domain.RecipeRecord) (domain.RecipeRecord, error)

	// Update replaces an existing recipe and returns the stored version.
	Update(ctx context.Context, id int64, payload domain.RecipeRecord) (domain.RecipeRecord, error)

	// Delete removes a recipe.
	Delete(ctx context.Context, id int64) error

	// PDF downloads the rendered recipe document.
	PDF(ctx context.Context, id int64) ([]byte, error)
}

// FavoritesAPI exposes the per-user favorites endpoints. All calls
// require an authenticated session.
type FavoritesAPI interface {
	// FavoriteIDs returns the ids the current user has favorited.
	FavoriteIDs(ctx context.Context) ([]int64, error)

	// AddFavorite marks a recipe as favorite.
	AddFavorite(ctx context.Context, id int64) error

	// RemoveFavorite unmarks a recipe.
	RemoveFavorite(ctx context.Context, id int64) error
}

// TokenStore is the persistent key-value capability, used solely for the
// session token.
type TokenStore interface {
	Get() (string, error)
	Set(token string) error
	Remove() error
}

// Notifier publishes transient user-visible messages. Implementations
// must be fire-and-forget: publishing never blocks the caller.
type Notifier interface {
	Success(message string)
	Error(message string)
	Info(message string)
}
