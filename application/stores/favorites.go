package stores

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"

	"recipeclient/application/ports"
	pkgerrors "recipeclient/pkg/errors"
)

// FavoritesCoordinator owns the authenticated user's favorite-recipe id
// set. No favorites exist without a verified identity: the set is
// repopulated on login and bootstrap, cleared on logout, and never
// persisted locally.
//
// Toggling is confirmation-first, not optimistic: the local set is only
// mutated after the server has confirmed the add or remove. This costs
// one round trip of latency and buys freedom from rollback handling.
type FavoritesCoordinator struct {
	mu      sync.RWMutex
	ids     map[int64]struct{}
	loading bool

	session  *SessionStore
	api      ports.FavoritesAPI
	notifier ports.Notifier
	log      *zap.Logger
}

// NewFavoritesCoordinator creates an empty coordinator. It reads the
// session store's state and never mutates it.
func NewFavoritesCoordinator(
	session *SessionStore,
	api ports.FavoritesAPI,
	notifier ports.Notifier,
	logger *zap.Logger,
) *FavoritesCoordinator {
	return &FavoritesCoordinator{
		ids:      make(map[int64]struct{}),
		session:  session,
		api:      api,
		notifier: notifier,
		log:      logger,
	}
}

// Load fetches the id set for the current user. Without a verified
// identity it resets to empty and makes no network call. A fetch failure
// also resets to empty: under-reporting favorites beats showing stale
// ones. The loading flag is cleared unconditionally.
func (f *FavoritesCoordinator) Load(ctx context.Context) {
	if f.session.User() == nil {
		f.Clear()
		return
	}

	f.mu.Lock()
	f.loading = true
	f.mu.Unlock()

	ids, err := f.api.FavoriteIDs(ctx)

	f.mu.Lock()
	defer func() {
		f.loading = false
		f.mu.Unlock()
	}()

	if err != nil {
		f.log.Warn("failed to load favorite ids", zap.Error(err))
		f.ids = make(map[int64]struct{})
		return
	}
	// The session may have ended while the call was in flight; the set
	// must stay empty without a user.
	if f.session.User() == nil {
		f.ids = make(map[int64]struct{})
		return
	}
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	f.ids = set
}

// Toggle flips the favorite state of a recipe. Unauthenticated calls emit
// an informational toast and go no further. Otherwise the matching
// add/remove call is issued, and only after server confirmation is the
// local set mutated. On failure the set is exactly as it was before.
func (f *FavoritesCoordinator) Toggle(ctx context.Context, id int64) error {
	if f.session.User() == nil {
		f.notifier.Info("Please log in to manage favorites.")
		return nil
	}

	wasFavorite := f.IsFavorite(id)

	var err error
	if wasFavorite {
		err = f.api.RemoveFavorite(ctx, id)
	} else {
		err = f.api.AddFavorite(ctx, id)
	}
	if err != nil {
		f.notifier.Error(pkgerrors.Message(err, "Failed to update favorites"))
		return err
	}

	f.mu.Lock()
	if f.session.User() == nil {
		// Logged out while the call was in flight; nothing to record.
		f.mu.Unlock()
		return nil
	}
	if wasFavorite {
		delete(f.ids, id)
	} else {
		f.ids[id] = struct{}{}
	}
	f.mu.Unlock()

	if wasFavorite {
		f.notifier.Info("Removed from favorites.")
	} else {
		f.notifier.Success("Added to favorites.")
	}
	return nil
}

// Clear unconditionally resets the set to empty. Called on logout.
func (f *FavoritesCoordinator) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ids = make(map[int64]struct{})
}

// IsFavorite is a pure membership check against the cached set; it never
// triggers a network call.
func (f *FavoritesCoordinator) IsFavorite(id int64) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.ids[id]
	return ok
}

// IDs returns the cached id set in ascending order.
func (f *FavoritesCoordinator) IDs() []int64 {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]int64, 0, len(f.ids))
	for id := range f.ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Loading reports whether a favorites fetch is in flight.
func (f *FavoritesCoordinator) Loading() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.loading
}
