package stores

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"

	"recipeclient/application/ports"
	"recipeclient/domain"
	"recipeclient/domain/validators"
	pkgerrors "recipeclient/pkg/errors"
)

// RecipeCache owns the in-memory recipe collection, the category list,
// and the last-used query. Recipes are public read data; no session is
// required.
//
// Loads are not cancelled when superseded: when two loads overlap, the
// response that resolves last wins, whatever order the requests were
// issued in. This is a deliberate trade against cancellation complexity.
type RecipeCache struct {
	mu         sync.RWMutex
	items      []domain.RecipeRecord
	categories []string
	selected   *domain.RecipeRecord
	lastQuery  domain.RecipeQuery
	loading    bool
	lastErr    string

	api       ports.RecipeAPI
	validator *validators.RecipeValidator
	notifier  ports.Notifier
	log       *zap.Logger
}

// NewRecipeCache creates an empty recipe cache.
func NewRecipeCache(
	api ports.RecipeAPI,
	validator *validators.RecipeValidator,
	notifier ports.Notifier,
	logger *zap.Logger,
) *RecipeCache {
	return &RecipeCache{
		api:       api,
		validator: validator,
		notifier:  notifier,
		log:       logger,
	}
}

// LoadCategories fetches the server-maintained category list. On failure
// the list is reset to empty; the next successful LoadRecipes repopulates
// it from the fetched items.
func (c *RecipeCache) LoadCategories(ctx context.Context) {
	categories, err := c.api.Categories(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.log.Warn("failed to load categories", zap.Error(err))
		c.categories = nil
		c.lastErr = pkgerrors.Message(err, "Failed to load categories")
		return
	}
	c.categories = categories
}

// LoadRecipes replaces the stored query and fetches the matching
// collection. Success replaces items wholesale so no entry from a prior
// filter survives; when the category list is empty it is derived from
// the fetched items. Failure empties the collection and records the
// message. The loading flag is cleared on every path.
func (c *RecipeCache) LoadRecipes(ctx context.Context, query domain.RecipeQuery) {
	c.mu.Lock()
	c.lastQuery = query
	c.loading = true
	c.lastErr = ""
	c.mu.Unlock()

	items, err := c.api.List(ctx, query)

	c.mu.Lock()
	defer func() {
		c.loading = false
		c.mu.Unlock()
	}()

	if err != nil {
		c.items = nil
		c.lastErr = pkgerrors.Message(err, "Failed to load recipes")
		return
	}
	c.items = items
	if len(c.categories) == 0 {
		// Derived inside the same critical section as the assignment so
		// the fallback can never reflect a stale snapshot.
		c.categories = deriveCategories(items)
	}
}

// Refresh re-issues the load with the stored query. Used after an
// external mutation.
func (c *RecipeCache) Refresh(ctx context.Context) {
	c.mu.RLock()
	query := c.lastQuery
	c.mu.RUnlock()
	c.LoadRecipes(ctx, query)
}

// LoadRecipe fetches a single record into the selected slot.
func (c *RecipeCache) LoadRecipe(ctx context.Context, id int64) {
	c.mu.Lock()
	c.loading = true
	c.lastErr = ""
	c.mu.Unlock()

	record, err := c.api.Get(ctx, id)

	c.mu.Lock()
	defer func() {
		c.loading = false
		c.mu.Unlock()
	}()

	if err != nil {
		c.lastErr = pkgerrors.Message(err, "Failed to load recipe")
		return
	}
	c.selected = &record
}

// Create validates and stores a new recipe. Success inserts it at the
// front of the collection; failure leaves the collection untouched,
// emits an error toast, and returns the error so the caller can keep the
// form open.
func (c *RecipeCache) Create(ctx context.Context, payload domain.RecipeRecord) (domain.RecipeRecord, error) {
	if err := c.validator.ValidatePayload(payload); err != nil {
		return domain.RecipeRecord{}, c.failMutation(err, "Failed to create recipe")
	}

	c.beginMutation()
	created, err := c.api.Create(ctx, payload)
	c.endMutation()
	if err != nil {
		return domain.RecipeRecord{}, c.failMutation(err, "Failed to create recipe")
	}

	c.mu.Lock()
	c.items = append([]domain.RecipeRecord{created}, c.items...)
	c.mu.Unlock()
	return created, nil
}

// Update validates and replaces an existing recipe. Success swaps the
// record in place by id, and also the selected record when it matches.
func (c *RecipeCache) Update(ctx context.Context, id int64, payload domain.RecipeRecord) (domain.RecipeRecord, error) {
	if err := c.validator.ValidatePayload(payload); err != nil {
		return domain.RecipeRecord{}, c.failMutation(err, "Failed to save recipe")
	}

	c.beginMutation()
	updated, err := c.api.Update(ctx, id, payload)
	c.endMutation()
	if err != nil {
		return domain.RecipeRecord{}, c.failMutation(err, "Failed to save recipe")
	}

	c.mu.Lock()
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i] = updated
			break
		}
	}
	if c.selected != nil && c.selected.ID == id {
		c.selected = &updated
	}
	c.mu.Unlock()
	return updated, nil
}

// Delete removes a recipe. Success removes it from the collection and
// clears the selected record when it was the one deleted.
func (c *RecipeCache) Delete(ctx context.Context, id int64) error {
	c.beginMutation()
	err := c.api.Delete(ctx, id)
	c.endMutation()
	if err != nil {
		return c.failMutation(err, "Failed to delete recipe")
	}

	c.mu.Lock()
	kept := c.items[:0]
	for _, item := range c.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	c.items = kept
	if c.selected != nil && c.selected.ID == id {
		c.selected = nil
	}
	c.mu.Unlock()
	return nil
}

// PDF downloads the rendered document for a recipe. Pure pass-through;
// no cache state is involved beyond error feedback.
func (c *RecipeCache) PDF(ctx context.Context, id int64) ([]byte, error) {
	data, err := c.api.PDF(ctx, id)
	if err != nil {
		c.notifier.Error(pkgerrors.Message(err, "PDF download failed"))
		return nil, err
	}
	return data, nil
}

// Items returns the current collection, in server order.
func (c *RecipeCache) Items() []domain.RecipeRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.RecipeRecord, len(c.items))
	copy(out, c.items)
	return out
}

// Categories returns the current category list.
func (c *RecipeCache) Categories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// Selected returns the record loaded by LoadRecipe, or nil.
func (c *RecipeCache) Selected() *domain.RecipeRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.selected == nil {
		return nil
	}
	record := *c.selected
	return &record
}

// LastQuery returns the query behind the current collection.
func (c *RecipeCache) LastQuery() domain.RecipeQuery {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastQuery
}

// Loading reports whether a load or mutation is in flight.
func (c *RecipeCache) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// LastError returns the message of the most recent failure.
func (c *RecipeCache) LastError() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastErr
}

func (c *RecipeCache) beginMutation() {
	c.mu.Lock()
	c.loading = true
	c.lastErr = ""
	c.mu.Unlock()
}

func (c *RecipeCache) endMutation() {
	c.mu.Lock()
	c.loading = false
	c.mu.Unlock()
}

// failMutation records the failure, notifies the user, and hands the
// error back for the caller to act on.
func (c *RecipeCache) failMutation(err error, fallback string) error {
	msg := pkgerrors.Message(err, fallback)
	c.mu.Lock()
	c.lastErr = msg
	c.mu.Unlock()
	c.notifier.Error(msg)
	return err
}

// deriveCategories deduplicates the non-empty category fields of items
// and sorts them lexicographically.
func deriveCategories(items []domain.RecipeRecord) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, item := range items {
		if item.Category == "" {
			continue
		}
		if _, ok := seen[item.Category]; ok {
			continue
		}
		seen[item.Category] = struct{}{}
		out = append(out, item.Category)
	}
	sort.Strings(out)
	return out
}
