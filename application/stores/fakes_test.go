package stores

import (
	"context"
	"sync"

	"recipeclient/domain"
	pkgerrors "recipeclient/pkg/errors"
)

// fakeAuthAPI scripts the identity endpoints.
type fakeAuthAPI struct {
	mu           sync.Mutex
	loginToken   string
	loginErr     error
	registerErr  error
	logoutErr    error
	meUser       domain.User
	meErr        error
	logoutCalls  int
	loginCalls   int
	meCalls      int
	registerLog  []string
}

func (f *fakeAuthAPI) Register(ctx context.Context, username, password string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registerLog = append(f.registerLog, username)
	return f.registerErr
}

func (f *fakeAuthAPI) Login(ctx context.Context, username, password string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loginCalls++
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return f.loginToken, nil
}

func (f *fakeAuthAPI) Logout(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logoutCalls++
	return f.logoutErr
}

func (f *fakeAuthAPI) Me(ctx context.Context) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.meCalls++
	if f.meErr != nil {
		return domain.User{}, f.meErr
	}
	return f.meUser, nil
}

// fakeTokenStore is an in-memory ports.TokenStore.
type fakeTokenStore struct {
	mu    sync.Mutex
	token string
}

func (f *fakeTokenStore) Get() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token, nil
}

func (f *fakeTokenStore) Set(token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = token
	return nil
}

func (f *fakeTokenStore) Remove() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = ""
	return nil
}

// fakeNotifier records published toasts by type.
type fakeNotifier struct {
	mu       sync.Mutex
	success  []string
	errors   []string
	infos    []string
}

func (f *fakeNotifier) Success(message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.success = append(f.success, message)
}

func (f *fakeNotifier) Error(message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errors = append(f.errors, message)
}

func (f *fakeNotifier) Info(message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.infos = append(f.infos, message)
}

func (f *fakeNotifier) infoCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.infos)
}

func (f *fakeNotifier) errorCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.errors)
}

// fakeRecipeAPI scripts the recipe and favorites endpoints. The listFn
// hook lets a test decide, per call, when and with what to respond.
type fakeRecipeAPI struct {
	mu            sync.Mutex
	listFn        func(query domain.RecipeQuery) ([]domain.RecipeRecord, error)
	categories    []string
	categoriesErr error
	getRecord     domain.RecipeRecord
	getErr        error
	createFn      func(payload domain.RecipeRecord) (domain.RecipeRecord, error)
	updateFn      func(id int64, payload domain.RecipeRecord) (domain.RecipeRecord, error)
	deleteErr     error
	pdfData       []byte
	pdfErr        error

	favoriteIDs  []int64
	favoritesErr error
	addErr       error
	removeErr    error
	addCalls     []int64
	removeCalls  []int64
}

func (f *fakeRecipeAPI) List(ctx context.Context, query domain.RecipeQuery) ([]domain.RecipeRecord, error) {
	if f.listFn != nil {
		return f.listFn(query)
	}
	return nil, nil
}

func (f *fakeRecipeAPI) Categories(ctx context.Context) ([]string, error) {
	if f.categoriesErr != nil {
		return nil, f.categoriesErr
	}
	return f.categories, nil
}

func (f *fakeRecipeAPI) Get(ctx context.Context, id int64) (domain.RecipeRecord, error) {
	return f.getRecord, f.getErr
}

func (f *fakeRecipeAPI) Create(ctx context.Context, payload domain.RecipeRecord) (domain.RecipeRecord, error) {
	if f.createFn != nil {
		return f.createFn(payload)
	}
	return payload, nil
}

func (f *fakeRecipeAPI) Update(ctx context.Context, id int64, payload domain.RecipeRecord) (domain.RecipeRecord, error) {
	if f.updateFn != nil {
		return f.updateFn(id, payload)
	}
	payload.ID = id
	return payload, nil
}

func (f *fakeRecipeAPI) Delete(ctx context.Context, id int64) error {
	return f.deleteErr
}

func (f *fakeRecipeAPI) PDF(ctx context.Context, id int64) ([]byte, error) {
	return f.pdfData, f.pdfErr
}

func (f *fakeRecipeAPI) FavoriteIDs(ctx context.Context) ([]int64, error) {
	if f.favoritesErr != nil {
		return nil, f.favoritesErr
	}
	return f.favoriteIDs, nil
}

func (f *fakeRecipeAPI) AddFavorite(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.addErr != nil {
		return f.addErr
	}
	f.addCalls = append(f.addCalls, id)
	return nil
}

func (f *fakeRecipeAPI) RemoveFavorite(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.removeErr != nil {
		return f.removeErr
	}
	f.removeCalls = append(f.removeCalls, id)
	return nil
}

func apiFailure(status int, message string) error {
	return pkgerrors.NewAPIError(status, message)
}
