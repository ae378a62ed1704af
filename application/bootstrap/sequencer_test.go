package bootstrap

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"recipeclient/application/stores"
	"recipeclient/domain"
	"recipeclient/pkg/auth"
	pkgerrors "recipeclient/pkg/errors"
)

type scriptedAuthAPI struct {
	token   string
	user    domain.User
	meErr   error
	meCalls int
}

func (s *scriptedAuthAPI) Register(ctx context.Context, username, password string) error {
	return nil
}

func (s *scriptedAuthAPI) Login(ctx context.Context, username, password string) (string, error) {
	return s.token, nil
}

func (s *scriptedAuthAPI) Logout(ctx context.Context) error { return nil }

func (s *scriptedAuthAPI) Me(ctx context.Context) (domain.User, error) {
	s.meCalls++
	if s.meErr != nil {
		return domain.User{}, s.meErr
	}
	return s.user, nil
}

type scriptedFavoritesAPI struct {
	ids       []int64
	loadCalls int
}

func (s *scriptedFavoritesAPI) FavoriteIDs(ctx context.Context) ([]int64, error) {
	s.loadCalls++
	return s.ids, nil
}

func (s *scriptedFavoritesAPI) AddFavorite(ctx context.Context, id int64) error {
	s.ids = append(s.ids, id)
	return nil
}

func (s *scriptedFavoritesAPI) RemoveFavorite(ctx context.Context, id int64) error {
	kept := s.ids[:0]
	for _, existing := range s.ids {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	s.ids = kept
	return nil
}

type memTokenStore struct{ token string }

func (m *memTokenStore) Get() (string, error)      { return m.token, nil }
func (m *memTokenStore) Set(token string) error    { m.token = token; return nil }
func (m *memTokenStore) Remove() error             { m.token = ""; return nil }

type countingNotifier struct {
	infos, errors, successes int
}

func (n *countingNotifier) Success(string) { n.successes++ }
func (n *countingNotifier) Error(string)   { n.errors++ }
func (n *countingNotifier) Info(string)    { n.infos++ }

func newFixture(authAPI *scriptedAuthAPI, favAPI *scriptedFavoritesAPI, persisted *memTokenStore) (*Sequencer, *stores.SessionStore, *stores.FavoritesCoordinator) {
	logger := zap.NewNop()
	notifier := &countingNotifier{}
	keeper := auth.NewKeeper()
	session := stores.NewSessionStore(authAPI, persisted, keeper, notifier, logger)
	favorites := stores.NewFavoritesCoordinator(session, favAPI, notifier, logger)
	return NewSequencer(session, favorites, logger), session, favorites
}

func TestStartWithoutPersistedTokenMakesNoCalls(t *testing.T) {
	authAPI := &scriptedAuthAPI{}
	favAPI := &scriptedFavoritesAPI{}
	seq, session, _ := newFixture(authAPI, favAPI, &memTokenStore{})

	seq.Start(context.Background())

	assert.Zero(t, authAPI.meCalls)
	assert.Zero(t, favAPI.loadCalls)
	assert.False(t, session.IsLoggedIn())
}

func TestStartWithValidTokenPrimesFavorites(t *testing.T) {
	authAPI := &scriptedAuthAPI{user: domain.User{ID: 1, Username: "alice"}}
	favAPI := &scriptedFavoritesAPI{ids: []int64{4, 2}}
	seq, session, favorites := newFixture(authAPI, favAPI, &memTokenStore{token: "valid"})

	seq.Start(context.Background())

	require.NotNil(t, session.User())
	assert.Equal(t, 1, favAPI.loadCalls)
	assert.Equal(t, []int64{2, 4}, favorites.IDs())
}

// Verification may evict the token; the favorites load must respect the
// post-verification state, not the pre-verification token presence.
func TestStartWithInvalidTokenSkipsFavorites(t *testing.T) {
	authAPI := &scriptedAuthAPI{meErr: pkgerrors.NewAPIError(http.StatusUnauthorized, "expired")}
	favAPI := &scriptedFavoritesAPI{ids: []int64{4}}
	persisted := &memTokenStore{token: "stale"}
	seq, session, favorites := newFixture(authAPI, favAPI, persisted)

	seq.Start(context.Background())

	assert.Equal(t, 1, authAPI.meCalls)
	assert.Zero(t, favAPI.loadCalls, "favorites must wait for verification")
	assert.False(t, session.IsLoggedIn())
	assert.Empty(t, favorites.IDs())
	assert.Empty(t, persisted.token)
}

func TestLoginToggleLogoutClearsFavorites(t *testing.T) {
	authAPI := &scriptedAuthAPI{token: "tok", user: domain.User{ID: 1, Username: "alice"}}
	favAPI := &scriptedFavoritesAPI{}
	seq, session, favorites := newFixture(authAPI, favAPI, &memTokenStore{})
	ctx := context.Background()

	require.NoError(t, seq.Login(ctx, "alice", "pw"))
	require.NoError(t, favorites.Toggle(ctx, 5))
	assert.True(t, favorites.IsFavorite(5))

	seq.Logout(ctx)

	assert.False(t, favorites.IsFavorite(5))
	assert.Empty(t, favorites.IDs())
	assert.Nil(t, session.User())
	assert.False(t, session.IsLoggedIn())
}
