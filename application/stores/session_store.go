// Package stores contains the client-side state: the session, the recipe
// cache, and the favorites set. Each store owns its state exclusively;
// other components call actions, never reach into fields. Network calls
// happen outside the lock, and every mutation that follows one re-checks
// its precondition first.
package stores

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"recipeclient/application/ports"
	"recipeclient/domain"
	"recipeclient/pkg/auth"
	pkgerrors "recipeclient/pkg/errors"
)

// SessionStore owns the auth token and the verified user identity.
type SessionStore struct {
	mu      sync.RWMutex
	token   string
	user    *domain.User
	loading bool
	lastErr string

	api       ports.AuthAPI
	persisted ports.TokenStore
	keeper    *auth.Keeper
	notifier  ports.Notifier
	log       *zap.Logger
}

// NewSessionStore creates a session store. The keeper is the in-memory
// token the transport reads; the persisted store survives restarts.
func NewSessionStore(
	api ports.AuthAPI,
	persisted ports.TokenStore,
	keeper *auth.Keeper,
	notifier ports.Notifier,
	logger *zap.Logger,
) *SessionStore {
	return &SessionStore{
		api:       api,
		persisted: persisted,
		keeper:    keeper,
		notifier:  notifier,
		log:       logger,
	}
}

// Restore loads the persisted token as the current one without marking
// the user verified. A read failure is treated as "no token".
func (s *SessionStore) Restore() {
	token, err := s.persisted.Get()
	if err != nil {
		s.log.Warn("failed to read persisted token", zap.Error(err))
		return
	}
	if token == "" {
		return
	}

	s.mu.Lock()
	s.token = token
	s.user = nil
	s.mu.Unlock()
	s.keeper.Set(token)
}

// SetToken replaces the current token. Non-empty tokens are persisted;
// clearing the token removes the persisted value.
func (s *SessionStore) SetToken(token string) {
	s.mu.Lock()
	s.token = token
	if token == "" {
		s.user = nil
	}
	s.mu.Unlock()
	s.keeper.Set(token)

	if token != "" {
		if err := s.persisted.Set(token); err != nil {
			s.log.Warn("failed to persist token", zap.Error(err))
		}
		return
	}
	if err := s.persisted.Remove(); err != nil {
		s.log.Warn("failed to remove persisted token", zap.Error(err))
	}
}

// Verify confirms the current token against the backend and stores the
// resulting user. Without a token it clears the user and returns without
// a network call. On any failure the token is evicted - never retried -
// and an informational toast tells the user to log in again.
func (s *SessionStore) Verify(ctx context.Context) {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()

	if token == "" {
		s.mu.Lock()
		s.user = nil
		s.mu.Unlock()
		return
	}

	user, err := s.api.Me(ctx)
	if err != nil {
		s.log.Info("session verification failed, evicting token", zap.Error(err))
		s.SetToken("")
		s.notifier.Info("Session expired, please log in again.")
		return
	}

	s.mu.Lock()
	// The token may have been cleared while the call was in flight; a
	// verified user must never outlive its token.
	if s.token == token {
		s.user = &user
	}
	s.mu.Unlock()
}

// Login authenticates and, on success, stores the token and verifies it
// to populate the user. On failure the prior session state is untouched:
// the token is only set after the login call has succeeded.
func (s *SessionStore) Login(ctx context.Context, username, password string) error {
	s.beginAction()
	defer s.endAction()

	token, err := s.api.Login(ctx, username, password)
	if err != nil {
		msg := pkgerrors.Message(err, "Login failed")
		s.setLastError(msg)
		s.notifier.Error(msg)
		return err
	}

	s.SetToken(token)
	s.Verify(ctx)
	return nil
}

// Register creates an account without logging in.
func (s *SessionStore) Register(ctx context.Context, username, password string) error {
	s.beginAction()
	defer s.endAction()

	if err := s.api.Register(ctx, username, password); err != nil {
		msg := pkgerrors.Message(err, "Registration failed")
		s.setLastError(msg)
		s.notifier.Error(msg)
		return err
	}
	return nil
}

// RegisterAndLogin registers and then logs in. A registration failure
// never attempts the login.
func (s *SessionStore) RegisterAndLogin(ctx context.Context, username, password string) error {
	if err := s.Register(ctx, username, password); err != nil {
		return err
	}
	return s.Login(ctx, username, password)
}

// Logout best-effort invalidates the token server-side and always tears
// down the local session. The remote failure is logged, not surfaced:
// local teardown must proceed regardless.
func (s *SessionStore) Logout(ctx context.Context) {
	s.beginAction()
	defer s.endAction()

	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()

	if token != "" {
		if err := s.api.Logout(ctx); err != nil {
			s.log.Warn("remote token invalidation failed", zap.Error(err))
		}
	}
	s.SetToken("")
}

// IsLoggedIn reports whether a token is present. This is weaker than a
// verified identity; callers needing one must check User.
func (s *SessionStore) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// Token returns the current token, verified or not.
func (s *SessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the verified identity, or nil while unverified.
func (s *SessionStore) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Session returns a snapshot of the current session.
func (s *SessionStore) Session() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.Session{Token: s.token, User: s.user}
}

// Loading reports whether an auth action is in flight.
func (s *SessionStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// LastError returns the message of the most recent failed auth action.
func (s *SessionStore) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

func (s *SessionStore) beginAction() {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()
}

func (s *SessionStore) endAction() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

func (s *SessionStore) setLastError(msg string) {
	s.mu.Lock()
	s.lastErr = msg
	s.mu.Unlock()
}
