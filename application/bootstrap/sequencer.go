// Package bootstrap orchestrates the couplings between the session store
// and the favorites coordinator. The session store never calls into
// favorites itself; the sequencer owns that ordering, so the dependency
// graph stays leaf-first.
package bootstrap

import (
	"context"

	"go.uber.org/zap"

	"recipeclient/application/stores"
)

// Sequencer wires session lifecycle events to the favorites cache.
type Sequencer struct {
	session   *stores.SessionStore
	favorites *stores.FavoritesCoordinator
	log       *zap.Logger
}

// NewSequencer creates the orchestrator.
func NewSequencer(
	session *stores.SessionStore,
	favorites *stores.FavoritesCoordinator,
	logger *zap.Logger,
) *Sequencer {
	return &Sequencer{
		session:   session,
		favorites: favorites,
		log:       logger,
	}
}

// Start runs the process-startup sequence: restore the persisted token,
// verify it, and only then - verification may have evicted the token -
// prime the favorites set. Favorites are never fetched on the strength of
// a token string that has not been verified this lifetime.
func (s *Sequencer) Start(ctx context.Context) {
	s.session.Restore()
	if !s.session.IsLoggedIn() {
		return
	}

	s.session.Verify(ctx)
	if s.session.User() == nil {
		return
	}

	s.log.Debug("session restored", zap.String("username", s.session.User().Username))
	s.favorites.Load(ctx)
}

// Login authenticates and re-primes the favorites set on success.
func (s *Sequencer) Login(ctx context.Context, username, password string) error {
	if err := s.session.Login(ctx, username, password); err != nil {
		return err
	}
	s.favorites.Load(ctx)
	return nil
}

// RegisterAndLogin registers, logs in, and primes favorites, stopping at
// the first failure.
func (s *Sequencer) RegisterAndLogin(ctx context.Context, username, password string) error {
	if err := s.session.RegisterAndLogin(ctx, username, password); err != nil {
		return err
	}
	s.favorites.Load(ctx)
	return nil
}

// Logout tears down the session and clears the favorites cache.
func (s *Sequencer) Logout(ctx context.Context) {
	s.session.Logout(ctx)
	s.favorites.Clear()
}
