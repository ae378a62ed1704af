// Package backend binds the application ports to the recipe backend's
// HTTP endpoints over the shared transport.
package backend

import (
	"context"
	"net/http"

	"recipeclient/domain"
	"recipeclient/infrastructure/transport"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// AuthAPI implements ports.AuthAPI against the /auth endpoints.
type AuthAPI struct {
	t *transport.Client
}

// NewAuthAPI creates the identity endpoint binding.
func NewAuthAPI(t *transport.Client) *AuthAPI {
	return &AuthAPI{t: t}
}

// Register creates an account. The backend responds with an opaque
// success body that is discarded.
func (a *AuthAPI) Register(ctx context.Context, username, password string) error {
	return a.t.Request(ctx, http.MethodPost, "/auth/register", credentials{username, password}, nil)
}

// Login exchanges credentials for a bearer token.
func (a *AuthAPI) Login(ctx context.Context, username, password string) (string, error) {
	var res loginResponse
	if err := a.t.Request(ctx, http.MethodPost, "/auth/login", credentials{username, password}, &res); err != nil {
		return "", err
	}
	return res.Token, nil
}

// Logout invalidates the current token server-side.
func (a *AuthAPI) Logout(ctx context.Context) error {
	return a.t.Request(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

// Me resolves the current token into the user it belongs to.
func (a *AuthAPI) Me(ctx context.Context) (domain.User, error) {
	var user domain.User
	err := a.t.Request(ctx, http.MethodGet, "/auth/me", nil, &user)
	return user, err
}
