// Package auth holds the in-process credential state shared between the
// session store (which owns the token lifecycle) and the transport
// (which attaches it to outgoing requests). Splitting the holder out
// keeps the dependency one-directional: neither side imports the other.
package auth

import "sync"

// Keeper holds the current bearer token. Safe for concurrent use.
type Keeper struct {
	mu    sync.RWMutex
	token string
}

// NewKeeper creates an empty token keeper.
func NewKeeper() *Keeper {
	return &Keeper{}
}

// Set replaces the current token. An empty value clears it.
func (k *Keeper) Set(token string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.token = token
}

// Token returns the current token, or "" when none is held.
func (k *Keeper) Token() string {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.token
}

// Clear drops the current token.
func (k *Keeper) Clear() {
	k.Set("")
}
