// Package notify implements the transient notification channel the
// stores publish user feedback to. Toasts expire on their own; consumers
// only ever read the active set.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Type classifies a toast.
type Type string

const (
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeInfo    Type = "info"
)

// DefaultTimeout is applied when Push is called with a zero timeout.
const DefaultTimeout = 2600 * time.Millisecond

// Toast is one active notification.
type Toast struct {
	ID      string
	Type    Type
	Message string
	Timeout time.Duration
}

// Channel owns the active toast collection. Push is fire-and-forget;
// each toast removes itself after its timeout. Safe for concurrent use.
type Channel struct {
	mu     sync.Mutex
	toasts []Toast
	timers map[string]*time.Timer
	log    *zap.Logger
}

// NewChannel creates an empty notification channel.
func NewChannel(logger *zap.Logger) *Channel {
	return &Channel{
		timers: make(map[string]*time.Timer),
		log:    logger,
	}
}

// Push publishes a toast and schedules its removal. It returns the toast
// id immediately without waiting for display or expiry.
func (c *Channel) Push(typ Type, message string, timeout time.Duration) string {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	item := Toast{
		ID:      uuid.New().String(),
		Type:    typ,
		Message: message,
		Timeout: timeout,
	}

	c.mu.Lock()
	c.toasts = append(c.toasts, item)
	c.timers[item.ID] = time.AfterFunc(timeout, func() {
		c.Remove(item.ID)
	})
	c.mu.Unlock()

	c.log.Debug("toast published",
		zap.String("id", item.ID),
		zap.String("type", string(typ)),
		zap.String("message", message),
	)
	return item.ID
}

// Success publishes a success toast with the default timeout.
func (c *Channel) Success(message string) {
	c.Push(TypeSuccess, message, 0)
}

// Error publishes an error toast with the default timeout.
func (c *Channel) Error(message string) {
	c.Push(TypeError, message, 0)
}

// Info publishes an info toast with the default timeout.
func (c *Channel) Info(message string) {
	c.Push(TypeInfo, message, 0)
}

// Remove drops a toast by id. Removing an unknown id is a no-op.
func (c *Channel) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if timer, ok := c.timers[id]; ok {
		timer.Stop()
		delete(c.timers, id)
	}
	for i, t := range c.toasts {
		if t.ID == id {
			c.toasts = append(c.toasts[:i], c.toasts[i+1:]...)
			return
		}
	}
}

// Clear empties the active set and cancels all pending removals.
func (c *Channel) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for id, timer := range c.timers {
		timer.Stop()
		delete(c.timers, id)
	}
	c.toasts = nil
}

// Active returns the current toasts in insertion order, oldest first.
func (c *Channel) Active() []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Toast, len(c.toasts))
	copy(out, c.toasts)
	return out
}
