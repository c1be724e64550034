package session

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/flight-booking/flight-booking-client/internal/infrastructure/logger"
)

// TokenKey is the local storage key holding the access credential.
const TokenKey = "accessToken"

// sharedReadTimeout bounds a token re-read from a shared store.
const sharedReadTimeout = 2 * time.Second

// SharedStore is a Store other processes write too. A Context over a shared
// store re-reads the token on every access instead of keeping a copy.
type SharedStore interface {
	Store
	Shared() bool
}

// Context is the process-wide session. It is the only reader and writer of
// the credential token; the API client and the guard both go through it.
type Context struct {
	store  Store
	shared bool
	log    *logger.Logger

	mu    sync.RWMutex
	token string

	// rejected is the last token cleared here; a shared store that failed
	// to delete it must not hand it back.
	rejected string
}

// NewContext creates an anonymous session over store. Call Init to load a
// previously persisted token.
func NewContext(store Store, log *logger.Logger) *Context {
	if log == nil {
		log = logger.Nop()
	}
	shared, ok := store.(SharedStore)
	return &Context{
		store:  store,
		shared: ok && shared.Shared(),
		log:    log.WithComponent("session"),
	}
}

// Init loads the persisted token, if any.
func (c *Context) Init(ctx context.Context) error {
	token, ok, err := c.store.Get(ctx, TokenKey)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	c.mu.Lock()
	if ok {
		c.token = token
	} else {
		c.token = ""
	}
	c.mu.Unlock()

	c.log.Debug().Bool("authenticated", ok && token != "").Msg("session loaded")
	return nil
}

// Token returns the current credential, or "" when anonymous.
func (c *Context) Token() string {
	if c.shared {
		return c.readThrough()
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// readThrough refreshes the token from the shared store. A failed read keeps
// the last known value.
func (c *Context) readThrough() string {
	ctx, cancel := context.WithTimeout(context.Background(), sharedReadTimeout)
	defer cancel()

	token, ok, err := c.store.Get(ctx, TokenKey)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.log.Warn().Err(err).Msg("failed to re-read shared session")
		return c.token
	}
	if !ok || token == c.rejected {
		token = ""
	}
	c.token = token
	return token
}

// IsAuthenticated reports token presence only. Expiry is the API's call.
func (c *Context) IsAuthenticated() bool {
	return c.Token() != ""
}

// Login persists a newly issued token.
func (c *Context) Login(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("store session: empty token")
	}
	if err := c.store.Set(ctx, TokenKey, token); err != nil {
		return fmt.Errorf("store session: %w", err)
	}

	c.mu.Lock()
	c.token = token
	c.rejected = ""
	c.mu.Unlock()

	c.log.Info().Msg("session started")
	return nil
}

// Logout clears the token.
func (c *Context) Logout(ctx context.Context) error {
	if err := c.clear(ctx); err != nil {
		return err
	}
	c.log.Info().Msg("session ended")
	return nil
}

// Expire clears a token the API has rejected.
func (c *Context) Expire(ctx context.Context) error {
	if err := c.clear(ctx); err != nil {
		return err
	}
	c.log.Warn().Msg("session expired")
	return nil
}

// clear drops the in-memory token before touching the store so a failing
// backend never leaves a rejected token in use.
func (c *Context) clear(ctx context.Context) error {
	c.mu.Lock()
	if c.token != "" {
		c.rejected = c.token
	}
	c.token = ""
	c.mu.Unlock()

	if err := c.store.Delete(ctx, TokenKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
