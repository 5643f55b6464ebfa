// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/health-portal/internal/adapter"
	"github.com/MKhiriev/health-portal/internal/config"
	"github.com/MKhiriev/health-portal/internal/logger"
	"github.com/sethvargo/go-retry"
)

// ConnectionState is the lifecycle state of the remote store connection.
type ConnectionState int32

const (
	// StateUnestablished is the initial state: no connection was attempted yet.
	StateUnestablished ConnectionState = iota

	// StateConnected means a liveness check succeeded and the handle is cached.
	StateConnected

	// StateFailed means the last attempt exhausted its retries, the store is
	// not configured, or a connected handle reported a connectivity fault.
	StateFailed
)

// String returns the lower-case name of the state.
// It implements the [fmt.Stringer] interface.
func (s ConnectionState) String() string {
	switch s {
	case StateUnestablished:
		return "unestablished"
	case StateConnected:
		return "connected"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("ConnectionState(%d)", int32(s))
	}
}

// AdapterFactory builds a document store handle from its configuration.
type AdapterFactory func(cfg config.Cloudant, logger *logger.Logger) (adapter.DocumentStore, error)

type connection struct {
	docs adapter.DocumentStore
}

// Connector owns the process-wide connection to the remote document store.
//
// The handle is established lazily on first use and cached. Reads of an
// established handle are lock-free; establishing or dropping it is
// serialized so concurrent callers never start duplicate attempts. A failed
// attempt is not cached forever: after cfg.ReconnectCooldown the next access
// tries again, so a recovering store becomes usable without a restart.
type Connector struct {
	cfg        config.Cloudant
	newAdapter AdapterFactory
	logger     *logger.Logger

	handle atomic.Pointer[connection]
	state  atomic.Int32

	// mu serializes establish and drop, and guards failedAt and subscribers.
	mu          sync.Mutex
	failedAt    time.Time
	subscribers []func(ConnectionState)

	// ready records collections already checked or created.
	ready sync.Map

	now func() time.Time
}

// NewConnector constructs a [Connector] for the Cloudant service described
// by cfg. No network call is made until the first access.
//
// A missing API key or URL is not an error here: the connector simply stays
// unavailable and the portal serves from its fallback store.
func NewConnector(cfg config.Cloudant, logger *logger.Logger) *Connector {
	return newConnector(cfg, adapter.NewCloudantAdapter, logger)
}

func newConnector(cfg config.Cloudant, factory AdapterFactory, logger *logger.Logger) *Connector {
	if !cfg.Configured() {
		logger.Warn().Msg("remote store credentials are not set, accounts will be kept in the fallback store")
	}

	return &Connector{
		cfg:        cfg,
		newAdapter: factory,
		logger:     logger,
		now:        time.Now,
	}
}

// Connect returns the cached handle, establishing it first if needed.
//
// Establishing performs up to cfg.ConnectAttempts liveness checks spaced
// cfg.RetryDelay apart, each bounded by cfg.CallTimeout. Every failure is
// returned wrapped in [ErrStoreUnavailable].
func (c *Connector) Connect(ctx context.Context) (adapter.DocumentStore, error) {
	if conn := c.handle.Load(); conn != nil {
		return conn.docs, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// another caller may have connected while this one waited
	if conn := c.handle.Load(); conn != nil {
		return conn.docs, nil
	}

	if !c.cfg.Configured() {
		c.setState(StateFailed)
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, ErrStoreNotConfigured)
	}

	if !c.failedAt.IsZero() && c.now().Sub(c.failedAt) < c.cfg.ReconnectCooldown {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, ErrCoolingDown)
	}

	docs, err := c.establish(ctx)
	if err != nil {
		c.failedAt = c.now()
		c.setState(StateFailed)
		c.logger.Err(err).
			Str("func", "*Connector.Connect").
			Int("attempts", c.attempts()).
			Msg("remote store is unavailable")
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	c.failedAt = time.Time{}
	c.handle.Store(&connection{docs: docs})
	c.setState(StateConnected)

	return docs, nil
}

func (c *Connector) establish(ctx context.Context) (adapter.DocumentStore, error) {
	docs, err := c.newAdapter(c.cfg, c.logger)
	if err != nil {
		return nil, err
	}

	attempt := 0
	err = retry.Do(ctx, c.backoff(), func(ctx context.Context) error {
		attempt++

		callCtx, cancel := c.callContext(ctx)
		defer cancel()

		info, err := docs.ServerInformation(callCtx)
		if err != nil {
			c.logger.Warn().Err(err).
				Int("attempt", attempt).
				Int("max_attempts", c.attempts()).
				Msg("remote store liveness check failed")
			return retry.RetryableError(err)
		}

		c.logger.Info().
			Str("version", info.Version).
			Int("attempt", attempt).
			Msg("connected to remote store")
		return nil
	})
	if err != nil {
		return nil, err
	}

	return docs, nil
}

// EnsureCollection makes sure the named collection exists, creating it when
// absent. It is idempotent. A failure affects only this collection and is
// returned wrapped in [ErrStoreUnavailable].
func (c *Connector) EnsureCollection(ctx context.Context, name string) error {
	docs, err := c.Connect(ctx)
	if err != nil {
		return err
	}

	created, err := c.ensure(ctx, docs, name)
	if err != nil {
		c.ReportFailure(err)
		c.logger.Err(err).
			Str("func", "*Connector.EnsureCollection").
			Str("collection", name).
			Msg("collection is unavailable")
		return fmt.Errorf("%w: collection %q: %w", ErrStoreUnavailable, name, err)
	}

	if created {
		c.logger.Info().Str("collection", name).Msg("created collection")
	} else {
		c.logger.Debug().Str("collection", name).Msg("collection is ready")
	}
	c.ready.Store(name, struct{}{})

	return nil
}

func (c *Connector) ensure(ctx context.Context, docs adapter.DocumentStore, name string) (bool, error) {
	existsCtx, cancel := c.callContext(ctx)
	exists, err := docs.DatabaseExists(existsCtx, name)
	cancel()
	if err != nil || exists {
		return false, err
	}

	createCtx, cancel := c.callContext(ctx)
	defer cancel()

	return true, docs.CreateDatabase(createCtx, name)
}

// Collection returns a handle once the named collection is known to exist,
// ensuring it on first use. This is how a store that was down at startup
// gets its collections once it recovers.
func (c *Connector) Collection(ctx context.Context, name string) (adapter.DocumentStore, error) {
	docs, err := c.Connect(ctx)
	if err != nil {
		return nil, err
	}

	if _, ok := c.ready.Load(name); ok {
		return docs, nil
	}

	if err = c.EnsureCollection(ctx, name); err != nil {
		return nil, err
	}

	return docs, nil
}

// Bootstrap connects and ensures every named collection. A failing
// collection does not stop the others; all failures are joined. The process
// keeps running on the fallback store when Bootstrap fails.
func (c *Connector) Bootstrap(ctx context.Context, names ...string) error {
	if _, err := c.Connect(ctx); err != nil {
		c.logger.Warn().Err(err).Msg("running in limited mode: accounts are kept in the fallback store")
		return err
	}

	var errs []error
	for _, name := range names {
		if err := c.EnsureCollection(ctx, name); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) == 0 {
		c.logger.Info().Strs("collections", names).Msg("remote store initialized")
	}

	return errors.Join(errs...)
}

// ReportFailure drops the cached handle when err is a connectivity fault, so
// the next access reconnects (after the cooldown). Other errors, such as a
// rejected request, leave the connection in place.
func (c *Connector) ReportFailure(err error) {
	if !errors.Is(err, adapter.ErrConnectivity) {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.handle.Swap(nil) == nil {
		return
	}

	c.failedAt = c.now()
	c.setState(StateFailed)
	c.logger.Warn().Err(err).Msg("remote store connection lost")
}

// Available reports whether the remote store can be used right now,
// connecting lazily if needed.
func (c *Connector) Available(ctx context.Context) bool {
	_, err := c.Connect(ctx)
	return err == nil
}

// State returns the current connection state without side effects.
func (c *Connector) State() ConnectionState {
	return ConnectionState(c.state.Load())
}

// Subscribe registers fn to be called on every state change. fn is called
// once immediately with the current state. fn runs while the connector's
// lock is held and must not call back into the connector.
func (c *Connector) Subscribe(fn func(ConnectionState)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.subscribers = append(c.subscribers, fn)
	fn(c.State())
}

// setState must be called with c.mu held.
func (c *Connector) setState(s ConnectionState) {
	old := ConnectionState(c.state.Swap(int32(s)))
	if old == s {
		return
	}

	c.logger.Info().Stringer("from", old).Stringer("to", s).Msg("remote store state changed")
	for _, fn := range c.subscribers {
		fn(s)
	}
}

func (c *Connector) attempts() int {
	return max(c.cfg.ConnectAttempts, 1)
}

func (c *Connector) backoff() retry.Backoff {
	delay := c.cfg.RetryDelay
	if delay <= 0 {
		delay = time.Nanosecond
	}

	return retry.WithMaxRetries(uint64(c.attempts()-1), retry.NewConstant(delay))
}

func (c *Connector) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.cfg.CallTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.cfg.CallTimeout)
}
