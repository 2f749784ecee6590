package mutation

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/gemshop/storefront/core/logger"
)

var (
	// ErrNilApply is returned when a mutation has no local change function.
	ErrNilApply = errors.New("mutation: Apply function is required")
	// ErrNilSend is returned when a mutation has no server operation.
	ErrNilSend = errors.New("mutation: Send function is required")
)

// Status is the terminal state of a processed mutation.
type Status string

const (
	// StatusRejected means local validation failed: no snapshot, no network
	// call, no state change.
	StatusRejected Status = "rejected"
	// StatusCommitted means the server confirmed the change.
	StatusCommitted Status = "committed"
	// StatusRolledBack means the server operation failed and the
	// pre-mutation snapshot was restored.
	StatusRolledBack Status = "rolled_back"
)

// Mutation describes one optimistic change to a collection of type C.
type Mutation[C any] struct {
	// Name identifies the mutation in logs.
	Name string

	// Validate checks preconditions against the current collection before
	// anything else happens. Optional; a validation error rejects the
	// mutation synchronously.
	Validate func(current C) error

	// Apply produces the optimistic local state from the current one.
	// It must be pure: derived values are recomputed here, nothing else.
	Apply func(current C) C

	// Send performs the equivalent server-side change. A non-nil returned
	// collection is authoritative and replaces the optimistic state; nil
	// keeps the optimistic state on success.
	Send func(ctx context.Context) (*C, error)
}

// Result reports how a mutation resolved and the collection visible after it.
type Result[C any] struct {
	Status Status
	State  C
}

// Option configures a Controller.
type Option[C any] func(*Controller[C])

// WithLogger sets the logger used for mutation diagnostics.
func WithLogger[C any](log *slog.Logger) Option[C] {
	return func(c *Controller[C]) {
		if log != nil {
			c.log = log
		}
	}
}

// Controller owns a collection and serializes optimistic mutations on it.
type Controller[C any] struct {
	// applyMu serializes whole mutations: held from snapshot through
	// resolution so a queued mutation never snapshots uncommitted state.
	applyMu sync.Mutex

	stateMu sync.RWMutex
	state   C

	clone func(C) C
	log   *slog.Logger
}

// NewController creates a controller over an initial collection state.
// clone must produce a deep copy; it backs both snapshots and the copies
// handed out by State.
func NewController[C any](initial C, clone func(C) C, opts ...Option[C]) *Controller[C] {
	c := &Controller[C]{
		state: clone(initial),
		clone: clone,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a copy of the currently visible collection, including any
// optimistic state of an in-flight mutation.
func (c *Controller[C]) State() C {
	c.stateMu.RLock()
	defer c.stateMu.RUnlock()
	return c.clone(c.state)
}

// Replace installs a server-provided collection, e.g. after an initial
// fetch. It waits for any in-flight mutation to resolve first.
func (c *Controller[C]) Replace(state C) {
	c.applyMu.Lock()
	defer c.applyMu.Unlock()
	c.setState(c.clone(state))
}

// Apply processes one mutation to a terminal state. The returned Result
// always carries the collection as visible after resolution; the error is
// the validation or server error for Rejected and RolledBack outcomes.
//
// Mutations on the same controller are processed strictly one at a time.
func (c *Controller[C]) Apply(ctx context.Context, m Mutation[C]) (Result[C], error) {
	if m.Apply == nil {
		return Result[C]{}, ErrNilApply
	}
	if m.Send == nil {
		return Result[C]{}, ErrNilSend
	}

	c.applyMu.Lock()
	defer c.applyMu.Unlock()

	start := time.Now()
	current := c.State()

	if m.Validate != nil {
		if err := m.Validate(current); err != nil {
			return Result[C]{Status: StatusRejected, State: current}, err
		}
	}

	snapshot := c.clone(current)
	optimistic := m.Apply(current)
	c.setState(optimistic)

	server, err := m.Send(ctx)
	if err != nil {
		c.setState(snapshot)
		c.log.Debug("mutation rolled back",
			logger.ID("mutation", m.Name),
			logger.Error(err),
			logger.Elapsed(start),
		)
		return Result[C]{Status: StatusRolledBack, State: c.State()}, err
	}

	// Server wins when it returns the collection; otherwise the optimistic
	// state stands.
	if server != nil {
		c.setState(c.clone(*server))
	}

	c.log.Debug("mutation committed",
		logger.ID("mutation", m.Name),
		logger.Elapsed(start),
	)
	return Result[C]{Status: StatusCommitted, State: c.State()}, nil
}

func (c *Controller[C]) setState(state C) {
	c.stateMu.Lock()
	c.state = state
	c.stateMu.Unlock()
}
