// Package session keeps an API client's cookie session alive. A Coordinator
// collapses concurrent access-token expiries into a single refresh call and a
// Client replays requests rejected with 401 once that refresh settles.
package session

import (
	"context"
	"sync"
)

type State int

const (
	Idle State = iota
	Refreshing
)

func (s State) String() string {
	if s == Refreshing {
		return "refreshing"
	}
	return "idle"
}

// RefreshFunc performs one refresh exchange. It inherits whatever timeout the
// caller's context or transport applies; the Coordinator adds none.
type RefreshFunc func(ctx context.Context) error

// Coordinator runs at most one RefreshFunc at a time. Callers arriving while a
// refresh is in flight are queued in arrival order and released in that same
// order with the refresh outcome.
type Coordinator struct {
	refresh RefreshFunc

	mu      sync.Mutex
	state   State
	waiters []chan error
}

func NewCoordinator(refresh RefreshFunc) *Coordinator {
	return &Coordinator{refresh: refresh}
}

// Await returns once the current refresh has settled, starting one when the
// coordinator is idle. leader reports whether this caller ran the refresh.
//
// Queued callers are not cancellable: ctx is only handed to the refresh when
// the caller leads it, and a queued caller waits for the outcome regardless.
func (c *Coordinator) Await(ctx context.Context) (leader bool, err error) {
	c.mu.Lock()
	if c.state == Refreshing {
		ch := make(chan error, 1)
		c.waiters = append(c.waiters, ch)
		c.mu.Unlock()
		return false, <-ch
	}
	c.state = Refreshing
	c.mu.Unlock()

	err = c.refresh(ctx)

	c.mu.Lock()
	waiters := c.waiters
	c.waiters = nil
	c.state = Idle
	c.mu.Unlock()

	for _, ch := range waiters {
		ch <- err
	}

	return true, err
}

func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Pending is the number of callers queued behind the in-flight refresh.
func (c *Coordinator) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.waiters)
}
