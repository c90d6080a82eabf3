// Package throttle provides a single-flight gate for user triggered
// actions such as button handlers.
package throttle

import (
	"context"
	"errors"
	"sync/atomic"
)

// ErrBusy is returned by Gate.Do while the gate is closed.
var ErrBusy = errors.New("gate closed")

// Action is the gated work.  When it returns true the gate stays closed
// after it finishes, until Open is called.
type Action func(ctx context.Context) (stayClosed bool, err error)

// Gate refuses to start its action while a previous run is in flight, or
// after a run asked to keep it closed.
type Gate struct {
	closed atomic.Bool
	action Action
}

func New(a Action) *Gate {
	return &Gate{action: a}
}

// Do runs the action if the gate is open, closing it for the duration.
// A run which fails re-opens the gate unless it also asked to stay closed.
func (g *Gate) Do(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !g.closed.CompareAndSwap(false, true) {
		return ErrBusy
	}
	stay, err := g.action(ctx)
	g.closed.Store(stay)
	return err
}

// Open re-opens the gate.
func (g *Gate) Open() {
	g.closed.Store(false)
}

func (g *Gate) Closed() bool {
	return g.closed.Load()
}

// Throttle returns a func running a through a new Gate.
func Throttle(a Action) func(context.Context) error {
	return New(a).Do
}
