package page

import (
	"context"
	"sync/atomic"
)

// Event is a user action dispatched to listeners.
type Event struct {
	Type   string
	Target string

	prevented atomic.Bool
}

// PreventDefault suppresses the element's default action.
func (e *Event) PreventDefault() { e.prevented.Store(true) }

// DefaultPrevented reports whether a listener called PreventDefault.
func (e *Event) DefaultPrevented() bool { return e.prevented.Load() }

// Listener handles an event. It runs synchronously inside Activate or Submit;
// long work belongs on Document.Go.
type Listener func(ctx context.Context, ev *Event)
