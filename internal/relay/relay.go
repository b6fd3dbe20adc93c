// Package relay implements the socket-relay collaborator contract (spec
// §5, §6): network I/O lives on its own worker goroutine(s), and the core
// only ever sees it through the Observer interface.
package relay

import (
	"sync"

	"github.com/rootscript/core/internal/observer"
)

// Relay is implemented by any socket-relay collaborator: Send pushes a
// wire-format payload out, and the relay itself is an Observer so the
// core can attach it directly to receive Notify calls to forward.
type Relay interface {
	observer.Observer
	Send(payload string) error
	Close() error
}

// Loopback is an in-process Relay used for testing and for the dashboard
// mode, where no actual socket exists: Notify encodes to the wire format
// and appends to an in-memory log instead of writing to a network
// connection.
type Loopback struct {
	mu  sync.Mutex
	log []string
}

func NewLoopback() *Loopback { return &Loopback{} }

// Notify encodes the event to the wire format and records it; encoding
// failures are dropped silently per the "observer may drop events"
// contract (spec §5) rather than propagated to the caller.
func (l *Loopback) Notify(e observer.Event) {
	doc, err := observer.Encode(e)
	if err != nil {
		return
	}
	l.mu.Lock()
	l.log = append(l.log, doc)
	l.mu.Unlock()
}

func (l *Loopback) Send(payload string) error {
	l.mu.Lock()
	l.log = append(l.log, payload)
	l.mu.Unlock()
	return nil
}

func (l *Loopback) Close() error { return nil }

// Log returns every payload recorded so far, in emission order.
func (l *Loopback) Log() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.log))
	copy(out, l.log)
	return out
}
