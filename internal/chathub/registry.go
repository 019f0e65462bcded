package chathub

import (
	"sync"

	"github.com/samber/lo"
)

// Registry is the presence registry: the single source of truth for which
// identities are currently online and which connection each one is bound to.
// It also tracks the full set of open connections (bound or not) so roster
// updates can reach clients that have not logged in yet.
//
// All methods are safe for concurrent use. The registry is the only writer of
// the identity->connection relation; other components go through Bind/Unbind.
type Registry struct {
	mu       sync.RWMutex
	conns    map[string]Client // every open connection, keyed by connection ID
	presence map[string]Client // identity -> bound connection
}

func NewRegistry() *Registry {
	return &Registry{
		conns:    make(map[string]Client),
		presence: make(map[string]Client),
	}
}

// Add registers an open connection with no identity bound yet.
func (r *Registry) Add(c Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conns[c.GetConnID()] = c
}

// Remove drops the connection and, if it holds a presence entry, unbinds it.
// Idempotent: removing an unknown connection is a no-op.
func (r *Registry) Remove(c Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.conns, c.GetConnID())
	r.unbindLocked(c)
}

// Bind installs or overwrites the presence entry for identity. Last bind
// wins: an entry held by another connection is silently replaced and that
// connection is left open but orphaned until its own disconnect. If this
// connection was previously bound under a different identity whose entry
// still points at it, that stale entry is dropped.
func (r *Registry) Bind(identity string, c Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, bound := range r.presence {
		if id != identity && bound.GetConnID() == c.GetConnID() {
			delete(r.presence, id)
		}
	}
	r.presence[identity] = c
}

// Unbind removes the presence entry owned by this connection, if any.
// Idempotent: unbinding a connection with no entry is a no-op.
func (r *Registry) Unbind(c Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unbindLocked(c)
}

func (r *Registry) unbindLocked(c Client) {
	for id, bound := range r.presence {
		if bound.GetConnID() == c.GetConnID() {
			delete(r.presence, id)
		}
	}
}

// Lookup returns the connection currently bound to identity, or nil.
func (r *Registry) Lookup(identity string) Client {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.presence[identity]
}

// Snapshot returns all currently bound identities. Callers must not assume
// any particular order.
func (r *Registry) Snapshot() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.Keys(r.presence)
}

// Connections returns every open connection, bound or not.
func (r *Registry) Connections() []Client {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.Values(r.conns)
}
