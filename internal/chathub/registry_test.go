package chathub_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/Nagrajupatel/Chat-App/internal/chathub"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_BindAndLookup(t *testing.T) {
	registry := chathub.NewRegistry()
	client := newMockClient("conn-1")

	registry.Bind("alice", client)

	assert.Equal(t, client, registry.Lookup("alice"))
	assert.Nil(t, registry.Lookup("bob"))
	assert.ElementsMatch(t, []string{"alice"}, registry.Snapshot())
}

func TestRegistry_LastBindWins(t *testing.T) {
	registry := chathub.NewRegistry()
	first := newMockClient("conn-1")
	second := newMockClient("conn-2")

	registry.Bind("alice", first)
	registry.Bind("alice", second)

	// The later connection owns the identity; the first is orphaned but the
	// registry holds exactly one entry.
	assert.Equal(t, second, registry.Lookup("alice"))
	assert.ElementsMatch(t, []string{"alice"}, registry.Snapshot())
}

func TestRegistry_RebindSameConnectionDropsOldIdentity(t *testing.T) {
	registry := chathub.NewRegistry()
	client := newMockClient("conn-1")

	registry.Bind("alice", client)
	registry.Bind("alicia", client)

	assert.Nil(t, registry.Lookup("alice"), "old identity must be dropped on rebind")
	assert.Equal(t, client, registry.Lookup("alicia"))
	assert.ElementsMatch(t, []string{"alicia"}, registry.Snapshot())
}

func TestRegistry_RebindKeepsEntryTakenOverByAnotherConnection(t *testing.T) {
	registry := chathub.NewRegistry()
	first := newMockClient("conn-1")
	second := newMockClient("conn-2")

	registry.Bind("alice", first)
	registry.Bind("alice", second) // takeover
	registry.Bind("bob", first)    // first re-logs in under a new name

	// first's rebind must not clobber the entry second now owns.
	assert.Equal(t, second, registry.Lookup("alice"))
	assert.Equal(t, first, registry.Lookup("bob"))
	assert.ElementsMatch(t, []string{"alice", "bob"}, registry.Snapshot())
}

func TestRegistry_UnbindIsIdempotent(t *testing.T) {
	registry := chathub.NewRegistry()
	client := newMockClient("conn-1")

	registry.Bind("alice", client)
	registry.Unbind(client)
	registry.Unbind(client) // no entry left, must be a no-op

	assert.Nil(t, registry.Lookup("alice"))
	assert.Empty(t, registry.Snapshot())
}

func TestRegistry_RemoveUnbindsConnection(t *testing.T) {
	registry := chathub.NewRegistry()
	client := newMockClient("conn-1")

	registry.Add(client)
	registry.Bind("alice", client)
	registry.Remove(client)

	assert.Nil(t, registry.Lookup("alice"))
	assert.Empty(t, registry.Snapshot())
	assert.Empty(t, registry.Connections())
}

func TestRegistry_ConnectionsIncludesUnbound(t *testing.T) {
	registry := chathub.NewRegistry()
	bound := newMockClient("conn-1")
	unbound := newMockClient("conn-2")

	registry.Add(bound)
	registry.Add(unbound)
	registry.Bind("alice", bound)

	assert.Len(t, registry.Connections(), 2)
	assert.ElementsMatch(t, []string{"alice"}, registry.Snapshot())
}

func TestRegistry_ConcurrentBindUnbind(t *testing.T) {
	registry := chathub.NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			client := newMockClient(fmt.Sprintf("conn-%d", i))
			identity := fmt.Sprintf("user-%d", i)
			registry.Add(client)
			registry.Bind(identity, client)
			if i%2 == 0 {
				registry.Remove(client)
			}
		}(i)
	}
	wg.Wait()

	// Every odd connection is still bound, every even one fully removed.
	assert.Len(t, registry.Snapshot(), 25)
	assert.Len(t, registry.Connections(), 25)
	for i := 0; i < 50; i++ {
		identity := fmt.Sprintf("user-%d", i)
		if i%2 == 0 {
			assert.Nil(t, registry.Lookup(identity))
		} else {
			assert.NotNil(t, registry.Lookup(identity))
		}
	}
}
