package session

import (
	"fmt"
	"sync"
	"testing"

	"github.com/adalundhe/voyant/core/agent"
	"github.com/adalundhe/voyant/core/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GetOrCreate(t *testing.T) {
	store := NewStore()

	first := store.GetOrCreate("abc")
	second := store.GetOrCreate("abc")

	require.NotNil(t, first)
	assert.Same(t, first, second)
	assert.Equal(t, "abc", first.ID())
	assert.Equal(t, 1, store.Len())
}

func TestStore_GetUnseenReturnsNil(t *testing.T) {
	store := NewStore()

	assert.Nil(t, store.Get("never"))
}

func TestSession_TurnRoundTrip(t *testing.T) {
	store := NewStore()
	sess := store.GetOrCreate("fresh")

	sess.AppendTurn(agent.Turn{Role: agent.RoleUser, Content: "hi"})
	sess.AppendTurn(agent.Turn{Role: agent.RoleAssistant, Content: "hello", Agent: "travel"})

	history := sess.History()
	require.Len(t, history, 2)
	assert.Equal(t, agent.RoleUser, history[0].Role)
	assert.Equal(t, "hi", history[0].Content)
	assert.Equal(t, agent.RoleAssistant, history[1].Role)
	assert.Equal(t, "travel", history[1].Agent)
}

func TestSession_EntitiesVisibleOnNextTurn(t *testing.T) {
	store := NewStore()
	sess := store.GetOrCreate("fresh")

	sess.MergeEntities(entities.Bag{entities.CategoryLocations: {"Tokyo"}})

	reqCtx := agent.BuildContext(sess.Entities(), entities.NewBag())
	assert.Equal(t, []string{"Tokyo"}, reqCtx.Locations)
}

func TestSession_HistorySnapshotIsIndependent(t *testing.T) {
	store := NewStore()
	sess := store.GetOrCreate("snap")
	sess.AppendTurn(agent.Turn{Role: agent.RoleUser, Content: "hi"})

	snapshot := sess.History()
	sess.AppendTurn(agent.Turn{Role: agent.RoleAssistant, Content: "hello"})

	assert.Len(t, snapshot, 1)
	assert.Len(t, sess.History(), 2)
}

func TestStore_ConcurrentGetOrCreate(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			sess := store.GetOrCreate(fmt.Sprintf("s-%d", n%4))
			sess.AppendTurn(agent.Turn{Role: agent.RoleUser, Content: "msg"})
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 4, store.Len())
	total := 0
	for i := 0; i < 4; i++ {
		total += len(store.Get(fmt.Sprintf("s-%d", i)).History())
	}
	assert.Equal(t, 32, total)
}
