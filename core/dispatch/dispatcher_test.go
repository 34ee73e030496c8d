package dispatch

import (
	"context"
	"fmt"
	"testing"

	"github.com/adalundhe/voyant/core/agent"
	"github.com/adalundhe/voyant/core/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResponder struct {
	name        string
	plainCalls  []string
	ctxCalls    []string
	lastContext agent.Context
	lastHistory []agent.Turn
	reply       func(message string) agent.Reply
	panicOnCtx  bool
}

func newFakeResponder(name string) *fakeResponder {
	return &fakeResponder{
		name: name,
		reply: func(message string) agent.Reply {
			return agent.Success(fmt.Sprintf("%s says ok", name)).WithAgent(name)
		},
	}
}

func (f *fakeResponder) Name() string { return f.name }

func (f *fakeResponder) Handle(ctx context.Context, message string) agent.Reply {
	f.plainCalls = append(f.plainCalls, message)
	return f.reply(message)
}

func (f *fakeResponder) HandleWithContext(ctx context.Context, message string, reqCtx agent.Context, bag entities.Bag, history []agent.Turn) agent.Reply {
	if f.panicOnCtx {
		panic("responder exploded")
	}
	f.ctxCalls = append(f.ctxCalls, message)
	f.lastContext = reqCtx
	f.lastHistory = history
	return f.reply(message)
}

func newTestDispatcher(responders ...*fakeResponder) (*Dispatcher, map[string]*fakeResponder) {
	byName := make(map[string]*fakeResponder, len(responders))
	all := make([]agent.Responder, 0, len(responders))
	for _, r := range responders {
		byName[r.name] = r
		all = append(all, r)
	}
	return New(all), byName
}

func standardResponders() []*fakeResponder {
	names := []string{"flight", "hotel", "food", "weather", "place", "travel"}
	responders := make([]*fakeResponder, 0, len(names))
	for _, name := range names {
		responders = append(responders, newFakeResponder(name))
	}
	return responders
}

func TestProcess_RoutesByKeyword(t *testing.T) {
	d, byName := newTestDispatcher(standardResponders()...)

	reply := d.Process(context.Background(), "s1", "I need a hotel in Hoi An", nil)

	assert.Equal(t, agent.StatusSuccess, reply.Status)
	assert.Equal(t, "hotel", reply.Agent)
	assert.Len(t, byName["hotel"].ctxCalls, 1)
	assert.Empty(t, byName["travel"].ctxCalls)
}

func TestProcess_DefaultsToTravel(t *testing.T) {
	d, byName := newTestDispatcher(standardResponders()...)

	reply := d.Process(context.Background(), "s1", "xin tư vấn giúp mình", nil)

	assert.Equal(t, "travel", reply.Agent)
	assert.Len(t, byName["travel"].ctxCalls, 1)
}

func TestProcess_DelegationFoldsSupportingInfo(t *testing.T) {
	responders := standardResponders()
	d, byName := newTestDispatcher(responders...)
	byName["weather"].reply = func(string) agent.Reply {
		return agent.Success("🌤️ Nắng nhẹ, 28°C").WithAgent("weather")
	}

	reply := d.Process(context.Background(), "s1", "Tìm chuyến bay đến Đà Nẵng", nil)

	assert.Equal(t, "flight", reply.Agent)
	require.Len(t, byName["weather"].plainCalls, 1)
	assert.Equal(t, "Thời tiết ở Đà Nẵng trong tuần này", byName["weather"].plainCalls[0])
	assert.Equal(t, "🌤️ Nắng nhẹ, 28°C", byName["flight"].lastContext.SupportingInfo)
}

func TestProcess_DelegationFailureIsSwallowed(t *testing.T) {
	responders := standardResponders()
	d, byName := newTestDispatcher(responders...)
	byName["weather"].reply = func(string) agent.Reply {
		return agent.Error("provider down").WithAgent("weather")
	}

	reply := d.Process(context.Background(), "s1", "Tìm chuyến bay đến Đà Nẵng", nil)

	assert.Equal(t, agent.StatusSuccess, reply.Status)
	assert.Equal(t, "flight", reply.Agent)
	assert.Empty(t, byName["flight"].lastContext.SupportingInfo)
}

func TestProcess_SessionAccumulatesTurnsAndEntities(t *testing.T) {
	d, byName := newTestDispatcher(standardResponders()...)

	d.Process(context.Background(), "s1", "I want to go to Tokyo", nil)
	d.Process(context.Background(), "s1", "find hotels there", nil)

	hotel := byName["hotel"]
	require.Len(t, hotel.ctxCalls, 1)
	assert.Contains(t, hotel.lastContext.Locations, "Tokyo")
	require.Len(t, hotel.lastHistory, 2)
	assert.Equal(t, agent.RoleUser, hotel.lastHistory[0].Role)
	assert.Equal(t, agent.RoleAssistant, hotel.lastHistory[1].Role)
	assert.Equal(t, "travel", hotel.lastHistory[1].Agent)
}

func TestProcess_ErrorReplyNotRecordedAsTurn(t *testing.T) {
	responders := standardResponders()
	d, byName := newTestDispatcher(responders...)
	byName["travel"].reply = func(string) agent.Reply {
		return agent.Error("boom").WithAgent("travel")
	}

	d.Process(context.Background(), "s1", "tư vấn giúp mình", nil)

	sess := d.Sessions().Get("s1")
	require.NotNil(t, sess)
	history := sess.History()
	require.Len(t, history, 1)
	assert.Equal(t, agent.RoleUser, history[0].Role)
}

func TestProcess_EmptySessionIDGetsFreshSession(t *testing.T) {
	d, _ := newTestDispatcher(standardResponders()...)

	d.Process(context.Background(), "", "hello there", nil)
	d.Process(context.Background(), "", "hello again", nil)

	assert.Equal(t, 2, d.Sessions().Len())
}

func TestProcess_PanicBecomesManagerError(t *testing.T) {
	responders := standardResponders()
	d, byName := newTestDispatcher(responders...)
	byName["travel"].panicOnCtx = true

	reply := d.Process(context.Background(), "s1", "tư vấn giúp mình", nil)

	assert.Equal(t, agent.StatusError, reply.Status)
	assert.Equal(t, agent.ManagerAgent, reply.Agent)
	assert.NotEmpty(t, reply.Message)
}

func TestProcess_CallerHistoryOverridesSession(t *testing.T) {
	d, byName := newTestDispatcher(standardResponders()...)

	// Seed the session with travel-tagged turns.
	d.Process(context.Background(), "s1", "I want to go to Tokyo", nil)

	supplied := []agent.Turn{
		{Role: agent.RoleUser, Content: "find me a hotel in Hue"},
		{Role: agent.RoleAssistant, Content: "🏨 Riverside Inn", Agent: "hotel"},
	}

	reply := d.Process(context.Background(), "s1", "khoảng 2 đêm, gần sông", supplied)

	// The supplied history carries the continuity bonus, so routing follows
	// it instead of the session's stored turns.
	assert.Equal(t, "hotel", reply.Agent)
	require.Len(t, byName["hotel"].ctxCalls, 1)
	assert.Equal(t, supplied, byName["hotel"].lastHistory)
}

func TestProcess_NilHistoryUsesSessionTurns(t *testing.T) {
	d, byName := newTestDispatcher(standardResponders()...)

	d.Process(context.Background(), "s1", "I want to go to Tokyo", nil)
	d.Process(context.Background(), "s1", "find hotels there", nil)

	require.Len(t, byName["hotel"].lastHistory, 2)
	assert.Equal(t, "I want to go to Tokyo", byName["hotel"].lastHistory[0].Content)
}

func TestProcess_ContinuityBonusKeepsResponder(t *testing.T) {
	d, byName := newTestDispatcher(standardResponders()...)

	d.Process(context.Background(), "s1", "find me a hotel in Hue", nil)
	d.Process(context.Background(), "s1", "khoảng 2 đêm, gần sông", nil)

	assert.Len(t, byName["hotel"].ctxCalls, 2)
}
