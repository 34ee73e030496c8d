package travel

import (
	"context"
	"math/rand"
	"sync/atomic"
	"testing"

	"github.com/adalundhe/voyant/core/agent"
	"github.com/adalundhe/voyant/core/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	calls      atomic.Int64
	lastPrompt string
	response   string
}

func (p *stubProvider) Name() string { return "stub" }

func (p *stubProvider) Generate(ctx context.Context, prompt string) (string, error) {
	p.calls.Add(1)
	p.lastPrompt = prompt
	return p.response, nil
}

func newTestAgent(t *testing.T, provider *stubProvider) *Agent {
	t.Helper()
	gateway, err := llm.NewGateway(provider)
	require.NoError(t, err)
	t.Cleanup(func() { gateway.Close() })
	return New(gateway, nil, WithRand(rand.New(rand.NewSource(1))))
}

func TestGreeting_SkipsProvider(t *testing.T) {
	provider := &stubProvider{}
	a := newTestAgent(t, provider)

	reply := a.Handle(context.Background(), "Xin chào!")

	assert.Equal(t, agent.StatusSuccess, reply.Status)
	assert.Equal(t, Name, reply.Agent)
	assert.NotEmpty(t, reply.Content)
	assert.Zero(t, provider.calls.Load())
}

func TestThankYou_CannedReply(t *testing.T) {
	provider := &stubProvider{}
	a := newTestAgent(t, provider)

	reply := a.Handle(context.Background(), "cảm ơn bạn nhiều")

	assert.Equal(t, thankYouResponse, reply.Content)
	assert.Zero(t, provider.calls.Load())
}

func TestQuestion_GoesThroughGateway(t *testing.T) {
	provider := &stubProvider{response: "🗺️ Huế là cố đô của Việt Nam."}
	a := newTestAgent(t, provider)

	reply := a.Handle(context.Background(), "Tell me about Huế")

	assert.Equal(t, int64(1), provider.calls.Load())
	assert.Equal(t, "🗺️ Huế là cố đô của Việt Nam.", reply.Content)
	assert.Contains(t, provider.lastPrompt, "Câu hỏi của người dùng: Tell me about Huế")
}

func TestSmallTalkDetection(t *testing.T) {
	assert.True(t, isGreeting("Hello there"))
	assert.True(t, isGreeting("chào anh"))
	assert.True(t, isGreeting("Hi!"))
	assert.False(t, isGreeting("flights to Paris"))
	assert.True(t, isThankYou("Thanks a lot!"))
	assert.False(t, isThankYou("book a hotel"))
}

func TestSmallTalk_WordBoundaries(t *testing.T) {
	// "hi" and "chi" appear inside ordinary Vietnamese syllables; they must
	// not fire the greeting branch.
	assert.False(t, isGreeting("cảm ơn bạn nhiều"))
	assert.False(t, isGreeting("chi phí đi lại ở Sài Gòn"))
	assert.False(t, isGreeting("lịch trình 3 ngày ở Huế"))
}
