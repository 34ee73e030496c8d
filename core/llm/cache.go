package llm

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/dgraph-io/ristretto"

	"github.com/adalundhe/voyant/core/agent"
)

const (
	defaultCacheCounters = 1e6
	defaultCacheMaxCost  = 1e7
	defaultCacheBuffers  = 64

	// DefaultCacheTTL is how long a completion is served from cache.
	DefaultCacheTTL = 3600 * time.Second
)

// replyCache stores completed replies keyed by a stable hash of the exact
// prompt string.
type replyCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func newReplyCache(ttl time.Duration) (*replyCache, error) {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: defaultCacheCounters,
		MaxCost:     defaultCacheMaxCost,
		BufferItems: defaultCacheBuffers,
	})
	if err != nil {
		return nil, err
	}

	return &replyCache{cache: cache, ttl: ttl}, nil
}

func cacheKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])
}

func (c *replyCache) Get(prompt string) (agent.Reply, bool) {
	value, found := c.cache.Get(cacheKey(prompt))
	if !found {
		return agent.Reply{}, false
	}

	reply, ok := value.(agent.Reply)
	if !ok {
		return agent.Reply{}, false
	}
	return reply, true
}

func (c *replyCache) Set(prompt string, reply agent.Reply) {
	cost := int64(len(prompt) + len(reply.Content))
	if c.cache.SetWithTTL(cacheKey(prompt), reply, cost, c.ttl) {
		// Publish the buffered write so an immediate lookup hits.
		c.cache.Wait()
	}
}

func (c *replyCache) Close() {
	c.cache.Close()
}
