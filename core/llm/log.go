package llm

import (
	"sync"
	"time"
)

const defaultLogLimit = 50

// Exchange is one recorded prompt/completion pair.
type Exchange struct {
	Prompt    string    `json:"prompt"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

// ExchangeLog keeps a bounded window of recent exchanges for introspection.
// It feeds nothing back into prompting.
type ExchangeLog struct {
	mu        sync.Mutex
	exchanges []Exchange
	limit     int
}

// NewExchangeLog returns a log bounded to limit entries (defaulted when <= 0).
func NewExchangeLog(limit int) *ExchangeLog {
	if limit <= 0 {
		limit = defaultLogLimit
	}
	return &ExchangeLog{limit: limit}
}

// Record appends an exchange, evicting the oldest entry past the bound.
func (l *ExchangeLog) Record(prompt, response string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.exchanges = append(l.exchanges, Exchange{
		Prompt:    prompt,
		Response:  response,
		Timestamp: time.Now(),
	})
	if len(l.exchanges) > l.limit {
		l.exchanges = l.exchanges[len(l.exchanges)-l.limit:]
	}
}

// Recent returns a snapshot of the logged exchanges, oldest first.
func (l *ExchangeLog) Recent() []Exchange {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]Exchange(nil), l.exchanges...)
}
