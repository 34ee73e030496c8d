package agent

import (
	"context"

	"github.com/adalundhe/voyant/core/entities"
)

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is a single immutable conversation entry. Agent names the responder
// that produced an assistant turn; it is empty for user turns.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
	Agent   string `json:"agent,omitempty"`
}

// Context is the request-scoped aggregate handed to a responder: every
// location and date the session has accumulated, plus optional supporting
// text produced by a delegated responder. Built fresh per request.
type Context struct {
	Locations      []string `json:"locations"`
	Dates          []string `json:"dates"`
	SupportingInfo string   `json:"supporting_info,omitempty"`
}

// BuildContext merges the session's accumulated bag with entities freshly
// extracted from the current message. Set-union semantics, first-appearance
// order; the keywords category is deliberately excluded. Neither input is
// mutated.
func BuildContext(accumulated, fresh entities.Bag) Context {
	merged := accumulated.Clone()
	merged.Merge(fresh)

	return Context{
		Locations: merged.Locations(),
		Dates:     merged.Dates(),
	}
}

// Responder is the capability implemented by each domain handler.
type Responder interface {
	// Name returns the responder's routing tag.
	Name() string

	// Handle answers a raw message without conversational context. Used for
	// delegation sub-queries.
	Handle(ctx context.Context, message string) Reply

	// HandleWithContext answers the primary request with the full
	// context-enriched prompt.
	HandleWithContext(ctx context.Context, message string, reqCtx Context, bag entities.Bag, history []Turn) Reply
}
