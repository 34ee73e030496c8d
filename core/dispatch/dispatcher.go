// Package dispatch is the top-level orchestrator. One Process call carries a
// message through entity extraction, routing, optional delegation, the
// selected responder, and session persistence. Process never lets a fault
// escape to the caller.
package dispatch

import (
	"context"
	"log/slog"

	"github.com/adalundhe/voyant/core/agent"
	"github.com/adalundhe/voyant/core/delegation"
	"github.com/adalundhe/voyant/core/entities"
	"github.com/adalundhe/voyant/core/routing"
	"github.com/adalundhe/voyant/core/session"
	"github.com/google/uuid"
)

const faultMessage = "Xin lỗi, đã có lỗi xảy ra khi xử lý yêu cầu của bạn. Vui lòng thử lại."

type Dispatcher struct {
	sessions   *session.Store
	router     *routing.Router
	policy     *delegation.Policy
	responders map[string]agent.Responder
	logger     *slog.Logger
}

type Option func(*Dispatcher)

// WithLogger overrides the default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) { d.logger = logger }
}

// WithDelegation replaces the default rule table.
func WithDelegation(policy *delegation.Policy) Option {
	return func(d *Dispatcher) { d.policy = policy }
}

// WithRouter replaces the default keyword router.
func WithRouter(router *routing.Router) Option {
	return func(d *Dispatcher) { d.router = router }
}

func New(responders []agent.Responder, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		sessions:   session.NewStore(),
		router:     routing.NewRouter(),
		policy:     delegation.NewPolicy(),
		responders: make(map[string]agent.Responder, len(responders)),
		logger:     slog.Default(),
	}
	for _, responder := range responders {
		d.responders[responder.Name()] = responder
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Sessions exposes the underlying store, mostly for callers that need to
// generate ids up front or inspect session counts.
func (d *Dispatcher) Sessions() *session.Store {
	return d.sessions
}

// NewSessionID mints an id for callers that do not have one yet.
func (d *Dispatcher) NewSessionID() string {
	return uuid.NewString()
}

// Process handles a single message end to end and returns a uniform Reply.
// A non-nil history overrides the session's stored turns for routing and
// prompt assembly; nil means the session's own history is used. A panic
// anywhere below is converted into an error Reply tagged "manager".
func (d *Dispatcher) Process(ctx context.Context, sessionID, message string, history []agent.Turn) (reply agent.Reply) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("request processing panicked", "session", sessionID, "panic", r)
			reply = agent.Error(faultMessage).WithAgent(agent.ManagerAgent)
		}
	}()

	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	sess := d.sessions.GetOrCreate(sessionID)

	fresh := entities.Extract(message)
	sess.MergeEntities(fresh)

	if history == nil {
		history = sess.History()
	}
	accumulated := sess.Entities()
	reqCtx := agent.BuildContext(accumulated, fresh)

	selected := d.router.Select(message, history)
	responder, ok := d.responders[selected]
	if !ok {
		responder, ok = d.responders[routing.DefaultResponder]
		if !ok {
			d.logger.Error("no responder registered for selection", "selected", selected)
			return agent.Error(faultMessage).WithAgent(agent.ManagerAgent)
		}
	}

	if supporting := d.delegate(ctx, selected, message, accumulated); supporting != "" {
		reqCtx.SupportingInfo = supporting
	}

	d.logger.Info("dispatching message",
		"session", sessionID,
		"responder", responder.Name(),
		"locations", len(reqCtx.Locations),
	)

	reply = responder.HandleWithContext(ctx, message, reqCtx, accumulated, history)

	sess.AppendTurn(agent.Turn{Role: agent.RoleUser, Content: message})
	if reply.OK() {
		sess.AppendTurn(agent.Turn{Role: agent.RoleAssistant, Content: reply.Content, Agent: reply.Agent})
	}
	return reply
}

// delegate runs the delegation rule table. A failed delegated call only costs
// the supporting info, never the primary request.
func (d *Dispatcher) delegate(ctx context.Context, selected, message string, bag entities.Bag) string {
	request := d.policy.Check(selected, message, bag)
	if request == nil {
		return ""
	}

	target, ok := d.responders[request.Target]
	if !ok {
		d.logger.Warn("delegation target not registered", "target", request.Target)
		return ""
	}

	delegated := target.Handle(ctx, request.Query)
	if !delegated.OK() {
		d.logger.Warn("delegated call failed",
			"target", request.Target,
			"query", request.Query,
			"message", delegated.Message,
		)
		return ""
	}

	d.logger.Info("delegation succeeded", "target", request.Target, "query", request.Query)
	return delegated.Content
}
