// Package agent defines the contract shared by every domain responder: the
// uniform Reply result, conversation turns, the request-scoped Context, and
// context-aware prompt assembly.
package agent

import "time"

// Status is the outcome of a responder or gateway call.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// ManagerAgent tags replies produced by the orchestration layer itself.
const ManagerAgent = "manager"

// Reply is the uniform result crossing the dispatcher boundary. Content
// carries successful output, Message carries error text, and Raw carries an
// optional structured payload from a search collaborator.
type Reply struct {
	Status    Status         `json:"status"`
	Content   string         `json:"content,omitempty"`
	Message   string         `json:"message,omitempty"`
	Agent     string         `json:"agent,omitempty"`
	Raw       map[string]any `json:"raw_data,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// Success builds a success reply with the given content.
func Success(content string) Reply {
	return Reply{
		Status:    StatusSuccess,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// Error builds an error reply with the given message.
func Error(message string) Reply {
	return Reply{
		Status:    StatusError,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithAgent tags the reply with the responder that produced it.
func (r Reply) WithAgent(name string) Reply {
	r.Agent = name
	return r
}

// WithRaw attaches the structured collaborator payload.
func (r Reply) WithRaw(raw map[string]any) Reply {
	r.Raw = raw
	return r
}

// OK reports whether the reply carries a successful result.
func (r Reply) OK() bool {
	return r.Status == StatusSuccess
}
