// Package delegation decides whether a selected responder needs supporting
// information from a second responder before answering, and synthesizes the
// sub-query. The rule table is deliberately narrow: it demonstrates
// cross-responder collaboration, it is not a capability-matching engine.
package delegation

import (
	"fmt"
	"strings"

	"github.com/adalundhe/voyant/core/entities"
)

// Request names the responder to consult and the synthesized query.
type Request struct {
	Target string
	Query  string
}

// Rule matches a routing outcome and produces a delegation request.
type Rule struct {
	// Responder the rule applies to.
	Responder string

	// Match reports whether the rule fires for this message and bag.
	Match func(message string, bag entities.Bag) bool

	// Target is the responder to consult.
	Target string

	// Query synthesizes the sub-query sent to the target.
	Query func(message string, bag entities.Bag) string
}

// Policy is the enumerable delegation rule table.
type Policy struct {
	rules []Rule
}

// weatherTriggerCity is the destination that makes a flight query consult
// the weather responder first.
const weatherTriggerCity = "Đà Nẵng"

// NewPolicy returns the shipped rule table.
func NewPolicy() *Policy {
	return &Policy{
		rules: []Rule{
			{
				Responder: "flight",
				Match: func(message string, _ entities.Bag) bool {
					return strings.Contains(message, weatherTriggerCity)
				},
				Target: "weather",
				Query: func(_ string, _ entities.Bag) string {
					return fmt.Sprintf("Thời tiết ở %s trong tuần này", weatherTriggerCity)
				},
			},
		},
	}
}

// NewPolicyWithRules returns a policy over a caller-supplied table.
func NewPolicyWithRules(rules []Rule) *Policy {
	return &Policy{rules: rules}
}

// Check returns the delegation request for the first matching rule, or nil
// when the selected responder can answer alone.
func (p *Policy) Check(selected, message string, bag entities.Bag) *Request {
	for _, rule := range p.rules {
		if rule.Responder != selected {
			continue
		}
		if !rule.Match(message, bag) {
			continue
		}
		return &Request{
			Target: rule.Target,
			Query:  rule.Query(message, bag),
		}
	}
	return nil
}
