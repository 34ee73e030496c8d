// Package routing selects the responder for a message by scoring fixed
// bilingual keyword lists against the lowered text, with a small bonus for
// topical continuity drawn from recent history.
package routing

import (
	"strings"

	"github.com/adalundhe/voyant/core/agent"
)

const (
	// DefaultResponder receives every message no keyword list claims.
	DefaultResponder = "travel"

	// historyWindow is how many trailing turns contribute continuity bonus.
	historyWindow = 3

	// continuityBonus is added per recent turn tagged with a responder.
	continuityBonus = 0.5
)

// priorityOrder breaks score ties deterministically. Earlier wins.
var priorityOrder = []string{"flight", "hotel", "food", "weather", "place", "travel"}

// defaultKeywords holds the English and Vietnamese terms for each responder.
// Both languages coexist in one list and match independently.
var defaultKeywords = map[string][]string{
	"weather": {
		"weather", "climate", "temperature", "rain", "sunny", "forecast",
		"mưa", "nắng", "nhiệt độ", "thời tiết", "khí hậu", "dự báo",
	},
	"food": {
		"food", "restaurant", "cuisine", "dish", "eat", "dinner", "lunch", "breakfast",
		"ăn", "nhà hàng", "món", "đồ ăn", "ẩm thực", "quán", "tiệm",
	},
	"travel": {
		"travel", "trip", "visit", "tour", "destination", "itinerary",
		"du lịch", "thăm", "đi", "đến", "địa điểm", "lịch trình",
	},
	"flight": {
		"flight", "airplane", "airline", "ticket", "airport",
		"máy bay", "vé", "đặt vé", "chuyến bay", "hãng hàng không", "sân bay",
	},
	"hotel": {
		"hotel", "accommodation", "room", "stay", "lodge", "resort",
		"khách sạn", "phòng", "đặt phòng", "nghỉ", "lưu trú",
	},
	"place": {
		"place", "attraction", "landmark", "museum", "temple", "beach",
		"thắng cảnh", "bảo tàng", "công viên", "chùa", "biển",
	},
}

// Router scores every responder against a message plus recent history.
// It is a pure function of its inputs and safe for concurrent use.
type Router struct {
	keywords map[string][]string
}

// NewRouter builds a router over the fixed keyword table.
func NewRouter() *Router {
	return &Router{keywords: defaultKeywords}
}

// NewRouterWithKeywords builds a router over a caller-supplied table. Only
// responders present in the table are routable.
func NewRouterWithKeywords(keywords map[string][]string) *Router {
	if keywords == nil {
		keywords = defaultKeywords
	}
	return &Router{keywords: keywords}
}

// Select returns the name of the responder with the strictly highest score.
// Ties fall to the fixed priority order; an all-zero board falls to the
// default responder.
func (r *Router) Select(message string, history []agent.Turn) string {
	scores := r.Score(message, history)

	best := DefaultResponder
	bestScore := 0.0
	for _, name := range priorityOrder {
		if scores[name] > bestScore {
			best = name
			bestScore = scores[name]
		}
	}
	// Responders outside the canonical order still participate.
	for name, score := range scores {
		if score > bestScore {
			best = name
			bestScore = score
		}
	}

	if bestScore <= 0 {
		return DefaultResponder
	}
	return best
}

// Score returns the full scoreboard: keyword-substring counts plus the
// history continuity bonus. Scores are never negative.
func (r *Router) Score(message string, history []agent.Turn) map[string]float64 {
	lowered := strings.ToLower(message)

	scores := make(map[string]float64, len(r.keywords))
	for name, keywords := range r.keywords {
		count := 0
		for _, keyword := range keywords {
			if strings.Contains(lowered, keyword) {
				count++
			}
		}
		scores[name] = float64(count)
	}

	for _, turn := range recentTurns(history) {
		if turn.Agent == "" || turn.Agent == agent.ManagerAgent {
			continue
		}
		if _, ok := scores[turn.Agent]; ok {
			scores[turn.Agent] += continuityBonus
		}
	}

	return scores
}

func recentTurns(history []agent.Turn) []agent.Turn {
	if len(history) <= historyWindow {
		return history
	}
	return history[len(history)-historyWindow:]
}
