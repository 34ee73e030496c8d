package routing

import (
	"testing"

	"github.com/adalundhe/voyant/core/agent"
	"github.com/stretchr/testify/assert"
)

func TestSelect_FoodKeywordsAlwaysRouteToFood(t *testing.T) {
	router := NewRouter()

	messages := []string{
		"any good restaurant for dinner",
		"where should I eat lunch",
		"nhà hàng nào ngon",
	}
	history := []agent.Turn{
		{Role: agent.RoleAssistant, Content: "...", Agent: "hotel"},
	}

	for _, msg := range messages {
		assert.Equal(t, "food", router.Select(msg, nil), msg)
		assert.Equal(t, "food", router.Select(msg, history), msg)
	}
}

func TestSelect_NoMatchesFallsToDefault(t *testing.T) {
	router := NewRouter()

	assert.Equal(t, DefaultResponder, router.Select("xyzzy", nil))
}

func TestSelect_HistoryBonusBreaksZeroScoreTie(t *testing.T) {
	router := NewRouter()
	history := []agent.Turn{
		{Role: agent.RoleAssistant, Content: "a", Agent: "weather"},
		{Role: agent.RoleAssistant, Content: "b", Agent: "weather"},
		{Role: agent.RoleAssistant, Content: "c", Agent: "weather"},
	}

	assert.Equal(t, "weather", router.Select("xyzzy", history))
}

func TestSelect_ManagerTurnsCarryNoBonus(t *testing.T) {
	router := NewRouter()
	history := []agent.Turn{
		{Role: agent.RoleAssistant, Content: "a", Agent: agent.ManagerAgent},
	}

	assert.Equal(t, DefaultResponder, router.Select("xyzzy", history))
}

func TestSelect_OnlyLastThreeTurnsCount(t *testing.T) {
	router := NewRouter()
	history := []agent.Turn{
		{Role: agent.RoleAssistant, Content: "old", Agent: "weather"},
		{Role: agent.RoleUser, Content: "1"},
		{Role: agent.RoleUser, Content: "2"},
		{Role: agent.RoleUser, Content: "3"},
	}

	// The weather turn fell outside the window, so no bonus applies.
	assert.Equal(t, DefaultResponder, router.Select("xyzzy", history))
}

func TestSelect_TieFallsToPriorityOrder(t *testing.T) {
	router := NewRouter()

	// "ticket" hits flight, "room" hits hotel; flight outranks hotel.
	assert.Equal(t, "flight", router.Select("ticket and room", nil))
}

func TestSelect_CaseInsensitive(t *testing.T) {
	router := NewRouter()

	assert.Equal(t, "flight", router.Select("BOOK a FLIGHT", nil))
}

func TestScore_NeverNegative(t *testing.T) {
	router := NewRouter()

	for _, score := range router.Score("hello", nil) {
		assert.GreaterOrEqual(t, score, 0.0)
	}
}

func TestScore_BonusIsAdditive(t *testing.T) {
	router := NewRouter()
	history := []agent.Turn{
		{Role: agent.RoleAssistant, Content: "a", Agent: "flight"},
	}

	base := router.Score("flight to Tokyo", nil)["flight"]
	boosted := router.Score("flight to Tokyo", history)["flight"]

	assert.Equal(t, base+0.5, boosted)
}

func TestSelect_VietnameseKeywords(t *testing.T) {
	router := NewRouter()

	assert.Equal(t, "flight", router.Select("đặt vé chuyến bay sáng mai", nil))
	assert.Equal(t, "weather", router.Select("thời tiết hôm nay thế nào", nil))
}
