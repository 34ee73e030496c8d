package delegation

import (
	"testing"

	"github.com/adalundhe/voyant/core/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_FlightWithTriggerCityConsultsWeather(t *testing.T) {
	policy := NewPolicy()

	req := policy.Check("flight", "Tìm chuyến bay đến Đà Nẵng ngày mai", entities.NewBag())

	require.NotNil(t, req)
	assert.Equal(t, "weather", req.Target)
	assert.Equal(t, "Thời tiết ở Đà Nẵng trong tuần này", req.Query)
}

func TestCheck_FlightWithoutTriggerCity(t *testing.T) {
	policy := NewPolicy()

	assert.Nil(t, policy.Check("flight", "flights to Tokyo", entities.NewBag()))
}

func TestCheck_OtherRespondersNeverDelegate(t *testing.T) {
	policy := NewPolicy()

	assert.Nil(t, policy.Check("hotel", "khách sạn ở Đà Nẵng", entities.NewBag()))
	assert.Nil(t, policy.Check("travel", "du lịch Đà Nẵng", entities.NewBag()))
}

func TestCheck_CustomRules(t *testing.T) {
	policy := NewPolicyWithRules([]Rule{
		{
			Responder: "food",
			Match: func(_ string, bag entities.Bag) bool {
				return len(bag.Locations()) == 0
			},
			Target: "place",
			Query: func(message string, _ entities.Bag) string {
				return "best areas for " + message
			},
		},
	})

	req := policy.Check("food", "street food", entities.NewBag())

	require.NotNil(t, req)
	assert.Equal(t, "place", req.Target)
	assert.Equal(t, "best areas for street food", req.Query)
}
