package search

import (
	"context"
	"fmt"
)

// Flights runs a one-way flight search between two cities.
func (c *Client) Flights(ctx context.Context, fromCity, toCity, date string) (map[string]any, error) {
	return c.Search(ctx, EngineFlights, map[string]string{
		"departure_id":  fromCity,
		"arrival_id":    toCity,
		"outbound_date": date,
		"type":          "2", // one-way
		"hl":            "vi",
	})
}

// Hotels runs a hotel search for a city and stay window.
func (c *Client) Hotels(ctx context.Context, city, checkIn, checkOut string) (map[string]any, error) {
	return c.Search(ctx, EngineHotels, map[string]string{
		"q":              fmt.Sprintf("hotels in %s", city),
		"check_in_date":  checkIn,
		"check_out_date": checkOut,
		"hl":             "vi",
	})
}

// Places runs a point-of-interest search within a city.
func (c *Client) Places(ctx context.Context, city, query string) (map[string]any, error) {
	return c.Search(ctx, EngineMaps, map[string]string{
		"q":    fmt.Sprintf("%s in %s", query, city),
		"type": "search",
		"hl":   "vi",
	})
}
