// Package entities provides best-effort extraction of location mentions from
// raw text and the accumulated per-session entity bag.
package entities

// Categories populated by the extractor and carried in session state.
const (
	CategoryLocations = "locations"
	CategoryDates     = "dates"
	CategoryKeywords  = "keywords"
)

// Bag maps an entity category to its extracted string values.
type Bag map[string][]string

// NewBag returns a bag with the standard categories initialized empty.
func NewBag() Bag {
	return Bag{
		CategoryLocations: {},
		CategoryDates:     {},
		CategoryKeywords:  {},
	}
}

// Merge folds other into the bag. Values are appended in first-appearance
// order and deduplicated; existing values are never overwritten or removed.
func (b Bag) Merge(other Bag) {
	for category, values := range other {
		b[category] = appendUnique(b[category], values)
	}
}

// Locations returns the values recorded under the locations category.
func (b Bag) Locations() []string {
	return b[CategoryLocations]
}

// Dates returns the values recorded under the dates category.
func (b Bag) Dates() []string {
	return b[CategoryDates]
}

// Clone returns an independent deep copy of the bag.
func (b Bag) Clone() Bag {
	clone := make(Bag, len(b))
	for category, values := range b {
		clone[category] = append([]string(nil), values...)
	}
	return clone
}

func appendUnique(existing, incoming []string) []string {
	seen := make(map[string]struct{}, len(existing))
	for _, v := range existing {
		seen[v] = struct{}{}
	}

	for _, v := range incoming {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		existing = append(existing, v)
	}
	return existing
}
