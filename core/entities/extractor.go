package entities

import "regexp"

// The extractor recognizes prepositional phrases followed by a capitalized
// phrase, in English and Vietnamese. Recall is deliberately low: this is
// substring-level matching, not semantic understanding, and it stays that way.
var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:at|in|to|from) ([A-Z][a-zA-Z]+(?: [A-Z][a-zA-Z]+)*)`),
	regexp.MustCompile(`(?:ở|tại|đến|từ) ([A-Z][a-zA-Z]+(?: [A-Z][a-zA-Z]+)*)`),
}

// Extract recovers candidate location names from text. Only the locations
// category is populated; dates and keywords stay empty.
func Extract(text string) Bag {
	bag := NewBag()

	var locations []string
	for _, pattern := range locationPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			locations = append(locations, match[1])
		}
	}

	bag[CategoryLocations] = appendUnique(bag[CategoryLocations], locations)
	return bag
}
