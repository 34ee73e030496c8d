package flight

import (
	"regexp"
	"strings"
)

// Route extraction mirrors the loose phrasing users actually type. Vietnamese
// prepositions are matched alongside the English from/to pair.
var fromPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)từ\s+([A-Za-z\s]+?)\s+(?:đến|tới)`),
	regexp.MustCompile(`(?i)from\s+([A-Za-z\s]+?)\s+to\b`),
	regexp.MustCompile(`(?i)từ\s+([A-Za-z\s]+)`),
}

var toPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)đến\s+([A-Za-z\s]+)`),
	regexp.MustCompile(`(?i)tới\s+([A-Za-z\s]+)`),
	regexp.MustCompile(`(?i)from\s+[A-Za-z\s]+?\s+to\s+([A-Za-z\s]+)`),
}

// extractRoute pulls the origin and destination out of free text. Either side
// may come back empty when the phrasing does not name it.
func extractRoute(message string) (from, to string) {
	for _, pattern := range fromPatterns {
		if matches := pattern.FindStringSubmatch(message); matches != nil {
			from = strings.TrimSpace(matches[1])
			break
		}
	}
	for _, pattern := range toPatterns {
		if matches := pattern.FindStringSubmatch(message); matches != nil {
			to = strings.TrimSpace(matches[1])
			break
		}
	}
	return from, to
}
