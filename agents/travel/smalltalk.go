package travel

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode"
)

var greetingPhrases = []string{
	"hi", "hello", "hey", "greetings", "good morning", "good afternoon",
	"good evening", "howdy", "hi there", "hello there", "hey there",
	"chào", "xin chào", "chào bạn", "chào anh", "chào chị",
}

var thankYouPhrases = []string{
	"thank you", "thanks", "thank you very much", "thanks a lot",
	"cảm ơn", "cảm ơn bạn", "cảm ơn anh", "cảm ơn chị",
}

var funFacts = []string{
	"Did you know? The world's shortest commercial flight is just 2 minutes long, between two Scottish islands!",
	"Travel tip: Rolling your clothes instead of folding them saves space in your suitcase!",
	"Fun fact: France is the most visited country in the world.",
	"Did you know? Japan has more than 5 million vending machines!",
	"Travel tip: Always keep a digital copy of your important documents when traveling.",
	"Did you know? The Great Wall of China is more than 21,000 km long!",
	"Travel tip: Learning a few basic phrases in the local language can make your trip much smoother.",
	"Fun fact: Venice has over 400 bridges!",
	"Did you know? The currency with the highest value is the Kuwaiti Dinar.",
}

func isGreeting(text string) bool {
	return containsAny(text, greetingPhrases)
}

func isThankYou(text string) bool {
	return containsAny(text, thankYouPhrases)
}

// containsAny matches phrases on word boundaries. Short phrases like "hi"
// appear inside ordinary Vietnamese syllables ("nhiều", "chi"), so bare
// substring matching would hijack regular messages.
func containsAny(text string, phrases []string) bool {
	padded := " " + normalize(text) + " "
	for _, phrase := range phrases {
		if strings.Contains(padded, " "+phrase+" ") {
			return true
		}
	}
	return false
}

// normalize lowercases and replaces punctuation with spaces so every word in
// the message is space-delimited.
func normalize(text string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, text)
	return strings.Join(strings.Fields(mapped), " ")
}

func greetingResponse(rng *rand.Rand) string {
	responses := []string{
		"Hi there! Ready for your next adventure? Ask me anything about travel!",
		fmt.Sprintf("Hello! 🌍 Where would you like to go today? (Tip: %s)", funFacts[rng.Intn(len(funFacts))]),
		"Hey! I'm here to make your trip awesome. Need a flight, hotel, or a cool place to visit?",
		fmt.Sprintf("Greetings! %s", funFacts[rng.Intn(len(funFacts))]),
		"Hi! Let's plan something amazing together.",
	}
	return responses[rng.Intn(len(responses))]
}

const thankYouResponse = "You're welcome! If you need more travel tips, just ask!"
