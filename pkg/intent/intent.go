// Package intent implements the keyword heuristics that route a chat
// question to a tool.
package intent

import "strings"

// Intent is the routing decision for one question.
type Intent string

const (
	Weather Intent = "weather"
	Time    Intent = "time"
	General Intent = "general"
)

// ClassifierFunc decides which tool, if any, a question calls for.
// Classify is the default; alternative heuristics can be injected.
type ClassifierFunc func(question string) Intent

// Keyword lists checked by Classify in priority order. Matching is by
// substring: "maritime" matches "time".
var (
	weatherKeywords = []string{"weather", "temperature", "rain", "sunny", "cloudy"}
	timeKeywords    = []string{"time", "date", "today", "what's the time"}
)

// Classify routes a question by case-insensitive substring matching,
// weather keywords first. Unmatched questions are General.
func Classify(question string) Intent {
	lower := strings.ToLower(question)
	for _, kw := range weatherKeywords {
		if strings.Contains(lower, kw) {
			return Weather
		}
	}
	for _, kw := range timeKeywords {
		if strings.Contains(lower, kw) {
			return Time
		}
	}
	return General
}
