// Package classify derives a per-request classification from the latest
// user text: whether it touches a sensitive topic, whether it names a known
// service, and which language it is written in. Everything is a
// case-insensitive substring check against the injected policy tables.
package classify

import (
	"strings"

	"github.com/hporwanda/ishema-chatbot/internal/policy"
)

// Result is the outcome of classifying one user message.
type Result struct {
	// Sensitive reports that the text matched a sensitive-topic phrase.
	Sensitive bool
	// Service is the first known service named in the text, or "".
	Service string
	// Language is the detected reply language, English by default.
	Language policy.Language
}

// ShortCircuit reports whether the request must be answered with a canned
// policy reply instead of reaching retrieval or the model.
func (r Result) ShortCircuit() bool {
	return r.Sensitive || r.Service != ""
}

// Classifier runs the keyword checks configured by a policy.
type Classifier struct {
	pol *policy.Policy
}

// New creates a classifier over the given policy tables.
func New(pol *policy.Policy) *Classifier {
	return &Classifier{pol: pol}
}

// Classify inspects the user text. Empty input yields the zero result with
// English as the language; no check ever fails.
func (c *Classifier) Classify(text string) Result {
	result := Result{Language: policy.English}
	if text == "" {
		return result
	}

	lower := strings.ToLower(text)

	for _, keyword := range c.pol.SensitiveKeywords {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			result.Sensitive = true
			break
		}
	}

	for _, service := range c.pol.KnownServices {
		if strings.Contains(lower, strings.ToLower(service)) {
			result.Service = service
			break
		}
	}

	result.Language = c.detectLanguage(text, lower)
	return result
}

// detectLanguage prefers the explicit French marker, then any Kinyarwanda
// token, then falls back to English.
func (c *Classifier) detectLanguage(text, lower string) policy.Language {
	if strings.Contains(text, c.pol.FrenchMarker) {
		return policy.French
	}
	for _, keyword := range c.pol.KinyarwandaKeywords {
		if strings.Contains(lower, keyword) {
			return policy.Kinyarwanda
		}
	}
	return policy.English
}
