// Package estimator implements the four domain analyzers. Each estimator
// infers a lifestyle pattern from keyword rules, prices it with fixed
// emission factors, and emits gated recommendations and findings.
package estimator

import "strings"

// keywordRule pairs a classification value with the substrings that select
// it. Rules are evaluated in declaration order; the first match wins.
type keywordRule[T any] struct {
	value    T
	keywords []string
}

// classify returns the value of the first rule whose keywords appear in the
// text, or def when nothing matches. The text must already be lowercased.
func classify[T any](text string, rules []keywordRule[T], def T) T {
	for _, rule := range rules {
		if containsAny(text, rule.keywords) {
			return rule.value
		}
	}
	return def
}

// containsAny reports whether any keyword appears as a substring of text.
func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

// clampUnit clamps a score to [0,1].
func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
