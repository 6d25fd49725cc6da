package utils

import "strings"

// SafetyResult is the outcome of an allergen check. Conflict names the
// first offending allergen when Safe is false.
type SafetyResult struct {
	Safe     bool   `json:"safe"`
	Conflict string `json:"conflict,omitempty"`
}

// CheckSafety decides whether a food's ingredient tags conflict with the
// user's allergen exclusions. Matching is exact tag equality after
// lowercasing, never substring matching. When several allergens match, the
// one listed first in the allergen list wins. An absent or empty allergen
// list means no restrictions.
func CheckSafety(ingredients, allergens []string) SafetyResult {
	if len(allergens) == 0 {
		return SafetyResult{Safe: true}
	}

	tags := make(map[string]struct{}, len(ingredients))
	for _, ing := range ingredients {
		tags[strings.ToLower(ing)] = struct{}{}
	}

	for _, a := range allergens {
		if _, ok := tags[strings.ToLower(a)]; ok {
			return SafetyResult{Safe: false, Conflict: strings.ToLower(a)}
		}
	}
	return SafetyResult{Safe: true}
}
