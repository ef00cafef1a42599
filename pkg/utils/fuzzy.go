package utils

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

const DefaultMatchThreshold = 50

// FuzzyRatio scores the similarity of two strings on a 0-100 scale,
// case-insensitive, based on edit distance over the longer input.
func FuzzyRatio(a, b string) int {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if a == b {
		return 100
	}

	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 100
	}

	dist := levenshtein.ComputeDistance(a, b)
	return (longest - dist) * 100 / longest
}

// MatchesPlaceName reports whether a search candidate is close enough to the
// place name the planner asked for.
func MatchesPlaceName(query, candidate string, threshold int) bool {
	return FuzzyRatio(query, candidate) >= threshold
}
