// Package recommend ranks restaurants against a user's preferred categories.
package recommend

import (
	"sort"

	"business-service/models"
)

// FallbackSize is how many businesses are returned when the user has no
// preferences. The fallback is the first rows in persisted order, not a
// ranking by any quality signal.
const FallbackSize = 10

// Scored is a business annotated with its category overlap
type Scored struct {
	models.Business
	MatchScore int `json:"matchScore"`
}

// Rank orders businesses by how many of their categories appear in prefs.
//
// With no preferences it returns the first FallbackSize businesses unchanged
// and with a zero score. Otherwise it keeps only businesses sharing at least
// one category, ordered by descending score with ties left in input order.
// When preferences exist but nothing overlaps the result is empty; there is
// no fallback on that path.
func Rank(businesses []models.Business, prefs []string) []Scored {
	if len(prefs) == 0 {
		n := len(businesses)
		if n > FallbackSize {
			n = FallbackSize
		}
		out := make([]Scored, 0, n)
		for _, b := range businesses[:n] {
			out = append(out, Scored{Business: b})
		}
		return out
	}

	wanted := make(map[string]struct{}, len(prefs))
	for _, p := range prefs {
		wanted[p] = struct{}{}
	}

	out := []Scored{}
	for _, b := range businesses {
		if score := MatchScore(b.Categories, wanted); score > 0 {
			out = append(out, Scored{Business: b, MatchScore: score})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchScore > out[j].MatchScore
	})
	return out
}

// MatchScore counts the distinct categories that are also in wanted.
// Comparison is exact and case-sensitive.
func MatchScore(categories []string, wanted map[string]struct{}) int {
	seen := make(map[string]struct{}, len(categories))
	score := 0
	for _, c := range categories {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		if _, ok := wanted[c]; ok {
			score++
		}
	}
	return score
}
