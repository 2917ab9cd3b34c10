package catalog

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// matchThreshold is the minimum similarity for a fuzzy subject match.
const matchThreshold = 0.6

// MatchSubject resolves a free-typed subject name against the grade's
// catalog. Exact and case-insensitive prefix matches win outright; otherwise
// the closest name by edit distance is returned if it is similar enough.
func MatchSubject(grade, typed string) (string, bool) {
	typed = strings.TrimSpace(typed)
	if typed == "" {
		return "", false
	}
	subjects := Subjects(grade)
	lower := strings.ToLower(typed)

	for _, s := range subjects {
		if strings.EqualFold(s, typed) {
			return s, true
		}
	}
	for _, s := range subjects {
		if strings.HasPrefix(strings.ToLower(s), lower) {
			return s, true
		}
	}

	best, bestScore := "", 0.0
	for _, s := range subjects {
		if score := similarity(lower, strings.ToLower(s)); score > bestScore {
			best, bestScore = s, score
		}
	}
	if bestScore >= matchThreshold {
		return best, true
	}
	return "", false
}

func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := max(len(a), len(b))
	if longest == 0 {
		return 0
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}
