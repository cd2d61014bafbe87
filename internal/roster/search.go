package roster

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// matchQuery accepts a name when the query is an in-order subsequence of it, or when the
// query is within a small edit distance of one of its words ("talin" finds "Talon").
func matchQuery(name, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	n := strings.ToLower(name)
	if isSubsequence(n, q) {
		return true
	}
	tolerance := max(1, utf8.RuneCountInString(q)/4)
	for _, word := range strings.Fields(n) {
		if levenshtein.ComputeDistance(word, q) <= tolerance {
			return true
		}
	}
	return false
}

func isSubsequence(label, query string) bool {
	lr := []rune(label)
	from := 0
	for _, ch := range query {
		found := false
		for j := from; j < len(lr); j++ {
			if lr[j] == ch {
				from = j + 1
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
