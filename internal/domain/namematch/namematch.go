// Package namematch ranks hitter identifiers against a free-text query.
// It replaces ad-hoc substring lookups with an explicit fuzzy-match
// interface decoupled from the scoring core.
package namematch

import (
	"sort"
	"strings"
)

// Entry is one searchable hitter.
type Entry struct {
	ID   string
	Name string
}

// Candidate is a ranked match. Score is in [0, 1], higher is closer.
type Candidate struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// Substring matches outrank pure edit-distance matches but never an exact
// one.
const (
	exactScore     = 1.0
	substringScore = 0.9
	minScore       = 0.3
)

// Rank scores every entry against the query and returns the closest
// candidates, best first, ties broken by id ascending for determinism.
// Entries scoring below a noise floor are dropped. limit <= 0 means no cap.
func Rank(query string, entries []Entry, limit int) []Candidate {
	q := normalize(query)
	if q == "" {
		return nil
	}

	candidates := make([]Candidate, 0, len(entries))
	for _, e := range entries {
		s := similarity(q, normalize(e.Name))
		if s < minScore {
			continue
		}
		candidates = append(candidates, Candidate{ID: e.ID, Name: e.Name, Score: s})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].ID < candidates[j].ID
	})

	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// similarity scores two normalized strings.
func similarity(query, name string) float64 {
	if name == "" {
		return 0
	}
	if query == name {
		return exactScore
	}
	if strings.Contains(name, query) {
		// Longer queries pin down more of the name.
		return substringScore * float64(len(query)) / float64(len(name))
	}
	dist := levenshtein(query, name)
	longest := len(query)
	if len(name) > longest {
		longest = len(name)
	}
	return 1.0 - float64(dist)/float64(longest)
}

// levenshtein computes the edit distance with a two-row table.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min3(cur[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
