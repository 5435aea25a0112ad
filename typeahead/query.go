package typeahead

import (
	"sort"
	"strings"
)

// Query returns up to k entry ids matching every one of prefixes (after
// tokenization), ranked by score descending with ties broken by
// insertion sequence descending.
//
// An empty or all-punctuation prefixes argument, or no matches, yields an
// empty slice.
func (s *Session) Query(k int, prefixes []string) ([]string, error) {
	return s.rankedQuery(k, nil, prefixes)
}

// WeightedQuery behaves like Query, except each matching entry's score is
// multiplied by boosts[entry.Type] and boosts[entry.ID] (both default to
// 1 if absent) before ranking.
func (s *Session) WeightedQuery(k int, boosts map[string]float64, prefixes []string) ([]string, error) {
	return s.rankedQuery(k, boosts, prefixes)
}

// rankedQuery implements the pipeline shared by Query and WeightedQuery:
// intersect per-token id sets, materialize entries, rank by effective
// score, and truncate to k.
func (s *Session) rankedQuery(k int, boosts map[string]float64, prefixes []string) ([]string, error) {
	if k <= 0 {
		return nil, ErrBadResultCap
	}

	tokens := tokenize(strings.Join(prefixes, " "))
	if len(tokens) == 0 {
		return nil, nil
	}

	result := s.search(tokens[0])
	for _, token := range tokens[1:] {
		result = intersect(result, s.search(token))
		if len(result) == 0 {
			break
		}
	}

	matches := make([]*Entry, 0, len(result))
	for id := range result {
		if entry, ok := s.entries[id]; ok {
			matches = append(matches, entry)
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		ea := effectiveScore(a, boosts)
		eb := effectiveScore(b, boosts)
		if ea != eb {
			return ea > eb
		}

		return a.Seq > b.Seq
	})

	if len(matches) > k {
		matches = matches[:k]
	}

	ids := make([]string, len(matches))
	for i, entry := range matches {
		ids[i] = entry.ID
	}

	return ids, nil
}

// effectiveScore computes score * boosts[type] * boosts[id], treating a
// missing boosts map (the plain Query path) or a missing key as a
// multiplier of 1.
func effectiveScore(e *Entry, boosts map[string]float64) float64 {
	effective := e.Score
	if boosts == nil {
		return effective
	}
	if factor, ok := boosts[string(e.Type)]; ok {
		effective *= factor
	}
	if factor, ok := boosts[e.ID]; ok {
		effective *= factor
	}

	return effective
}

// intersect returns the set intersection of a and b without mutating
// either input.
func intersect(a, b map[string]struct{}) map[string]struct{} {
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}

	out := make(map[string]struct{}, len(small))
	for id := range small {
		if _, ok := large[id]; ok {
			out[id] = struct{}{}
		}
	}

	return out
}
