package feed

import "sort"

// rule is one candidate (or finalized) solution to the bounded-knapsack
// recurrence: the set of story ids chosen for some browser height, its
// combined score, and a fast membership test used while scanning height
// buckets for the next unused top story.
//
// ids is always kept sorted ascending so the lexicographic tie-break can
// compare two rules element-by-element without re-sorting.
type rule struct {
	score int
	ids   []int
	inSet map[int]struct{}
}

// emptyRule returns the canonical R[0] base case: the empty feed.
func emptyRule() rule {
	return rule{score: 0, ids: nil, inSet: map[int]struct{}{}}
}

// extend returns a new rule equal to r plus the given story, without
// mutating r. r and the returned rule never alias the same backing slice
// or map, since multiple R[h] entries may extend the same prior rule.
func (r rule) extend(s *Story) rule {
	ids := make([]int, len(r.ids), len(r.ids)+1)
	copy(ids, r.ids)
	ids = append(ids, s.ID)
	sort.Ints(ids)

	inSet := make(map[int]struct{}, len(r.inSet)+1)
	for id := range r.inSet {
		inSet[id] = struct{}{}
	}
	inSet[s.ID] = struct{}{}

	return rule{score: r.score + s.Score, ids: ids, inSet: inSet}
}

// less reports whether r is strictly preferred to other under the
// lexicographic objective:
//
//  1. higher total score wins (so we compare -score ascending),
//  2. fewer stories wins,
//  3. the lexicographically smaller ascending-id tuple wins.
//
// Because story ids are unique integers, rule 3 is always decisive
// between two distinct id sets, so less defines a total order and the
// argmin over any candidate set is unique.
func (r rule) less(other rule) bool {
	if r.score != other.score {
		return r.score > other.score
	}
	if len(r.ids) != len(other.ids) {
		return len(r.ids) < len(other.ids)
	}
	for i := range r.ids {
		if r.ids[i] != other.ids[i] {
			return r.ids[i] < other.ids[i]
		}
	}

	return false // identical rules
}

// Refresh prunes expired stories as of time t, then recomputes the
// optimal feed for the session's configured browser height via bounded
// 0/1 knapsack dynamic programming.
//
// The DP table is rebuilt from scratch on every call; no state survives
// between refreshes. If the store is empty after pruning, Refresh returns
// the zero Feed immediately without allocating a table.
//
// Complexity: O(browserHeight * distinctHeights) rule extensions, each
// O(browserHeight) to copy/compare, so O(browserHeight^2 * distinctHeights)
// in the worst case.
func (s *Session) Refresh(t int) (Feed, error) {
	cutoff := t - s.timeWindow
	if err := s.Prune(cutoff); err != nil {
		return Feed{}, err
	}

	if s.empty() {
		return Feed{}, nil
	}

	heights := s.heights()

	table := make([]rule, s.browserHeight+1)
	table[0] = emptyRule()

	for h := 1; h <= s.browserHeight; h++ {
		best := table[h-1] // "skip one pixel": never regresses

		for _, sh := range heights {
			if sh > h {
				continue
			}
			prev := table[h-sh]
			bucket := s.buckets[sh]
			for _, story := range bucket {
				if _, used := prev.inSet[story.ID]; used {
					continue
				}
				candidate := prev.extend(story)
				if candidate.less(best) {
					best = candidate
				}
				break // only the first unused (highest-scoring) story matters
			}
		}

		table[h] = best
	}

	final := table[s.browserHeight]

	return Feed{TotalScore: final.score, IDs: final.ids}, nil
}
