// Package feed implements the Feed Optimizer session: a time-windowed
// corpus of scored stories and a bounded-knapsack selector that computes,
// on each refresh, the highest-scoring subset of stories that fits in a
// fixed browser height.
//
// What
//
//   - Stories arrive in non-decreasing time order via AddStory and are
//     assigned monotonically increasing ids (1, 2, 3, …).
//   - Stories are indexed twice: by id (for O(1) lookup/removal) and by
//     pixel height, each height bucket kept sorted score-descending with
//     id-ascending ties, so the DP selector can always find "the best
//     unused story of height h" in O(1) amortized scan.
//   - Refresh(t) first prunes stories whose time falls outside the
//     sliding window [t-time_window, ∞), then solves a bounded 0/1
//     knapsack by dynamic programming over browser height, choosing the
//     lexicographically optimal feed: maximize total score, then minimize
//     story count, then minimize the ascending id tuple.
//
// Why
//
//   - The height buckets let the DP recurrence consider only one
//     candidate extension per distinct height at each step, instead of
//     scanning every story: within a bucket, only the highest-scoring
//     story not already used in the sub-solution can possibly improve it
//     (swapping it for any lower-scoring bucket member never helps).
//   - A fresh DP table is built on every Refresh (no cross-refresh
//     memoization): expiry and new arrivals change the candidate set
//     between refreshes, so the table cannot be reused.
//
// Complexity
//
//   - AddStory:  O(bucket size) to keep a bucket ordered. An
//     order-statistic tree would make this O(log n); bucket sizes in
//     expected workloads do not warrant one.
//   - Prune:     O(k) where k is the number of expired stories.
//   - Refresh:   O(H · D) rule extensions, where H = browser_height and
//     D = number of distinct story heights currently held, each O(H) to
//     copy and compare, so O(H² · D) in the worst case.
//
// Determinism
//
//	Tie-breaking is total: equal score ⇒ fewer stories wins; equal score
//	and count ⇒ the lexicographically smaller ascending-id tuple wins.
//	Because ids are unique, this tie-break is always decisive, so Refresh
//	is a pure function of the session's current contents and t.
package feed
