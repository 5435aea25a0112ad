// Package typeahead implements the Typeahead Search session: a corpus of
// typed records indexed by word prefix through a compressed radix trie,
// supporting insertion, deletion with structural collapse, and ranked
// prefix-query retrieval.
//
// What
//
//   - Entries (question/user/topic/board records) are added with a type,
//     a caller-chosen id, a score, and a data string. Each whitespace-split
//     word of data, lowercased and stripped of leading/trailing ASCII
//     punctuation, is indexed against the entry's id.
//   - The index is a radix trie (compressed prefix tree): edges carry
//     multi-character labels, not single characters, so a chain of
//     single-child nodes collapses into one edge. Every trie node other
//     than the root carries the set of entry ids reachable through the
//     prefix spelled by the path to that node.
//   - Query/WeightedQuery tokenize their prefix arguments the same way,
//     intersect the per-prefix id sets, materialize the surviving ids into
//     Entry records, rank by score (times any boost multipliers), and
//     return the top k ids.
//
// Why a radix trie
//
//   - A naive one-character-per-node trie spends one allocation and one
//     map lookup per input character; compressing runs of single-child
//     nodes into one edge label cuts both, which matters because every
//     indexed word walks the full trie from the root.
//
// Determinism
//
//	Query ranking breaks ties by insertion sequence number (seq)
//	descending — more recently added entries win — making the output of
//	Query/WeightedQuery a total order over any fixed corpus, never
//	dependent on map iteration order.
//
// Complexity
//
//   - Add:            O(len(data)) to tokenize, O(word length) per token
//     to insert/split trie edges.
//   - Delete:          O(total indexed token length for that entry).
//   - Query:           O(sum of prefix lengths) to search, plus
//     O(n log n) to rank n matching entries.
package typeahead
