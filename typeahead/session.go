package typeahead

import "strings"

// Session encapsulates all state for a single Typeahead Search run: the
// entry store (by id) and the radix trie indexing every entry's tokens.
//
// A Session is not safe for concurrent use. It is driven by a
// single-threaded, synchronous command loop.
type Session struct {
	entries map[string]*Entry
	root    *trieNode
	added   int // counts successful Add calls; source of Entry.Seq
}

// NewSession constructs an empty Typeahead Search session.
func NewSession() *Session {
	return &Session{
		entries: make(map[string]*Entry),
		root:    newTrieNode(),
	}
}

// Add indexes a new entry, or replaces an existing one sharing the same
// id (delete-then-add semantics).
//
// Every whitespace-separated word of data is tokenized and inserted into
// the radix trie against id. A fresh Seq is assigned on every successful
// Add, including replacement of an existing id.
func (s *Session) Add(typ EntryType, id string, score float64, data string) error {
	if id == "" {
		return ErrEmptyID
	}
	if !typ.valid() {
		return ErrBadType
	}

	if _, exists := s.entries[id]; exists {
		s.Delete(id)
	}

	s.added++
	entry := &Entry{Type: typ, ID: id, Score: score, Data: data, Seq: s.added}
	s.entries[id] = entry

	for _, token := range tokenize(data) {
		s.root.insertIntoChildren(token, id)
	}

	return nil
}

// Delete removes the entry with the given id and unindexes every one of
// its tokens from the trie. Deleting an unknown id is a no-op.
func (s *Session) Delete(id string) {
	entry, ok := s.entries[id]
	if !ok {
		return
	}
	delete(s.entries, id)

	for _, token := range tokenize(entry.Data) {
		s.deleteWord(token, id)
		if len(s.root.children) == 0 {
			// The trie is now structurally empty; replace it wholesale
			// rather than continue walking a path that can no longer exist.
			s.root = newTrieNode()

			return
		}
	}
}

// search returns the set of entry ids indexed under prefix, or an empty
// set if none match. The root participates like any other node since
// search never reads a node's own entry ids except at the
// fully-consumed-inside-an-edge base case.
func (s *Session) search(prefix string) map[string]struct{} {
	return s.root.search(prefix)
}

// deleteWord removes id from the path spelled by word, rooted at the
// session's trie. The root itself is never pruned or collapsed — only
// the edge leading away from it may be removed or merged.
func (s *Session) deleteWord(word, id string) {
	if word == "" {
		return
	}

	key := word[0]
	edge, ok := s.root.children[key]
	if !ok || !strings.HasPrefix(word, edge.label) {
		return // not indexed under this path: no-op
	}

	newEdge := deleteAlongEdge(edge, word[len(edge.label):], id)
	if newEdge == nil {
		delete(s.root.children, key)

		return
	}
	s.root.children[key] = newEdge
}
