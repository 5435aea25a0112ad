package typeahead

import "strings"

// trieNode is one node of the compressed prefix tree (radix trie) used to
// index entry tokens. entryIDs holds the set of entry ids whose indexed
// data contains a token beginning with the prefix spelled by the path
// from the root to this node; it is unused on the root node itself.
type trieNode struct {
	children map[byte]*trieEdge
	entryIDs map[string]struct{}
}

// trieEdge is one outgoing edge of a trieNode: a non-empty label (at
// least one character, first character unique among a node's siblings)
// and the node it leads to.
type trieEdge struct {
	label string
	child *trieNode
}

// newTrieNode returns an empty trie node ready for insertion.
func newTrieNode() *trieNode {
	return &trieNode{
		children: make(map[byte]*trieEdge),
		entryIDs: make(map[string]struct{}),
	}
}

// longestCommonPrefix returns the longest string that is a prefix of both
// a and b.
func longestCommonPrefix(a, b string) string {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}

	return a[:i]
}

// insert descends from n, recording id on every node along the prefix
// path for word.
func (n *trieNode) insert(word, id string) {
	n.entryIDs[id] = struct{}{}
	n.insertIntoChildren(word, id)
}

// insertIntoChildren performs the child-lookup/split half of insertion,
// without touching n's own entry ids. This is what lets the root
// participate in insertion without ever recording entry ids on itself:
// the root node carries no entries.
func (n *trieNode) insertIntoChildren(word, id string) {
	if word == "" {
		return
	}

	key := word[0]
	edge, ok := n.children[key]
	if !ok {
		leaf := newTrieNode()
		leaf.entryIDs[id] = struct{}{}
		n.children[key] = &trieEdge{label: word, child: leaf}

		return
	}

	p := longestCommonPrefix(word, edge.label)
	if p == edge.label {
		edge.child.insert(word[len(p):], id)

		return
	}

	// Split: the new intermediate node inherits the old child's current
	// entry ids, and keeps the old child reachable under the remaining
	// suffix of its original label.
	intermediate := newTrieNode()
	for existing := range edge.child.entryIDs {
		intermediate.entryIDs[existing] = struct{}{}
	}
	intermediate.children[edge.label[len(p)]] = &trieEdge{
		label: edge.label[len(p):],
		child: edge.child,
	}
	n.children[key] = &trieEdge{label: p, child: intermediate}

	// Continue insertion of the new id from the intermediate node with the
	// remaining suffix; this both records id on the intermediate node and
	// (if the suffix is non-empty) creates a new sibling leaf for id.
	intermediate.insert(word[len(p):], id)
}

// search descends from n looking for the entry id set associated with
// prefix. It returns a fresh copy of the matching node's entry id set, or
// an empty set if prefix is not represented in the trie under n.
func (n *trieNode) search(prefix string) map[string]struct{} {
	if prefix == "" {
		return copyIDSet(n.entryIDs)
	}

	key := prefix[0]
	edge, ok := n.children[key]
	if !ok {
		return map[string]struct{}{}
	}

	if strings.HasPrefix(prefix, edge.label) {
		remainder := prefix[len(edge.label):]
		if remainder == "" {
			return copyIDSet(edge.child.entryIDs)
		}

		return edge.child.search(remainder)
	}

	if strings.HasPrefix(edge.label, prefix) {
		// prefix is fully consumed inside this edge; every id beneath the
		// subtree matches.
		return copyIDSet(edge.child.entryIDs)
	}

	return map[string]struct{}{}
}

// deleteAlongEdge removes id from every non-root node along the path
// spelled by word, starting at e.child. It returns the edge that should
// replace e in its parent's children map, or nil if e.child became empty
// and the edge should be removed entirely.
func deleteAlongEdge(e *trieEdge, word, id string) *trieEdge {
	delete(e.child.entryIDs, id)

	if word != "" {
		key := word[0]
		if childEdge, ok := e.child.children[key]; ok && strings.HasPrefix(word, childEdge.label) {
			remainder := word[len(childEdge.label):]
			newChildEdge := deleteAlongEdge(childEdge, remainder, id)
			if newChildEdge == nil {
				delete(e.child.children, key)
			} else {
				e.child.children[newChildEdge.label[0]] = newChildEdge
			}
		}
		// A missing child or a label that does not match word's prefix
		// means this entry was never indexed under this path: a no-op.
	}

	if len(e.child.entryIDs) == 0 {
		return nil // prune me: signal the parent to drop this edge.
	}

	if len(e.child.children) == 1 {
		var only *trieEdge
		for _, ce := range e.child.children {
			only = ce
		}
		if idSetsEqual(only.child.entryIDs, e.child.entryIDs) {
			// Collapse: fold e.child out of the path, concatenating its
			// incoming label with its sole remaining child's label.
			return &trieEdge{label: e.label + only.label, child: only.child}
		}
	}

	return e
}

// copyIDSet returns a shallow copy of an entry-id set, so callers can
// safely mutate or retain it without aliasing trie-internal state.
func copyIDSet(src map[string]struct{}) map[string]struct{} {
	dst := make(map[string]struct{}, len(src))
	for id := range src {
		dst[id] = struct{}{}
	}

	return dst
}

// idSetsEqual reports whether two entry-id sets contain exactly the same
// ids.
func idSetsEqual(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for id := range a {
		if _, ok := b[id]; !ok {
			return false
		}
	}

	return true
}
