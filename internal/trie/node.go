// Package trie implements an in-memory prefix tree over Unicode strings.
//
// A Trie stores a set of words and answers exact-membership and
// prefix-membership queries in time proportional to the length of the
// query. It does no locking; callers that share a Trie across goroutines
// must serialize Add against every other call.
package trie

// Node represents a node in the trie
type Node struct {
	// children maps the next character to the child node
	children map[rune]*Node

	// isWord marks if the path to this node spells a stored word
	isWord bool
}

// newNode creates a new trie node
func newNode() *Node {
	return &Node{
		children: make(map[rune]*Node),
	}
}

// Trie represents a trie data structure
type Trie struct {
	root *Node

	words int
	nodes int
}

// New creates a new empty trie
func New() *Trie {
	return &Trie{
		root:  newNode(),
		nodes: 1,
	}
}
