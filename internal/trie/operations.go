package trie

import "unicode/utf8"

// Add inserts word into the trie. Adding the empty string marks the root
// itself as a word.
func (t *Trie) Add(word string) {
	node := t.root
	for i := 0; i < len(word); {
		ch, size := nextKey(word[i:])
		i += size

		child, exists := node.children[ch]
		if !exists {
			child = newNode()
			node.children[ch] = child
			t.nodes++
		}
		node = child
	}
	if !node.isWord {
		node.isWord = true
		t.words++
	}
}

// Contains reports whether word was previously added.
func (t *Trie) Contains(word string) bool {
	node := t.findNode(word)
	return node != nil && node.isWord
}

// ContainsPrefix reports whether some added word starts with prefix.
// The empty prefix is always contained.
func (t *Trie) ContainsPrefix(prefix string) bool {
	return t.findNode(prefix) != nil
}

// Size returns the number of distinct words stored in the trie.
func (t *Trie) Size() int {
	return t.words
}

// NodeCount returns the number of nodes in the trie, root included.
func (t *Trie) NodeCount() int {
	return t.nodes
}

// findNode returns the node corresponding to the key, or nil if not found
func (t *Trie) findNode(key string) *Node {
	node := t.root
	for i := 0; i < len(key); {
		ch, size := nextKey(key[i:])
		i += size

		child, exists := node.children[ch]
		if !exists {
			return nil
		}
		node = child
	}
	return node
}

// nextKey decodes the child key at the start of s and its width in bytes.
// A byte b that is not valid UTF-8 maps to -int32(b)-1, which no rune uses,
// so distinct strings never share a path.
func nextKey(s string) (rune, int) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size == 1 {
		return -rune(s[0]) - 1, 1
	}
	return r, size
}
