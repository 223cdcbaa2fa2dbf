// Package dictionary guards a trie with a read-write lock so it can be
// shared between goroutines.
package dictionary

import (
	"io"
	"sync"

	"github.com/kumarlokesh/wordtrie/internal/trie"
	"github.com/kumarlokesh/wordtrie/internal/wordlist"
)

// Dictionary is a set of words safe for concurrent use.
type Dictionary struct {
	mu   sync.RWMutex
	trie *trie.Trie
}

// New creates an empty dictionary
func New() *Dictionary {
	return &Dictionary{
		trie: trie.New(),
	}
}

// Add inserts words into the dictionary.
func (d *Dictionary) Add(words ...string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, w := range words {
		d.trie.Add(w)
	}
}

// Contains reports whether word is in the dictionary.
func (d *Dictionary) Contains(word string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.trie.Contains(word)
}

// ContainsPrefix reports whether any word in the dictionary starts with prefix.
func (d *Dictionary) ContainsPrefix(prefix string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.trie.ContainsPrefix(prefix)
}

// Size returns the number of distinct words.
func (d *Dictionary) Size() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.trie.Size()
}

// Load adds every word read from r. The write lock is held for the whole load.
func (d *Dictionary) Load(r io.Reader, opts wordlist.Options) (wordlist.Stats, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return wordlist.Load(r, d.trie, opts)
}

// LoadFile adds every word of the word list at path.
func (d *Dictionary) LoadFile(path string, opts wordlist.Options) (wordlist.Stats, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return wordlist.LoadFile(path, d.trie, opts)
}
