package trie_test

import (
	"fmt"

	"github.com/kumarlokesh/wordtrie/internal/trie"
)

func Example() {
	t := trie.New()
	t.Add("hello")
	t.Add("world")
	t.Add("hi")

	fmt.Println(t.Contains("hello"))
	fmt.Println(t.Contains("hell"))
	fmt.Println(t.ContainsPrefix("hell"))
	fmt.Println(t.ContainsPrefix("h!"))
	// Output:
	// true
	// false
	// true
	// false
}

func ExampleTrie_Contains_emptyWord() {
	t := trie.New()
	fmt.Println(t.Contains(""), t.ContainsPrefix(""))

	t.Add("")
	fmt.Println(t.Contains(""), t.ContainsPrefix(""))
	// Output:
	// false true
	// true true
}
