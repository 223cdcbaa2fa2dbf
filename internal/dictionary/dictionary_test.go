package dictionary

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kumarlokesh/wordtrie/internal/wordlist"
)

func TestDictionary(t *testing.T) {
	d := New()
	d.Add("cat", "cat", "car")

	assert.True(t, d.Contains("cat"))
	assert.False(t, d.Contains("ca"))
	assert.True(t, d.ContainsPrefix("ca"))
	assert.True(t, d.Contains("car"))
	assert.True(t, d.ContainsPrefix(""))
	assert.False(t, d.Contains(""))
	assert.Equal(t, 2, d.Size())
}

func TestDictionary_Load(t *testing.T) {
	d := New()
	stats, err := d.Load(strings.NewReader("hello\nworld\n# note\nhi\n"), wordlist.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Added)
	assert.Equal(t, 3, d.Size())
	assert.True(t, d.Contains("world"))

	_, err = d.LoadFile("does-not-exist.txt", wordlist.DefaultOptions())
	assert.Error(t, err)
}

func TestDictionary_ConcurrentAccess(t *testing.T) {
	d := New()

	const writers = 8
	const perWriter = 100

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(2)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				d.Add(fmt.Sprintf("w%d-%d", w, i))
			}
		}(w)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				d.Contains(fmt.Sprintf("w%d-%d", w, i))
				d.ContainsPrefix(fmt.Sprintf("w%d", w))
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, writers*perWriter, d.Size())
	for w := 0; w < writers; w++ {
		for i := 0; i < perWriter; i++ {
			require.True(t, d.Contains(fmt.Sprintf("w%d-%d", w, i)))
		}
	}
}
