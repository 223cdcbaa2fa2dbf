// Package wordlist loads plain-text word lists, one word per line, into a trie.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/kumarlokesh/wordtrie/internal/trie"
)

// MaxLineSize bounds a single line of a word list.
const MaxLineSize = 1 << 20

// Options controls how lines of a word list become words.
type Options struct {
	// SkipBlank drops empty lines instead of adding the empty word
	SkipBlank bool

	// CommentPrefix marks lines to ignore; empty disables comments
	CommentPrefix string

	// TrimSpace strips leading and trailing white space from each line
	TrimSpace bool
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{
		SkipBlank:     true,
		CommentPrefix: "#",
		TrimSpace:     true,
	}
}

// Stats summarizes a load.
type Stats struct {
	Lines   int
	Added   int
	Skipped int
}

// Load reads r line by line and adds every accepted line to t.
func Load(r io.Reader, t *trie.Trie, opts Options) (Stats, error) {
	var stats Stats

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	for scanner.Scan() {
		stats.Lines++

		word := scanner.Text()
		if opts.TrimSpace {
			word = strings.TrimSpace(word)
		}

		if opts.CommentPrefix != "" && strings.HasPrefix(word, opts.CommentPrefix) {
			stats.Skipped++
			continue
		}
		if word == "" && opts.SkipBlank {
			stats.Skipped++
			continue
		}

		t.Add(word)
		stats.Added++
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("failed to read word list at line %d: %w", stats.Lines+1, err)
	}

	log.Debug().
		Int("lines", stats.Lines).
		Int("added", stats.Added).
		Int("skipped", stats.Skipped).
		Msg("Loaded word list")

	return stats, nil
}

// LoadFile opens path and loads it with Load.
func LoadFile(path string, t *trie.Trie, opts Options) (Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer f.Close()

	stats, err := Load(f, t, opts)
	if err != nil {
		return stats, fmt.Errorf("%s: %w", path, err)
	}
	return stats, nil
}
