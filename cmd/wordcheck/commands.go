package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kumarlokesh/wordtrie/internal/config"
	"github.com/kumarlokesh/wordtrie/internal/logging"
	"github.com/kumarlokesh/wordtrie/internal/trie"
	"github.com/kumarlokesh/wordtrie/internal/wordlist"
)

// queryFunc answers one query against a loaded trie.
type queryFunc func(t *trie.Trie, q string) bool

func newRootCommand(in io.Reader, out io.Writer) *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:           "wordcheck",
		Short:         "Check words and prefixes against word lists",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := logging.SetupWriter(config.LogConfig{
				Level:   v.GetString("log-level"),
				Console: true,
			}, cmd.ErrOrStderr())
			return err
		},
	}
	root.SetIn(in)
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringSlice("wordlist", nil, "word list file, one word per line (repeatable)")
	flags.Bool("keep-blank", false, "treat blank lines as the empty word")
	flags.String("log-level", "warn", "log level")
	cobra.CheckErr(v.BindPFlags(flags))
	v.SetEnvPrefix(config.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root.AddCommand(
		newQueryCommand(v, "contains", "Report whether each word is in the word lists",
			func(t *trie.Trie, q string) bool { return t.Contains(q) }),
		newQueryCommand(v, "prefix", "Report whether any word starts with each prefix",
			func(t *trie.Trie, q string) bool { return t.ContainsPrefix(q) }),
	)

	return root
}

func newQueryCommand(v *viper.Viper, use, short string, query queryFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [WORD...]",
		Short: short,
		Long:  short + ". With no arguments, queries are read from stdin, one per line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := wordlistOptions(v)
			t, err := loadTrie(v, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(args) > 0 {
				for _, q := range args {
					fmt.Fprintf(out, "%s\t%t\n", q, query(t, q))
				}
				return nil
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			scanner.Buffer(make([]byte, 0, 64*1024), wordlist.MaxLineSize)
			for scanner.Scan() {
				q := scanner.Text()
				if opts.TrimSpace {
					q = strings.TrimSpace(q)
				}
				fmt.Fprintf(out, "%s\t%t\n", q, query(t, q))
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read queries: %w", err)
			}
			return nil
		},
	}
}

// wordlistOptions applies the command-line flags to the default loader
// options. Stdin queries are cleaned with the same options as word lists.
func wordlistOptions(v *viper.Viper) wordlist.Options {
	opts := wordlist.DefaultOptions()
	opts.SkipBlank = !v.GetBool("keep-blank")
	return opts
}

func loadTrie(v *viper.Viper, opts wordlist.Options) (*trie.Trie, error) {
	t := trie.New()
	for _, path := range v.GetStringSlice("wordlist") {
		if _, err := wordlist.LoadFile(path, t, opts); err != nil {
			return nil, err
		}
	}
	return t, nil
}
