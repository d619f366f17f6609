package keygen

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/tyler-smith/go-bip39/wordlists"

	"github.com/vaultpass/passgen-go/internal/random"
)

// WordList is a read-only corpus passphrase words are drawn from.
type WordList interface {
	Len() int
	Words() []string
	RandomWord(src random.Source) (string, error)
}

// Corpus is an immutable WordList safe for concurrent reads.
type Corpus struct {
	words []string
}

// NewCorpus copies words into a Corpus. Every entry must be a non-empty run
// of ASCII letters.
func NewCorpus(words []string) (*Corpus, error) {
	if len(words) == 0 {
		return nil, newError(CodeEmptyWordList, nil)
	}
	for i, w := range words {
		if !isASCIIWord(w) {
			return nil, newError(CodeInvalidWord, map[string]any{"index": i, "word": w})
		}
	}
	return &Corpus{words: slices.Clone(words)}, nil
}

var defaultCorpus = sync.OnceValue(func() *Corpus {
	return &Corpus{words: slices.Clone(wordlists.English)}
})

// DefaultCorpus returns the built-in 2048-word English list.
func DefaultCorpus() *Corpus {
	return defaultCorpus()
}

// LoadCorpus reads one word per line. Blank lines and lines starting with
// '#' are skipped. Lines with several fields, such as the EFF dice lists
// ("11111\tabacus"), contribute their last field.
func LoadCorpus(r io.Reader) (*Corpus, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		words = append(words, fields[len(fields)-1])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	return NewCorpus(words)
}

// Len returns the number of words.
func (c *Corpus) Len() int {
	return len(c.words)
}

// Words returns a copy of the corpus.
func (c *Corpus) Words() []string {
	return slices.Clone(c.words)
}

// RandomWord returns a uniformly chosen word.
func (c *Corpus) RandomWord(src random.Source) (string, error) {
	if len(c.words) == 0 {
		return "", newError(CodeEmptyWordList, nil)
	}
	i, err := src.Uniform(len(c.words))
	if err != nil {
		return "", err
	}
	return c.words[i], nil
}

func isASCIIWord(w string) bool {
	if w == "" {
		return false
	}
	for i := 0; i < len(w); i++ {
		b := w[i]
		if (b < 'a' || b > 'z') && (b < 'A' || b > 'Z') {
			return false
		}
	}
	return true
}

// OpenCorpus loads the word list at path, or returns DefaultCorpus when
// path is empty.
func OpenCorpus(path string) (*Corpus, error) {
	if path == "" {
		return DefaultCorpus(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer f.Close()
	return LoadCorpus(f)
}
