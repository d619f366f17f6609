package keygen

import (
	"strconv"
	"strings"

	"github.com/vaultpass/passgen-go/internal/random"
)

// PassphraseEngine builds passphrases from a WordList.
type PassphraseEngine struct {
	src   random.Source
	words WordList
}

// NewPassphraseEngine creates a PassphraseEngine drawing words from words.
func NewPassphraseEngine(src random.Source, words WordList) *PassphraseEngine {
	return &PassphraseEngine{src: src, words: words}
}

// InitialOptions returns InitialPassphraseOptions.
func (e *PassphraseEngine) InitialOptions() PassphraseOptions {
	return InitialPassphraseOptions()
}

// Generate draws opts.WordCount words, styles them, optionally appends one
// digit to one word and joins them with opts.Separator.
func (e *PassphraseEngine) Generate(opts PassphraseOptions) (string, error) {
	if opts.WordCount < 1 {
		return "", newError(CodeInvalidWordCount, map[string]any{"wordCount": opts.WordCount})
	}
	if e.words == nil || e.words.Len() == 0 {
		return "", newError(CodeEmptyWordList, nil)
	}
	if !opts.Style.Valid() {
		return "", newError(CodeInvalidWordStyle, map[string]any{"style": string(opts.Style)})
	}

	words := make([]string, opts.WordCount)
	for i := range words {
		w, err := e.words.RandomWord(e.src)
		if err != nil {
			return "", err
		}
		words[i] = FormatWord(w, opts.Style)
	}

	if opts.IncludeNumber {
		i, err := e.src.Uniform(opts.WordCount)
		if err != nil {
			return "", err
		}
		d, err := e.src.Uniform(10)
		if err != nil {
			return "", err
		}
		words[i] += strconv.Itoa(d)
	}

	return strings.Join(words, opts.Separator), nil
}
