package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/keygen"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/random"
	"github.com/vaultpass/passgen-go/internal/service"
	"github.com/vaultpass/passgen-go/internal/strength"
)

type rootOptions struct {
	wordlist    string
	maxAttempts int
	profile     string
	jsonOut     bool
}

type outputFlags struct {
	count    int
	hash     bool
	strength bool
}

func (o outputFlags) output() model.Output {
	out := model.Output{Count: o.count, Strength: o.strength}
	if o.hash {
		out.Hash = crypto.HashArgon2id
	}
	return out
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&o.count, "count", "c", 1, "number of secrets to generate")
	cmd.Flags().BoolVar(&o.hash, "hash", false, "also print an argon2id hash of each secret")
	cmd.Flags().BoolVar(&o.strength, "strength", false, "also print a strength estimate of each secret")
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "passgen",
		Short:         "Generate passwords and passphrases",
		SilenceUsage:  true,
	}
	cmd.PersistentFlags().StringVar(&opts.wordlist, "wordlist", "", "word list file for passphrases (default: built-in English list)")
	cmd.PersistentFlags().IntVar(&opts.maxAttempts, "max-attempts", keygen.DefaultMaxAttempts, "password attempts before giving up")
	cmd.PersistentFlags().StringVar(&opts.profile, "profile", "", "YAML file with default options")
	cmd.PersistentFlags().BoolVar(&opts.jsonOut, "json", false, "print the full JSON response")

	cmd.AddCommand(
		newPasswordCmd(opts),
		newPassphraseCmd(opts),
		newWordsCmd(opts),
		newTokenCmd(),
	)
	return cmd
}

// newGeneratorService wires the engines the same way the API server does.
func newGeneratorService(opts *rootOptions) (*service.GeneratorService, *keygen.Corpus, error) {
	words, err := keygen.OpenCorpus(opts.wordlist)
	if err != nil {
		return nil, nil, err
	}

	src := random.NewCryptoSource()
	passwords, err := keygen.NewPasswordEngine(src, keygen.WithMaxAttempts(opts.maxAttempts))
	if err != nil {
		return nil, nil, err
	}

	svc := service.NewGeneratorService(
		passwords,
		keygen.NewPassphraseEngine(src, words),
		crypto.NewHasher(crypto.DefaultHashParams()),
		strength.NewZxcvbnScorer(),
	)
	return svc, words, nil
}

func printResponse(w io.Writer, resp model.GenerateResponse, jsonOut bool) error {
	if jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	for _, s := range resp.Secrets {
		line := s.Value
		if s.Strength != nil {
			line += fmt.Sprintf("\tscore=%d entropy=%.1f crack=%q", s.Strength.Score, s.Strength.Entropy, s.Strength.CrackTime)
		}
		if s.Hash != "" {
			line += "\t" + s.Hash
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
