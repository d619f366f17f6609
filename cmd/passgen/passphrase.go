package main

import (
	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen-go/internal/keygen"
	"github.com/vaultpass/passgen-go/internal/model"
)

func newPassphraseCmd(root *rootOptions) *cobra.Command {
	var (
		out  outputFlags
		opts model.PassphraseOptions
	)

	cmd := &cobra.Command{
		Use:     "passphrase",
		Aliases: []string{"pp"},
		Short:   "Generate passphrases from a word list",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newGeneratorService(root)
			if err != nil {
				return err
			}
			p, err := loadProfile(root.profile)
			if err != nil {
				return err
			}

			req := svc.NewPassphraseRequest()
			if p.Passphrase != nil {
				req.PassphraseOptions = *p.Passphrase
			}
			f := cmd.Flags()
			if f.Changed("words") {
				req.WordCount = opts.WordCount
			}
			if f.Changed("separator") {
				req.Separator = opts.Separator
			}
			if f.Changed("style") {
				req.Style = opts.Style
			}
			if f.Changed("number") {
				req.IncludeNumber = opts.IncludeNumber
			}
			req.Output = out.output()

			resp, err := svc.GeneratePassphrase(req)
			if err != nil {
				return err
			}
			return printResponse(cmd.OutOrStdout(), resp, root.jsonOut)
		},
	}

	initial := keygen.InitialPassphraseOptions()
	f := cmd.Flags()
	f.IntVarP(&opts.WordCount, "words", "w", initial.WordCount, "number of words")
	f.StringVarP(&opts.Separator, "separator", "s", initial.Separator, "text placed between words")
	f.StringVar(&opts.Style, "style", string(initial.Style), "word style: lowercase, uppercase or capitalize")
	f.BoolVar(&opts.IncludeNumber, "number", false, "append a digit to one random word")
	out.register(cmd)

	return cmd
}
