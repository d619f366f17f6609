package main

import (
	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen-go/internal/keygen"
	"github.com/vaultpass/passgen-go/internal/model"
)

func newPasswordCmd(root *rootOptions) *cobra.Command {
	var (
		out  outputFlags
		opts model.PasswordOptions
	)

	cmd := &cobra.Command{
		Use:     "password",
		Aliases: []string{"pw"},
		Short:   "Generate random character passwords",
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

			req := svc.NewPasswordRequest()
			if p.Password != nil {
				req.PasswordOptions = *p.Password
			}
			applyPasswordFlags(cmd, &req.PasswordOptions, opts)
			req.Output = out.output()

			resp, err := svc.GeneratePassword(req)
			if err != nil {
				return err
			}
			return printResponse(cmd.OutOrStdout(), resp, root.jsonOut)
		},
	}

	initial := keygen.InitialPasswordOptions()
	f := cmd.Flags()
	f.IntVarP(&opts.Length, "length", "l", initial.Length, "password length")
	f.BoolVar(&opts.Lowercase, "lowercase", initial.Lowercase, "include lowercase letters")
	f.BoolVar(&opts.Uppercase, "uppercase", initial.Uppercase, "include uppercase letters")
	f.BoolVar(&opts.Numbers, "numbers", initial.Numbers, "include digits")
	f.BoolVar(&opts.Symbols, "symbols", initial.Symbols, "include symbols")
	f.StringVar(&opts.Customization.Exclude, "exclude", "", "characters never to use")
	f.BoolVar(&opts.Customization.SkipAmbiguous, "skip-ambiguous", false, "leave out look-alike characters")
	out.register(cmd)

	return cmd
}

// applyPasswordFlags overrides dst with the flags set on the command line so
// that profile values survive unless overridden.
func applyPasswordFlags(cmd *cobra.Command, dst *model.PasswordOptions, flags model.PasswordOptions) {
	f := cmd.Flags()
	if f.Changed("length") {
		dst.Length = flags.Length
	}
	if f.Changed("lowercase") {
		dst.Lowercase = flags.Lowercase
	}
	if f.Changed("uppercase") {
		dst.Uppercase = flags.Uppercase
	}
	if f.Changed("numbers") {
		dst.Numbers = flags.Numbers
	}
	if f.Changed("symbols") {
		dst.Symbols = flags.Symbols
	}
	if f.Changed("exclude") {
		dst.Customization.Exclude = flags.Customization.Exclude
	}
	if f.Changed("skip-ambiguous") {
		dst.Customization.SkipAmbiguous = flags.Customization.SkipAmbiguous
	}
}
