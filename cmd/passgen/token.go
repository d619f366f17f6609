package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen-go/internal/config"
	"github.com/vaultpass/passgen-go/internal/crypto"
)

func newTokenCmd() *cobra.Command {
	var expiry time.Duration

	cmd := &cobra.Command{
		Use:   "token <client-id>",
		Short: "Mint a client token for the preset API",
		Long:  "Signs a client token with JWT_SECRET. The server must run with the same secret.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("expiry") {
				expiry = cfg.JWTExpiry
			}

			token, err := crypto.IssueClientToken(args[0], cfg.JWTSecret, expiry)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	cmd.Flags().DurationVar(&expiry, "expiry", 0, "token lifetime (default: JWT_EXPIRY)")

	return cmd
}
