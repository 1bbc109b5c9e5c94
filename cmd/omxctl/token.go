package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/yanqian/omx-assistant/internal/domain/auth"
)

func newTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an admin bearer token for the catalog reload endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			secret, _ := cmd.Flags().GetString("secret")
			if secret == "" {
				secret = os.Getenv("ADMIN_JWT_SECRET")
			}
			subject, _ := cmd.Flags().GetString("subject")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			token, err := auth.NewTokenService(auth.Config{Secret: secret, TokenTTL: ttl}).Issue(subject)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	cmd.Flags().String("secret", "", "signing secret; defaults to ADMIN_JWT_SECRET")
	cmd.Flags().String("subject", "omxctl", "token subject recorded in reload logs")
	cmd.Flags().Duration("ttl", time.Hour, "token lifetime")
	return cmd
}
