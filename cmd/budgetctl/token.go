package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/budgetease/backend/internal/integration/adapters"
)

func tokenCmd(v *viper.Viper) *cobra.Command {
	var (
		userFlag string
		email    string
		ttl      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an access token for local development",
		Long: `Signs an HS256 access token with the configured JWT_SECRET and JWT_ISSUER.
The API accepts it as "Authorization: Bearer <token>".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := uuid.Parse(userFlag)
			if err != nil {
				return fmt.Errorf("invalid --user: %w", err)
			}

			cfg := loadConfig(v)
			if ttl == 0 {
				ttl = cfg.JWT.AccessTokenExpiry
			}

			token, err := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer).
				IssueAccessToken(cmd.Context(), userID, email, ttl)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&userFlag, "user", "", "user id (uuid)")
	cmd.Flags().StringVar(&email, "email", "", "email claim")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (default: JWT_EXPIRY)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
