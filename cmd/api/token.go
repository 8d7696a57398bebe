package main

import (
	"fmt"

	"warehouse-gateway/internal/core/logger"
	"warehouse-gateway/internal/gateway"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newTokenCommand() *cobra.Command {
	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Manage cached provider tokens",
	}

	tokenCmd.AddCommand(&cobra.Command{
		Use:       "refresh <shiprelay|mintsoft>",
		Short:     "Authenticate against a provider and overwrite its cached token",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"shiprelay", "mintsoft"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()

			gw, err := gateway.New(cfg, nil)
			if err != nil {
				return err
			}
			defer gw.Close()

			if err := gw.Refresh(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("refresh %s token: %w", args[0], err)
			}
			logger.Get().Info("Token refreshed", zap.String("provider", args[0]))
			return nil
		},
	})

	return tokenCmd
}
