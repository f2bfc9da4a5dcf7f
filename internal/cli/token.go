package cli

import (
	"errors"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/interpretive-systems/nxtwatch/internal/auth"
	"github.com/interpretive-systems/nxtwatch/internal/config"
)

func newTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage the stored API token",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <jwt>",
		Short: "Store the token in the token file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(mustGetStringFlag(cmd.Root(), "config"))
			if err != nil {
				return err
			}
			if err := auth.Save(cfg.Auth.TokenFile, args[0]); err != nil {
				return err
			}
			pterm.Success.WithWriter(cmd.OutOrStdout()).Printfln("Token saved to %s", cfg.Auth.TokenFile)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove the token file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(mustGetStringFlag(cmd.Root(), "config"))
			if err != nil {
				return err
			}
			if err := auth.Clear(cfg.Auth.TokenFile); err != nil {
				return err
			}
			pterm.Success.WithWriter(cmd.OutOrStdout()).Println("Token removed")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the active token (masked) and where it comes from",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(mustGetStringFlag(cmd.Root(), "config"))
			if err != nil {
				return err
			}
			token, src, err := auth.Resolve(mustGetStringFlag(cmd.Root(), "token"), cfg.Auth.TokenFile)
			if err != nil {
				return err
			}
			if token == "" {
				return errors.New("no token configured")
			}
			pterm.Info.WithWriter(cmd.OutOrStdout()).Printfln("%s (from %s)", auth.Mask(token), src)
			return nil
		},
	})
	return cmd
}
