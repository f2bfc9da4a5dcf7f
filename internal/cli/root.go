package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/interpretive-systems/nxtwatch/internal/config"
)

func Execute() error {
	if err := newRootCmd().Execute(); err != nil {
		return fmt.Errorf("execute: %w", err)
	}
	return nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           config.AppName,
		Short:         "Terminal client for Nxt Watch",
		Long:          "nxtwatch: browse and search the Nxt Watch video catalogue from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHome(cmd, "")
		},
	}

	root.PersistentFlags().StringP("config", "c", config.DefaultPath(), "Path to the config file")
	root.PersistentFlags().String("token", "", "JWT used as the API bearer token (overrides $"+envTokenName+" and the token file)")
	root.PersistentFlags().BoolP("verbose", "v", false, "Log at debug level")

	// Add subcommands
	root.AddCommand(newHomeCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newHistoryCmd())
	root.AddCommand(newTokenCmd())
	root.AddCommand(newConfigCmd())

	return root
}

func mustGetStringFlag(cmd *cobra.Command, name string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, "flag error:", err)
		os.Exit(2)
	}
	return v
}

func mustGetBoolFlag(cmd *cobra.Command, name string) bool {
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, "flag error:", err)
		os.Exit(2)
	}
	return v
}
