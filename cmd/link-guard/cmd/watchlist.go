package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var watchlistCmd = &cobra.Command{
	Use:   "watchlist",
	Short: "Print the protected domains in match order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		for _, d := range cfg.Watchlist.Domains() {
			fmt.Fprintln(cmd.OutOrStdout(), d)
		}
		return nil
	},
}
