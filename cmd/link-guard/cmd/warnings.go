package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/stoik/link-guard/internal/app"
	"github.com/stoik/link-guard/internal/application"
)

var warningsLimit int

var warningsCmd = &cobra.Command{
	Use:   "warnings",
	Short: "List the most recently recorded warnings",
	Long: `List warnings from the audit store, newest first. Reads DATABASE_URL;
without it the in-memory store of this process is empty.`,
	Args: cobra.NoArgs,
	RunE: runWarnings,
}

func init() {
	warningsCmd.Flags().IntVar(&warningsLimit, "limit", application.DefaultRecentWarnings,
		fmt.Sprintf("number of warnings to show (max %d)", application.MaxRecentWarnings))
}

func runWarnings(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := newLogger(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return err
	}

	store, err := app.NewStore(cfg, log)
	if err != nil {
		return err
	}
	defer store.Close()

	service := app.NewOfflineService(cfg, store, log)
	warnings, err := service.RecentWarnings(cmd.Context(), warningsLimit)
	if err != nil {
		return fmt.Errorf("failed to list warnings: %w", err)
	}

	if len(warnings) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no warnings recorded")
		return nil
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tCHANNEL\tLOOKALIKE\tDISTANCE\tDELIVERED\tLINK")
	for _, w := range warnings {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%t\t%s\n",
			w.CreatedAt.Format(time.RFC3339), w.ChannelID, w.Lookalike, w.Distance, w.Delivered, w.Link)
	}
	return tw.Flush()
}
