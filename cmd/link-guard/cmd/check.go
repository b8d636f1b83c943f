package cmd

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/stoik/link-guard/internal/app"
	"github.com/stoik/link-guard/internal/domain"
)

var checkCmd = &cobra.Command{
	Use:   "check [text...]",
	Short: "Scan text for lookalike links without connecting to Discord",
	Long: `Scan each argument, or each line of stdin when no argument is given,
and print one warning per lookalike link. Exits 0 whether or not anything matched.`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := newLogger(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return err
	}
	scanner := app.NewScanner(cfg, log)
	out := cmd.OutOrStdout()

	scan := func(text string) {
		for _, v := range scanner.ScanText(text) {
			if v.Matched() {
				fmt.Fprintln(out, domain.WarningText(v.Link, v.Lookalike))
			}
		}
	}

	if len(args) > 0 {
		for _, text := range args {
			scan(text)
		}
		return nil
	}

	return scanLines(cmd.InOrStdin(), scan)
}

func scanLines(in io.Reader, fn func(string)) error {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		fn(sc.Text())
	}
	return sc.Err()
}
