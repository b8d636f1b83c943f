package cmd

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/stoik/link-guard/internal/config"
	"github.com/stoik/link-guard/internal/logger"
)

var (
	configFile string
	envFile    string
)

var rootCmd = &cobra.Command{
	Use:          "link-guard",
	Short:        "link-guard: lookalike link detector",
	Long:         "Warns chat channels about links whose domain is a near miss of a well-known one.",
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file (default: link-guard.yaml in ./config or .)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(watchlistCmd)
	rootCmd.AddCommand(warningsCmd)
}

func loadConfig() (config.Config, error) {
	return config.Load(config.Options{EnvFile: envFile, ConfigFile: configFile})
}

func newLogger(out io.Writer, cfg config.Config) (*logrus.Logger, error) {
	return logger.NewWithOutput(out, cfg.LogLevel, cfg.LogFormat)
}
