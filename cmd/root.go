package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/arcanaland/handrank/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "handrank",
	Short: "Tool for ranking and comparing five-card poker hands",
	Long: `Handrank is a command-line tool that reads pairs of five-card poker hands,
classifies each hand and reports which of the two wins under standard poker rules.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogger,
}

func init() {
	RootCmd.PersistentFlags().String("log-level", "", "Log level (overrides log_level in the config file)")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// setupLogger configures logrus from the --log-level flag or the config file
func setupLogger(cmd *cobra.Command, args []string) error {
	logrus.SetOutput(os.Stderr)
	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	lvl, _ := cmd.Flags().GetString("log-level")
	if lvl == "" {
		lvl = configuredLevel()
	}

	level, err := logrus.ParseLevel(lvl)
	if err != nil {
		return fmt.Errorf("could not parse log level: %w", err)
	}

	logrus.SetLevel(level)
	return nil
}

// configuredLevel returns log_level from the config, or info with a warning
// when the config cannot be loaded so that config set can still repair it
func configuredLevel() string {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.WithError(err).Warn("could not load config, using log level info")
		return logrus.InfoLevel.String()
	}

	return cfg.LogLevel
}
