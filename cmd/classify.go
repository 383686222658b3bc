package cmd

import (
	"fmt"
	"strings"

	"github.com/arcanaland/handrank/internal/config"
	"github.com/arcanaland/handrank/internal/evaluator"
	"github.com/arcanaland/handrank/internal/hand"
	"github.com/arcanaland/handrank/internal/record"
	"github.com/arcanaland/handrank/internal/report"
	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [cards...]",
	Short: "Classify a single five-card hand",
	Long: `Classify shows the category of a hand together with the values that form it
and the kickers used to break ties.

Cards may be given as five arguments or as one quoted argument.

Examples:
  handrank classify 5H 5C 6S 7S KD
  handrank classify "TH JH QH KH AH"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := hand.Parse(splitCards(args))
		if err != nil {
			return err
		}

		r, err := consoleReporter(cmd)
		if err != nil {
			return err
		}

		return r.Hand(h, hand.Evaluate(h))
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare [cards...]",
	Short: "Compare two five-card hands",
	Long: `Compare takes ten cards in the input file format: the first five are the
player's hand and the last five the opponent's.

Examples:
  handrank compare 5H 5C 6S 7S KD 2C 3S 8S 8D TD
  handrank compare "4D 6S 9H QH QC 3D 6D 7H QD QS"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := record.Parse(strings.Join(splitCards(args), " "))
		if err != nil {
			return err
		}
		rec.Line = 1

		r, err := consoleReporter(cmd)
		if err != nil {
			return err
		}

		return r.Result(evaluator.Score(rec))
	},
}

// splitCards accepts cards as separate or space separated arguments
func splitCards(args []string) []string {
	return strings.Fields(strings.Join(args, " "))
}

// consoleReporter returns a reporter that only writes to the console
func consoleReporter(cmd *cobra.Command) (*report.Reporter, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	colorMode := cfg.Color
	if cmd.Flags().Changed("color") {
		colorMode, _ = cmd.Flags().GetString("color")
	}

	useColor, err := report.UseColor(colorMode, cmd.OutOrStdout())
	if err != nil {
		return nil, err
	}

	return report.New(cmd.OutOrStdout(), nil, report.Options{Color: useColor}), nil
}

func init() {
	RootCmd.AddCommand(classifyCmd)
	RootCmd.AddCommand(compareCmd)

	for _, c := range []*cobra.Command{classifyCmd, compareCmd} {
		c.Flags().String("color", "", "Color mode: auto, always or never")
	}
}
