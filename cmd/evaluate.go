package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/arcanaland/handrank/internal/config"
	"github.com/arcanaland/handrank/internal/evaluator"
	"github.com/arcanaland/handrank/internal/report"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// evaluateCmd represents the evaluate command
var evaluateCmd = &cobra.Command{
	Use:   "evaluate [input]",
	Short: "Evaluate a file of hand pairs and count the player's wins",
	Long: `Evaluate reads a file with one hand pair per line: ten space separated cards
such as "8C TS KC 9H 4S 7D 2S 5D 3S AC". The first five cards are the player's
hand and the last five the opponent's.

Each line is classified and compared, and the number of lines won by the
player is written to the console and to the output file. Malformed lines are
skipped with a warning.

If no input is given, input_path from the config file is used.

Examples:
  handrank evaluate
  handrank evaluate poker.txt -o results.txt
  handrank evaluate --quiet --color never poker.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		inputPath := cfg.InputPath
		if len(args) == 1 {
			inputPath = args[0]
		}

		outputPath := cfg.OutputPath
		if cmd.Flags().Changed("output") {
			outputPath, _ = cmd.Flags().GetString("output")
		}

		detail := cfg.Detail
		if cmd.Flags().Changed("detail") {
			detail, _ = cmd.Flags().GetBool("detail")
		}

		colorMode := cfg.Color
		if cmd.Flags().Changed("color") {
			colorMode, _ = cmd.Flags().GetString("color")
		}

		quiet, _ := cmd.Flags().GetBool("quiet")

		useColor, err := report.UseColor(colorMode, cmd.OutOrStdout())
		if err != nil {
			return err
		}

		in, err := os.Open(inputPath)
		if err != nil {
			return fmt.Errorf("could not open %s for input: %w", inputPath, err)
		}
		defer in.Close()

		if err := checkDistinct(in, outputPath); err != nil {
			return err
		}

		out, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("could not open %s for output: %w", outputPath, err)
		}
		defer out.Close()

		logrus.WithFields(logrus.Fields{
			"input":  inputPath,
			"output": outputPath,
		}).Debug("evaluating")

		return runEvaluate(in, cmd.OutOrStdout(), out, report.Options{
			Color:  useColor,
			Detail: detail,
			Quiet:  quiet,
		})
	},
}

// runEvaluate scores every record of in and reports to console and file
func runEvaluate(in io.Reader, console, file io.Writer, opts report.Options) error {
	r := report.New(console, file, opts)

	summary, err := evaluator.New(r.Result, logrus.StandardLogger()).Run(in)
	if err != nil {
		return err
	}

	return r.Summary(summary)
}

// checkDistinct refuses an output path naming the open input file, which
// os.Create would truncate before it is read
func checkDistinct(in *os.File, outputPath string) error {
	outInfo, err := os.Stat(outputPath)
	if err != nil {
		// a missing output file cannot be the input
		return nil
	}

	inInfo, err := in.Stat()
	if err != nil {
		return fmt.Errorf("could not stat %s: %w", in.Name(), err)
	}

	if os.SameFile(inInfo, outInfo) {
		return fmt.Errorf("output %s is the same file as the input", outputPath)
	}

	return nil
}

func init() {
	RootCmd.AddCommand(evaluateCmd)

	evaluateCmd.Flags().StringP("output", "o", "", "Output file for the results (default output_path from the config)")
	evaluateCmd.Flags().BoolP("quiet", "q", false, "Only print the summary to the console")
	evaluateCmd.Flags().Bool("detail", false, "Also write per-line results to the output file")
	evaluateCmd.Flags().String("color", "", "Color mode: auto, always or never")
}
