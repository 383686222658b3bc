package cmd

import (
	"fmt"
	"os"

	"github.com/arcanaland/handrank/internal/validator"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [input]",
	Short: "Check an input file without evaluating it",
	Long: `Validate checks that every line of an input file holds ten valid cards.
Lines that would be skipped by evaluate are reported as errors; duplicate cards
and non-standard suits are reported as warnings.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputPath := args[0]

		in, err := os.Open(inputPath)
		if err != nil {
			return fmt.Errorf("could not open %s for input: %w", inputPath, err)
		}
		defer in.Close()

		results, err := validator.NewValidator().Validate(in)
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if results.Valid() {
			fmt.Fprintf(out, "✅ '%s' has %d valid records.\n", inputPath, results.Records)
		} else {
			fmt.Fprintf(out, "❌ '%s' has %d errors:\n", inputPath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		if !results.Valid() {
			return fmt.Errorf("validation failed")
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)
}
