package cmd

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/arcanaland/handrank/internal/deck"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate [output]",
	Short: "Write random hand pairs in the input file format",
	Long: `Generate deals random hand pairs from a shuffled 52 card deck and writes one
pair per line. Without an output path the lines are written to stdout.

Examples:
  handrank generate -n 1000 hands.txt
  handrank generate --seed 54 | handrank evaluate /dev/stdin`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("lines")
		if n < 0 {
			return fmt.Errorf("lines must not be negative: %d", n)
		}

		seed, _ := cmd.Flags().GetInt64("seed")
		if !cmd.Flags().Changed("seed") {
			seed = time.Now().UnixNano()
		}

		var w io.Writer = cmd.OutOrStdout()
		if len(args) == 1 {
			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("could not open %s for output: %w", args[0], err)
			}
			defer f.Close()
			w = f
		}

		logrus.WithFields(logrus.Fields{"lines": n, "seed": seed}).Debug("generating records")
		return deck.New(rand.NewSource(seed)).WriteRecords(w, n)
	},
}

func init() {
	RootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntP("lines", "n", 1000, "Number of hand pairs to write")
	generateCmd.Flags().Int64("seed", 0, "Random seed (default: current time)")
}
