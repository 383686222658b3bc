package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arcanaland/handrank/internal/evaluator"
	"github.com/arcanaland/handrank/internal/hand"
	colorize "github.com/fatih/color"
	"golang.org/x/term"
)

// Color modes accepted by UseColor
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Options controls what the reporter writes where
type Options struct {
	Color  bool // ANSI colors on the console
	Detail bool // per-line results are also written to the output file
	Quiet  bool // no per-line results on the console
}

// Reporter writes results to the console and to an output file at the same time
type Reporter struct {
	console io.Writer
	file    io.Writer
	opts    Options

	label  *colorize.Color
	values *colorize.Color
	win    *colorize.Color
	lose   *colorize.Color
	draw   *colorize.Color
}

// New returns a reporter writing to console and file
func New(console, file io.Writer, opts Options) *Reporter {
	r := &Reporter{
		console: console,
		file:    file,
		opts:    opts,
		label:   colorize.New(colorize.FgCyan),
		values:  colorize.New(colorize.FgHiWhite),
		win:     colorize.New(colorize.FgGreen, colorize.Bold),
		lose:    colorize.New(colorize.FgRed),
		draw:    colorize.New(colorize.FgYellow),
	}

	for _, c := range []*colorize.Color{r.label, r.values, r.win, r.lose, r.draw} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return r
}

// UseColor resolves a color mode for the writer output goes to. In auto
// mode only a terminal gets colors.
func UseColor(mode string, w io.Writer) (bool, error) {
	switch strings.ToLower(mode) {
	case ColorAlways:
		return true, nil
	case ColorNever:
		return false, nil
	case ColorAuto, "":
		f, ok := w.(*os.File)
		return ok && f != nil && term.IsTerminal(int(f.Fd())), nil
	default:
		return false, fmt.Errorf("unknown color mode: %s", mode)
	}
}

// Result writes one scored record. It is an evaluator.Handler.
func (r *Reporter) Result(res evaluator.Result) error {
	if !r.opts.Quiet {
		if _, err := fmt.Fprintln(r.console, r.formatResult(res, true)); err != nil {
			return err
		}
	}

	if r.opts.Detail {
		if _, err := fmt.Fprintln(r.file, r.formatResult(res, false)); err != nil {
			return err
		}
	}

	return nil
}

// Summary writes the tally to both destinations
func (r *Reporter) Summary(s evaluator.Summary) error {
	both := io.MultiWriter(r.console, r.file)

	if len(s.Skipped) > 0 {
		if _, err := fmt.Fprintf(both, "%d line(s) skipped\n", len(s.Skipped)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(both, "Player won %d times!\n", s.PlayerWins)
	return err
}

// Hand writes the classification of a single hand to the console
func (r *Reporter) Hand(h hand.Hand, e hand.Evaluated) error {
	lines := []string{
		r.label.Sprint("Hand:     ") + h.String(),
		r.label.Sprint("Category: ") + r.values.Sprint(e.Category.String()),
		r.label.Sprint("Play:     ") + hand.Symbols(e.Play),
		r.label.Sprint("Kickers:  ") + hand.Symbols(e.Kickers),
	}

	_, err := fmt.Fprintln(r.console, strings.Join(lines, "\n"))
	return err
}

func (r *Reporter) formatResult(res evaluator.Result, colored bool) string {
	paint := func(c *colorize.Color, s string) string {
		if !colored {
			return s
		}

		return c.Sprint(s)
	}

	side := func(h hand.Hand, e hand.Evaluated) string {
		return fmt.Sprintf("%s  %s %s %s",
			h,
			paint(r.label, e.Category.String()),
			paint(r.values, hand.Symbols(e.Play)),
			hand.Symbols(e.Kickers),
		)
	}

	var outcome string
	switch res.Outcome {
	case evaluator.PlayerWins:
		outcome = paint(r.win, res.Outcome.String())
	case evaluator.OpponentWins:
		outcome = paint(r.lose, res.Outcome.String())
	default:
		outcome = paint(r.draw, res.Outcome.String())
	}

	return fmt.Sprintf("%4d: %s | %s => %s",
		res.Record.Line,
		side(res.Record.Player, res.Player),
		side(res.Record.Opponent, res.Opponent),
		outcome,
	)
}
