package evaluator

import (
	"errors"
	"fmt"
	"io"

	"github.com/arcanaland/handrank/internal/hand"
	"github.com/arcanaland/handrank/internal/record"
	"github.com/sirupsen/logrus"
)

// Outcome is the result of one record from the player's point of view
type Outcome int

// Outcome constants
const (
	Draw Outcome = iota
	PlayerWins
	OpponentWins
)

func (o Outcome) String() string {
	switch o {
	case PlayerWins:
		return "Player"
	case OpponentWins:
		return "Opponent"
	default:
		return "Draw"
	}
}

// Result is a scored record
type Result struct {
	Record   record.Record
	Player   hand.Evaluated
	Opponent hand.Evaluated
	Outcome  Outcome
}

// Summary is the tally of a run
type Summary struct {
	Records      int
	PlayerWins   int
	OpponentWins int
	Draws        int
	Skipped      []*record.RecordError
}

// Handler receives every scored record. An error stops the run.
type Handler func(Result) error

// Evaluator scores a stream of records
type Evaluator struct {
	handler Handler
	logger  logrus.FieldLogger
	summary Summary
}

// New returns an evaluator. A nil handler discards results and a nil
// logger uses the standard logrus logger.
func New(handler Handler, logger logrus.FieldLogger) *Evaluator {
	if handler == nil {
		handler = func(Result) error { return nil }
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Evaluator{
		handler: handler,
		logger:  logger,
	}
}

// Score analyzes and compares both hands of a record
func Score(rec record.Record) Result {
	res := Result{
		Record:   rec,
		Player:   hand.Evaluate(rec.Player),
		Opponent: hand.Evaluate(rec.Opponent),
	}

	switch hand.Compare(res.Player, res.Opponent) {
	case 1:
		res.Outcome = PlayerWins
	case -1:
		res.Outcome = OpponentWins
	default:
		res.Outcome = Draw
	}

	return res
}

// Run reads records line by line until EOF. Malformed lines are skipped and
// reported in the summary; only read or handler failures abort the run.
func (e *Evaluator) Run(r io.Reader) (Summary, error) {
	e.summary = Summary{}

	lines := record.NewReader(r)
	for {
		lineNo, line, err := lines.Next()
		if err == io.EOF {
			break
		}

		if errors.Is(err, record.ErrLineTooLong) {
			e.skip(&record.RecordError{Line: lineNo, Text: line, Err: err})
			continue
		}

		if err != nil {
			return e.summary, fmt.Errorf("error reading input: %w", err)
		}

		rec, err := record.Parse(line)
		if errors.Is(err, record.ErrBlankLine) {
			continue
		}

		if err != nil {
			e.skip(&record.RecordError{Line: lineNo, Text: line, Err: err})
			continue
		}

		rec.Line = lineNo
		res := Score(rec)
		e.tally(res)

		if err := e.handler(res); err != nil {
			return e.summary, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}

	e.logger.WithFields(logrus.Fields{
		"records":    e.summary.Records,
		"playerWins": e.summary.PlayerWins,
		"skipped":    len(e.summary.Skipped),
	}).Debug("evaluation complete")

	return e.summary, nil
}

func (e *Evaluator) skip(err *record.RecordError) {
	e.summary.Skipped = append(e.summary.Skipped, err)
	e.logger.WithFields(logrus.Fields{
		"line": err.Line,
		"text": err.Text,
	}).WithError(err.Err).Warn("skipping malformed record")
}

func (e *Evaluator) tally(res Result) {
	e.summary.Records++
	switch res.Outcome {
	case PlayerWins:
		e.summary.PlayerWins++
	case OpponentWins:
		e.summary.OpponentWins++
	default:
		e.summary.Draws++
	}
}
