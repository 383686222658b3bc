package record

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arcanaland/handrank/internal/hand"
)

// Tokens is the number of card tokens in a record
const Tokens = 2 * hand.Size

// Errors returned by Parse
var (
	ErrMalformedRecord = errors.New("malformed record")
	ErrTokenCount      = errors.New("wrong number of card tokens")
	ErrBlankLine       = errors.New("blank line")
)

// Record is one line of input: the player's hand and the opponent's hand
type Record struct {
	Line     int
	Player   hand.Hand
	Opponent hand.Hand
}

// RecordError is a record that could not be parsed
type RecordError struct {
	Line int
	Text string
	Err  error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// Is matches ErrMalformedRecord so callers need not know the cause
func (e *RecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}

// Parse parses a line of ten space separated cards such as
// "8C TS KC 9H 4S 7D 2S 5D 3S AC". The first five belong to the player.
func Parse(line string) (Record, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return Record{}, ErrBlankLine
	}

	if len(tokens) != Tokens {
		return Record{}, fmt.Errorf("%w: got %d, want %d", ErrTokenCount, len(tokens), Tokens)
	}

	player, err := hand.Parse(tokens[:hand.Size])
	if err != nil {
		return Record{}, fmt.Errorf("player hand: %w", err)
	}

	opponent, err := hand.Parse(tokens[hand.Size:])
	if err != nil {
		return Record{}, fmt.Errorf("opponent hand: %w", err)
	}

	return Record{Player: player, Opponent: opponent}, nil
}

func (r Record) String() string {
	return r.Player.String() + " " + r.Opponent.String()
}
