package hand

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arcanaland/handrank/internal/card"
)

// ErrHandSize is returned when a hand does not have exactly five cards
var ErrHandSize = errors.New("a hand must have exactly five cards")

// Parse builds a hand from five card tokens
func Parse(tokens []string) (Hand, error) {
	var h Hand
	if len(tokens) != Size {
		return h, fmt.Errorf("%w: got %d", ErrHandSize, len(tokens))
	}

	for i, tok := range tokens {
		c, err := card.Parse(tok)
		if err != nil {
			return h, fmt.Errorf("card %d: %w", i+1, err)
		}

		h[i] = c
	}

	return h, nil
}

// FromString builds a hand from space separated tokens and panics on error,
// i.e., "5H 5C 6S 7S KD"
func FromString(s string) Hand {
	h, err := Parse(strings.Fields(s))
	if err != nil {
		panic(fmt.Sprintf("could not parse hand %q: %v", s, err))
	}

	return h
}

func (h Hand) String() string {
	s := make([]string, len(h))
	for i, c := range h {
		s[i] = c.String()
	}

	return strings.Join(s, " ")
}
