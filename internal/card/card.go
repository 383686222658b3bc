package card

import (
	"errors"
	"fmt"
)

// Errors returned by Parse
var (
	ErrTokenLength = errors.New("card token must be two characters")
	ErrInvalidRank = errors.New("invalid rank")
	ErrInvalidSuit = errors.New("invalid suit")
)

// Card represents a playing card
type Card struct {
	rank  byte  // Rank symbol as read (2-9, T, J, Q, K, A)
	value Value // Decoded rank, Invalid if the symbol is unknown
	suit  byte  // Opaque suit symbol, only compared for equality
}

// New makes a card from its rank and suit symbols. It never fails: an
// unknown rank is stored with the Invalid value.
func New(rank, suit byte) Card {
	return Card{
		rank:  rank,
		value: Decode(rank),
		suit:  suit,
	}
}

// Parse parses a two character token such as "TD" or "5h"
func Parse(token string) (Card, error) {
	if len(token) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrTokenLength, token)
	}

	c := New(token[0], token[1])
	if !c.value.Valid() {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidRank, token)
	}

	// suits are opaque but must be visible
	if c.suit <= ' ' || c.suit > '~' {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidSuit, token)
	}

	return c, nil
}

// MustParse is like Parse but panics on error
func MustParse(token string) Card {
	c, err := Parse(token)
	if err != nil {
		panic(err)
	}

	return c
}

// Rank returns the rank symbol
func (c Card) Rank() byte {
	return c.rank
}

// Value returns the ordinal strength of the rank
func (c Card) Value() Value {
	return c.value
}

// Suit returns the suit symbol
func (c Card) Suit() byte {
	return c.suit
}

func (c Card) String() string {
	return string([]byte{c.rank, c.suit})
}
