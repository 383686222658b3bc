package deck

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/arcanaland/handrank/internal/card"
	"github.com/arcanaland/handrank/internal/hand"
)

// Suits are the suit symbols of a standard deck
const Suits = "CDHS"

// ErrNotEnoughCards is returned when a deal needs more cards than are left
var ErrNotEnoughCards = errors.New("not enough cards in the deck")

// Deck represents a standard 52 card deck
type Deck struct {
	cards []card.Card
	rng   *rand.Rand
}

// New returns an ordered deck that shuffles with the given source
func New(src rand.Source) *Deck {
	d := &Deck{rng: rand.New(src)}
	d.Reset()
	return d
}

// Reset puts every card back in order
func (d *Deck) Reset() {
	d.cards = d.cards[:0]
	for i := 0; i < len(Suits); i++ {
		for v := card.Value(0); v < card.NumValues; v++ {
			d.cards = append(d.cards, card.New(card.Encode(v), Suits[i]))
		}
	}
}

// Shuffle shuffles the remaining cards
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Len returns the number of cards left
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards
func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

// DealHand removes five cards from the top of the deck
func (d *Deck) DealHand() (hand.Hand, error) {
	var h hand.Hand
	if len(d.cards) < hand.Size {
		return h, ErrNotEnoughCards
	}

	copy(h[:], d.cards[:hand.Size])
	d.cards = d.cards[hand.Size:]
	return h, nil
}

// WriteRecords writes n lines of two random hands in the input file format.
// Each line is dealt from a freshly shuffled deck.
func (d *Deck) WriteRecords(w io.Writer, n int) error {
	for i := 0; i < n; i++ {
		d.Reset()
		d.Shuffle()

		player, err := d.DealHand()
		if err != nil {
			return err
		}

		opponent, err := d.DealHand()
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintln(w, strings.Join([]string{player.String(), opponent.String()}, " ")); err != nil {
			return fmt.Errorf("error writing record %d: %w", i+1, err)
		}
	}

	return nil
}
