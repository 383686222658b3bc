package hand

import (
	"sort"

	"github.com/arcanaland/handrank/internal/card"
)

// Size is the number of cards in a hand
const Size = 5

// Hand is five cards. Their order is insignificant.
type Hand [Size]card.Card

// Evaluated is a classified hand with its tie-break values.
// Play holds the cards forming the pattern, largest group first, and
// Kickers the remaining singletons in descending order.
type Evaluated struct {
	Category Category
	Play     []card.Value
	Kickers  []card.Value
}

type group struct {
	value card.Value
	count int
}

// Evaluate classifies a hand. Cards with an invalid value never form a
// group or a straight; they can still take part in a flush.
func Evaluate(h Hand) Evaluated {
	groups := groupValues(h)

	best := pairedCandidate(groups)
	straight := isStraight(groups)
	flush := isFlush(h)

	all := descending(h)
	candidates := make([]Evaluated, 0, 3)
	if straight {
		candidates = append(candidates, Evaluated{Category: Straight, Play: all})
	}

	if flush {
		candidates = append(candidates, Evaluated{Category: Flush, Play: all})
	}

	if straight && flush {
		category := StraightFlush
		if all[0] == card.Ace && all[Size-1] == card.Ten {
			category = RoyalFlush
		}

		candidates = append(candidates, Evaluated{Category: category, Play: all})
	}

	for _, c := range candidates {
		if c.Category > best.Category {
			best = c
		}
	}

	return best
}

// groupValues builds the value histogram and returns the non-empty buckets,
// largest count first, then highest value first
func groupValues(h Hand) []group {
	counts := histogram(h)

	groups := make([]group, 0, Size)
	for v := card.Value(card.NumValues - 1); v >= 0; v-- {
		if counts[v] > 0 {
			groups = append(groups, group{value: v, count: counts[v]})
		}
	}

	// stable keeps values descending within equal counts
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].count > groups[j].count
	})

	return groups
}

// pairedCandidate classifies by the shape of the histogram
func pairedCandidate(groups []group) Evaluated {
	var e Evaluated
	for _, g := range groups {
		if g.count == 1 {
			e.Kickers = append(e.Kickers, g.value)
			continue
		}

		for i := 0; i < g.count; i++ {
			e.Play = append(e.Play, g.value)
		}
	}

	switch first, second := countAt(groups, 0), countAt(groups, 1); {
	case first >= 4:
		e.Category = FourOfAKind
	case first == 3 && second == 2:
		e.Category = FullHouse
	case first == 3:
		e.Category = ThreeOfAKind
	case first == 2 && second == 2:
		e.Category = TwoPair
	case first == 2:
		e.Category = Pair
	default:
		e.Category = HighCard
	}

	return e
}

func countAt(groups []group, i int) int {
	if i >= len(groups) {
		return 0
	}

	return groups[i].count
}

// isStraight reports five distinct contiguous values. An ace is always high.
func isStraight(groups []group) bool {
	if len(groups) != Size {
		return false
	}

	// all counts are 1 so groups are in descending value order
	return groups[0].value-groups[Size-1].value == Size-1
}

func isFlush(h Hand) bool {
	for _, c := range h[1:] {
		if c.Suit() != h[0].Suit() {
			return false
		}
	}

	return true
}

func descending(h Hand) []card.Value {
	values := make([]card.Value, 0, Size)
	for _, c := range h {
		values = append(values, c.Value())
	}

	sort.Slice(values, func(i, j int) bool {
		return values[i] > values[j]
	})

	return values
}

// PairUnits returns the duplicate weight of a hand: a pair counts 1, three
// of a kind 3 and four of a kind 6. A full house therefore weighs 4.
func PairUnits(h Hand) int {
	units := 0
	for _, n := range histogram(h) {
		units += n * (n - 1) / 2
	}

	return units
}

// histogram counts the cards of each valid value
func histogram(h Hand) [card.NumValues]int {
	var counts [card.NumValues]int
	for _, c := range h {
		if c.Value().Valid() {
			counts[c.Value()]++
		}
	}

	return counts
}
