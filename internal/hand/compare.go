package hand

import (
	"strings"

	"github.com/arcanaland/handrank/internal/card"
)

// Compare orders two evaluated hands. It returns 1 if a beats b, -1 if b
// beats a and 0 on a draw: category first, then play values, then kickers.
func Compare(a, b Evaluated) int {
	switch {
	case a.Category > b.Category:
		return 1
	case a.Category < b.Category:
		return -1
	}

	if c := compareValues(a.Play, b.Play); c != 0 {
		return c
	}

	return compareValues(a.Kickers, b.Kickers)
}

// compareValues compares two descending value lists element by element.
// When one runs out first the longer list wins.
func compareValues(a, b []card.Value) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		switch {
		case a[i] > b[i]:
			return 1
		case a[i] < b[i]:
			return -1
		}
	}

	switch {
	case len(a) > len(b):
		return 1
	case len(a) < len(b):
		return -1
	}

	return 0
}

// Describe returns the category followed by the play and kicker symbols,
// e.g. "Pair [5 5] [K 7 6]"
func (e Evaluated) Describe() string {
	return e.Category.String() + " " + Symbols(e.Play) + " " + Symbols(e.Kickers)
}

// Symbols formats values as a bracketed list of rank symbols
func Symbols(values []card.Value) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = v.String()
	}

	return "[" + strings.Join(s, " ") + "]"
}

// Equal reports whether two evaluated hands are identical
func (e Evaluated) Equal(o Evaluated) bool {
	return e.Category == o.Category &&
		compareValues(e.Play, o.Play) == 0 &&
		compareValues(e.Kickers, o.Kickers) == 0
}
