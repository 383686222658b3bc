package card

// Value is the ordinal strength of a rank, 0 for a deuce up to 12 for an ace
type Value int8

// Invalid is returned when a symbol or value is outside the rank alphabet
const Invalid Value = -1

// NumValues is the number of distinct ranks
const NumValues = 13

// Named values used by the hand analyzer
const (
	Two   Value = 0
	Ten   Value = 8
	Jack  Value = 9
	Queen Value = 10
	King  Value = 11
	Ace   Value = 12
)

// symbols maps a value to its rank symbol
var symbols = [NumValues]byte{'2', '3', '4', '5', '6', '7', '8', '9', 'T', 'J', 'Q', 'K', 'A'}

// values maps a rank symbol back to its value
var values = func() (table [256]Value) {
	for i := range table {
		table[i] = Invalid
	}

	for v, s := range symbols {
		table[s] = Value(v)
	}

	return table
}()

// Decode returns the value of a rank symbol, or Invalid
func Decode(symbol byte) Value {
	return values[symbol]
}

// Encode returns the rank symbol of a value, or 0 if the value is out of range
func Encode(v Value) byte {
	if !v.Valid() {
		return 0
	}

	return symbols[v]
}

// Valid reports whether v is within [0, NumValues)
func (v Value) Valid() bool {
	return v >= 0 && v < NumValues
}

func (v Value) String() string {
	if !v.Valid() {
		return "?"
	}

	return string(symbols[v])
}
