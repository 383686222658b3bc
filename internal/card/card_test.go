package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEncode_RoundTrip(t *testing.T) {
	for _, s := range []byte("23456789TJQKA") {
		v := Decode(s)
		assert.True(t, v.Valid(), "symbol %c", s)
		assert.Equal(t, s, Encode(v))
	}

	for v := Value(0); v < NumValues; v++ {
		assert.Equal(t, v, Decode(Encode(v)))
	}
}

func TestDecode(t *testing.T) {
	assert.Equal(t, Two, Decode('2'))
	assert.Equal(t, Value(7), Decode('9'))
	assert.Equal(t, Ten, Decode('T'))
	assert.Equal(t, Ace, Decode('A'))

	for _, s := range []byte("01tjqka*X ") {
		assert.Equal(t, Invalid, Decode(s), "symbol %q", s)
	}
}

func TestEncode_OutOfRange(t *testing.T) {
	assert.Equal(t, byte(0), Encode(Invalid))
	assert.Equal(t, byte(0), Encode(NumValues))
	assert.Equal(t, "?", Value(42).String())
	assert.Equal(t, "K", King.String())
}

func TestNew(t *testing.T) {
	c := New('Q', 'H')
	assert.Equal(t, byte('Q'), c.Rank())
	assert.Equal(t, Queen, c.Value())
	assert.Equal(t, byte('H'), c.Suit())
	assert.Equal(t, "QH", c.String())

	// never fails, the sentinel is carried
	c = New('Z', 'H')
	assert.Equal(t, Invalid, c.Value())
}

func TestParse(t *testing.T) {
	c, err := Parse("TD")
	require.NoError(t, err)
	assert.Equal(t, Ten, c.Value())
	assert.Equal(t, byte('D'), c.Suit())

	_, err = Parse("10D")
	assert.ErrorIs(t, err, ErrTokenLength)

	_, err = Parse("")
	assert.ErrorIs(t, err, ErrTokenLength)

	_, err = Parse("1D")
	assert.ErrorIs(t, err, ErrInvalidRank)

	_, err = Parse("A\t")
	assert.ErrorIs(t, err, ErrInvalidSuit)
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, "AS", MustParse("AS").String())
	assert.Panics(t, func() { MustParse("XS") })
}
