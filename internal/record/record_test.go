package record

import (
	"errors"
	"testing"

	"github.com/arcanaland/handrank/internal/card"
	"github.com/arcanaland/handrank/internal/hand"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	r, err := Parse("8C TS KC 9H 4S 7D 2S 5D 3S AC\n")
	require.NoError(t, err)
	assert.Equal(t, hand.FromString("8C TS KC 9H 4S"), r.Player)
	assert.Equal(t, hand.FromString("7D 2S 5D 3S AC"), r.Opponent)
	assert.Equal(t, "8C TS KC 9H 4S 7D 2S 5D 3S AC", r.String())

	// extra whitespace and carriage returns are tolerated
	_, err = Parse("  8C TS KC 9H 4S\t7D 2S 5D 3S AC\r\n")
	assert.NoError(t, err)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		line string
		err  error
	}{
		{"blank", "   \r\n", ErrBlankLine},
		{"too few", "8C TS KC 9H 4S 7D 2S 5D 3S", ErrTokenCount},
		{"too many", "8C TS KC 9H 4S 7D 2S 5D 3S AC 2C", ErrTokenCount},
		{"bad rank", "8C TS KC 9H 4S 7D 2S 5D 3S 1C", card.ErrInvalidRank},
		{"long token", "8C TS KC 9H 10S 7D 2S 5D 3S AC", card.ErrTokenLength},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse(test.line)
			assert.ErrorIs(t, err, test.err)
		})
	}

	_, err := Parse("8C TS KC 9H 4S 7D 2S 5D 3S 1C")
	assert.Contains(t, err.Error(), "opponent hand")
}

func TestRecordError(t *testing.T) {
	var err error = &RecordError{Line: 7, Text: "junk", Err: ErrTokenCount}
	assert.Equal(t, "line 7: wrong number of card tokens", err.Error())
	assert.True(t, errors.Is(err, ErrMalformedRecord))
	assert.True(t, errors.Is(err, ErrTokenCount))

	var re *RecordError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, 7, re.Line)
}
