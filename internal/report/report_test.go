package report

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/arcanaland/handrank/internal/evaluator"
	"github.com/arcanaland/handrank/internal/hand"
	"github.com/arcanaland/handrank/internal/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scored(t *testing.T, line string, lineNo int) evaluator.Result {
	rec, err := record.Parse(line)
	require.NoError(t, err)
	rec.Line = lineNo

	return evaluator.Score(rec)
}

func TestReporter_Result(t *testing.T) {
	var console, file bytes.Buffer
	r := New(&console, &file, Options{})

	require.NoError(t, r.Result(scored(t, "5H 5C 6S 7S KD 2C 3S 8S 8D TD", 1)))
	assert.Equal(t,
		"   1: 5H 5C 6S 7S KD  Pair [5 5] [K 7 6] | 2C 3S 8S 8D TD  Pair [8 8] [T 3 2] => Opponent\n",
		console.String())
	assert.Empty(t, file.String())
}

func TestReporter_ResultDetailAndQuiet(t *testing.T) {
	var console, file bytes.Buffer
	r := New(&console, &file, Options{Detail: true, Quiet: true})

	require.NoError(t, r.Result(scored(t, "5D 8C 9S JS AC 2C 5C 7D 8S QH", 2)))
	assert.Empty(t, console.String())
	assert.Contains(t, file.String(), "High Card [] [A J 9 8 5]")
	assert.Contains(t, file.String(), "=> Player")
}

func TestReporter_ColorOnlyOnConsole(t *testing.T) {
	var console, file bytes.Buffer
	r := New(&console, &file, Options{Color: true, Detail: true})

	require.NoError(t, r.Result(scored(t, "2D 9C AS AH AC 3D 6D 7D TD QD", 3)))
	assert.Contains(t, console.String(), "\x1b[")
	assert.NotContains(t, file.String(), "\x1b[")
	assert.Contains(t, file.String(), "Three of a Kind [A A A] [9 2]")
}

func TestReporter_Summary(t *testing.T) {
	var console, file bytes.Buffer
	r := New(&console, &file, Options{Color: true})

	s := evaluator.Summary{
		Records:    3,
		PlayerWins: 2,
		Skipped:    []*record.RecordError{{Line: 4, Err: record.ErrTokenCount}},
	}
	require.NoError(t, r.Summary(s))

	want := "1 line(s) skipped\nPlayer won 2 times!\n"
	assert.Equal(t, want, console.String())
	assert.Equal(t, want, file.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestReporter_WriteErrors(t *testing.T) {
	var console bytes.Buffer
	r := New(&console, failWriter{}, Options{Detail: true})

	assert.Error(t, r.Result(scored(t, "5H 5C 6S 7S KD 2C 3S 8S 8D TD", 1)))
	assert.Error(t, r.Summary(evaluator.Summary{}))
}

func TestReporter_Hand(t *testing.T) {
	var console bytes.Buffer
	r := New(&console, nil, Options{})

	h := hand.FromString("TH JH QH KH AH")
	require.NoError(t, r.Hand(h, hand.Evaluate(h)))
	assert.Contains(t, console.String(), "Category: Royal Flush")
	assert.Contains(t, console.String(), "Play:     [A K Q J T]")
	assert.Contains(t, console.String(), "Kickers:  []")
}

func TestUseColor(t *testing.T) {
	on, err := UseColor("always", nil)
	require.NoError(t, err)
	assert.True(t, on)

	on, err = UseColor("never", nil)
	require.NoError(t, err)
	assert.False(t, on)

	on, err = UseColor("auto", nil)
	require.NoError(t, err)
	assert.False(t, on)

	on, err = UseColor("auto", &bytes.Buffer{})
	require.NoError(t, err)
	assert.False(t, on)

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	on, err = UseColor("auto", f)
	require.NoError(t, err)
	assert.False(t, on)

	_, err = UseColor("sometimes", nil)
	assert.Error(t, err)
}
