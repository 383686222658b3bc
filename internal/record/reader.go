package record

import (
	"bufio"
	"errors"
	"io"
)

// MaxLineLength is the longest line Reader returns. A record is 29 bytes.
const MaxLineLength = 64 * 1024

// previewLength bounds the text kept from an overlong line
const previewLength = 40

// ErrLineTooLong is returned by Reader for a line over MaxLineLength
var ErrLineTooLong = errors.New("line too long")

// Reader reads input one line at a time. Unlike bufio.Scanner it does not
// stop at an overlong line: the line is consumed whole and reported with
// ErrLineTooLong so the caller can skip it and go on.
type Reader struct {
	r    *bufio.Reader
	line int
}

// NewReader returns a Reader reading from r
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Next returns the next line without its line ending, and its 1-based
// number. It returns io.EOF once the input is exhausted. For an overlong
// line the text is a short prefix and the error is ErrLineTooLong.
func (r *Reader) Next() (int, string, error) {
	var (
		buf     []byte
		started bool
		tooLong bool
	)

	for {
		chunk, isPrefix, err := r.r.ReadLine()
		if err != nil {
			if err == io.EOF && started {
				break
			}
			return r.line, "", err
		}
		started = true

		if room := MaxLineLength - len(buf); len(chunk) > room {
			buf = append(buf, chunk[:room]...)
			tooLong = true
		} else {
			buf = append(buf, chunk...)
		}

		if !isPrefix {
			break
		}
	}

	r.line++
	if tooLong {
		return r.line, string(buf[:previewLength]) + "...", ErrLineTooLong
	}

	return r.line, string(buf), nil
}
