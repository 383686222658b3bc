package validator

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/arcanaland/handrank/internal/card"
	"github.com/arcanaland/handrank/internal/record"
)

// StandardSuits is the suit alphabet of the usual input files
const StandardSuits = "CDHS"

type ValidationResults struct {
	Records  int
	Errors   []string
	Warnings []string
}

// Valid reports whether no errors were found
func (r ValidationResults) Valid() bool {
	return len(r.Errors) == 0
}

type Validator struct {
	Results ValidationResults
}

func NewValidator() *Validator {
	return &Validator{
		Results: ValidationResults{},
	}
}

// Validate checks every line of an input file without scoring it. Lines that
// cannot be evaluated are errors; lines that evaluate but look suspicious,
// such as a card dealt twice, are warnings.
func (v *Validator) Validate(r io.Reader) (ValidationResults, error) {
	v.Results = ValidationResults{}

	lines := record.NewReader(r)
	for {
		lineNo, line, err := lines.Next()
		if err == io.EOF {
			break
		}

		if errors.Is(err, record.ErrLineTooLong) {
			v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("line %d: %v", lineNo, err))
			continue
		}

		if err != nil {
			return v.Results, fmt.Errorf("error reading input: %w", err)
		}

		v.validateLine(lineNo, line)
	}

	if v.Results.Records == 0 && len(v.Results.Errors) == 0 {
		v.Results.Warnings = append(v.Results.Warnings, "no records found")
	}

	return v.Results, nil
}

func (v *Validator) validateLine(lineNo int, line string) {
	rec, err := record.Parse(line)
	if errors.Is(err, record.ErrBlankLine) {
		return
	}

	if err != nil {
		v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("line %d: %v", lineNo, err))
		return
	}

	v.Results.Records++
	v.validateDuplicates(lineNo, rec)
	v.validateSuits(lineNo, rec)
}

// validateDuplicates warns about a card appearing twice in one record
func (v *Validator) validateDuplicates(lineNo int, rec record.Record) {
	seen := make(map[string]bool, record.Tokens)
	var dups []string
	for _, c := range cards(rec) {
		if seen[c.String()] {
			dups = append(dups, c.String())
		}
		seen[c.String()] = true
	}

	if len(dups) > 0 {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("line %d: duplicate cards: %s", lineNo, strings.Join(dups, ", ")))
	}
}

// validateSuits warns about suits outside the standard alphabet
func (v *Validator) validateSuits(lineNo int, rec record.Record) {
	var odd []string
	for _, c := range cards(rec) {
		if strings.IndexByte(StandardSuits, c.Suit()) < 0 {
			odd = append(odd, c.String())
		}
	}

	if len(odd) > 0 {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("line %d: non-standard suits: %s", lineNo, strings.Join(odd, ", ")))
	}
}

func cards(rec record.Record) []card.Card {
	return append(rec.Player[:], rec.Opponent[:]...)
}
