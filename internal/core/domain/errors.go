package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotNumeric       = errors.New("numeral is not a non-negative integer")
	ErrNumberTooLarge   = errors.New("numeral exceeds the supported range")
	ErrMonthOutOfRange  = errors.New("month must be between 1 and 12")
	ErrUnknownUnit      = errors.New("unit abbreviation not in table")
	ErrUnknownCurrency  = errors.New("currency symbol not in table")
	ErrDuplicateKey     = errors.New("duplicate key in pattern table")
	ErrEmptyKey         = errors.New("empty key in pattern table")
	ErrEmptyPattern     = errors.New("pattern table is empty")
	ErrTransliterate    = errors.New("transliteration failed")
	ErrUnsupportedShape = errors.New("unsupported transliteration result shape")
)

// Span is a half-open byte range [Start, End) within a text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// NormalizationError reports a match that a stage could not rewrite.
type NormalizationError struct {
	Stage string
	Span  Span
	Text  string
	Err   error
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("%s normalization of %q at [%d:%d]: %v", e.Stage, e.Text, e.Span.Start, e.Span.End, e.Err)
}

func (e *NormalizationError) Unwrap() error {
	return e.Err
}
