package parser

import (
	"errors"
	"fmt"
)

// Kind identifies the grammar violation carried by an *Error.
type Kind int

const (
	// KindUnexpectedCharInQuotedField: a character outside textdata, comma, CR,
	// LF and double quote appeared inside a quoted field.
	KindUnexpectedCharInQuotedField Kind = iota + 1
	// KindUnexpectedCharInUnquotedField: an unquoted field contains a character
	// that is not textdata, comma or CR.
	KindUnexpectedCharInUnquotedField
	// KindUnexpectedEOF: a required token was expected but the input was exhausted.
	KindUnexpectedEOF
	// KindWrongChar: a required token was expected but a different character was present.
	KindWrongChar
	// KindFieldTooLarge: a field exceeded Options.MaxFieldSize.
	KindFieldTooLarge
	// KindRecordTooLarge: a record exceeded Options.MaxRecordSize.
	KindRecordTooLarge
)

// Sentinel errors, one per Kind. An *Error unwraps to the sentinel of its kind.
var (
	ErrUnexpectedCharInQuotedField   = errors.New("unexpected character in quoted field")
	ErrUnexpectedCharInUnquotedField = errors.New("unexpected character in unquoted field")
	ErrUnexpectedEOF                 = errors.New("unexpected end of input")
	ErrWrongChar                     = errors.New("wrong character")
	ErrFieldTooLarge                 = errors.New("field exceeds maximum size")
	ErrRecordTooLarge                = errors.New("record exceeds maximum size")
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindUnexpectedCharInQuotedField:
		return "unexpected-char-in-quoted-field"
	case KindUnexpectedCharInUnquotedField:
		return "unexpected-char-in-unquoted-field"
	case KindUnexpectedEOF:
		return "unexpected-eof"
	case KindWrongChar:
		return "wrong-char"
	case KindFieldTooLarge:
		return "field-too-large"
	case KindRecordTooLarge:
		return "record-too-large"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindUnexpectedCharInQuotedField:
		return ErrUnexpectedCharInQuotedField
	case KindUnexpectedCharInUnquotedField:
		return ErrUnexpectedCharInUnquotedField
	case KindUnexpectedEOF:
		return ErrUnexpectedEOF
	case KindWrongChar:
		return ErrWrongChar
	case KindFieldTooLarge:
		return ErrFieldTooLarge
	case KindRecordTooLarge:
		return ErrRecordTooLarge
	default:
		return nil
	}
}

// Error is the single failure reported by a parse. Which of Expected, Actual,
// Size and Limit are meaningful depends on Kind.
type Error struct {
	Kind Kind
	// Expected is the required token for KindUnexpectedEOF and KindWrongChar.
	Expected rune
	// Actual is the offending character for KindWrongChar and both
	// KindUnexpectedChar kinds.
	Actual rune
	// Size and Limit are set for KindFieldTooLarge and KindRecordTooLarge.
	Size  int
	Limit int

	// Offset is the byte offset into the untrimmed input (0-indexed).
	Offset int
	// StartLine is the line where the failing record started (1-indexed).
	StartLine int
	// Line and Column locate the failure (1-indexed, column counts runes).
	Line   int
	Column int
}

// Error returns a formatted error message with position information.
func (e *Error) Error() string {
	if e.StartLine == e.Line {
		return fmt.Sprintf("parse error on line %d, column %d: %s", e.Line, e.Column, e.detail())
	}
	return fmt.Sprintf("parse error on line %d (started line %d), column %d: %s",
		e.Line, e.StartLine, e.Column, e.detail())
}

func (e *Error) detail() string {
	switch e.Kind {
	case KindUnexpectedCharInQuotedField, KindUnexpectedCharInUnquotedField:
		return fmt.Sprintf("%v %q", e.Kind.sentinel(), e.Actual)
	case KindUnexpectedEOF:
		return fmt.Sprintf("%v, expected %q", ErrUnexpectedEOF, e.Expected)
	case KindWrongChar:
		return fmt.Sprintf("expected %q, got %q", e.Expected, e.Actual)
	case KindFieldTooLarge, KindRecordTooLarge:
		return fmt.Sprintf("%v (%d > %d)", e.Kind.sentinel(), e.Size, e.Limit)
	default:
		return e.Kind.String()
	}
}

// Unwrap returns the sentinel error of the kind, so errors.Is(err, ErrWrongChar) works.
func (e *Error) Unwrap() error {
	return e.Kind.sentinel()
}
