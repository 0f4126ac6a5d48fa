package csv

import "github.com/shapestone/shape-rfc4180/internal/parser"

// ParseError represents a parsing error with position information.
//
// Kind says which grammar rule was violated. Expected and Actual hold the
// characters involved, Line, Column and Offset locate the failure in the
// untrimmed input, and StartLine is where the failing record started.
type ParseError = parser.Error

// ErrorKind identifies the grammar violation carried by a ParseError.
type ErrorKind = parser.Kind

// Error kinds.
const (
	KindUnexpectedCharInQuotedField   = parser.KindUnexpectedCharInQuotedField
	KindUnexpectedCharInUnquotedField = parser.KindUnexpectedCharInUnquotedField
	KindUnexpectedEOF                 = parser.KindUnexpectedEOF
	KindWrongChar                     = parser.KindWrongChar
	KindFieldTooLarge                 = parser.KindFieldTooLarge
	KindRecordTooLarge                = parser.KindRecordTooLarge
)

// Common parsing errors. A *ParseError unwraps to the one matching its kind.
var (
	// ErrUnexpectedCharInQuotedField indicates a character not allowed inside quotes.
	ErrUnexpectedCharInQuotedField = parser.ErrUnexpectedCharInQuotedField

	// ErrUnexpectedCharInUnquotedField indicates a bare quote, lone LF or other
	// character outside textdata in an unquoted field.
	ErrUnexpectedCharInUnquotedField = parser.ErrUnexpectedCharInUnquotedField

	// ErrUnexpectedEOF indicates the input ended where a token was required,
	// such as the closing quote of a quoted field.
	ErrUnexpectedEOF = parser.ErrUnexpectedEOF

	// ErrWrongChar indicates a required token, such as the LF of a CRLF, was
	// replaced by a different character.
	ErrWrongChar = parser.ErrWrongChar

	// ErrFieldTooLarge indicates a field exceeded MaxFieldSize.
	ErrFieldTooLarge = parser.ErrFieldTooLarge

	// ErrRecordTooLarge indicates a record exceeded MaxRecordSize.
	ErrRecordTooLarge = parser.ErrRecordTooLarge
)
