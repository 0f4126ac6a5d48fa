package csv

import "github.com/shapestone/shape-rfc4180/internal/parser"

// Options configures parsing. The zero value is the strict default.
type Options struct {
	// MaxFieldSize is the maximum allowed size for a single field in bytes.
	// 0 means no limit.
	MaxFieldSize int

	// MaxRecordSize is the maximum allowed size for a single record in bytes,
	// summed over its field values. 0 means no limit.
	MaxRecordSize int

	// DropInvalidQuoted drops characters inside quoted fields that the
	// grammar does not allow there (tabs, other control characters,
	// non-ASCII) instead of failing with ErrUnexpectedCharInQuotedField.
	// Unquoted fields are always strict.
	DropInvalidQuoted bool
}

// DefaultOptions returns the strict default configuration.
func DefaultOptions() Options {
	return Options{
		MaxFieldSize:      0,
		MaxRecordSize:     0,
		DropInvalidQuoted: false,
	}
}

func (o Options) parserOptions() parser.Options {
	return parser.Options{
		MaxFieldSize:      o.MaxFieldSize,
		MaxRecordSize:     o.MaxRecordSize,
		DropInvalidQuoted: o.DropInvalidQuoted,
	}
}
