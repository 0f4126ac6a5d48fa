// Package tokenizer provides the lexical layer of the RFC 4180 grammar using Shape's tokenizer framework.
package tokenizer

// Character constants for the terminals of the grammar.
const (
	Comma  = ','
	DQuote = '"'
	CR     = '\r'
	LF     = '\n'
)

// Token type constants for CSV format.
// These correspond to the terminals in the CSV grammar (RFC 4180).
//
// Note: The tokenizer is context free. It does not know whether it is inside
// a quoted field, so a lone LF or an Invalid rune is only an error once the
// grammar engine sees it outside quotes.
const (
	// Structural tokens
	TokenComma  = "Comma"  // , (field separator)
	TokenDQuote = "DQuote" // " (quote delimiter)
	TokenCRLF   = "CRLF"   // \r\n (record separator)
	TokenCR     = "CR"     // lone \r
	TokenLF     = "LF"     // lone \n

	// Field content token
	TokenTextData = "TextData" // maximal run of textdata characters

	// Any single rune outside every class above
	TokenInvalid = "Invalid"
)

// IsTextData reports whether r may appear literally in any field.
//
// Grammar:
//
//	TextData = " " | "!" | "#" … "+" | "-" … "~" ;
//
// Double quote (0x22), comma (0x2C), control characters and everything above
// 0x7E are excluded.
func IsTextData(r rune) bool {
	return r == 0x20 ||
		r == 0x21 ||
		(r >= 0x23 && r <= 0x2B) ||
		(r >= 0x2D && r <= 0x7E)
}
