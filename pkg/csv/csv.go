// Package csv provides strict RFC 4180 CSV parsing.
//
// The grammar is fixed: comma separated fields, double quote escaping and
// CRLF record separators. Anything else is rejected with a *ParseError that
// names the first violation and where it happened.
//
// Grammar: See Grammar() for the complete EBNF definition.
//
// This parser uses LL(1) recursive descent parsing over characters.
// Each production rule in the grammar corresponds to a parse function in internal/parser/parser.go.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by multiple goroutines.
// Each function call creates its own parser instance with no shared mutable state.
//
//	// Safe: Concurrent parsing
//	go func() { csv.Parse(input1) }()
//	go func() { csv.Parse(input2) }()
//
// # Parsing APIs
//
//   - Parse(string) - Parses CSV into a Table
//   - ParseWithOptions(string, Options) - Parses with size limits or lenient quoted fields
//   - ParseAST(string) - Parses CSV into Shape's unified AST
//   - ParseReader(io.Reader) - Reads the whole reader, then parses it
//   - ParseDocument(string) - Parses CSV into a Document with header access
//
// # Example usage with Parse:
//
//	table, err := csv.Parse("5,10,15\r\n20,25,30")
//	if err != nil {
//	    // handle error
//	}
//	// table[1][2] == "30"
//
// Parsing is all or nothing: on error no table is returned.
package csv

import (
	"io"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-rfc4180/internal/parser"
)

// Record is one parsed row. It always holds at least one field.
type Record = parser.Record

// Table holds the parsed records in source order. It always holds at least
// one record: empty input parses to a single record with one empty field.
type Table = parser.Table

// Parse parses strict RFC 4180 CSV from a string.
//
// Leading and trailing whitespace, including a final CRLF, is trimmed before
// parsing. This is the only normalization performed.
//
// Example:
//
//	table, err := csv.Parse(`"a""",b`)
//	// table == csv.Table{{`a"`, "b"}}
func Parse(input string) (Table, error) {
	return ParseWithOptions(input, DefaultOptions())
}

// ParseWithOptions parses CSV from a string with custom options.
func ParseWithOptions(input string, opts Options) (Table, error) {
	p := parser.NewParserWithOptions(input, opts.parserOptions())
	return p.Parse()
}

// ParseAST parses CSV format into an AST from a string.
//
// Returns an ast.ArrayDataNode representing the parsed CSV:
//   - *ast.ArrayDataNode for the file (array of records)
//   - Each record is an *ast.ArrayDataNode of fields
//   - Each field is an *ast.LiteralNode containing a string value
//
// Record and field nodes carry the position where they start in the input.
func ParseAST(input string) (ast.SchemaNode, error) {
	p := parser.NewParser(input)
	return p.ParseAST()
}

// ParseReader reads everything from reader and parses it as one buffer.
//
// There is no incremental parsing: the whole input is held in memory, and
// read errors are returned unchanged.
func ParseReader(reader io.Reader) (Table, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}

// Format returns the format identifier for this parser.
// Returns "CSV" to identify this as the CSV data format parser.
func Format() string {
	return "CSV"
}

// Validate checks if the input string is valid CSV.
//
// Returns nil if the input is valid CSV.
// Returns a *ParseError describing the first violation otherwise.
//
//	if err := csv.Validate(input); err != nil {
//	    fmt.Println("Invalid CSV:", err)
//	}
func Validate(input string) error {
	_, err := Parse(input)
	return err
}

// ValidateReader checks if the input from an io.Reader is valid CSV.
// This reads the entire input from the reader.
func ValidateReader(reader io.Reader) error {
	_, err := ParseReader(reader)
	return err
}
