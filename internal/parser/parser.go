// Package parser implements LL(1) recursive descent parsing for strict RFC 4180 CSV.
// Each production rule in the grammar (see Grammar) corresponds to a parse function.
//
// The parser works on characters, not tokens: one rune of lookahead decides
// every branch and nothing is ever un-read.
package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shapestone/shape-core/pkg/ast"
	shapetokenizer "github.com/shapestone/shape-core/pkg/tokenizer"
	"github.com/shapestone/shape-rfc4180/internal/tokenizer"
)

// Record is one parsed row. It always holds at least one field.
type Record []string

// Table is the parsed document, records in source order. It always holds at
// least one record.
type Table []Record

// Options configures the parser behavior.
type Options struct {
	// MaxFieldSize is the maximum allowed size for a single field in bytes. 0 means no limit.
	MaxFieldSize int
	// MaxRecordSize is the maximum allowed size for a single record in bytes. 0 means no limit.
	MaxRecordSize int
	// DropInvalidQuoted silently drops characters inside quoted fields that
	// the grammar does not allow there, instead of failing.
	DropInvalidQuoted bool
}

// DefaultOptions returns default parser options: strict, no size limits.
func DefaultOptions() Options {
	return Options{
		MaxFieldSize:      0,
		MaxRecordSize:     0,
		DropInvalidQuoted: false,
	}
}

// location is a cursor position. offset is in bytes of the untrimmed input,
// line and column are 1-indexed.
type location struct {
	offset int
	line   int
	column int
}

func (l location) position() ast.Position {
	return ast.NewPosition(l.offset, l.line, l.column)
}

type field struct {
	value string
	loc   location
}

type record struct {
	fields []field
	loc    location
}

// Parser implements LL(1) recursive descent parsing for CSV.
// It owns a forward-only stream over the trimmed input and reads it through
// peek (lookahead) and next (advance) only.
type Parser struct {
	stream    shapetokenizer.Stream
	opts      Options
	loc       location
	startLine int
}

// NewParser creates a new CSV parser for the given input string.
func NewParser(input string) *Parser {
	return NewParserWithOptions(input, DefaultOptions())
}

// NewParserWithOptions creates a new CSV parser with custom options.
//
// Leading and trailing whitespace is trimmed before parsing. Positions in
// errors and AST nodes still refer to the untrimmed input.
func NewParserWithOptions(input string, opts Options) *Parser {
	rest := strings.TrimLeftFunc(input, unicode.IsSpace)
	lead := input[:len(input)-len(rest)]
	trimmed := strings.TrimRightFunc(rest, unicode.IsSpace)

	loc := location{offset: len(lead), line: 1, column: 1}
	if i := strings.LastIndexByte(lead, '\n'); i >= 0 {
		loc.line += strings.Count(lead, "\n")
		loc.column += utf8.RuneCountInString(lead[i+1:])
	} else {
		loc.column += utf8.RuneCountInString(lead)
	}

	return &Parser{
		stream:    shapetokenizer.NewStream(trimmed),
		opts:      opts,
		loc:       loc,
		startLine: loc.line,
	}
}

// Parse parses the whole input into a Table.
//
// Grammar:
//
//	Table = Record { CRLF Record } ;
//
// The first failure is returned as an *Error and no partial table is produced.
func (p *Parser) Parse() (Table, error) {
	records, err := p.parseTable()
	if err != nil {
		return nil, err
	}

	table := make(Table, len(records))
	for i, rec := range records {
		row := make(Record, len(rec.fields))
		for j, f := range rec.fields {
			row[j] = f.value
		}
		table[i] = row
	}
	return table, nil
}

// ParseAST parses the whole input into Shape's unified AST.
//
// Returns *ast.ArrayDataNode - an array of records, where each record is an
// ArrayDataNode of fields. Each field is a LiteralNode holding a string value.
// Every node carries the position where it starts in the input.
func (p *Parser) ParseAST() (ast.SchemaNode, error) {
	records, err := p.parseTable()
	if err != nil {
		return nil, err
	}

	nodes := make([]ast.SchemaNode, 0, len(records))
	for _, rec := range records {
		fields := make([]ast.SchemaNode, 0, len(rec.fields))
		for _, f := range rec.fields {
			fields = append(fields, ast.NewLiteralNode(f.value, f.loc.position()))
		}
		nodes = append(nodes, ast.NewArrayDataNode(fields, rec.loc.position()))
	}

	return ast.NewArrayDataNode(nodes, ast.ZeroPosition()), nil
}

// parseTable parses records separated by a strict CRLF.
//
// A separator is only consumed while input remains, and once a CR is read
// the LF must follow it exactly.
func (p *Parser) parseTable() ([]record, error) {
	records := make([]record, 0, 16)

	rec, err := p.parseRecord()
	if err != nil {
		return nil, err
	}
	records = append(records, rec)

	for p.more() {
		if err := p.eat(tokenizer.CR); err != nil {
			return nil, err
		}
		if err := p.eat(tokenizer.LF); err != nil {
			return nil, err
		}
		if p.more() {
			rec, err := p.parseRecord()
			if err != nil {
				return nil, err
			}
			records = append(records, rec)
		}
	}

	return records, nil
}

// parseRecord parses a single CSV record.
//
// Grammar:
//
//	Record = Field { "," Field } ;
func (p *Parser) parseRecord() (record, error) {
	start := p.loc
	p.startLine = start.line
	fields := make([]field, 0, 8)

	f, err := p.parseField()
	if err != nil {
		return record{}, err
	}
	fields = append(fields, f)
	size := len(f.value)

	for {
		r, ok := p.peek()
		if !ok || r != tokenizer.Comma {
			break
		}
		p.next()

		f, err := p.parseField()
		if err != nil {
			return record{}, err
		}
		fields = append(fields, f)
		size += len(f.value)
	}

	if p.opts.MaxRecordSize > 0 && size > p.opts.MaxRecordSize {
		return record{}, p.fail(start, &Error{Kind: KindRecordTooLarge, Size: size, Limit: p.opts.MaxRecordSize})
	}

	return record{fields: fields, loc: start}, nil
}

// parseField parses a single CSV field.
//
// Grammar:
//
//	Field = QuotedField | UnquotedField ;
func (p *Parser) parseField() (field, error) {
	var f field
	var err error

	if r, ok := p.peek(); ok && r == tokenizer.DQuote {
		f, err = p.parseEscapedField()
	} else {
		f, err = p.parseNonEscapedField()
	}
	if err != nil {
		return field{}, err
	}

	if p.opts.MaxFieldSize > 0 && len(f.value) > p.opts.MaxFieldSize {
		return field{}, p.fail(f.loc, &Error{Kind: KindFieldTooLarge, Size: len(f.value), Limit: p.opts.MaxFieldSize})
	}

	return f, nil
}

// parseEscapedField parses a quoted CSV field.
//
// Grammar:
//
//	QuotedField = '"' { TextData | "," | CR | LF | '""' } '"' ;
//
// A doubled quote is one literal quote. A single quote closes the field and
// is not part of its value.
func (p *Parser) parseEscapedField() (field, error) {
	start := p.loc
	if err := p.eat(tokenizer.DQuote); err != nil {
		return field{}, err
	}

	var value strings.Builder
	for {
		at := p.loc
		r, ok := p.next()
		if !ok {
			return field{}, p.fail(at, &Error{Kind: KindUnexpectedEOF, Expected: tokenizer.DQuote})
		}

		switch {
		case tokenizer.IsTextData(r), r == tokenizer.Comma, r == tokenizer.CR, r == tokenizer.LF:
			value.WriteRune(r)
		case r == tokenizer.DQuote:
			if next, ok := p.peek(); ok && next == tokenizer.DQuote {
				value.WriteRune(tokenizer.DQuote)
				p.next()
				continue
			}
			return field{value: value.String(), loc: start}, nil
		case p.opts.DropInvalidQuoted:
			// dropped
		default:
			return field{}, p.fail(at, &Error{Kind: KindUnexpectedCharInQuotedField, Actual: r})
		}
	}
}

// parseNonEscapedField parses an unquoted CSV field.
//
// Grammar:
//
//	UnquotedField = { TextData } ;
//
// The field ends, unconsumed, at a comma, a CR or the end of input.
func (p *Parser) parseNonEscapedField() (field, error) {
	start := p.loc
	var value strings.Builder

	for {
		r, ok := p.peek()
		if !ok || r == tokenizer.Comma || r == tokenizer.CR {
			break
		}
		if !tokenizer.IsTextData(r) {
			return field{}, p.fail(p.loc, &Error{Kind: KindUnexpectedCharInUnquotedField, Actual: r})
		}
		value.WriteRune(r)
		p.next()
	}

	return field{value: value.String(), loc: start}, nil
}

// Helper methods

// eat consumes exactly the expected character.
func (p *Parser) eat(expected rune) error {
	at := p.loc
	r, ok := p.next()
	if !ok {
		return p.fail(at, &Error{Kind: KindUnexpectedEOF, Expected: expected})
	}
	if r != expected {
		return p.fail(at, &Error{Kind: KindWrongChar, Expected: expected, Actual: r})
	}
	return nil
}

// peek returns the next character without consuming it.
func (p *Parser) peek() (rune, bool) {
	return p.stream.PeekChar()
}

// next consumes one character and advances the location.
func (p *Parser) next() (rune, bool) {
	r, ok := p.stream.NextChar()
	if !ok {
		return 0, false
	}
	if n := utf8.RuneLen(r); n > 0 {
		p.loc.offset += n
	} else {
		p.loc.offset++
	}
	if r == tokenizer.LF {
		p.loc.line++
		p.loc.column = 1
	} else {
		p.loc.column++
	}
	return r, true
}

// more reports whether any input remains.
func (p *Parser) more() bool {
	_, ok := p.peek()
	return ok
}

// fail stamps e with a location and the line of the record being parsed.
func (p *Parser) fail(at location, e *Error) *Error {
	e.Offset = at.offset
	e.Line = at.line
	e.Column = at.column
	e.StartLine = p.startLine
	return e
}
