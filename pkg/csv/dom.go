// Package csv provides a read-only DOM API over parsed CSV.
//
// # Document Type
//
// Document wraps a parsed Table and optionally treats its first record as
// column headers:
//
//	doc, _ := csv.ParseDocument("name,age\r\nAlice,30\r\nBob,25")
//	doc = doc.WithHeaders()
//
// # Row Type
//
// Row represents a single data record with typed access:
//
//	row, _ := doc.GetRecord(0)
//	name, _ := row.Get(0)           // Get by index
//	age, _ := row.GetByName("age")  // Get by header name
//
// Documents never change after construction; WithHeaders returns a new one.
package csv

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
)

// Document is a parsed CSV table with optional headers.
//
// A Document consists of:
//   - Optional headers (first row that names the columns)
//   - Data records (remaining rows)
type Document struct {
	headers []string
	records []Record
}

// Row represents a single data record.
// It provides type-safe access to field values by index or by header name.
type Row struct {
	fields  []string
	headers []string // Reference to document headers for name-based access
}

// NewDocument creates a Document over table with no headers.
func NewDocument(table Table) *Document {
	return &Document{
		headers: []string{},
		records: table,
	}
}

// ParseDocument parses a CSV string into a Document.
// Returns an error if the input is not valid CSV.
//
// By default, all rows are treated as data records.
// Call WithHeaders to treat the first row as column names.
func ParseDocument(input string) (*Document, error) {
	table, err := Parse(input)
	if err != nil {
		return nil, err
	}
	return NewDocument(table), nil
}

// WithHeaders returns a Document whose headers are the first data record of
// d and whose records are the rest. It returns d unchanged when d already has
// headers or has no records.
func (d *Document) WithHeaders() *Document {
	if len(d.headers) > 0 || len(d.records) == 0 {
		return d
	}
	return &Document{
		headers: d.records[0],
		records: d.records[1:],
	}
}

// Headers returns the column headers.
// Returns an empty slice if no headers have been set.
func (d *Document) Headers() []string {
	headers := make([]string, len(d.headers))
	copy(headers, d.headers)
	return headers
}

// Records returns all data records as Row objects.
func (d *Document) Records() []Row {
	rows := make([]Row, len(d.records))
	for i, fields := range d.records {
		rows[i] = Row{
			fields:  fields,
			headers: d.headers,
		}
	}
	return rows
}

// RecordCount returns the number of data records in the document.
// This does not include the header row.
func (d *Document) RecordCount() int {
	return len(d.records)
}

// GetRecord returns the record at the specified index.
// Returns (Row, false) if the index is out of bounds.
// Index is 0-based (0 = first data record, not the header).
func (d *Document) GetRecord(index int) (Row, bool) {
	if index < 0 || index >= len(d.records) {
		return Row{}, false
	}

	return Row{
		fields:  d.records[index],
		headers: d.headers,
	}, true
}

// Column returns the values at index in every data record. Records too short
// to have that column contribute an empty string and ok is false.
func (d *Document) Column(index int) (values []string, ok bool) {
	values = make([]string, len(d.records))
	ok = index >= 0
	for i, fields := range d.records {
		if index < 0 || index >= len(fields) {
			ok = false
			continue
		}
		values[i] = fields[index]
	}
	return values, ok
}

// ColumnByName returns the column under the header name.
// Returns (nil, false) if the header name is not found or if no headers are set.
func (d *Document) ColumnByName(name string) ([]string, bool) {
	for i, header := range d.headers {
		if header == name {
			return d.Column(i)
		}
	}
	return nil, false
}

// ============================================================================
// Row Methods (type-safe field access)
// ============================================================================

// Get gets the field value at the specified index.
// Returns (value, false) if the index is out of bounds.
// Index is 0-based.
func (r Row) Get(index int) (string, bool) {
	if index < 0 || index >= len(r.fields) {
		return "", false
	}
	return r.fields[index], true
}

// GetByName gets the field value by header name.
// Returns (value, false) if the header name is not found or if no headers are set.
func (r Row) GetByName(name string) (string, bool) {
	for i, header := range r.headers {
		if header == name {
			return r.Get(i)
		}
	}
	return "", false
}

// Fields returns all field values in the row.
// This returns a copy of the fields slice.
func (r Row) Fields() []string {
	fields := make([]string, len(r.fields))
	copy(fields, r.fields)
	return fields
}

// Len returns the number of fields in the row.
func (r Row) Len() int {
	return len(r.fields)
}

// ============================================================================
// AST Conversion (for integration with AST-based APIs)
// ============================================================================

// ToAST converts the Document to an AST ArrayDataNode.
// Headers, when set, come first as an ordinary record.
func (d *Document) ToAST() *ast.ArrayDataNode {
	allRecords := make([]ast.SchemaNode, 0, len(d.records)+1)

	if len(d.headers) > 0 {
		allRecords = append(allRecords, recordNode(d.headers))
	}
	for _, record := range d.records {
		allRecords = append(allRecords, recordNode(record))
	}

	return ast.NewArrayDataNode(allRecords, ast.ZeroPosition())
}

func recordNode(fields []string) *ast.ArrayDataNode {
	fieldNodes := make([]ast.SchemaNode, len(fields))
	for i, f := range fields {
		fieldNodes[i] = ast.NewLiteralNode(f, ast.ZeroPosition())
	}
	return ast.NewArrayDataNode(fieldNodes, ast.ZeroPosition())
}

// FromAST creates a Document from an AST ArrayDataNode, such as the one
// returned by ParseAST.
func FromAST(node ast.SchemaNode) (*Document, error) {
	arrayNode, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return nil, fmt.Errorf("expected *ast.ArrayDataNode, got %T", node)
	}

	table := make(Table, 0, arrayNode.Len())
	for _, elem := range arrayNode.Elements() {
		recordNode, ok := elem.(*ast.ArrayDataNode)
		if !ok {
			return nil, fmt.Errorf("expected record to be *ast.ArrayDataNode, got %T", elem)
		}

		fields := make(Record, 0, recordNode.Len())
		for _, fieldNode := range recordNode.Elements() {
			literalNode, ok := fieldNode.(*ast.LiteralNode)
			if !ok {
				return nil, fmt.Errorf("expected field to be *ast.LiteralNode, got %T", fieldNode)
			}

			value, ok := literalNode.Value().(string)
			if !ok {
				return nil, fmt.Errorf("expected field value to be string, got %T", literalNode.Value())
			}

			fields = append(fields, value)
		}

		table = append(table, fields)
	}

	return NewDocument(table), nil
}
