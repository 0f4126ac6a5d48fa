//go:build go1.18
// +build go1.18

package parser

import (
	"testing"
)

// FuzzParser tests the parser with random inputs to find edge cases and panics.
// Run with: go test -fuzz=FuzzParser -fuzztime=30s ./internal/parser
func FuzzParser(f *testing.F) {
	seeds := []string{
		"",
		"value",
		"a,b,c",
		"5,10,15\r\n20,25,30",
		"\"quoted\"",
		"\"with,comma\"",
		"\"with\"\"quote\"",
		"\"multi\r\nline\"",
		"a,\"b\",c",
		"a\rb",
		"a\"b",
		"\"unterminated",
		",,",
		"\"\"",
		"\"\"\"\"",
	}

	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		table, err := NewParser(input).Parse()
		if err != nil {
			if _, ok := err.(*Error); !ok {
				t.Fatalf("error is %T, want *Error", err)
			}
			if table != nil {
				t.Fatalf("partial table returned with error")
			}
			return
		}
		if len(table) == 0 {
			t.Fatalf("empty table for %q", input)
		}
		for i, rec := range table {
			if len(rec) == 0 {
				t.Fatalf("record %d is empty for %q", i, input)
			}
		}
	})
}
