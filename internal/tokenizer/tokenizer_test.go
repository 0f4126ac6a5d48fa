package tokenizer

import (
	"strings"
	"testing"

	"github.com/shapestone/shape-core/pkg/tokenizer"
)

type wantToken struct {
	kind  string
	value string
}

// TestTokenTypes tests that all token constants are defined and distinct.
func TestTokenTypes(t *testing.T) {
	kinds := []string{TokenComma, TokenDQuote, TokenCRLF, TokenCR, TokenLF, TokenTextData, TokenInvalid}
	seen := make(map[string]bool)
	for _, k := range kinds {
		if k == "" {
			t.Errorf("empty token kind")
		}
		if seen[k] {
			t.Errorf("duplicate token kind %q", k)
		}
		seen[k] = true
	}
}

func TestIsTextData(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want bool
	}{
		{"space", ' ', true},
		{"bang", '!', true},
		{"dquote", '"', false},
		{"hash", '#', true},
		{"plus", '+', true},
		{"comma", ',', false},
		{"dash", '-', true},
		{"digit", '7', true},
		{"letter", 'z', true},
		{"tilde", '~', true},
		{"del", 0x7F, false},
		{"tab", '\t', false},
		{"cr", '\r', false},
		{"lf", '\n', false},
		{"nul", 0, false},
		{"latin1", 'é', false},
		{"emoji", '😀', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTextData(tt.r); got != tt.want {
				t.Errorf("IsTextData(%q) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

// TestIsTextData_ExactClass walks the whole ASCII range against the grammar ranges.
func TestIsTextData_ExactClass(t *testing.T) {
	for r := rune(0); r < 0x100; r++ {
		want := r == 0x20 || r == 0x21 || (r >= 0x23 && r <= 0x2B) || (r >= 0x2D && r <= 0x7E)
		if IsTextData(r) != want {
			t.Errorf("IsTextData(%#x) = %v, want %v", r, !want, want)
		}
	}
}

// TestNewTokenizer_BasicTokens tests comprehensive tokenization scenarios.
func TestNewTokenizer_BasicTokens(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []wantToken
	}{
		{
			name:     "single comma",
			input:    ",",
			expected: []wantToken{{TokenComma, ","}},
		},
		{
			name:     "single field",
			input:    "abc",
			expected: []wantToken{{TokenTextData, "abc"}},
		},
		{
			name:     "crlf",
			input:    "\r\n",
			expected: []wantToken{{TokenCRLF, "\r\n"}},
		},
		{
			name:     "lone cr",
			input:    "a\rb",
			expected: []wantToken{{TokenTextData, "a"}, {TokenCR, "\r"}, {TokenTextData, "b"}},
		},
		{
			name:     "lone lf",
			input:    "a\nb",
			expected: []wantToken{{TokenTextData, "a"}, {TokenLF, "\n"}, {TokenTextData, "b"}},
		},
		{
			name:  "simple row",
			input: "a,b,c",
			expected: []wantToken{
				{TokenTextData, "a"},
				{TokenComma, ","},
				{TokenTextData, "b"},
				{TokenComma, ","},
				{TokenTextData, "c"},
			},
		},
		{
			name:  "quoted field with escaped quote",
			input: `"say ""hi"""`,
			expected: []wantToken{
				{TokenDQuote, `"`},
				{TokenTextData, "say "},
				{TokenDQuote, `"`},
				{TokenDQuote, `"`},
				{TokenTextData, "hi"},
				{TokenDQuote, `"`},
				{TokenDQuote, `"`},
				{TokenDQuote, `"`},
			},
		},
		{
			name:  "two records",
			input: "5,10\r\n20,25",
			expected: []wantToken{
				{TokenTextData, "5"},
				{TokenComma, ","},
				{TokenTextData, "10"},
				{TokenCRLF, "\r\n"},
				{TokenTextData, "20"},
				{TokenComma, ","},
				{TokenTextData, "25"},
			},
		},
		{
			name:  "tab is invalid",
			input: "a\tb",
			expected: []wantToken{
				{TokenTextData, "a"},
				{TokenInvalid, "\t"},
				{TokenTextData, "b"},
			},
		},
		{
			name:  "non ascii is invalid one rune at a time",
			input: "caféé",
			expected: []wantToken{
				{TokenTextData, "caf"},
				{TokenInvalid, "é"},
				{TokenInvalid, "é"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := NewTokenizer()
			tok.Initialize(tt.input)

			for i, exp := range tt.expected {
				token, ok := tok.NextToken()
				if !ok {
					t.Fatalf("token %d: expected token, got none (expected %s: %q)", i, exp.kind, exp.value)
				}
				if token.Kind() != exp.kind {
					t.Errorf("token %d: expected kind %s, got %s (value: %q)", i, exp.kind, token.Kind(), token.ValueString())
				}
				if token.ValueString() != exp.value {
					t.Errorf("token %d: expected value %q, got %q (kind: %s)", i, exp.value, token.ValueString(), token.Kind())
				}
			}

			token, ok := tok.NextToken()
			if ok {
				t.Errorf("expected no more tokens, got %s: %q", token.Kind(), token.ValueString())
			}
		})
	}
}

// TestTokenizer_WithStream tokenizes a buffer large enough to cross reader buffer boundaries.
func TestTokenizer_WithStream(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 100; i++ {
		if i > 0 {
			sb.WriteString("\r\n")
		}
		sb.WriteString(`"field1",field2`)
	}

	stream := tokenizer.NewStreamFromReader(strings.NewReader(sb.String()))
	tok := NewTokenizerWithStream(stream)

	tokenCount := 0
	for {
		_, ok := tok.NextToken()
		if !ok {
			if !stream.IsEos() {
				t.Fatalf("tokenization stopped after %d tokens, but not at EOS", tokenCount)
			}
			break
		}
		tokenCount++
	}

	// " field1 " , field2 = 5 tokens per row, plus 99 CRLF separators
	want := 100*5 + 99
	if tokenCount != want {
		t.Errorf("expected %d tokens, got %d", want, tokenCount)
	}
}
