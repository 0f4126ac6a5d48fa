package csv

import (
	"fmt"

	"github.com/shapestone/shape-rfc4180/internal/parser"
	"github.com/shapestone/shape-rfc4180/internal/tokenizer"
)

// Token kinds returned by Tokenize.
const (
	TokenComma    = tokenizer.TokenComma
	TokenDQuote   = tokenizer.TokenDQuote
	TokenCRLF     = tokenizer.TokenCRLF
	TokenCR       = tokenizer.TokenCR
	TokenLF       = tokenizer.TokenLF
	TokenTextData = tokenizer.TokenTextData
	TokenInvalid  = tokenizer.TokenInvalid
)

// Token is one lexical token of a CSV buffer.
type Token struct {
	Kind  string
	Value string
}

// String returns the kind and quoted value, e.g. TextData("abc").
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Kind, t.Value)
}

// Tokenize splits input into the lexical tokens of the grammar without
// interpreting quotes. It never fails on content: characters no token class
// accepts come back as TokenInvalid. Concatenating the token values gives
// back input.
func Tokenize(input string) []Token {
	tok := tokenizer.NewTokenizer()
	tok.Initialize(input)

	var tokens []Token
	for {
		t, ok := tok.NextToken()
		if !ok {
			break
		}
		tokens = append(tokens, Token{Kind: t.Kind(), Value: t.ValueString()})
	}
	return tokens
}

// IsTextData reports whether r may appear in an unquoted field.
func IsTextData(r rune) bool {
	return tokenizer.IsTextData(r)
}

// Grammar returns the CSV grammar in golang.org/x/exp/ebnf notation.
func Grammar() string {
	return parser.Grammar
}

// VerifyGrammar parses Grammar and checks it is complete and well formed.
func VerifyGrammar() error {
	return parser.VerifyGrammar()
}
