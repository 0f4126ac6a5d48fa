package parser

import (
	"strings"

	"golang.org/x/exp/ebnf"
)

// StartProduction is the root production of Grammar.
const StartProduction = "Table"

// Grammar is the CSV grammar in golang.org/x/exp/ebnf notation. Every
// production except the terminals has a parse function of the same name.
const Grammar = `Table         = Record { CRLF Record } .
Record        = Field { COMMA Field } .
Field         = QuotedField | UnquotedField .
QuotedField   = DQUOTE { TextData | COMMA | CR | LF | DQUOTE DQUOTE } DQUOTE .
UnquotedField = { TextData } .
TextData      = " " | "!" | "#" … "+" | "-" … "~" .
CRLF          = CR LF .
CR            = "\r" .
LF            = "\n" .
COMMA         = "," .
DQUOTE        = "\"" .
`

// ParseGrammar parses Grammar into its productions.
func ParseGrammar() (ebnf.Grammar, error) {
	return ebnf.Parse("csv.ebnf", strings.NewReader(Grammar))
}

// VerifyGrammar checks that Grammar is well formed: every production is
// defined, reachable from StartProduction and every range is increasing.
func VerifyGrammar() error {
	g, err := ParseGrammar()
	if err != nil {
		return err
	}
	return ebnf.Verify(g, StartProduction)
}
