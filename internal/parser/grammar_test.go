package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerifyGrammar(t *testing.T) {
	require.NoError(t, VerifyGrammar())
}

func TestParseGrammar_Productions(t *testing.T) {
	g, err := ParseGrammar()
	require.NoError(t, err)

	for _, name := range []string{"Table", "Record", "Field", "QuotedField", "UnquotedField", "TextData", "CRLF"} {
		require.Contains(t, g, name)
	}
	require.Equal(t, StartProduction, g["Table"].Name.String)
}
