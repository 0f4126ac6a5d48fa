package parser

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKind_String(t *testing.T) {
	require.Equal(t, "unexpected-char-in-quoted-field", KindUnexpectedCharInQuotedField.String())
	require.Equal(t, "unexpected-char-in-unquoted-field", KindUnexpectedCharInUnquotedField.String())
	require.Equal(t, "unexpected-eof", KindUnexpectedEOF.String())
	require.Equal(t, "wrong-char", KindWrongChar.String())
	require.Equal(t, "field-too-large", KindFieldTooLarge.String())
	require.Equal(t, "record-too-large", KindRecordTooLarge.String())
	require.Equal(t, "Kind(99)", Kind(99).String())
}

func TestError_Message(t *testing.T) {
	tests := []struct {
		err  *Error
		want string
	}{
		{
			&Error{Kind: KindUnexpectedCharInUnquotedField, Actual: '"', Line: 1, StartLine: 1, Column: 2},
			`parse error on line 1, column 2: unexpected character in unquoted field '"'`,
		},
		{
			&Error{Kind: KindUnexpectedCharInQuotedField, Actual: '\t', Line: 3, StartLine: 2, Column: 4},
			`parse error on line 3 (started line 2), column 4: unexpected character in quoted field '\t'`,
		},
		{
			&Error{Kind: KindUnexpectedEOF, Expected: '"', Line: 1, StartLine: 1, Column: 7},
			`parse error on line 1, column 7: unexpected end of input, expected '"'`,
		},
		{
			&Error{Kind: KindWrongChar, Expected: '\n', Actual: 'b', Line: 1, StartLine: 1, Column: 3},
			`parse error on line 1, column 3: expected '\n', got 'b'`,
		},
		{
			&Error{Kind: KindFieldTooLarge, Size: 12, Limit: 10, Line: 5, StartLine: 5, Column: 1},
			`parse error on line 5, column 1: field exceeds maximum size (12 > 10)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.err.Kind.String(), func(t *testing.T) {
			require.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestError_Is(t *testing.T) {
	_, err := NewParser("a\rb").Parse()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrWrongChar))
	require.False(t, errors.Is(err, ErrUnexpectedEOF))

	wrapped := fmt.Errorf("loading: %w", err)
	var perr *Error
	require.True(t, errors.As(wrapped, &perr))
	require.Equal(t, KindWrongChar, perr.Kind)
	require.Equal(t, '\n', perr.Expected)
	require.Equal(t, 'b', perr.Actual)

	_, err = NewParser(`"open`).Parse()
	require.True(t, errors.Is(err, ErrUnexpectedEOF))
}
