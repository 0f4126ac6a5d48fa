package tokenizer

import (
	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// NewTokenizer creates a tokenizer for the strict RFC 4180 lexicon.
// The tokenizer matches CSV tokens in order of specificity:
//  1. CRLF (before CR so the longer sequence wins)
//  2. Lone CR, lone LF
//  3. Comma
//  4. Double quote
//  5. TextData runs
//  6. Invalid (exactly one rune of anything else)
//
// Every input is tokenized completely, since Invalid matches any rune.
func NewTokenizer() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		tokenizer.StringMatcherFunc(TokenCRLF, "\r\n"),
		tokenizer.StringMatcherFunc(TokenCR, "\r"),
		tokenizer.StringMatcherFunc(TokenLF, "\n"),

		tokenizer.StringMatcherFunc(TokenComma, ","),
		tokenizer.StringMatcherFunc(TokenDQuote, `"`),

		TextDataMatcher(),
		InvalidMatcher(),
	)
}

// NewTokenizerWithStream creates a tokenizer using a pre-configured stream.
func NewTokenizerWithStream(stream tokenizer.Stream) tokenizer.Tokenizer {
	tok := NewTokenizer()
	tok.InitializeFromStream(stream)
	return tok
}

// TextDataMatcher creates a matcher for a maximal run of textdata characters.
//
// Grammar:
//
//	TextDataRun = TextData { TextData } ;
//
// Performance: Uses ByteStream for fast ASCII scanning when available.
// Textdata is pure ASCII, so the byte path never splits a multi-byte rune.
func TextDataMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		if byteStream, ok := stream.(tokenizer.ByteStream); ok {
			return textDataMatcherByte(byteStream)
		}
		return textDataMatcherRune(stream)
	}
}

func textDataMatcherByte(stream tokenizer.ByteStream) *tokenizer.Token {
	startPos := stream.BytePosition()

	for {
		b, ok := stream.PeekByte()
		if !ok || !IsTextData(rune(b)) {
			break
		}
		stream.NextByte()
	}

	if stream.BytePosition() == startPos {
		return nil
	}

	value := stream.SliceFrom(startPos)
	return tokenizer.NewToken(TokenTextData, []rune(string(value)))
}

func textDataMatcherRune(stream tokenizer.Stream) *tokenizer.Token {
	var value []rune

	for {
		r, ok := stream.PeekChar()
		if !ok || !IsTextData(r) {
			break
		}
		stream.NextChar()
		value = append(value, r)
	}

	if len(value) == 0 {
		return nil
	}

	return tokenizer.NewToken(TokenTextData, value)
}

// InvalidMatcher matches exactly one rune. It is registered last so it only
// fires for runes no other matcher accepts.
func InvalidMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok {
			return nil
		}
		stream.NextChar()
		return tokenizer.NewToken(TokenInvalid, []rune{r})
	}
}
