package shork

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenInt64RoundTrip(t *testing.T) {
	cases := []int64{0, 1, -1, 42, -42, 1 << 62, -(1 << 62)}

	for _, n := range cases {
		tok := Token{Typ: TokenIntegerType, Raw: encodeInt64(n)}
		assert.Equal(t, n, tok.Int64())
	}
}

func TestTokenFloat64RoundTrip(t *testing.T) {
	cases := []float64{0, 1.5, -1.5, 3.14159}

	for _, f := range cases {
		tok := Token{Typ: TokenFloatType, Raw: encodeFloat64(f)}
		assert.Equal(t, f, tok.Float64())
	}
}

func TestTokenBool(t *testing.T) {
	assert.True(t, Token{Raw: []byte{0x01}}.Bool())
	assert.False(t, Token{Raw: []byte{0x00}}.Bool())
}

func TestTokenText(t *testing.T) {
	tok := Token{Typ: TokenStringType, Raw: []byte("hello")}
	assert.Equal(t, "hello", tok.Text())
}

func TestTokenIsEOF(t *testing.T) {
	assert.True(t, Token{Typ: TokenEOF}.IsEOF())
	assert.False(t, Token{Typ: TokenPlus}.IsEOF())
}

func TestTokenTypeStringFallsBackForUnknown(t *testing.T) {
	assert.Equal(t, "TokenType(255)", TokenType(255).String())
}

func TestKeywordTableCoversTypeAndGeneralKeywords(t *testing.T) {
	cases := map[string]TokenType{
		"integer": TokenInteger,
		"boolean": TokenBoolean,
		"if":      TokenIf,
		"return":  TokenReturn,
	}

	for text, want := range cases {
		got, ok := keywordTable[text]
		assert.True(t, ok, "expected %q to be a keyword", text)
		assert.Equal(t, want, got)
	}
}
