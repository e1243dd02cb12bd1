package shork

import (
	"encoding/binary"
	"fmt"
	"math"
)

// TokenType is an ID that correlates to the symbol a Token signifies.
type TokenType uint8

//go:generate stringer -type=TokenType -trimprefix=Token
const (
	// TokenEOF marks the end of the token stream. It is the last token
	// emitted by the lexer, except when lexing halts on a hard error (an
	// unterminated string or regex literal), in which case none is emitted.
	TokenEOF TokenType = iota

	// Single-character punctuation.
	TokenLeftParen
	TokenRightParen
	TokenLeftBrace
	TokenRightBrace
	TokenLeftBracket
	TokenRightBracket
	TokenComma
	TokenDot
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenPipe
	TokenAmp
	TokenCaret
	TokenNewLine

	// One or two character operators.
	TokenBang
	TokenBangEqual
	TokenEqual
	TokenEqualEqual
	TokenGreater
	TokenGreaterEqual
	TokenGreaterGreater
	TokenLess
	TokenLessEqual
	TokenLessLess
	TokenColon
	TokenColonColon
	TokenPercent

	// Literal kinds. The payload carried by the Token encodes the value,
	// see Token.Int64, Token.Float64, Token.Bool and Token.Text.
	TokenIdentifier
	TokenIntegerType
	TokenFloatType
	TokenCharType
	TokenStringType
	TokenBooleanType
	TokenRegexType

	// Type keywords.
	TokenInteger
	TokenFloat
	TokenChar
	TokenString
	TokenBoolean
	TokenRegex
	TokenT

	// General keywords.
	TokenReef
	TokenGet
	TokenFrom
	TokenAs
	TokenDefine
	TokenAnd
	TokenOr
	TokenFor
	TokenWhile
	TokenDo
	TokenIn
	TokenIf
	TokenElse
	TokenReturn
	TokenStructure
	TokenImplement
	TokenPrivate
)

var tokenNames = map[TokenType]string{
	TokenEOF:            "EOF",
	TokenLeftParen:      "LeftParen",
	TokenRightParen:     "RightParen",
	TokenLeftBrace:      "LeftBrace",
	TokenRightBrace:     "RightBrace",
	TokenLeftBracket:    "LeftBracket",
	TokenRightBracket:   "RightBracket",
	TokenComma:          "Comma",
	TokenDot:            "Dot",
	TokenPlus:           "Plus",
	TokenMinus:          "Minus",
	TokenStar:           "Star",
	TokenSlash:          "Slash",
	TokenPipe:           "Pipe",
	TokenAmp:            "Amp",
	TokenCaret:          "Caret",
	TokenNewLine:        "NewLine",
	TokenBang:           "Bang",
	TokenBangEqual:      "BangEqual",
	TokenEqual:          "Equal",
	TokenEqualEqual:     "EqualEqual",
	TokenGreater:        "Greater",
	TokenGreaterEqual:   "GreaterEqual",
	TokenGreaterGreater: "GreaterGreater",
	TokenLess:           "Less",
	TokenLessEqual:      "LessEqual",
	TokenLessLess:       "LessLess",
	TokenColon:          "Colon",
	TokenColonColon:     "ColonColon",
	TokenPercent:        "Percent",
	TokenIdentifier:     "Identifier",
	TokenIntegerType:    "IntegerType",
	TokenFloatType:      "FloatType",
	TokenCharType:       "CharType",
	TokenStringType:     "StringType",
	TokenBooleanType:    "BooleanType",
	TokenRegexType:      "RegexType",
	TokenInteger:        "Integer",
	TokenFloat:          "Float",
	TokenChar:           "Char",
	TokenString:         "String",
	TokenBoolean:        "Boolean",
	TokenRegex:          "Regex",
	TokenT:              "T",
	TokenReef:           "Reef",
	TokenGet:            "Get",
	TokenFrom:           "From",
	TokenAs:             "As",
	TokenDefine:         "Define",
	TokenAnd:            "And",
	TokenOr:             "Or",
	TokenFor:            "For",
	TokenWhile:          "While",
	TokenDo:             "Do",
	TokenIn:             "In",
	TokenIf:             "If",
	TokenElse:           "Else",
	TokenReturn:         "Return",
	TokenStructure:      "Structure",
	TokenImplement:      "Implement",
	TokenPrivate:        "Private",
}

// String renders the TokenType's name, falling back to a numeric form for
// anything missing from tokenNames (there shouldn't be any).
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}

	return fmt.Sprintf("TokenType(%d)", uint8(t))
}

// keywordTable maps reserved identifiers to their token type. Apart from the
// boolean literals "true" and "false", anything not present here and
// starting with a letter or underscore is TokenIdentifier.
var keywordTable = map[string]TokenType{
	"integer":   TokenInteger,
	"float":     TokenFloat,
	"char":      TokenChar,
	"string":    TokenString,
	"boolean":   TokenBoolean,
	"regex":     TokenRegex,
	"T":         TokenT,
	"reef":      TokenReef,
	"get":       TokenGet,
	"from":      TokenFrom,
	"as":        TokenAs,
	"define":    TokenDefine,
	"and":       TokenAnd,
	"or":        TokenOr,
	"for":       TokenFor,
	"while":     TokenWhile,
	"do":        TokenDo,
	"in":        TokenIn,
	"if":        TokenIf,
	"else":      TokenElse,
	"return":    TokenReturn,
	"structure": TokenStructure,
	"implement": TokenImplement,
	"private":   TokenPrivate,
}

// Token is an immutable lexical unit produced by the lexer. For literal
// kinds Raw carries the decoded payload (see Int64/Float64/Bool/Text), not
// the source text — for every token but Eof (whose Offset is one past the
// end of the source) the source text can be recovered as
// source[Offset:Offset+Length].
type Token struct {
	// Typ is the kind of this token.
	Typ TokenType

	// Offset is the byte offset of the token's lexeme into the source.
	Offset int

	// Length is the byte length of the token's lexeme in the source.
	Length int

	// Raw is the token's payload. Its shape depends on Typ: 8 bytes
	// (native-endian) for IntegerType/FloatType, a single 0x00/0x01 byte
	// for BooleanType, the interior bytes for String/Regex/CharType, and
	// unused for everything else.
	Raw []byte
}

// Int64 decodes an IntegerType token's payload as a signed 64-bit integer.
func (t Token) Int64() int64 {
	return int64(binary.NativeEndian.Uint64(t.Raw))
}

// Float64 decodes a FloatType token's payload as an IEEE-754 binary64 float.
func (t Token) Float64() float64 {
	bits := binary.NativeEndian.Uint64(t.Raw)
	return math.Float64frombits(bits)
}

// Bool decodes a BooleanType token's single-byte payload.
func (t Token) Bool() bool {
	return len(t.Raw) > 0 && t.Raw[0] != 0x00
}

// Text decodes a String/Regex/CharType token's payload as UTF-8 text.
func (t Token) Text() string {
	return string(t.Raw)
}

// IsEOF reports whether this token marks the end of the stream.
func (t Token) IsEOF() bool {
	return t.Typ == TokenEOF
}
