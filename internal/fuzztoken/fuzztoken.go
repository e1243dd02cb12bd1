// Package fuzztoken generates random-but-valid shork source fragments for
// fuzzing the lexer and parser with large, varied inputs.
package fuzztoken

import (
	"math/rand"
	"strings"
)

// validTokens is a ';'-delimited catalog of lexemes spanning every token
// family shork's grammar recognizes: parens, literals of each type,
// operators and a line comment.
const validTokens = `(;);"this is a string";"";42;3.14;-17;true;false;'x';#[a-z]+#;+;-;*;/;%;==;!=;<;<=;>;>=;&;|;<<;>>;!;// line comment;` + "\n"

// GetRandomTokens joins size random lexemes with a single space.
func GetRandomTokens(size int) string {
	return GetRandomTokensWithSep(size, " ")
}

// GetRandomTokensWithSep joins size random lexemes with sep.
func GetRandomTokensWithSep(size int, sep string) string {
	valid := strings.Split(validTokens, ";")

	toks := make([]string, 0, size)
	for len(toks) < size {
		toks = append(toks, valid[rand.Intn(len(valid))])
	}

	return strings.Join(toks, sep)
}
