package lexer

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokens(t *testing.T, l *Lexer) []Token {
	t.Helper()
	var toks []Token
	for {
		tok, err := l.NextToken()
		require.NoError(t, err)
		toks = append(toks, tok)
		if tok.Kind == TOKEN_EOF {
			return toks
		}
	}
}

func kinds(toks []Token) []int {
	ks := make([]int, 0, len(toks))
	for _, tok := range toks {
		ks = append(ks, tok.Kind)
	}
	return ks
}

func TestCommentThenNumber(t *testing.T) {
	toks := tokens(t, NewLexer("# comment\n42", ""))
	require.Equal(t, []int{TOKEN_NUMBER, TOKEN_EOF}, kinds(toks))
	assert.Equal(t, 42.0, toks[0].Num)
	assert.Equal(t, 2, toks[0].Line)
}

func TestKeywords(t *testing.T) {
	assert.Equal(t, []int{TOKEN_KW_DEF, TOKEN_EOF}, kinds(tokens(t, NewLexer("def", ""))))
	assert.Equal(t, []int{TOKEN_KW_EXTERN, TOKEN_EOF}, kinds(tokens(t, NewLexer("extern", ""))))

	toks := tokens(t, NewLexer("define", ""))
	require.Equal(t, []int{TOKEN_IDENTIFIER, TOKEN_EOF}, kinds(toks))
	assert.Equal(t, "define", toks[0].Name)
}

func TestDefinitionTokens(t *testing.T) {
	toks := tokens(t, NewLexer("def foo(a b) a+b", "t"))
	expect := []int{
		TOKEN_KW_DEF, TOKEN_IDENTIFIER, TOKEN_CHAR, TOKEN_IDENTIFIER, TOKEN_IDENTIFIER,
		TOKEN_CHAR, TOKEN_IDENTIFIER, TOKEN_CHAR, TOKEN_IDENTIFIER, TOKEN_EOF,
	}
	require.Equal(t, expect, kinds(toks))
	assert.Equal(t, "foo", toks[1].Name)
	assert.True(t, toks[2].IsChar('('))
	assert.True(t, toks[7].IsChar('+'))
}

func TestNumbers(t *testing.T) {
	for src, want := range map[string]float64{
		"0":       0,
		"42":      42,
		"3.25":    3.25,
		"7.":      7,
		"0012.50": 12.5,
	} {
		toks := tokens(t, NewLexer(src, ""))
		require.Equal(t, []int{TOKEN_NUMBER, TOKEN_EOF}, kinds(toks), src)
		assert.Equal(t, want, toks[0].Num, src)
	}

	toks := tokens(t, NewLexer("1.2.3", ""))
	require.Equal(t, []int{TOKEN_NUMBER, TOKEN_CHAR, TOKEN_NUMBER, TOKEN_EOF}, kinds(toks))
	assert.Equal(t, 1.2, toks[0].Num)
	assert.Equal(t, 3.0, toks[2].Num)

	huge := tokens(t, NewLexer(strings.Repeat("9", 400), ""))
	assert.True(t, math.IsInf(huge[0].Num, 1))
}

func TestUnknownCharactersPassThrough(t *testing.T) {
	toks := tokens(t, NewLexer("@ é;", ""))
	require.Equal(t, []int{TOKEN_CHAR, TOKEN_CHAR, TOKEN_CHAR, TOKEN_EOF}, kinds(toks))
	assert.Equal(t, '@', toks[0].Char)
	assert.Equal(t, 'é', toks[1].Char)
	assert.Equal(t, ';', toks[2].Char)
}

func TestExhausted(t *testing.T) {
	l := NewLexer("  \n\t", "")
	tok, err := l.NextToken()
	require.NoError(t, err)
	assert.Equal(t, TOKEN_EOF, tok.Kind)
	assert.Equal(t, 2, tok.Line)

	_, err = l.NextToken()
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestNarrowIdentifiers(t *testing.T) {
	toks := tokens(t, NewLexer("abc x1 def extern", "", NarrowIdentifiers()))
	require.Equal(t, []int{
		TOKEN_IDENTIFIER, TOKEN_IDENTIFIER, TOKEN_IDENTIFIER,
		TOKEN_KW_DEF, TOKEN_KW_EXTERN, TOKEN_EOF,
	}, kinds(toks))
	assert.Equal(t, "ab", toks[0].Name)
	assert.Equal(t, "c", toks[1].Name)
	assert.Equal(t, "x1", toks[2].Name)
}
