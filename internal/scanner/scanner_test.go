package scanner

import (
	"testing"

	"github.com/lisale0/Lox/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanEmptySource(t *testing.T) {
	toks, errs := Scan("")
	require.Empty(t, errs)
	require.Len(t, toks, 1)
	assert.Equal(t, token.EOF, toks[0].Kind)
	assert.Equal(t, 1, toks[0].Line)
}

func TestScanArithmetic(t *testing.T) {
	toks, errs := Scan("2 + 4")
	require.Empty(t, errs)
	require.Len(t, toks, 4)
	assert.Equal(t, token.Number, toks[0].Kind)
	assert.Equal(t, 2.0, toks[0].Literal)
	assert.Equal(t, token.Plus, toks[1].Kind)
	assert.Equal(t, token.Number, toks[2].Kind)
	assert.Equal(t, 4.0, toks[2].Literal)
	assert.Equal(t, token.EOF, toks[3].Kind)
}

func TestScanTwoCharOperators(t *testing.T) {
	toks, errs := Scan("!= == <= >= < > = !")
	require.Empty(t, errs)
	kinds := make([]token.Kind, 0, len(toks)-1)
	for _, tok := range toks[:len(toks)-1] {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []token.Kind{
		token.BangEqual, token.EqualEqual, token.LessEqual, token.GreaterEqual,
		token.Less, token.Greater, token.Equal, token.Bang,
	}, kinds)
}

func TestScanStringLiteral(t *testing.T) {
	toks, errs := Scan(`"espresso"`)
	require.Empty(t, errs)
	require.Len(t, toks, 2)
	assert.Equal(t, token.String, toks[0].Kind)
	assert.Equal(t, "espresso", toks[0].Literal)
}

func TestScanMultilineString(t *testing.T) {
	toks, errs := Scan("\"line one\nline two\"\nprint 1;")
	require.Empty(t, errs)
	require.Len(t, toks, 5)
	assert.Equal(t, 3, toks[1].Line) // "print" starts on line 3
}

func TestScanUnterminatedString(t *testing.T) {
	_, errs := Scan(`"never closed`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "Unterminated string")
}

func TestScanUnexpectedCharacter(t *testing.T) {
	_, errs := Scan("@")
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "Unexpected character")
}

func TestScanLineComment(t *testing.T) {
	toks, errs := Scan("1 + 2 // this is ignored\n3")
	require.Empty(t, errs)
	require.Len(t, toks, 5) // 1 + 2 3 EOF
	assert.Equal(t, 2, toks[4].Line)
}

func TestScanKeywordsAndIdentifiers(t *testing.T) {
	toks, errs := Scan("var x = orchid")
	require.Empty(t, errs)
	assert.Equal(t, token.Var, toks[0].Kind)
	assert.Equal(t, token.Identifier, toks[1].Kind)
	assert.Equal(t, token.Equal, toks[2].Kind)
	assert.Equal(t, token.Identifier, toks[3].Kind)
}

func TestScanNumberWithoutFraction(t *testing.T) {
	toks, errs := Scan("123.")
	require.Empty(t, errs)
	// the trailing '.' is not consumed because it isn't followed by a digit
	require.Len(t, toks, 3)
	assert.Equal(t, token.Number, toks[0].Kind)
	assert.Equal(t, 123.0, toks[0].Literal)
	assert.Equal(t, token.Dot, toks[1].Kind)
}
