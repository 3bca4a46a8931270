package ast

import (
	"testing"

	"github.com/lisale0/Lox/internal/token"
	"github.com/stretchr/testify/assert"
)

func TestPrinterParenthesizesBinaryExpression(t *testing.T) {
	expr := NewBinary(
		NewUnary(token.New(token.Minus, "-", nil, 1), NewLiteral(123.0)),
		token.New(token.Star, "*", nil, 1),
		NewGrouping(NewLiteral(45.67)),
	)
	p := &Printer{}
	assert.Equal(t, "(* (- 123) (group 45.67))", p.Print(expr))
}

func TestPrinterRendersNilLiteral(t *testing.T) {
	p := &Printer{}
	assert.Equal(t, "nil", p.Print(NewLiteral(nil)))
}

func TestPrinterRendersVariableAndCall(t *testing.T) {
	name := token.New(token.Identifier, "f", nil, 1)
	paren := token.New(token.RightParen, ")", nil, 1)
	expr := NewCall(NewVariable(name), paren, []Expr{NewLiteral(1.0), NewLiteral(2.0)})
	p := &Printer{}
	assert.Equal(t, "(call f 1 2)", p.Print(expr))
}
