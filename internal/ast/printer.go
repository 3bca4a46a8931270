package ast

import (
	"fmt"
	"strings"
)

// Printer renders an Expr tree as a fully-parenthesized Lisp-like string,
// useful for debugging the parser independently of the interpreter.
type Printer struct {
	str strings.Builder
}

// Print renders the given expression.
func (p *Printer) Print(e Expr) string {
	p.str.Reset()
	// errors never occur while printing; the visitor methods below always
	// return a nil error.
	_, _ = e.Accept(p)
	return p.str.String()
}

// VisitBinary pretty-prints a binary expression.
func (p *Printer) VisitBinary(e *Binary) (interface{}, error) {
	return nil, p.parenthesize(e.Operator.Lexeme, e.Left, e.Right)
}

// VisitGrouping pretty-prints a grouped expression.
func (p *Printer) VisitGrouping(e *Grouping) (interface{}, error) {
	return nil, p.parenthesize("group", e.Inner)
}

// VisitLiteral pretty-prints a literal.
func (p *Printer) VisitLiteral(e *Literal) (interface{}, error) {
	if e.Value == nil {
		p.str.WriteString("nil")
		return nil, nil
	}
	p.str.WriteString(fmt.Sprintf("%v", e.Value))
	return nil, nil
}

// VisitUnary pretty-prints a unary expression.
func (p *Printer) VisitUnary(e *Unary) (interface{}, error) {
	return nil, p.parenthesize(e.Operator.Lexeme, e.Right)
}

// VisitVariable pretty-prints a variable reference.
func (p *Printer) VisitVariable(e *Variable) (interface{}, error) {
	p.str.WriteString(e.Name.Lexeme)
	return nil, nil
}

// VisitAssign pretty-prints an assignment.
func (p *Printer) VisitAssign(e *Assign) (interface{}, error) {
	return nil, p.parenthesize("= "+e.Name.Lexeme, e.Value)
}

// VisitLogical pretty-prints a short-circuiting logical expression.
func (p *Printer) VisitLogical(e *Logical) (interface{}, error) {
	return nil, p.parenthesize(e.Operator.Lexeme, e.Left, e.Right)
}

// VisitCall pretty-prints a call expression.
func (p *Printer) VisitCall(e *Call) (interface{}, error) {
	return nil, p.parenthesize("call", append([]Expr{e.Callee}, e.Args...)...)
}

// parenthesize writes "(name exp1 exp2 ...)" using each expr's own
// rendering, mirroring the teacher's original ASTPrinter.parenthesize.
func (p *Printer) parenthesize(name string, exprs ...Expr) error {
	p.str.WriteByte('(')
	p.str.WriteString(name)
	for _, e := range exprs {
		p.str.WriteByte(' ')
		if _, err := e.Accept(p); err != nil {
			return err
		}
	}
	p.str.WriteByte(')')
	return nil
}
