// Package ast defines the Lox abstract syntax tree: expression and
// statement nodes produced by the parser, walked by the resolver and the
// interpreter via the visitor pattern.
package ast

import "github.com/lisale0/Lox/internal/token"

// nextID hands out a process-wide unique id to every Expr/Stmt node at
// construction time. The resolver's side table keys off this id rather
// than Go pointer identity, per the node-identity convention used
// throughout this interpreter.
var nextID = func() func() int {
	var id int
	return func() int {
		id++
		return id
	}
}()

// Expr is any Lox expression node. Every concrete type also exposes a
// stable, never-reused ID() for use as a side-table key.
type Expr interface {
	ID() int
	Accept(v ExprVisitor) (interface{}, error)
}

// ExprVisitor dispatches on the concrete type of an Expr. The Interpreter,
// the Resolver and the Printer all implement this interface.
type ExprVisitor interface {
	VisitLiteral(*Literal) (interface{}, error)
	VisitUnary(*Unary) (interface{}, error)
	VisitBinary(*Binary) (interface{}, error)
	VisitGrouping(*Grouping) (interface{}, error)
	VisitVariable(*Variable) (interface{}, error)
	VisitAssign(*Assign) (interface{}, error)
	VisitLogical(*Logical) (interface{}, error)
	VisitCall(*Call) (interface{}, error)
}

type exprBase struct{ id int }

func (e exprBase) ID() int { return e.id }

// Literal is a constant value baked in at parse time: a number, string,
// bool, or nil.
type Literal struct {
	exprBase
	Value interface{}
}

// NewLiteral builds a Literal expression node.
func NewLiteral(value interface{}) *Literal {
	return &Literal{exprBase{nextID()}, value}
}

// Accept dispatches to the visitor's literal handler.
func (e *Literal) Accept(v ExprVisitor) (interface{}, error) { return v.VisitLiteral(e) }

// Unary is a prefix operator expression: "-x" or "!x".
type Unary struct {
	exprBase
	Operator token.Token
	Right    Expr
}

// NewUnary builds a Unary expression node.
func NewUnary(operator token.Token, right Expr) *Unary {
	return &Unary{exprBase{nextID()}, operator, right}
}

// Accept dispatches to the visitor's unary handler.
func (e *Unary) Accept(v ExprVisitor) (interface{}, error) { return v.VisitUnary(e) }

// Binary is an infix operator expression: "left op right".
type Binary struct {
	exprBase
	Left     Expr
	Operator token.Token
	Right    Expr
}

// NewBinary builds a Binary expression node.
func NewBinary(left Expr, operator token.Token, right Expr) *Binary {
	return &Binary{exprBase{nextID()}, left, operator, right}
}

// Accept dispatches to the visitor's binary handler.
func (e *Binary) Accept(v ExprVisitor) (interface{}, error) { return v.VisitBinary(e) }

// Grouping is a parenthesized expression: "(inner)".
type Grouping struct {
	exprBase
	Inner Expr
}

// NewGrouping builds a Grouping expression node.
func NewGrouping(inner Expr) *Grouping {
	return &Grouping{exprBase{nextID()}, inner}
}

// Accept dispatches to the visitor's grouping handler.
func (e *Grouping) Accept(v ExprVisitor) (interface{}, error) { return v.VisitGrouping(e) }

// Variable reads a named binding.
type Variable struct {
	exprBase
	Name token.Token
}

// NewVariable builds a Variable expression node.
func NewVariable(name token.Token) *Variable {
	return &Variable{exprBase{nextID()}, name}
}

// Accept dispatches to the visitor's variable handler.
func (e *Variable) Accept(v ExprVisitor) (interface{}, error) { return v.VisitVariable(e) }

// Assign writes a value to an existing named binding; the assignment
// itself evaluates to the assigned value.
type Assign struct {
	exprBase
	Name  token.Token
	Value Expr
}

// NewAssign builds an Assign expression node.
func NewAssign(name token.Token, value Expr) *Assign {
	return &Assign{exprBase{nextID()}, name, value}
}

// Accept dispatches to the visitor's assign handler.
func (e *Assign) Accept(v ExprVisitor) (interface{}, error) { return v.VisitAssign(e) }

// Logical is a short-circuiting "and"/"or" expression.
type Logical struct {
	exprBase
	Left     Expr
	Operator token.Token
	Right    Expr
}

// NewLogical builds a Logical expression node.
func NewLogical(left Expr, operator token.Token, right Expr) *Logical {
	return &Logical{exprBase{nextID()}, left, operator, right}
}

// Accept dispatches to the visitor's logical handler.
func (e *Logical) Accept(v ExprVisitor) (interface{}, error) { return v.VisitLogical(e) }

// Call invokes a callee with a list of evaluated arguments.
type Call struct {
	exprBase
	Callee Expr
	Paren  token.Token // closing ")", used to report arity errors at the call site
	Args   []Expr
}

// NewCall builds a Call expression node.
func NewCall(callee Expr, paren token.Token, args []Expr) *Call {
	return &Call{exprBase{nextID()}, callee, paren, args}
}

// Accept dispatches to the visitor's call handler.
func (e *Call) Accept(v ExprVisitor) (interface{}, error) { return v.VisitCall(e) }
