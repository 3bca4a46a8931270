package ast

import "github.com/lisale0/Lox/internal/token"

// Stmt is any Lox statement node.
type Stmt interface {
	ID() int
	Accept(v StmtVisitor) error
}

// StmtVisitor dispatches on the concrete type of a Stmt. Errors returned
// from these methods may be either a runtime error or the non-error
// return-signal used internally by the interpreter to unwind a function
// call (see the interpreter package's signal type).
type StmtVisitor interface {
	VisitExpression(*Expression) error
	VisitPrint(*Print) error
	VisitVar(*Var) error
	VisitBlock(*Block) error
	VisitIf(*If) error
	VisitWhile(*While) error
	VisitFunction(*Function) error
	VisitReturn(*Return) error
}

type stmtBase struct{ id int }

func (s stmtBase) ID() int { return s.id }

// Expression is a statement consisting of a bare expression, evaluated
// for its side effects; its value is discarded.
type Expression struct {
	stmtBase
	Expr Expr
}

// NewExpression builds an Expression statement node.
func NewExpression(expr Expr) *Expression {
	return &Expression{stmtBase{nextID()}, expr}
}

// Accept dispatches to the visitor's expression-statement handler.
func (s *Expression) Accept(v StmtVisitor) error { return v.VisitExpression(s) }

// Print evaluates an expression and writes its stringified form followed
// by a newline.
type Print struct {
	stmtBase
	Expr Expr
}

// NewPrint builds a Print statement node.
func NewPrint(expr Expr) *Print {
	return &Print{stmtBase{nextID()}, expr}
}

// Accept dispatches to the visitor's print-statement handler.
func (s *Print) Accept(v StmtVisitor) error { return v.VisitPrint(s) }

// Var declares a new binding in the current environment, optionally
// initialized; an omitted initializer binds the name to nil.
type Var struct {
	stmtBase
	Name        token.Token
	Initializer Expr // nil if omitted
}

// NewVar builds a Var statement node.
func NewVar(name token.Token, initializer Expr) *Var {
	return &Var{stmtBase{nextID()}, name, initializer}
}

// Accept dispatches to the visitor's var-statement handler.
func (s *Var) Accept(v StmtVisitor) error { return v.VisitVar(s) }

// Block is a brace-delimited sequence of statements executed in a fresh
// child environment.
type Block struct {
	stmtBase
	Statements []Stmt
}

// NewBlock builds a Block statement node.
func NewBlock(statements []Stmt) *Block {
	return &Block{stmtBase{nextID()}, statements}
}

// Accept dispatches to the visitor's block-statement handler.
func (s *Block) Accept(v StmtVisitor) error { return v.VisitBlock(s) }

// If conditionally executes Then, or Else when present and the condition
// is falsey.
type If struct {
	stmtBase
	Condition Expr
	Then      Stmt
	Else      Stmt // nil if omitted
}

// NewIf builds an If statement node.
func NewIf(condition Expr, then, els Stmt) *If {
	return &If{stmtBase{nextID()}, condition, then, els}
}

// Accept dispatches to the visitor's if-statement handler.
func (s *If) Accept(v StmtVisitor) error { return v.VisitIf(s) }

// While repeatedly executes Body while Condition remains truthy.
type While struct {
	stmtBase
	Condition Expr
	Body      Stmt
}

// NewWhile builds a While statement node.
func NewWhile(condition Expr, body Stmt) *While {
	return &While{stmtBase{nextID()}, condition, body}
}

// Accept dispatches to the visitor's while-statement handler.
func (s *While) Accept(v StmtVisitor) error { return v.VisitWhile(s) }

// Function declares a named function, capturing the environment active
// at the declaration site as its closure.
type Function struct {
	stmtBase
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

// NewFunction builds a Function statement node.
func NewFunction(name token.Token, params []token.Token, body []Stmt) *Function {
	return &Function{stmtBase{nextID()}, name, params, body}
}

// Accept dispatches to the visitor's function-statement handler.
func (s *Function) Accept(v StmtVisitor) error { return v.VisitFunction(s) }

// Return unwinds the enclosing function call, carrying Value (nil when
// omitted) back to the caller.
type Return struct {
	stmtBase
	Keyword token.Token
	Value   Expr // nil if omitted
}

// NewReturn builds a Return statement node.
func NewReturn(keyword token.Token, value Expr) *Return {
	return &Return{stmtBase{nextID()}, keyword, value}
}

// Accept dispatches to the visitor's return-statement handler.
func (s *Return) Accept(v StmtVisitor) error { return v.VisitReturn(s) }
